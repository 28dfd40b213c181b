package domain

import (
	"cmp"
	"slices"
)

// Tier is the display treatment derived from a leaderboard rank.
type Tier struct {
	BadgeClass string
	IconClass  string
	// Label is empty outside the podium.
	Label      string
	LabelClass string
	Podium     bool
}

var podium = [...]Tier{
	{BadgeClass: "bg-warning text-dark", IconClass: "bi-trophy-fill", Label: "Champion", LabelClass: "bg-warning text-dark", Podium: true},
	{BadgeClass: "bg-secondary", IconClass: "bi-award-fill", Label: "Runner-up", LabelClass: "bg-secondary", Podium: true},
	{BadgeClass: "bg-info", IconClass: "bi-star-fill", Label: "Third Place", LabelClass: "bg-info", Podium: true},
}

var neutralTier = Tier{BadgeClass: "bg-light text-dark", IconClass: "bi-hash"}

// TierForRank maps a 1-based rank to its tier.
func TierForRank(rank int) Tier {
	if rank >= 1 && rank <= len(podium) {
		return podium[rank-1]
	}
	return neutralTier
}

// RankedEntry is a leaderboard entry with its derived position.
type RankedEntry struct {
	LeaderboardEntry
	Rank int
	Tier Tier
}

// RankLeaderboard orders entries by score descending and assigns 1-based
// ranks. Equal scores fall back to user ID, then entry ID, both ascending,
// so the order never depends on the order the server sent. The input slice
// is left untouched.
func RankLeaderboard(entries []LeaderboardEntry) []RankedEntry {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, compareEntries)

	ranked := make([]RankedEntry, len(sorted))
	for i, entry := range sorted {
		rank := i + 1
		ranked[i] = RankedEntry{LeaderboardEntry: entry, Rank: rank, Tier: TierForRank(rank)}
	}
	return ranked
}

func compareEntries(a, b LeaderboardEntry) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(a.User.ID, b.User.ID); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
