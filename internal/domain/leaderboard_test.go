package domain

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankLeaderboardOrdersByScore(t *testing.T) {
	entries := []LeaderboardEntry{
		{ID: 1, User: User{ID: 11, Username: "ana"}, Score: 10},
		{ID: 2, User: User{ID: 12, Username: "ben"}, Score: 30},
		{ID: 3, User: User{ID: 13, Username: "cy"}, Score: 20},
	}

	ranked := RankLeaderboard(entries)

	require.Len(t, ranked, 3)
	require.Equal(t, []int64{2, 3, 1}, entryIDs(ranked))
	require.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})
	require.Equal(t, "Champion", ranked[0].Tier.Label)
	require.Equal(t, "Runner-up", ranked[1].Tier.Label)
	require.Equal(t, "Third Place", ranked[2].Tier.Label)

	// input untouched
	require.Equal(t, int64(1), entries[0].ID)
}

func TestRankLeaderboardBreaksTiesByUserThenEntry(t *testing.T) {
	entries := []LeaderboardEntry{
		{ID: 7, User: User{ID: 3}, Score: 50},
		{ID: 5, User: User{ID: 1}, Score: 50},
		{ID: 4, User: User{ID: 1}, Score: 50},
		{ID: 9, User: User{ID: 2}, Score: 80},
	}

	ranked := RankLeaderboard(entries)

	require.Equal(t, []int64{9, 4, 5, 7}, entryIDs(ranked))
}

func TestRankLeaderboardIsDeterministicAcrossInputOrder(t *testing.T) {
	base := []LeaderboardEntry{
		{ID: 1, User: User{ID: 1}, Score: 5},
		{ID: 2, User: User{ID: 2}, Score: 5},
		{ID: 3, User: User{ID: 3}, Score: 12.5},
		{ID: 4, User: User{ID: 4}, Score: 0},
		{ID: 5, User: User{ID: 5}, Score: 12.5},
		{ID: 6, User: User{ID: 6}, Score: -3},
	}
	want := entryIDs(RankLeaderboard(base))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]LeaderboardEntry(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		ranked := RankLeaderboard(shuffled)
		require.Equal(t, want, entryIDs(ranked))
		for j := 1; j < len(ranked); j++ {
			require.GreaterOrEqual(t, ranked[j-1].Score, ranked[j].Score)
		}
	}
}

func TestRankLeaderboardEmpty(t *testing.T) {
	require.Empty(t, RankLeaderboard(nil))
}

func TestTierForRank(t *testing.T) {
	require.Equal(t, "bg-warning text-dark", TierForRank(1).BadgeClass)
	require.Equal(t, "bi-trophy-fill", TierForRank(1).IconClass)
	require.Equal(t, "bg-secondary", TierForRank(2).BadgeClass)
	require.Equal(t, "bi-award-fill", TierForRank(2).IconClass)
	require.Equal(t, "bg-info", TierForRank(3).BadgeClass)
	require.Equal(t, "bi-star-fill", TierForRank(3).IconClass)

	for _, rank := range []int{0, 4, 99} {
		tier := TierForRank(rank)
		require.Equal(t, "bg-light text-dark", tier.BadgeClass)
		require.Equal(t, "bi-hash", tier.IconClass)
		require.Empty(t, tier.Label)
		require.False(t, tier.Podium)
	}
}

func TestLeaderboardEntryScoreFallback(t *testing.T) {
	var fromScore, fromPoints LeaderboardEntry
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"user":{"id":2,"username":"ana"},"score":42}`), &fromScore))
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"user":{"id":2,"username":"ana"},"total_points":17}`), &fromPoints))

	require.Equal(t, 42.0, fromScore.Score)
	require.Equal(t, "ana", fromScore.User.Username)
	require.Equal(t, 17.0, fromPoints.Score)
}

func TestActivityDurationFallback(t *testing.T) {
	var a, b Activity
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"user":{"username":"ana"},"activity_type":"running","duration":30}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"user":{"username":"ben"},"activity_type":"yoga","activity_type_display":"Yoga","duration_minutes":45}`), &b))

	require.Equal(t, 30, a.Duration)
	require.Equal(t, "Running", a.Label())
	require.Equal(t, 45, b.Duration)
	require.Equal(t, "Yoga", b.Label())

	c := Activity{ActivityType: "strength_training"}
	require.Equal(t, "Strength Training", c.Label())
}

func TestUserDisplayName(t *testing.T) {
	require.Equal(t, "Unknown", User{}.DisplayName())
	require.Equal(t, "ana", User{Username: "ana"}.DisplayName())
	require.Equal(t, "Thor Odinson", User{FirstName: "Thor", LastName: "Odinson"}.FullName())
}

func entryIDs(ranked []RankedEntry) []int64 {
	ids := make([]int64, len(ranked))
	for i, entry := range ranked {
		ids[i] = entry.ID
	}
	return ids
}
