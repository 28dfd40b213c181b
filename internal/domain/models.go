// Package domain defines the read-only OctoFit records rendered by the dashboard.
package domain

import (
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// User is a registered OctoFit member.
type User struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name,omitempty"`
	LastName   string     `json:"last_name,omitempty"`
	DateJoined *time.Time `json:"date_joined,omitempty"`
	IsActive   *bool      `json:"is_active,omitempty"`
}

// DisplayName returns the username, or "Unknown" when the server omitted it.
func (u User) DisplayName() string {
	if u.Username == "" {
		return "Unknown"
	}
	return u.Username
}

// FullName joins first and last name when present.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.LastName
	}
}

// Team groups users; member order is preserved as sent by the server.
type Team struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Members     []User     `json:"members"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// Activity is a single logged exercise session.
type Activity struct {
	ID           int64   `json:"id"`
	User         User    `json:"user"`
	ActivityType string  `json:"activity_type"`
	TypeDisplay  string  `json:"activity_type_display,omitempty"`
	Duration     int     `json:"duration"`
	Calories     int     `json:"calories_burned,omitempty"`
	DistanceKM   float64 `json:"distance_km,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// UnmarshalJSON accepts the duration under "duration" or, as the backend
// serializer names it, "duration_minutes".
func (a *Activity) UnmarshalJSON(data []byte) error {
	type plain Activity
	var raw struct {
		plain
		Duration        *int `json:"duration"`
		DurationMinutes *int `json:"duration_minutes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Activity(raw.plain)
	switch {
	case raw.Duration != nil:
		a.Duration = *raw.Duration
	case raw.DurationMinutes != nil:
		a.Duration = *raw.DurationMinutes
	}
	return nil
}

// Label prefers the server's display name and otherwise title-cases the
// raw type, so "strength_training" reads "Strength Training".
func (a Activity) Label() string {
	if a.TypeDisplay != "" {
		return a.TypeDisplay
	}
	// A Caser is stateful, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(a.ActivityType, "_", " "))
}

// Workout is a suggested training routine.
type Workout struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DifficultyLevel string `json:"difficulty_level,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

// LeaderboardEntry is a user's score on the leaderboard.
type LeaderboardEntry struct {
	ID    int64   `json:"id"`
	User  User    `json:"user"`
	Team  *Team   `json:"team,omitempty"`
	Score float64 `json:"score"`
}

// UnmarshalJSON accepts the score under "score" or "total_points".
func (e *LeaderboardEntry) UnmarshalJSON(data []byte) error {
	type plain LeaderboardEntry
	var raw struct {
		plain
		Score       *float64 `json:"score"`
		TotalPoints *float64 `json:"total_points"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = LeaderboardEntry(raw.plain)
	switch {
	case raw.Score != nil:
		e.Score = *raw.Score
	case raw.TotalPoints != nil:
		e.Score = *raw.TotalPoints
	}
	return nil
}

// UserWorkout records a workout completed by a user.
type UserWorkout struct {
	ID             int64      `json:"id"`
	User           User       `json:"user"`
	Workout        Workout    `json:"workout"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ActualDuration int        `json:"actual_duration"`
	CaloriesBurned int        `json:"calories_burned"`
	Rating         *int       `json:"rating,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// APIInfo is the payload of the API root.
type APIInfo struct {
	Message       string `json:"message"`
	Version       string `json:"version,omitempty"`
	LocalURL      string `json:"local_url,omitempty"`
	CodespaceURL  string `json:"codespace_url,omitempty"`
	CodespaceName string `json:"codespace_name,omitempty"`
	Status        string `json:"status,omitempty"`
	BaseURL       string `json:"baseUrl,omitempty"`
}
