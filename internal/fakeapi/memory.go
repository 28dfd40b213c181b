// Package fakeapi serves an in-memory OctoFit REST API for local development
// and tests. Payloads follow the backend serializers, so activity durations
// are sent as duration_minutes and leaderboard scores as total_points.
package fakeapi

import (
	"sync"

	"example.com/octofit/internal/domain"
)

// Store holds the records served by the fake API.
type Store struct {
	mu           sync.RWMutex
	info         domain.APIInfo
	users        []domain.User
	teams        []domain.Team
	activities   []domain.Activity
	leaderboard  []domain.LeaderboardEntry
	workouts     []domain.Workout
	userWorkouts []domain.UserWorkout
	failures     map[string]int
}

// NewStore constructs a store populated with the Mergington High seed data.
func NewStore() *Store {
	s := NewEmptyStore()
	s.seed()
	return s
}

// NewEmptyStore constructs a store with no records.
func NewEmptyStore() *Store {
	return &Store{
		info: domain.APIInfo{
			Message: "Welcome to OctoFit API",
			Version: "1.0",
		},
		failures: make(map[string]int),
	}
}

func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []domain.User{
		{ID: 1, Username: "thundergod", Email: "thundergod@merington.edu", FirstName: "Thor", LastName: "Odinson"},
		{ID: 2, Username: "metalgeek", Email: "metalgeek@merington.edu", FirstName: "Tony", LastName: "Stark"},
		{ID: 3, Username: "zerocool", Email: "zerocool@merington.edu", FirstName: "Dade", LastName: "Murphy"},
		{ID: 4, Username: "crashoverride", Email: "crashoverride@merington.edu", FirstName: "Kate", LastName: "Libby"},
		{ID: 5, Username: "sleeptoken", Email: "sleeptoken@merington.edu", FirstName: "Vessel", LastName: "Anonymous"},
		{ID: 6, Username: "acidburn", Email: "acidburn@merington.edu", FirstName: "Acid", LastName: "Burn"},
	}
	u := s.users

	s.teams = []domain.Team{
		{ID: 1, Name: "Blue Octopus", Description: "The mighty blue team of Merington High", Members: []domain.User{u[0], u[1], u[2]}},
		{ID: 2, Name: "Gold Kraken", Description: "The legendary gold team of Merington High", Members: []domain.User{u[3], u[4], u[5]}},
	}

	s.activities = []domain.Activity{
		{ID: 1, User: u[0], ActivityType: "running", TypeDisplay: "Running", Duration: 60, Calories: 500, DistanceKM: 8, Notes: "Great morning run around the school track"},
		{ID: 2, User: u[1], ActivityType: "cycling", TypeDisplay: "Cycling", Duration: 90, Calories: 600, DistanceKM: 25, Notes: "Bike ride through the city park"},
		{ID: 3, User: u[2], ActivityType: "swimming", TypeDisplay: "Swimming", Duration: 45, Calories: 400, DistanceKM: 2, Notes: "Pool training session"},
		{ID: 4, User: u[3], ActivityType: "strength_training", Duration: 75, Calories: 350, Notes: "Weight lifting and resistance training"},
		{ID: 5, User: u[4], ActivityType: "yoga", TypeDisplay: "Yoga", Duration: 60, Calories: 200, Notes: "Relaxing yoga session for flexibility"},
		{ID: 6, User: u[5], ActivityType: "basketball", Duration: 120, Calories: 700, Notes: "Pickup game with friends"},
		{ID: 7, User: u[0], ActivityType: "hiking", Duration: 180, Calories: 800, DistanceKM: 12, Notes: "Mountain trail hike"},
		{ID: 8, User: u[1], ActivityType: "tennis", Duration: 90, Calories: 450, Notes: "Singles match practice"},
	}

	blue, gold := s.teams[0], s.teams[1]
	s.leaderboard = []domain.LeaderboardEntry{
		{ID: 1, User: u[0], Team: &blue, Score: 1250},
		{ID: 2, User: u[1], Team: &blue, Score: 1100},
		{ID: 3, User: u[2], Team: &blue, Score: 950},
		{ID: 4, User: u[3], Team: &gold, Score: 1180},
		{ID: 5, User: u[4], Team: &gold, Score: 1050},
		{ID: 6, User: u[5], Team: &gold, Score: 890},
	}

	s.workouts = []domain.Workout{
		{ID: 1, Name: "Morning Cardio Blast", Description: "High-intensity cardio workout to start your day", DifficultyLevel: "intermediate", DurationMinutes: 45},
		{ID: 2, Name: "Strength Builder", Description: "Build muscle and strength with this comprehensive workout", DifficultyLevel: "advanced", DurationMinutes: 60},
		{ID: 3, Name: "Beginner Friendly Flow", Description: "Perfect workout for fitness beginners", DifficultyLevel: "beginner", DurationMinutes: 30},
		{ID: 4, Name: "HIIT Thunder", Description: "High-intensity interval training for maximum results", DifficultyLevel: "advanced", DurationMinutes: 30},
		{ID: 5, Name: "Flexibility & Recovery", Description: "Gentle stretching and recovery workout", DifficultyLevel: "beginner", DurationMinutes: 25},
		{ID: 6, Name: "Team Sports Prep", DifficultyLevel: "intermediate", DurationMinutes: 50},
	}
	w := s.workouts

	rating := func(v int) *int { return &v }
	s.userWorkouts = []domain.UserWorkout{
		{ID: 1, User: u[0], Workout: w[0], ActualDuration: 42, CaloriesBurned: 380, Rating: rating(5), Notes: "Excellent workout! Felt energized all day."},
		{ID: 2, User: u[1], Workout: w[1], ActualDuration: 65, CaloriesBurned: 450, Rating: rating(4), Notes: "Challenging but rewarding strength session."},
		{ID: 3, User: u[2], Workout: w[2], ActualDuration: 28, CaloriesBurned: 150, Rating: rating(5), Notes: "Perfect for my fitness level!"},
		{ID: 4, User: u[3], Workout: w[3], ActualDuration: 32, CaloriesBurned: 420, Rating: rating(5), Notes: "Intense HIIT session, loved every minute!"},
		{ID: 5, User: u[0], Workout: w[4], ActualDuration: 25, CaloriesBurned: 140},
	}
}

// SetTeams replaces the team collection.
func (s *Store) SetTeams(teams []domain.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = append([]domain.Team(nil), teams...)
}

// SetUsers replaces the user collection.
func (s *Store) SetUsers(users []domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]domain.User(nil), users...)
}

// SetActivities replaces the activity collection.
func (s *Store) SetActivities(activities []domain.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append([]domain.Activity(nil), activities...)
}

// SetLeaderboard replaces the leaderboard entries.
func (s *Store) SetLeaderboard(entries []domain.LeaderboardEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboard = append([]domain.LeaderboardEntry(nil), entries...)
}

// SetWorkouts replaces the workout collection.
func (s *Store) SetWorkouts(workouts []domain.Workout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts = append([]domain.Workout(nil), workouts...)
}

// SetUserWorkouts replaces the completed workout records.
func (s *Store) SetUserWorkouts(items []domain.UserWorkout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userWorkouts = append([]domain.UserWorkout(nil), items...)
}

// FailWith makes every request for the collection ("users", "teams",
// "activities", "leaderboard", "workouts", "user-workouts" or "root")
// answer with status. A zero status clears the failure.
func (s *Store) FailWith(collection string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, collection)
		return
	}
	s.failures[collection] = status
}

func (s *Store) failure(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failures[collection]
}
