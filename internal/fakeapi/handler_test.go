package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/octofit/internal/domain"
)

func TestLeaderboardUsesBackendFieldNames(t *testing.T) {
	handler := NewHandler(NewStore())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/leaderboard/", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	require.Len(t, raw, 6)
	require.Contains(t, raw[0], "total_points")
	require.NotContains(t, raw[0], "score")

	var entries []domain.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Equal(t, 1250.0, entries[0].Score)
	require.Equal(t, "Blue Octopus", entries[0].Team.Name)
}

func TestActivitiesDecodeThroughDomainFallback(t *testing.T) {
	handler := NewHandler(NewStore())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/activities/", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var activities []domain.Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &activities))
	require.Len(t, activities, 8)
	require.Equal(t, 60, activities[0].Duration)
	require.Equal(t, "thundergod", activities[0].User.Username)
}

func TestUserWorkoutsFilterByUser(t *testing.T) {
	handler := NewHandler(NewStore())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/user-workouts/?user=1", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var items []domain.UserWorkout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 2)
	for _, item := range items {
		require.Equal(t, int64(1), item.User.ID)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/user-workouts/?user=abc", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestByIDRoutes(t *testing.T) {
	handler := NewHandler(NewStore())

	for path, want := range map[string]int{
		"/api/users/2/":       http.StatusOK,
		"/api/users/99/":      http.StatusNotFound,
		"/api/teams/1/":       http.StatusOK,
		"/api/teams/x/":       http.StatusNotFound,
		"/api/activities/8/":  http.StatusOK,
		"/api/activities/80/": http.StatusNotFound,
	} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, want, rr.Code, path)
	}
}

func TestFailWith(t *testing.T) {
	store := NewEmptyStore()
	handler := NewHandler(store)
	store.FailWith("teams", http.StatusServiceUnavailable)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/teams/", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	store.FailWith("teams", 0)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/teams/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())
}

func TestRootReportsInfo(t *testing.T) {
	handler := NewHandler(NewEmptyStore())

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Host = "localhost:8000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var info domain.APIInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	require.Equal(t, "Welcome to OctoFit API", info.Message)
	require.Equal(t, "http://localhost:8000/api/", info.LocalURL)
}
