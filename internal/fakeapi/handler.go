package fakeapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"example.com/octofit/internal/domain"
)

// Handler serves the store under the /api prefix.
type Handler struct {
	store *Store
	mux   *http.ServeMux
}

// NewHandler builds a Handler.
func NewHandler(store *Store) *Handler {
	h := &Handler{store: store, mux: http.NewServeMux()}
	h.RegisterRoutes(h.mux)
	return h
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/{$}", h.root)
	mux.HandleFunc("GET /api/users/{$}", h.users)
	mux.HandleFunc("GET /api/users/{id}/{$}", h.userByID)
	mux.HandleFunc("GET /api/teams/{$}", h.teams)
	mux.HandleFunc("GET /api/teams/{id}/{$}", h.teamByID)
	mux.HandleFunc("GET /api/activities/{$}", h.activities)
	mux.HandleFunc("GET /api/activities/{id}/{$}", h.activityByID)
	mux.HandleFunc("GET /api/leaderboard/{$}", h.leaderboard)
	mux.HandleFunc("GET /api/workouts/{$}", h.workouts)
	mux.HandleFunc("GET /api/user-workouts/{$}", h.userWorkouts)
}

// ServeHTTP lets the Handler be mounted directly.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "root") {
		return
	}
	h.store.mu.RLock()
	info := h.store.info
	h.store.mu.RUnlock()

	if info.LocalURL == "" {
		info.LocalURL = "http://" + r.Host + "/api/"
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "users") {
		return
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	writeJSON(w, http.StatusOK, nonNil(h.store.users))
}

func (h *Handler) userByID(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "users") {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	for _, user := range h.store.users {
		if user.ID == id {
			writeJSON(w, http.StatusOK, user)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Not found.")
}

func (h *Handler) teams(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "teams") {
		return
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	out := make([]teamJSON, 0, len(h.store.teams))
	for _, team := range h.store.teams {
		out = append(out, toTeamJSON(team))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) teamByID(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "teams") {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	for _, team := range h.store.teams {
		if team.ID == id {
			writeJSON(w, http.StatusOK, toTeamJSON(team))
			return
		}
	}
	writeError(w, http.StatusNotFound, "Not found.")
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "activities") {
		return
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	out := make([]activityJSON, 0, len(h.store.activities))
	for _, activity := range h.store.activities {
		out = append(out, toActivityJSON(activity))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) activityByID(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "activities") {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	for _, activity := range h.store.activities {
		if activity.ID == id {
			writeJSON(w, http.StatusOK, toActivityJSON(activity))
			return
		}
	}
	writeError(w, http.StatusNotFound, "Not found.")
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "leaderboard") {
		return
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	out := make([]leaderboardJSON, 0, len(h.store.leaderboard))
	for _, entry := range h.store.leaderboard {
		item := leaderboardJSON{ID: entry.ID, User: entry.User, TotalPoints: entry.Score}
		if entry.Team != nil {
			team := toTeamJSON(*entry.Team)
			item.Team = &team
		}
		out = append(out, item)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) workouts(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "workouts") {
		return
	}
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	writeJSON(w, http.StatusOK, nonNil(h.store.workouts))
}

func (h *Handler) userWorkouts(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, "user-workouts") {
		return
	}
	var (
		userID   int64
		filtered bool
	)
	if raw := r.URL.Query().Get("user"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "user must be numeric")
			return
		}
		userID, filtered = parsed, true
	}

	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	out := make([]domain.UserWorkout, 0, len(h.store.userWorkouts))
	for _, item := range h.store.userWorkouts {
		if filtered && item.User.ID != userID {
			continue
		}
		out = append(out, item)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) failed(w http.ResponseWriter, collection string) bool {
	status := h.store.failure(collection)
	if status == 0 {
		return false
	}
	writeError(w, status, http.StatusText(status))
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found.")
		return 0, false
	}
	return id, true
}

type teamJSON struct {
	domain.Team
	MemberCount int `json:"member_count"`
}

func toTeamJSON(team domain.Team) teamJSON {
	team.Members = nonNil(team.Members)
	return teamJSON{Team: team, MemberCount: len(team.Members)}
}

type activityJSON struct {
	ID              int64       `json:"id"`
	User            domain.User `json:"user"`
	ActivityType    string      `json:"activity_type"`
	TypeDisplay     string      `json:"activity_type_display,omitempty"`
	DurationMinutes int         `json:"duration_minutes"`
	Calories        int         `json:"calories_burned"`
	DistanceKM      float64     `json:"distance_km,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}

func toActivityJSON(a domain.Activity) activityJSON {
	return activityJSON{
		ID:              a.ID,
		User:            a.User,
		ActivityType:    a.ActivityType,
		TypeDisplay:     a.TypeDisplay,
		DurationMinutes: a.Duration,
		Calories:        a.Calories,
		DistanceKM:      a.DistanceKM,
		Notes:           a.Notes,
	}
}

type leaderboardJSON struct {
	ID          int64       `json:"id"`
	User        domain.User `json:"user"`
	Team        *teamJSON   `json:"team,omitempty"`
	TotalPoints float64     `json:"total_points"`
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
