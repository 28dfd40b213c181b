// Package pages renders the OctoFit dashboard: the application shell, one
// view per resource and the detail views reached from them.
//
// Every resource page is served in two steps. GET /<page> answers at once
// with the layout and a loading spinner; the spinner's hx-get then requests
// GET /<page>/content, which performs the single upstream fetch and renders
// the error, empty or data state.
package pages

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/trace"

	"example.com/octofit/internal/apiclient"
	"example.com/octofit/internal/domain"
	"example.com/octofit/internal/fetch"
	"example.com/octofit/internal/observability"
)

// Source is the OctoFit API as the pages consume it.
type Source interface {
	BaseURL() string
	APIInfo(ctx context.Context) (domain.APIInfo, error)
	Users(ctx context.Context) ([]domain.User, error)
	User(ctx context.Context, id int64) (domain.User, error)
	Teams(ctx context.Context) ([]domain.Team, error)
	Team(ctx context.Context, id int64) (domain.Team, error)
	Activities(ctx context.Context) ([]domain.Activity, error)
	Activity(ctx context.Context, id int64) (domain.Activity, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Workouts(ctx context.Context) ([]domain.Workout, error)
	UserWorkouts(ctx context.Context, userID int64) ([]domain.UserWorkout, error)
}

// Option configures Handler.
type Option func(*Handler)

// WithLogger overrides the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Handler serves the dashboard pages.
type Handler struct {
	api    Source
	logger *log.Logger
}

// NewHandler builds a Handler reading from api.
func NewHandler(api Source, opts ...Option) *Handler {
	h := &Handler{
		api:    api,
		logger: log.New(log.Writer(), "[pages] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes wires the pages to the mux. Paths nothing else claims get
// the not-found page.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", healthz)
	mux.HandleFunc("GET /{$}", h.welcome)

	for _, p := range []page{usersPage, teamsPage, activitiesPage, workoutsPage, leaderboardPage, apiInfoPage} {
		mux.HandleFunc("GET "+p.Path, h.shell(p))
	}
	mux.HandleFunc("GET /users/content", h.users)
	mux.HandleFunc("GET /teams/content", h.teams)
	mux.HandleFunc("GET /activities/content", h.activities)
	mux.HandleFunc("GET /workouts/content", h.workouts)
	mux.HandleFunc("GET /leaderboard/content", h.leaderboard)
	mux.HandleFunc("GET /api-info/content", h.apiInfo)

	mux.HandleFunc("GET /users/{id}", h.detailShell(userPage))
	mux.HandleFunc("GET /users/{id}/content", h.user)
	mux.HandleFunc("GET /teams/{id}", h.detailShell(teamPage))
	mux.HandleFunc("GET /teams/{id}/content", h.team)
	mux.HandleFunc("GET /activities/{id}", h.detailShell(activityPage))
	mux.HandleFunc("GET /activities/{id}/content", h.activity)

	mux.HandleFunc("/", h.notFound)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	if h.render(w, "welcome", "layout", http.StatusOK, layoutView{Title: "Home", Path: r.URL.Path}) {
		observability.RecordPageRender("welcome", "success")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if h.render(w, "notfound", "layout", http.StatusNotFound, layoutView{Title: "Not Found", Path: r.URL.Path}) {
		observability.RecordPageRender("notfound", "success")
	}
}

func (h *Handler) shell(p page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderShell(w, r, p, p.Path+"/content")
	}
}

func (h *Handler) detailShell(p page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			h.notFound(w, r)
			return
		}
		h.renderShell(w, r, p, fmt.Sprintf("%s/%d/content", p.Path, id))
	}
}

func (h *Handler) renderShell(w http.ResponseWriter, r *http.Request, p page, contentURL string) {
	view := layoutView{Title: p.Title, Nav: p.Nav, Path: r.URL.Path, Page: p, ContentURL: contentURL}
	if h.render(w, "shell", "layout", http.StatusOK, view) {
		observability.RecordPageRender(p.Name, fetch.Loading.String())
	}
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	serveContent(h, w, r, usersPage, h.api.Users)
}

func (h *Handler) teams(w http.ResponseWriter, r *http.Request) {
	serveContent(h, w, r, teamsPage, h.api.Teams)
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	serveContent(h, w, r, activitiesPage, h.api.Activities)
}

func (h *Handler) workouts(w http.ResponseWriter, r *http.Request) {
	serveContent(h, w, r, workoutsPage, h.api.Workouts)
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	serveContent(h, w, r, leaderboardPage, func(ctx context.Context) ([]domain.RankedEntry, error) {
		entries, err := h.api.Leaderboard(ctx)
		if err != nil {
			return nil, err
		}
		return domain.RankLeaderboard(entries), nil
	})
}

// apiOverview is the API connection test: the root payload plus the users
// it can see.
type apiOverview struct {
	BaseURL string
	Info    domain.APIInfo
	Users   []domain.User
}

func (h *Handler) apiInfo(w http.ResponseWriter, r *http.Request) {
	serveContent(h, w, r, apiInfoPage, func(ctx context.Context) (apiOverview, error) {
		info, err := h.api.APIInfo(ctx)
		if err != nil {
			return apiOverview{}, err
		}
		users, err := h.api.Users(ctx)
		if err != nil {
			return apiOverview{}, err
		}
		return apiOverview{BaseURL: h.api.BaseURL(), Info: info, Users: users}, nil
	})
}

// userDetail is a user with the workouts they completed.
type userDetail struct {
	User     domain.User
	Workouts []domain.UserWorkout
}

func (h *Handler) user(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	serveContent(h, w, r, userPage, func(ctx context.Context) (userDetail, error) {
		user, err := h.api.User(ctx, id)
		if err != nil {
			return userDetail{}, err
		}
		workouts, err := h.api.UserWorkouts(ctx, id)
		if err != nil {
			return userDetail{}, err
		}
		return userDetail{User: user, Workouts: workouts}, nil
	})
}

func (h *Handler) team(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	serveContent(h, w, r, teamPage, func(ctx context.Context) (domain.Team, error) {
		return h.api.Team(ctx, id)
	})
}

func (h *Handler) activity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	serveContent(h, w, r, activityPage, func(ctx context.Context) (domain.Activity, error) {
		return h.api.Activity(ctx, id)
	})
}

// serveContent loads one resource on the request context and renders its
// settled state. A load abandoned because the viewer went away renders
// nothing.
func serveContent[T any](h *Handler, w http.ResponseWriter, r *http.Request, p page, fn fetch.Func[T]) {
	state := fetch.Load(r.Context(), p.Resource, fn)
	if state.Canceled() {
		h.logger.Printf("%s: load abandoned: %v", p.Name, state.Err)
		observability.RecordPageRender(p.Name, "canceled")
		return
	}

	view := contentView{Page: p, State: state.Status.String()}
	status := http.StatusOK
	switch {
	case state.Failed():
		view.Message = state.Message
		status = http.StatusBadGateway
		if p.Detail && apiclient.StatusCode(state.Err) == http.StatusNotFound {
			status = http.StatusNotFound
		}
		h.logger.Printf("%s: %s%s", p.Name, state.Message, traceSuffix(r.Context()))
	case state.Empty():
		view.Empty = true
		view.State = "empty"
	default:
		view.Data = state.Data
	}

	var rendered bool
	if isFragment(r) {
		// htmx only swaps 2xx responses, so the error banner goes out as 200.
		rendered = h.render(w, p.Name, "content", http.StatusOK, view)
	} else {
		rendered = h.render(w, p.Name, "layout", status, layoutView{
			Title:   p.Title,
			Nav:     p.Nav,
			Path:    r.URL.Path,
			Page:    p,
			Content: view,
		})
	}
	if rendered {
		observability.RecordPageRender(p.Name, view.State)
	}
}

// traceSuffix ties a log line to the request's trace when one is recorded.
func traceSuffix(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return " trace_id=" + sc.TraceID().String()
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
