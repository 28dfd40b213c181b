package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// page describes one routed view.
type page struct {
	Name     string // template set and metrics label
	Path     string
	Nav      string
	Title    string
	Resource string // noun used in "Loading users..." and error messages
	Icon     string
	Empty    string
	Detail   bool // a missing record is a 404, not an upstream failure
}

var (
	usersPage       = page{Name: "users", Path: "/users", Nav: "users", Title: "Users", Resource: "users", Icon: "bi-person-lines-fill", Empty: "No users found"}
	teamsPage       = page{Name: "teams", Path: "/teams", Nav: "teams", Title: "Teams", Resource: "teams", Icon: "bi-people", Empty: "No teams found"}
	activitiesPage  = page{Name: "activities", Path: "/activities", Nav: "activities", Title: "Activities", Resource: "activities", Icon: "bi-activity", Empty: "No activities found"}
	workoutsPage    = page{Name: "workouts", Path: "/workouts", Nav: "workouts", Title: "Workouts", Resource: "workouts", Icon: "bi-lightning", Empty: "No workouts found"}
	leaderboardPage = page{Name: "leaderboard", Path: "/leaderboard", Nav: "leaderboard", Title: "Leaderboard", Resource: "leaderboard", Icon: "bi-trophy", Empty: "No leaderboard entries found"}
	apiInfoPage     = page{Name: "apiinfo", Path: "/api-info", Nav: "apiinfo", Title: "API Connection Test", Resource: "API information", Icon: "bi-plug"}

	userPage     = page{Name: "user", Path: "/users", Nav: "users", Title: "User Details", Resource: "user", Icon: "bi-person-badge", Detail: true}
	teamPage     = page{Name: "team", Path: "/teams", Nav: "teams", Title: "Team Details", Resource: "team", Icon: "bi-shield-check", Detail: true}
	activityPage = page{Name: "activity", Path: "/activities", Nav: "activities", Title: "Activity Details", Resource: "activity", Icon: "bi-activity", Detail: true}
)

type link struct {
	Name  string
	Path  string
	Title string
	Icon  string
}

func linkTo(p page) link {
	return link{Name: p.Nav, Path: p.Path, Title: p.Title, Icon: p.Icon}
}

// navItems is the navigation bar, in display order.
var navItems = []link{
	linkTo(activitiesPage),
	linkTo(leaderboardPage),
	linkTo(teamsPage),
	linkTo(usersPage),
	linkTo(workoutsPage),
	{Name: apiInfoPage.Nav, Path: apiInfoPage.Path, Title: "API", Icon: apiInfoPage.Icon},
}

var welcomeLinks = []link{
	linkTo(activitiesPage),
	linkTo(leaderboardPage),
	linkTo(teamsPage),
	linkTo(workoutsPage),
}

// layoutView feeds the "layout" template.
type layoutView struct {
	Title      string
	Nav        string
	Path       string
	Page       page
	ContentURL string
	Content    contentView
}

// contentView feeds the "content" fragment: exactly one of Message, Empty
// or Data is set.
type contentView struct {
	Page    page
	State   string
	Message string
	Empty   bool
	Data    any
}

var funcs = template.FuncMap{
	"t":            translate,
	"points":       points,
	"inc":          func(i int) int { return i + 1 },
	"navItems":     func() []link { return navItems },
	"welcomeLinks": func() []link { return welcomeLinks },
}

var views = mustParseViews()

func mustParseViews() map[string]*template.Template {
	sets := map[string][]string{
		"shell":    {"shell.html"},
		"welcome":  {"welcome.html"},
		"notfound": {"notfound.html"},
	}
	for _, name := range []string{"users", "teams", "activities", "workouts", "leaderboard", "apiinfo", "user", "team", "activity"} {
		sets[name] = []string{"wrap.html", name + ".html"}
	}

	out := make(map[string]*template.Template, len(sets))
	for name, files := range sets {
		patterns := []string{"templates/layout.html", "templates/partials.html"}
		for _, file := range files {
			patterns = append(patterns, "templates/"+file)
		}
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, patterns...)
		if err != nil {
			panic(fmt.Sprintf("parse %s templates: %v", name, err))
		}
		out[name] = tmpl
	}
	return out
}

// render executes a template into a buffer so a failure can still produce a
// clean 500.
func (h *Handler) render(w http.ResponseWriter, set, name string, status int, data any) bool {
	tmpl, ok := views[set]
	if !ok {
		h.logger.Printf("render: unknown template set %q", set)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return false
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Printf("render %s/%s: %v", set, name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return false
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Printf("write %s/%s: %v", set, name, err)
	}
	return true
}

// isFragment reports an htmx swap request, which wants the bare fragment.
func isFragment(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
