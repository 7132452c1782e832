package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/smrc/smrc-cli/internal/logging"
)

// Outcome is the kind of a navigation decision.
type Outcome int

const (
	Allow Outcome = iota
	Redirect
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case NotFound:
		return "not-found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Decision is the guard's verdict for one transition.
type Decision struct {
	Outcome Outcome
	// Route is the matched route name for Allow.
	Route string
	// Vars holds path variables of the matched route, e.g. "id".
	Vars map[string]string
	// Location is the redirect target, including its query, for Redirect.
	Location string
}

// Authenticator reports whether a session is established.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// RoleSource reports whether the active profile is an authority.
type RoleSource interface {
	IsAuthority() bool
}

// Guard matches targets against the route table and decides whether a
// transition may proceed. Nothing is cached between calls.
type Guard struct {
	mux    *mux.Router
	routes map[string]Route
	auth   Authenticator
	roles  RoleSource
	logger logging.Logger
}

// NewGuard builds a guard over routes. Route names must be unique.
func NewGuard(routes []Route, auth Authenticator, roles RoleSource, logger logging.Logger) (*Guard, error) {
	g := &Guard{
		mux:    mux.NewRouter(),
		routes: make(map[string]Route, len(routes)),
		auth:   auth,
		roles:  roles,
		logger: logger.With("component", "router"),
	}
	for _, r := range routes {
		if _, dup := g.routes[r.Name]; dup {
			return nil, fmt.Errorf("duplicate route name %q", r.Name)
		}
		rt := g.mux.Path(r.Template).Name(r.Name)
		if err := rt.GetError(); err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Name, err)
		}
		g.routes[r.Name] = r
	}
	return g, nil
}

// Check evaluates the transition to target, a path with optional query.
func (g *Guard) Check(ctx context.Context, target string) Decision {
	u, err := url.Parse(target)
	if err != nil || u.Path == "" {
		g.logger.Debug(ctx, "unparsable navigation target", "target", target)
		return Decision{Outcome: NotFound}
	}

	var m mux.RouteMatch
	req := &http.Request{Method: http.MethodGet, URL: u}
	if !g.mux.Match(req, &m) || m.Route == nil {
		return Decision{Outcome: NotFound}
	}
	r := g.routes[m.Route.GetName()]
	vars := m.Vars
	if len(vars) == 0 {
		vars = nil
	}

	if !r.RequiresAuth {
		return Decision{Outcome: Allow, Route: r.Name, Vars: vars}
	}

	if !g.auth.IsAuthenticated(ctx) {
		q := url.Values{RedirectQueryName: {u.RequestURI()}}
		loc := LoginPath + "?" + q.Encode()
		g.logger.Debug(ctx, "redirecting to login", "target", target)
		return Decision{Outcome: Redirect, Location: loc}
	}

	if r.CitizenOnly && g.roles.IsAuthority() {
		g.logger.Debug(ctx, "authority redirected to dashboard", "target", target)
		return Decision{Outcome: Redirect, Location: DashboardPath}
	}

	return Decision{Outcome: Allow, Route: r.Name, Vars: vars}
}

// URL builds the path of a named route.
func (g *Guard) URL(name string, pairs ...string) (string, error) {
	rt := g.mux.Get(name)
	if rt == nil {
		return "", fmt.Errorf("unknown route %q", name)
	}
	u, err := rt.URLPath(pairs...)
	if err != nil {
		return "", err
	}
	return u.Path, nil
}

// Routes returns the route table in registration order.
func (g *Guard) Routes() []Route {
	out := make([]Route, 0, len(g.routes))
	_ = g.mux.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if r, ok := g.routes[rt.GetName()]; ok {
			out = append(out, r)
		}
		return nil
	})
	return out
}
