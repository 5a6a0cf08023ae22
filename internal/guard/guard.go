// Package guard gates navigation to protected views given the session state
// and a per-route role allow-list. The decision function is stateless and is
// re-evaluated on every navigation.
package guard

import (
	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// Route attaches an authorization rule to a navigable path. A nil
// RequiredRoles with Protected set means any authenticated user; an empty
// Protected route is public.
type Route struct {
	Path          string
	Protected     bool
	RequiredRoles []entity.Role // nil = any authenticated user
}

// Session is the slice of the session store the guard consults.
// *store.SessionStore satisfies it.
type Session interface {
	IsAuthenticated() bool
	HasRole(roles ...entity.Role) bool
}

// Verdict classifies a navigation attempt.
type Verdict int

const (
	// Allow renders the requested view.
	Allow Verdict = iota
	// RedirectLogin sends the actor to the login view; Decision.From carries
	// the intended path so login can forward there afterwards.
	RedirectLogin
	// RedirectHome sends an authenticated but unauthorized actor to the
	// public home view.
	RedirectHome
)

// Decision is the outcome of authorizing one navigation.
type Decision struct {
	Verdict Verdict
	// From is the originally requested path, set on RedirectLogin.
	From string
}

// Guard authorizes navigation against a fixed route table.
type Guard struct {
	session Session
	routes  map[string]Route
}

// New builds a guard over the given route table.
func New(session Session, routes []Route) *Guard {
	table := make(map[string]Route, len(routes))
	for _, r := range routes {
		table[r.Path] = r
	}
	return &Guard{session: session, routes: table}
}

// Authorize decides whether the current actor may visit path.
// Unknown paths are treated as public; the router's not-found handling owns
// those.
func (g *Guard) Authorize(path string) Decision {
	route, ok := g.routes[path]
	if !ok || !route.Protected {
		return Decision{Verdict: Allow}
	}
	if !g.session.IsAuthenticated() {
		return Decision{Verdict: RedirectLogin, From: path}
	}
	if len(route.RequiredRoles) > 0 && !g.session.HasRole(route.RequiredRoles...) {
		return Decision{Verdict: RedirectHome}
	}
	return Decision{Verdict: Allow}
}
