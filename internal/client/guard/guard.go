// Package guard decides whether a view may render given the current
// session snapshot and the view's static route configuration. It is a pure
// function of its inputs: no network calls, no side effects.
package guard

import (
	"github.com/proaim/proaimctl/internal/client/models"
	"github.com/proaim/proaimctl/internal/client/session"
)

// Well-known redirect targets.
const (
	RouteLogin     = "login"
	RouteDashboard = "dashboard"
)

// Route is the static per-view access configuration.
type Route struct {
	Name      string
	Protected bool
	// RequiredRoles restricts the view to the listed roles. Empty means
	// any authenticated user (when Protected).
	RequiredRoles []models.Role
}

// Decision is the guard's verdict for one navigation attempt.
type Decision struct {
	Allowed bool
	// RedirectTo names the route to fall back to when denied.
	RedirectTo string
}

// Evaluate applies the access rules in order, first match wins:
//
//  1. Unauthenticated access to a protected view: deny, redirect to login.
//  2. Authenticated but missing a required role: deny, redirect to the
//     default authenticated landing view.
//  3. Otherwise: allow.
func Evaluate(route Route, snap session.Snapshot) Decision {
	if !route.Protected {
		return Decision{Allowed: true}
	}

	if !snap.IsAuthenticated {
		return Decision{RedirectTo: RouteLogin}
	}

	if len(route.RequiredRoles) > 0 {
		if snap.CurrentUser == nil || !hasRole(route.RequiredRoles, snap.CurrentUser.Role) {
			return Decision{RedirectTo: RouteDashboard}
		}
	}

	return Decision{Allowed: true}
}

func hasRole(required []models.Role, role models.Role) bool {
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}

// Table returns the application's route configuration: which views exist,
// which require authentication, and which are role-restricted.
func Table() map[string]Route {
	routes := []Route{
		{Name: "home"},
		{Name: RouteLogin},
		{Name: "register"},
		{Name: RouteDashboard, Protected: true},
		{Name: "profile", Protected: true},
		{Name: "listings", Protected: true},
		{Name: "properties", Protected: true},
		{Name: "payments", Protected: true},
		{Name: "rentals", Protected: true},
		{Name: "users", Protected: true, RequiredRoles: []models.Role{models.RoleAdmin}},
	}

	table := make(map[string]Route, len(routes))
	for _, r := range routes {
		table[r.Name] = r
	}
	return table
}

// Check looks the named route up in the table and evaluates it. Unknown
// routes are treated as protected with no role restriction, so a typo can
// never widen access.
func Check(name string, snap session.Snapshot) Decision {
	route, ok := Table()[name]
	if !ok {
		route = Route{Name: name, Protected: true}
	}
	return Evaluate(route, snap)
}
