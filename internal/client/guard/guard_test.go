package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proaim/proaimctl/internal/client/models"
	"github.com/proaim/proaimctl/internal/client/session"
)

func authSnap(role models.Role) session.Snapshot {
	return session.Snapshot{
		CurrentUser:     &models.User{ID: 1, Username: "jdoe", Role: role},
		IsAuthenticated: true,
	}
}

func TestEvaluate_UnauthenticatedDeniedEverywhere(t *testing.T) {
	snap := session.Snapshot{}

	for name, route := range Table() {
		if !route.Protected {
			continue
		}
		d := Evaluate(route, snap)
		assert.False(t, d.Allowed, "route %q must deny unauthenticated access", name)
		assert.Equal(t, RouteLogin, d.RedirectTo, "route %q must redirect to login", name)
	}
}

func TestEvaluate_UnauthenticatedDeniedEvenWithRoles(t *testing.T) {
	route := Route{Name: "users", Protected: true, RequiredRoles: []models.Role{models.RoleAdmin}}

	d := Evaluate(route, session.Snapshot{})
	assert.False(t, d.Allowed)
	// rule 1 wins: the redirect goes to login, not dashboard
	assert.Equal(t, RouteLogin, d.RedirectTo)
}

func TestEvaluate_RoleMismatchRedirectsToDashboard(t *testing.T) {
	route := Route{Name: "users", Protected: true, RequiredRoles: []models.Role{models.RoleAdmin}}

	d := Evaluate(route, authSnap(models.RoleUser))
	assert.False(t, d.Allowed)
	assert.Equal(t, RouteDashboard, d.RedirectTo)
}

func TestEvaluate_RoleMatchAllows(t *testing.T) {
	route := Route{Name: "users", Protected: true, RequiredRoles: []models.Role{models.RoleAdmin}}

	d := Evaluate(route, authSnap(models.RoleAdmin))
	assert.True(t, d.Allowed)
	assert.Empty(t, d.RedirectTo)
}

func TestEvaluate_AnyOfSeveralRoles(t *testing.T) {
	route := Route{Name: "rentals", Protected: true,
		RequiredRoles: []models.Role{models.RoleLandlord, models.RoleAdmin}}

	assert.True(t, Evaluate(route, authSnap(models.RoleLandlord)).Allowed)
	assert.True(t, Evaluate(route, authSnap(models.RoleAdmin)).Allowed)
	assert.False(t, Evaluate(route, authSnap(models.RoleTenant)).Allowed)
}

func TestEvaluate_ProtectedWithoutRolesAllowsAnyAuthenticated(t *testing.T) {
	route := Route{Name: "dashboard", Protected: true}

	d := Evaluate(route, authSnap(models.RoleTenant))
	assert.True(t, d.Allowed)
}

func TestEvaluate_AuthenticatedButNoUserRecord_DeniedRoleViews(t *testing.T) {
	route := Route{Name: "users", Protected: true, RequiredRoles: []models.Role{models.RoleAdmin}}
	snap := session.Snapshot{IsAuthenticated: true} // inconsistent, be safe

	d := Evaluate(route, snap)
	assert.False(t, d.Allowed)
	assert.Equal(t, RouteDashboard, d.RedirectTo)
}

func TestEvaluate_PublicRoutesAlwaysAllow(t *testing.T) {
	for _, name := range []string{"home", RouteLogin, "register"} {
		d := Check(name, session.Snapshot{})
		assert.True(t, d.Allowed, "public route %q", name)
	}
}

func TestCheck_UnknownRouteTreatedAsProtected(t *testing.T) {
	d := Check("no-such-view", session.Snapshot{})
	assert.False(t, d.Allowed)
	assert.Equal(t, RouteLogin, d.RedirectTo)

	d = Check("no-such-view", authSnap(models.RoleUser))
	assert.True(t, d.Allowed)
}

func TestTable_UsersViewIsAdminOnly(t *testing.T) {
	users, ok := Table()["users"]
	assert.True(t, ok)
	assert.True(t, users.Protected)
	assert.Equal(t, []models.Role{models.RoleAdmin}, users.RequiredRoles)
}
