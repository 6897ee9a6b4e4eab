package dashboard

import (
	"testing"
	"tripdash/internals/gate"
	"tripdash/internals/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(items []MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Path)
	}
	return out
}

func TestMenuFor(t *testing.T) {
	assert.Equal(t, []string{
		"/dashboard", "/dashboard/trips", "/dashboard/matches", "/dashboard/events",
		"/dashboard/users", "/dashboard/settings",
	}, paths(MenuFor(security.RoleAdmin)))

	assert.Equal(t, []string{
		"/dashboard", "/dashboard/trips", "/dashboard/matches", "/dashboard/events",
		"/dashboard/events/host", "/dashboard/subscription", "/dashboard/settings",
	}, paths(MenuFor(security.RoleUser)))

	assert.Empty(t, MenuFor(""))
	assert.Empty(t, MenuFor("GUIDE"))
}

func TestMenuForReturnsFreshSlice(t *testing.T) {
	first := MenuFor(security.RoleUser)
	first[0].Label = "changed"

	assert.Equal(t, "Overview", MenuFor(security.RoleUser)[0].Label)
}

func TestMenuItemsAreReachable(t *testing.T) {
	tbl, err := gate.NewTable(gate.Config{
		Matcher:       []string{"/dashboard"},
		AdminPrefixes: []string{"/dashboard/users"},
		UserPrefixes:  []string{"/dashboard/events/host", "/dashboard/subscription"},
		LoginPath:     "/login",
		FallbackPath:  "/dashboard",
	})
	require.NoError(t, err)

	for _, role := range []security.Role{security.RoleAdmin, security.RoleUser} {
		for _, item := range MenuFor(role) {
			assert.True(t, tbl.Allowed(item.Path, role), "%s cannot reach %s", role, item.Path)
		}
	}
}
