package dashboard

import "tripdash/internals/security"

type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var (
	commonItems = []MenuItem{
		{Label: "Overview", Path: "/dashboard"},
		{Label: "Trips", Path: "/dashboard/trips"},
		{Label: "Matches", Path: "/dashboard/matches"},
		{Label: "Events", Path: "/dashboard/events"},
	}
	adminItems = []MenuItem{
		{Label: "Users", Path: "/dashboard/users"},
	}
	userItems = []MenuItem{
		{Label: "Host an event", Path: "/dashboard/events/host"},
		{Label: "Subscription", Path: "/dashboard/subscription"},
	}
	settingsItem = MenuItem{Label: "Settings", Path: "/dashboard/settings"}
)

// MenuFor returns the navigation for role in display order. The result is a
// fresh slice; callers may modify it.
func MenuFor(role security.Role) []MenuItem {
	var extra []MenuItem
	switch role {
	case security.RoleAdmin:
		extra = adminItems
	case security.RoleUser:
		extra = userItems
	default:
		return []MenuItem{}
	}

	items := make([]MenuItem, 0, len(commonItems)+len(extra)+1)
	items = append(items, commonItems...)
	items = append(items, extra...)
	items = append(items, settingsItem)
	return items
}
