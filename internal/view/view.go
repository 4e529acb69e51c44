package view

import "github.com/gordonhealth/staff-portal/internal/roster"

// ViewType enumerates the portal screens.
type ViewType string

const (
	Login          ViewType = "LOGIN"
	Dashboard      ViewType = "DASHBOARD"
	Calendar       ViewType = "CALENDAR"
	Notices        ViewType = "NOTICES"
	AdminPush      ViewType = "ADMIN_PUSH"
	UserManagement ViewType = "USER_MANAGEMENT"
)

// Route maps the current identity plus a selector to the screen to render.
// No identity always yields the login screen; an unknown selector falls back
// to the dashboard. Admin-only selectors are not hard-blocked here: the
// navigation simply never offers them to staff.
func Route(identity *roster.User, selector ViewType) ViewType {
	if identity == nil {
		return Login
	}

	switch selector {
	case Dashboard, Calendar, Notices, AdminPush, UserManagement:
		return selector
	default:
		return Dashboard
	}
}

// NavigationFor lists the screens offered to an identity's role.
func NavigationFor(identity *roster.User) []ViewType {
	if identity == nil {
		return []ViewType{Login}
	}

	views := []ViewType{Dashboard, Calendar, Notices}
	if identity.IsAdmin() {
		views = append(views, AdminPush, UserManagement)
	}
	return views
}
