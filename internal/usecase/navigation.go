package usecase

import (
	"elaundry/internal/data/entity"
	"elaundry/internal/dto/response"
)

// NavigationFor derives the navigation entries visible to a role. Logout is
// always present; an empty or unrecognized role matches no other branch.
func NavigationFor(role string) []response.NavEntry {
	var entries []response.NavEntry

	switch role {
	case entity.RoleAdmin:
		entries = append(entries,
			response.NavEntry{Label: "Home", Path: "/admin-dashboard"},
			response.NavEntry{Label: "Status", Path: "/status"},
			response.NavEntry{Label: "Sales", Path: "/sales"},
			response.NavEntry{Label: "QRCode", Path: "/qrcode"},
		)
	case entity.RoleSuperAdmin:
		entries = append(entries,
			response.NavEntry{Label: "SuperAdmin Home", Path: "/superadmin-dashboard"},
		)
	}

	return append(entries, response.NavEntry{Label: "Logout", Path: "/logout"})
}

// RedirectFor picks the landing screen after login.
func RedirectFor(role string) string {
	switch role {
	case entity.RoleAdmin:
		return "/admin-dashboard"
	case entity.RoleSuperAdmin:
		return "/superadmin-dashboard"
	default:
		return "/"
	}
}
