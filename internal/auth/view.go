package auth

import "eventdesk/internal/domain"

// View is what a role-routed navigation renders.
type View int

const (
	// ViewLoading is the neutral placeholder for an unresolved or
	// unrecognized role. Never an error page and never a dashboard, so
	// a malformed role cannot land on the facilitator view.
	ViewLoading View = iota
	ViewUserDashboard
	ViewFacilitatorDashboard
)

func (v View) String() string {
	switch v {
	case ViewUserDashboard:
		return "user-dashboard"
	case ViewFacilitatorDashboard:
		return "facilitator-dashboard"
	default:
		return "loading"
	}
}

// ViewFor selects the dashboard for a resolved role.
func ViewFor(role domain.Role) View {
	switch role {
	case domain.RoleUser:
		return ViewUserDashboard
	case domain.RoleFacilitator:
		return ViewFacilitatorDashboard
	default:
		return ViewLoading
	}
}
