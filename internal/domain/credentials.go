package domain

// Role is the closed set of account roles the gateway understands.
// Anything outside the set parses to RoleUnknown so that a malformed
// role can never select a privileged view.
type Role string

const (
	RoleUser        Role = "User"
	RoleFacilitator Role = "Facilitator"
	RoleUnknown     Role = ""
)

func ParseRole(s string) Role {
	switch s {
	case string(RoleUser):
		return RoleUser
	case string(RoleFacilitator):
		return RoleFacilitator
	default:
		return RoleUnknown
	}
}

func (r Role) Known() bool {
	return r == RoleUser || r == RoleFacilitator
}

// Credentials is the persisted auth state: token, user id and role.
// Absence of any field is a valid state meaning "unauthenticated".
type Credentials struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

func (c Credentials) Empty() bool {
	return c.Token == "" && c.UserID == "" && c.Role == RoleUnknown
}
