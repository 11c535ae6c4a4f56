package domain

// RegisterInput carries the signup profile. Username is required for the
// User role, Phone for the Facilitator role; the rest is common.
type RegisterInput struct {
	Name     string
	Email    string
	Username string
	Phone    string
	Password string
	Role     Role
}
