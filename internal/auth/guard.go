package auth

// Decision is the route guard's verdict for one navigation.
type Decision int

const (
	// DecisionLoading renders a transient placeholder. Never a redirect:
	// redirecting before resolution would bounce logged-in users.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin sends the viewer to the login view,
	// replacing the current navigation entry.
	DecisionRedirectLogin
	// DecisionAllow renders the guarded content.
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// Decide gates one navigation. Token and role must BOTH be present: a
// token without a role, or a role without a token, is treated as
// unauthenticated.
func Decide(s State) Decision {
	if s.IsLoading {
		return DecisionLoading
	}
	if s.Token == "" || !s.Role.Known() {
		return DecisionRedirectLogin
	}
	return DecisionAllow
}
