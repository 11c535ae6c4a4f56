package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventdesk/internal/domain"
)

func TestDecide_LoadingNeverRedirects(t *testing.T) {
	states := []State{
		Pending(),
		{IsLoading: true, Token: "tok", Role: domain.RoleUser},
		{IsLoading: true, Token: "", Role: domain.RoleUnknown},
		{IsLoading: true, Token: "tok", Role: domain.RoleFacilitator},
	}

	for _, s := range states {
		assert.Equal(t, DecisionLoading, Decide(s), "state %+v", s)
	}
}

func TestDecide_MissingTokenRedirectsRegardlessOfRole(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleUser, domain.RoleFacilitator, domain.RoleUnknown} {
		s := State{Token: "", Role: role}
		assert.Equal(t, DecisionRedirectLogin, Decide(s), "role %q", role)
	}
}

func TestDecide_TokenWithoutRoleRedirects(t *testing.T) {
	s := State{Token: "tok", Role: domain.RoleUnknown}
	assert.Equal(t, DecisionRedirectLogin, Decide(s))
}

func TestDecide_UnrecognizedRoleRedirects(t *testing.T) {
	s := State{Token: "tok", Role: domain.Role("Admin")}
	assert.Equal(t, DecisionRedirectLogin, Decide(s))
}

func TestDecide_BothPresentAllows(t *testing.T) {
	assert.Equal(t, DecisionAllow, Decide(State{Token: "tok", Role: domain.RoleUser}))
	assert.Equal(t, DecisionAllow, Decide(State{Token: "tok", Role: domain.RoleFacilitator}))
}

func TestViewFor_ClosedRoleSet(t *testing.T) {
	assert.Equal(t, ViewUserDashboard, ViewFor(domain.RoleUser))
	assert.Equal(t, ViewFacilitatorDashboard, ViewFor(domain.RoleFacilitator))

	// Anything outside the closed set gets the neutral placeholder,
	// never either dashboard.
	for _, raw := range []string{"", "admin", "USER", "facilitator", "root"} {
		v := ViewFor(domain.ParseRole(raw))
		assert.Equal(t, ViewLoading, v, "raw role %q", raw)
	}
}
