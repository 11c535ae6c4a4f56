package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"eventdesk/internal/auth"
)

const authStateKey = "auth_state"

// RouteGuard resolves the stored credentials once per request and decides
// whether the request may proceed. Unauthenticated requests are redirected
// to /login; requests caught mid-resolution get a neutral loading response
// instead of a redirect.
func RouteGuard(resolver *auth.Resolver, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		state := resolver.Resolve(c.Request.Context())

		switch auth.Decide(state) {
		case auth.DecisionLoading:
			c.AbortWithStatusJSON(http.StatusOK, ginext.H{"state": "loading"})
		case auth.DecisionRedirectLogin:
			log.Debug("unauthenticated request, redirecting",
				logger.String("path", c.Request.URL.Path),
			)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
		case auth.DecisionAllow:
			c.Set(authStateKey, state)
			c.Next()
		}
	}
}

// AuthState returns the state stored by RouteGuard for the current request.
func AuthState(c *ginext.Context) (auth.State, bool) {
	v, ok := c.Get(authStateKey)
	if !ok {
		return auth.State{}, false
	}
	state, ok := v.(auth.State)
	return state, ok
}
