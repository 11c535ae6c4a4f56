package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	Register(c *ginext.Context)
	Logout(c *ginext.Context)
	Dashboard(c *ginext.Context)
	Book(c *ginext.Context)
	UpdateSession(c *ginext.Context)
	CancelSession(c *ginext.Context)
}

// InitRouter wires the local surface. Everything behind the guard needs
// resolved credentials; /login, /register and /health do not.
func InitRouter(mode string, h Handler, guard ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Redirect target for guarded routes that resolve unauthenticated.
	router.GET("/login", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"view": "login"})
	})

	router.POST("/login", h.Login)
	router.POST("/register", h.Register)
	router.POST("/logout", h.Logout)

	guarded := router.Group("/", guard)
	{
		guarded.GET("/dashboard", h.Dashboard)
		guarded.POST("/dashboard/book", h.Book)
		guarded.PUT("/sessions/:id", h.UpdateSession)
		guarded.PUT("/sessions/:id/cancel", h.CancelSession)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
