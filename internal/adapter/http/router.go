package http

import "github.com/labstack/echo/v4"

// Register mounts every route on e. idem wraps the mutating loan routes and
// may be nil when no idempotency store is configured. /me is mounted only
// when requireToken is set.
func Register(e *echo.Echo, h Handlers, idem, requireToken echo.MiddlewareFunc) {
	var loanMW []echo.MiddlewareFunc
	if idem != nil {
		loanMW = append(loanMW, idem)
	}

	e.GET("/health", h.Health.Health)

	e.POST("/login", h.Auth.Login)
	e.POST("/signup", h.Auth.Signup)
	if requireToken != nil {
		e.GET("/me", h.Auth.Me, requireToken)
	}

	e.GET("/items", h.Items.List)
	e.GET("/items/:id", h.Items.Get)

	e.POST("/borrow-request", h.Borrow.Create, loanMW...)
	e.GET("/borrow-requests", h.Borrow.List)
	e.GET("/borrow-requests/:id", h.Borrow.Get)
	e.PATCH("/borrow-requests/:id", h.Borrow.Update, loanMW...)
	e.PATCH("/borrow-requests/:id/cancel", h.Borrow.Cancel, loanMW...)

	users := e.Group("/users/:id")
	users.GET("", h.Users.Get)
	users.GET("/borrow-requests", h.Borrow.ListByBorrower)
	users.GET("/favorites", h.Favorites.List)
	users.POST("/favorites", h.Favorites.Add)
	users.DELETE("/favorites/:item_id", h.Favorites.Remove)
	users.GET("/history", h.History.ListByUser)

	e.GET("/history", h.History.List)
	e.GET("/history/:id", h.History.Get)
	e.PATCH("/history/:id", h.History.Correct)
}
