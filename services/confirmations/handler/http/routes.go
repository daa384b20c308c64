package http

import (
	"github.com/labstack/echo/v4"

	"github.com/trailyn/transport/internal/pkg/middleware"
	"github.com/trailyn/transport/internal/pkg/models"
)

// RegisterRoutes registers the confirmation ledger routes. Guardians create
// and cancel their own confirmations; dispatch may cancel any of them.
func (h *ConfirmationsHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)

	guardian := e.Group("/v1/guardian", auth, middleware.RequireRole("guardian"))
	guardian.POST("/confirmations", h.Confirm)
	guardian.DELETE("/confirmations/:id", h.Cancel)
	guardian.GET("/confirmations", h.ListMine)

	dispatch := e.Group("/v1/dispatch", auth, middleware.RequireRole("dispatch"))
	dispatch.DELETE("/confirmations/:id", h.Cancel)
}
