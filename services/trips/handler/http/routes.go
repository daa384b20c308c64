package http

import (
	"github.com/labstack/echo/v4"

	"github.com/trailyn/transport/internal/pkg/middleware"
	"github.com/trailyn/transport/internal/pkg/models"
)

// RegisterRoutes registers the trip lifecycle routes. Drivers own their trip
// listing and the in-window transitions; dispatch owns scheduling,
// cancellation, and the force-complete override.
func (h *TripsHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)

	driver := e.Group("/v1/driver", auth, middleware.RequireRole("driver"))
	driver.GET("/trips", h.ListForDriver)
	driver.GET("/trips/:id", h.GetTrip)
	driver.POST("/trips/:id/confirmations/open", h.OpenConfirmations)
	driver.POST("/trips/:id/confirmations/close", h.CloseConfirmations)
	driver.POST("/trips/:id/route", h.GenerateRoute)
	driver.POST("/trips/:id/start", h.StartTrip)
	driver.POST("/trips/:id/complete", h.CompleteTrip)

	dispatch := e.Group("/v1/dispatch", auth, middleware.RequireRole("dispatch"))
	dispatch.POST("/trips", h.CreateTrip)
	dispatch.POST("/trips/:id/schedule", h.Schedule)
	dispatch.POST("/trips/:id/complete", h.CompleteTrip)
	dispatch.POST("/trips/:id/cancel", h.Cancel)
	dispatch.GET("/trips/:id", h.GetTrip)
}
