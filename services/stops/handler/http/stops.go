package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trailyn/transport/internal/pkg/middleware"
	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/internal/utils"
	"github.com/trailyn/transport/services/stops"
)

// StopsHandler handles HTTP requests for stop completion
type StopsHandler struct {
	stopUC stops.StopUC
}

// NewStopsHandler creates a new stops HTTP handler
func NewStopsHandler(stopUC stops.StopUC) *StopsHandler {
	return &StopsHandler{
		stopUC: stopUC,
	}
}

// CompleteStop handles a driver submitting a scanned rider code at a stop
func (h *StopsHandler) CompleteStop(c echo.Context) error {
	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}
	stopID, err := uuid.Parse(c.Param("stopId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Stop ID must be a valid UUID")
	}

	type CompleteStopBody struct {
		Code string `json:"code"`
	}
	var req CompleteStopBody
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "Scanned code is required")
	}

	info, err := h.stopUC.CompleteStop(c.Request().Context(), driverID, tripID, stopID, req.Code)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop completed successfully", info)
}

// RegisterRoutes registers the stop completion routes
func (h *StopsHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)

	driver := e.Group("/v1/driver", auth, middleware.RequireRole("driver"))
	driver.POST("/trips/:id/stops/:stopId/complete", h.CompleteStop)
}
