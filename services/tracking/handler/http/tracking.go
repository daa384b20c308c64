package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailyn/transport/internal/pkg/middleware"
	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/internal/utils"
	"github.com/trailyn/transport/services/tracking"
)

// TrackingHandler handles HTTP requests for driver location reporting
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// PublishLocation handles a driver GPS report
func (h *TrackingHandler) PublishLocation(c echo.Context) error {
	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var update models.LocationUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	update.DriverID = driverID.String()

	if err := h.trackingUC.PublishLocation(c.Request().Context(), &update); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location recorded successfully", nil)
}

// RegisterRoutes registers the tracking routes
func (h *TrackingHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)

	driver := e.Group("/v1/driver", auth, middleware.RequireRole("driver"))
	driver.POST("/location", h.PublishLocation)
}
