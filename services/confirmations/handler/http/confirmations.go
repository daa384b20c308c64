package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trailyn/transport/internal/pkg/middleware"
	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/internal/utils"
	"github.com/trailyn/transport/services/confirmations"
)

// ConfirmationsHandler handles HTTP requests for the confirmation ledger
type ConfirmationsHandler struct {
	confirmationUC confirmations.ConfirmationUC
}

// NewConfirmationsHandler creates a new confirmations HTTP handler
func NewConfirmationsHandler(confirmationUC confirmations.ConfirmationUC) *ConfirmationsHandler {
	return &ConfirmationsHandler{
		confirmationUC: confirmationUC,
	}
}

// Confirm handles a guardian committing a rider to today's trip occurrence
func (h *ConfirmationsHandler) Confirm(c echo.Context) error {
	guardianID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.TripID == uuid.Nil {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}
	if req.RiderID == uuid.Nil {
		return utils.BadRequestResponse(c, "Rider ID is required")
	}
	if req.PickupAddress == "" {
		return utils.BadRequestResponse(c, "Pickup address is required")
	}
	req.GuardianID = guardianID

	rec, err := h.confirmationUC.Confirm(c.Request().Context(), req, time.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Confirmation created successfully", rec)
}

// Cancel handles cancelling a confirmation
func (h *ConfirmationsHandler) Cancel(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	actorRole, _ := c.Get(middleware.ContextActorRole).(string)

	confirmationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Confirmation ID must be a valid UUID")
	}

	if err := h.confirmationUC.CancelConfirmation(c.Request().Context(), confirmationID, actorID, actorRole, time.Now()); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Confirmation cancelled successfully", nil)
}

// ListMine returns the authenticated guardian's confirmations for today
func (h *ConfirmationsHandler) ListMine(c echo.Context) error {
	guardianID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	recs, err := h.confirmationUC.ListForGuardian(c.Request().Context(), guardianID, time.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Confirmations retrieved successfully", recs)
}
