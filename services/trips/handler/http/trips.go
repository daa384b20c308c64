package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trailyn/transport/internal/pkg/middleware"
	"github.com/trailyn/transport/internal/pkg/models"
	nrpkg "github.com/trailyn/transport/internal/pkg/newrelic"
	"github.com/trailyn/transport/internal/utils"
	"github.com/trailyn/transport/services/trips"
)

// TripsHandler handles HTTP requests for trip lifecycle operations
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{
		tripUC: tripUC,
	}
}

// CreateTrip handles trip creation by dispatch
func (h *TripsHandler) CreateTrip(c echo.Context) error {
	type CreateTripBody struct {
		DriverID      string  `json:"driver_id"`
		SchoolID      string  `json:"school_id"`
		Name          string  `json:"name"`
		Kind          string  `json:"kind"`
		Shift         string  `json:"shift"`
		Recurrence    string  `json:"recurrence"`
		TripDate      *string `json:"trip_date,omitempty"`
		WeekdayMask   uint8   `json:"weekday_mask,omitempty"`
		DepartureTime string  `json:"departure_time"`
		MinRiders     int     `json:"min_riders"`
		MaxRiders     int     `json:"max_riders"`
	}

	var req CreateTripBody
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return utils.BadRequestResponse(c, "Driver ID must be a valid UUID")
	}
	schoolID, err := uuid.Parse(req.SchoolID)
	if err != nil {
		return utils.BadRequestResponse(c, "School ID must be a valid UUID")
	}
	if req.DepartureTime == "" {
		return utils.BadRequestResponse(c, "Departure time is required")
	}
	if req.MinRiders < 0 || req.MaxRiders < req.MinRiders {
		return utils.BadRequestResponse(c, "Quota must satisfy 0 <= min_riders <= max_riders")
	}

	trip := &models.TripOccurrence{
		DriverID:      driverID,
		SchoolID:      schoolID,
		Name:          req.Name,
		Kind:          models.TripKind(req.Kind),
		Shift:         models.Shift(req.Shift),
		Recurrence:    models.RecurrenceType(req.Recurrence),
		WeekdayMask:   req.WeekdayMask,
		DepartureTime: req.DepartureTime,
		Quota: models.Quota{
			MinRiders: req.MinRiders,
			MaxRiders: req.MaxRiders,
		},
	}
	if req.TripDate != nil {
		date, err := time.Parse("2006-01-02", *req.TripDate)
		if err != nil {
			return utils.BadRequestResponse(c, "Trip date must be YYYY-MM-DD")
		}
		trip.TripDate = &date
	}

	created, err := h.tripUC.CreateTrip(c.Request().Context(), trip)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", created)
}

// Schedule handles the pending to scheduled transition
func (h *TripsHandler) Schedule(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}

	trip, err := h.tripUC.Schedule(c.Request().Context(), tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip scheduled successfully", trip)
}

// OpenConfirmations handles opening the confirmation window
func (h *TripsHandler) OpenConfirmations(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}

	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.tripUC.OpenConfirmations(c.Request().Context(), tripID, driverID, time.Now()); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Confirmations opened successfully", nil)
}

// CloseConfirmations handles closing the confirmation window
func (h *TripsHandler) CloseConfirmations(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.CloseConfirmations")

	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}
	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	nrpkg.AddTransactionAttribute(txn, "trip_id", tripID.String())

	trip, err := h.tripUC.CloseConfirmations(c.Request().Context(), tripID, driverID, time.Now())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Confirmations closed successfully", trip)
}

// GenerateRoute handles route generation for a confirmed trip
func (h *TripsHandler) GenerateRoute(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.GenerateRoute")

	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}

	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	route, err := h.tripUC.GenerateRoute(c.Request().Context(), tripID, driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route generated successfully", route)
}

// StartTrip handles the route_ready to in_progress transition
func (h *TripsHandler) StartTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}
	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.tripUC.StartTrip(c.Request().Context(), tripID, driverID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip started successfully", nil)
}

// CompleteTrip handles trip completion, including the audited dispatcher
// override
func (h *TripsHandler) CompleteTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	actorRole, _ := c.Get(middleware.ContextActorRole).(string)

	type CompleteTripBody struct {
		Force bool `json:"force"`
	}
	var req CompleteTripBody
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request payload")
		}
	}

	if err := h.tripUC.CompleteTrip(c.Request().Context(), tripID, actorID, actorRole, req.Force); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip completed successfully", nil)
}

// Cancel handles trip cancellation
func (h *TripsHandler) Cancel(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}

	type CancelBody struct {
		Reason string `json:"reason"`
	}
	var req CancelBody
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Reason == "" {
		return utils.BadRequestResponse(c, "Cancellation reason is required")
	}

	if err := h.tripUC.Cancel(c.Request().Context(), tripID, req.Reason); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled successfully", nil)
}

// GetTrip returns one trip annotated with its effective state
func (h *TripsHandler) GetTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a valid UUID")
	}

	view, err := h.tripUC.GetTrip(c.Request().Context(), tripID, time.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", view)
}

// ListForDriver returns the authenticated driver's trips partitioned into
// today and other days
func (h *TripsHandler) ListForDriver(c echo.Context) error {
	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	view, err := h.tripUC.ListForDriver(c.Request().Context(), driverID, time.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", view)
}

func tripIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
