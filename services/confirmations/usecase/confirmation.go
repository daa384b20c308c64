package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/logger"
	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/services/confirmations"
	tripsusecase "github.com/trailyn/transport/services/trips/usecase"
)

// confirmationUC implements the confirmations.ConfirmationUC interface
type confirmationUC struct {
	cfg      *models.Config
	repo     confirmations.ConfirmationRepo
	trips    confirmations.TripReader
	notifyGW confirmations.NotifyGW
}

// NewConfirmationUC creates a new confirmation use case
func NewConfirmationUC(
	cfg *models.Config,
	repo confirmations.ConfirmationRepo,
	trips confirmations.TripReader,
	notifyGW confirmations.NotifyGW,
) confirmations.ConfirmationUC {
	return &confirmationUC{
		cfg:      cfg,
		repo:     repo,
		trips:    trips,
		notifyGW: notifyGW,
	}
}

// Confirm commits a rider to a trip occurrence for the current service day.
// The confirmation window is judged by the effective state, not the persisted
// one, so guardians may confirm as soon as the window opens even if the
// driver has not pressed "open confirmations" yet. Capacity is enforced by a
// conditional insert in the repository, so concurrent confirmations cannot
// jointly exceed the maximum.
func (uc *confirmationUC) Confirm(ctx context.Context, req models.ConfirmRequest, now time.Time) (*models.ConfirmationRecord, error) {
	trip, err := uc.trips.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}

	day := models.ServiceDateOf(now)
	count, err := uc.repo.CountActive(ctx, req.TripID, day)
	if err != nil {
		return nil, err
	}

	view := tripsusecase.EffectiveStateOf(trip, count, now, uc.cfg.Trips)
	switch view.EffectiveState {
	case models.EffectiveConfirmationOpen, models.EffectiveInteractable:
		// Window is open, proceed.
	case models.EffectiveScheduledWaiting, models.EffectiveNotToday:
		e := apperrors.New(apperrors.KindWindowNotOpen, "confirmation window has not opened yet")
		if view.Detail.MinutesToOpen != nil {
			e = e.WithDetail("minutes_to_open", *view.Detail.MinutesToOpen)
		}
		return nil, e
	case models.EffectiveExpired:
		return nil, apperrors.New(apperrors.KindExpired, "confirmation window has expired")
	default:
		return nil, apperrors.Newf(apperrors.KindWindowClosed, "trip no longer accepts confirmations").
			WithDetail("effective_state", string(view.EffectiveState))
	}

	rec := &models.ConfirmationRecord{
		ID:            uuid.New(),
		TripID:        req.TripID,
		ServiceDate:   day,
		RiderID:       req.RiderID,
		GuardianID:    req.GuardianID,
		PickupLat:     req.PickupLat,
		PickupLng:     req.PickupLng,
		PickupAddress: req.PickupAddress,
		Reference:     req.Reference,
		State:         models.ConfirmationConfirmed,
		CreatedAt:     now,
	}

	if err := uc.repo.InsertIfCapacity(ctx, rec, trip.Quota.MaxRiders); err != nil {
		return nil, err
	}

	if err := uc.notifyGW.PublishConfirmationCreated(ctx, rec); err != nil {
		logger.Warn("failed to publish confirmation created event",
			logger.String("confirmation_id", rec.ID.String()),
			logger.Err(err))
	}
	logger.Info("confirmation created",
		logger.String("trip_id", req.TripID.String()),
		logger.String("rider_id", req.RiderID.String()))
	return rec, nil
}

// CancelConfirmation cancels a confirmation. Guardians may only cancel their
// own; dispatch may cancel any. The ledger freezes once the owning trip has
// entered route generation.
func (uc *confirmationUC) CancelConfirmation(ctx context.Context, confirmationID uuid.UUID, actorID uuid.UUID, actorRole string, now time.Time) error {
	rec, err := uc.repo.GetConfirmation(ctx, confirmationID)
	if err != nil {
		return err
	}
	if actorRole != "dispatch" && rec.GuardianID != actorID {
		return apperrors.New(apperrors.KindUnauthenticated, "confirmation belongs to another guardian")
	}
	if !rec.Active() {
		return nil
	}

	trip, err := uc.trips.GetTrip(ctx, rec.TripID)
	if err != nil {
		return err
	}
	if frozen(trip.State) {
		return apperrors.New(apperrors.KindAlreadyFrozen, "confirmations are frozen once route generation begins").
			WithDetail("trip_state", string(trip.State))
	}

	if err := uc.repo.CancelConfirmation(ctx, confirmationID, now); err != nil {
		return err
	}

	rec.State = models.ConfirmationCancelled
	rec.CancelledAt = &now
	if err := uc.notifyGW.PublishConfirmationCancelled(ctx, rec); err != nil {
		logger.Warn("failed to publish confirmation cancelled event",
			logger.String("confirmation_id", confirmationID.String()),
			logger.Err(err))
	}
	logger.Info("confirmation cancelled",
		logger.String("confirmation_id", confirmationID.String()))
	return nil
}

// CountActive returns the active confirmation count for a trip and service
// day. Pure read used by the state machine's quota check.
func (uc *confirmationUC) CountActive(ctx context.Context, tripID uuid.UUID, day time.Time) (int, error) {
	return uc.repo.CountActive(ctx, tripID, models.ServiceDateOf(day))
}

// ListForGuardian returns a guardian's confirmations for a service day
func (uc *confirmationUC) ListForGuardian(ctx context.Context, guardianID uuid.UUID, day time.Time) ([]models.ConfirmationRecord, error) {
	return uc.repo.ListByGuardian(ctx, guardianID, models.ServiceDateOf(day))
}

// frozen reports whether the trip has advanced far enough that its
// confirmation set is read-only.
func frozen(state models.TripState) bool {
	switch state {
	case models.TripStateRouteGenerating,
		models.TripStateRouteReady,
		models.TripStateInProgress,
		models.TripStateCompleted:
		return true
	}
	return false
}
