package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/logger"
	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg        *models.Config
	tripRepo   trips.TripRepo
	routeGW    trips.RouteGW
	notifyGW   trips.NotifyGW
	vitalsGW   trips.VitalsGW
	locationGW trips.LocationGW
	lockGW     trips.LockGW
	ledgerGW   trips.LedgerGW
	now        func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	routeGW trips.RouteGW,
	notifyGW trips.NotifyGW,
	vitalsGW trips.VitalsGW,
	locationGW trips.LocationGW,
	lockGW trips.LockGW,
	ledgerGW trips.LedgerGW,
) trips.TripUC {
	return &tripUC{
		cfg:        cfg,
		tripRepo:   tripRepo,
		routeGW:    routeGW,
		notifyGW:   notifyGW,
		vitalsGW:   vitalsGW,
		locationGW: locationGW,
		lockGW:     lockGW,
		ledgerGW:   ledgerGW,
		now:        time.Now,
	}
}

// CreateTrip registers a new trip occurrence in the pending state.
func (uc *tripUC) CreateTrip(ctx context.Context, trip *models.TripOccurrence) (*models.TripOccurrence, error) {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	trip.State = models.TripStatePending
	trip.Version = 1

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	logger.Info("trip created",
		logger.String("trip_id", trip.ID.String()),
		logger.String("driver_id", trip.DriverID.String()))
	return trip, nil
}

// Schedule moves a pending trip to scheduled.
func (uc *tripUC) Schedule(ctx context.Context, tripID uuid.UUID) (*models.TripOccurrence, error) {
	if err := uc.tripRepo.CompareAndSwapState(ctx, tripID, models.TripStatePending, models.TripStateScheduled); err != nil {
		return nil, err
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	uc.publish(func() error { return uc.notifyGW.PublishTripScheduled(ctx, trip) })
	return trip, nil
}

// OpenConfirmations moves a scheduled trip to confirmation_open once the
// window has begun.
func (uc *tripUC) OpenConfirmations(ctx context.Context, tripID uuid.UUID, driverID uuid.UUID, now time.Time) error {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.DriverID != driverID {
		return apperrors.New(apperrors.KindUnauthenticated, "trip is not assigned to this driver")
	}

	openAt := trip.DepartureOn(now).Add(-uc.cfg.Trips.OpenOffset())
	if now.Before(openAt) {
		mins := minutesUntil(now, openAt)
		return apperrors.New(apperrors.KindWindowNotOpen, "confirmation window has not opened yet").
			WithDetail("minutes_to_open", mins).
			WithDetail("opens_at", openAt.Format("15:04"))
	}

	if err := uc.tripRepo.CompareAndSwapState(ctx, tripID, models.TripStateScheduled, models.TripStateConfirmationOpen); err != nil {
		return err
	}

	trip.State = models.TripStateConfirmationOpen
	uc.publish(func() error { return uc.notifyGW.PublishConfirmationsOpened(ctx, trip) })
	return nil
}

// CloseConfirmations moves a trip from confirmation_open to confirmed once
// the rider quota is met, recording the driver's location as the route seed.
// Two concurrent calls cannot both succeed; the compare-and-swap update lets
// exactly one through.
func (uc *tripUC) CloseConfirmations(ctx context.Context, tripID uuid.UUID, driverID uuid.UUID, now time.Time) (*models.TripOccurrence, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "trip is not assigned to this driver")
	}

	// The compare-and-swap below is what guarantees a single winner; the
	// lock only keeps a concurrent closer from racing through the quota
	// read, so a lock store failure is not fatal.
	locked, err := uc.lockGW.TryLock(ctx, tripID)
	if err != nil {
		logger.Warn("trip lock unavailable, relying on compare-and-swap",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	} else if !locked {
		return nil, apperrors.New(apperrors.KindInvalidTransition, "another close is already in progress").
			WithDetail("current_state", string(trip.State))
	} else {
		defer uc.lockGW.Unlock(ctx, tripID)
	}

	closeAt := trip.DepartureOn(now).Add(-uc.cfg.Trips.CloseOffset())
	if now.After(closeAt) {
		since := closeAt.Format("15:04")
		return nil, apperrors.New(apperrors.KindExpired, "confirmation window has expired").
			WithDetail("expired_since", since)
	}

	count, err := uc.ledgerGW.CountActive(ctx, tripID, models.ServiceDateOf(now))
	if err != nil {
		return nil, err
	}
	if count < trip.Quota.MinRiders {
		shortfall := trip.Quota.MinRiders - count
		return nil, apperrors.Newf(apperrors.KindQuotaNotMet, "need %d more confirmation(s) to close", shortfall).
			WithDetail("shortfall", shortfall).
			WithDetail("confirmations", count).
			WithDetail("min_riders", trip.Quota.MinRiders)
	}

	loc, err := uc.locationGW.GetLastKnown(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if err := uc.tripRepo.CompareAndSwapState(ctx, tripID, models.TripStateConfirmationOpen, models.TripStateConfirmed); err != nil {
		return nil, err
	}
	if err := uc.tripRepo.SetSeedLocation(ctx, tripID, loc.Latitude, loc.Longitude); err != nil {
		logger.Warn("failed to record route seed location",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	trip.State = models.TripStateConfirmed
	trip.SeedLat = &loc.Latitude
	trip.SeedLng = &loc.Longitude

	uc.publish(func() error { return uc.notifyGW.PublishTripConfirmed(ctx, trip) })
	logger.Info("confirmations closed",
		logger.String("trip_id", tripID.String()),
		logger.Int("confirmations", count))
	return trip, nil
}

// GenerateRoute drives confirmed -> route_generating -> route_ready. The trip
// is moved to route_generating before the external call and no lock is held
// while the routing engine works; the result is committed with a second
// compare-and-swap. On engine failure the trip returns to confirmed and the
// caller may retry.
func (uc *tripUC) GenerateRoute(ctx context.Context, tripID uuid.UUID, driverID uuid.UUID) (*models.Route, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "trip is not assigned to this driver")
	}
	if trip.SeedLat == nil || trip.SeedLng == nil {
		return nil, apperrors.New(apperrors.KindLocationUnavailable, "trip has no route seed location")
	}

	day := models.ServiceDateOf(uc.now())
	pickups, err := uc.ledgerGW.ListActivePickups(ctx, tripID, day)
	if err != nil {
		return nil, err
	}

	if err := uc.tripRepo.CompareAndSwapState(ctx, tripID, models.TripStateConfirmed, models.TripStateRouteGenerating); err != nil {
		return nil, err
	}

	seed := models.Location{Latitude: *trip.SeedLat, Longitude: *trip.SeedLng}
	route, err := uc.routeGW.GenerateRoute(ctx, tripID, seed, pickups)
	if err != nil {
		if casErr := uc.tripRepo.CompareAndSwapState(ctx, tripID, models.TripStateRouteGenerating, models.TripStateConfirmed); casErr != nil {
			logger.Error("failed to roll back trip after routing failure",
				logger.String("trip_id", tripID.String()),
				logger.Err(casErr))
		}
		return nil, apperrors.Wrap(apperrors.KindRoutingFailed, "routing engine failed", err)
	}

	route.TripID = tripID
	if err := uc.tripRepo.SaveRouteAndMarkReady(ctx, route); err != nil {
		return nil, err
	}

	trip.State = models.TripStateRouteReady
	uc.publish(func() error { return uc.notifyGW.PublishRouteReady(ctx, trip, route) })
	logger.Info("route generated",
		logger.String("trip_id", tripID.String()),
		logger.Int("stops", len(route.Stops)))
	return route, nil
}

// StartTrip moves a route_ready trip to in_progress, stamping the start time
// and seeding live navigation with the driver's current location.
func (uc *tripUC) StartTrip(ctx context.Context, tripID uuid.UUID, driverID uuid.UUID) error {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.DriverID != driverID {
		return apperrors.New(apperrors.KindUnauthenticated, "trip is not assigned to this driver")
	}

	if uc.cfg.Trips.RequireVitalsToStart {
		connected, err := uc.vitalsGW.IsConnected(ctx, driverID)
		if err != nil || !connected {
			return apperrors.New(apperrors.KindVitalsRequired, "wearable companion must be connected to start the trip")
		}
	}

	loc, err := uc.locationGW.GetLastKnown(ctx, driverID)
	if err != nil {
		return err
	}

	startedAt := uc.now()
	if err := uc.tripRepo.MarkStarted(ctx, tripID, startedAt); err != nil {
		return err
	}

	trip.State = models.TripStateInProgress
	trip.StartedAt = &startedAt
	uc.publish(func() error { return uc.notifyGW.PublishTripStarted(ctx, trip) })
	logger.Info("trip started",
		logger.String("trip_id", tripID.String()),
		logger.Float64("start_lat", loc.Latitude),
		logger.Float64("start_lng", loc.Longitude))
	return nil
}

// CompleteTrip moves an in_progress trip to completed. A driver may only
// complete their own trip and only once every stop is done; completing with
// stops outstanding is a dispatch override, available only when the policy
// allows it and always logged.
func (uc *tripUC) CompleteTrip(ctx context.Context, tripID uuid.UUID, actorID uuid.UUID, actorRole string, force bool) error {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if actorRole != "dispatch" && trip.DriverID != actorID {
		return apperrors.New(apperrors.KindUnauthenticated, "trip is not assigned to this driver")
	}

	route, err := uc.tripRepo.GetRouteByTrip(ctx, tripID)
	if err != nil {
		return err
	}

	if !route.AllStopsCompleted() {
		remaining := len(route.Stops) - route.CompletedStops()
		if !force || actorRole != "dispatch" || !uc.cfg.Trips.AllowForceComplete {
			return apperrors.Newf(apperrors.KindInvalidTransition, "%d stop(s) still pending", remaining).
				WithDetail("remaining_stops", remaining)
		}
		logger.Warn("trip force-completed with stops outstanding",
			logger.String("trip_id", tripID.String()),
			logger.String("actor_id", actorID.String()),
			logger.Int("remaining_stops", remaining))
	}

	completedAt := uc.now()
	if err := uc.tripRepo.MarkCompleted(ctx, tripID, completedAt); err != nil {
		return err
	}

	trip.State = models.TripStateCompleted
	uc.publish(func() error { return uc.notifyGW.PublishTripCompleted(ctx, trip) })
	logger.Info("trip completed", logger.String("trip_id", tripID.String()))
	return nil
}

// Cancel marks a trip cancelled from any non-terminal state. Cancelling an
// already cancelled trip is a no-op; cancelling a completed trip fails.
func (uc *tripUC) Cancel(ctx context.Context, tripID uuid.UUID, reason string) error {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.State == models.TripStateCancelled {
		return nil
	}
	if trip.State == models.TripStateCompleted {
		return apperrors.New(apperrors.KindInvalidTransition, "completed trips cannot be cancelled").
			WithDetail("current_state", string(trip.State))
	}

	if err := uc.tripRepo.MarkCancelled(ctx, tripID, reason, uc.now()); err != nil {
		return err
	}

	trip.State = models.TripStateCancelled
	trip.CancelReason = reason
	uc.publish(func() error { return uc.notifyGW.PublishTripCancelled(ctx, trip, reason) })
	logger.Info("trip cancelled",
		logger.String("trip_id", tripID.String()),
		logger.String("reason", reason))
	return nil
}

// publish runs a notification send and logs failures. Event delivery is never
// allowed to fail a transition that has already committed.
func (uc *tripUC) publish(fn func() error) {
	if err := fn(); err != nil {
		logger.Warn("failed to publish trip event", logger.Err(err))
	}
}
