package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/logger"
	"github.com/trailyn/transport/internal/pkg/models"
	nrpkg "github.com/trailyn/transport/internal/pkg/newrelic"
	"github.com/trailyn/transport/internal/pkg/retry"
	"github.com/trailyn/transport/internal/utils"
	"github.com/trailyn/transport/services/stops"
)

// codePrefix is the rider binding token format carried in the scanned QR
// code: "TRL1.<confirmation uuid>".
const codePrefix = "TRL1"

// stopUC implements the stops.StopUC interface
type stopUC struct {
	cfg        *models.Config
	stopRepo   stops.StopRepo
	trips      stops.TripReader
	locationGW stops.LocationGW
	vitalsGW   stops.VitalsGW
	notifyGW   stops.NotifyGW
	retrier    *retry.Retrier
	now        func() time.Time
}

// NewStopUC creates a new stop completion use case. The commit retrier makes
// three attempts with exponential backoff from one second; rejections are
// surfaced immediately without retry.
func NewStopUC(
	cfg *models.Config,
	stopRepo stops.StopRepo,
	trips stops.TripReader,
	locationGW stops.LocationGW,
	vitalsGW stops.VitalsGW,
	notifyGW stops.NotifyGW,
	zapLogger *logger.ZapLogger,
) stops.StopUC {
	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = func(err error) bool {
		return !apperrors.IsKind(err, apperrors.KindCommitRejected)
	}
	return &stopUC{
		cfg:        cfg,
		stopRepo:   stopRepo,
		trips:      trips,
		locationGW: locationGW,
		vitalsGW:   vitalsGW,
		notifyGW:   notifyGW,
		retrier:    retry.New(retryCfg, zapLogger),
		now:        time.Now,
	}
}

// CompleteStop runs the stop completion protocol: proximity gate, rider
// binding gate, then the retried commit. Each gate fails without touching
// persisted state, so the driver can move closer or rescan and try again.
func (uc *stopUC) CompleteStop(ctx context.Context, driverID, tripID, stopID uuid.UUID, scannedCode string) (*models.NextStopInfo, error) {
	trip, err := uc.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "trip is not assigned to this driver")
	}
	if trip.State != models.TripStateInProgress {
		return nil, apperrors.Newf(apperrors.KindInvalidTransition, "trip is %s, stops can only be completed in progress", trip.State).
			WithDetail("current_state", string(trip.State))
	}

	if uc.cfg.Trips.RequireVitalsAtStops {
		connected, err := uc.vitalsGW.IsConnected(ctx, driverID)
		if err != nil || !connected {
			return nil, apperrors.New(apperrors.KindVitalsRequired, "wearable companion must be connected to complete stops")
		}
	}

	route, err := uc.trips.GetRouteByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	stop := findStop(route, stopID)
	if stop == nil {
		return nil, apperrors.Newf(apperrors.KindNotFound, "stop %s is not on this trip's route", stopID)
	}
	if stop.State == models.StopStateCompleted {
		return nil, apperrors.New(apperrors.KindCommitRejected, "stop is already completed")
	}

	loc, err := uc.locationGW.GetLastKnown(ctx, driverID)
	if err != nil {
		return nil, err
	}

	driverPoint := utils.GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude}
	stopPoint := utils.GeoPoint{Latitude: stop.Latitude, Longitude: stop.Longitude}
	within, distance := utils.WithinRange(driverPoint, stopPoint, uc.cfg.Trips.ProximityThresholdM)
	if !within {
		return nil, apperrors.Newf(apperrors.KindTooFarFromStop, "driver is %.0f meters from the stop", distance).
			WithDetail("distance_meters", distance).
			WithDetail("threshold_meters", uc.cfg.Trips.ProximityThresholdM)
	}

	if err := matchBinding(scannedCode, stop.ConfirmationID); err != nil {
		return nil, err
	}

	completedAt := uc.now()
	err = nrpkg.WithSegment(ctx, "stops.commit", func() error {
		return uc.retrier.Execute(ctx, func(ctx context.Context) error {
			return uc.stopRepo.CommitCompletion(ctx, stopID, scannedCode, completedAt, loc.Latitude, loc.Longitude)
		})
	})
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindCommitRejected) {
			return nil, err
		}
		// Exhausted transient attempts are not a rejection; the client may
		// scan again once the backend recovers.
		return nil, apperrors.Wrap(apperrors.KindCommitUnavailable, "stop completion could not be committed", err)
	}

	event := models.StopCompletedEvent{
		TripID:         tripID,
		StopID:         stopID,
		SequenceIndex:  stop.SequenceIndex,
		ConfirmationID: stop.ConfirmationID,
		DriverID:       driverID,
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		OccurredAt:     completedAt,
	}
	if err := uc.notifyGW.PublishStopCompleted(ctx, event); err != nil {
		logger.Warn("failed to publish stop completed event",
			logger.String("stop_id", stopID.String()),
			logger.Err(err))
	}

	info := nextStopInfo(route, stop)
	logger.Info("stop completed",
		logger.String("trip_id", tripID.String()),
		logger.String("stop_id", stopID.String()),
		logger.Int("next_index", info.NextIndex),
		logger.Int("remaining", info.RemainingStops))
	return info, nil
}

// matchBinding validates the scanned code against the stop's rider binding.
// Both a malformed code and a mismatch are retriable by rescanning.
func matchBinding(code string, expected uuid.UUID) error {
	parts := strings.SplitN(strings.TrimSpace(code), ".", 2)
	if len(parts) != 2 || parts[0] != codePrefix {
		return apperrors.New(apperrors.KindInvalidCode, "scanned code is not a valid rider token")
	}
	scanned, err := uuid.Parse(parts[1])
	if err != nil {
		return apperrors.New(apperrors.KindInvalidCode, "scanned code is not a valid rider token")
	}
	if scanned != expected {
		return apperrors.New(apperrors.KindInvalidCode, "scanned code does not match the rider for this stop")
	}
	return nil
}

func findStop(route *models.Route, stopID uuid.UUID) *models.Stop {
	for i := range route.Stops {
		if route.Stops[i].ID == stopID {
			return &route.Stops[i]
		}
	}
	return nil
}

// nextStopInfo projects the driver's position in the route after completing
// the given stop.
func nextStopInfo(route *models.Route, completed *models.Stop) *models.NextStopInfo {
	remaining := 0
	for i := range route.Stops {
		s := &route.Stops[i]
		if s.ID != completed.ID && s.State == models.StopStatePending {
			remaining++
		}
	}
	return &models.NextStopInfo{
		NextIndex:        completed.SequenceIndex + 1,
		RemainingStops:   remaining,
		FinalStopReached: remaining == 0,
	}
}
