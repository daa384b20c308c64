package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/logger"
	"github.com/trailyn/transport/internal/pkg/models"
)

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// GetTrip returns one trip annotated with its effective state at the given
// instant.
func (uc *tripUC) GetTrip(ctx context.Context, tripID uuid.UUID, now time.Time) (*models.TripView, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if route, err := uc.tripRepo.GetRouteByTrip(ctx, tripID); err == nil {
		trip.Route = route
	}

	view, err := uc.annotate(ctx, trip, now)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ListForDriver returns every trip assigned to the driver, partitioned into
// trips whose calendar rule includes today and the rest, each annotated with
// its effective state. Read-only and safe to poll.
func (uc *tripUC) ListForDriver(ctx context.Context, driverID uuid.UUID, now time.Time) (*models.DriverTripsView, error) {
	list, err := uc.tripRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	out := &models.DriverTripsView{
		CurrentDate: now.Format("2006-01-02"),
		CurrentTime: now.Format("15:04:05"),
		Weekday:     int(now.Weekday()),
		WeekdayName: weekdayNames[now.Weekday()],
		Today:       make([]models.TripView, 0),
		Other:       make([]models.TripView, 0),
		Total:       len(list),
	}

	for i := range list {
		view, err := uc.annotate(ctx, &list[i], now)
		if err != nil {
			return nil, err
		}
		if view.AppliesToday {
			out.Today = append(out.Today, view)
		} else {
			out.Other = append(out.Other, view)
		}
	}

	return out, nil
}

// annotate resolves the ledger count for the trip's service day and applies
// the effective-state projection. A ledger read failure degrades to a zero
// count rather than failing the whole listing.
func (uc *tripUC) annotate(ctx context.Context, trip *models.TripOccurrence, now time.Time) (models.TripView, error) {
	count := 0
	if trip.AppliesOn(now) && !trip.State.Terminal() {
		n, err := uc.ledgerGW.CountActive(ctx, trip.ID, models.ServiceDateOf(now))
		if err != nil {
			logger.Warn("failed to count confirmations for trip listing",
				logger.String("trip_id", trip.ID.String()),
				logger.Err(err))
		} else {
			count = n
		}
	}
	return EffectiveStateOf(trip, count, now, uc.cfg.Trips), nil
}
