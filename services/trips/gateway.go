package trips

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// RouteGW is the routing engine collaborator. Route generation is slow and
// may fail; the caller owns retry policy.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/trailyn/transport/services/trips RouteGW,NotifyGW,VitalsGW,LocationGW,LockGW,LedgerGW
type RouteGW interface {
	GenerateRoute(ctx context.Context, tripID uuid.UUID, seed models.Location, pickups []models.RoutePickup) (*models.Route, error)
}

// NotifyGW publishes trip lifecycle events. Publishing is fire-and-forget:
// failures are logged by the caller, never returned to the client.
type NotifyGW interface {
	PublishTripScheduled(ctx context.Context, trip *models.TripOccurrence) error
	PublishConfirmationsOpened(ctx context.Context, trip *models.TripOccurrence) error
	PublishTripConfirmed(ctx context.Context, trip *models.TripOccurrence) error
	PublishRouteReady(ctx context.Context, trip *models.TripOccurrence, route *models.Route) error
	PublishTripStarted(ctx context.Context, trip *models.TripOccurrence) error
	PublishTripCompleted(ctx context.Context, trip *models.TripOccurrence) error
	PublishTripCancelled(ctx context.Context, trip *models.TripOccurrence, reason string) error
}

// VitalsGW reports wearable companion connectivity for a driver.
type VitalsGW interface {
	IsConnected(ctx context.Context, driverID uuid.UUID) (bool, error)
}

// LocationGW resolves a driver's last known location within a bounded
// staleness window. Returns LocationUnavailable when nothing fresh exists.
type LocationGW interface {
	GetLastKnown(ctx context.Context, driverID uuid.UUID) (*models.Location, error)
}

// LockGW holds a short-lived per-trip mutual exclusion lock. The
// compare-and-swap state update is the correctness guarantee; the lock only
// keeps concurrent closers from racing through the quota read together.
type LockGW interface {
	TryLock(ctx context.Context, tripID uuid.UUID) (bool, error)
	Unlock(ctx context.Context, tripID uuid.UUID)
}

// LedgerGW is the confirmation ledger read side used by the state machine:
// quota checks and the confirmed pickup set handed to the routing engine.
type LedgerGW interface {
	CountActive(ctx context.Context, tripID uuid.UUID, day time.Time) (int, error)
	ListActivePickups(ctx context.Context, tripID uuid.UUID, day time.Time) ([]models.RoutePickup, error)
}
