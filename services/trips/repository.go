package trips

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations. All state
// transitions are compare-and-swap updates: the expected current state is part
// of the WHERE clause, and zero affected rows surfaces InvalidTransition.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/trailyn/transport/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.TripOccurrence) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.TripOccurrence, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.TripOccurrence, error)

	CompareAndSwapState(ctx context.Context, tripID uuid.UUID, from, to models.TripState) error
	SetSeedLocation(ctx context.Context, tripID uuid.UUID, lat, lng float64) error
	MarkStarted(ctx context.Context, tripID uuid.UUID, at time.Time) error
	MarkCompleted(ctx context.Context, tripID uuid.UUID, at time.Time) error
	MarkCancelled(ctx context.Context, tripID uuid.UUID, reason string, at time.Time) error

	SaveRouteAndMarkReady(ctx context.Context, route *models.Route) error
	GetRouteByTrip(ctx context.Context, tripID uuid.UUID) (*models.Route, error)
}
