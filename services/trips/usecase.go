package trips

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// TripUC defines the interface for trip lifecycle business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/trailyn/transport/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, trip *models.TripOccurrence) (*models.TripOccurrence, error)
	Schedule(ctx context.Context, tripID uuid.UUID) (*models.TripOccurrence, error)
	OpenConfirmations(ctx context.Context, tripID uuid.UUID, driverID uuid.UUID, now time.Time) error
	CloseConfirmations(ctx context.Context, tripID uuid.UUID, driverID uuid.UUID, now time.Time) (*models.TripOccurrence, error)
	GenerateRoute(ctx context.Context, tripID uuid.UUID, driverID uuid.UUID) (*models.Route, error)
	StartTrip(ctx context.Context, tripID uuid.UUID, driverID uuid.UUID) error
	CompleteTrip(ctx context.Context, tripID uuid.UUID, actorID uuid.UUID, actorRole string, force bool) error
	Cancel(ctx context.Context, tripID uuid.UUID, reason string) error

	GetTrip(ctx context.Context, tripID uuid.UUID, now time.Time) (*models.TripView, error)
	ListForDriver(ctx context.Context, driverID uuid.UUID, now time.Time) (*models.DriverTripsView, error)
}
