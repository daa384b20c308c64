package stops

import (
	"context"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// TripReader resolves the trip and route a stop belongs to. Satisfied by the
// trips repository.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/trailyn/transport/services/stops TripReader,LocationGW,VitalsGW,NotifyGW
type TripReader interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.TripOccurrence, error)
	GetRouteByTrip(ctx context.Context, tripID uuid.UUID) (*models.Route, error)
}

// LocationGW resolves a driver's last known location within a bounded
// staleness window.
type LocationGW interface {
	GetLastKnown(ctx context.Context, driverID uuid.UUID) (*models.Location, error)
}

// VitalsGW reports wearable companion connectivity for a driver.
type VitalsGW interface {
	IsConnected(ctx context.Context, driverID uuid.UUID) (bool, error)
}

// NotifyGW publishes stop completion events. Fire-and-forget.
type NotifyGW interface {
	PublishStopCompleted(ctx context.Context, event models.StopCompletedEvent) error
}
