package confirmations

import (
	"context"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// TripReader resolves the trip a confirmation targets. Satisfied by the trips
// repository.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/trailyn/transport/services/confirmations TripReader,NotifyGW
type TripReader interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.TripOccurrence, error)
}

// NotifyGW publishes confirmation events. Fire-and-forget.
type NotifyGW interface {
	PublishConfirmationCreated(ctx context.Context, rec *models.ConfirmationRecord) error
	PublishConfirmationCancelled(ctx context.Context, rec *models.ConfirmationRecord) error
}
