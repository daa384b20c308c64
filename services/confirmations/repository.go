package confirmations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// ConfirmationRepo defines the interface for confirmation data access. The
// insert is conditional on remaining capacity so that racing confirmations
// can never jointly exceed the trip's maximum rider count.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/trailyn/transport/services/confirmations ConfirmationRepo
type ConfirmationRepo interface {
	InsertIfCapacity(ctx context.Context, rec *models.ConfirmationRecord, maxRiders int) error
	GetConfirmation(ctx context.Context, confirmationID uuid.UUID) (*models.ConfirmationRecord, error)
	CancelConfirmation(ctx context.Context, confirmationID uuid.UUID, at time.Time) error
	CountActive(ctx context.Context, tripID uuid.UUID, day time.Time) (int, error)
	ListActivePickups(ctx context.Context, tripID uuid.UUID, day time.Time) ([]models.RoutePickup, error)
	ListByGuardian(ctx context.Context, guardianID uuid.UUID, day time.Time) ([]models.ConfirmationRecord, error)
}
