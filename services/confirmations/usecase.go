package confirmations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// ConfirmationUC defines the interface for confirmation ledger business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/trailyn/transport/services/confirmations ConfirmationUC
type ConfirmationUC interface {
	Confirm(ctx context.Context, req models.ConfirmRequest, now time.Time) (*models.ConfirmationRecord, error)
	CancelConfirmation(ctx context.Context, confirmationID uuid.UUID, actorID uuid.UUID, actorRole string, now time.Time) error
	CountActive(ctx context.Context, tripID uuid.UUID, day time.Time) (int, error)
	ListForGuardian(ctx context.Context, guardianID uuid.UUID, day time.Time) ([]models.ConfirmationRecord, error)
}
