package stops

import (
	"context"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// StopUC defines the interface for the stop completion workflow
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/trailyn/transport/services/stops StopUC
type StopUC interface {
	CompleteStop(ctx context.Context, driverID, tripID, stopID uuid.UUID, scannedCode string) (*models.NextStopInfo, error)
}
