package tracking

import (
	"context"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// LocationRepo defines the interface for the driver location store
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/trailyn/transport/services/tracking LocationRepo
type LocationRepo interface {
	StoreLocation(ctx context.Context, driverID uuid.UUID, loc models.Location) error
	GetLocation(ctx context.Context, driverID uuid.UUID) (*models.Location, error)
}
