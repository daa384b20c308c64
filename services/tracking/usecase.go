package tracking

import (
	"context"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/models"
)

// TrackingUC defines the interface for driver location tracking. GetLastKnown
// is the location source used by close, start, and stop-completion gates:
// a fix older than the configured freshness bound counts as unavailable.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/trailyn/transport/services/tracking TrackingUC
type TrackingUC interface {
	PublishLocation(ctx context.Context, update *models.LocationUpdate) error
	GetLastKnown(ctx context.Context, driverID uuid.UUID) (*models.Location, error)
}
