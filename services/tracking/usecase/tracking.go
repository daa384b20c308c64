package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/constants"
	"github.com/trailyn/transport/internal/pkg/logger"
	"github.com/trailyn/transport/internal/pkg/models"
	natspkg "github.com/trailyn/transport/internal/pkg/nats"
	"github.com/trailyn/transport/services/tracking"
)

// trackingUC implements the tracking.TrackingUC interface
type trackingUC struct {
	cfg      *models.Config
	repo     tracking.LocationRepo
	producer *natspkg.Producer
	now      func() time.Time
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	cfg *models.Config,
	repo tracking.LocationRepo,
	producer *natspkg.Producer,
) tracking.TrackingUC {
	return &trackingUC{
		cfg:      cfg,
		repo:     repo,
		producer: producer,
		now:      time.Now,
	}
}

// PublishLocation stores the driver's reported fix and broadcasts it for
// live-tracking consumers. Broadcast failures are logged, never returned.
func (uc *trackingUC) PublishLocation(ctx context.Context, update *models.LocationUpdate) error {
	driverID, err := uuid.Parse(update.DriverID)
	if err != nil {
		return apperrors.New(apperrors.KindNotFound, "driver id is not a valid UUID")
	}

	if update.Location.Timestamp.IsZero() {
		update.Location.Timestamp = uc.now().UTC()
	}
	if err := uc.repo.StoreLocation(ctx, driverID, update.Location); err != nil {
		return err
	}

	if err := uc.producer.Publish(constants.SubjectDriverLocation, update); err != nil {
		logger.Warn("failed to broadcast driver location",
			logger.String("driver_id", update.DriverID),
			logger.Err(err))
	}
	return nil
}

// GetLastKnown returns the driver's last fix, bounded by the configured
// freshness window. Stale or missing fixes surface LocationUnavailable so
// gates fail fast instead of blocking on GPS.
func (uc *trackingUC) GetLastKnown(ctx context.Context, driverID uuid.UUID) (*models.Location, error) {
	loc, err := uc.repo.GetLocation(ctx, driverID)
	if err != nil {
		return nil, err
	}

	age := uc.now().UTC().Sub(loc.Timestamp)
	if age > uc.cfg.Tracking.Freshness() {
		return nil, apperrors.Newf(apperrors.KindLocationUnavailable, "last fix is %s old", age.Round(time.Second)).
			WithDetail("driver_id", driverID.String()).
			WithDetail("age_seconds", int(age.Seconds()))
	}
	return loc, nil
}
