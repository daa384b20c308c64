package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/constants"
	"github.com/trailyn/transport/internal/pkg/database"
	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/internal/utils"
)

// geohashPrecision gives roughly street-level cells for stored fixes.
const geohashPrecision = 8

// LocationRepo is the Redis-backed driver location store: a hash with the
// last known fix per driver plus a geo set for proximity queries.
type LocationRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, redis *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		cfg:   cfg,
		redis: redis,
	}
}

// StoreLocation writes the driver's last known fix and refreshes the geo set
func (r *LocationRepo) StoreLocation(ctx context.Context, driverID uuid.UUID, loc models.Location) error {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	fields := map[string]interface{}{
		constants.FieldLatitude:  loc.Latitude,
		constants.FieldLongitude: loc.Longitude,
		constants.FieldTimestamp: loc.Timestamp.Unix(),
		"geohash":                utils.EncodeLocation(loc, geohashPrecision),
	}
	if err := r.redis.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	if err := r.redis.Expire(ctx, key, r.cfg.Tracking.TTL()); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeoSet, loc.Longitude, loc.Latitude, driverID.String()); err != nil {
		return fmt.Errorf("failed to update driver geo set: %w", err)
	}
	return nil
}

// GetLocation reads the driver's last known fix. A missing or unparsable
// entry surfaces LocationUnavailable.
func (r *LocationRepo) GetLocation(ctx context.Context, driverID uuid.UUID) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	fields, err := r.redis.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read driver location: %w", err)
	}
	if len(fields) == 0 {
		return nil, apperrors.New(apperrors.KindLocationUnavailable, "no location reported for driver").
			WithDetail("driver_id", driverID.String())
	}

	lat, latErr := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	lng, lngErr := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	ts, tsErr := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)
	if latErr != nil || lngErr != nil || tsErr != nil {
		return nil, apperrors.New(apperrors.KindLocationUnavailable, "stored location is unreadable").
			WithDetail("driver_id", driverID.String())
	}

	return &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Unix(ts, 0).UTC(),
	}, nil
}
