package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trailyn/transport/internal/pkg/constants"
	"github.com/trailyn/transport/internal/pkg/database"
	"github.com/trailyn/transport/internal/pkg/logger"
	"github.com/trailyn/transport/services/trips"
)

// TripLockGW is a Redis SetNX lock keyed per trip. The TTL bounds how long a
// crashed holder can block other closers.
type TripLockGW struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewTripLockGW creates a new per-trip lock gateway
func NewTripLockGW(redis *database.RedisClient) trips.LockGW {
	return &TripLockGW{
		redis: redis,
		ttl:   15 * time.Second,
	}
}

func (g *TripLockGW) TryLock(ctx context.Context, tripID uuid.UUID) (bool, error) {
	key := fmt.Sprintf(constants.KeyTripLock, tripID)
	return g.redis.SetNX(ctx, key, "1", g.ttl)
}

func (g *TripLockGW) Unlock(ctx context.Context, tripID uuid.UUID) {
	key := fmt.Sprintf(constants.KeyTripLock, tripID)
	if err := g.redis.Delete(ctx, key); err != nil {
		logger.Warn("failed to release trip lock",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}
}
