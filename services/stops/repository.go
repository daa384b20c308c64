package stops

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StopRepo defines the interface for stop completion persistence. The commit
// is a compare-and-swap on the stop state; a stop already completed by
// another client surfaces CommitRejected and is never retried.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/trailyn/transport/services/stops StopRepo
type StopRepo interface {
	CommitCompletion(ctx context.Context, stopID uuid.UUID, code string, at time.Time, lat, lng float64) error
}
