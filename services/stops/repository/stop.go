package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/models"
)

// StopRepo is the sqlx-backed stop completion store
type StopRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewStopRepository creates a new stop repository
func NewStopRepository(cfg *models.Config, db *sqlx.DB) *StopRepo {
	return &StopRepo{
		cfg: cfg,
		db:  db,
	}
}

// CommitCompletion marks a stop completed, recording the scanned code and the
// scan location. The pending-state check sits in the WHERE clause: if another
// client completed the stop first, zero rows are affected and the commit is
// rejected rather than retried.
func (r *StopRepo) CommitCompletion(ctx context.Context, stopID uuid.UUID, code string, at time.Time, lat, lng float64) error {
	query := `
		UPDATE stops
		SET state = $1, scanned_code = $2, completed_at = $3, scan_lat = $4, scan_lng = $5
		WHERE id = $6 AND state = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		models.StopStateCompleted, code, at, lat, lng, stopID, models.StopStatePending)
	if err != nil {
		return fmt.Errorf("failed to commit stop completion: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.New(apperrors.KindCommitRejected, "stop is no longer pending").
			WithDetail("stop_id", stopID.String())
	}
	return nil
}
