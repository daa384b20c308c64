package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/models"
)

// ConfirmationRepo is the sqlx-backed confirmation ledger. Capacity and
// duplicate checks happen inside single statements so two racing guardians
// cannot both pass a read-then-write check.
type ConfirmationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewConfirmationRepository creates a new confirmation repository
func NewConfirmationRepository(cfg *models.Config, db *sqlx.DB) *ConfirmationRepo {
	return &ConfirmationRepo{
		cfg: cfg,
		db:  db,
	}
}

// InsertIfCapacity inserts the record only while the active count for the
// (trip, service date) stays below maxRiders. The count check is a subquery
// of the INSERT itself, so increment-and-check is atomic. A unique partial
// index on (trip_id, service_date, rider_id) WHERE state != 'cancelled'
// backs the duplicate check.
func (r *ConfirmationRepo) InsertIfCapacity(ctx context.Context, rec *models.ConfirmationRecord, maxRiders int) error {
	query := `
		INSERT INTO confirmations (
			id, trip_id, service_date, rider_id, guardian_id,
			pickup_lat, pickup_lng, pickup_address, reference, state, created_at
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		WHERE (
			SELECT COUNT(*) FROM confirmations
			WHERE trip_id = $2 AND service_date = $3 AND state != $12
		) < $13
	`

	result, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.TripID, rec.ServiceDate, rec.RiderID, rec.GuardianID,
		rec.PickupLat, rec.PickupLng, rec.PickupAddress, rec.Reference,
		rec.State, rec.CreatedAt,
		models.ConfirmationCancelled, maxRiders)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.KindDuplicateConfirmation, "rider is already confirmed for this trip today").
				WithDetail("rider_id", rec.RiderID.String())
		}
		return fmt.Errorf("failed to insert confirmation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.Newf(apperrors.KindCapacityExceeded, "trip already has %d confirmed riders", maxRiders).
			WithDetail("max_riders", maxRiders)
	}
	return nil
}

// GetConfirmation retrieves a confirmation by ID
func (r *ConfirmationRepo) GetConfirmation(ctx context.Context, confirmationID uuid.UUID) (*models.ConfirmationRecord, error) {
	query := `
		SELECT id, trip_id, service_date, rider_id, guardian_id,
		       pickup_lat, pickup_lng, pickup_address, reference, state, created_at, cancelled_at
		FROM confirmations
		WHERE id = $1
	`

	rec := &models.ConfirmationRecord{}
	var reference sql.NullString
	var cancelledAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, confirmationID).Scan(
		&rec.ID, &rec.TripID, &rec.ServiceDate, &rec.RiderID, &rec.GuardianID,
		&rec.PickupLat, &rec.PickupLng, &rec.PickupAddress, &reference,
		&rec.State, &rec.CreatedAt, &cancelledAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "confirmation %s not found", confirmationID)
		}
		return nil, fmt.Errorf("failed to get confirmation: %w", err)
	}
	if reference.Valid {
		rec.Reference = reference.String
	}
	if cancelledAt.Valid {
		rec.CancelledAt = &cancelledAt.Time
	}
	return rec, nil
}

// CancelConfirmation marks a confirmation cancelled
func (r *ConfirmationRepo) CancelConfirmation(ctx context.Context, confirmationID uuid.UUID, at time.Time) error {
	query := `
		UPDATE confirmations
		SET state = $1, cancelled_at = $2
		WHERE id = $3 AND state != $1
	`

	result, err := r.db.ExecContext(ctx, query, models.ConfirmationCancelled, at, confirmationID)
	if err != nil {
		return fmt.Errorf("failed to cancel confirmation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		// Already cancelled or missing; callers resolve which beforehand.
		return nil
	}
	return nil
}

// CountActive counts non-cancelled confirmations for a trip and service day
func (r *ConfirmationRepo) CountActive(ctx context.Context, tripID uuid.UUID, day time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM confirmations
		WHERE trip_id = $1 AND service_date = $2 AND state != $3
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, tripID, day, models.ConfirmationCancelled).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count confirmations: %w", err)
	}
	return count, nil
}

// ListActivePickups returns the confirmed pickup points for a trip and
// service day, for the routing engine.
func (r *ConfirmationRepo) ListActivePickups(ctx context.Context, tripID uuid.UUID, day time.Time) ([]models.RoutePickup, error) {
	query := `
		SELECT id, pickup_lat, pickup_lng, pickup_address
		FROM confirmations
		WHERE trip_id = $1 AND service_date = $2 AND state != $3
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, tripID, day, models.ConfirmationCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to list pickups: %w", err)
	}
	defer rows.Close()

	var pickups []models.RoutePickup
	for rows.Next() {
		var p models.RoutePickup
		if err := rows.Scan(&p.ConfirmationID, &p.Latitude, &p.Longitude, &p.Address); err != nil {
			return nil, fmt.Errorf("failed to scan pickup row: %w", err)
		}
		pickups = append(pickups, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pickup rows: %w", err)
	}
	return pickups, nil
}

// ListByGuardian returns a guardian's confirmations for a service day
func (r *ConfirmationRepo) ListByGuardian(ctx context.Context, guardianID uuid.UUID, day time.Time) ([]models.ConfirmationRecord, error) {
	query := `
		SELECT id, trip_id, service_date, rider_id, guardian_id,
		       pickup_lat, pickup_lng, pickup_address, reference, state, created_at, cancelled_at
		FROM confirmations
		WHERE guardian_id = $1 AND service_date = $2
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, guardianID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmations: %w", err)
	}
	defer rows.Close()

	var recs []models.ConfirmationRecord
	for rows.Next() {
		var rec models.ConfirmationRecord
		var reference sql.NullString
		var cancelledAt sql.NullTime
		if err := rows.Scan(
			&rec.ID, &rec.TripID, &rec.ServiceDate, &rec.RiderID, &rec.GuardianID,
			&rec.PickupLat, &rec.PickupLng, &rec.PickupAddress, &reference,
			&rec.State, &rec.CreatedAt, &cancelledAt); err != nil {
			return nil, fmt.Errorf("failed to scan confirmation row: %w", err)
		}
		if reference.Valid {
			rec.Reference = reference.String
		}
		if cancelledAt.Valid {
			rec.CancelledAt = &cancelledAt.Time
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate confirmation rows: %w", err)
	}
	return recs, nil
}

// isUniqueViolation detects the postgres unique constraint error (23505)
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
