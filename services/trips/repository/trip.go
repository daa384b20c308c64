package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/models"
)

// TripRepo is the sqlx-backed trip repository. Every transition is a
// compare-and-swap: the expected current state sits in the WHERE clause and
// zero affected rows means another caller won the race.
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTrip inserts a new trip occurrence
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.TripOccurrence) error {
	query := `
		INSERT INTO trips (
			id, driver_id, school_id, name, kind, shift,
			recurrence, trip_date, weekday_mask, departure_time,
			state, min_riders, max_riders, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.DriverID,
		trip.SchoolID,
		trip.Name,
		trip.Kind,
		trip.Shift,
		trip.Recurrence,
		trip.TripDate,
		trip.WeekdayMask,
		trip.DepartureTime,
		trip.State,
		trip.Quota.MinRiders,
		trip.Quota.MaxRiders,
		trip.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

const tripColumns = `
	id, driver_id, school_id, name, kind, shift,
	recurrence, trip_date, weekday_mask, departure_time,
	state, min_riders, max_riders, seed_lat, seed_lng,
	started_at, completed_at, cancelled_at, cancel_reason,
	version, created_at, updated_at
`

// GetTrip retrieves a trip occurrence by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.TripOccurrence, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, tripID)
	trip, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "trip %s not found", tripID)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// ListByDriver retrieves all non-deleted trips assigned to a driver, ordered
// by departure time.
func (r *TripRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.TripOccurrence, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE driver_id = $1 ORDER BY departure_time, created_at`

	rows, err := r.db.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips for driver: %w", err)
	}
	defer rows.Close()

	var trips []models.TripOccurrence
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, *trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip rows: %w", err)
	}
	return trips, nil
}

// CompareAndSwapState advances a trip's state only if it is currently in the
// expected state.
func (r *TripRepo) CompareAndSwapState(ctx context.Context, tripID uuid.UUID, from, to models.TripState) error {
	query := `
		UPDATE trips
		SET state = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND state = $3
	`

	result, err := r.db.ExecContext(ctx, query, to, tripID, from)
	if err != nil {
		return fmt.Errorf("failed to update trip state: %w", err)
	}
	return r.checkSwapped(ctx, result, tripID, from, to)
}

// SetSeedLocation records the route-generation seed point
func (r *TripRepo) SetSeedLocation(ctx context.Context, tripID uuid.UUID, lat, lng float64) error {
	query := `UPDATE trips SET seed_lat = $1, seed_lng = $2, updated_at = NOW() WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, lat, lng, tripID)
	if err != nil {
		return fmt.Errorf("failed to set seed location: %w", err)
	}
	return nil
}

// MarkStarted moves a route_ready trip to in_progress and stamps the start
// time.
func (r *TripRepo) MarkStarted(ctx context.Context, tripID uuid.UUID, at time.Time) error {
	query := `
		UPDATE trips
		SET state = $1, started_at = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND state = $4
	`

	result, err := r.db.ExecContext(ctx, query, models.TripStateInProgress, at, tripID, models.TripStateRouteReady)
	if err != nil {
		return fmt.Errorf("failed to mark trip started: %w", err)
	}
	return r.checkSwapped(ctx, result, tripID, models.TripStateRouteReady, models.TripStateInProgress)
}

// MarkCompleted moves an in_progress trip to completed and stamps the
// completion time.
func (r *TripRepo) MarkCompleted(ctx context.Context, tripID uuid.UUID, at time.Time) error {
	query := `
		UPDATE trips
		SET state = $1, completed_at = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND state = $4
	`

	result, err := r.db.ExecContext(ctx, query, models.TripStateCompleted, at, tripID, models.TripStateInProgress)
	if err != nil {
		return fmt.Errorf("failed to mark trip completed: %w", err)
	}
	return r.checkSwapped(ctx, result, tripID, models.TripStateInProgress, models.TripStateCompleted)
}

// MarkCancelled cancels a trip from any non-terminal state
func (r *TripRepo) MarkCancelled(ctx context.Context, tripID uuid.UUID, reason string, at time.Time) error {
	query := `
		UPDATE trips
		SET state = $1, cancelled_at = $2, cancel_reason = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND state NOT IN ($5, $6)
	`

	result, err := r.db.ExecContext(ctx, query,
		models.TripStateCancelled, at, reason, tripID,
		models.TripStateCompleted, models.TripStateCancelled)
	if err != nil {
		return fmt.Errorf("failed to cancel trip: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		current, getErr := r.GetTrip(ctx, tripID)
		if getErr != nil {
			return getErr
		}
		// Cancelling an already cancelled trip is idempotent.
		if current.State == models.TripStateCancelled {
			return nil
		}
		return apperrors.New(apperrors.KindInvalidTransition, "trip cannot be cancelled").
			WithDetail("current_state", string(current.State)).
			WithDetail("attempted_state", string(models.TripStateCancelled))
	}
	return nil
}

// SaveRouteAndMarkReady persists the generated route with its stops and
// advances the trip from route_generating to route_ready in one transaction.
func (r *TripRepo) SaveRouteAndMarkReady(ctx context.Context, route *models.Route) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}

	routeQuery := `
		INSERT INTO routes (id, trip_id, polyline, total_distance_km, estimated_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	if _, err := tx.ExecContext(ctx, routeQuery,
		route.ID, route.TripID, route.EncodedPolyline,
		route.TotalDistanceKm, route.EstimatedMinutes); err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}

	stopQuery := `
		INSERT INTO stops (id, route_id, sequence_index, latitude, longitude, address, expected_arrival, confirmation_id, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i := range route.Stops {
		stop := &route.Stops[i]
		if stop.ID == uuid.Nil {
			stop.ID = uuid.New()
		}
		stop.RouteID = route.ID
		if stop.State == "" {
			stop.State = models.StopStatePending
		}
		if _, err := tx.ExecContext(ctx, stopQuery,
			stop.ID, stop.RouteID, stop.SequenceIndex,
			stop.Latitude, stop.Longitude, stop.Address,
			stop.ExpectedArrival, stop.ConfirmationID, stop.State); err != nil {
			return fmt.Errorf("failed to insert stop %d: %w", stop.SequenceIndex, err)
		}
	}

	casQuery := `
		UPDATE trips
		SET state = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND state = $3
	`
	result, err := tx.ExecContext(ctx, casQuery,
		models.TripStateRouteReady, route.TripID, models.TripStateRouteGenerating)
	if err != nil {
		return fmt.Errorf("failed to mark route ready: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.New(apperrors.KindInvalidTransition, "trip state changed during route generation").
			WithDetail("attempted_state", string(models.TripStateRouteReady))
	}

	return tx.Commit()
}

// GetRouteByTrip loads the route and its stops for a trip, ordered by
// sequence index.
func (r *TripRepo) GetRouteByTrip(ctx context.Context, tripID uuid.UUID) (*models.Route, error) {
	routeQuery := `
		SELECT id, trip_id, polyline, total_distance_km, estimated_minutes, created_at
		FROM routes
		WHERE trip_id = $1
	`

	route := &models.Route{}
	err := r.db.QueryRowContext(ctx, routeQuery, tripID).Scan(
		&route.ID, &route.TripID, &route.EncodedPolyline,
		&route.TotalDistanceKm, &route.EstimatedMinutes, &route.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "no route generated for trip %s", tripID)
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	stopQuery := `
		SELECT id, route_id, sequence_index, latitude, longitude, address, expected_arrival, confirmation_id, state, scanned_code, completed_at
		FROM stops
		WHERE route_id = $1
		ORDER BY sequence_index
	`
	rows, err := r.db.QueryContext(ctx, stopQuery, route.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stops: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stop models.Stop
		var expectedArrival, completedAt sql.NullTime
		var scannedCode sql.NullString
		if err := rows.Scan(
			&stop.ID, &stop.RouteID, &stop.SequenceIndex,
			&stop.Latitude, &stop.Longitude, &stop.Address,
			&expectedArrival, &stop.ConfirmationID, &stop.State, &scannedCode, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stop row: %w", err)
		}
		if expectedArrival.Valid {
			stop.ExpectedArrival = &expectedArrival.Time
		}
		if scannedCode.Valid {
			stop.ScannedCode = &scannedCode.String
		}
		if completedAt.Valid {
			stop.CompletedAt = &completedAt.Time
		}
		route.Stops = append(route.Stops, stop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stop rows: %w", err)
	}
	return route, nil
}

// checkSwapped resolves a zero-affected-rows CAS into InvalidTransition with
// the current state attached.
func (r *TripRepo) checkSwapped(ctx context.Context, result sql.Result, tripID uuid.UUID, from, to models.TripState) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	current, getErr := r.GetTrip(ctx, tripID)
	if getErr != nil {
		return getErr
	}
	return apperrors.Newf(apperrors.KindInvalidTransition, "trip is %s, not %s", current.State, from).
		WithDetail("current_state", string(current.State)).
		WithDetail("expected_state", string(from)).
		WithDetail("attempted_state", string(to))
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(s scanner) (*models.TripOccurrence, error) {
	trip := &models.TripOccurrence{}
	var tripDate, startedAt, completedAt, cancelledAt sql.NullTime
	var seedLat, seedLng sql.NullFloat64
	var cancelReason sql.NullString

	err := s.Scan(
		&trip.ID, &trip.DriverID, &trip.SchoolID, &trip.Name, &trip.Kind, &trip.Shift,
		&trip.Recurrence, &tripDate, &trip.WeekdayMask, &trip.DepartureTime,
		&trip.State, &trip.Quota.MinRiders, &trip.Quota.MaxRiders, &seedLat, &seedLng,
		&startedAt, &completedAt, &cancelledAt, &cancelReason,
		&trip.Version, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tripDate.Valid {
		trip.TripDate = &tripDate.Time
	}
	if seedLat.Valid {
		trip.SeedLat = &seedLat.Float64
	}
	if seedLng.Valid {
		trip.SeedLng = &seedLng.Float64
	}
	if startedAt.Valid {
		trip.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		trip.CompletedAt = &completedAt.Time
	}
	if cancelledAt.Valid {
		trip.CancelledAt = &cancelledAt.Time
	}
	if cancelReason.Valid {
		trip.CancelReason = cancelReason.String
	}
	return trip, nil
}
