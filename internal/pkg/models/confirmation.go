package models

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmationState is the state of a guardian's pickup confirmation.
type ConfirmationState string

const (
	ConfirmationPending   ConfirmationState = "pending"
	ConfirmationConfirmed ConfirmationState = "confirmed"
	ConfirmationCancelled ConfirmationState = "cancelled"
)

// ConfirmationRecord is one guardian's commitment of one rider to one trip
// occurrence on one service date. At most one non-cancelled record may exist
// per (trip, service date, rider).
type ConfirmationRecord struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	TripID        uuid.UUID         `json:"trip_id" db:"trip_id"`
	ServiceDate   time.Time         `json:"service_date" db:"service_date"`
	RiderID       uuid.UUID         `json:"rider_id" db:"rider_id"`
	GuardianID    uuid.UUID         `json:"guardian_id" db:"guardian_id"`
	PickupLat     float64           `json:"pickup_lat" db:"pickup_lat"`
	PickupLng     float64           `json:"pickup_lng" db:"pickup_lng"`
	PickupAddress string            `json:"pickup_address" db:"pickup_address"`
	Reference     string            `json:"reference,omitempty" db:"reference"`
	State         ConfirmationState `json:"state" db:"state"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	CancelledAt   *time.Time        `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// Active reports whether the record still commits the rider to the trip.
func (c *ConfirmationRecord) Active() bool {
	return c.State != ConfirmationCancelled
}

// ConfirmRequest is a guardian's request to commit a rider to a trip
// occurrence for the current service day.
type ConfirmRequest struct {
	TripID        uuid.UUID `json:"trip_id"`
	RiderID       uuid.UUID `json:"rider_id"`
	GuardianID    uuid.UUID `json:"-"`
	PickupLat     float64   `json:"pickup_lat"`
	PickupLng     float64   `json:"pickup_lng"`
	PickupAddress string    `json:"pickup_address"`
	Reference     string    `json:"reference,omitempty"`
}
