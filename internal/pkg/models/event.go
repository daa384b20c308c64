package models

import (
	"time"

	"github.com/google/uuid"
)

// TripEvent is the payload published on trip lifecycle subjects. Consumers
// must tolerate duplicates.
type TripEvent struct {
	TripID     uuid.UUID `json:"trip_id"`
	DriverID   uuid.UUID `json:"driver_id"`
	State      TripState `json:"state"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StopCompletedEvent is published after a stop completion commit succeeds.
type StopCompletedEvent struct {
	TripID         uuid.UUID `json:"trip_id"`
	StopID         uuid.UUID `json:"stop_id"`
	SequenceIndex  int       `json:"sequence_index"`
	ConfirmationID uuid.UUID `json:"confirmation_id"`
	DriverID       uuid.UUID `json:"driver_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ConfirmationEvent is published when a guardian creates or cancels a
// confirmation.
type ConfirmationEvent struct {
	ConfirmationID uuid.UUID `json:"confirmation_id"`
	TripID         uuid.UUID `json:"trip_id"`
	RiderID        uuid.UUID `json:"rider_id"`
	GuardianID     uuid.UUID `json:"guardian_id"`
	ServiceDate    string    `json:"service_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}
