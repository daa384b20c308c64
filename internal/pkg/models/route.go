package models

import (
	"time"

	"github.com/google/uuid"
)

// StopState is the per-stop completion state. Stops only ever move
// pending -> completed.
type StopState string

const (
	StopStatePending   StopState = "pending"
	StopStateCompleted StopState = "completed"
)

// Route is the generated pickup route owned by a trip occurrence. The stop
// ordering is fixed at generation time.
type Route struct {
	ID               uuid.UUID `json:"id" db:"id"`
	TripID           uuid.UUID `json:"trip_id" db:"trip_id"`
	EncodedPolyline  string    `json:"polyline" db:"polyline"`
	TotalDistanceKm  float64   `json:"total_distance_km" db:"total_distance_km"`
	EstimatedMinutes int       `json:"estimated_minutes" db:"estimated_minutes"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	Stops []Stop `json:"stops"`
}

// CompletedStops counts stops already completed.
func (r *Route) CompletedStops() int {
	n := 0
	for _, s := range r.Stops {
		if s.State == StopStateCompleted {
			n++
		}
	}
	return n
}

// AllStopsCompleted reports whether every stop on the route is completed.
func (r *Route) AllStopsCompleted() bool {
	return r.CompletedStops() == len(r.Stops)
}

// Stop is one pickup point on a route, bound to a confirmed rider.
type Stop struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	RouteID         uuid.UUID  `json:"route_id" db:"route_id"`
	SequenceIndex   int        `json:"sequence_index" db:"sequence_index"`
	Latitude        float64    `json:"latitude" db:"latitude"`
	Longitude       float64    `json:"longitude" db:"longitude"`
	Address         string     `json:"address" db:"address"`
	ExpectedArrival *time.Time `json:"expected_arrival,omitempty" db:"expected_arrival"`
	ConfirmationID  uuid.UUID  `json:"confirmation_id" db:"confirmation_id"`
	State           StopState  `json:"state" db:"state"`
	ScannedCode     *string    `json:"scanned_code,omitempty" db:"scanned_code"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// NextStopInfo is returned to the driver client after a stop completion.
type NextStopInfo struct {
	NextIndex        int  `json:"next_index"`
	RemainingStops   int  `json:"remaining_stops"`
	FinalStopReached bool `json:"final_stop_reached"`
}

// RoutePickup is one confirmed pickup handed to the routing engine.
type RoutePickup struct {
	ConfirmationID uuid.UUID `json:"confirmation_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Address        string    `json:"address"`
}
