package models

import "time"

// StateDetail carries the structured reason payload behind an effective
// state, so clients can render actionable messages without recomputing
// window arithmetic locally.
type StateDetail struct {
	DepartureTime      string  `json:"departure_time,omitempty"`
	MinutesToOpen      *int    `json:"minutes_to_open,omitempty"`
	MinutesToClose     *int    `json:"minutes_to_close,omitempty"`
	MinutesToDeparture *int    `json:"minutes_to_departure,omitempty"`
	ConfirmationsToday *int    `json:"confirmations_today,omitempty"`
	MinRiders          *int    `json:"min_riders,omitempty"`
	MaxRiders          *int    `json:"max_riders,omitempty"`
	Shortfall          *int    `json:"shortfall,omitempty"`
	SeatsAvailable     *int    `json:"seats_available,omitempty"`
	QuotaMet           *bool   `json:"quota_met,omitempty"`
	NextDate           *string `json:"next_date,omitempty"`
	ExpiredSince       *string `json:"expired_since,omitempty"`
	Reason             string  `json:"reason,omitempty"`
}

// TripView is a trip annotated with its derived effective state. The
// persisted state is reported alongside so clients can distinguish "the
// window says you may act" from "the transition has happened".
type TripView struct {
	Trip           TripOccurrence `json:"trip"`
	PersistedState TripState      `json:"persisted_state"`
	EffectiveState EffectiveState `json:"effective_state"`
	StateMessage   string         `json:"state_message"`
	Interactable   bool           `json:"interactable"`
	AppliesToday   bool           `json:"applies_today"`
	Detail         StateDetail    `json:"state_detail"`
}

// DriverTripsView is the full trip list for one driver, partitioned into
// trips that run today and the rest. Safe to poll.
type DriverTripsView struct {
	CurrentDate string     `json:"current_date"`
	CurrentTime string     `json:"current_time"`
	Weekday     int        `json:"weekday"`
	WeekdayName string     `json:"weekday_name"`
	Today       []TripView `json:"trips_today"`
	Other       []TripView `json:"trips_other"`
	Total       int        `json:"total_trips"`
}

// ServiceDateOf truncates an instant to its calendar day, preserving
// location. Confirmations are keyed by this value.
func ServiceDateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
