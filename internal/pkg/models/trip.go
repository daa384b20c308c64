package models

import (
	"time"

	"github.com/google/uuid"
)

// TripState is the persisted lifecycle state of a trip occurrence.
type TripState string

const (
	TripStatePending          TripState = "pending"
	TripStateScheduled        TripState = "scheduled"
	TripStateConfirmationOpen TripState = "confirmation_open"
	TripStateConfirmed        TripState = "confirmed"
	TripStateRouteGenerating  TripState = "route_generating"
	TripStateRouteReady       TripState = "route_ready"
	TripStateInProgress       TripState = "in_progress"
	TripStateCompleted        TripState = "completed"
	TripStateCancelled        TripState = "cancelled"
)

// Terminal reports whether no further transition is allowed from the state.
func (s TripState) Terminal() bool {
	return s == TripStateCompleted || s == TripStateCancelled
}

// EffectiveState is the time-derived status shown to clients. It is computed
// on every read and never persisted.
type EffectiveState string

const (
	EffectiveNotToday         EffectiveState = "not_today"
	EffectiveScheduledWaiting EffectiveState = "scheduled_waiting"
	EffectiveConfirmationOpen EffectiveState = "confirmation_open"
	EffectiveConfirmedWaiting EffectiveState = "confirmed_waiting"
	EffectiveInteractable     EffectiveState = "interactable"
	EffectiveInProgress       EffectiveState = "in_progress"
	EffectiveExpired          EffectiveState = "expired"
	EffectiveCompleted        EffectiveState = "completed"
	EffectiveCancelled        EffectiveState = "cancelled"
)

// TripKind distinguishes the morning pickup run from the afternoon return run.
type TripKind string

const (
	TripKindOutbound TripKind = "outbound"
	TripKindReturn   TripKind = "return"
)

// Shift is the school shift a trip serves.
type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
	ShiftNone    Shift = "none"
)

// RecurrenceType says whether a trip runs once or on a weekly pattern.
type RecurrenceType string

const (
	RecurrenceSingle RecurrenceType = "single"
	RecurrenceWeekly RecurrenceType = "weekly"
)

// Quota holds the rider count thresholds that gate confirmation closure.
type Quota struct {
	MinRiders int `json:"min_riders" db:"min_riders"`
	MaxRiders int `json:"max_riders" db:"max_riders"`
}

// TripOccurrence is one scheduled run of a route. For weekly trips the same
// row represents every occurrence; confirmations are keyed by service date.
type TripOccurrence struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	DriverID      uuid.UUID      `json:"driver_id" db:"driver_id"`
	SchoolID      uuid.UUID      `json:"school_id" db:"school_id"`
	Name          string         `json:"name" db:"name"`
	Kind          TripKind       `json:"kind" db:"kind"`
	Shift         Shift          `json:"shift" db:"shift"`
	Recurrence    RecurrenceType `json:"recurrence" db:"recurrence"`
	TripDate      *time.Time     `json:"trip_date,omitempty" db:"trip_date"`
	WeekdayMask   uint8          `json:"weekday_mask" db:"weekday_mask"`
	DepartureTime string         `json:"departure_time" db:"departure_time"` // "HH:MM", local
	State         TripState      `json:"state" db:"state"`
	Quota         Quota          `json:"quota"`
	SeedLat       *float64       `json:"seed_lat,omitempty" db:"seed_lat"`
	SeedLng       *float64       `json:"seed_lng,omitempty" db:"seed_lng"`
	StartedAt     *time.Time     `json:"started_at,omitempty" db:"started_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt   *time.Time     `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancelReason  string         `json:"cancel_reason,omitempty" db:"cancel_reason"`
	Version       int            `json:"version" db:"version"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`

	Route *Route `json:"route,omitempty"`
}

// WeekdayBit returns the mask bit for a weekday (Sunday = bit 0).
func WeekdayBit(d time.Weekday) uint8 {
	return 1 << uint(d)
}

// AppliesOn reports whether the trip runs on the given calendar day.
func (t *TripOccurrence) AppliesOn(day time.Time) bool {
	switch t.Recurrence {
	case RecurrenceSingle:
		if t.TripDate == nil {
			return false
		}
		y1, m1, d1 := t.TripDate.Date()
		y2, m2, d2 := day.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case RecurrenceWeekly:
		return t.WeekdayMask&WeekdayBit(day.Weekday()) != 0
	}
	return false
}

// DepartureOn resolves the scheduled departure instant for a calendar day,
// in that day's location. Falls back to midnight on a malformed time string.
func (t *TripOccurrence) DepartureOn(day time.Time) time.Time {
	hhmm, err := time.Parse("15:04", t.DepartureTime)
	if err != nil {
		hhmm, err = time.Parse("15:04:05", t.DepartureTime)
		if err != nil {
			hhmm = time.Time{}
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		hhmm.Hour(), hhmm.Minute(), hhmm.Second(), 0, day.Location())
}

// NextOccurrenceAfter returns the next calendar day on or after `from` that
// the trip applies to, or nil when there is none (past single trips).
func (t *TripOccurrence) NextOccurrenceAfter(from time.Time) *time.Time {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	switch t.Recurrence {
	case RecurrenceSingle:
		if t.TripDate != nil && !t.TripDate.Before(day) {
			d := *t.TripDate
			return &d
		}
		return nil
	case RecurrenceWeekly:
		if t.WeekdayMask == 0 {
			return nil
		}
		for i := 0; i < 7; i++ {
			candidate := day.AddDate(0, 0, i)
			if t.WeekdayMask&WeekdayBit(candidate.Weekday()) != 0 {
				return &candidate
			}
		}
	}
	return nil
}
