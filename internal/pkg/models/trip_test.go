package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailyn/transport/internal/pkg/models"
)

// Monday in early March 2026.
var monday = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func TestTripStateTerminal(t *testing.T) {
	assert.True(t, models.TripStateCompleted.Terminal())
	assert.True(t, models.TripStateCancelled.Terminal())
	assert.False(t, models.TripStateScheduled.Terminal())
	assert.False(t, models.TripStateInProgress.Terminal())
}

func TestAppliesOnSingle(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	trip := &models.TripOccurrence{Recurrence: models.RecurrenceSingle, TripDate: &date}

	assert.True(t, trip.AppliesOn(monday))
	assert.False(t, trip.AppliesOn(monday.AddDate(0, 0, 1)))

	trip.TripDate = nil
	assert.False(t, trip.AppliesOn(monday))
}

func TestAppliesOnWeekly(t *testing.T) {
	trip := &models.TripOccurrence{
		Recurrence:  models.RecurrenceWeekly,
		WeekdayMask: models.WeekdayBit(time.Monday) | models.WeekdayBit(time.Wednesday),
	}

	assert.True(t, trip.AppliesOn(monday))
	assert.False(t, trip.AppliesOn(monday.AddDate(0, 0, 1))) // Tuesday
	assert.True(t, trip.AppliesOn(monday.AddDate(0, 0, 2)))  // Wednesday
	assert.True(t, trip.AppliesOn(monday.AddDate(0, 0, 7)))  // next Monday
}

func TestDepartureOn(t *testing.T) {
	trip := &models.TripOccurrence{DepartureTime: "07:30"}

	departure := trip.DepartureOn(monday)
	assert.Equal(t, time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC), departure)

	t.Run("seconds form", func(t *testing.T) {
		trip := &models.TripOccurrence{DepartureTime: "07:30:15"}
		assert.Equal(t, time.Date(2026, 3, 2, 7, 30, 15, 0, time.UTC), trip.DepartureOn(monday))
	})

	t.Run("malformed time falls back to midnight", func(t *testing.T) {
		trip := &models.TripOccurrence{DepartureTime: "late"}
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), trip.DepartureOn(monday))
	})
}

func TestNextOccurrenceAfter(t *testing.T) {
	t.Run("weekly finds the next matching weekday", func(t *testing.T) {
		trip := &models.TripOccurrence{
			Recurrence:  models.RecurrenceWeekly,
			WeekdayMask: models.WeekdayBit(time.Friday),
		}

		next := trip.NextOccurrenceAfter(monday)
		require.NotNil(t, next)
		assert.Equal(t, time.Friday, next.Weekday())
		assert.Equal(t, 6, next.Day())
	})

	t.Run("weekly on the same day returns today", func(t *testing.T) {
		trip := &models.TripOccurrence{
			Recurrence:  models.RecurrenceWeekly,
			WeekdayMask: models.WeekdayBit(time.Monday),
		}

		next := trip.NextOccurrenceAfter(monday)
		require.NotNil(t, next)
		assert.Equal(t, 2, next.Day())
	})

	t.Run("empty mask has no occurrence", func(t *testing.T) {
		trip := &models.TripOccurrence{Recurrence: models.RecurrenceWeekly}
		assert.Nil(t, trip.NextOccurrenceAfter(monday))
	})

	t.Run("future single date", func(t *testing.T) {
		date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		trip := &models.TripOccurrence{Recurrence: models.RecurrenceSingle, TripDate: &date}

		next := trip.NextOccurrenceAfter(monday)
		require.NotNil(t, next)
		assert.Equal(t, date, *next)
	})

	t.Run("past single date has no occurrence", func(t *testing.T) {
		date := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
		trip := &models.TripOccurrence{Recurrence: models.RecurrenceSingle, TripDate: &date}

		assert.Nil(t, trip.NextOccurrenceAfter(monday))
	})
}

func TestServiceDateOf(t *testing.T) {
	day := models.ServiceDateOf(monday)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, day, models.ServiceDateOf(day))
}

func TestTripsConfigOffsets(t *testing.T) {
	cfg := models.TripsConfig{
		OpenOffsetMinutes:     60,
		CloseOffsetMinutes:    10,
		InteractOffsetMinutes: 30,
	}

	assert.Equal(t, time.Hour, cfg.OpenOffset())
	assert.Equal(t, 10*time.Minute, cfg.CloseOffset())
	assert.Equal(t, 30*time.Minute, cfg.InteractOffset())
}

func TestRouteCompletion(t *testing.T) {
	route := &models.Route{
		Stops: []models.Stop{
			{State: models.StopStateCompleted},
			{State: models.StopStatePending},
			{State: models.StopStateCompleted},
		},
	}

	assert.Equal(t, 2, route.CompletedStops())
	assert.False(t, route.AllStopsCompleted())

	route.Stops[1].State = models.StopStateCompleted
	assert.True(t, route.AllStopsCompleted())

	empty := &models.Route{}
	assert.True(t, empty.AllStopsCompleted())
}

func TestConfirmationActive(t *testing.T) {
	rec := &models.ConfirmationRecord{State: models.ConfirmationConfirmed}
	assert.True(t, rec.Active())

	rec.State = models.ConfirmationCancelled
	assert.False(t, rec.Active())
}
