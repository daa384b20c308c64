package usecase

import (
	"fmt"
	"time"

	"github.com/trailyn/transport/internal/pkg/models"
)

// EffectiveStateOf derives the time-relative status of a trip from its
// persisted state, the active confirmation count for the service day, the
// current instant, and the window configuration. It is the single place that
// window arithmetic lives: deterministic, side-effect free, and safe to call
// on every read.
//
// The key property is the alarm-clock escalation: a trip persisted as
// "scheduled" is reported as confirmation_open the moment the window begins,
// regardless of whether anyone has invoked OpenConfirmations yet. The
// persisted state only advances through explicit transition operations.
func EffectiveStateOf(trip *models.TripOccurrence, activeConfirmations int, now time.Time, cfg models.TripsConfig) models.TripView {
	view := models.TripView{
		Trip:           *trip,
		PersistedState: trip.State,
		AppliesToday:   trip.AppliesOn(now),
		Detail: models.StateDetail{
			DepartureTime: trip.DepartureTime,
		},
	}

	// Terminal states map to themselves no matter the calendar.
	switch trip.State {
	case models.TripStateCompleted:
		view.EffectiveState = models.EffectiveCompleted
		view.StateMessage = "Trip completed"
		return view
	case models.TripStateCancelled:
		view.EffectiveState = models.EffectiveCancelled
		view.StateMessage = "Trip cancelled"
		if trip.CancelReason != "" {
			view.Detail.Reason = trip.CancelReason
		}
		return view
	}

	if !view.AppliesToday {
		view.EffectiveState = models.EffectiveNotToday
		view.StateMessage = "Trip does not run today"
		if next := trip.NextOccurrenceAfter(now.AddDate(0, 0, 1)); next != nil {
			d := next.Format("2006-01-02")
			view.Detail.NextDate = &d
		}
		return view
	}

	departure := trip.DepartureOn(now)
	openAt := departure.Add(-cfg.OpenOffset())
	closeAt := departure.Add(-cfg.CloseOffset())
	interactAt := departure.Add(-cfg.InteractOffset())

	count := activeConfirmations
	view.Detail.ConfirmationsToday = &count
	minRiders := trip.Quota.MinRiders
	maxRiders := trip.Quota.MaxRiders
	view.Detail.MinRiders = &minRiders
	view.Detail.MaxRiders = &maxRiders

	switch trip.State {
	case models.TripStatePending:
		view.EffectiveState = models.EffectiveScheduledWaiting
		view.StateMessage = "Trip not yet scheduled"
		view.Detail.Reason = "awaiting schedule"

	case models.TripStateScheduled:
		if now.Before(openAt) {
			mins := minutesUntil(now, openAt)
			view.Detail.MinutesToOpen = &mins
			view.EffectiveState = models.EffectiveScheduledWaiting
			view.StateMessage = fmt.Sprintf("Confirmations open in %d minutes", mins)
		} else {
			// Alarm-clock escalation: the window has begun, so the driver is
			// told confirmations may be opened even though the persisted
			// state has not moved yet.
			mins := minutesUntil(now, closeAt)
			view.Detail.MinutesToClose = &mins
			view.EffectiveState = models.EffectiveConfirmationOpen
			view.StateMessage = "Confirmation window is open"
		}

	case models.TripStateConfirmationOpen:
		if now.After(closeAt) {
			since := closeAt.Format("15:04")
			view.Detail.ExpiredSince = &since
			view.EffectiveState = models.EffectiveExpired
			view.StateMessage = "Confirmation window has expired"
			return view
		}
		mins := minutesUntil(now, closeAt)
		view.Detail.MinutesToClose = &mins
		quotaMet := count >= minRiders
		view.Detail.QuotaMet = &quotaMet
		if quotaMet {
			view.EffectiveState = models.EffectiveInteractable
			view.Interactable = true
			view.StateMessage = "Rider quota met, confirmations may be closed"
		} else {
			shortfall := minRiders - count
			view.Detail.Shortfall = &shortfall
			view.EffectiveState = models.EffectiveConfirmationOpen
			view.StateMessage = fmt.Sprintf("Waiting for %d more confirmation(s)", shortfall)
		}
		if seats := maxRiders - count; seats >= 0 {
			view.Detail.SeatsAvailable = &seats
		}

	case models.TripStateConfirmed, models.TripStateRouteGenerating, models.TripStateRouteReady:
		if now.Before(interactAt) {
			mins := minutesUntil(now, departure)
			view.Detail.MinutesToDeparture = &mins
			view.EffectiveState = models.EffectiveConfirmedWaiting
			view.StateMessage = fmt.Sprintf("Departure in %d minutes", mins)
		} else {
			view.EffectiveState = models.EffectiveInteractable
			view.Interactable = true
			view.StateMessage = "Trip is ready to start"
		}

	case models.TripStateInProgress:
		view.EffectiveState = models.EffectiveInProgress
		view.StateMessage = "Trip in progress"
	}

	return view
}

// minutesUntil returns the whole minutes from now to t, never negative.
func minutesUntil(now, t time.Time) int {
	d := t.Sub(now)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
