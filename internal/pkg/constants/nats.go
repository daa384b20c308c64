package constants

// NATS subjects for trip lifecycle events. Events are published after the
// state transition has been durably applied; consumers must tolerate
// duplicates.
const (
	SubjectTripScheduled           = "trip.scheduled"
	SubjectTripConfirmationsOpened = "trip.confirmations_opened"
	SubjectTripConfirmed           = "trip.confirmed"
	SubjectTripRouteReady          = "trip.route_ready"
	SubjectTripStarted             = "trip.started"
	SubjectTripStopCompleted       = "trip.stop_completed"
	SubjectTripCompleted           = "trip.completed"
	SubjectTripCancelled           = "trip.cancelled"

	SubjectConfirmationCreated   = "confirmation.created"
	SubjectConfirmationCancelled = "confirmation.cancelled"

	SubjectDriverLocation = "driver.location"
)
