package gateway

import (
	"context"

	"github.com/trailyn/transport/internal/pkg/constants"
	"github.com/trailyn/transport/internal/pkg/models"
	natspkg "github.com/trailyn/transport/internal/pkg/nats"
	"github.com/trailyn/transport/services/trips"
)

// TripGW handles NATS publishing for trip lifecycle events
type TripGW struct {
	producer *natspkg.Producer
}

// NewTripGW creates a new trip event gateway
func NewTripGW(producer *natspkg.Producer) trips.NotifyGW {
	return &TripGW{
		producer: producer,
	}
}

func (g *TripGW) publishEvent(subject string, trip *models.TripOccurrence, reason string) error {
	event := models.TripEvent{
		TripID:     trip.ID,
		DriverID:   trip.DriverID,
		State:      trip.State,
		Reason:     reason,
		OccurredAt: models.Now(),
	}
	return g.producer.Publish(subject, event)
}

// PublishTripScheduled publishes a trip scheduled event to NATS
func (g *TripGW) PublishTripScheduled(ctx context.Context, trip *models.TripOccurrence) error {
	return g.publishEvent(constants.SubjectTripScheduled, trip, "")
}

// PublishConfirmationsOpened publishes a confirmations opened event to NATS
func (g *TripGW) PublishConfirmationsOpened(ctx context.Context, trip *models.TripOccurrence) error {
	return g.publishEvent(constants.SubjectTripConfirmationsOpened, trip, "")
}

// PublishTripConfirmed publishes a trip confirmed event to NATS
func (g *TripGW) PublishTripConfirmed(ctx context.Context, trip *models.TripOccurrence) error {
	return g.publishEvent(constants.SubjectTripConfirmed, trip, "")
}

// PublishRouteReady publishes a route ready event to NATS
func (g *TripGW) PublishRouteReady(ctx context.Context, trip *models.TripOccurrence, route *models.Route) error {
	event := struct {
		models.TripEvent
		RouteID string `json:"route_id"`
		Stops   int    `json:"stops"`
	}{
		TripEvent: models.TripEvent{
			TripID:     trip.ID,
			DriverID:   trip.DriverID,
			State:      trip.State,
			OccurredAt: models.Now(),
		},
		RouteID: route.ID.String(),
		Stops:   len(route.Stops),
	}
	return g.producer.Publish(constants.SubjectTripRouteReady, event)
}

// PublishTripStarted publishes a trip started event to NATS
func (g *TripGW) PublishTripStarted(ctx context.Context, trip *models.TripOccurrence) error {
	return g.publishEvent(constants.SubjectTripStarted, trip, "")
}

// PublishTripCompleted publishes a trip completed event to NATS
func (g *TripGW) PublishTripCompleted(ctx context.Context, trip *models.TripOccurrence) error {
	return g.publishEvent(constants.SubjectTripCompleted, trip, "")
}

// PublishTripCancelled publishes a trip cancelled event to NATS
func (g *TripGW) PublishTripCancelled(ctx context.Context, trip *models.TripOccurrence, reason string) error {
	return g.publishEvent(constants.SubjectTripCancelled, trip, reason)
}
