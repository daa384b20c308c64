package gateway

import (
	"context"

	"github.com/trailyn/transport/internal/pkg/constants"
	"github.com/trailyn/transport/internal/pkg/models"
	natspkg "github.com/trailyn/transport/internal/pkg/nats"
	"github.com/trailyn/transport/services/stops"
)

// StopGW handles NATS publishing for stop completion events
type StopGW struct {
	producer *natspkg.Producer
}

// NewStopGW creates a new stop event gateway
func NewStopGW(producer *natspkg.Producer) stops.NotifyGW {
	return &StopGW{
		producer: producer,
	}
}

// PublishStopCompleted publishes a stop completed event to NATS
func (g *StopGW) PublishStopCompleted(ctx context.Context, event models.StopCompletedEvent) error {
	return g.producer.Publish(constants.SubjectTripStopCompleted, event)
}
