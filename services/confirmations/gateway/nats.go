package gateway

import (
	"context"

	"github.com/trailyn/transport/internal/pkg/constants"
	"github.com/trailyn/transport/internal/pkg/models"
	natspkg "github.com/trailyn/transport/internal/pkg/nats"
	"github.com/trailyn/transport/services/confirmations"
)

// ConfirmationGW handles NATS publishing for confirmation events
type ConfirmationGW struct {
	producer *natspkg.Producer
}

// NewConfirmationGW creates a new confirmation event gateway
func NewConfirmationGW(producer *natspkg.Producer) confirmations.NotifyGW {
	return &ConfirmationGW{
		producer: producer,
	}
}

func (g *ConfirmationGW) publish(subject string, rec *models.ConfirmationRecord) error {
	event := models.ConfirmationEvent{
		ConfirmationID: rec.ID,
		TripID:         rec.TripID,
		RiderID:        rec.RiderID,
		GuardianID:     rec.GuardianID,
		ServiceDate:    rec.ServiceDate.Format("2006-01-02"),
		OccurredAt:     models.Now(),
	}
	return g.producer.Publish(subject, event)
}

// PublishConfirmationCreated publishes a confirmation created event to NATS
func (g *ConfirmationGW) PublishConfirmationCreated(ctx context.Context, rec *models.ConfirmationRecord) error {
	return g.publish(constants.SubjectConfirmationCreated, rec)
}

// PublishConfirmationCancelled publishes a confirmation cancelled event to NATS
func (g *ConfirmationGW) PublishConfirmationCancelled(ctx context.Context, rec *models.ConfirmationRecord) error {
	return g.publish(constants.SubjectConfirmationCancelled, rec)
}
