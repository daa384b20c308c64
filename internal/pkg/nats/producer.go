package nats

import (
	"encoding/json"
	"fmt"
)

// Producer publishes JSON events over an existing NATS client connection.
type Producer struct {
	client *Client
}

// NewProducer creates a new producer on top of a connected client
func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

// Publish marshals the message to JSON and sends it to the subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}
