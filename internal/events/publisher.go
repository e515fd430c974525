// Package events publishes domain events (incident reported, responder
// dispatched, alert sent, ...) to a Kafka topic.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Event types.
const (
	IncidentReported    = "incident.reported"
	IncidentStatus      = "incident.status_changed"
	ResponderDispatched = "responder.dispatched"
	ResponderAssigned   = "responder.assigned"
	ResponderUnassigned = "responder.unassigned"
	DispatchFailed      = "dispatch.failed"
	DispatchNoResponder = "dispatch.no_responder"
	ZoneOccupancy       = "zone.occupancy_updated"
	AlertSent           = "alert.sent"
	MediaAnalyzed       = "media.analyzed"
)

// Event is the envelope written as the message value.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
	topic  string
	logger *logrus.Logger
}

// NewPublisher returns a Kafka backed publisher. With no brokers configured
// events are only logged.
func NewPublisher(brokers []string, topic string, logger *logrus.Logger) *Publisher {
	p := &Publisher{topic: topic, logger: logger}
	if len(brokers) == 0 {
		return p
	}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // события одного инцидента попадают в одну партицию
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return p
}

// Publish writes one event keyed by key (usually the incident id).
func (p *Publisher) Publish(ctx context.Context, eventType, key string, payload any) error {
	msg, err := newMessage(eventType, key, payload, time.Now().UTC())
	if err != nil {
		return err
	}

	log := p.logger.WithFields(logrus.Fields{
		"event": eventType,
		"key":   key,
		"topic": p.topic,
	})
	if p.writer == nil {
		log.Debug("Kafka disabled, event not published")
		return nil
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.WithError(err).Error("Failed to publish event")
		return fmt.Errorf("events: write %s: %w", eventType, err)
	}
	log.Debug("Event published")
	return nil
}

func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func newMessage(eventType, key string, payload any, now time.Time) (kafka.Message, error) {
	ev := Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: now,
		Payload:    payload,
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("events: marshal %s: %w", eventType, err)
	}
	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "event-id", Value: []byte(ev.ID.String())},
		},
	}, nil
}
