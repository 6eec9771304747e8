package service

import (
	"context"
	"encoding/json"
	"time"

	"aeon_dashboard/internal/pkg"

	"github.com/sirupsen/logrus"
)

// EventPublisher pushes moderation events to Kafka for the bot process to
// pick up. Publishing is fire-and-forget: a broker failure is logged and
// never fails the dashboard action that triggered it. A nil producer
// disables publishing entirely.
type EventPublisher struct {
	producer *pkg.KafkaProducer
	log      *logrus.Entry
}

func NewEventPublisher(producer *pkg.KafkaProducer, log *logrus.Entry) *EventPublisher {
	return &EventPublisher{producer: producer, log: log}
}

func (p *EventPublisher) Emit(ctx context.Context, eventType, guildID string, payload map[string]any) {
	if p == nil || p.producer == nil {
		return
	}
	body := map[string]any{
		"event":      eventType,
		"guild_id":   guildID,
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
	}
	for k, v := range payload {
		body[k] = v
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return
	}
	if err := p.producer.Send(ctx, guildID, raw); err != nil && p.log != nil {
		p.log.WithError(err).WithField("event", eventType).Warn("failed to publish moderation event")
	}
}
