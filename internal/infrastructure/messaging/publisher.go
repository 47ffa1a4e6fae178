package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ktp-forked-repos/ibantools/internal/domain/port"
	"github.com/ktp-forked-repos/ibantools/pkg/events"
	pkgkafka "github.com/ktp-forked-repos/ibantools/pkg/kafka"
)

var (
	_ port.EventPublisher = (*Publisher)(nil)
	_ port.EventPublisher = NoopPublisher{}
)

// producer is satisfied by *pkgkafka.Producer.
type producer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// Publisher implements EventPublisher using Kafka.
type Publisher struct {
	producer producer
}

func NewPublisher(producer *pkgkafka.Producer) *Publisher {
	return &Publisher{producer: producer}
}

func (p *Publisher) Publish(ctx context.Context, topic string, domainEvents ...events.DomainEvent) error {
	var messages []pkgkafka.Message
	for _, evt := range domainEvents {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
				"event_id":       evt.EventID(),
				"content_type":   "application/json",
			},
		})
	}
	if err := p.producer.Publish(ctx, topic, messages...); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}

// NoopPublisher drops every event. It stands in when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, ...events.DomainEvent) error { return nil }
