package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktp-forked-repos/ibantools/internal/domain/event"
	pkgkafka "github.com/ktp-forked-repos/ibantools/pkg/kafka"
)

type recordingProducer struct {
	topic    string
	messages []pkgkafka.Message
	err      error
}

func (r *recordingProducer) Publish(_ context.Context, topic string, messages ...pkgkafka.Message) error {
	r.topic = topic
	r.messages = append(r.messages, messages...)
	return r.err
}

func TestPublisher_Publish(t *testing.T) {
	rec := &recordingProducer{}
	p := &Publisher{producer: rec}

	evt := event.NewIBANValidated("req-1", "NL04**********4314", "NL", true, "")
	require.NoError(t, p.Publish(context.Background(), "identifier.events", evt))

	assert.Equal(t, "identifier.events", rec.topic)
	require.Len(t, rec.messages, 1)
	msg := rec.messages[0]
	assert.Equal(t, "req-1", string(msg.Key))
	assert.Equal(t, event.TypeIBANValidated, msg.Headers["event_type"])
	assert.Equal(t, event.AggregateTypeIBAN, msg.Headers["aggregate_type"])
	assert.Equal(t, evt.EventID(), msg.Headers["event_id"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "NL04**********4314", body["masked_iban"])
	assert.Equal(t, "NL", body["country_code"])
}

func TestPublisher_PublishError(t *testing.T) {
	boom := errors.New("no leader")
	p := &Publisher{producer: &recordingProducer{err: boom}}

	err := p.Publish(context.Background(), "t", event.NewBICValidated("r", "ABNANL2A", "NL", true, ""))
	assert.ErrorIs(t, err, boom)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), "t",
		event.NewIBANComposed("r", "", "NL", false, "")))
}
