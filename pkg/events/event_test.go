package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("identifier.iban.validated", "req-123", "ValidationRequest")
	after := time.Now().UTC()

	_, err := uuid.Parse(event.EventID())
	assert.NoError(t, err, "event ID must be a UUID")
	assert.Equal(t, "identifier.iban.validated", event.EventType())
	assert.Equal(t, "req-123", event.AggregateID())
	assert.Equal(t, "ValidationRequest", event.AggregateType())
	assert.False(t, event.OccurredAt().Before(before))
	assert.False(t, event.OccurredAt().After(after))
}

func TestNewBaseEvent_UniqueIDs(t *testing.T) {
	a := NewBaseEvent("t", "x", "y")
	b := NewBaseEvent("t", "x", "y")
	assert.NotEqual(t, a.EventID(), b.EventID())
}

func TestBaseEvent_EmbeddedJSON(t *testing.T) {
	type sample struct {
		BaseEvent
		Country string `json:"country"`
	}
	evt := sample{BaseEvent: NewBaseEvent("sample", "agg-1", "Sample"), Country: "NL"}

	raw, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, evt.EventID(), decoded["event_id"])
	assert.Equal(t, "sample", decoded["event_type"])
	assert.Equal(t, "agg-1", decoded["aggregate_id"])
	assert.Equal(t, "Sample", decoded["aggregate_type"])
	assert.Equal(t, "NL", decoded["country"])
	assert.Contains(t, decoded, "occurred_at")
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}
