package usecase

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/ktp-forked-repos/ibantools/internal/domain/port"
	"github.com/ktp-forked-repos/ibantools/pkg/events"
	"github.com/ktp-forked-repos/ibantools/pkg/iban"
)

const TopicIdentifierEvents = "identifier.events"

var tracer = otel.Tracer("github.com/ktp-forked-repos/ibantools/internal/application/usecase")

// Audit carries the cross-cutting dependencies every use case reports to:
// outcome metrics and the audit event stream.
type Audit struct {
	publisher port.EventPublisher // optional, may be nil
	metrics   port.MetricsRecorder
	topic     string
	logger    *slog.Logger
}

// NewAudit creates an Audit. A nil publisher disables audit events; an empty
// topic means TopicIdentifierEvents.
func NewAudit(publisher port.EventPublisher, metrics port.MetricsRecorder, topic string, logger *slog.Logger) *Audit {
	if topic == "" {
		topic = TopicIdentifierEvents
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Audit{publisher: publisher, metrics: metrics, topic: topic, logger: logger}
}

func (a *Audit) record(ctx context.Context, op port.Operation, country string, valid bool) {
	if a.metrics != nil {
		a.metrics.RecordValidation(ctx, op, country, valid)
	}
}

// publish emits evt. Failures are logged and counted, never returned.
func (a *Audit) publish(ctx context.Context, evt events.DomainEvent) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(ctx, a.topic, evt); err != nil {
		a.logger.WarnContext(ctx, "audit event not published",
			"event_type", evt.EventType(),
			"event_id", evt.EventID(),
			"error", err,
		)
		if a.metrics != nil {
			a.metrics.RecordPublishFailure(ctx, evt.EventType())
		}
	}
}

// Reason codes reported for failed checks.
const (
	ReasonEmpty              = "empty"
	ReasonUnknownCountry     = "unknown_country"
	ReasonNotIBANCountry     = "not_iban_country"
	ReasonInvalidLength      = "invalid_length"
	ReasonInvalidCheckDigits = "invalid_check_digits"
	ReasonInvalidBBAN        = "invalid_bban"
	ReasonInvalidChecksum    = "invalid_checksum"
	ReasonInvalidCharacter   = "invalid_character"
	ReasonInvalidBIC         = "invalid_bic"
	ReasonInvalid            = "invalid"
)

var reasons = []struct {
	err  error
	code string
}{
	{iban.ErrEmpty, ReasonEmpty},
	{iban.ErrUnknownCountry, ReasonUnknownCountry},
	{iban.ErrNotIBANCountry, ReasonNotIBANCountry},
	{iban.ErrInvalidLength, ReasonInvalidLength},
	{iban.ErrInvalidCheckDigits, ReasonInvalidCheckDigits},
	{iban.ErrInvalidBBAN, ReasonInvalidBBAN},
	{iban.ErrInvalidChecksum, ReasonInvalidChecksum},
	{iban.ErrInvalidCharacter, ReasonInvalidCharacter},
	{iban.ErrInvalidBIC, ReasonInvalidBIC},
}

// ReasonCode maps a validation error to its reason code; nil maps to "".
func ReasonCode(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.code
		}
	}
	return ReasonInvalid
}

// countryOf returns the leading two characters of s when they name a
// registered country.
func countryOf(s string) string {
	if len(s) < 2 {
		return ""
	}
	if _, ok := iban.Countries().Lookup(s[:2]); !ok {
		return ""
	}
	return s[:2]
}
