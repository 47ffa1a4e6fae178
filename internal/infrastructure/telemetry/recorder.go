package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ktp-forked-repos/ibantools/internal/domain/port"
)

var (
	_ port.MetricsRecorder = (*Recorder)(nil)
	_ port.MetricsRecorder = NoopRecorder{}
)

// Recorder records use case outcomes as OpenTelemetry counters.
type Recorder struct {
	validations     metric.Int64Counter
	publishFailures metric.Int64Counter
}

// NewRecorder creates the service instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	validations, err := meter.Int64Counter("identifier.validations",
		metric.WithDescription("Identifier checks by operation, country and outcome"))
	if err != nil {
		return nil, fmt.Errorf("create validations counter: %w", err)
	}
	publishFailures, err := meter.Int64Counter("identifier.events.publish_failures",
		metric.WithDescription("Audit events that could not be published"))
	if err != nil {
		return nil, fmt.Errorf("create publish failures counter: %w", err)
	}
	return &Recorder{validations: validations, publishFailures: publishFailures}, nil
}

func (r *Recorder) RecordValidation(ctx context.Context, op port.Operation, country string, valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	r.validations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", string(op)),
		attribute.String("country", country),
		attribute.String("outcome", outcome),
	))
}

func (r *Recorder) RecordPublishFailure(ctx context.Context, eventType string) {
	r.publishFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
}

// NoopRecorder discards all measurements.
type NoopRecorder struct{}

func (NoopRecorder) RecordValidation(context.Context, port.Operation, string, bool) {}
func (NoopRecorder) RecordPublishFailure(context.Context, string)                   {}
