package port

import (
	"context"

	"github.com/ktp-forked-repos/ibantools/pkg/events"
)

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}

// Operation names a use case for metrics and logs.
type Operation string

const (
	OpValidateIBAN  Operation = "validate_iban"
	OpExtractIBAN   Operation = "extract_iban"
	OpComposeIBAN   Operation = "compose_iban"
	OpFormatIBAN    Operation = "format_iban"
	OpValidateBBAN  Operation = "validate_bban"
	OpValidateBIC   Operation = "validate_bic"
	OpExtractBIC    Operation = "extract_bic"
	OpListCountries Operation = "list_countries"
	OpGetCountry    Operation = "get_country"
)

// MetricsRecorder records use case outcomes.
type MetricsRecorder interface {
	// RecordValidation counts one check. country may be empty when it could
	// not be determined.
	RecordValidation(ctx context.Context, op Operation, country string, valid bool)
	// RecordPublishFailure counts an audit event that could not be delivered.
	RecordPublishFailure(ctx context.Context, eventType string)
}
