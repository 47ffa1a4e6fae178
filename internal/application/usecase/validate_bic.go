package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ktp-forked-repos/ibantools/internal/application/dto"
	"github.com/ktp-forked-repos/ibantools/internal/domain/event"
	"github.com/ktp-forked-repos/ibantools/internal/domain/port"
	"github.com/ktp-forked-repos/ibantools/pkg/iban"
)

// ValidateBIC checks a BIC.
type ValidateBIC struct {
	audit *Audit
}

// NewValidateBIC creates a new ValidateBIC use case.
func NewValidateBIC(audit *Audit) *ValidateBIC {
	return &ValidateBIC{audit: audit}
}

// Execute validates the BIC.
func (uc *ValidateBIC) Execute(ctx context.Context, req dto.ValidateBICRequest) (dto.ValidationResponse, error) {
	ctx, span := tracer.Start(ctx, "ValidateBIC")
	defer span.End()

	err := iban.ValidateBIC(req.BIC)
	resp := dto.ValidationResponse{
		Valid:       err == nil,
		Reason:      ReasonCode(err),
		CountryCode: bicCountry(req.BIC),
	}
	span.SetAttributes(
		attribute.Bool("identifier.valid", resp.Valid),
		attribute.String("identifier.country", resp.CountryCode),
	)

	uc.audit.record(ctx, port.OpValidateBIC, resp.CountryCode, resp.Valid)
	uc.audit.publish(ctx, event.NewBICValidated(
		uuid.NewString(), auditBIC(req.BIC, resp.Valid), resp.CountryCode, resp.Valid, resp.Reason,
	))
	return resp, nil
}

// auditBIC returns the value recorded in BIC events. Only a valid BIC is
// sent as given; anything else is masked like an IBAN.
func auditBIC(bic string, valid bool) string {
	if valid {
		return bic
	}
	return iban.Mask(bic)
}

// bicCountry returns the registered country code at positions 5-6 of bic.
func bicCountry(bic string) string {
	if len(bic) < 6 {
		return ""
	}
	return countryOf(bic[4:6])
}
