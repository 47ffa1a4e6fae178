package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ktp-forked-repos/ibantools/internal/application/dto"
	"github.com/ktp-forked-repos/ibantools/internal/domain/port"
	"github.com/ktp-forked-repos/ibantools/pkg/iban"
)

// ValidateBBAN checks a domestic account number against its country format.
type ValidateBBAN struct {
	audit *Audit
}

// NewValidateBBAN creates a new ValidateBBAN use case.
func NewValidateBBAN(audit *Audit) *ValidateBBAN {
	return &ValidateBBAN{audit: audit}
}

// Execute validates the BBAN.
func (uc *ValidateBBAN) Execute(ctx context.Context, req dto.ValidateBBANRequest) (dto.ValidationResponse, error) {
	ctx, span := tracer.Start(ctx, "ValidateBBAN")
	defer span.End()

	err := iban.ValidateBBAN(req.BBAN, req.CountryCode)
	resp := dto.ValidationResponse{
		Valid:       err == nil,
		Reason:      ReasonCode(err),
		CountryCode: countryOf(req.CountryCode),
	}
	span.SetAttributes(
		attribute.Bool("identifier.valid", resp.Valid),
		attribute.String("identifier.country", resp.CountryCode),
	)

	uc.audit.record(ctx, port.OpValidateBBAN, resp.CountryCode, resp.Valid)
	return resp, nil
}
