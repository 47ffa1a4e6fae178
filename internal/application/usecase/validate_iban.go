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

// ValidateIBAN checks an electronic-form IBAN.
type ValidateIBAN struct {
	audit *Audit
}

// NewValidateIBAN creates a new ValidateIBAN use case.
func NewValidateIBAN(audit *Audit) *ValidateIBAN {
	return &ValidateIBAN{audit: audit}
}

// Execute validates the IBAN. An invalid IBAN is a result, not an error.
func (uc *ValidateIBAN) Execute(ctx context.Context, req dto.ValidateIBANRequest) (dto.ValidationResponse, error) {
	ctx, span := tracer.Start(ctx, "ValidateIBAN")
	defer span.End()

	err := iban.ValidateIBAN(req.IBAN)
	resp := dto.ValidationResponse{
		Valid:       err == nil,
		Reason:      ReasonCode(err),
		CountryCode: countryOf(req.IBAN),
	}
	span.SetAttributes(
		attribute.Bool("identifier.valid", resp.Valid),
		attribute.String("identifier.country", resp.CountryCode),
	)

	uc.audit.record(ctx, port.OpValidateIBAN, resp.CountryCode, resp.Valid)
	uc.audit.publish(ctx, event.NewIBANValidated(
		uuid.NewString(), iban.Mask(req.IBAN), resp.CountryCode, resp.Valid, resp.Reason,
	))
	return resp, nil
}
