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

// ExtractIBAN normalises, validates and splits an IBAN.
type ExtractIBAN struct {
	audit *Audit
}

// NewExtractIBAN creates a new ExtractIBAN use case.
func NewExtractIBAN(audit *Audit) *ExtractIBAN {
	return &ExtractIBAN{audit: audit}
}

// Execute extracts the IBAN parts.
func (uc *ExtractIBAN) Execute(ctx context.Context, req dto.ExtractIBANRequest) (dto.ExtractIBANResponse, error) {
	ctx, span := tracer.Start(ctx, "ExtractIBAN")
	defer span.End()

	resp := dto.ExtractIBANResponse{Input: req.IBAN}
	electronic := iban.ElectronicFormat(req.IBAN)
	country := countryOf(electronic)

	result := iban.ExtractIBAN(req.IBAN)
	if d, ok := result.Details(); ok {
		resp.Valid = true
		resp.Details = &dto.IBANDetails{
			IBAN:        d.IBAN,
			Friendly:    iban.FriendlyFormat(d.IBAN),
			BBAN:        d.BBAN,
			CountryCode: d.CountryCode,
			CountryName: d.CountryName,
			CheckDigits: d.CheckDigits,
		}
	} else {
		resp.Reason = ReasonCode(iban.ValidateIBAN(electronic))
	}
	span.SetAttributes(
		attribute.Bool("identifier.valid", resp.Valid),
		attribute.String("identifier.country", country),
	)

	uc.audit.record(ctx, port.OpExtractIBAN, country, resp.Valid)
	uc.audit.publish(ctx, event.NewIBANValidated(
		uuid.NewString(), iban.Mask(electronic), country, resp.Valid, resp.Reason,
	))
	return resp, nil
}
