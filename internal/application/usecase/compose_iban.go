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

// ComposeIBAN builds an IBAN from a country code and BBAN.
type ComposeIBAN struct {
	audit *Audit
}

// NewComposeIBAN creates a new ComposeIBAN use case.
func NewComposeIBAN(audit *Audit) *ComposeIBAN {
	return &ComposeIBAN{audit: audit}
}

// Execute composes the IBAN. The BBAN is used exactly as given.
func (uc *ComposeIBAN) Execute(ctx context.Context, req dto.ComposeIBANRequest) (dto.ComposeIBANResponse, error) {
	ctx, span := tracer.Start(ctx, "ComposeIBAN")
	defer span.End()

	var resp dto.ComposeIBANResponse
	var masked string
	composed, err := iban.Compose(req.CountryCode, req.BBAN)
	if err != nil {
		resp.Reason = ReasonCode(err)
	} else {
		resp.IBAN = &composed
		masked = iban.Mask(composed)
	}
	ok := resp.IBAN != nil
	country := countryOf(req.CountryCode)
	span.SetAttributes(
		attribute.Bool("identifier.valid", ok),
		attribute.String("identifier.country", country),
	)

	uc.audit.record(ctx, port.OpComposeIBAN, country, ok)
	uc.audit.publish(ctx, event.NewIBANComposed(
		uuid.NewString(), masked, country, ok, resp.Reason,
	))
	return resp, nil
}
