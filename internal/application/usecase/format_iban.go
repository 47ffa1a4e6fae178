package usecase

import (
	"context"

	"github.com/ktp-forked-repos/ibantools/internal/application/dto"
	"github.com/ktp-forked-repos/ibantools/internal/domain/port"
	"github.com/ktp-forked-repos/ibantools/pkg/iban"
)

// FormatIBAN renders an IBAN-like string in electronic and friendly form.
// Formatting never validates.
type FormatIBAN struct {
	audit *Audit
}

// NewFormatIBAN creates a new FormatIBAN use case.
func NewFormatIBAN(audit *Audit) *FormatIBAN {
	return &FormatIBAN{audit: audit}
}

// Execute formats the input.
func (uc *FormatIBAN) Execute(ctx context.Context, req dto.FormatIBANRequest) (dto.FormatIBANResponse, error) {
	ctx, span := tracer.Start(ctx, "FormatIBAN")
	defer span.End()

	separator := " "
	if req.Separator != nil {
		separator = *req.Separator
	}
	resp := dto.FormatIBANResponse{
		Electronic: iban.ElectronicFormat(req.IBAN),
		Friendly:   iban.FriendlyFormatWith(req.IBAN, separator),
	}
	uc.audit.record(ctx, port.OpFormatIBAN, countryOf(resp.Electronic), true)
	return resp, nil
}
