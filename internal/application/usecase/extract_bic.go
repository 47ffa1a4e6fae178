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

// ExtractBIC validates a BIC and splits it into its segments.
type ExtractBIC struct {
	audit *Audit
}

// NewExtractBIC creates a new ExtractBIC use case.
func NewExtractBIC(audit *Audit) *ExtractBIC {
	return &ExtractBIC{audit: audit}
}

// Execute extracts the BIC segments.
func (uc *ExtractBIC) Execute(ctx context.Context, req dto.ValidateBICRequest) (dto.ExtractBICResponse, error) {
	ctx, span := tracer.Start(ctx, "ExtractBIC")
	defer span.End()

	resp := dto.ExtractBICResponse{Input: req.BIC}
	if d, ok := iban.ExtractBIC(req.BIC).Details(); ok {
		resp.Valid = true
		resp.Details = &dto.BICDetails{
			BankCode:     d.BankCode,
			CountryCode:  d.CountryCode,
			CountryName:  d.CountryName,
			LocationCode: d.LocationCode,
			BranchCode:   d.BranchCode,
			TestBIC:      d.TestBIC,
		}
	} else {
		resp.Reason = ReasonCode(iban.ValidateBIC(req.BIC))
	}
	country := bicCountry(req.BIC)
	span.SetAttributes(
		attribute.Bool("identifier.valid", resp.Valid),
		attribute.String("identifier.country", country),
	)

	uc.audit.record(ctx, port.OpExtractBIC, country, resp.Valid)
	uc.audit.publish(ctx, event.NewBICValidated(
		uuid.NewString(), auditBIC(req.BIC, resp.Valid), country, resp.Valid, resp.Reason,
	))
	return resp, nil
}
