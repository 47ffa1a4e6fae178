package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ktp-forked-repos/ibantools/internal/application/dto"
	"github.com/ktp-forked-repos/ibantools/internal/domain/port"
	"github.com/ktp-forked-repos/ibantools/pkg/iban"
)

// ErrCountryNotFound is returned by GetCountry for codes not in the registry.
var ErrCountryNotFound = errors.New("country not found")

// ListCountries returns the registry in its canonical order.
type ListCountries struct {
	audit *Audit
}

// NewListCountries creates a new ListCountries use case.
func NewListCountries(audit *Audit) *ListCountries {
	return &ListCountries{audit: audit}
}

// Execute lists the registry, applying the requested filters.
func (uc *ListCountries) Execute(ctx context.Context, req dto.ListCountriesRequest) (dto.ListCountriesResponse, error) {
	ctx, span := tracer.Start(ctx, "ListCountries")
	defer span.End()

	all := iban.Countries().All()
	out := make([]dto.CountryResponse, 0, len(all))
	for _, spec := range all {
		if req.IBANOnly && !spec.IsIBANCountry() {
			continue
		}
		if req.SEPAOnly && !spec.SEPA() {
			continue
		}
		out = append(out, toCountryResponse(spec))
	}
	uc.audit.record(ctx, port.OpListCountries, "", true)
	return dto.ListCountriesResponse{Countries: out, Total: len(out)}, nil
}

// GetCountry looks up one registry entry by exact country code.
type GetCountry struct {
	audit *Audit
}

// NewGetCountry creates a new GetCountry use case.
func NewGetCountry(audit *Audit) *GetCountry {
	return &GetCountry{audit: audit}
}

// Execute returns the entry or ErrCountryNotFound.
func (uc *GetCountry) Execute(ctx context.Context, req dto.GetCountryRequest) (dto.CountryResponse, error) {
	ctx, span := tracer.Start(ctx, "GetCountry")
	defer span.End()

	spec, ok := iban.Countries().Lookup(req.Code)
	uc.audit.record(ctx, port.OpGetCountry, countryOf(req.Code), ok)
	if !ok {
		return dto.CountryResponse{}, fmt.Errorf("%w: %q", ErrCountryNotFound, req.Code)
	}
	return toCountryResponse(spec), nil
}

func toCountryResponse(spec iban.CountrySpec) dto.CountryResponse {
	resp := dto.CountryResponse{
		Code:         spec.Code(),
		Name:         spec.Name(),
		IBANRegistry: spec.IBANRegistry(),
		SEPA:         spec.SEPA(),
	}
	if n, ok := spec.IBANLength(); ok {
		resp.IBANLength = n
		resp.BBANPattern = spec.BBAN().String()
	}
	return resp
}
