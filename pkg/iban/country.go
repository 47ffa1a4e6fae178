package iban

import "fmt"

// CountrySpec describes how IBANs and BICs are shaped for one ISO 3166-1
// alpha-2 country code. Values are immutable.
type CountrySpec struct {
	code         string
	name         string
	length       int
	bban         Pattern
	ibanRegistry bool
	sepa         bool
}

// Code returns the two-letter country code.
func (c CountrySpec) Code() string { return c.code }

// Name returns the English display name of the country.
func (c CountrySpec) Name() string { return c.name }

// IBANLength returns the total length of an IBAN for the country. The second
// result is false when the country does not issue IBANs.
func (c CountrySpec) IBANLength() (int, bool) {
	return c.length, c.length > 0
}

// BBAN returns the shape of the domestic account number.
func (c CountrySpec) BBAN() Pattern { return c.bban }

// IBANRegistry reports whether the country is listed in the SWIFT IBAN registry.
func (c CountrySpec) IBANRegistry() bool { return c.ibanRegistry }

// SEPA reports whether the country belongs to the Single Euro Payments Area.
func (c CountrySpec) SEPA() bool { return c.sepa }

// IsIBANCountry reports whether the country carries an IBAN length and BBAN shape.
func (c CountrySpec) IsIBANCountry() bool {
	return c.length > 0 && !c.bban.IsZero()
}

// MatchesBBAN reports whether bban has exactly the country's BBAN shape.
// No normalisation is applied.
func (c CountrySpec) MatchesBBAN(bban string) bool {
	return c.IsIBANCountry() && c.bban.Match(bban)
}

// MatchesIBANLength reports whether iban has the country's total IBAN length.
func (c CountrySpec) MatchesIBANLength(iban string) bool {
	return c.IsIBANCountry() && len(iban) == c.length
}

// countryEntry is one row of the compiled-in table.
type countryEntry struct {
	code     string
	name     string
	length   int
	bban     string
	registry bool
	sepa     bool
}

// Registry maps country codes to their specifications. It is built once and
// never mutated, so it is safe for concurrent use.
type Registry struct {
	order []string
	specs map[string]CountrySpec
}

func newRegistry(entries []countryEntry) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(entries)),
		specs: make(map[string]CountrySpec, len(entries)),
	}
	for _, e := range entries {
		if len(e.code) != 2 || !Letters.Accepts(e.code[0]) || !Letters.Accepts(e.code[1]) {
			return nil, fmt.Errorf("country %q: code must be two uppercase letters", e.code)
		}
		if _, dup := r.specs[e.code]; dup {
			return nil, fmt.Errorf("country %s: duplicate entry", e.code)
		}
		spec := CountrySpec{
			code:         e.code,
			name:         e.name,
			length:       e.length,
			ibanRegistry: e.registry,
			sepa:         e.sepa,
		}
		if e.bban != "" {
			p, err := ParsePattern(e.bban)
			if err != nil {
				return nil, fmt.Errorf("country %s: %w", e.code, err)
			}
			spec.bban = p
		}
		if (spec.length > 0) != !spec.bban.IsZero() {
			return nil, fmt.Errorf("country %s: length and BBAN pattern must be set together", e.code)
		}
		if spec.length > 0 && spec.bban.Len() != spec.length-4 {
			return nil, fmt.Errorf("country %s: BBAN pattern length %d does not match IBAN length %d",
				e.code, spec.bban.Len(), spec.length)
		}
		r.order = append(r.order, e.code)
		r.specs[e.code] = spec
	}
	return r, nil
}

var defaultRegistry = mustRegistry(countryTable)

func mustRegistry(entries []countryEntry) *Registry {
	r, err := newRegistry(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Countries returns the compiled-in country registry.
func Countries() *Registry {
	return defaultRegistry
}

// Lookup returns the CountrySpec for an exact, uppercase country code.
func (r *Registry) Lookup(code string) (CountrySpec, bool) {
	spec, ok := r.specs[code]
	return spec, ok
}

// Len returns the number of countries in the registry.
func (r *Registry) Len() int {
	return len(r.order)
}

// All returns every spec in registry order. The slice is a fresh copy.
func (r *Registry) All() []CountrySpec {
	out := make([]CountrySpec, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.specs[code])
	}
	return out
}

// Map returns a fresh code-to-spec map. Mutating it does not affect the registry.
func (r *Registry) Map() map[string]CountrySpec {
	out := make(map[string]CountrySpec, len(r.specs))
	for code, spec := range r.specs {
		out[code] = spec
	}
	return out
}
