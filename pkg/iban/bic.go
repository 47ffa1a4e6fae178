package iban

import "fmt"

// PrimaryOfficeBranch is reported as the branch code of an eight-character BIC.
const PrimaryOfficeBranch = "619"

// BICDetails holds the segments of a valid BIC.
type BICDetails struct {
	BankCode     string
	CountryCode  string
	CountryName  string
	LocationCode string
	BranchCode   string
	// TestBIC is set when the second location character is '0', which marks
	// a test or non-live institution.
	TestBIC bool
}

// ExtractedBIC is the outcome of ExtractBIC. Details are only reachable when
// the BIC is valid.
type ExtractedBIC struct {
	Input   string
	details *BICDetails
}

// Valid reports whether the input was a valid BIC.
func (e ExtractedBIC) Valid() bool {
	return e.details != nil
}

// Details returns the BIC segments; ok is false for an invalid BIC.
func (e ExtractedBIC) Details() (d BICDetails, ok bool) {
	if e.details == nil {
		return BICDetails{}, false
	}
	return *e.details, true
}

// ValidateBIC checks that bic is 8 or 11 characters: a 4-letter bank code, a
// registered 2-letter country code, a 2-character alphanumeric location code
// and an optional 3-character alphanumeric branch code.
func ValidateBIC(bic string) error {
	if bic == "" {
		return ErrEmpty
	}
	if len(bic) != 8 && len(bic) != 11 {
		return fmt.Errorf("%w: length must be 8 or 11, got %d", ErrInvalidBIC, len(bic))
	}
	for i := 0; i < 6; i++ {
		if !Letters.Accepts(bic[i]) {
			return fmt.Errorf("%w: character %d must be a letter", ErrInvalidBIC, i+1)
		}
	}
	for i := 6; i < len(bic); i++ {
		if !Alphanumeric.Accepts(bic[i]) {
			return fmt.Errorf("%w: character %d must be alphanumeric", ErrInvalidBIC, i+1)
		}
	}
	if _, ok := defaultRegistry.Lookup(bic[4:6]); !ok {
		return fmt.Errorf("%w: %w %q", ErrInvalidBIC, ErrUnknownCountry, bic[4:6])
	}
	return nil
}

// IsValidBIC reports whether ValidateBIC accepts bic.
func IsValidBIC(bic string) bool {
	return ValidateBIC(bic) == nil
}

// ExtractBIC splits a BIC into its segments. An invalid BIC yields a result
// with no details.
func ExtractBIC(bic string) ExtractedBIC {
	result := ExtractedBIC{Input: bic}
	if !IsValidBIC(bic) {
		return result
	}
	spec, _ := defaultRegistry.Lookup(bic[4:6])
	d := &BICDetails{
		BankCode:     bic[0:4],
		CountryCode:  bic[4:6],
		CountryName:  spec.name,
		LocationCode: bic[6:8],
		BranchCode:   PrimaryOfficeBranch,
		TestBIC:      bic[7] == '0',
	}
	if len(bic) == 11 {
		d.BranchCode = bic[8:11]
	}
	result.details = d
	return result
}
