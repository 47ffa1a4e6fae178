package iban

import (
	"errors"
	"fmt"
)

// Reasons a value fails validation. The boolean APIs collapse all of them
// into false; the Validate functions return one of them, wrapped with detail.
var (
	ErrEmpty              = errors.New("empty input")
	ErrUnknownCountry     = errors.New("unknown country code")
	ErrNotIBANCountry     = errors.New("country does not issue IBANs")
	ErrInvalidLength      = errors.New("invalid length")
	ErrInvalidCheckDigits = errors.New("check digits must be two decimal digits")
	ErrInvalidBBAN        = errors.New("BBAN does not match country format")
	ErrInvalidChecksum    = errors.New("MOD 97-10 checksum mismatch")
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrInvalidBIC         = errors.New("invalid BIC")
)

// ValidateIBAN checks an electronic-form IBAN: known country, exact length,
// numeric check digits, BBAN shape and MOD 97-10 checksum, in that order.
// Separators and lowercase letters are not stripped; they make the IBAN invalid.
func ValidateIBAN(iban string) error {
	return validateIBAN(defaultRegistry, iban)
}

// IsValidIBAN reports whether ValidateIBAN accepts iban.
func IsValidIBAN(iban string) bool {
	return ValidateIBAN(iban) == nil
}

func validateIBAN(r *Registry, iban string) error {
	if iban == "" {
		return ErrEmpty
	}
	if len(iban) < 2 {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, iban)
	}
	spec, ok := r.Lookup(iban[:2])
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, iban[:2])
	}
	if !spec.IsIBANCountry() {
		return fmt.Errorf("%w: %s", ErrNotIBANCountry, spec.code)
	}
	if !spec.MatchesIBANLength(iban) {
		return fmt.Errorf("%w: %s IBAN must be %d characters, got %d", ErrInvalidLength, spec.code, spec.length, len(iban))
	}
	if !Digits.Accepts(iban[2]) || !Digits.Accepts(iban[3]) {
		return ErrInvalidCheckDigits
	}
	if !spec.MatchesBBAN(iban[4:]) {
		return fmt.Errorf("%w: %s expects %s", ErrInvalidBBAN, spec.code, spec.bban)
	}
	if !VerifyChecksum(iban) {
		return ErrInvalidChecksum
	}
	return nil
}

// ValidateBBAN checks bban against the BBAN format of countryCode.
func ValidateBBAN(bban, countryCode string) error {
	if bban == "" || countryCode == "" {
		return ErrEmpty
	}
	spec, ok := defaultRegistry.Lookup(countryCode)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, countryCode)
	}
	if !spec.IsIBANCountry() {
		return fmt.Errorf("%w: %s", ErrNotIBANCountry, spec.code)
	}
	if !spec.MatchesBBAN(bban) {
		return fmt.Errorf("%w: %s expects %s", ErrInvalidBBAN, spec.code, spec.bban)
	}
	return nil
}

// IsValidBBAN reports whether ValidateBBAN accepts bban for countryCode.
func IsValidBBAN(bban, countryCode string) bool {
	return ValidateBBAN(bban, countryCode) == nil
}
