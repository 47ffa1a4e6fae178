package iban

import "fmt"

// ComposeIBAN builds an IBAN from a country code and BBAN by deriving the
// check digits. ok is false when the country is unknown, does not issue
// IBANs, or bban does not exactly match the country's BBAN format.
func ComposeIBAN(countryCode, bban string) (iban string, ok bool) {
	iban, err := Compose(countryCode, bban)
	return iban, err == nil
}

// Compose is ComposeIBAN with the reason for failure.
func Compose(countryCode, bban string) (string, error) {
	if err := ValidateBBAN(bban, countryCode); err != nil {
		return "", fmt.Errorf("compose IBAN: %w", err)
	}
	digits, err := CheckDigits(countryCode, bban)
	if err != nil {
		return "", fmt.Errorf("compose IBAN: %w", err)
	}
	return countryCode + digits + bban, nil
}
