package iban

import "fmt"

// mod97 computes the ISO 7064 MOD 97-10 remainder of s after moving its first
// four characters to the end and expanding letters A-Z to 10-35. The
// remainder is carried digit by digit, so arbitrarily long input never
// overflows. ok is false when s contains anything but digits and uppercase
// letters, or is shorter than four characters.
func mod97(s string) (rem int, ok bool) {
	if len(s) < 4 {
		return 0, false
	}
	for _, part := range [2]string{s[4:], s[:4]} {
		for i := 0; i < len(part); i++ {
			c := part[i]
			switch {
			case c >= '0' && c <= '9':
				rem = (rem*10 + int(c-'0')) % 97
			case c >= 'A' && c <= 'Z':
				rem = (rem*100 + int(c-'A') + 10) % 97
			default:
				return 0, false
			}
		}
	}
	return rem, true
}

// VerifyChecksum reports whether an electronic-form IBAN passes the MOD 97-10
// check, i.e. its remainder is 1. Shape and country are not examined.
func VerifyChecksum(iban string) bool {
	rem, ok := mod97(iban)
	return ok && rem == 1
}

// CheckDigits derives the two IBAN check digits for a country code and BBAN.
// Substituting the result into countryCode+digits+bban always satisfies
// VerifyChecksum.
func CheckDigits(countryCode, bban string) (string, error) {
	rem, ok := mod97(countryCode + "00" + bban)
	if !ok {
		return "", fmt.Errorf("%w in %q", ErrInvalidCharacter, countryCode+bban)
	}
	return fmt.Sprintf("%02d", 98-rem), nil
}
