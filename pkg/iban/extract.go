package iban

// IBANDetails holds the parts of a valid IBAN.
type IBANDetails struct {
	// IBAN is the electronic form that was validated.
	IBAN        string
	BBAN        string
	CountryCode string
	CountryName string
	CheckDigits string
}

// ExtractedIBAN is the outcome of ExtractIBAN. Input always echoes the value
// passed in; details are only reachable when the IBAN is valid.
type ExtractedIBAN struct {
	Input   string
	details *IBANDetails
}

// Valid reports whether the input was a valid IBAN.
func (e ExtractedIBAN) Valid() bool {
	return e.details != nil
}

// Details returns the IBAN parts; ok is false for an invalid IBAN.
func (e ExtractedIBAN) Details() (d IBANDetails, ok bool) {
	if e.details == nil {
		return IBANDetails{}, false
	}
	return *e.details, true
}

// ExtractIBAN converts raw to electronic form, validates it and splits it into
// country code, check digits and BBAN. Unlike IsValidIBAN it tolerates
// separators and lowercase letters in raw.
func ExtractIBAN(raw string) ExtractedIBAN {
	result := ExtractedIBAN{Input: raw}
	iban := ElectronicFormat(raw)
	if validateIBAN(defaultRegistry, iban) != nil {
		return result
	}
	spec, _ := defaultRegistry.Lookup(iban[:2])
	result.details = &IBANDetails{
		IBAN:        iban,
		BBAN:        iban[4:],
		CountryCode: spec.code,
		CountryName: spec.name,
		CheckDigits: iban[2:4],
	}
	return result
}
