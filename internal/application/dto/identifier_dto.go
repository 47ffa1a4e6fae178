package dto

// --- Validation DTOs ---

// ValidateIBANRequest is the input DTO for IBAN validation. The IBAN must be
// in electronic form; see ExtractIBAN for tolerant parsing.
type ValidateIBANRequest struct {
	IBAN string `json:"iban"`
}

// ValidateBBANRequest is the input DTO for BBAN validation.
type ValidateBBANRequest struct {
	BBAN        string `json:"bban"`
	CountryCode string `json:"country_code"`
}

// ValidateBICRequest is the input DTO for BIC validation and extraction.
type ValidateBICRequest struct {
	BIC string `json:"bic"`
}

// ValidationResponse is the output DTO for every boolean check. Reason is a
// stable code and is empty when Valid is true.
type ValidationResponse struct {
	Valid       bool   `json:"valid"`
	Reason      string `json:"reason,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// --- Extraction DTOs ---

// ExtractIBANRequest is the input DTO for IBAN extraction. Separators and
// lowercase letters are tolerated.
type ExtractIBANRequest struct {
	IBAN string `json:"iban"`
}

// IBANDetails is the breakdown of a valid IBAN.
type IBANDetails struct {
	IBAN        string `json:"iban"`
	Friendly    string `json:"friendly"`
	BBAN        string `json:"bban"`
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	CheckDigits string `json:"check_digits"`
}

// ExtractIBANResponse is the output DTO for IBAN extraction.
type ExtractIBANResponse struct {
	Input   string       `json:"input"`
	Valid   bool         `json:"valid"`
	Reason  string       `json:"reason,omitempty"`
	Details *IBANDetails `json:"details,omitempty"`
}

// BICDetails is the breakdown of a valid BIC.
type BICDetails struct {
	BankCode     string `json:"bank_code"`
	CountryCode  string `json:"country_code"`
	CountryName  string `json:"country_name"`
	LocationCode string `json:"location_code"`
	BranchCode   string `json:"branch_code"`
	TestBIC      bool   `json:"test_bic"`
}

// ExtractBICResponse is the output DTO for BIC extraction.
type ExtractBICResponse struct {
	Input   string      `json:"input"`
	Valid   bool        `json:"valid"`
	Reason  string      `json:"reason,omitempty"`
	Details *BICDetails `json:"details,omitempty"`
}

// --- Composition and formatting DTOs ---

// ComposeIBANRequest is the input DTO for building an IBAN from a BBAN.
type ComposeIBANRequest struct {
	CountryCode string `json:"country_code"`
	BBAN        string `json:"bban"`
}

// ComposeIBANResponse is the output DTO for IBAN composition. IBAN is nil
// when composition failed.
type ComposeIBANResponse struct {
	IBAN   *string `json:"iban"`
	Reason string  `json:"reason,omitempty"`
}

// FormatIBANRequest is the input DTO for formatting. A nil Separator means a
// single space.
type FormatIBANRequest struct {
	IBAN      string  `json:"iban"`
	Separator *string `json:"separator,omitempty"`
}

// FormatIBANResponse is the output DTO for formatting.
type FormatIBANResponse struct {
	Electronic string `json:"electronic"`
	Friendly   string `json:"friendly"`
}

// --- Country DTOs ---

// CountryResponse describes one registry entry. IBANLength is zero and
// BBANPattern empty for countries that do not issue IBANs.
type CountryResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	IBANLength   int    `json:"iban_length,omitempty"`
	BBANPattern  string `json:"bban_pattern,omitempty"`
	IBANRegistry bool   `json:"iban_registry"`
	SEPA         bool   `json:"sepa"`
}

// ListCountriesRequest filters the registry listing.
type ListCountriesRequest struct {
	IBANOnly bool `json:"iban_only"`
	SEPAOnly bool `json:"sepa_only"`
}

// ListCountriesResponse is the output DTO for the registry listing.
type ListCountriesResponse struct {
	Countries []CountryResponse `json:"countries"`
	Total     int               `json:"total"`
}

// GetCountryRequest is the input DTO for a single registry lookup.
type GetCountryRequest struct {
	Code string `json:"code"`
}
