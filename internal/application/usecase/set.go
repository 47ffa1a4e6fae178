package usecase

// Set groups the use cases exposed by the presentation layer.
type Set struct {
	ValidateIBAN  *ValidateIBAN
	ExtractIBAN   *ExtractIBAN
	ComposeIBAN   *ComposeIBAN
	FormatIBAN    *FormatIBAN
	ValidateBBAN  *ValidateBBAN
	ValidateBIC   *ValidateBIC
	ExtractBIC    *ExtractBIC
	ListCountries *ListCountries
	GetCountry    *GetCountry
}

// NewSet wires every use case to the same audit sink.
func NewSet(audit *Audit) Set {
	return Set{
		ValidateIBAN:  NewValidateIBAN(audit),
		ExtractIBAN:   NewExtractIBAN(audit),
		ComposeIBAN:   NewComposeIBAN(audit),
		FormatIBAN:    NewFormatIBAN(audit),
		ValidateBBAN:  NewValidateBBAN(audit),
		ValidateBIC:   NewValidateBIC(audit),
		ExtractBIC:    NewExtractBIC(audit),
		ListCountries: NewListCountries(audit),
		GetCountry:    NewGetCountry(audit),
	}
}
