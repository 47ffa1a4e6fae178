package event

import (
	"github.com/ktp-forked-repos/ibantools/pkg/events"
)

const (
	AggregateTypeIBAN = "IBAN"
	AggregateTypeBIC  = "BIC"

	TypeIBANValidated = "identifier.iban.validated"
	TypeBICValidated  = "identifier.bic.validated"
	TypeIBANComposed  = "identifier.iban.composed"
)

// IBANValidated is emitted after an IBAN validation or extraction. The IBAN
// itself never leaves the service unmasked.
type IBANValidated struct {
	events.BaseEvent
	MaskedIBAN  string `json:"masked_iban"`
	CountryCode string `json:"country_code,omitempty"`
	Valid       bool   `json:"valid"`
	Reason      string `json:"reason,omitempty"`
}

// NewIBANValidated creates an IBANValidated domain event.
func NewIBANValidated(requestID, maskedIBAN, countryCode string, valid bool, reason string) IBANValidated {
	return IBANValidated{
		BaseEvent:   events.NewBaseEvent(TypeIBANValidated, requestID, AggregateTypeIBAN),
		MaskedIBAN:  maskedIBAN,
		CountryCode: countryCode,
		Valid:       valid,
		Reason:      reason,
	}
}

// BICValidated is emitted after a BIC validation or extraction. BICs identify
// institutions, not account holders, so the code is carried as is.
type BICValidated struct {
	events.BaseEvent
	BIC         string `json:"bic"`
	CountryCode string `json:"country_code,omitempty"`
	Valid       bool   `json:"valid"`
	Reason      string `json:"reason,omitempty"`
}

// NewBICValidated creates a BICValidated domain event.
func NewBICValidated(requestID, bic, countryCode string, valid bool, reason string) BICValidated {
	return BICValidated{
		BaseEvent:   events.NewBaseEvent(TypeBICValidated, requestID, AggregateTypeBIC),
		BIC:         bic,
		CountryCode: countryCode,
		Valid:       valid,
		Reason:      reason,
	}
}

// IBANComposed is emitted after an attempt to build an IBAN from a BBAN.
type IBANComposed struct {
	events.BaseEvent
	MaskedIBAN  string `json:"masked_iban,omitempty"`
	CountryCode string `json:"country_code"`
	Composed    bool   `json:"composed"`
	Reason      string `json:"reason,omitempty"`
}

// NewIBANComposed creates an IBANComposed domain event.
func NewIBANComposed(requestID, maskedIBAN, countryCode string, composed bool, reason string) IBANComposed {
	return IBANComposed{
		BaseEvent:   events.NewBaseEvent(TypeIBANComposed, requestID, AggregateTypeIBAN),
		MaskedIBAN:  maskedIBAN,
		CountryCode: countryCode,
		Composed:    composed,
		Reason:      reason,
	}
}
