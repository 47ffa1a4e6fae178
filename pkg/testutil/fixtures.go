package testutil

// Identifiers that pass every check, for tests outside pkg/iban.
const (
	ValidIBAN         = "NL04ABNA0417164314"
	ValidIBANFriendly = "NL04 ABNA 0417 1643 14"
	ValidBIC          = "ABNANL2A"
	ValidBIC11        = "NEDSZAJJXXX"

	// InvalidChecksumIBAN has a well-formed Dutch shape but wrong check digits.
	InvalidChecksumIBAN = "NL05ABNA0417164314"
)
