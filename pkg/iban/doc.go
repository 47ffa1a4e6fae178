// Package iban validates, parses, formats and composes International Bank
// Account Numbers and Bank Identifier Codes.
//
// Validation is structural only: a per-country registry fixes the IBAN length
// and the shape of the domestic BBAN, and ISO 7064 MOD 97-10 verifies the
// check digits. No bank directory is consulted.
//
//	iban.IsValidIBAN("NL91ABNA0417164300")        // true
//	iban.ComposeIBAN("NL", "ABNA0417164300")      // "NL91ABNA0417164300", true
//	iban.FriendlyFormat("NL91ABNA0417164300")     // "NL91 ABNA 0417 1643 00"
//	iban.ExtractBIC("ABNANL2A").Details()         // bank ABNA, country NL, ...
//
// All functions are pure and safe for concurrent use.
package iban
