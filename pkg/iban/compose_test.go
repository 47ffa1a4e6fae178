package iban_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktp-forked-repos/ibantools/pkg/iban"
)

func TestComposeIBAN(t *testing.T) {
	t.Run("valid country and BBAN", func(t *testing.T) {
		got, ok := iban.ComposeIBAN("NL", "ABNA0417164300")
		require.True(t, ok)
		assert.Equal(t, "NL91ABNA0417164300", got)
	})

	tests := []struct {
		name    string
		country string
		bban    string
	}{
		{name: "unknown country", country: "ZZ", bban: "ABNA0417164300"},
		{name: "non-alpha character", country: "NL", bban: "A7NA0417164300"},
		{name: "non-numeric character", country: "NL", bban: "ABNA04171Z4300"},
		{name: "wrong character count", country: "NL", bban: "ABNA04171643000"},
		{name: "no BBAN", country: "NL", bban: ""},
		{name: "country without IBAN", country: "ZA", bban: "ABNA0417164300"},
		{name: "formatted BBAN", country: "NL", bban: "ABNA 0417 1643 00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := iban.ComposeIBAN(tt.country, tt.bban)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}

	t.Run("reason is wrapped", func(t *testing.T) {
		_, err := iban.Compose("ZZ", "ABNA0417164300")
		assert.ErrorIs(t, err, iban.ErrUnknownCountry)
	})
}

// sampleBBAN builds a BBAN that matches p, cycling through characters so
// the result is not trivially uniform.
func sampleBBAN(p iban.Pattern) string {
	const digits = "0123456789"
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	var b strings.Builder
	i := 0
	for _, seg := range p.Segments() {
		for n := 0; n < seg.Count; n++ {
			switch seg.Class {
			case iban.Digits:
				b.WriteByte(digits[(i*7+3)%len(digits)])
			case iban.Letters:
				b.WriteByte(letters[(i*5+1)%len(letters)])
			default:
				if i%2 == 0 {
					b.WriteByte(letters[(i*3)%len(letters)])
				} else {
					b.WriteByte(digits[(i*3)%len(digits)])
				}
			}
			i++
		}
	}
	return b.String()
}

func TestComposeIBAN_RoundTripsForEveryCountry(t *testing.T) {
	for _, spec := range iban.Countries().All() {
		if !spec.IsIBANCountry() {
			continue
		}
		t.Run(spec.Code(), func(t *testing.T) {
			bban := sampleBBAN(spec.BBAN())
			require.True(t, iban.IsValidBBAN(bban, spec.Code()), bban)

			composed, ok := iban.ComposeIBAN(spec.Code(), bban)
			require.True(t, ok)
			assert.True(t, iban.IsValidIBAN(composed))

			d, ok := iban.ExtractIBAN(composed).Details()
			require.True(t, ok)
			assert.Equal(t, bban, d.BBAN)
			assert.Equal(t, spec.Code(), d.CountryCode)
			assert.Equal(t, spec.Name(), d.CountryName)
		})
	}
}
