package iban_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktp-forked-repos/ibantools/pkg/iban"
)

// validIBANs are real-world examples in electronic form.
var validIBANs = []string{
	"NL91ABNA0417164300",
	"AT611904300234573201",
	"BY13NBRB3600900000002Z00AB00",
	"CR25010200009074883572",
	"DE89370400440532013000",
	"ES9121000418450200051332",
	"GT82TRAJ01020000001210029690",
	"HR1210010051863000160",
	"IQ98NBIQ850123456789012",
	"JO94CBJO0010000000000131000302",
	"PS92PALS000000000400123456702",
	"RS35260005601001611379",
	"SV62CENR00000000000000700025",
	"TL380080012345678910157",
	"GL8964710001000206",
	"UA213996220000026007233566001",
	"BR9700360305000010009795493P1",
	"GB29NWBK60161331926819",
	"FR1420041010050500013M02606",
	"MU17BOMM0101101030300200000MUR",
	"NL04ABNA0417164314",
}

func TestVerifyChecksum(t *testing.T) {
	for _, s := range validIBANs {
		assert.True(t, iban.VerifyChecksum(s), s)
	}

	tests := []struct {
		name  string
		input string
	}{
		{name: "flipped digit", input: "NL91ABNA0517164300"},
		{name: "empty", input: ""},
		{name: "too short", input: "NL9"},
		{name: "contains space", input: "NL91 ABNA 0417 1643 00"},
		{name: "lowercase", input: "nl91abna0417164300"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, iban.VerifyChecksum(tt.input))
		})
	}
}

func TestCheckDigits(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		tests := []struct {
			country, bban, want string
		}{
			{"NL", "ABNA0417164300", "91"},
			{"DE", "370400440532013000", "89"},
			{"GB", "NWBK60161331926819", "29"},
			{"NL", "ABNA0417164314", "04"},
		}
		for _, tt := range tests {
			got, err := iban.CheckDigits(tt.country, tt.bban)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "%s %s", tt.country, tt.bban)
		}
	})

	t.Run("consistent with VerifyChecksum", func(t *testing.T) {
		for _, s := range validIBANs {
			got, err := iban.CheckDigits(s[:2], s[4:])
			require.NoError(t, err)
			assert.Equal(t, s[2:4], got, s)
			assert.True(t, iban.VerifyChecksum(s[:2]+got+s[4:]))
		}
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		_, err := iban.CheckDigits("NL", "ABNA-0417164300")
		assert.ErrorIs(t, err, iban.ErrInvalidCharacter)
	})
}
