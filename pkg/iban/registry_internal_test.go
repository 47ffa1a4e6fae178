package iban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name    string
		entries []countryEntry
		wantErr string
	}{
		{
			name:    "lowercase code",
			entries: []countryEntry{{code: "nl", name: "Netherlands"}},
			wantErr: "two uppercase letters",
		},
		{
			name: "duplicate code",
			entries: []countryEntry{
				{code: "NL", name: "Netherlands"},
				{code: "NL", name: "Netherlands"},
			},
			wantErr: "duplicate",
		},
		{
			name:    "length without pattern",
			entries: []countryEntry{{code: "NL", name: "Netherlands", length: 18}},
			wantErr: "set together",
		},
		{
			name:    "pattern shorter than length",
			entries: []countryEntry{{code: "NL", name: "Netherlands", length: 18, bban: "^[A-Z]{4}[0-9]{9}$"}},
			wantErr: "does not match IBAN length",
		},
		{
			name:    "malformed pattern",
			entries: []countryEntry{{code: "NL", name: "Netherlands", length: 18, bban: "[A-Z]{4}"}},
			wantErr: "anchored",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newRegistry(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("accepts compiled-in table", func(t *testing.T) {
		r, err := newRegistry(countryTable)
		require.NoError(t, err)
		assert.Equal(t, len(countryTable), r.Len())
	})
}

func TestMod97(t *testing.T) {
	t.Run("rearranges before reducing", func(t *testing.T) {
		rem, ok := mod97("NL91ABNA0417164300")
		require.True(t, ok)
		assert.Equal(t, 1, rem)
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, ok := mod97("NL9")
		assert.False(t, ok)
	})

	t.Run("rejects lowercase", func(t *testing.T) {
		_, ok := mod97("nl91abna0417164300")
		assert.False(t, ok)
	})
}
