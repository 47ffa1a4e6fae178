package iban_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktp-forked-repos/ibantools/pkg/iban"
)

// TestRegistry_ConcurrentUse runs validation, composition and BIC extraction
// from many goroutines while each one mutates its own copy of the registry
// map. The shared registry must come out unchanged.
func TestRegistry_ConcurrentUse(t *testing.T) {
	reg := iban.Countries()
	wantLen := reg.Len()
	wantNL, ok := reg.Lookup("NL")
	require.True(t, ok)

	const (
		goroutines = 32
		iterations = 200
	)

	type result struct {
		validIBAN   bool
		invalidIBAN bool
		composed    string
		composeErr  error
		composedOK  bool
		bicBranch   string
		bicValid    bool
		mapLen      int
	}

	results := make([]result, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(idx int) {
			defer wg.Done()
			var r result
			for i := 0; i < iterations; i++ {
				r.validIBAN = iban.IsValidIBAN("NL04ABNA0417164314")
				r.invalidIBAN = iban.IsValidIBAN("NL05ABNA0417164314")
				r.composed, r.composeErr = iban.Compose("NL", "ABNA0417164314")
				_, r.composedOK = iban.ComposeIBAN("GB", "NWBK60161331926819")

				d, ok := iban.ExtractBIC("ABNANL2A").Details()
				r.bicValid, r.bicBranch = ok, d.BranchCode

				m := iban.Countries().Map()
				r.mapLen = len(m)
				delete(m, "NL")
				m["ZZ"] = iban.CountrySpec{}

				all := iban.Countries().All()
				all[0] = iban.CountrySpec{}
			}
			results[idx] = r
		}(g)
	}
	wg.Wait()

	for i, r := range results {
		assert.True(t, r.validIBAN, "goroutine %d", i)
		assert.False(t, r.invalidIBAN, "goroutine %d", i)
		require.NoError(t, r.composeErr, "goroutine %d", i)
		assert.Equal(t, "NL04ABNA0417164314", r.composed, "goroutine %d", i)
		assert.True(t, r.composedOK, "goroutine %d", i)
		assert.True(t, r.bicValid, "goroutine %d", i)
		assert.Equal(t, iban.PrimaryOfficeBranch, r.bicBranch, "goroutine %d", i)
		assert.Equal(t, wantLen, r.mapLen, "goroutine %d", i)
	}

	assert.Equal(t, wantLen, reg.Len())
	nl, ok := reg.Lookup("NL")
	require.True(t, ok, "NL must survive deletes on map copies")
	assert.Equal(t, wantNL, nl)
	_, ok = reg.Lookup("ZZ")
	assert.False(t, ok, "inserts on map copies must not reach the registry")
	assert.NotEqual(t, iban.CountrySpec{}, reg.All()[0])
	assert.True(t, iban.IsValidIBAN("NL04ABNA0417164314"))
}
