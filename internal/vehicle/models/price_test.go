package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRoundTrip(t *testing.T) {
	// The wire format must be an exact decimal with two fractional digits,
	// not a binary float approximation.
	cases := []struct {
		in   string
		want string
	}{
		{`25000.00`, `25000.00`},
		{`25000`, `25000.00`},
		{`0.1`, `0.10`},
		{`19999.99`, `19999.99`},
		{`"1234.50"`, `1234.50`},
	}
	for _, tc := range cases {
		var p Price
		require.NoError(t, json.Unmarshal([]byte(tc.in), &p), "input %s", tc.in)

		out, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(out), "input %s", tc.in)
	}
}

func TestPriceRejectsGarbage(t *testing.T) {
	var p Price
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &p))
}

func TestPricePositivity(t *testing.T) {
	assert.True(t, MustPrice("0.01").IsPositive())
	assert.False(t, MustPrice("0").IsPositive())
	assert.False(t, MustPrice("-10.00").IsPositive())

	var zero Price
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
}

func TestPriceEqualIgnoresScale(t *testing.T) {
	assert.True(t, MustPrice("25000.0").Equal(MustPrice("25000.00")))
	assert.False(t, MustPrice("25000.00").Equal(MustPrice("25000.01")))
}
