package jstext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			"bare keys quoted",
			`{place: 1, amountAway: 2}`,
			`{"place": 1, "amountAway": 2}`,
		},
		{
			"ordinal value quoted",
			`{place: 19th}`,
			`{"place": "19th"}`,
		},
		{
			"bare word value quoted",
			`{status: pending}`,
			`{"status": "pending"}`,
		},
		{
			"json literals survive",
			`{a: null, b: true, c: false}`,
			`{"a": null, "b": true, "c": false}`,
		},
		{
			"naked currency symbol quoted",
			`{symbol: $, amount: 5}`,
			`{"symbol": "$", "amount": 5}`,
		},
		{
			"already strict json unchanged",
			`{"place": 3}`,
			`{"place": 3}`,
		},
		{
			"surrounding whitespace trimmed",
			"  {place: 2nd}\n",
			`{"place": "2nd"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.raw))
		})
	}
}

func TestDecode(t *testing.T) {
	var out struct {
		Place      string  `json:"place"`
		AmountAway float64 `json:"amountAway"`
	}
	require.NoError(t, Decode(`{place: 19th, amountAway: 12.5}`, &out))
	assert.Equal(t, "19th", out.Place)
	assert.Equal(t, 12.5, out.AmountAway)
}

func TestDecode_GarbageFails(t *testing.T) {
	var out map[string]interface{}
	assert.Error(t, Decode(`not an object at all {{{`, &out))
}
