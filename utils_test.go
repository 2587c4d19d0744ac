package changelly

import (
	"encoding/json"
	"errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"0.001"`, "0.001"},
		{`0.001`, "0.001"},
		{`"15.5"`, "15.5"},
		{`3`, "3"},
	}
	for _, tt := range tests {
		d, err := parseAmount(json.RawMessage(tt.raw))
		require.NoError(t, err, tt.raw)
		require.True(t, d.Equal(decimal.RequireFromString(tt.want)), tt.raw)
	}

	for _, raw := range []string{`""`, `"abc"`, `null`, `{}`, ``} {
		_, err := parseAmount(json.RawMessage(raw))
		var rErr *RemoteError
		require.True(t, errors.As(err, &rErr), raw)
	}
}

func TestRoundAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.123456785", "0.12345679"}, // half rounds away from zero
		{"-0.123456785", "-0.12345679"},
		{"0.123456784", "0.12345678"},
		{"15.4999999999", "15.5"},
		{"0.1", "0.1"},
		{"100", "100"},
	}
	for _, tt := range tests {
		got := roundAmount(decimal.RequireFromString(tt.in))
		require.Equal(t, tt.want, got.String(), tt.in)
	}
}

func TestLowerAll(t *testing.T) {
	require.Equal(t, []string{"btc", "eth", "usdt20"}, lowerAll([]string{"BTC", "Eth", "usdt20"}))
	require.Equal(t, []string{}, lowerAll(nil))
}
