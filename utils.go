package changelly

import (
	"encoding/json"
	"fmt"
	"github.com/shopspring/decimal"
	"strings"
)

// parseAmount decodes an amount the server may send either as a JSON
// string or as a bare number. A missing or null amount is an error.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	var d decimal.Decimal
	if len(raw) == 0 || string(raw) == "null" {
		return d, &RemoteError{Message: "empty amount", Body: raw}
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return d, &RemoteError{Message: fmt.Sprintf("bad amount %s: %v", raw, err), Body: raw}
	}
	return d, nil
}

// roundAmount keeps amountScale decimal places, rounding half away from
// zero.
func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(amountScale)
}

func lowerAll(codes []string) []string {
	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = strings.ToLower(code)
	}
	return out
}
