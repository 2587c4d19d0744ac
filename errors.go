package changelly

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"strings"
)

var (
	// ErrMissingKey is returned by New when the API key is empty.
	ErrMissingKey = errors.New("changelly: missing API key")
	// ErrMissingSecret is returned by New when the API secret is empty.
	ErrMissingSecret = errors.New("changelly: missing API secret")
	// ErrSizeMismatch is returned when the from and to lists passed to
	// GetExchangeAmounts do not have the same length.
	ErrSizeMismatch = errors.New("changelly: from and to lists must have the same size")
)

// InvalidCurrencyError reports a currency code that is not in the list
// returned by getCurrencies.
type InvalidCurrencyError struct {
	Currency string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("changelly: invalid currency %q", e.Currency)
}

// MinAmountError reports an exchange amount below the pair's minimum.
type MinAmountError struct {
	Min      decimal.Decimal
	Currency string
}

func (e *MinAmountError) Error() string {
	return fmt.Sprintf("changelly: min. amount is %s %s", e.Min.StringFixed(amountScale), strings.ToUpper(e.Currency))
}

// RemoteError reports a failed call: a non-2xx HTTP status, an error
// member in the JSON-RPC response, or a body that could not be decoded.
type RemoteError struct {
	Status  int    // HTTP status, 0 when the status was 2xx
	Code    int    // JSON-RPC error code, 0 when absent
	Message string
	Body    []byte // raw payload for debugging, may be nil
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("changelly: bad HTTP status %d: %s", e.Status, e.Body)
	}
	if e.Code != 0 {
		return fmt.Sprintf("changelly: API error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("changelly: %s", e.Message)
}
