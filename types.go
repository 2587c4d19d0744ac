package changelly

import (
	"encoding/json"
	"github.com/shopspring/decimal"
)

// rpcRequest is the JSON-RPC 2.0 envelope. The id is always 1: calls run
// one at a time over plain HTTP and responses are never correlated.
type rpcRequest struct {
	Jsonrpc string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type pairParams struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type quoteParams struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type statusParams struct {
	ID string `json:"id"`
}

// TransactionRequest describes the exchange transaction to create.
// From, to and address are required. An empty ExtraID is sent as the
// literal string "null"; the refund fields are left out when empty.
type TransactionRequest struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Address       string  `json:"address"`
	ExtraID       string  `json:"extraId"`
	Amount        float64 `json:"amount"`
	RefundAddress string  `json:"refundAddress,omitempty"`
	RefundExtraID string  `json:"refundExtraId,omitempty"`
}

// Currency is one record from getCurrenciesFull.
type Currency struct {
	Name               string `json:"name"`
	FullName           string `json:"fullName"`
	Enabled            bool   `json:"enabled"`
	FixRateEnabled     bool   `json:"fixRateEnabled"`
	PayinConfirmations int    `json:"payinConfirmations"`
	ExtraIDName        string `json:"extraIdName"`
	AddressURL         string `json:"addressUrl"`
	TransactionURL     string `json:"transactionUrl"`
	Image              string `json:"image"`
}

// ExchangeQuote is one record from a batch getExchangeAmount response.
type ExchangeQuote struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// ExchangeResult holds a getExchangeAmount response. The server answers a
// scalar amount or a list of records at its own discretion, so callers
// must check Batch: Amount is set when it is false, Quotes when true.
type ExchangeResult struct {
	Batch  bool
	Amount decimal.Decimal
	Quotes []ExchangeQuote
}

// Status of an exchange transaction as reported by getStatus.
//
//	confirming  payin received, waiting for the required confirmations
//	exchanging  payment is confirmed and being exchanged
//	sending     coins are being sent to the recipient address
//	finished    coins were successfully sent to the recipient address
//	failed      transaction failed, in most cases the amount was less
//	            than the minimum
//	refunded    exchange failed and coins were refunded to the payer
type Status string

const (
	StatusConfirming Status = "confirming"
	StatusExchanging Status = "exchanging"
	StatusSending    Status = "sending"
	StatusFinished   Status = "finished"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	switch s {
	case StatusFinished, StatusFailed, StatusRefunded:
		return true
	}
	return false
}
