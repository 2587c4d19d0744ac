package changelly

import "time"

// DefaultHost is used when New is given an empty host.
const DefaultHost = "https://api.changelly.com"

// DefaultPollInterval is how often WaitTerminal asks for the status when
// no interval is given.
const DefaultPollInterval = 30 * time.Second

// Changelly exposes a single endpoint; the operation travels as the
// method name inside the JSON-RPC envelope.
const (
	methodGetCurrencies     = "getCurrencies"
	methodGetCurrenciesFull = "getCurrenciesFull"
	methodGetMinAmount      = "getMinAmount"
	methodGetExchangeAmount = "getExchangeAmount"
	methodCreateTransaction = "createTransaction"
	methodGetStatus         = "getStatus"
)

// amountScale is the number of decimal places kept on every amount
// returned by the API.
const amountScale = 8
