// Package changelly is a client for the Changelly exchange JSON-RPC API.
// Every request is a POST of a JSON-RPC 2.0 envelope to a single endpoint,
// signed with HMAC-SHA512 of the API secret over the request body.
package changelly

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xyths/hs/logger"
	"go.uber.org/zap"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client talks to the Changelly API. One Client may be shared between
// goroutines: the currency cache is filled on the first call that needs
// it and guarded by lock, the rest of the state is read-only.
type Client struct {
	host   string
	key    string
	secret []byte

	httpClient *http.Client
	Sugar      *zap.SugaredLogger

	lock        sync.RWMutex
	currencies  []string
	currencyMap map[string]bool
}

// New returns a Client for the given API key and secret. An empty host
// selects DefaultHost.
func New(key, secret, host string) (*Client, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		host:        host,
		key:         key,
		secret:      []byte(secret),
		httpClient:  &http.Client{},
		Sugar:       logger.Sugar,
		currencyMap: make(map[string]bool),
	}, nil
}

// SetHTTPClient replaces the underlying HTTP client, e.g. to set a
// timeout or a proxy. The default client has neither.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// GetCurrencies returns the currency codes enabled for exchange. The
// list is fetched once and cached for the lifetime of the Client.
func (c *Client) GetCurrencies(ctx context.Context) ([]string, error) {
	c.lock.RLock()
	cached := c.currencies
	c.lock.RUnlock()
	if len(cached) > 0 {
		return cached, nil
	}
	var currencies []string
	if err := c.request(ctx, methodGetCurrencies, nil, &currencies); err != nil {
		return nil, err
	}
	c.lock.Lock()
	if len(c.currencies) == 0 {
		c.currencies = currencies
		for _, code := range currencies {
			c.currencyMap[code] = true
		}
	}
	currencies = c.currencies
	c.lock.Unlock()
	return currencies, nil
}

// GetCurrenciesFull returns the full currency records, disabled ones
// included. Unlike GetCurrencies the result is not cached.
func (c *Client) GetCurrenciesFull(ctx context.Context) ([]Currency, error) {
	var currencies []Currency
	if err := c.request(ctx, methodGetCurrenciesFull, nil, &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// GetMinAmount returns the minimum amount of the from currency accepted
// for the pair, rounded to 8 decimal places. Codes are case-insensitive.
func (c *Client) GetMinAmount(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from = strings.ToLower(from)
	to = strings.ToLower(to)
	if err := c.checkCurrencies(ctx, from, to); err != nil {
		return decimal.Zero, err
	}
	var raw json.RawMessage
	if err := c.request(ctx, methodGetMinAmount, pairParams{From: from, To: to}, &raw); err != nil {
		return decimal.Zero, err
	}
	min, err := parseAmount(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return roundAmount(min), nil
}

// GetExchangeAmount quotes one pair: the amount of the to currency to
// receive for the given amount of the from currency.
func (c *Client) GetExchangeAmount(ctx context.Context, from, to string, amount float64) (decimal.Decimal, error) {
	result, err := c.GetExchangeAmounts(ctx, []string{from}, []string{to}, amount)
	if err != nil {
		return decimal.Zero, err
	}
	if !result.Batch {
		return result.Amount, nil
	}
	if len(result.Quotes) == 0 {
		return decimal.Zero, &RemoteError{Message: "empty result"}
	}
	return result.Quotes[0].Amount, nil
}

// GetExchangeAmounts quotes every from[i]/to[i] pair for the same amount.
// The lists must have the same size. Before anything is sent each pair is
// checked against the currency list and its minimum amount, so a single
// bad pair fails the whole call. One pair goes out as a single params
// object, several as a list; the result shape follows the response, not
// the request, see ExchangeResult.
func (c *Client) GetExchangeAmounts(ctx context.Context, from, to []string, amount float64) (*ExchangeResult, error) {
	if len(from) != len(to) {
		return nil, ErrSizeMismatch
	}
	from = lowerAll(from)
	to = lowerAll(to)
	amt := decimal.NewFromFloat(amount)
	for i := range from {
		min, err := c.GetMinAmount(ctx, from[i], to[i])
		if err != nil {
			return nil, err
		}
		if amt.LessThan(min) {
			return nil, &MinAmountError{Min: min, Currency: from[i]}
		}
	}
	var params interface{}
	if len(from) == 1 {
		params = quoteParams{From: from[0], To: to[0], Amount: amount}
	} else {
		list := make([]quoteParams, len(from))
		for i := range from {
			list[i] = quoteParams{From: from[i], To: to[i], Amount: amount}
		}
		params = list
	}
	var raw json.RawMessage
	if err := c.request(ctx, methodGetExchangeAmount, params, &raw); err != nil {
		return nil, err
	}
	return decodeExchangeResult(raw)
}

// CreateTransaction creates an exchange transaction and returns its id.
func (c *Client) CreateTransaction(ctx context.Context, tx TransactionRequest) (string, error) {
	if tx.ExtraID == "" {
		tx.ExtraID = "null"
	}
	var id string
	if err := c.request(ctx, methodCreateTransaction, tx, &id); err != nil {
		return "", err
	}
	return id, nil
}

// GetStatus returns the current status of a transaction. The value is
// passed through as reported, including states not listed here.
func (c *Client) GetStatus(ctx context.Context, id string) (Status, error) {
	var status string
	if err := c.request(ctx, methodGetStatus, statusParams{ID: id}, &status); err != nil {
		return "", err
	}
	return Status(status), nil
}

// WaitTerminal polls the status every interval until the transaction
// reaches an end state or ctx is cancelled. A non-positive interval
// selects DefaultPollInterval. The last status seen is returned together
// with the error, if any.
func (c *Client) WaitTerminal(ctx context.Context, id string, interval time.Duration) (Status, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	var last Status
	for {
		status, err := c.GetStatus(ctx, id)
		if err != nil {
			return last, err
		}
		last = status
		if status.Terminal() {
			return status, nil
		}
		c.Sugar.Infof("transaction %s is %s", id, status)
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// checkCurrencies resolves the currency list, fetching it if needed, and
// fails on the first code that is not in it.
func (c *Client) checkCurrencies(ctx context.Context, codes ...string) error {
	if _, err := c.GetCurrencies(ctx); err != nil {
		return err
	}
	c.lock.RLock()
	defer c.lock.RUnlock()
	for _, code := range codes {
		if !c.currencyMap[code] {
			return &InvalidCurrencyError{Currency: code}
		}
	}
	return nil
}

func decodeExchangeResult(raw json.RawMessage) (*ExchangeResult, error) {
	if len(raw) == 0 {
		return nil, &RemoteError{Message: "empty result"}
	}
	switch raw[0] {
	case '"':
		amount, err := parseAmount(raw)
		if err != nil {
			return nil, err
		}
		return &ExchangeResult{Amount: roundAmount(amount)}, nil
	case '[':
		var quotes []ExchangeQuote
		if err := json.Unmarshal(raw, &quotes); err != nil {
			return nil, &RemoteError{Message: fmt.Sprintf("bad quote list: %v", err), Body: raw}
		}
		for i := range quotes {
			quotes[i].Amount = roundAmount(quotes[i].Amount)
		}
		return &ExchangeResult{Batch: true, Quotes: quotes}, nil
	default:
		return nil, &RemoteError{Message: fmt.Sprintf("unexpected result shape: %s", raw), Body: raw}
	}
}

func (c *Client) getSign(data []byte) string {
	mac := hmac.New(sha512.New, c.secret)
	mac.Write(data)
	return fmt.Sprintf("%x", mac.Sum(nil))
}

// request sends one signed JSON-RPC call and decodes the result member
// into result. The signature is computed over the same bytes that go on
// the wire.
func (c *Client) request(ctx context.Context, method string, params, result interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	data, err := json.Marshal(rpcRequest{Jsonrpc: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return errors.Wrapf(err, "encode %s request", method)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host, bytes.NewReader(data))
	if err != nil {
		return errors.Wrapf(err, "new %s request", method)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.key)
	req.Header.Set("sign", c.getSign(data))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "call %s", method)
	}

	defer func() {
		if resp != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s response", method)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Status: resp.StatusCode, Body: body}
	}

	var res rpcResponse
	if err := json.Unmarshal(body, &res); err != nil {
		c.Sugar.Debugf("raw response: %s", body)
		return &RemoteError{Message: fmt.Sprintf("bad response: %v", err), Body: body}
	}
	if res.Error != nil {
		return &RemoteError{Code: res.Error.Code, Message: res.Error.Message}
	}
	if result == nil || len(res.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Result, result); err != nil {
		c.Sugar.Debugf("raw result: %s", res.Result)
		return &RemoteError{Message: fmt.Sprintf("bad result: %v", err), Body: res.Result}
	}
	return nil
}
