package changelly

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"github.com/stretchr/testify/require"
	"testing"
)

func hmacSHA512(secret string, data []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSignMatchesBody(t *testing.T) {
	f := &fakeAPI{
		t:          t,
		currencies: []string{"btc", "eth"},
		minAmount:  map[string]string{"btc_eth": "0.001"},
	}
	c, closeFn := newTestClient(t, f)
	defer closeFn()

	_, err := c.GetCurrencies(context.Background())
	require.NoError(t, err)

	call := f.last(methodGetCurrencies)
	require.Equal(t, `{"jsonrpc":"2.0","id":1,"method":"getCurrencies","params":[]}`, string(call.body))
	require.Equal(t, hmacSHA512("secret", call.body), call.sign)
	require.Equal(t, "key", call.apiKey)
	require.Equal(t, "application/json", call.contentType)

	_, err = c.GetMinAmount(context.Background(), "btc", "eth")
	require.NoError(t, err)

	call = f.last(methodGetMinAmount)
	require.Equal(t, `{"jsonrpc":"2.0","id":1,"method":"getMinAmount","params":{"from":"btc","to":"eth"}}`, string(call.body))
	require.Equal(t, hmacSHA512("secret", call.body), call.sign)
}

func TestGetSign(t *testing.T) {
	c, err := New("key", "secret", "")
	require.NoError(t, err)

	sign := c.getSign([]byte("payload"))
	require.Equal(t, sign, c.getSign([]byte("payload")))
	require.NotEqual(t, sign, c.getSign([]byte("payload.")))

	// hex encoded sha512 digest
	digest, err := hex.DecodeString(sign)
	require.NoError(t, err)
	require.Len(t, digest, sha512.Size)

	other, err := New("key", "another secret", "")
	require.NoError(t, err)
	require.NotEqual(t, sign, other.getSign([]byte("payload")))
}
