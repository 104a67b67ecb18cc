package signing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fapimcp/pkg/core"
)

var fixedClock = func() time.Time { return time.UnixMilli(1700000000000) }

func newTestBuilder(t *testing.T, opts ...BuilderOption) *Builder {
	t.Helper()
	b, err := NewBuilder(core.NewCredentials("test-api-key", "s3cr3t"), append([]BuilderOption{WithClock(fixedClock)}, opts...)...)
	require.NoError(t, err)
	return b
}

func tool(method string, mode core.EncodingMode) core.ToolSpec {
	return core.ToolSpec{Name: "test_tool", Method: method, Path: "/fapi/v1/order", Encoding: mode}
}

func TestNewBuilder_RequiresCredentials(t *testing.T) {
	for _, creds := range []*core.Credentials{nil, core.NewCredentials("key", ""), core.NewCredentials("", "secret")} {
		_, err := NewBuilder(creds)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrNoCredentials))
	}
}

func TestBuilder_RegressionDigest(t *testing.T) {
	b := newTestBuilder(t)
	params := core.Params{"symbol": "BTCUSDT", "side": "BUY", "type": "LIMIT"}

	req, err := b.Build(tool("GET", core.EncodingStrict), params)
	require.NoError(t, err)

	assert.Equal(t,
		"side=BUY&signature=74d85cb0e4c0d6d4748db146c98e01531e76118c6f6b447da28d0d67365a08ec&symbol=BTCUSDT&timestamp=1700000000000&type=LIMIT",
		req.Query)
	assert.Empty(t, req.Body)
	assert.Equal(t, "test-api-key", req.Headers[HeaderAPIKey])
	assert.NotContains(t, req.Query, "s3cr3t")
	assert.Len(t, params, 3, "caller params must not be modified")
}

func TestBuilder_Placement(t *testing.T) {
	tests := []struct {
		method    string
		wantQuery bool
	}{
		{"GET", true},
		{"DELETE", true},
		{"POST", false},
		{"PUT", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			req, err := newTestBuilder(t).Build(tool(tt.method, core.EncodingStrict), core.Params{"symbol": "BTCUSDT"})
			require.NoError(t, err)

			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, "/fapi/v1/order", req.Path)
			assert.Equal(t, "test_tool", req.Tool)
			if tt.wantQuery {
				assert.NotEmpty(t, req.Query)
				assert.Empty(t, req.Body)
				assert.NotContains(t, req.Headers, "Content-Type")
				return
			}
			assert.Empty(t, req.Query)
			assert.NotEmpty(t, req.Body)
			assert.Equal(t, ContentTypeForm, req.Headers["Content-Type"])
		})
	}
}

func TestBuilder_LenientKeepsNull(t *testing.T) {
	req, err := newTestBuilder(t).Build(tool("POST", core.EncodingLenient), core.Params{"symbol": "BTCUSDT", "price": nil})
	require.NoError(t, err)

	assert.Equal(t,
		"price=&signature=efe1796604c03b75b694eebcf0448c1e3cf300185cfed29d73896c2cab00a3da&symbol=BTCUSDT&timestamp=1700000000000",
		req.Body)
}

func TestBuilder_StrictDropsNull(t *testing.T) {
	req, err := newTestBuilder(t).Build(tool("GET", core.EncodingStrict), core.Params{"symbol": "BTCUSDT", "price": nil})
	require.NoError(t, err)

	assert.Equal(t,
		"signature=02cce7dc390a818a33ff2bd7c5d83be3754dbb4450a1270bee3effb6fb71ed4d&symbol=BTCUSDT&timestamp=1700000000000",
		req.Query)
}

func TestBuilder_EscapedValues(t *testing.T) {
	params := core.Params{"symbol": "BTCUSDT", "clientTag": "a b&c"}
	const sig = "9fd34dd681eb97e6f40d5dc5cdcd9ce92d76595fe6534780e66f29669bf8770f"

	strict, err := newTestBuilder(t).Build(tool("GET", core.EncodingStrict), params)
	require.NoError(t, err)
	assert.Equal(t, "clientTag=a%20b%26c&signature="+sig+"&symbol=BTCUSDT&timestamp=1700000000000", strict.Query)

	lenient, err := newTestBuilder(t).Build(tool("GET", core.EncodingLenient), params)
	require.NoError(t, err)
	assert.Equal(t, "clientTag=a+b%26c&signature="+sig+"&symbol=BTCUSDT&timestamp=1700000000000", lenient.Query)
}

func TestBuilder_RecvWindow(t *testing.T) {
	b := newTestBuilder(t, WithRecvWindow(5000))

	req, err := b.Build(tool("POST", core.EncodingStrict), core.Params{"symbol": "BTCUSDT", "quantity": 0.001})
	require.NoError(t, err)

	assert.Equal(t,
		"quantity=0.001&recvWindow=5000&signature=419e96ec51f3e4134de1645f3995d7decc911b939f8c0554c7b9361de772d79a&symbol=BTCUSDT&timestamp=1700000000000",
		req.Body)
}

func TestBuilder_ModeResolver(t *testing.T) {
	forceStrict := func(core.EncodingMode) core.EncodingMode { return core.EncodingStrict }
	b := newTestBuilder(t, WithModeResolver(forceStrict))

	req, err := b.Build(tool("POST", core.EncodingLenient), core.Params{"symbol": "BTCUSDT", "price": nil})
	require.NoError(t, err)

	assert.NotContains(t, req.Body, "price=")
}

func TestBuilder_ReservedParameters(t *testing.T) {
	for _, key := range []string{ParamTimestamp, ParamSignature} {
		t.Run(key, func(t *testing.T) {
			_, err := newTestBuilder(t).Build(tool("GET", core.EncodingStrict), core.Params{"symbol": "BTCUSDT", key: "1"})
			require.Error(t, err)
			assert.True(t, core.IsValidationError(err))
			assert.True(t, core.IsErrorCode(err, core.ErrCodeReservedParameter))
		})
	}
}

func TestBuilder_UnsupportedValue(t *testing.T) {
	_, err := newTestBuilder(t).Build(tool("GET", core.EncodingStrict), core.Params{"symbol": []int{1}})
	require.Error(t, err)
	assert.True(t, core.IsErrorCode(err, core.ErrCodeUnsupportedValue))
}

func TestBuilder_SignatureVerifies(t *testing.T) {
	for _, mode := range []core.EncodingMode{core.EncodingStrict, core.EncodingLenient} {
		req, err := newTestBuilder(t).Build(tool("PUT", mode), core.Params{
			"symbol":  "BTCUSDT",
			"side":    "SELL",
			"orderId": 123456789,
			"price":   "43000.10",
		})
		require.NoError(t, err)

		pairs, err := Decode(req.Body)
		require.NoError(t, err)

		var sig string
		var rest []Pair
		for _, p := range pairs {
			if p.Key == ParamSignature {
				sig = p.Value
				continue
			}
			rest = append(rest, p)
		}
		assert.True(t, Verify(Canonical(rest), "s3cr3t", sig), "mode %s", mode)
	}
}
