package binance

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fapimcp/pkg/core"
)

func TestTools_Valid(t *testing.T) {
	validate := validator.New()
	seen := make(map[string]bool)

	for _, tool := range Tools() {
		t.Run(tool.Name, func(t *testing.T) {
			require.NoError(t, validate.Struct(tool))
			assert.False(t, seen[tool.Name], "duplicate tool")
			seen[tool.Name] = true

			params := make(map[string]bool)
			for _, p := range tool.Params {
				assert.False(t, params[p.Name], "duplicate param %s", p.Name)
				params[p.Name] = true
				assert.NotEqual(t, "timestamp", p.Name)
				assert.NotEqual(t, "signature", p.Name)
			}
			for _, group := range tool.OneOf {
				for _, name := range group {
					assert.True(t, params[name], "one-of member %s must be declared", name)
				}
			}
		})
	}

	assert.Len(t, seen, 18)
}

func TestTools_Table(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		encoding core.EncodingMode
		required []string
	}{
		{ToolGetAccountInfo, "GET", "/fapi/v2/account", core.EncodingStrict, nil},
		{ToolGetBalance, "GET", "/fapi/v2/balance", core.EncodingStrict, nil},
		{ToolGetPositionRisk, "GET", "/fapi/v2/positionRisk", core.EncodingStrict, nil},
		{ToolGetCommissionRate, "GET", "/fapi/v1/commissionRate", core.EncodingStrict, []string{"symbol"}},
		{ToolGetIncomeHistory, "GET", "/fapi/v1/income", core.EncodingStrict, nil},
		{ToolPlaceOrder, "POST", "/fapi/v1/order", core.EncodingStrict, []string{"symbol", "side", "type"}},
		{ToolModifyOrder, "PUT", "/fapi/v1/order", core.EncodingStrict, []string{"symbol", "side", "quantity", "price"}},
		{ToolCancelOrder, "DELETE", "/fapi/v1/order", core.EncodingStrict, []string{"symbol"}},
		{ToolCancelAllOrders, "DELETE", "/fapi/v1/allOpenOrders", core.EncodingLenient, []string{"symbol"}},
		{ToolGetOrder, "GET", "/fapi/v1/order", core.EncodingStrict, []string{"symbol"}},
		{ToolGetOpenOrders, "GET", "/fapi/v1/openOrders", core.EncodingStrict, nil},
		{ToolGetAllOrders, "GET", "/fapi/v1/allOrders", core.EncodingStrict, []string{"symbol"}},
		{ToolGetUserTrades, "GET", "/fapi/v1/userTrades", core.EncodingStrict, []string{"symbol"}},
		{ToolSetLeverage, "POST", "/fapi/v1/leverage", core.EncodingLenient, []string{"symbol", "leverage"}},
		{ToolSetMarginType, "POST", "/fapi/v1/marginType", core.EncodingLenient, []string{"symbol", "marginType"}},
		{ToolModifyPositionMargin, "POST", "/fapi/v1/positionMargin", core.EncodingLenient, []string{"symbol", "amount", "type"}},
		{ToolGetPositionMode, "GET", "/fapi/v1/positionSide/dual", core.EncodingStrict, nil},
		{ToolSetPositionMode, "POST", "/fapi/v1/positionSide/dual", core.EncodingLenient, []string{"dualSidePosition"}},
	}

	tools := make(map[string]core.ToolSpec)
	for _, tool := range Tools() {
		tools[tool.Name] = tool
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, ok := tools[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.method, tool.Method)
			assert.Equal(t, tt.path, tool.Path)
			assert.Equal(t, tt.encoding, tool.Encoding)
			assert.Equal(t, tt.required, tool.RequiredParams())
			assert.NotEmpty(t, strings.TrimSpace(tool.Description))
		})
	}
}

func TestTools_OrderIdentifiers(t *testing.T) {
	for _, tool := range Tools() {
		switch tool.Name {
		case ToolModifyOrder, ToolCancelOrder, ToolGetOrder:
			assert.Equal(t, [][]string{{"orderId", "origClientOrderId"}}, tool.OneOf, tool.Name)
		default:
			assert.Empty(t, tool.OneOf, tool.Name)
		}
	}
}

func TestTools_IncomeLimitDefault(t *testing.T) {
	for _, tool := range Tools() {
		if tool.Name != ToolGetIncomeHistory {
			continue
		}
		p, ok := tool.Param("limit")
		require.True(t, ok)
		assert.Equal(t, DefaultIncomeLimit, p.Default)
	}
}

func TestTools_FreshSlice(t *testing.T) {
	first := Tools()
	first[0].Name = "mutated"

	assert.Equal(t, ToolGetAccountInfo, Tools()[0].Name)
}
