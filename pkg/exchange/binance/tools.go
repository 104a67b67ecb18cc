package binance

import (
	"net/http"

	"fapimcp/pkg/core"
)

// Tool names exposed by the server.
const (
	ToolGetAccountInfo       = "get_account_info"
	ToolGetBalance           = "get_balance"
	ToolGetPositionRisk      = "get_position_risk"
	ToolGetCommissionRate    = "get_commission_rate"
	ToolGetIncomeHistory     = "get_income_history"
	ToolPlaceOrder           = "place_order"
	ToolModifyOrder          = "modify_order"
	ToolCancelOrder          = "cancel_order"
	ToolCancelAllOrders      = "cancel_all_orders"
	ToolGetOrder             = "get_order"
	ToolGetOpenOrders        = "get_open_orders"
	ToolGetAllOrders         = "get_all_orders"
	ToolGetUserTrades        = "get_user_trades"
	ToolSetLeverage          = "set_leverage"
	ToolSetMarginType        = "set_margin_type"
	ToolModifyPositionMargin = "modify_position_margin"
	ToolGetPositionMode      = "get_position_mode"
	ToolSetPositionMode      = "set_position_mode"
)

// DefaultIncomeLimit is the page size applied when get_income_history omits limit.
const DefaultIncomeLimit = 100

// orderIdentifiers are the alternative ways of naming an existing order.
var orderIdentifiers = []string{"orderId", "origClientOrderId"}

func symbol(required bool) core.ParamSpec {
	return core.ParamSpec{
		Name:        "symbol",
		Type:        core.ParamString,
		Required:    required,
		Description: "Trading pair symbol, e.g. BTCUSDT",
	}
}

func decimal(name, description string, required bool) core.ParamSpec {
	return core.ParamSpec{Name: name, Type: core.ParamDecimal, Required: required, Description: description}
}

func integer(name, description string) core.ParamSpec {
	return core.ParamSpec{Name: name, Type: core.ParamInteger, Description: description}
}

func enum(name, description string, required bool, values []string) core.ParamSpec {
	return core.ParamSpec{Name: name, Type: core.ParamString, Required: required, Enum: values, Description: description}
}

func identifierParams() []core.ParamSpec {
	return []core.ParamSpec{
		integer("orderId", "Exchange-assigned order ID"),
		{Name: "origClientOrderId", Type: core.ParamString, Description: "Client-assigned order ID"},
	}
}

func timeRange() []core.ParamSpec {
	return []core.ParamSpec{
		integer("startTime", "Start of the window, milliseconds since epoch"),
		integer("endTime", "End of the window, milliseconds since epoch"),
	}
}

// Tools returns the futures tool table. Each call returns a fresh slice.
func Tools() []core.ToolSpec {
	return []core.ToolSpec{
		{
			Name:        ToolGetAccountInfo,
			Description: "Get current futures account information including assets and positions",
			Method:      http.MethodGet,
			Path:        "/fapi/v2/account",
			Encoding:    core.EncodingStrict,
		},
		{
			Name:        ToolGetBalance,
			Description: "Get futures account balance per asset",
			Method:      http.MethodGet,
			Path:        "/fapi/v2/balance",
			Encoding:    core.EncodingStrict,
		},
		{
			Name:        ToolGetPositionRisk,
			Description: "Get position information, optionally for one symbol",
			Method:      http.MethodGet,
			Path:        "/fapi/v2/positionRisk",
			Encoding:    core.EncodingStrict,
			Params:      []core.ParamSpec{symbol(false)},
		},
		{
			Name:        ToolGetCommissionRate,
			Description: "Get the maker and taker commission rate for a symbol",
			Method:      http.MethodGet,
			Path:        "/fapi/v1/commissionRate",
			Encoding:    core.EncodingStrict,
			Params:      []core.ParamSpec{symbol(true)},
		},
		{
			Name:        ToolGetIncomeHistory,
			Description: "Get income history such as realized PnL, funding fees and commissions",
			Method:      http.MethodGet,
			Path:        "/fapi/v1/income",
			Encoding:    core.EncodingStrict,
			Params: append([]core.ParamSpec{
				symbol(false),
				enum("incomeType", "Income type filter", false, core.EnumValues(core.IncomeTypes())),
			}, append(timeRange(), core.ParamSpec{
				Name:        "limit",
				Type:        core.ParamInteger,
				Default:     DefaultIncomeLimit,
				Description: "Maximum number of records, up to 1000",
			})...),
		},
		{
			Name:        ToolPlaceOrder,
			Description: "Place a new futures order",
			Method:      http.MethodPost,
			Path:        "/fapi/v1/order",
			Encoding:    core.EncodingStrict,
			Params: []core.ParamSpec{
				symbol(true),
				enum("side", "Order side", true, core.EnumValues(core.OrderSides())),
				enum("type", "Order type", true, core.EnumValues(core.OrderTypes())),
				enum("positionSide", "Position side, required in hedge mode", false, core.EnumValues(core.PositionSides())),
				enum("timeInForce", "Time in force; GTC is applied to LIMIT, STOP and TAKE_PROFIT orders when omitted", false, core.EnumValues(core.TimeInForces())),
				decimal("quantity", "Order quantity", false),
				{Name: "reduceOnly", Type: core.ParamBoolean, Description: "Only reduce an existing position"},
				decimal("price", "Limit price", false),
				{Name: "newClientOrderId", Type: core.ParamString, Description: "Client-assigned order ID"},
				decimal("stopPrice", "Trigger price for STOP, STOP_MARKET, TAKE_PROFIT and TAKE_PROFIT_MARKET orders", false),
				{Name: "closePosition", Type: core.ParamBoolean, Description: "Close the whole position when triggered"},
				decimal("activationPrice", "Activation price for TRAILING_STOP_MARKET orders", false),
				decimal("callbackRate", "Callback rate in percent for TRAILING_STOP_MARKET orders", false),
				enum("workingType", "Price that triggers stop orders", false, core.EnumValues(core.WorkingTypes())),
				{Name: "priceProtect", Type: core.ParamBoolean, Description: "Enable trigger price protection"},
				enum("newOrderRespType", "Acknowledgement detail", false, core.EnumValues(core.NewOrderRespTypes())),
			},
			Normalize: normalizePlaceOrder,
		},
		{
			Name:        ToolModifyOrder,
			Description: "Modify the price or quantity of an open LIMIT order",
			Method:      http.MethodPut,
			Path:        "/fapi/v1/order",
			Encoding:    core.EncodingStrict,
			Params: append(append([]core.ParamSpec{
				symbol(true),
				enum("side", "Order side", true, core.EnumValues(core.OrderSides())),
				decimal("quantity", "New order quantity", true),
				decimal("price", "New limit price", true),
			}, identifierParams()...),
				enum("priceMatch", "Let the engine choose the price", false, core.EnumValues(core.PriceMatches())),
			),
			OneOf: [][]string{orderIdentifiers},
		},
		{
			Name:        ToolCancelOrder,
			Description: "Cancel an open order by orderId or origClientOrderId",
			Method:      http.MethodDelete,
			Path:        "/fapi/v1/order",
			Encoding:    core.EncodingStrict,
			Params:      append([]core.ParamSpec{symbol(true)}, identifierParams()...),
			OneOf:       [][]string{orderIdentifiers},
		},
		{
			Name:        ToolCancelAllOrders,
			Description: "Cancel all open orders on a symbol",
			Method:      http.MethodDelete,
			Path:        "/fapi/v1/allOpenOrders",
			Encoding:    core.EncodingLenient,
			Params:      []core.ParamSpec{symbol(true)},
		},
		{
			Name:        ToolGetOrder,
			Description: "Query an order by orderId or origClientOrderId",
			Method:      http.MethodGet,
			Path:        "/fapi/v1/order",
			Encoding:    core.EncodingStrict,
			Params:      append([]core.ParamSpec{symbol(true)}, identifierParams()...),
			OneOf:       [][]string{orderIdentifiers},
		},
		{
			Name:        ToolGetOpenOrders,
			Description: "List open orders, optionally for one symbol",
			Method:      http.MethodGet,
			Path:        "/fapi/v1/openOrders",
			Encoding:    core.EncodingStrict,
			Params:      []core.ParamSpec{symbol(false)},
		},
		{
			Name:        ToolGetAllOrders,
			Description: "List all orders on a symbol, including filled and canceled ones",
			Method:      http.MethodGet,
			Path:        "/fapi/v1/allOrders",
			Encoding:    core.EncodingStrict,
			Params: append(append([]core.ParamSpec{
				symbol(true),
				integer("orderId", "Return orders with an ID greater than or equal to this one"),
			}, timeRange()...),
				integer("limit", "Maximum number of orders, up to 1000"),
			),
		},
		{
			Name:        ToolGetUserTrades,
			Description: "List account trades on a symbol",
			Method:      http.MethodGet,
			Path:        "/fapi/v1/userTrades",
			Encoding:    core.EncodingStrict,
			Params: append(append([]core.ParamSpec{
				symbol(true),
				integer("orderId", "Only trades of this order"),
			}, timeRange()...),
				integer("fromId", "Trade ID to fetch from"),
				integer("limit", "Maximum number of trades, up to 1000"),
			),
		},
		{
			Name:        ToolSetLeverage,
			Description: "Change the initial leverage of a symbol",
			Method:      http.MethodPost,
			Path:        "/fapi/v1/leverage",
			Encoding:    core.EncodingLenient,
			Params: []core.ParamSpec{
				symbol(true),
				{Name: "leverage", Type: core.ParamInteger, Required: true, Description: "Target leverage, 1 to 125"},
			},
		},
		{
			Name:        ToolSetMarginType,
			Description: "Switch a symbol between isolated and cross margin",
			Method:      http.MethodPost,
			Path:        "/fapi/v1/marginType",
			Encoding:    core.EncodingLenient,
			Params: []core.ParamSpec{
				symbol(true),
				enum("marginType", "Margin mode", true, core.EnumValues(core.MarginTypes())),
			},
		},
		{
			Name:        ToolModifyPositionMargin,
			Description: "Add or reduce isolated position margin",
			Method:      http.MethodPost,
			Path:        "/fapi/v1/positionMargin",
			Encoding:    core.EncodingLenient,
			Params: []core.ParamSpec{
				symbol(true),
				decimal("amount", "Margin amount", true),
				{
					Name:        "type",
					Type:        core.ParamInteger,
					Required:    true,
					Enum:        core.EnumValues(core.MarginActions()),
					Description: "1 adds margin, 2 reduces margin",
				},
				enum("positionSide", "Position side, required in hedge mode", false, core.EnumValues(core.PositionSides())),
			},
		},
		{
			Name:        ToolGetPositionMode,
			Description: "Get the position mode (hedge or one-way)",
			Method:      http.MethodGet,
			Path:        "/fapi/v1/positionSide/dual",
			Encoding:    core.EncodingStrict,
		},
		{
			Name:        ToolSetPositionMode,
			Description: "Switch between hedge mode and one-way mode on every symbol",
			Method:      http.MethodPost,
			Path:        "/fapi/v1/positionSide/dual",
			Encoding:    core.EncodingLenient,
			Params: []core.ParamSpec{
				{Name: "dualSidePosition", Type: core.ParamBoolean, Required: true, Description: "true for hedge mode, false for one-way mode"},
			},
		},
	}
}
