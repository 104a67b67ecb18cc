package binance

import (
	"fapimcp/pkg/core"
)

// normalizePlaceOrder fills in timeInForce for order types that rest on the book.
func normalizePlaceOrder(params core.Params) {
	if params.Has("timeInForce") {
		return
	}
	orderType, _ := params["type"].(string)
	if core.OrderType(orderType).RequiresTimeInForce() {
		params["timeInForce"] = string(core.DefaultTimeInForce)
	}
}
