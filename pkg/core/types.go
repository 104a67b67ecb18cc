package core

// OrderSide represents the direction of an order.
type OrderSide string

// Order side constants define the direction of a trade.
const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// OrderSides returns every accepted side.
func OrderSides() []OrderSide {
	return []OrderSide{SideBuy, SideSell}
}

// OrderType represents the futures order types accepted by place_order.
type OrderType string

// Order type constants define how an order is executed.
const (
	// TypeLimit rests at a specified price or better.
	TypeLimit OrderType = "LIMIT"
	// TypeMarket executes immediately at the best available price.
	TypeMarket OrderType = "MARKET"
	// TypeStop places a limit order once stopPrice is reached.
	TypeStop OrderType = "STOP"
	// TypeStopMarket places a market order once stopPrice is reached.
	TypeStopMarket OrderType = "STOP_MARKET"
	// TypeTakeProfit places a limit order once the profit target is reached.
	TypeTakeProfit OrderType = "TAKE_PROFIT"
	// TypeTakeProfitMarket places a market order once the profit target is reached.
	TypeTakeProfitMarket OrderType = "TAKE_PROFIT_MARKET"
	// TypeTrailingStopMarket follows the price by callbackRate.
	TypeTrailingStopMarket OrderType = "TRAILING_STOP_MARKET"
)

// OrderTypes returns every accepted order type.
func OrderTypes() []OrderType {
	return []OrderType{
		TypeLimit,
		TypeMarket,
		TypeStop,
		TypeStopMarket,
		TypeTakeProfit,
		TypeTakeProfitMarket,
		TypeTrailingStopMarket,
	}
}

// RequiresTimeInForce reports whether orders of this type rest on the book
// and therefore need a timeInForce.
func (t OrderType) RequiresTimeInForce() bool {
	switch t {
	case TypeLimit, TypeStop, TypeTakeProfit:
		return true
	default:
		return false
	}
}

// TimeInForce defines how long an order remains active.
type TimeInForce string

// Time in force constants define order lifetime behavior.
const (
	// GTC (Good Till Canceled) keeps the order active until filled or canceled.
	GTC TimeInForce = "GTC"
	// IOC (Immediate Or Cancel) cancels any unfilled portion immediately.
	IOC TimeInForce = "IOC"
	// FOK (Fill Or Kill) requires complete immediate execution or cancellation.
	FOK TimeInForce = "FOK"
	// GTX (Good Till Crossing) is post-only.
	GTX TimeInForce = "GTX"
	// GTD (Good Till Date) expires at goodTillDate.
	GTD TimeInForce = "GTD"
)

// DefaultTimeInForce is applied to resting orders that omit timeInForce.
const DefaultTimeInForce = GTC

// TimeInForces returns every accepted time in force.
func TimeInForces() []TimeInForce {
	return []TimeInForce{GTC, IOC, FOK, GTX, GTD}
}

// PositionSide selects the position leg in hedge mode.
type PositionSide string

const (
	PositionBoth  PositionSide = "BOTH"
	PositionLong  PositionSide = "LONG"
	PositionShort PositionSide = "SHORT"
)

// PositionSides returns every accepted position side.
func PositionSides() []PositionSide {
	return []PositionSide{PositionBoth, PositionLong, PositionShort}
}

// MarginType is the margin mode of a symbol.
type MarginType string

const (
	MarginIsolated MarginType = "ISOLATED"
	MarginCrossed  MarginType = "CROSSED"
)

// MarginTypes returns every accepted margin type.
func MarginTypes() []MarginType {
	return []MarginType{MarginIsolated, MarginCrossed}
}

// WorkingType is the price stop orders are triggered by.
type WorkingType string

const (
	WorkingMarkPrice     WorkingType = "MARK_PRICE"
	WorkingContractPrice WorkingType = "CONTRACT_PRICE"
)

// WorkingTypes returns every accepted working type.
func WorkingTypes() []WorkingType {
	return []WorkingType{WorkingMarkPrice, WorkingContractPrice}
}

// NewOrderRespType selects the detail level of an order acknowledgement.
type NewOrderRespType string

const (
	RespACK    NewOrderRespType = "ACK"
	RespResult NewOrderRespType = "RESULT"
)

// NewOrderRespTypes returns every accepted response type.
func NewOrderRespTypes() []NewOrderRespType {
	return []NewOrderRespType{RespACK, RespResult}
}

// PriceMatch lets the matching engine pick the price from the book.
type PriceMatch string

const (
	PriceMatchNone       PriceMatch = "NONE"
	PriceMatchOpponent   PriceMatch = "OPPONENT"
	PriceMatchOpponent5  PriceMatch = "OPPONENT_5"
	PriceMatchOpponent10 PriceMatch = "OPPONENT_10"
	PriceMatchOpponent20 PriceMatch = "OPPONENT_20"
	PriceMatchQueue      PriceMatch = "QUEUE"
	PriceMatchQueue5     PriceMatch = "QUEUE_5"
	PriceMatchQueue10    PriceMatch = "QUEUE_10"
	PriceMatchQueue20    PriceMatch = "QUEUE_20"
)

// PriceMatches returns every accepted price match mode.
func PriceMatches() []PriceMatch {
	return []PriceMatch{
		PriceMatchNone,
		PriceMatchOpponent,
		PriceMatchOpponent5,
		PriceMatchOpponent10,
		PriceMatchOpponent20,
		PriceMatchQueue,
		PriceMatchQueue5,
		PriceMatchQueue10,
		PriceMatchQueue20,
	}
}

// IncomeType filters the income history.
type IncomeType string

const (
	IncomeTransfer          IncomeType = "TRANSFER"
	IncomeWelcomeBonus      IncomeType = "WELCOME_BONUS"
	IncomeRealizedPnL       IncomeType = "REALIZED_PNL"
	IncomeFundingFee        IncomeType = "FUNDING_FEE"
	IncomeCommission        IncomeType = "COMMISSION"
	IncomeInsuranceClear    IncomeType = "INSURANCE_CLEAR"
	IncomeReferralKickback  IncomeType = "REFERRAL_KICKBACK"
	IncomeCommissionRebate  IncomeType = "COMMISSION_REBATE"
	IncomeAPIRebate         IncomeType = "API_REBATE"
	IncomeContestReward     IncomeType = "CONTEST_REWARD"
	IncomeInternalTransfer  IncomeType = "INTERNAL_TRANSFER"
	IncomeAutoExchange      IncomeType = "AUTO_EXCHANGE"
	IncomeCoinSwapDeposit   IncomeType = "COIN_SWAP_DEPOSIT"
	IncomeCoinSwapWithdraw  IncomeType = "COIN_SWAP_WITHDRAW"
	IncomeCrossCollateral   IncomeType = "CROSS_COLLATERAL_TRANSFER"
	IncomeStrategyUMFutures IncomeType = "STRATEGY_UMFUTURES_TRANSFER"
)

// IncomeTypes returns every accepted income filter.
func IncomeTypes() []IncomeType {
	return []IncomeType{
		IncomeTransfer,
		IncomeWelcomeBonus,
		IncomeRealizedPnL,
		IncomeFundingFee,
		IncomeCommission,
		IncomeInsuranceClear,
		IncomeReferralKickback,
		IncomeCommissionRebate,
		IncomeAPIRebate,
		IncomeContestReward,
		IncomeInternalTransfer,
		IncomeAutoExchange,
		IncomeCoinSwapDeposit,
		IncomeCoinSwapWithdraw,
		IncomeCrossCollateral,
		IncomeStrategyUMFutures,
	}
}

// MarginAction is the direction of a position margin change.
type MarginAction string

const (
	MarginAdd    MarginAction = "1"
	MarginReduce MarginAction = "2"
)

// MarginActions returns both margin actions.
func MarginActions() []MarginAction {
	return []MarginAction{MarginAdd, MarginReduce}
}

// EnumValues converts a typed enumeration into the plain strings a ParamSpec holds.
func EnumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
