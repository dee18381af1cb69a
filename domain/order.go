package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeLimit     = OrderType("limit")
	OrderTypeMarket    = OrderType("market")
	OrderTypeStop      = OrderType("stop")
	OrderTypeStopLimit = OrderType("stopLimit")
)

type OrderSide string

const (
	OrderSideBuy  = OrderSide("buy")
	OrderSideSell = OrderSide("sell")
)

type TimeInForce string

const (
	GoodTillCancel    = TimeInForce("GTC")
	GoodTillDate      = TimeInForce("GTD")
	ImmediateOrCancel = TimeInForce("IOC")
	FillOrKill        = TimeInForce("FOK")
)

type ExecInst string

const (
	AddLiquidityOnly = ExecInst("ALO")
)

type OrderStatus string

const (
	OrderStatusPending   = OrderStatus("pending")
	OrderStatusOpen      = OrderStatus("open")
	OrderStatusCancelled = OrderStatus("cancelled")
	OrderStatusPartial   = OrderStatus("partial")
	OrderStatusFilled    = OrderStatus("filled")
	OrderStatusExpired   = OrderStatus("expired")
	OrderStatusRejected  = OrderStatus("rejected")
)

// Order is the exchange-held order state as reported on the trading
// channel. The client never owns this state, it only observes it.
type Order struct {
	OrderID            string           `json:"orderID"`
	ClientOrderID      string           `json:"clOrdID"`
	Symbol             string           `json:"symbol"`
	Side               OrderSide        `json:"side"`
	Type               OrderType        `json:"ordType"`
	Quantity           decimal.Decimal  `json:"orderQty"`
	RemainingQuantity  decimal.Decimal  `json:"leavesQty"`
	FilledQuantity     decimal.Decimal  `json:"cumQty"`
	AverageFillPrice   decimal.Decimal  `json:"avgPx"`
	Status             OrderStatus      `json:"ordStatus"`
	TimeInForce        TimeInForce      `json:"timeInForce"`
	Text               string           `json:"text"`
	ExecType           string           `json:"execType"`
	ExecID             string           `json:"execID"`
	TransactTime       time.Time        `json:"transactTime"`
	LastFillPrice      decimal.Decimal  `json:"lastPx"`
	LastFillQuantity   decimal.Decimal  `json:"lastShares"`
	TradeID            string           `json:"tradeId"`
	Fee                decimal.Decimal  `json:"fee"`
	LimitPrice         *decimal.Decimal `json:"price"`
	StopPrice          *decimal.Decimal `json:"stopPx"`
	MarginOrder        bool             `json:"marginOrder"`
	CollateralCurrency string           `json:"collateralCurrency"`
	MarkPrice          *decimal.Decimal `json:"markPrice"`
	InterestAmount     *decimal.Decimal `json:"interestAmount"`
	PositionMargin     *decimal.Decimal `json:"positionMargin"`
	MarginCallPrice    *decimal.Decimal `json:"marginCallPrice"`
	LiquidationPrice   *decimal.Decimal `json:"liquidationPrice"`
}

// OrderRequest holds the caller-supplied parameters of a place-order
// command. It is validated and turned into a wire envelope, it is
// never stored.
type OrderRequest struct {
	ClientOrderID      string
	Symbol             string
	Type               OrderType
	Side               OrderSide
	Quantity           decimal.Decimal
	Price              *decimal.Decimal
	StopPrice          *decimal.Decimal
	TimeInForce        TimeInForce // defaults to GoodTillCancel when empty
	MinQuantity        *decimal.Decimal
	ExpireDate         *time.Time
	ExecInst           *ExecInst
	MarginOrder        bool
	CollateralCurrency string // defaults to "USD" for margin orders
	LeverageRatio      *decimal.Decimal
}

// NewClientOrderID generates a random client order id that fits the
// exchange's 20 character limit.
func NewClientOrderID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}

type TradingSnapshot struct {
	Orders []Order `json:"orders"`
}

func (message TradingSnapshot) Channel() string  { return ChannelTrading }
func (message TradingSnapshot) exchangeMessage() {}
func (message TradingSnapshot) snapshotMessage() {}

type TradingUpdate struct {
	Order Order
}

func (message TradingUpdate) Channel() string  { return ChannelTrading }
func (message TradingUpdate) exchangeMessage() {}
func (message TradingUpdate) updateMessage()   {}
