package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradesUpdate is one trade print.
type TradesUpdate struct {
	Symbol    string          `json:"symbol"`
	Timestamp time.Time       `json:"timestamp"`
	Side      OrderSide       `json:"side"`
	Quantity  decimal.Decimal `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	TradeID   string          `json:"trade_id"`
}

func (message TradesUpdate) Channel() string  { return ChannelTrades }
func (message TradesUpdate) exchangeMessage() {}
func (message TradesUpdate) updateMessage()   {}
