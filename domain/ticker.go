package domain

import "github.com/shopspring/decimal"

type TickerSnapshot struct {
	Symbol         string           `json:"symbol"`
	LastTradePrice *decimal.Decimal `json:"last_trade_price"`
	Volume24h      *decimal.Decimal `json:"volume_24h"`
	Price24h       *decimal.Decimal `json:"price_24h"`
}

func (message TickerSnapshot) Channel() string  { return ChannelTicker }
func (message TickerSnapshot) exchangeMessage() {}
func (message TickerSnapshot) snapshotMessage() {}

type TickerUpdate struct {
	Symbol         string           `json:"symbol"`
	LastTradePrice *decimal.Decimal `json:"last_trade_price"`
	Volume24h      *decimal.Decimal `json:"volume_24h"`
	Price24h       *decimal.Decimal `json:"price_24h"`
}

func (message TickerUpdate) Channel() string  { return ChannelTicker }
func (message TickerUpdate) exchangeMessage() {}
func (message TickerUpdate) updateMessage()   {}
