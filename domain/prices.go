package domain

import "github.com/shopspring/decimal"

// PricesUpdate is one price candle: start time, open, high, low,
// close, volume.
type PricesUpdate struct {
	Symbol string            `json:"symbol"`
	Price  []decimal.Decimal `json:"price"`
}

func (message PricesUpdate) Channel() string  { return ChannelPrices }
func (message PricesUpdate) exchangeMessage() {}
func (message PricesUpdate) updateMessage()   {}
