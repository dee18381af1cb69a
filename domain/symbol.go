package domain

import "github.com/shopspring/decimal"

type SymbolStatus string

const (
	SymbolStatusOpen       = SymbolStatus("open")
	SymbolStatusClosed     = SymbolStatus("closed")
	SymbolStatusSuspended  = SymbolStatus("suspended")
	SymbolStatusHalt       = SymbolStatus("halt")
	SymbolStatusHaltFreeze = SymbolStatus("halt_freeze")
)

type SymbolDetails struct {
	BaseCurrency           string          `json:"base_currency"`
	BaseCurrencyScale      int             `json:"base_currency_scale"`
	CounterCurrency        string          `json:"counter_currency"`
	CounterCurrencyScale   int             `json:"counter_currency_scale"`
	MinPriceIncrement      int64           `json:"min_price_increment"`
	MinPriceIncrementScale int             `json:"min_price_increment_scale"`
	MinOrderSize           int64           `json:"min_order_size"`
	MinOrderSizeScale      int             `json:"min_order_size_scale"`
	MaxOrderSize           int64           `json:"max_order_size"`
	MaxOrderSizeScale      int             `json:"max_order_size_scale"`
	LotSize                int64           `json:"lot_size"`
	LotSizeScale           int             `json:"lot_size_scale"`
	AuctionPrice           decimal.Decimal `json:"auction_price"`
	AuctionSize            decimal.Decimal `json:"auction_size"`
	AuctionTime            string          `json:"auction_time"`
	Imbalance              decimal.Decimal `json:"imbalance"`
	Status                 SymbolStatus    `json:"status"`
	ID                     int             `json:"id"`
}

type SymbolsSnapshot struct {
	Symbols map[string]SymbolDetails `json:"symbols"`
}

func (message SymbolsSnapshot) Channel() string  { return ChannelSymbols }
func (message SymbolsSnapshot) exchangeMessage() {}
func (message SymbolsSnapshot) snapshotMessage() {}

type SymbolsUpdate struct {
	Symbol  string
	Details SymbolDetails
}

func (message SymbolsUpdate) Channel() string  { return ChannelSymbols }
func (message SymbolsUpdate) exchangeMessage() {}
func (message SymbolsUpdate) updateMessage()   {}
