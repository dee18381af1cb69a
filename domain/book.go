package domain

import "github.com/shopspring/decimal"

// L2BookEntry is one aggregated price level of the level-2 book.
type L2BookEntry struct {
	Num      int64           `json:"num"`
	Price    decimal.Decimal `json:"px"`
	Quantity decimal.Decimal `json:"qty"`
}

// L3BookEntry is one individual order of the level-3 book.
type L3BookEntry struct {
	ID       string          `json:"id"`
	Price    decimal.Decimal `json:"px"`
	Quantity decimal.Decimal `json:"qty"`
}

type L2Snapshot struct {
	Symbol string        `json:"symbol"`
	Bids   []L2BookEntry `json:"bids"`
	Asks   []L2BookEntry `json:"asks"`
}

func (message L2Snapshot) Channel() string  { return ChannelL2 }
func (message L2Snapshot) exchangeMessage() {}
func (message L2Snapshot) snapshotMessage() {}

type L2Update struct {
	Symbol string        `json:"symbol"`
	Bids   []L2BookEntry `json:"bids"`
	Asks   []L2BookEntry `json:"asks"`
}

func (message L2Update) Channel() string  { return ChannelL2 }
func (message L2Update) exchangeMessage() {}
func (message L2Update) updateMessage()   {}

type L3Snapshot struct {
	Symbol string        `json:"symbol"`
	Bids   []L3BookEntry `json:"bids"`
	Asks   []L3BookEntry `json:"asks"`
}

func (message L3Snapshot) Channel() string  { return ChannelL3 }
func (message L3Snapshot) exchangeMessage() {}
func (message L3Snapshot) snapshotMessage() {}

type L3Update struct {
	Symbol string        `json:"symbol"`
	Bids   []L3BookEntry `json:"bids"`
	Asks   []L3BookEntry `json:"asks"`
}

func (message L3Update) Channel() string  { return ChannelL3 }
func (message L3Update) exchangeMessage() {}
func (message L3Update) updateMessage()   {}
