package domain

import "github.com/shopspring/decimal"

type Balance struct {
	Currency       string          `json:"currency"`
	Balance        decimal.Decimal `json:"balance"`
	Available      decimal.Decimal `json:"available"`
	BalanceLocal   decimal.Decimal `json:"balance_local"`
	AvailableLocal decimal.Decimal `json:"available_local"`
	Rate           decimal.Decimal `json:"rate"`
}

type BalancesSnapshot struct {
	Balances []Balance `json:"balances"`
}

func (message BalancesSnapshot) Channel() string  { return ChannelBalances }
func (message BalancesSnapshot) exchangeMessage() {}
func (message BalancesSnapshot) snapshotMessage() {}
