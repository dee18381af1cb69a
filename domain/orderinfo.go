package domain

import "time"

// OrderRecord is the persisted trace of an order update observed on
// the trading channel. Prices and quantities are stored as the exact
// decimal strings that came over the wire.
type OrderRecord struct {
	OrderID          string    `json:"order_id"`
	ClientOrderID    string    `json:"client_order_id"`
	Symbol           string    `json:"symbol"`
	Side             string    `json:"side"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	Quantity         string    `json:"quantity"`
	FilledQuantity   string    `json:"filled_quantity"`
	AverageFillPrice string    `json:"average_fill_price"`
	TransactTime     time.Time `json:"transact_time"`
}

func NewOrderRecord(order *Order) *OrderRecord {
	return &OrderRecord{
		OrderID:          order.OrderID,
		ClientOrderID:    order.ClientOrderID,
		Symbol:           order.Symbol,
		Side:             string(order.Side),
		Type:             string(order.Type),
		Status:           string(order.Status),
		Quantity:         order.Quantity.String(),
		FilledQuantity:   order.FilledQuantity.String(),
		AverageFillPrice: order.AverageFillPrice.String(),
		TransactTime:     order.TransactTime,
	}
}
