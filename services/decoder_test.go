package services_test

import (
	"testing"

	"github.com/legendiguess/mercury-trade-bot/domain"
	"github.com/legendiguess/mercury-trade-bot/services"
	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, raw string) domain.ExchangeMessage {
	t.Helper()

	message, err := services.DecodeMessage([]byte(raw))
	assert.Nil(t, err)

	return message
}

func TestDecodeSubscribed(t *testing.T) {
	message := decode(t, `{"seqnum":0,"event":"subscribed","channel":"heartbeat"}`)

	subscribed, ok := message.(domain.Subscribed)
	assert.Equal(t, true, ok)
	assert.Equal(t, "heartbeat", subscribed.Channel())
	assert.Equal(t, domain.ExtraFields(nil), subscribed.Extra)
}

func TestDecodeSubscribedWithExtraFields(t *testing.T) {
	message := decode(t, `{"seqnum":1,"event":"subscribed","channel":"prices","action":"subscribe","symbol":"BTC-USD","granularity":60}`)

	subscribed := message.(domain.Subscribed)

	// action is a control field everywhere except on the trading channel
	assert.Equal(t, domain.ExtraFields{
		{Key: "symbol", Value: "BTC-USD"},
		{Key: "granularity", Value: "60"},
	}, subscribed.Extra)
}

func TestDecodeUnsubscribed(t *testing.T) {
	message := decode(t, `{"seqnum":4,"event":"unsubscribed","channel":"ticker","symbol":"BTC-USD"}`)

	unsubscribed := message.(domain.Unsubscribed)
	assert.Equal(t, "ticker", unsubscribed.Channel())

	symbol, ok := unsubscribed.Extra.Get("symbol")
	assert.Equal(t, true, ok)
	assert.Equal(t, "BTC-USD", symbol)
}

func TestDecodeTradingRejectionKeepsAction(t *testing.T) {
	message := decode(t, `{"event":"rejected","channel":"trading","seqnum":5,"action":"NewOrderSingle","clOrdID":"O1","text":"Insufficient Balance"}`)

	rejection, ok := message.(domain.Rejection)
	assert.Equal(t, true, ok)
	assert.Equal(t, "trading", rejection.Channel())
	assert.Equal(t, domain.ExtraFields{
		{Key: "action", Value: "NewOrderSingle"},
		{Key: "clOrdID", Value: "O1"},
		{Key: "text", Value: "Insufficient Balance"},
	}, rejection.Extra)
}

func TestDecodeEventIsCaseInsensitive(t *testing.T) {
	message := decode(t, `{"seqnum":0,"event":"Subscribed","channel":"auth"}`)

	_, ok := message.(domain.Subscribed)
	assert.Equal(t, true, ok)
}

func TestDecodeUnknownEvent(t *testing.T) {
	message := decode(t, `{"seqnum":1,"event":"bogus","channel":"trading","orderID":"123"}`)

	generic, ok := message.(domain.GenericEnvelope)
	assert.Equal(t, true, ok)
	assert.Equal(t, "trading", generic.Channel())
}

func TestDecodeMissingEvent(t *testing.T) {
	message := decode(t, `{"seqnum":1,"channel":"trading"}`)

	_, ok := message.(domain.GenericEnvelope)
	assert.Equal(t, true, ok)
}

func TestDecodeUnknownChannelSnapshot(t *testing.T) {
	message := decode(t, `{"seqnum":1,"event":"snapshot","channel":"wild","fields":[1,2,3]}`)

	generic, ok := message.(domain.GenericEnvelope)
	assert.Equal(t, true, ok)
	assert.Equal(t, "wild", generic.Channel())
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := services.DecodeMessage([]byte(`{"event":"subscribed"`))

	var decodeError *domain.DecodeError
	assert.ErrorAs(t, err, &decodeError)
}

func TestDecodeNotAnObject(t *testing.T) {
	_, err := services.DecodeMessage([]byte(`[1,2,3]`))

	var decodeError *domain.DecodeError
	assert.ErrorAs(t, err, &decodeError)
}

func TestDecodeMissingChannel(t *testing.T) {
	_, err := services.DecodeMessage([]byte(`{"event":"subscribed","seqnum":1}`))

	var decodeError *domain.DecodeError
	assert.ErrorAs(t, err, &decodeError)
}

func TestDecodeSchemaErrorMissingField(t *testing.T) {
	_, err := services.DecodeMessage([]byte(`{"seqnum":2,"event":"snapshot","channel":"l2","symbol":"BTC-USD","bids":[]}`))

	var schemaError *domain.SchemaError
	assert.ErrorAs(t, err, &schemaError)
	assert.Equal(t, "l2", schemaError.Channel)
	assert.Equal(t, "asks", schemaError.Field)
}

func TestDecodeSchemaErrorWrongType(t *testing.T) {
	_, err := services.DecodeMessage([]byte(`{"seqnum":2,"event":"snapshot","channel":"l2","symbol":"BTC-USD","bids":"broken","asks":[]}`))

	var schemaError *domain.SchemaError
	assert.ErrorAs(t, err, &schemaError)
	assert.Equal(t, "l2", schemaError.Channel)
	assert.Equal(t, "bids", schemaError.Field)
}

func TestDecodeTradingSnapshot(t *testing.T) {
	message := decode(t, `{"seqnum":3,"event":"snapshot","channel":"trading","orders":[{"orderID":"12891851020","clOrdID":"78502a08","symbol":"BTC-USD","side":"sell","ordType":"limit","orderQty":5.0e-4,"leavesQty":5.0e-4,"cumQty":0.0,"avgPx":0.0,"ordStatus":"open","timeInForce":"GTC","text":"New order","execType":"0","execID":"11321871","transactTime":"2019-08-13T11:30:03.000593290Z","msgType":8,"lastPx":0.0,"lastShares":0.0,"tradeId":"0","fee":0.0,"price":15000.0,"marginOrder":false}]}`)

	snapshot, ok := message.(domain.TradingSnapshot)
	assert.Equal(t, true, ok)
	assert.Equal(t, "trading", snapshot.Channel())
	assert.Equal(t, 1, len(snapshot.Orders))

	order := snapshot.Orders[0]
	assert.Equal(t, "12891851020", order.OrderID)
	assert.Equal(t, "78502a08", order.ClientOrderID)
	assert.Equal(t, domain.OrderSideSell, order.Side)
	assert.Equal(t, domain.OrderTypeLimit, order.Type)
	assert.Equal(t, domain.OrderStatusOpen, order.Status)
	assert.Equal(t, domain.GoodTillCancel, order.TimeInForce)
	assert.Equal(t, "0.00050", order.Quantity.String())
	assert.NotNil(t, order.LimitPrice)
	assert.Equal(t, "15000.0", order.LimitPrice.String())
	assert.Nil(t, order.StopPrice)
	assert.Equal(t, false, order.MarginOrder)
	assert.Equal(t, 2019, order.TransactTime.Year())
}

func TestDecodeTradingUpdate(t *testing.T) {
	message := decode(t, `{"seqnum":4,"event":"updated","channel":"trading","orderID":"12891851020","clOrdID":"78502a08","symbol":"BTC-USD","side":"sell","ordType":"limit","orderQty":5.0e-4,"leavesQty":0.0,"cumQty":5.0e-4,"avgPx":11321.5,"ordStatus":"filled","timeInForce":"GTC","text":"Fill","execType":"F","execID":"11321907","transactTime":"2019-08-13T11:36:45.826565Z","lastPx":11321.5,"lastShares":5.0e-4,"tradeId":"12884910084","fee":0.0,"price":11321.5,"marginOrder":false}`)

	update, ok := message.(domain.TradingUpdate)
	assert.Equal(t, true, ok)
	assert.Equal(t, domain.OrderStatusFilled, update.Order.Status)
	assert.Equal(t, "11321.5", update.Order.AverageFillPrice.String())
	assert.Equal(t, "12884910084", update.Order.TradeID)
}

func TestDecodeBalancesSnapshot(t *testing.T) {
	message := decode(t, `{"seqnum":2,"event":"snapshot","channel":"balances","balances":[{"currency":"BTC","balance":0.00366963,"available":0.00266963,"balance_local":38.746779155,"available_local":28.188009155,"rate":10558.77}],"total_available_local":38.26,"total_balance_local":48.82}`)

	snapshot, ok := message.(domain.BalancesSnapshot)
	assert.Equal(t, true, ok)
	assert.Equal(t, 1, len(snapshot.Balances))
	assert.Equal(t, "BTC", snapshot.Balances[0].Currency)
	assert.Equal(t, "0.00366963", snapshot.Balances[0].Balance.String())
	assert.Equal(t, "0.00266963", snapshot.Balances[0].Available.String())
}

func TestDecodeSymbolsSnapshot(t *testing.T) {
	message := decode(t, `{"seqnum":1,"event":"snapshot","channel":"symbols","symbols":{"BTC-USD":{"base_currency":"BTC","base_currency_scale":8,"counter_currency":"USD","counter_currency_scale":2,"min_price_increment":10,"min_price_increment_scale":0,"min_order_size":50,"min_order_size_scale":2,"max_order_size":0,"max_order_size_scale":8,"lot_size":5,"lot_size_scale":2,"status":"halt","id":1,"auction_price":0.0,"auction_size":0.0,"auction_time":"1508","imbalance":0.0}}}`)

	snapshot, ok := message.(domain.SymbolsSnapshot)
	assert.Equal(t, true, ok)

	details, ok := snapshot.Symbols["BTC-USD"]
	assert.Equal(t, true, ok)
	assert.Equal(t, "BTC", details.BaseCurrency)
	assert.Equal(t, 8, details.BaseCurrencyScale)
	assert.Equal(t, domain.SymbolStatusHalt, details.Status)
	assert.Equal(t, 1, details.ID)
}

func TestDecodeSymbolsUpdate(t *testing.T) {
	message := decode(t, `{"seqnum":2,"event":"updated","channel":"symbols","symbol":"BTC-USD","base_currency":"BTC","base_currency_scale":8,"counter_currency":"USD","counter_currency_scale":2,"min_price_increment":10,"min_price_increment_scale":0,"min_order_size":50,"min_order_size_scale":2,"max_order_size":0,"max_order_size_scale":8,"lot_size":5,"lot_size_scale":2,"status":"open","id":1,"auction_price":0.0,"auction_size":0.0,"auction_time":"","imbalance":0.0}`)

	update, ok := message.(domain.SymbolsUpdate)
	assert.Equal(t, true, ok)
	assert.Equal(t, "BTC-USD", update.Symbol)
	assert.Equal(t, domain.SymbolStatusOpen, update.Details.Status)
	assert.Equal(t, int64(10), update.Details.MinPriceIncrement)
}

func TestDecodeL2Snapshot(t *testing.T) {
	message := decode(t, `{"seqnum":2,"event":"snapshot","channel":"l2","symbol":"BTC-USD","bids":[{"px":8723.45,"qty":1.45,"num":2}],"asks":[{"px":8730.0,"qty":1.55,"num":2}]}`)

	snapshot, ok := message.(domain.L2Snapshot)
	assert.Equal(t, true, ok)
	assert.Equal(t, "BTC-USD", snapshot.Symbol)
	assert.Equal(t, 1, len(snapshot.Bids))
	assert.Equal(t, int64(2), snapshot.Bids[0].Num)
	assert.Equal(t, "8723.45", snapshot.Bids[0].Price.String())
	assert.Equal(t, "1.55", snapshot.Asks[0].Quantity.String())
}

func TestDecodeL2Update(t *testing.T) {
	message := decode(t, `{"seqnum":3,"event":"updated","channel":"l2","symbol":"BTC-USD","bids":[{"px":8723.45,"qty":1.1,"num":1}],"asks":[]}`)

	update, ok := message.(domain.L2Update)
	assert.Equal(t, true, ok)
	assert.Equal(t, "BTC-USD", update.Symbol)
	assert.Equal(t, 0, len(update.Asks))
}

func TestDecodeL3Snapshot(t *testing.T) {
	message := decode(t, `{"seqnum":2,"event":"snapshot","channel":"l3","symbol":"BTC-USD","bids":[{"id":"1035509","px":8723.45,"qty":1.1}],"asks":[{"id":"1035510","px":8730.0,"qty":1.55}]}`)

	snapshot, ok := message.(domain.L3Snapshot)
	assert.Equal(t, true, ok)
	assert.Equal(t, "1035509", snapshot.Bids[0].ID)
	assert.Equal(t, "8723.45", snapshot.Bids[0].Price.String())
}

func TestDecodeL3Update(t *testing.T) {
	message := decode(t, `{"seqnum":3,"event":"updated","channel":"l3","symbol":"BTC-USD","bids":[],"asks":[{"id":"1035511","px":8729.0,"qty":0.65}]}`)

	update, ok := message.(domain.L3Update)
	assert.Equal(t, true, ok)
	assert.Equal(t, "1035511", update.Asks[0].ID)
	assert.Equal(t, "0.65", update.Asks[0].Quantity.String())
}

func TestDecodeTradesUpdate(t *testing.T) {
	message := decode(t, `{"seqnum":21,"event":"updated","channel":"trades","symbol":"BTC-USD","timestamp":"2019-08-13T11:30:06.100140Z","side":"sell","qty":8.5e-5,"price":11252.4,"trade_id":"12884909920"}`)

	update, ok := message.(domain.TradesUpdate)
	assert.Equal(t, true, ok)
	assert.Equal(t, "BTC-USD", update.Symbol)
	assert.Equal(t, domain.OrderSideSell, update.Side)
	assert.Equal(t, "0.000085", update.Quantity.String())
	assert.Equal(t, "11252.4", update.Price.String())
	assert.Equal(t, "12884909920", update.TradeID)
}

func TestDecodeHeartbeatUpdate(t *testing.T) {
	message := decode(t, `{"seqnum":1,"event":"updated","channel":"heartbeat","timestamp":"2019-07-16T22:53:14.738Z"}`)

	update, ok := message.(domain.HeartbeatUpdate)
	assert.Equal(t, true, ok)
	assert.Equal(t, 2019, update.Timestamp.Year())
}

func TestDecodePricesUpdate(t *testing.T) {
	message := decode(t, `{"seqnum":2,"event":"updated","channel":"prices","symbol":"BTC-USD","price":[1565101200000,11450.0,11545.3,11323.7,11515.8,104.71]}`)

	update, ok := message.(domain.PricesUpdate)
	assert.Equal(t, true, ok)
	assert.Equal(t, "BTC-USD", update.Symbol)
	assert.Equal(t, 6, len(update.Price))
	assert.Equal(t, "11545.3", update.Price[2].String())
}

func TestDecodeTickerSnapshot(t *testing.T) {
	message := decode(t, `{"seqnum":1,"event":"snapshot","channel":"ticker","symbol":"BTC-USD","price_24h":4988.0,"volume_24h":0.3015,"last_trade_price":5000.0}`)

	snapshot, ok := message.(domain.TickerSnapshot)
	assert.Equal(t, true, ok)
	assert.Equal(t, "BTC-USD", snapshot.Symbol)
	assert.NotNil(t, snapshot.LastTradePrice)
	assert.Equal(t, "5000.0", snapshot.LastTradePrice.String())
}

func TestDecodeTickerUpdatePartialFields(t *testing.T) {
	message := decode(t, `{"seqnum":2,"event":"updated","channel":"ticker","symbol":"BTC-USD","last_trade_price":5090.0}`)

	update, ok := message.(domain.TickerUpdate)
	assert.Equal(t, true, ok)
	assert.Equal(t, "5090.0", update.LastTradePrice.String())
	assert.Nil(t, update.Volume24h)
	assert.Nil(t, update.Price24h)
}

func TestDecodeAuthSnapshotFallsBackToGeneric(t *testing.T) {
	message := decode(t, `{"seqnum":1,"event":"snapshot","channel":"auth"}`)

	_, ok := message.(domain.GenericEnvelope)
	assert.Equal(t, true, ok)
}
