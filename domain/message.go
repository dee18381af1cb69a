package domain

import "encoding/json"

// Names of the channels multiplexed over the exchange websocket stream.
const (
	ChannelAuth      = "auth"
	ChannelBalances  = "balances"
	ChannelTrading   = "trading"
	ChannelSymbols   = "symbols"
	ChannelL2        = "l2"
	ChannelL3        = "l3"
	ChannelTrades    = "trades"
	ChannelHeartbeat = "heartbeat"
	ChannelPrices    = "prices"
	ChannelTicker    = "ticker"
)

func ChannelNames() []string {
	return []string{
		ChannelAuth,
		ChannelBalances,
		ChannelTrading,
		ChannelSymbols,
		ChannelL2,
		ChannelL3,
		ChannelTrades,
		ChannelHeartbeat,
		ChannelPrices,
		ChannelTicker,
	}
}

// ExchangeMessage is one decoded inbound envelope. The set of
// implementations is closed: generic acknowledgements (Subscribed,
// Unsubscribed, Rejection), per-channel snapshots and updates, and
// GenericEnvelope for anything the decoder does not recognize.
type ExchangeMessage interface {
	Channel() string
	exchangeMessage()
}

// SnapshotMessage is a full-state payload sent once after subscribing.
type SnapshotMessage interface {
	ExchangeMessage
	snapshotMessage()
}

// UpdateMessage is an incremental payload sent on each change.
type UpdateMessage interface {
	ExchangeMessage
	updateMessage()
}

type ExtraField struct {
	Key   string
	Value string
}

// ExtraFields are the non-control fields of a generic acknowledgement,
// in wire order. A message with no such fields carries nil, not an
// empty slice.
type ExtraFields []ExtraField

func (extraFields ExtraFields) Get(key string) (string, bool) {
	for _, field := range extraFields {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

type Subscribed struct {
	ChannelName string
	Extra       ExtraFields
}

func (message Subscribed) Channel() string  { return message.ChannelName }
func (message Subscribed) exchangeMessage() {}

type Unsubscribed struct {
	ChannelName string
	Extra       ExtraFields
}

func (message Unsubscribed) Channel() string  { return message.ChannelName }
func (message Unsubscribed) exchangeMessage() {}

type Rejection struct {
	ChannelName string
	Extra       ExtraFields
}

func (message Rejection) Channel() string  { return message.ChannelName }
func (message Rejection) exchangeMessage() {}

// GenericEnvelope carries the full original object of a message whose
// (event, channel) pair has no dedicated decode path.
type GenericEnvelope struct {
	ChannelName string
	Raw         json.RawMessage
}

func (message GenericEnvelope) Channel() string  { return message.ChannelName }
func (message GenericEnvelope) exchangeMessage() {}
