package services

import (
	"encoding/json"
	"fmt"

	"github.com/legendiguess/mercury-trade-bot/domain"
	"github.com/shopspring/decimal"
)

const (
	actionSubscribe   = "subscribe"
	actionUnsubscribe = "unsubscribe"
)

// Channel is one named sub-stream of the shared connection. Channels
// are built once by the exchange client and never change afterwards.
type Channel struct {
	name   string
	client *ExchangeClient
}

func newChannel(name string, client *ExchangeClient) *Channel {
	return &Channel{name: name, client: client}
}

func (channel *Channel) Name() string {
	return channel.name
}

func (channel *Channel) Subscribe(args domain.Args) error {
	return channel.sendMessage(actionSubscribe, args)
}

func (channel *Channel) Unsubscribe(args domain.Args) error {
	return channel.sendMessage(actionUnsubscribe, args)
}

func (channel *Channel) sendMessage(action string, args domain.Args) error {
	text, err := encodeEnvelope(action, channel.name, args)
	if err != nil {
		return err
	}
	return channel.client.send(text)
}

// onMessage maps a decoded message to exactly one listener callback.
// A GenericEnvelope is not handled here, the client forwards it as a
// catch-all notification instead.
func (channel *Channel) onMessage(message domain.ExchangeMessage) bool {
	switch message := message.(type) {
	case domain.Subscribed:
		channel.client.listener.OnSubscribe(channel.name, message.Extra)
		return true
	case domain.Unsubscribed:
		channel.client.listener.OnUnsubscribe(channel.name, message.Extra)
		return true
	case domain.Rejection:
		channel.client.listener.OnRejection(channel.name, message.Extra)
		return true
	case domain.SnapshotMessage:
		channel.client.listener.OnSnapshot(channel.name, message)
		return true
	case domain.UpdateMessage:
		channel.client.listener.OnUpdate(channel.name, message)
		return true
	default:
		return false
	}
}

func encodeEnvelope(action string, channel string, args domain.Args) (string, error) {
	envelope := make(map[string]interface{}, len(args)+2)
	for key, value := range args {
		scalar, err := scalarValue(key, value)
		if err != nil {
			return "", err
		}
		envelope[key] = scalar
	}
	envelope["action"] = action
	envelope["channel"] = channel

	text, err := json.Marshal(envelope)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// scalarValue admits the closed set of argument value types. Decimals
// go on the wire as their exact plain string, everything else is
// passed through without coercion.
func scalarValue(key string, value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return value, nil
	case decimal.Decimal:
		return value.String(), nil
	default:
		return nil, &domain.InvalidArgumentError{
			Field:  key,
			Reason: fmt.Sprintf("unsupported value type %T", value),
		}
	}
}
