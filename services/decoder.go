package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/legendiguess/mercury-trade-bot/domain"
)

const (
	eventSubscribed   = "subscribed"
	eventUnsubscribed = "unsubscribed"
	eventRejected     = "rejected"
	eventUpdated      = "updated"
	eventSnapshot     = "snapshot"
)

var errMissingField = errors.New("required field is missing")

// rawEnvelope is one inbound JSON object with its top-level fields kept
// in wire order.
type rawEnvelope struct {
	keys   []string
	values map[string]json.RawMessage
}

func parseEnvelope(raw []byte) (*rawEnvelope, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("envelope is not a JSON object")
	}

	envelope := rawEnvelope{values: make(map[string]json.RawMessage)}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key := token.(string)

		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return nil, err
		}

		if _, ok := envelope.values[key]; !ok {
			envelope.keys = append(envelope.keys, key)
		}
		envelope.values[key] = value
	}
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return &envelope, nil
}

// DecodeMessage parses one inbound envelope into a typed message.
// Unrecognized events and unknown channels degrade to GenericEnvelope;
// malformed JSON fails with DecodeError and a broken payload of a known
// channel fails with SchemaError.
func DecodeMessage(raw []byte) (domain.ExchangeMessage, error) {
	envelope, err := parseEnvelope(raw)
	if err != nil {
		return nil, &domain.DecodeError{Err: err}
	}

	channelRaw, ok := envelope.values["channel"]
	if !ok {
		return nil, &domain.DecodeError{Err: errors.New("envelope has no channel field")}
	}
	var channel string
	if err := json.Unmarshal(channelRaw, &channel); err != nil {
		return nil, &domain.DecodeError{Err: fmt.Errorf("channel field: %w", err)}
	}

	switch parseEvent(envelope.values["event"]) {
	case eventSubscribed:
		return domain.Subscribed{ChannelName: channel, Extra: extraFields(channel, envelope)}, nil
	case eventUnsubscribed:
		return domain.Unsubscribed{ChannelName: channel, Extra: extraFields(channel, envelope)}, nil
	case eventRejected:
		return domain.Rejection{ChannelName: channel, Extra: extraFields(channel, envelope)}, nil
	case eventSnapshot:
		return decodeSnapshot(channel, raw, envelope)
	case eventUpdated:
		return decodeUpdate(channel, raw, envelope)
	default:
		return domain.GenericEnvelope{ChannelName: channel, Raw: json.RawMessage(raw)}, nil
	}
}

// parseEvent maps the event field, case-insensitively, to one of the
// five known events. Anything else, including a missing or non-string
// field, is unrecognized and reported as "".
func parseEvent(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var event string
	if err := json.Unmarshal(raw, &event); err != nil {
		return ""
	}
	switch strings.ToLower(event) {
	case eventSubscribed, eventUnsubscribed, eventRejected, eventUpdated, eventSnapshot:
		return strings.ToLower(event)
	default:
		return ""
	}
}

// extraFields collects every field except the reserved control fields,
// in wire order. The action field is reserved everywhere but on the
// trading channel, where it distinguishes which command was rejected.
func extraFields(channel string, envelope *rawEnvelope) domain.ExtraFields {
	var fields domain.ExtraFields
	for _, key := range envelope.keys {
		if key == "event" || key == "channel" || key == "seqnum" {
			continue
		}
		if key == "action" && channel != domain.ChannelTrading {
			continue
		}
		fields = append(fields, domain.ExtraField{Key: key, Value: fieldString(envelope.values[key])})
	}
	return fields
}

func fieldString(raw json.RawMessage) string {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return string(raw)
	}

	switch value := value.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		if value {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	default:
		compacted := bytes.Buffer{}
		if err := json.Compact(&compacted, raw); err != nil {
			return string(raw)
		}
		return compacted.String()
	}
}

func decodeSnapshot(channel string, raw []byte, envelope *rawEnvelope) (domain.ExchangeMessage, error) {
	switch channel {
	case domain.ChannelTrading:
		var snapshot domain.TradingSnapshot
		if err := decodePayload(channel, raw, envelope, &snapshot, "orders"); err != nil {
			return nil, err
		}
		return snapshot, nil
	case domain.ChannelBalances:
		var snapshot domain.BalancesSnapshot
		if err := decodePayload(channel, raw, envelope, &snapshot, "balances"); err != nil {
			return nil, err
		}
		return snapshot, nil
	case domain.ChannelSymbols:
		var snapshot domain.SymbolsSnapshot
		if err := decodePayload(channel, raw, envelope, &snapshot, "symbols"); err != nil {
			return nil, err
		}
		return snapshot, nil
	case domain.ChannelL2:
		var snapshot domain.L2Snapshot
		if err := decodePayload(channel, raw, envelope, &snapshot, "symbol", "bids", "asks"); err != nil {
			return nil, err
		}
		return snapshot, nil
	case domain.ChannelL3:
		var snapshot domain.L3Snapshot
		if err := decodePayload(channel, raw, envelope, &snapshot, "symbol", "bids", "asks"); err != nil {
			return nil, err
		}
		return snapshot, nil
	case domain.ChannelTicker:
		var snapshot domain.TickerSnapshot
		if err := decodePayload(channel, raw, envelope, &snapshot, "symbol"); err != nil {
			return nil, err
		}
		return snapshot, nil
	default:
		return domain.GenericEnvelope{ChannelName: channel, Raw: json.RawMessage(raw)}, nil
	}
}

func decodeUpdate(channel string, raw []byte, envelope *rawEnvelope) (domain.ExchangeMessage, error) {
	switch channel {
	case domain.ChannelTrading:
		var order domain.Order
		if err := decodePayload(channel, raw, envelope, &order, "orderID"); err != nil {
			return nil, err
		}
		return domain.TradingUpdate{Order: order}, nil
	case domain.ChannelSymbols:
		var update struct {
			Symbol string `json:"symbol"`
			domain.SymbolDetails
		}
		if err := decodePayload(channel, raw, envelope, &update, "symbol"); err != nil {
			return nil, err
		}
		return domain.SymbolsUpdate{Symbol: update.Symbol, Details: update.SymbolDetails}, nil
	case domain.ChannelL2:
		var update domain.L2Update
		if err := decodePayload(channel, raw, envelope, &update, "symbol", "bids", "asks"); err != nil {
			return nil, err
		}
		return update, nil
	case domain.ChannelL3:
		var update domain.L3Update
		if err := decodePayload(channel, raw, envelope, &update, "symbol", "bids", "asks"); err != nil {
			return nil, err
		}
		return update, nil
	case domain.ChannelTrades:
		var update domain.TradesUpdate
		if err := decodePayload(channel, raw, envelope, &update, "symbol", "timestamp", "side", "qty", "price"); err != nil {
			return nil, err
		}
		return update, nil
	case domain.ChannelHeartbeat:
		var update domain.HeartbeatUpdate
		if err := decodePayload(channel, raw, envelope, &update, "timestamp"); err != nil {
			return nil, err
		}
		return update, nil
	case domain.ChannelPrices:
		var update domain.PricesUpdate
		if err := decodePayload(channel, raw, envelope, &update, "symbol", "price"); err != nil {
			return nil, err
		}
		return update, nil
	case domain.ChannelTicker:
		var update domain.TickerUpdate
		if err := decodePayload(channel, raw, envelope, &update, "symbol"); err != nil {
			return nil, err
		}
		return update, nil
	default:
		return domain.GenericEnvelope{ChannelName: channel, Raw: json.RawMessage(raw)}, nil
	}
}

// decodePayload unmarshals a known channel's payload. A missing
// required field or a type mismatch is a contract violation with the
// exchange and fails with SchemaError, it is never downgraded to
// GenericEnvelope.
func decodePayload(channel string, raw []byte, envelope *rawEnvelope, payload interface{}, required ...string) error {
	for _, field := range required {
		if _, ok := envelope.values[field]; !ok {
			return &domain.SchemaError{Channel: channel, Field: field, Err: errMissingField}
		}
	}
	if err := json.Unmarshal(raw, payload); err != nil {
		field := ""
		var typeError *json.UnmarshalTypeError
		if errors.As(err, &typeError) {
			field = typeError.Field
		}
		return &domain.SchemaError{Channel: channel, Field: field, Err: err}
	}
	return nil
}
