package services

import (
	"fmt"

	"github.com/legendiguess/mercury-trade-bot/domain"
)

type messageSender interface {
	Send(text string) error
}

// ExchangeListener receives the client-visible events of the stream.
// Exactly one of its methods is invoked per inbound message; messages
// with an unknown channel or an unrecognized event arrive unchanged
// through OnUnroutedMessage. OnDisconnect fires once when the
// connection stops delivering frames.
type ExchangeListener interface {
	OnSubscribe(channelName string, extra domain.ExtraFields)
	OnUnsubscribe(channelName string, extra domain.ExtraFields)
	OnRejection(channelName string, extra domain.ExtraFields)
	OnSnapshot(channelName string, snapshot domain.SnapshotMessage)
	OnUpdate(channelName string, update domain.UpdateMessage)
	OnUnroutedMessage(raw string)
	OnError(err error)
	OnDisconnect(err error)
}

type exchangeClientLogger interface {
	Printf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type channelHandler interface {
	Name() string
	Subscribe(args domain.Args) error
	Unsubscribe(args domain.Args) error
	onMessage(message domain.ExchangeMessage) bool
}

// ExchangeClient multiplexes the ten exchange channels over one
// outbound sender and routes every decoded inbound message to its
// owning channel. The channel table is fixed at construction.
type ExchangeClient struct {
	sender   messageSender
	listener ExchangeListener
	logger   exchangeClientLogger
	channels map[string]channelHandler
	auth     *Channel
	trading  *TradingChannel
}

func NewExchangeClient(sender messageSender, listener ExchangeListener, logger exchangeClientLogger) *ExchangeClient {
	client := &ExchangeClient{
		sender:   sender,
		listener: listener,
		logger:   logger,
	}

	client.auth = newChannel(domain.ChannelAuth, client)
	client.trading = &TradingChannel{Channel: newChannel(domain.ChannelTrading, client)}

	handlers := []channelHandler{
		client.auth,
		client.trading,
		newChannel(domain.ChannelBalances, client),
		newChannel(domain.ChannelSymbols, client),
		newChannel(domain.ChannelL2, client),
		newChannel(domain.ChannelL3, client),
		newChannel(domain.ChannelTrades, client),
		newChannel(domain.ChannelHeartbeat, client),
		newChannel(domain.ChannelPrices, client),
		newChannel(domain.ChannelTicker, client),
	}

	client.channels = make(map[string]channelHandler, len(handlers))
	for _, handler := range handlers {
		client.channels[handler.Name()] = handler
	}

	return client
}

func (client *ExchangeClient) send(text string) error {
	client.logger.Debugf("sending message: %s", text)
	return client.sender.Send(text)
}

// Auth authenticates the connection with the exchange API key.
func (client *ExchangeClient) Auth(apiKey string) error {
	return client.auth.Subscribe(domain.Args{"token": apiKey})
}

func (client *ExchangeClient) Trading() *TradingChannel {
	return client.trading
}

func (client *ExchangeClient) Subscribe(channelName string, args domain.Args) error {
	handler, ok := client.channels[channelName]
	if !ok {
		return &domain.InvalidArgumentError{Field: "channel", Reason: fmt.Sprintf("unknown channel %q", channelName)}
	}
	return handler.Subscribe(args)
}

func (client *ExchangeClient) Unsubscribe(channelName string, args domain.Args) error {
	handler, ok := client.channels[channelName]
	if !ok {
		return &domain.InvalidArgumentError{Field: "channel", Reason: fmt.Sprintf("unknown channel %q", channelName)}
	}
	return handler.Unsubscribe(args)
}

// HandleMessage processes one inbound frame in arrival order. Every
// frame ends up as exactly one listener callback or one catch-all
// notification; decode failures on known channels are surfaced through
// OnError.
func (client *ExchangeClient) HandleMessage(raw string) {
	message, err := DecodeMessage([]byte(raw))
	if err != nil {
		client.listener.OnError(err)
		return
	}

	handler, ok := client.channels[message.Channel()]
	if !ok {
		client.logger.Printf("unexpected channel %s received, forwarding message [message=%s]", message.Channel(), raw)
		client.listener.OnUnroutedMessage(raw)
		return
	}

	if !client.dispatch(handler, message) {
		client.listener.OnUnroutedMessage(raw)
	}
}

// HandleDisconnect forwards the end of the inbound stream to the
// listener unmodified.
func (client *ExchangeClient) HandleDisconnect(err error) {
	client.listener.OnDisconnect(err)
}

// dispatch isolates a panicking listener callback so that one broken
// handler cannot take down processing of the other channels.
func (client *ExchangeClient) dispatch(handler channelHandler, message domain.ExchangeMessage) (handled bool) {
	defer func() {
		if value := recover(); value != nil {
			handled = true
			client.listener.OnError(fmt.Errorf("listener callback panicked on channel %s: %v", message.Channel(), value))
		}
	}()
	return handler.onMessage(message)
}
