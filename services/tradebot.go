package services

import (
	"github.com/legendiguess/mercury-trade-bot/domain"
)

type tradeBotOrderRecordsService interface {
	NewOrderRecord(orderRecord *domain.OrderRecord)
}

type tradeBotUsersService interface {
	GetUsers() []domain.User
}

type tradeBotTelegramBot interface {
	SendOrderRecord(chatID int64, orderRecord *domain.OrderRecord)
}

type tradeBotLogger interface {
	Printf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// TradeBot consumes the exchange client events: it records every
// trading channel order update and notifies telegram users about
// fills. It holds no strategy of its own.
type TradeBot struct {
	orderRecordsService tradeBotOrderRecordsService
	usersService        tradeBotUsersService
	telegramBot         tradeBotTelegramBot
	logger              tradeBotLogger
}

func NewTradeBot(orderRecordsService tradeBotOrderRecordsService, usersService tradeBotUsersService, telegramBot tradeBotTelegramBot, tradeBotLogger tradeBotLogger) *TradeBot {
	return &TradeBot{
		orderRecordsService: orderRecordsService,
		usersService:        usersService,
		telegramBot:         telegramBot,
		logger:              tradeBotLogger,
	}
}

func (tradeBot *TradeBot) OnSubscribe(channelName string, extra domain.ExtraFields) {
	tradeBot.logger.Printf("Subscribed to %s channel", channelName)
}

func (tradeBot *TradeBot) OnUnsubscribe(channelName string, extra domain.ExtraFields) {
	tradeBot.logger.Printf("Unsubscribed from %s channel", channelName)
}

func (tradeBot *TradeBot) OnRejection(channelName string, extra domain.ExtraFields) {
	reason, _ := extra.Get("text")
	tradeBot.logger.Printf("Rejection on %s channel: %s", channelName, reason)
}

func (tradeBot *TradeBot) OnSnapshot(channelName string, snapshot domain.SnapshotMessage) {
	if snapshot, ok := snapshot.(domain.TradingSnapshot); ok {
		tradeBot.logger.Printf("Live orders snapshot: %d orders", len(snapshot.Orders))
		return
	}
	tradeBot.logger.Debugf("Snapshot on %s channel", channelName)
}

func (tradeBot *TradeBot) OnUpdate(channelName string, update domain.UpdateMessage) {
	tradingUpdate, ok := update.(domain.TradingUpdate)
	if !ok {
		tradeBot.logger.Debugf("Update on %s channel", channelName)
		return
	}

	order := tradingUpdate.Order
	orderRecord := domain.NewOrderRecord(&order)
	tradeBot.orderRecordsService.NewOrderRecord(orderRecord)
	tradeBot.logger.Printf("Order %s is %s", order.OrderID, order.Status)

	if order.Status != domain.OrderStatusFilled && order.Status != domain.OrderStatusRejected {
		return
	}

	for _, user := range tradeBot.usersService.GetUsers() {
		tradeBot.telegramBot.SendOrderRecord(user.ChatID, orderRecord)
	}
}

func (tradeBot *TradeBot) OnUnroutedMessage(raw string) {
	tradeBot.logger.Printf("Unexpected message received: %s", raw)
}

func (tradeBot *TradeBot) OnError(err error) {
	tradeBot.logger.Printf("Exchange client error: %v", err)
}

func (tradeBot *TradeBot) OnDisconnect(err error) {
	tradeBot.logger.Printf("Exchange connection closed: %v", err)
}
