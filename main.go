package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/legendiguess/mercury-trade-bot/domain"
	"github.com/legendiguess/mercury-trade-bot/handlers"
	"github.com/legendiguess/mercury-trade-bot/services"
	"github.com/legendiguess/mercury-trade-bot/storage"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := log.New()
	logger.SetLevel(log.DebugLevel)

	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file found, using system environment")
	}

	credentials := storage.NewCredentialsStorage(logger)
	storage := storage.New(credentials, logger)

	usersService := services.NewUsersService(storage)
	telegramBot := services.NewTelegramBot(usersService, credentials, logger)

	orderRecordsService := services.NewOrderRecordsService(storage)
	tradeBot := services.NewTradeBot(orderRecordsService, usersService, telegramBot, logger)

	websocketClient := services.NewWebsocketClient(ctx, credentials, logger)
	exchangeClient := services.NewExchangeClient(websocketClient, tradeBot, logger)
	websocketClient.Listen(exchangeClient.HandleMessage, exchangeClient.HandleDisconnect)

	if err := exchangeClient.Auth(credentials.GetExchangeAPISecret()); err != nil {
		logger.Panicf("%v", err)
	}
	if err := exchangeClient.Subscribe(domain.ChannelTrading, nil); err != nil {
		logger.Panicf("%v", err)
	}
	if err := exchangeClient.Subscribe(domain.ChannelHeartbeat, nil); err != nil {
		logger.Panicf("%v", err)
	}

	handlers.NewServer(exchangeClient, exchangeClient.Trading(), orderRecordsService, logger)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	cancel()
}
