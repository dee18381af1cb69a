package storage

import "os"

type credentialsLogger interface {
	Panicf(format string, args ...interface{})
}

type Credentials struct {
	exchangeAPISecret   string
	telegramBotAPIToken string
	databaseDSN         string
	websocketURL        string
	websocketOrigin     string
	logger              credentialsLogger
}

func NewCredentialsStorage(credentialsLogger credentialsLogger) *Credentials {
	credentials := Credentials{logger: credentialsLogger}

	credentials.exchangeAPISecret = credentials.getKeyFromEnv("EXCHANGE_API_SECRET")
	credentials.telegramBotAPIToken = credentials.getKeyFromEnv("TELEGRAM_BOT_API_TOKEN")
	credentials.databaseDSN = credentials.getKeyFromEnv("DATABASE_DSN")
	credentials.websocketURL = "wss://ws.blockchain.com/mercury-gateway/v1/ws"
	credentials.websocketOrigin = "https://exchange.blockchain.com"

	return &credentials
}

func (credentials *Credentials) GetExchangeAPISecret() string {
	return credentials.exchangeAPISecret
}

func (credentials *Credentials) GetTelegramBotAPIToken() string {
	return credentials.telegramBotAPIToken
}

func (credentials *Credentials) GetDatabaseDSN() string {
	return credentials.databaseDSN
}

func (credentials *Credentials) GetWebsocketURL() string {
	return credentials.websocketURL
}

func (credentials *Credentials) GetWebsocketOrigin() string {
	return credentials.websocketOrigin
}

func (credentials *Credentials) getKeyFromEnv(keyName string) string {
	key := os.Getenv(keyName)
	if key == "" {
		credentials.logger.Panicf("Please set %s in system environment variables", keyName)
	}
	return key
}
