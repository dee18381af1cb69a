package services

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/legendiguess/mercury-trade-bot/domain"
)

type telegramUsersService interface {
	RegisterUser(user *domain.User)
	GetUsers() []domain.User
}

type telegramBotCredentials interface {
	GetTelegramBotAPIToken() string
}

type telegramBotLogger interface {
	Panic(args ...interface{})
	Panicf(format string, args ...interface{})
}

type TelegramBot struct {
	bot          *tgbotapi.BotAPI
	usersService telegramUsersService
	logger       telegramBotLogger
}

func NewTelegramBot(usersService telegramUsersService, telegramBotCredentials telegramBotCredentials, telegramBotLogger telegramBotLogger) *TelegramBot {
	telegramBot := TelegramBot{usersService: usersService, logger: telegramBotLogger}

	var err error

	telegramBot.bot, err = tgbotapi.NewBotAPI(telegramBotCredentials.GetTelegramBotAPIToken())
	if err != nil {
		telegramBot.logger.Panic(err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 10

	updates := telegramBot.bot.GetUpdatesChan(u)

	go func() {
		for update := range updates {
			if update.Message == nil {
				continue
			}

			if update.Message.Text == "/start" {
				telegramBot.usersService.RegisterUser(&domain.User{ChatID: update.Message.Chat.ID})
				msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Вы подписались на получение информации по ордерам 👍")
				telegramBot.bot.Send(msg)
			}
		}
	}()

	return &telegramBot
}

func (telegramBot *TelegramBot) SendOrderRecord(chatID int64, orderRecord *domain.OrderRecord) {
	template := "%s %s %s по цене %s 💵\n%s ⏱"

	textSide := "Куплено ➕"
	if orderRecord.Side == string(domain.OrderSideSell) {
		textSide = "Продано ➖"
	}

	loc, _ := time.LoadLocation("Europe/Moscow")
	transactTime := orderRecord.TransactTime.In(loc)

	text := fmt.Sprintf(template, textSide, orderRecord.FilledQuantity, strings.ToUpper(orderRecord.Symbol), orderRecord.AverageFillPrice, transactTime.Format(time.RFC1123))

	msg := tgbotapi.NewMessage(chatID, text)
	telegramBot.bot.Send(msg)
}
