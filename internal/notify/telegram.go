package notify

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramNotifier pushes staff alerts to a Telegram operations chat. It
// implements StaffNotifier.
type TelegramNotifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
	Log    *zap.Logger
}

// NewTelegramNotifier authorizes the bot. timeout bounds every call to
// the Telegram API.
func NewTelegramNotifier(token string, chatID int64, timeout time.Duration, log *zap.Logger) (*TelegramNotifier, error) {
	client := &http.Client{Timeout: timeout}
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Info("telegram staff bridge authorized", zap.String("account", bot.Self.UserName))

	return &TelegramNotifier{BotAPI: bot, ChatID: chatID, Log: log}, nil
}

// Alert sends the text to the staff chat in the background so the calling
// request never waits on Telegram.
func (t *TelegramNotifier) Alert(ctx context.Context, text string) {
	go func() {
		msg := tgbotapi.NewMessage(t.ChatID, text)
		if _, err := t.BotAPI.Send(msg); err != nil {
			t.Log.Warn("staff alert failed", zap.Error(err))
		}
	}()
}
