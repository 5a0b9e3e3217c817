package notify

import (
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Timeout bounds a single Telegram API call. A slow or unreachable API must
// not back the consumer up indefinitely.
const Timeout = 10 * time.Second

// TelegramSender sends through the Bot API with a bounded HTTP client.
type TelegramSender struct {
	api *tgbotapi.BotAPI
}

// NewTelegramSender authenticates against the Bot API.
func NewTelegramSender(token string) (*TelegramSender, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{
		Timeout: Timeout,
	})
	if err != nil {
		return nil, err
	}
	return &TelegramSender{api: api}, nil
}

// WrapBot reuses an already-authenticated client, so the notification path
// and the command loop share one session.
func WrapBot(api *tgbotapi.BotAPI) *TelegramSender {
	return &TelegramSender{api: api}
}

func (t *TelegramSender) SendMessage(chatID int64, text string) error {
	_, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
