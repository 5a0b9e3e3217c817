// Package bot runs the Telegram side of the shop: owner commands, the
// Web-App entry point, and the consumer end of the order bridge.
package bot

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shashiranjanraj/altindan/config"
	"github.com/shashiranjanraj/altindan/internal/bridge"
	"github.com/shashiranjanraj/altindan/internal/notify"
	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/internal/settings"
	"github.com/shashiranjanraj/altindan/pkg/logger"
)

// client is the slice of the Bot API the command handlers need. Tests plug
// in a fake; production uses *tgbotapi.BotAPI.
type client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot owns the update loop and the notification consumer.
type Bot struct {
	api      *tgbotapi.BotAPI
	client   client
	intake   *order.Intake
	store    *order.Store
	settings *settings.Store
	bridge   *bridge.Bridge
	dispatch *notify.Dispatcher
}

// New authenticates against the Bot API using BOT_TOKEN and wires the
// handlers. The shared HTTP client bounds every API call, notification sends
// included.
func New(intake *order.Intake, store *order.Store, st *settings.Store, br *bridge.Bridge) (*Bot, error) {
	api, err := tgbotapi.NewBotAPIWithClient(config.BotToken(), tgbotapi.APIEndpoint, &http.Client{
		Timeout: notify.Timeout,
	})
	if err != nil {
		return nil, err
	}

	b := &Bot{
		api:      api,
		client:   api,
		intake:   intake,
		store:    store,
		settings: st,
		bridge:   br,
		dispatch: notify.NewDispatcher(notify.WrapBot(api), st),
	}
	return b, nil
}

// Run consumes bridge messages and Telegram updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	go b.bridge.Consume(ctx, b.dispatch.Notify)

	logger.Info("bot: update loop started", "username", b.api.Self.UserName)

	var offset int64
	for ctx.Err() == nil {
		updates, err := b.getUpdates(offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("bot: get updates", "error", err)
			time.Sleep(3 * time.Second)
			continue
		}

		for _, u := range updates {
			if u.ID >= offset {
				offset = u.ID + 1
			}
			b.HandleUpdate(ctx, u)
		}
	}
}
