package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shashiranjanraj/altindan/config"
	"github.com/shashiranjanraj/altindan/internal/catalog"
	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/pkg/logger"
)

// looseString tolerates any JSON scalar. The order page sends qty as a
// string, but hand-built payloads may use a bare number; either way the
// value ends up as text for the intake's lenient parser.
type looseString string

func (s *looseString) UnmarshalJSON(raw []byte) error {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	*s = looseString(strings.Trim(string(raw), `"`))
	return nil
}

// webAppOrder is the payload posted by the in-chat order page via
// Telegram.WebApp.sendData.
type webAppOrder struct {
	Product string      `json:"product"`
	Qty     looseString `json:"qty"`
	Address string      `json:"address"`
	Time    string      `json:"time"`
	Lang    string      `json:"lang"`
}

// HandleUpdate dispatches one Telegram update. A failure in one update never
// takes the loop down.
func (b *Bot) HandleUpdate(ctx context.Context, u update) {
	msg := u.Message
	if msg == nil {
		return
	}

	if msg.WebAppData != nil {
		b.handleWebAppOrder(ctx, msg)
		return
	}

	cmd, args := msg.command()
	switch cmd {
	case "start":
		b.handleStart(msg)
	case "setgroup":
		b.handleSetGroup(msg)
	case "lang":
		b.handleLang(msg, args)
	case "export":
		b.handleExport(msg)
	case "report":
		b.handleReport(msg)
	}
}

func (b *Bot) handleStart(msg *incoming) {
	lang := b.userLang(msg)

	text := "Добро пожаловать! Нажмите кнопку ниже, чтобы открыть магазин."
	button := "🛍 Открыть магазин"
	if lang == "uz" {
		text = "Xush kelibsiz! Do'konni ochish uchun quyidagi tugmani bosing."
		button = "🛍 Do'konni ochish"
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	if url := config.WebURL(); url != "" {
		reply.ReplyMarkup = inlineKeyboardMarkup{
			InlineKeyboard: [][]inlineKeyboardButton{{
				{Text: button, WebApp: &webAppInfo{URL: url}},
			}},
		}
	}
	b.reply(reply)
}

// handleSetGroup registers the current chat as the notification destination.
// Only meaningful inside a group.
func (b *Bot) handleSetGroup(msg *incoming) {
	if !msg.Chat.isGroup() {
		b.replyText(msg.Chat.ID, "Эта команда работает только в группе.")
		return
	}

	if err := b.settings.SetOrderGroup(msg.Chat.ID); err != nil {
		logger.Error("bot: set group", "chat_id", msg.Chat.ID, "error", err)
		b.replyText(msg.Chat.ID, "Не удалось сохранить настройку, попробуйте ещё раз.")
		return
	}

	logger.Info("bot: order group registered", "chat_id", msg.Chat.ID)
	b.replyText(msg.Chat.ID, "✅ Эта группа будет получать уведомления о заказах.")
}

func (b *Bot) handleLang(msg *incoming, args string) {
	lang := strings.ToLower(strings.TrimSpace(args))
	switch lang {
	case "uz", "ru":
	default:
		b.replyText(msg.Chat.ID, "Usage: /lang uz | /lang ru")
		return
	}

	if err := b.settings.SetUserLocale(msg.From.ID, lang); err != nil {
		logger.Error("bot: set locale", "user_id", msg.From.ID, "error", err)
		b.replyText(msg.Chat.ID, "Не удалось сохранить язык.")
		return
	}

	if lang == "uz" {
		b.replyText(msg.Chat.ID, "Til o'zgartirildi: o'zbekcha 🇺🇿")
		return
	}
	b.replyText(msg.Chat.ID, "Язык изменён: русский 🇷🇺")
}

func (b *Bot) handleExport(msg *incoming) {
	orders := b.store.ListAll()
	if len(orders) == 0 {
		b.replyText(msg.Chat.ID, "Заказов пока нет.")
		return
	}

	data, err := order.ExportCSV(orders)
	if err != nil {
		logger.Error("bot: export", "error", err)
		b.replyText(msg.Chat.ID, "Не удалось подготовить экспорт.")
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  "orders.csv",
		Bytes: data,
	})
	doc.Caption = fmt.Sprintf("Заказы: %d", len(orders))
	b.reply(doc)
}

func (b *Bot) handleReport(msg *incoming) {
	r := order.BuildReport(b.store.ListAll())
	b.replyText(msg.Chat.ID, fmt.Sprintf(
		"📊 Отчёт\n\nЗаказов: %d\nОбщее количество: %s\nВыручка: %s",
		r.Count,
		strconv.FormatFloat(r.TotalQty, 'f', -1, 64),
		strconv.FormatFloat(r.TotalRevenue, 'f', -1, 64),
	))
}

// handleWebAppOrder feeds a Web-App payload into the same intake pipeline
// the web form uses. The delivery address rides in the note field; the
// submitter is identified by their Telegram profile.
func (b *Bot) handleWebAppOrder(ctx context.Context, msg *incoming) {
	var payload webAppOrder
	if err := json.Unmarshal([]byte(msg.WebAppData.Data), &payload); err != nil {
		logger.Error("bot: web app payload undecodable", "chat_id", msg.Chat.ID, "error", err)
		b.replyText(msg.Chat.ID, "Не удалось обработать заказ, попробуйте ещё раз.")
		return
	}

	lang := payload.Lang
	if lang == "" {
		lang = b.userLang(msg)
	}

	note := strings.TrimSpace(payload.Address)
	if t := strings.TrimSpace(payload.Time); t != "" {
		if note != "" {
			note += ", "
		}
		note += t
	}

	o, err := b.intake.Submit(ctx, order.Submission{
		ProductID: payload.Product,
		Qty:       string(payload.Qty),
		Name:      profileName(msg.From),
		Phone:     profileContact(msg.From),
		Note:      note,
		Lang:      lang,
		Channel:   "webapp",
	})
	if err != nil {
		if errors.Is(err, order.ErrProductNotFound) {
			b.replyText(msg.Chat.ID, "Товар не найден. Откройте магазин заново.")
			return
		}
		logger.Error("bot: web app order failed", "chat_id", msg.Chat.ID, "error", err)
		b.replyText(msg.Chat.ID, "Не удалось сохранить заказ, попробуйте ещё раз.")
		return
	}

	if lang == "uz" {
		b.replyText(msg.Chat.ID, fmt.Sprintf("✅ Buyurtma qabul qilindi!\n\n%s\nRaqam: %s", o.ProductName, o.ID))
		return
	}
	b.replyText(msg.Chat.ID, fmt.Sprintf("✅ Заказ принят!\n\n%s\nНомер: %s", o.ProductName, o.ID))
}

func (b *Bot) userLang(msg *incoming) string {
	if msg.From != nil {
		if lang := b.settings.UserLocale(msg.From.ID); lang != "" {
			return lang
		}
	}
	return catalog.DefaultLang
}

func profileName(u *user) string {
	if u == nil {
		return ""
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func profileContact(u *user) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return "@" + u.UserName
	}
	return "id:" + strconv.FormatInt(u.ID, 10)
}

func (b *Bot) replyText(chatID int64, text string) {
	b.reply(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) reply(c tgbotapi.Chattable) {
	if _, err := b.client.Send(c); err != nil {
		logger.Error("bot: reply failed", "error", err)
	}
}
