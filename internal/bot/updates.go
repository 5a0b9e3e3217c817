package bot

import (
	"encoding/json"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// The pinned Bot API client predates Bot API 6.0, so updates are decoded
// into local wire types that carry the Web-App fields the library drops.

type update struct {
	ID      int64     `json:"update_id"`
	Message *incoming `json:"message"`
}

type incoming struct {
	From       *user       `json:"from"`
	Chat       chat        `json:"chat"`
	Text       string      `json:"text"`
	WebAppData *webAppData `json:"web_app_data"`
}

type user struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserName  string `json:"username"`
}

type chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

func (c chat) isGroup() bool { return c.Type == "group" || c.Type == "supergroup" }

type webAppData struct {
	Data string `json:"data"`
}

// command splits "/cmd@bot args" into name and arguments. Returns an empty
// name for plain messages.
func (m *incoming) command() (name, args string) {
	if !strings.HasPrefix(m.Text, "/") {
		return "", ""
	}
	name, args, _ = strings.Cut(m.Text[1:], " ")
	name, _, _ = strings.Cut(name, "@")
	return name, strings.TrimSpace(args)
}

// Outbound Web-App keyboard, serialized into reply_markup by the client.
type webAppInfo struct {
	URL string `json:"url"`
}

type inlineKeyboardButton struct {
	Text   string      `json:"text"`
	WebApp *webAppInfo `json:"web_app,omitempty"`
}

type inlineKeyboardMarkup struct {
	InlineKeyboard [][]inlineKeyboardButton `json:"inline_keyboard"`
}

// pollTimeout is the getUpdates long-poll window, in seconds. Kept under the
// shared HTTP client timeout so a quiet chat does not read as an error.
const pollTimeout = 5

// getUpdates long-polls the Bot API directly and decodes into the local
// update type.
func (b *Bot) getUpdates(offset int64) ([]update, error) {
	params := tgbotapi.Params{}
	params.AddNonZero64("offset", offset)
	params.AddNonZero("timeout", pollTimeout)

	resp, err := b.api.MakeRequest("getUpdates", params)
	if err != nil {
		return nil, err
	}

	var updates []update
	if err := json.Unmarshal(resp.Result, &updates); err != nil {
		return nil, fmt.Errorf("bot: decode updates: %w", err)
	}
	return updates, nil
}
