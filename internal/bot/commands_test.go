package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/altindan/internal/catalog"
	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/internal/settings"
)

type fakeClient struct {
	messages  []tgbotapi.MessageConfig
	documents []tgbotapi.DocumentConfig
}

func (f *fakeClient) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	switch v := c.(type) {
	case tgbotapi.MessageConfig:
		f.messages = append(f.messages, v)
	case tgbotapi.DocumentConfig:
		f.documents = append(f.documents, v)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeClient) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.messages)
	return f.messages[len(f.messages)-1].Text
}

func newTestBot(t *testing.T) (*Bot, *fakeClient, *order.Store) {
	t.Helper()
	dir := t.TempDir()

	cat := catalog.NewProvider(dir)
	require.NoError(t, cat.Seed([]catalog.Product{
		{ID: "p1", Name: map[string]string{"ru": "Пельмени", "uz": "Chuchvara"}, Price: 45000},
	}))

	store := order.NewStore(dir)
	st := settings.NewStore(dir)
	client := &fakeClient{}

	b := &Bot{
		client:   client,
		intake:   order.NewIntake(cat, store, nil),
		store:    store,
		settings: st,
	}
	return b, client, store
}

func commandUpdate(c chat, text string) update {
	return update{Message: &incoming{
		Chat: c,
		From: &user{ID: 7, FirstName: "Aziz", UserName: "aziz"},
		Text: text,
	}}
}

func webAppUpdate(data string) update {
	return update{Message: &incoming{
		Chat:       chat{ID: 7, Type: "private"},
		From:       &user{ID: 7, FirstName: "Aziz", UserName: "aziz"},
		WebAppData: &webAppData{Data: data},
	}}
}

func privateChat() chat { return chat{ID: 7, Type: "private"} }
func groupChat() chat   { return chat{ID: -100123, Type: "group"} }

func TestCommandParsing(t *testing.T) {
	cases := []struct {
		text string
		name string
		args string
	}{
		{"/start", "start", ""},
		{"/lang uz", "lang", "uz"},
		{"/setgroup@altindan_bot", "setgroup", ""},
		{"/lang@altindan_bot  ru ", "lang", "ru"},
		{"hello", "", ""},
	}
	for _, c := range cases {
		m := &incoming{Text: c.text}
		name, args := m.command()
		require.Equal(t, c.name, name, "text=%q", c.text)
		require.Equal(t, c.args, args, "text=%q", c.text)
	}
}

func TestSetGroupRegistersGroupChat(t *testing.T) {
	b, client, _ := newTestBot(t)

	b.HandleUpdate(context.Background(), commandUpdate(groupChat(), "/setgroup"))

	id, ok := b.settings.OrderGroup()
	require.True(t, ok)
	require.Equal(t, int64(-100123), id)
	require.Contains(t, client.lastText(t), "✅")
}

func TestSetGroupRejectedInPrivateChat(t *testing.T) {
	b, client, _ := newTestBot(t)

	b.HandleUpdate(context.Background(), commandUpdate(privateChat(), "/setgroup"))

	_, ok := b.settings.OrderGroup()
	require.False(t, ok)
	require.Contains(t, client.lastText(t), "только в группе")
}

func TestSetGroupAcceptsSupergroup(t *testing.T) {
	b, _, _ := newTestBot(t)

	b.HandleUpdate(context.Background(), commandUpdate(chat{ID: -100999, Type: "supergroup"}, "/setgroup"))

	id, ok := b.settings.OrderGroup()
	require.True(t, ok)
	require.Equal(t, int64(-100999), id)
}

func TestLangCommand(t *testing.T) {
	b, client, _ := newTestBot(t)

	b.HandleUpdate(context.Background(), commandUpdate(privateChat(), "/lang uz"))
	require.Equal(t, "uz", b.settings.UserLocale(7))
	require.Contains(t, client.lastText(t), "o'zbekcha")

	b.HandleUpdate(context.Background(), commandUpdate(privateChat(), "/lang de"))
	require.Contains(t, client.lastText(t), "Usage")
	require.Equal(t, "uz", b.settings.UserLocale(7))
}

func TestExportEmptyHistory(t *testing.T) {
	b, client, _ := newTestBot(t)

	b.HandleUpdate(context.Background(), commandUpdate(privateChat(), "/export"))

	require.Empty(t, client.documents)
	require.Contains(t, client.lastText(t), "Заказов пока нет")
}

func TestExportSendsCSVDocument(t *testing.T) {
	b, client, store := newTestBot(t)
	require.NoError(t, store.Append(order.Order{ID: "o1", ProductID: "p1", ProductName: "Пельмени", Price: 45000, Qty: 2}))

	b.HandleUpdate(context.Background(), commandUpdate(privateChat(), "/export"))

	require.Len(t, client.documents, 1)
	file, ok := client.documents[0].File.(tgbotapi.FileBytes)
	require.True(t, ok)
	require.Equal(t, "orders.csv", file.Name)
	require.Contains(t, string(file.Bytes), "o1")
}

func TestReportCommand(t *testing.T) {
	b, client, store := newTestBot(t)
	require.NoError(t, store.Append(order.Order{ID: "o1", Price: 45000, Qty: 2}))

	b.HandleUpdate(context.Background(), commandUpdate(privateChat(), "/report"))

	text := client.lastText(t)
	require.Contains(t, text, "Заказов: 1")
	require.Contains(t, text, "90000")
}

func TestWebAppOrderIsPersisted(t *testing.T) {
	b, client, store := newTestBot(t)

	b.HandleUpdate(context.Background(),
		webAppUpdate(`{"product":"p1","qty":"2","address":"Chilonzor 9","time":"18:00","lang":"uz"}`))

	orders := store.ListAll()
	require.Len(t, orders, 1)

	o := orders[0]
	require.Equal(t, "p1", o.ProductID)
	require.Equal(t, float64(2), o.Qty)
	require.Equal(t, "Chuchvara", o.ProductName)
	require.Equal(t, "Aziz", o.Name)
	require.Equal(t, "@aziz", o.Phone)
	require.Contains(t, o.Note, "Chilonzor 9")
	require.Contains(t, o.Note, "18:00")

	require.Contains(t, client.lastText(t), o.ID)
}

func TestWebAppOrderNumericQty(t *testing.T) {
	b, _, store := newTestBot(t)

	b.HandleUpdate(context.Background(), webAppUpdate(`{"product":"p1","qty":2.5}`))

	orders := store.ListAll()
	require.Len(t, orders, 1)
	require.Equal(t, 2.5, orders[0].Qty)
}

func TestWebAppOrderLenientQty(t *testing.T) {
	b, _, store := newTestBot(t)

	// A garbage qty string must not reject the order; it defaults to 1.
	b.HandleUpdate(context.Background(), webAppUpdate(`{"product":"p1","qty":"abc"}`))

	orders := store.ListAll()
	require.Len(t, orders, 1)
	require.Equal(t, float64(1), orders[0].Qty)
}

func TestWebAppOrderUnknownProduct(t *testing.T) {
	b, client, store := newTestBot(t)

	b.HandleUpdate(context.Background(), webAppUpdate(`{"product":"p404","qty":"1"}`))

	require.Empty(t, store.ListAll())
	require.Contains(t, client.lastText(t), "не найден")
}

func TestWebAppOrderBadPayload(t *testing.T) {
	b, client, store := newTestBot(t)

	b.HandleUpdate(context.Background(), webAppUpdate(`{{{`))

	require.Empty(t, store.ListAll())
	require.NotEmpty(t, client.messages)
}

func TestNonMessageUpdateIsIgnored(t *testing.T) {
	b, client, _ := newTestBot(t)
	b.HandleUpdate(context.Background(), update{})
	require.Empty(t, client.messages)
}
