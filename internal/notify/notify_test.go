package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/internal/settings"
)

type fakeSender struct {
	chatID int64
	texts  []string
	err    error
}

func (f *fakeSender) SendMessage(chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.chatID = chatID
	f.texts = append(f.texts, text)
	return nil
}

func configuredStore(t *testing.T) *settings.Store {
	t.Helper()
	st := settings.NewStore(t.TempDir())
	require.NoError(t, st.SetOrderGroup(-100123))
	return st
}

func TestNotifySendsToConfiguredGroup(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, configuredStore(t))

	d.Notify(order.Order{ID: "o1", ProductName: "Пельмени", Price: 45000, Qty: 2, Name: "Ольга", Phone: "+998901112233", Lang: "ru"})

	require.Equal(t, int64(-100123), sender.chatID)
	require.Len(t, sender.texts, 1)
	require.Contains(t, sender.texts[0], "Пельмени")
	require.Contains(t, sender.texts[0], "o1")
}

func TestNotifySkipsWhenUnconfigured(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, settings.NewStore(t.TempDir()))

	d.Notify(order.Order{ID: "o1"})

	require.Empty(t, sender.texts)
}

func TestNotifySwallowsSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("telegram is down")}
	d := NewDispatcher(sender, configuredStore(t))

	// Must not panic and must not retry.
	d.Notify(order.Order{ID: "o1"})
	require.Empty(t, sender.texts)
}

func TestMessageLocales(t *testing.T) {
	o := order.Order{
		ID: "o1", ProductName: "Manti", Price: 55000, Qty: 1.5,
		Name: "Aziz", Phone: "@aziz", Note: "Chilonzor",
		CreatedAt: time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
	}

	o.Lang = "uz"
	uz := Message(o)
	require.True(t, strings.HasPrefix(uz, "🛒 Yangi buyurtma!"))
	require.Contains(t, uz, "Izoh: Chilonzor")
	require.Contains(t, uz, "Jami: 82500")
	require.Contains(t, uz, "Vaqt: 2026-03-14 18:00")

	o.Lang = "ru"
	ru := Message(o)
	require.True(t, strings.HasPrefix(ru, "🛒 Новый заказ!"))
	require.Contains(t, ru, "Комментарий: Chilonzor")
	require.Contains(t, ru, "Время: 2026-03-14 18:00")

	// Unknown locales fall back to Russian.
	o.Lang = "en"
	require.True(t, strings.HasPrefix(Message(o), "🛒 Новый заказ!"))
}

func TestMessageOmitsEmptyNote(t *testing.T) {
	msg := Message(order.Order{ID: "o1", ProductName: "Manti", Lang: "ru"})
	require.NotContains(t, msg, "Комментарий")
}
