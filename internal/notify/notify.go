// Package notify turns persisted orders into Telegram group messages.
// Delivery is strictly best-effort: every failure is logged and swallowed,
// and an order is attempted at most once.
package notify

import (
	"fmt"
	"strings"

	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/internal/settings"
	"github.com/shashiranjanraj/altindan/pkg/logger"
	"github.com/shashiranjanraj/altindan/pkg/metrics"
)

// Sender sends one text message to a chat. Implemented by the Telegram
// client; tests substitute a fake.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Dispatcher resolves the destination group and formats order messages.
type Dispatcher struct {
	sender   Sender
	settings *settings.Store
}

// NewDispatcher wires the dispatcher. Destination resolution goes through
// the settings store so /setgroup takes effect without a restart.
func NewDispatcher(sender Sender, st *settings.Store) *Dispatcher {
	return &Dispatcher{sender: sender, settings: st}
}

// Notify sends the group message for one order. Never returns an error:
// an unconfigured group is a logged skip, a transport failure a logged
// failure, and neither is retried.
func (d *Dispatcher) Notify(o order.Order) {
	chatID, ok := d.settings.OrderGroup()
	if !ok {
		metrics.NotificationsSent.WithLabelValues("skipped").Inc()
		logger.Warn("notify: no order group configured, skipping", "order_id", o.ID)
		return
	}

	if err := d.sender.SendMessage(chatID, Message(o)); err != nil {
		metrics.NotificationsSent.WithLabelValues("failed").Inc()
		logger.Error("notify: send failed", "order_id", o.ID, "chat_id", chatID, "error", err)
		return
	}

	metrics.NotificationsSent.WithLabelValues("sent").Inc()
	logger.Info("notify: order announced", "order_id", o.ID, "chat_id", chatID)
}

// Message renders the group announcement in the order's language.
func Message(o order.Order) string {
	var b strings.Builder
	switch o.Lang {
	case "uz":
		b.WriteString("🛒 Yangi buyurtma!\n\n")
		fmt.Fprintf(&b, "Mahsulot: %s\n", o.ProductName)
		fmt.Fprintf(&b, "Miqdor: %s\n", trimFloat(o.Qty))
		fmt.Fprintf(&b, "Narx: %s\n", trimFloat(o.Price))
		fmt.Fprintf(&b, "Jami: %s\n\n", trimFloat(o.Total()))
		fmt.Fprintf(&b, "Mijoz: %s\n", o.Name)
		fmt.Fprintf(&b, "Telefon: %s\n", o.Phone)
		if o.Note != "" {
			fmt.Fprintf(&b, "Izoh: %s\n", o.Note)
		}
		fmt.Fprintf(&b, "Vaqt: %s\n", o.CreatedAt.Format("2006-01-02 15:04"))
	default:
		b.WriteString("🛒 Новый заказ!\n\n")
		fmt.Fprintf(&b, "Товар: %s\n", o.ProductName)
		fmt.Fprintf(&b, "Количество: %s\n", trimFloat(o.Qty))
		fmt.Fprintf(&b, "Цена: %s\n", trimFloat(o.Price))
		fmt.Fprintf(&b, "Сумма: %s\n\n", trimFloat(o.Total()))
		fmt.Fprintf(&b, "Клиент: %s\n", o.Name)
		fmt.Fprintf(&b, "Телефон: %s\n", o.Phone)
		if o.Note != "" {
			fmt.Fprintf(&b, "Комментарий: %s\n", o.Note)
		}
		fmt.Fprintf(&b, "Время: %s\n", o.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "\n#%s", o.ID)
	return b.String()
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
