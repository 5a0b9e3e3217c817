package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/altindan/internal/catalog"
	"github.com/shashiranjanraj/altindan/pkg/logger"
	"github.com/shashiranjanraj/altindan/pkg/metrics"
)

// ErrProductNotFound marks a submission whose product identifier does not
// resolve against the catalog. Surfaced to the submitter as a 404-class
// failure; the store is never touched.
var ErrProductNotFound = errors.New("order: product not found")

// Notifier is the hand-off to the notification runtime. Submit must never
// block and never fail the caller; a nil Notifier disables notifications.
type Notifier interface {
	Submit(Order)
}

// Submission is a raw intake request from the web form or the Web App
// payload, before validation.
type Submission struct {
	ProductID string
	Qty       string // raw; lenient parse, defaults to 1
	Name      string
	Phone     string
	Note      string
	Lang      string
	Channel   string // "web" | "webapp", metrics label only
}

// Intake runs the per-request pipeline:
// RECEIVED → VALIDATED → PERSISTED → NOTIFIED (best-effort) → ACKNOWLEDGED.
type Intake struct {
	catalog  *catalog.Provider
	store    *Store
	notifier Notifier

	// now is swappable in tests; orders are stamped at persistence time.
	now func() time.Time
}

// NewIntake wires the pipeline. notifier may be nil (web-only mode).
func NewIntake(c *catalog.Provider, s *Store, n Notifier) *Intake {
	return &Intake{catalog: c, store: s, notifier: n, now: time.Now}
}

// Submit validates, persists, and schedules notification for one submission.
// On success the returned order is already durable; notification outcome
// never affects the result.
func (in *Intake) Submit(ctx context.Context, sub Submission) (Order, error) {
	product, ok := in.catalog.Find(sub.ProductID)
	if !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrProductNotFound, sub.ProductID)
	}

	lang := normalizeLang(sub.Lang)
	name := strings.TrimSpace(sub.Name)
	if name == "" {
		name = "Anonim"
	}

	o := Order{
		ID:          NewID(),
		ProductID:   product.ID,
		ProductName: product.DisplayName(lang),
		Price:       product.Price, // copied, never referenced
		Qty:         parseQty(sub.Qty),
		Name:        name,
		Phone:       strings.TrimSpace(sub.Phone),
		Note:        strings.TrimSpace(sub.Note),
		Lang:        lang,
		CreatedAt:   in.now(),
	}

	if err := in.store.Append(o); err != nil {
		return Order{}, err
	}

	channel := sub.Channel
	if channel == "" {
		channel = "web"
	}
	metrics.OrdersCreated.WithLabelValues(channel).Inc()
	logger.WithCtx(ctx).Info("order persisted",
		"order_id", o.ID, "product_id", o.ProductID, "qty", o.Qty, "channel", channel)

	// Persistence is complete before the hand-off; the request never waits
	// for (or learns about) the notification outcome.
	if in.notifier != nil {
		in.notifier.Submit(o)
	}

	return o, nil
}

// parseQty applies the documented leniency: anything that does not parse as
// a positive number becomes 1. Fractional quantities are allowed for
// weight-based goods.
func parseQty(raw string) float64 {
	qty, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || qty <= 0 {
		return 1
	}
	return qty
}

func normalizeLang(lang string) string {
	switch lang {
	case "uz", "ru":
		return lang
	default:
		return catalog.DefaultLang
	}
}
