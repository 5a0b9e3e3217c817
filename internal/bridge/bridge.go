// Package bridge carries persisted orders from the HTTP request path to the
// notification runtime. Hand-off is fire-and-forget: the order is already on
// disk when it enters the bridge, so a dropped message costs at most one
// notification, never an order.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shashiranjanraj/altindan/config"
	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/pkg/logger"
)

// Driver is the transport under the bridge. Push must not block the caller;
// Pop blocks until a message arrives or ctx is cancelled.
type Driver interface {
	Push(payload []byte) error
	Pop(ctx context.Context) ([]byte, error)
}

// Bridge is the producer/consumer pair around a Driver.
type Bridge struct {
	driver Driver
}

// New builds a bridge over an explicit driver.
func New(driver Driver) *Bridge {
	return &Bridge{driver: driver}
}

// Connect picks the driver from QUEUE_DRIVER: an in-process channel by
// default, redis when both runtimes may live in separate processes.
func Connect() *Bridge {
	switch config.QueueDriver() {
	case "redis":
		return New(newRedisDriver())
	default:
		return New(newMemoryDriver())
	}
}

// Submit hands one order to the notification side. Never blocks and never
// fails the caller; transport trouble is logged and the order stays durable.
func (b *Bridge) Submit(o order.Order) {
	payload, err := json.Marshal(o)
	if err != nil {
		logger.Error("bridge: encode order", "order_id", o.ID, "error", err)
		return
	}
	if err := b.driver.Push(payload); err != nil {
		logger.Error("bridge: submit dropped", "order_id", o.ID, "error", err)
	}
}

// popRetryDelay paces the consumer when the driver keeps failing (redis
// down), instead of spinning on the error.
var popRetryDelay = time.Second

// Consume delivers orders to fn until ctx is cancelled. Undecodable messages
// are logged and skipped.
func (b *Bridge) Consume(ctx context.Context, fn func(order.Order)) {
	for {
		payload, err := b.driver.Pop(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			logger.Error("bridge: pop", "error", err)
			select {
			case <-time.After(popRetryDelay):
			case <-ctx.Done():
				return
			}
			continue
		}

		var o order.Order
		if err := json.Unmarshal(payload, &o); err != nil {
			logger.Error("bridge: decode order", "error", err)
			continue
		}
		fn(o)
	}
}
