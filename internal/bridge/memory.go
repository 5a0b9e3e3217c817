package bridge

import (
	"context"
	"errors"
)

// memoryDriver is a buffered in-process channel. The default when the web
// server and the bot share one process.
type memoryDriver struct {
	messages chan []byte
}

func newMemoryDriver() *memoryDriver {
	return &memoryDriver{messages: make(chan []byte, 1000)}
}

// Push never blocks; a full buffer drops the message, which costs one
// notification for an order that is already on disk.
func (d *memoryDriver) Push(payload []byte) error {
	select {
	case d.messages <- payload:
		return nil
	default:
		return errors.New("bridge: memory buffer full")
	}
}

func (d *memoryDriver) Pop(ctx context.Context) ([]byte, error) {
	select {
	case payload := <-d.messages:
		return payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
