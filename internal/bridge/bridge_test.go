package bridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/altindan/internal/order"
)

func TestSubmitConsumeRoundtrip(t *testing.T) {
	b := New(newMemoryDriver())

	submitted := order.Order{ID: "o1", ProductID: "p1", ProductName: "Пельмени", Price: 45000, Qty: 2}
	b.Submit(submitted)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	received := make(chan order.Order, 1)
	go b.Consume(ctx, func(o order.Order) {
		received <- o
		cancel()
	})

	select {
	case o := <-received:
		require.Equal(t, submitted.ID, o.ID)
		require.Equal(t, submitted.Price, o.Price)
	case <-ctx.Done():
		t.Fatal("order never reached the consumer")
	}
}

func TestSubmitNeverBlocks(t *testing.T) {
	d := &memoryDriver{messages: make(chan []byte, 2)}
	b := New(d)

	done := make(chan struct{})
	go func() {
		// Third submit overflows the buffer; it must drop, not hang.
		for i := 0; i < 3; i++ {
			b.Submit(order.Order{ID: "o"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a full buffer")
	}
	require.Len(t, d.messages, 2)
}

func TestConsumeSkipsUndecodableMessages(t *testing.T) {
	d := newMemoryDriver()
	b := New(d)

	require.NoError(t, d.Push([]byte("not json")))
	b.Submit(order.Order{ID: "o-good"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	received := make(chan order.Order, 1)
	go b.Consume(ctx, func(o order.Order) {
		received <- o
		cancel()
	})

	select {
	case o := <-received:
		require.Equal(t, "o-good", o.ID)
	case <-ctx.Done():
		t.Fatal("consumer never got past the bad message")
	}
}

// flakyDriver fails a fixed number of pops before delegating to the real
// driver.
type flakyDriver struct {
	inner    Driver
	failures int
}

func (d *flakyDriver) Push(payload []byte) error { return d.inner.Push(payload) }

func (d *flakyDriver) Pop(ctx context.Context) ([]byte, error) {
	if d.failures > 0 {
		d.failures--
		return nil, errors.New("transport unavailable")
	}
	return d.inner.Pop(ctx)
}

func TestConsumeRecoversFromPopErrors(t *testing.T) {
	old := popRetryDelay
	popRetryDelay = time.Millisecond
	defer func() { popRetryDelay = old }()

	d := &flakyDriver{inner: newMemoryDriver(), failures: 3}
	b := New(d)
	b.Submit(order.Order{ID: "o1"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	received := make(chan order.Order, 1)
	go b.Consume(ctx, func(o order.Order) {
		received <- o
		cancel()
	})

	select {
	case o := <-received:
		require.Equal(t, "o1", o.ID)
		require.Zero(t, d.failures)
	case <-ctx.Done():
		t.Fatal("consumer never recovered from pop errors")
	}
}

func TestConsumeStopsOnCancel(t *testing.T) {
	b := New(newMemoryDriver())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		b.Consume(ctx, func(order.Order) {})
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Consume did not stop on cancel")
	}
}
