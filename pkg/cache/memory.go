package cache

import (
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// memoryDriver is an in-process cache. Good enough for a single-node shop;
// not shared across restarts.
type memoryDriver struct {
	mu    sync.RWMutex
	items map[string]entry
}

func newMemoryDriver() *memoryDriver {
	d := &memoryDriver{items: make(map[string]entry)}
	go d.janitor()
	return d
}

func (d *memoryDriver) Get(key string) ([]byte, bool) {
	d.mu.RLock()
	e, ok := d.items[key]
	d.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		d.mu.Lock()
		delete(d.items, key)
		d.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (d *memoryDriver) Set(key string, value []byte, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	d.mu.Lock()
	d.items[key] = e
	d.mu.Unlock()
	return nil
}

func (d *memoryDriver) Delete(key string) error {
	d.mu.Lock()
	delete(d.items, key)
	d.mu.Unlock()
	return nil
}

// janitor evicts expired entries every minute so an idle server does not
// accumulate dead sessions.
func (d *memoryDriver) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		d.mu.Lock()
		for k, e := range d.items {
			if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
				delete(d.items, k)
			}
		}
		d.mu.Unlock()
	}
}

func marshal(v interface{}) ([]byte, error)    { return json.Marshal(v) }
func unmarshal(raw []byte, dest interface{}) bool {
	return json.Unmarshal(raw, dest) == nil
}
