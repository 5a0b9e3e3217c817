// Package cache provides a small key-value cache used by sessions.
//
// Two drivers: in-process memory (default) and Redis (CACHE_DRIVER=redis).
// Values are JSON-encoded so the same code path works on both drivers.
package cache

import (
	"time"

	"github.com/shashiranjanraj/altindan/config"
)

// Driver is the cache storage backend.
type Driver interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

var driver Driver = newMemoryDriver()

// Connect selects the driver from config. Call once at application startup.
func Connect() {
	if config.Get("CACHE_DRIVER", "memory") == "redis" {
		driver = newRedisDriver()
	}
}

// SetDriver swaps the backend (used by tests).
func SetDriver(d Driver) { driver = d }

// Get unmarshals the cached value for key into dest.
// Returns false on miss, expiry, or decode failure.
func Get(key string, dest interface{}) bool {
	raw, ok := driver.Get(key)
	if !ok {
		return false
	}
	return unmarshal(raw, dest)
}

// Set stores value under key for ttl.
func Set(key string, value interface{}, ttl time.Duration) error {
	raw, err := marshal(value)
	if err != nil {
		return err
	}
	return driver.Set(key, raw, ttl)
}

// Delete removes key.
func Delete(key string) error {
	return driver.Delete(key)
}
