package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/altindan/config"
)

// redisDriver backs the cache with Redis so sessions survive restarts and
// can be shared by multiple instances behind a load balancer.
type redisDriver struct {
	rdb *redis.Client
	ctx context.Context
}

func newRedisDriver() *redisDriver {
	return &redisDriver{
		rdb: redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
		}),
		ctx: context.Background(),
	}
}

func (d *redisDriver) Get(key string) ([]byte, bool) {
	val, err := d.rdb.Get(d.ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (d *redisDriver) Set(key string, value []byte, ttl time.Duration) error {
	return d.rdb.Set(d.ctx, key, value, ttl).Err()
}

func (d *redisDriver) Delete(key string) error {
	return d.rdb.Del(d.ctx, key).Err()
}
