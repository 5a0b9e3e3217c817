package bridge

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/altindan/config"
)

const redisKey = "altindan:orders"

// redisDriver backs the bridge with a redis list, for deployments that run
// the web server and the bot as separate processes.
type redisDriver struct {
	client *redis.Client
}

func newRedisDriver() *redisDriver {
	return &redisDriver{
		client: redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
		}),
	}
}

func (d *redisDriver) Push(payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return d.client.LPush(ctx, redisKey, payload).Err()
}

func (d *redisDriver) Pop(ctx context.Context) ([]byte, error) {
	for {
		res, err := d.client.BRPop(ctx, 5*time.Second, redisKey).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		// BRPop returns [key, value].
		return []byte(res[1]), nil
	}
}
