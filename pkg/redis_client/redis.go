package redis_client

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/stopboard/stopboard/pkg/config"
)

var Client *redis.Client

// Connect opens the shared Redis client. It is a no-op returning false when no
// address is configured.
func Connect(ctx context.Context, redisConfig config.RedisConfig) (bool, error) {
	if redisConfig.Address == "" {
		return false, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Address,
		Password: redisConfig.Password,
		DB:       redisConfig.Database,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return false, err
	}

	Client = client

	return true, nil
}
