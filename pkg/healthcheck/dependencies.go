package healthcheck

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DatabaseCheck pings the database through its underlying connection.
func DatabaseCheck(db *gorm.DB) CheckFunc {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("database handle: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("database ping: %w", err)
		}
		return nil
	}
}

// RedisCheck pings the Redis server.
func RedisCheck(client *redis.Client) CheckFunc {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		return nil
	}
}

// ServiceCheck wraps an arbitrary health method, such as the Ollama
// client's HealthCheck.
func ServiceCheck(probe func(ctx context.Context) error) CheckFunc {
	return func(ctx context.Context) error {
		return probe(ctx)
	}
}
