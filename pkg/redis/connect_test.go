package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventbridge/pkg/redis"
)

func TestConnectValidation(t *testing.T) {
	t.Parallel()

	t.Run("empty connection URL", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{
			RetryAttempts:  1,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: time.Second,
		})
		require.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("malformed connection URL", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "not-a-redis-url",
			RetryAttempts:  1,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: time.Second,
		})
		require.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("unreachable server exhausts retries", func(t *testing.T) {
		t.Parallel()

		// Port 1 is reserved and nothing listens there; each ping fails fast.
		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		})
		require.ErrorIs(t, err, redis.ErrRedisNotReady)
	})
}
