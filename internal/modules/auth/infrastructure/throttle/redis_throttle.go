package throttle

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login_fail:"

// RedisThrottle counts failed logins per email in Redis. Every Redis error
// fails open: the login proceeds as if no failures were recorded.
type RedisThrottle struct {
	client redis.Cmdable
	limit  int
	window time.Duration
}

// NewRedisThrottle blocks an email once limit failures happened inside window.
func NewRedisThrottle(client redis.Cmdable, limit int, window time.Duration) *RedisThrottle {
	return &RedisThrottle{client: client, limit: limit, window: window}
}

func (t *RedisThrottle) key(email string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// Blocked reports whether email reached the failure limit.
func (t *RedisThrottle) Blocked(ctx context.Context, email string) bool {
	if t.limit <= 0 {
		return false
	}
	n, err := t.client.Get(ctx, t.key(email)).Int()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Ctx(ctx).Warn().Err(err).Msg("login throttle read failed")
		}
		return false
	}
	return n >= t.limit
}

// RecordFailure increments the counter. The window starts at the first failure.
func (t *RedisThrottle) RecordFailure(ctx context.Context, email string) {
	key := t.key(email)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("login throttle increment failed")
		return
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("login throttle expire failed")
		}
	}
}

// Reset clears the counter after a successful login.
func (t *RedisThrottle) Reset(ctx context.Context, email string) {
	if err := t.client.Del(ctx, t.key(email)).Err(); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("login throttle reset failed")
	}
}
