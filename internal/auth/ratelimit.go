package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/ThellaPrasanthi/complain-system/pkg/util"
)

// LoginLimiter throttles repeated login attempts per username using a Redis
// counter. A nil client disables throttling entirely.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter constructs a limiter.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow records a login attempt and fails once the attempt count for the
// window is exceeded. Redis errors are treated as allow: an unreachable
// cache must not lock users out.
func (l *LoginLimiter) Allow(ctx context.Context, username string) error {
	if l == nil || l.client == nil || l.maxAttempts <= 0 {
		return nil
	}

	key := "login_attempts:" + username
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return nil
	}
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}
	if count > int64(l.maxAttempts) {
		return apperrors.NewRateLimited("too many login attempts, try again later")
	}
	return nil
}

// Reset clears the attempt counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) {
	if l == nil || l.client == nil {
		return
	}
	l.client.Del(ctx, "login_attempts:"+username)
}
