package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/ratelimit"
)

const (
	DefaultMaxLoginAttempts = 5
	DefaultLoginCooldown    = 15 * time.Minute

	loginUserKeyPrefix = "admin:login:user:"
	loginIPKeyPrefix   = "admin:login:ip:"
)

type LoginLimiterConfig struct {
	MaxAttempts            int
	Cooldown               time.Duration
	EnableUsernameThrottle bool
	EnableIPThrottle       bool
}

// loginLimiter counts failed logins per username and per client ip in fixed windows.
type loginLimiter struct {
	client redis.UniversalClient
	config LoginLimiterConfig
}

func NewLoginLimiter(client redis.UniversalClient, config LoginLimiterConfig) ratelimit.LoginLimiter {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultMaxLoginAttempts
	}
	if config.Cooldown <= 0 {
		config.Cooldown = DefaultLoginCooldown
	}

	return loginLimiter{
		client: client,
		config: config,
	}
}

func (l loginLimiter) Check(ctx context.Context, username, clientIP string) (bool, error) {
	for _, key := range l.keys(username, clientIP) {
		count, err := l.client.Get(ctx, key).Int64()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("get %s: %w", key, err)
		}
		if count >= int64(l.config.MaxAttempts) {
			return false, nil
		}
	}

	return true, nil
}

func (l loginLimiter) Fail(ctx context.Context, username, clientIP string) error {
	for _, key := range l.keys(username, clientIP) {
		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("incr %s: %w", key, err)
		}
		if count != 1 {
			continue
		}

		err = l.client.Expire(ctx, key, l.config.Cooldown).Err()
		if err != nil {
			return fmt.Errorf("expire %s: %w", key, err)
		}
	}

	return nil
}

func (l loginLimiter) Reset(ctx context.Context, username, clientIP string) error {
	keys := l.keys(username, clientIP)
	if len(keys) == 0 {
		return nil
	}

	err := l.client.Del(ctx, keys...).Err()
	if err != nil {
		return fmt.Errorf("del %v: %w", keys, err)
	}

	return nil
}

func (l loginLimiter) keys(username, clientIP string) []string {
	keys := make([]string, 0, 2)
	if l.config.EnableUsernameThrottle {
		keys = append(keys, loginUserKeyPrefix+username)
	}
	if l.config.EnableIPThrottle && clientIP != "" {
		keys = append(keys, loginIPKeyPrefix+clientIP)
	}

	return keys
}
