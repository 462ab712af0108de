package cache

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"project-recommender/internal/config"
	"project-recommender/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

var errUnavailable = errors.New("redis unavailable")

// Redis is a counter store that degrades to a no-op when the server cannot
// be reached. Callers see zero counts instead of errors in that state.
type Redis struct {
	client *redis.Client
	log    *logger.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) *Redis {
	if log == nil {
		log = logger.Nop()
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unavailable, login throttling disabled", "addr", client.Options().Addr, "error", err)
		_ = client.Close()
		return &Redis{log: log}
	}

	return &Redis{client: client, log: log}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.log == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.log.Warn("redis command failed, bypassing", "error", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errUnavailable
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

// Count returns the current value of a counter key, or 0 when it is absent.
func (r *Redis) Count(ctx context.Context, key string) (int64, error) {
	if r.isUnavailable() {
		return 0, nil
	}
	n, err := r.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		r.warnUnavailableOnce(err)
		return 0, err
	}
	return n, nil
}

// Increment bumps a counter and starts its expiry window on the first hit.
// Later hits do not extend the window.
func (r *Redis) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	if r.isUnavailable() {
		return 0, nil
	}
	if window <= 0 {
		window = 15 * time.Minute
	}

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		p.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		r.warnUnavailableOnce(err)
		return 0, err
	}
	return incr.Val(), nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}
