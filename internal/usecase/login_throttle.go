package usecase

import (
	"context"
	"time"

	"project-recommender/internal/pkg/logger"
)

const loginAttemptsKeyPrefix = "login:attempts:"

// AttemptStore is a shared counter with per-key expiry. The Redis adapter in
// infrastructure/cache satisfies it.
type AttemptStore interface {
	Count(ctx context.Context, key string) (int64, error)
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}

// LoginThrottle locks an email after too many failed logins inside a window.
// Store failures never block a login.
type LoginThrottle struct {
	store       AttemptStore
	maxAttempts int64
	window      time.Duration
	log         *logger.Logger
}

func NewLoginThrottle(store AttemptStore, maxAttempts int, window time.Duration, log *logger.Logger) *LoginThrottle {
	if log == nil {
		log = logger.Nop()
	}
	return &LoginThrottle{store: store, maxAttempts: int64(maxAttempts), window: window, log: log}
}

func (t *LoginThrottle) enabled() bool {
	return t != nil && t.store != nil && t.maxAttempts > 0
}

// Locked reports whether email has used up its failed attempts.
func (t *LoginThrottle) Locked(ctx context.Context, email string) bool {
	if !t.enabled() {
		return false
	}
	n, err := t.store.Count(ctx, loginAttemptsKeyPrefix+email)
	if err != nil {
		t.log.Debug("login throttle count failed", "error", err)
		return false
	}
	return n >= t.maxAttempts
}

func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) {
	if !t.enabled() {
		return
	}
	n, err := t.store.Increment(ctx, loginAttemptsKeyPrefix+email, t.window)
	if err != nil {
		t.log.Debug("login throttle increment failed", "error", err)
		return
	}
	if n == t.maxAttempts {
		t.log.Warn("login locked after repeated failures", "email", email, "window", t.window.String())
	}
}

func (t *LoginThrottle) Reset(ctx context.Context, email string) {
	if !t.enabled() {
		return
	}
	if err := t.store.Delete(ctx, loginAttemptsKeyPrefix+email); err != nil {
		t.log.Debug("login throttle reset failed", "error", err)
	}
}
