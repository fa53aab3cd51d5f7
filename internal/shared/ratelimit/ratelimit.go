// Package ratelimit limits gateway callers and throttles the outbound call
// rate against the GNOSS API. Implementations are safe for concurrent use.
package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Algorithm string

const (
	AlgorithmTokenBucket Algorithm = "token_bucket"

	AlgorithmSlidingWindow Algorithm = "sliding_window"

	// AlgorithmFixedWindow allows a burst at window boundaries.
	AlgorithmFixedWindow Algorithm = "fixed_window"
)

// ParseAlgorithm falls back to AlgorithmTokenBucket for unknown names.
func ParseAlgorithm(name string) Algorithm {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case AlgorithmSlidingWindow:
		return AlgorithmSlidingWindow
	case AlgorithmFixedWindow:
		return AlgorithmFixedWindow
	default:
		return AlgorithmTokenBucket
	}
}

type KeyExtractor func(ctx context.Context) (string, error)

type Result struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time

	// RetryAfter is set when the call was not allowed.
	RetryAfter time.Duration
}

type Config struct {
	Algorithm Algorithm
	Limit     int64
	Window    time.Duration

	// Burst applies to the token bucket. Zero means Limit.
	Burst int64

	// KeyExtractor defaults to DefaultKeyExtractor.
	KeyExtractor KeyExtractor

	OnLimited func(ctx context.Context, key string, result Result)
}

type Store interface {
	Allow(ctx context.Context, key string, config Config) (Result, error)
	Reset(ctx context.Context, key string) error
	Close() error
}

type Limiter interface {
	// Allow consumes a slot for the key extracted from ctx.
	Allow(ctx context.Context) (Result, error)
	AllowKey(ctx context.Context, key string) (Result, error)
	Reset(ctx context.Context) error
	ResetKey(ctx context.Context, key string) error
	Close() error
}

type limiter struct {
	store  Store
	config Config
}

func New(store Store, config Config) (Limiter, error) {
	switch {
	case store == nil:
		return nil, fmt.Errorf("ratelimit: store is required")
	case config.Limit <= 0:
		return nil, fmt.Errorf("ratelimit: limit must be positive")
	case config.Window <= 0:
		return nil, fmt.Errorf("ratelimit: window must be positive")
	}

	if config.Algorithm == "" {
		config.Algorithm = AlgorithmTokenBucket
	}
	if config.Burst <= 0 {
		config.Burst = config.Limit
	}
	if config.KeyExtractor == nil {
		config.KeyExtractor = DefaultKeyExtractor
	}

	return &limiter{store: store, config: config}, nil
}

func (l *limiter) Allow(ctx context.Context) (Result, error) {
	key, err := l.config.KeyExtractor(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: failed to extract key: %w", err)
	}
	return l.AllowKey(ctx, key)
}

func (l *limiter) AllowKey(ctx context.Context, key string) (Result, error) {
	result, err := l.store.Allow(ctx, key, l.config)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: store error: %w", err)
	}

	if !result.Allowed && l.config.OnLimited != nil {
		l.config.OnLimited(ctx, key, result)
	}

	return result, nil
}

func (l *limiter) Reset(ctx context.Context) error {
	key, err := l.config.KeyExtractor(ctx)
	if err != nil {
		return fmt.Errorf("ratelimit: failed to extract key: %w", err)
	}
	return l.ResetKey(ctx, key)
}

func (l *limiter) ResetKey(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}

func (l *limiter) Close() error {
	return l.store.Close()
}

// DefaultKeyExtractor keys on the caller IP, or "default" when none is set.
func DefaultKeyExtractor(ctx context.Context) (string, error) {
	if ip := GetIP(ctx); ip != "" {
		return "ip:" + ip, nil
	}
	return "default", nil
}

// OperatorKeyExtractor keys on the authenticated operator and falls back to
// the caller IP for anonymous requests.
func OperatorKeyExtractor(prefix string) KeyExtractor {
	return func(ctx context.Context) (string, error) {
		var key string
		switch {
		case GetOperator(ctx) != "":
			key = "operator:" + GetOperator(ctx)
		case GetIP(ctx) != "":
			key = "ip:" + GetIP(ctx)
		default:
			return "", fmt.Errorf("ratelimit: neither operator nor ip found in context")
		}
		return joinKeys(prefix, key), nil
	}
}

func IPKeyExtractor(prefix string) KeyExtractor {
	return func(ctx context.Context) (string, error) {
		ip := GetIP(ctx)
		if ip == "" {
			return "", fmt.Errorf("ratelimit: ip not found in context")
		}
		return joinKeys(prefix, "ip:"+ip), nil
	}
}

func joinKeys(parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ":")
}

type contextKey string

const (
	contextKeyIP       contextKey = "ratelimit:ip"
	contextKeyOperator contextKey = "ratelimit:operator"
)

func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKeyIP, ip)
}

func WithOperator(ctx context.Context, operatorID string) context.Context {
	return context.WithValue(ctx, contextKeyOperator, operatorID)
}

func GetIP(ctx context.Context) string {
	ip, _ := ctx.Value(contextKeyIP).(string)
	return ip
}

func GetOperator(ctx context.Context) string {
	operator, _ := ctx.Value(contextKeyOperator).(string)
	return operator
}
