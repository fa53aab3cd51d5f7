package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

var (
	tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local window = tonumber(ARGV[3])
local now = tonumber(ARGV[4])

local data = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(data[1]) or burst
local lastRefill = tonumber(data[2]) or now

local refillRate = limit / window
tokens = math.min(burst, tokens + ((now - lastRefill) * refillRate))

local allowed = 0
local retryAfter = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
else
	retryAfter = (1 - tokens) / refillRate
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill', now)
redis.call('PEXPIRE', key, window * 2)

return {allowed, math.floor(tokens), math.floor(retryAfter)}
`)

	slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

local count = redis.call('ZCARD', key)
local allowed = 0
local remaining = 0
local retryAfter = 0

if count < limit then
	redis.call('ZADD', key, now, now .. '-' .. math.random())
	allowed = 1
	remaining = limit - count - 1
else
	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	if oldest[2] then
		retryAfter = math.max(0, tonumber(oldest[2]) + window - now)
	end
end

redis.call('PEXPIRE', key, window * 2)

return {allowed, remaining, math.floor(retryAfter)}
`)

	fixedWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

local current = tonumber(redis.call('INCR', key))
if current == 1 then
	redis.call('PEXPIRE', key, window)
end

local ttl = redis.call('PTTL', key)
if current <= limit then
	return {1, limit - current, 0, ttl}
end
return {0, 0, ttl, ttl}
`)
)

// RedisStore shares limits across gateway instances and bounds the
// outbound GNOSS call rate of the whole deployment.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

type RedisStoreOption func(*RedisStore)

func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "ratelimit",
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *RedisStore) Allow(ctx context.Context, key string, config Config) (Result, error) {
	if s == nil || s.client == nil {
		return Result{}, errors.New("ratelimit: redis store is not initialized")
	}

	fullKey := s.prefix + ":" + key
	now := s.now()
	windowMs := config.Window.Milliseconds()

	var (
		values []interface{}
		err    error
	)
	switch config.Algorithm {
	case AlgorithmSlidingWindow:
		values, err = slidingWindowScript.Run(ctx, s.client, []string{fullKey}, config.Limit, windowMs, now.UnixMilli()).Slice()
	case AlgorithmFixedWindow:
		values, err = fixedWindowScript.Run(ctx, s.client, []string{fullKey}, config.Limit, windowMs).Slice()
	default:
		values, err = tokenBucketScript.Run(ctx, s.client, []string{fullKey}, config.Limit, config.Burst, windowMs, now.UnixMilli()).Slice()
	}
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: redis script failed: %w", err)
	}

	return parseScriptResult(values, config, now), nil
}

// parseScriptResult reads {allowed, remaining, retry_after_ms[, ttl_ms]}.
func parseScriptResult(values []interface{}, config Config, now time.Time) Result {
	field := func(i int) int64 {
		if i >= len(values) {
			return 0
		}
		return toInt64(values[i])
	}

	resetAt := now.Add(config.Window)
	if len(values) > 3 {
		resetAt = now.Add(time.Duration(field(3)) * time.Millisecond)
	}

	return Result{
		Allowed:    field(0) == 1,
		Limit:      config.Limit,
		Remaining:  field(1),
		ResetAt:    resetAt,
		RetryAfter: time.Duration(field(2)) * time.Millisecond,
	}
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return errors.New("ratelimit: redis store is not initialized")
	}
	return s.client.Del(ctx, s.prefix+":"+key).Err()
}

// Close is a no-op: the client is shared and owned by the caller.
func (s *RedisStore) Close() error {
	return nil
}

func toInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
