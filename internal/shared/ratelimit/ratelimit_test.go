package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	keys   []string
	result Result
	err    error
	resets []string
}

func (s *recordingStore) Allow(_ context.Context, key string, _ Config) (Result, error) {
	s.keys = append(s.keys, key)
	return s.result, s.err
}

func (s *recordingStore) Reset(_ context.Context, key string) error {
	s.resets = append(s.resets, key)
	return nil
}

func (s *recordingStore) Close() error { return nil }

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		store  Store
		config Config
		expect string
	}{
		{name: "store required", config: Config{Limit: 1, Window: time.Second}, expect: "ratelimit: store is required"},
		{name: "limit positive", store: &recordingStore{}, config: Config{Window: time.Second}, expect: "ratelimit: limit must be positive"},
		{name: "window positive", store: &recordingStore{}, config: Config{Limit: 1}, expect: "ratelimit: window must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.store, tc.config)
			assert.EqualError(t, err, tc.expect)
		})
	}
}

func TestLimiter_AllowUsesExtractedKey(t *testing.T) {
	store := &recordingStore{result: Result{Allowed: false, RetryAfter: time.Second}}
	var limited []string

	l, err := New(store, Config{
		Limit:        5,
		Window:       time.Minute,
		KeyExtractor: OperatorKeyExtractor("gateway"),
		OnLimited: func(_ context.Context, key string, _ Result) {
			limited = append(limited, key)
		},
	})
	require.NoError(t, err)

	ctx := WithIP(WithOperator(context.Background(), "op-7"), "10.0.0.1")
	result, err := l.Allow(ctx)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, []string{"gateway:operator:op-7"}, store.keys)
	assert.Equal(t, []string{"gateway:operator:op-7"}, limited)

	require.NoError(t, l.Reset(ctx))
	assert.Equal(t, []string{"gateway:operator:op-7"}, store.resets)
}

func TestLimiter_StoreErrorsAreWrapped(t *testing.T) {
	storeErr := errors.New("redis down")
	l, err := New(&recordingStore{err: storeErr}, Config{Limit: 1, Window: time.Second})
	require.NoError(t, err)

	_, err = l.AllowKey(context.Background(), "gnoss:outbound")
	assert.ErrorIs(t, err, storeErr)
	assert.ErrorContains(t, err, "ratelimit: store error")
}

func TestKeyExtractors_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		extractor KeyExtractor
		ctx       context.Context
		expect    string
		expectErr bool
	}{
		{name: "default uses ip", extractor: DefaultKeyExtractor, ctx: WithIP(context.Background(), "1.2.3.4"), expect: "ip:1.2.3.4"},
		{name: "default without ip", extractor: DefaultKeyExtractor, ctx: context.Background(), expect: "default"},
		{name: "operator falls back to ip", extractor: OperatorKeyExtractor("batch"), ctx: WithIP(context.Background(), "1.2.3.4"), expect: "batch:ip:1.2.3.4"},
		{name: "operator without prefix", extractor: OperatorKeyExtractor(""), ctx: WithOperator(context.Background(), "op"), expect: "operator:op"},
		{name: "operator needs identity", extractor: OperatorKeyExtractor("batch"), ctx: context.Background(), expectErr: true},
		{name: "ip extractor", extractor: IPKeyExtractor("login"), ctx: WithIP(context.Background(), "::1"), expect: "login:ip:::1"},
		{name: "ip extractor needs ip", extractor: IPKeyExtractor("login"), ctx: context.Background(), expectErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, err := tc.extractor(tc.ctx)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, key)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	assert.Equal(t, AlgorithmTokenBucket, ParseAlgorithm(""))
	assert.Equal(t, AlgorithmSlidingWindow, ParseAlgorithm(" Sliding_Window "))
	assert.Equal(t, AlgorithmFixedWindow, ParseAlgorithm("fixed_window"))
	assert.Equal(t, AlgorithmTokenBucket, ParseAlgorithm("leaky"))
}

func TestParseScriptResult(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	config := Config{Limit: 10, Window: time.Minute}

	result := parseScriptResult([]interface{}{int64(0), int64(0), int64(1500)}, config, now)
	assert.False(t, result.Allowed)
	assert.Equal(t, 1500*time.Millisecond, result.RetryAfter)
	assert.Equal(t, now.Add(time.Minute), result.ResetAt)

	result = parseScriptResult([]interface{}{int64(1), int64(3), int64(0), int64(2000)}, config, now)
	assert.True(t, result.Allowed)
	assert.Equal(t, int64(3), result.Remaining)
	assert.Equal(t, now.Add(2*time.Second), result.ResetAt)
}
