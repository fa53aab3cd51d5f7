package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
)

// memoryCommander answers the three commands the cache issues from a map.
type memoryCommander struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failGet error
}

func newMemoryCommander() *memoryCommander {
	return &memoryCommander{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCommander) Get(_ context.Context, key string) *redis.StringCmd {
	if m.failGet != nil {
		return redis.NewStringResult("", m.failGet)
	}
	value, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (m *memoryCommander) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	}
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *memoryCommander) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

type ThesaurusCacheRepositorySuite struct {
	suite.Suite

	redis *memoryCommander
	repo  *ThesaurusCacheRepository
}

func (s *ThesaurusCacheRepositorySuite) SetupTest() {
	s.redis = newMemoryCommander()
	s.repo = newThesaurusCache(s.redis, 0)
}

func (s *ThesaurusCacheRepositorySuite) TestRoundTrip() {
	ctx := context.Background()

	_, found, err := s.repo.GetCategories(ctx, "demo")
	require.NoError(s.T(), err)
	assert.False(s.T(), found)

	categories := []domain.ThesaurusCategory{{
		ID:   uuid.New(),
		Name: "Science",
		Children: []domain.ThesaurusCategory{
			{ID: uuid.New(), Name: "Physics"},
		},
	}}
	require.NoError(s.T(), s.repo.SetCategories(ctx, "demo", categories))
	assert.Equal(s.T(), DefaultThesaurusCacheTTL, s.redis.ttls["gnoss:thesaurus:demo"])

	cached, found, err := s.repo.GetCategories(ctx, "demo")
	require.NoError(s.T(), err)
	assert.True(s.T(), found)
	assert.Equal(s.T(), categories, cached)

	require.NoError(s.T(), s.repo.InvalidateCategories(ctx, "demo"))
	_, found, err = s.repo.GetCategories(ctx, "demo")
	require.NoError(s.T(), err)
	assert.False(s.T(), found)
}

func (s *ThesaurusCacheRepositorySuite) TestErrors_TableDriven() {
	redisErr := errors.New("connection refused")

	tests := []struct {
		name      string
		setupMock func()
		assertion func(error)
	}{
		{
			name: "wraps redis errors",
			setupMock: func() {
				s.redis.failGet = redisErr
			},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, redisErr)
				assert.ErrorContains(s.T(), err, "get cached thesaurus failed")
			},
		},
		{
			name: "rejects corrupt payloads",
			setupMock: func() {
				s.redis.values["gnoss:thesaurus:demo"] = "{not json"
			},
			assertion: func(err error) {
				assert.ErrorContains(s.T(), err, "decode cached thesaurus failed")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			_, found, err := s.repo.GetCategories(context.Background(), "demo")
			assert.False(s.T(), found)
			tc.assertion(err)
		})
	}
}

func TestThesaurusCacheRepositorySuite(t *testing.T) {
	suite.Run(t, new(ThesaurusCacheRepositorySuite))
}
