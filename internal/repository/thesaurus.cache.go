package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
)

const (
	DefaultThesaurusCacheTTL = 10 * time.Minute
	thesaurusCachePrefix     = "gnoss:thesaurus:"
)

// redisCommander is the part of *redis.Client the cache uses.
type redisCommander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ThesaurusCacheRepository keeps the category tree of each community in
// Redis so category resolution does not hit GNOSS once per resource.
type ThesaurusCacheRepository struct {
	client redisCommander
	ttl    time.Duration
}

func NewThesaurusCacheRepository(client *redis.Client, ttl time.Duration) *ThesaurusCacheRepository {
	return newThesaurusCache(client, ttl)
}

func newThesaurusCache(client redisCommander, ttl time.Duration) *ThesaurusCacheRepository {
	if ttl <= 0 {
		ttl = DefaultThesaurusCacheTTL
	}
	return &ThesaurusCacheRepository{client: client, ttl: ttl}
}

// GetCategories reports false on a cache miss.
func (r *ThesaurusCacheRepository) GetCategories(ctx context.Context, community string) ([]domain.ThesaurusCategory, bool, error) {
	payload, err := r.client.Get(ctx, thesaurusCachePrefix+community).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("repository: get cached thesaurus failed: %w", err)
	}

	var categories []domain.ThesaurusCategory
	if err := json.Unmarshal(payload, &categories); err != nil {
		return nil, false, fmt.Errorf("repository: decode cached thesaurus failed: %w", err)
	}
	return categories, true, nil
}

func (r *ThesaurusCacheRepository) SetCategories(ctx context.Context, community string, categories []domain.ThesaurusCategory) error {
	payload, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("repository: encode thesaurus failed: %w", err)
	}

	if err := r.client.Set(ctx, thesaurusCachePrefix+community, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("repository: cache thesaurus failed: %w", err)
	}
	return nil
}

func (r *ThesaurusCacheRepository) InvalidateCategories(ctx context.Context, community string) error {
	if err := r.client.Del(ctx, thesaurusCachePrefix+community).Err(); err != nil {
		return fmt.Errorf("repository: invalidate thesaurus failed: %w", err)
	}
	return nil
}
