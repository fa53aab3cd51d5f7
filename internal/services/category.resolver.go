package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

const (
	hierarchySeparator   = "|"
	multiLanguageMarker  = "|||"
	languageSuffixMarker = "@"
)

type CategorySource interface {
	GetCategories(ctx context.Context, community string) ([]domain.ThesaurusCategory, error)
}

type CategoryCacheRepository interface {
	GetCategories(ctx context.Context, community string) ([]domain.ThesaurusCategory, bool, error)
	SetCategories(ctx context.Context, community string, categories []domain.ThesaurusCategory) error
	InvalidateCategories(ctx context.Context, community string) error
}

// CategoryResolver maps category names to the ids of a community thesaurus.
type CategoryResolver struct {
	source    CategorySource
	cache     CategoryCacheRepository
	community string
	logger    *slog.Logger
	group     singleflight.Group
}

// NewCategoryResolver accepts a nil cache; categories are then fetched on
// every call.
func NewCategoryResolver(source CategorySource, cache CategoryCacheRepository, creds domain.Credentials, logger *slog.Logger) *CategoryResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryResolver{
		source:    source,
		cache:     cache,
		community: creds.CommunityShortName,
		logger:    logger,
	}
}

// ResolveCategoryIDs returns one id per distinct name. With hierarchical set,
// a name is a "|" separated path from a root category. Any unknown name fails
// the whole call with *vo.CategoryResolutionError.
func (r *CategoryResolver) ResolveCategoryIDs(ctx context.Context, names []string, hierarchical bool, community string) ([]uuid.UUID, error) {
	if len(names) == 0 {
		return nil, nil
	}

	community = r.communityOrDefault(community)
	if community == "" {
		return nil, vo.NewInvalidArgumentError("community_short_name", "no community given and none configured")
	}

	categories, err := r.Categories(ctx, community, false)
	if err != nil {
		return nil, err
	}

	if hierarchical {
		return resolveHierarchical(categories, names, community)
	}
	return resolveFlat(categories, names, community)
}

// Categories returns the thesaurus tree of community. Concurrent misses for
// the same community share one remote call.
func (r *CategoryResolver) Categories(ctx context.Context, community string, bypassCache bool) ([]domain.ThesaurusCategory, error) {
	community = r.communityOrDefault(community)

	if r.cache != nil && !bypassCache {
		cached, found, err := r.cache.GetCategories(ctx, community)
		if err != nil {
			r.logger.Warn("thesaurus cache read failed", "community", community, "error", err)
		} else if found {
			return cached, nil
		}
	}

	value, err, _ := r.group.Do(community, func() (interface{}, error) {
		categories, err := r.source.GetCategories(ctx, community)
		if err != nil {
			return nil, fmt.Errorf("service: failed to fetch categories of %q: %w", community, err)
		}

		if r.cache != nil {
			if err := r.cache.SetCategories(ctx, community, categories); err != nil {
				r.logger.Warn("thesaurus cache write failed", "community", community, "error", err)
			}
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.ThesaurusCategory), nil
}

// Invalidate drops the cached tree; thesaurus edits call it.
func (r *CategoryResolver) Invalidate(ctx context.Context, community string) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.InvalidateCategories(ctx, r.communityOrDefault(community))
}

func (r *CategoryResolver) communityOrDefault(community string) string {
	if community = strings.TrimSpace(community); community != "" {
		return community
	}
	return r.community
}

func resolveHierarchical(roots []domain.ThesaurusCategory, names []string, community string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	seen := make(map[uuid.UUID]struct{}, len(names))
	var missing []string

	for _, name := range names {
		level := roots
		var found *domain.ThesaurusCategory

		for _, segment := range strings.Split(name, hierarchySeparator) {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}

			found = nil
			for i := range level {
				if categoryNameMatches(level[i].Name, segment) {
					found = &level[i]
					break
				}
			}
			if found == nil {
				break
			}
			level = found.Children
		}

		if found == nil {
			missing = append(missing, name)
			continue
		}
		if _, dup := seen[found.ID]; !dup {
			seen[found.ID] = struct{}{}
			ids = append(ids, found.ID)
		}
	}

	if len(missing) > 0 {
		return nil, vo.NewCategoryResolutionError(community, missing...)
	}
	return ids, nil
}

// resolveFlat matches names anywhere in the tree.
func resolveFlat(roots []domain.ThesaurusCategory, names []string, community string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	seen := make(map[uuid.UUID]struct{}, len(names))
	var missing []string

	for _, name := range names {
		target := strings.TrimSpace(name)
		category, ok := findCategory(roots, target)
		if !ok {
			missing = append(missing, name)
			continue
		}
		if _, dup := seen[category.ID]; !dup {
			seen[category.ID] = struct{}{}
			ids = append(ids, category.ID)
		}
	}

	if len(missing) > 0 {
		return nil, vo.NewCategoryResolutionError(community, missing...)
	}
	return ids, nil
}

func findCategory(level []domain.ThesaurusCategory, name string) (domain.ThesaurusCategory, bool) {
	for _, category := range level {
		if categoryNameMatches(category.Name, name) {
			return category, true
		}
		if child, ok := findCategory(category.Children, name); ok {
			return child, true
		}
	}
	return domain.ThesaurusCategory{}, false
}

// categoryNameMatches compares name against a thesaurus name. Multi-language
// names ("name@lang|||name@lang") match on any variant without its language.
func categoryNameMatches(thesaurusName, name string) bool {
	if !strings.Contains(thesaurusName, multiLanguageMarker) {
		return thesaurusName == name
	}

	for _, variant := range strings.Split(thesaurusName, multiLanguageMarker) {
		text := variant
		if at := strings.LastIndex(variant, languageSuffixMarker); at >= 0 {
			text = variant[:at]
		}
		if text == name {
			return true
		}
	}
	return false
}
