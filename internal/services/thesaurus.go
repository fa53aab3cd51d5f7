package services

import (
	"context"
	"log/slog"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

type ThesaurusGateway interface {
	GetThesaurus(ctx context.Context, thesaurusOntologyURL, source string) (string, error)
	MoveNode(ctx context.Context, params vo.MoveNodeParams) error
	DeleteNode(ctx context.Context, params vo.MoveNodeParams) error
	SetNodeParent(ctx context.Context, params vo.ParentNodeParams) error
	ChangeNodeName(ctx context.Context, params vo.ChangeNodeNameParams) error
	InsertNode(ctx context.Context, params vo.InsertNodeParams) error
}

type CategoryCacheInvalidator interface {
	Invalidate(ctx context.Context, community string) error
}

// ThesaurusService edits thesaurus nodes and keeps the category cache
// consistent with the edits.
type ThesaurusService struct {
	gateway ThesaurusGateway
	cache   CategoryCacheInvalidator
	logger  *slog.Logger
}

func NewThesaurusService(gateway ThesaurusGateway, cache CategoryCacheInvalidator, logger *slog.Logger) *ThesaurusService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ThesaurusService{gateway: gateway, cache: cache, logger: logger}
}

func (s *ThesaurusService) GetThesaurus(ctx context.Context, thesaurusOntologyURL, source string) (string, error) {
	return s.gateway.GetThesaurus(ctx, thesaurusOntologyURL, source)
}

func (s *ThesaurusService) MoveNode(ctx context.Context, params vo.MoveNodeParams) error {
	return s.edit(ctx, "move", params.CommunityShortName, s.gateway.MoveNode(ctx, params))
}

func (s *ThesaurusService) DeleteNode(ctx context.Context, params vo.MoveNodeParams) error {
	return s.edit(ctx, "delete", params.CommunityShortName, s.gateway.DeleteNode(ctx, params))
}

func (s *ThesaurusService) SetNodeParent(ctx context.Context, params vo.ParentNodeParams) error {
	return s.edit(ctx, "set parent", params.CommunityShortName, s.gateway.SetNodeParent(ctx, params))
}

func (s *ThesaurusService) ChangeNodeName(ctx context.Context, params vo.ChangeNodeNameParams) error {
	return s.edit(ctx, "rename", params.CommunityShortName, s.gateway.ChangeNodeName(ctx, params))
}

func (s *ThesaurusService) InsertNode(ctx context.Context, params vo.InsertNodeParams) error {
	return s.edit(ctx, "insert", params.CommunityShortName, s.gateway.InsertNode(ctx, params))
}

// edit drops the cached tree once the remote edit went through. An empty
// community targets the configured one.
func (s *ThesaurusService) edit(ctx context.Context, action, community string, err error) error {
	if err != nil {
		s.logger.Error("thesaurus edit failed", "action", action, "community", community, "error", err)
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, community); err != nil {
			s.logger.Warn("thesaurus cache invalidation failed", "community", community, "error", err)
		}
	}
	return nil
}
