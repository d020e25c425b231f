package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/application/feed"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/domain/moderation"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type GetCommunityFeedQuery struct {
	ViewerToken string
	Category    string
	Sort        string
	Search      string
	Page        int
}

type GetCommunityFeedResult struct {
	Dilemmas []*dto.DilemmaDTO `json:"dilemmas"`
	Total    int               `json:"total"`
	HasMore  bool              `json:"has_more"`
}

// GetCommunityFeedUseCase composes the public community feed for one viewer.
type GetCommunityFeedUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	blockRepo   moderation.BlockRepository
	logger      logger.Interface
}

func NewGetCommunityFeedUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	blockRepo moderation.BlockRepository,
	logger logger.Interface,
) *GetCommunityFeedUseCase {
	return &GetCommunityFeedUseCase{
		dilemmaRepo: dilemmaRepo,
		blockRepo:   blockRepo,
		logger:      logger,
	}
}

func (uc *GetCommunityFeedUseCase) Execute(ctx context.Context, query GetCommunityFeedQuery) (*GetCommunityFeedResult, error) {
	if len(query.Category) > 0 && query.Category != vo.FilterAll {
		if _, err := vo.NewCategory(query.Category); err != nil {
			return nil, errors.NewValidationError("invalid category filter")
		}
	}

	blocked := map[string]bool{}
	if len(query.ViewerToken) > 0 {
		ids, err := uc.blockRepo.GetBlockedIDs(ctx, query.ViewerToken)
		if err != nil {
			// an unavailable block list widens the feed, it never breaks it
			uc.logger.Warnw("failed to load blocked users", "viewer_token", query.ViewerToken, "error", err)
		}
		for _, id := range ids {
			blocked[id] = true
		}
	}

	dilemmas, _, err := uc.dilemmaRepo.List(ctx, dilemma.DilemmaFilter{})
	if err != nil {
		uc.logger.Errorw("failed to load dilemmas for community feed", "error", err)
		return nil, err
	}

	page := feed.ProjectCommunity(dilemmas, feed.ViewContext{
		ViewerToken:    query.ViewerToken,
		Category:       query.Category,
		Sort:           feed.NewSortOption(query.Sort),
		Search:         query.Search,
		Page:           query.Page,
		BlockedUserIDs: blocked,
	})

	supported := map[string]bool{}
	if len(query.ViewerToken) > 0 && len(page.Items) > 0 {
		ids := make([]string, 0, len(page.Items))
		for _, d := range page.Items {
			ids = append(ids, d.ID())
		}
		supported, err = uc.dilemmaRepo.SupportedIDs(ctx, query.ViewerToken, ids)
		if err != nil {
			uc.logger.Warnw("failed to look up supported IDs", "error", err)
			supported = map[string]bool{}
		}
	}

	return &GetCommunityFeedResult{
		Dilemmas: dto.ToDilemmaDTOs(page.Items, supported),
		Total:    page.Total,
		HasMore:  page.HasMore,
	}, nil
}
