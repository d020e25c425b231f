package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/application/feed"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type GetForYouFeedQuery struct {
	ViewerToken string
}

type GetForYouFeedResult struct {
	Dilemmas []*dto.DilemmaDTO `json:"dilemmas"`
}

// GetForYouFeedUseCase composes the personalized feed from the viewer's own
// post history.
type GetForYouFeedUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	logger      logger.Interface
}

func NewGetForYouFeedUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	logger logger.Interface,
) *GetForYouFeedUseCase {
	return &GetForYouFeedUseCase{
		dilemmaRepo: dilemmaRepo,
		logger:      logger,
	}
}

func (uc *GetForYouFeedUseCase) Execute(ctx context.Context, query GetForYouFeedQuery) (*GetForYouFeedResult, error) {
	if len(query.ViewerToken) == 0 {
		return nil, errors.NewValidationError("viewer token is required")
	}

	history, err := uc.dilemmaRepo.GetByAuthorToken(ctx, query.ViewerToken)
	if err != nil {
		uc.logger.Errorw("failed to load viewer post history", "viewer_token", query.ViewerToken, "error", err)
		return nil, err
	}

	dilemmas, _, err := uc.dilemmaRepo.List(ctx, dilemma.DilemmaFilter{})
	if err != nil {
		uc.logger.Errorw("failed to load dilemmas for for-you feed", "error", err)
		return nil, err
	}

	items := feed.ProjectForYou(dilemmas, query.ViewerToken, history)

	supported := map[string]bool{}
	if len(items) > 0 {
		ids := make([]string, 0, len(items))
		for _, d := range items {
			ids = append(ids, d.ID())
		}
		supported, err = uc.dilemmaRepo.SupportedIDs(ctx, query.ViewerToken, ids)
		if err != nil {
			uc.logger.Warnw("failed to look up supported IDs", "error", err)
			supported = map[string]bool{}
		}
	}

	return &GetForYouFeedResult{
		Dilemmas: dto.ToDilemmaDTOs(items, supported),
	}, nil
}
