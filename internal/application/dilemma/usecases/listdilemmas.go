package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type ListDilemmasQuery struct {
	ViewerToken string
	Status      string
	Category    string
	Search      string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

type ListDilemmasResult struct {
	Dilemmas []*dto.DilemmaDTO
	Total    int64
}

type ListDilemmasUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	logger      logger.Interface
}

func NewListDilemmasUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	logger logger.Interface,
) *ListDilemmasUseCase {
	return &ListDilemmasUseCase{
		dilemmaRepo: dilemmaRepo,
		logger:      logger,
	}
}

func (uc *ListDilemmasUseCase) Execute(ctx context.Context, query ListDilemmasQuery) (*ListDilemmasResult, error) {
	filter := dilemma.DilemmaFilter{
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if len(query.Status) > 0 {
		status, err := vo.NewDilemmaStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if len(query.Category) > 0 && query.Category != vo.FilterAll {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError("invalid category filter")
		}
		filter.Category = &category
	}

	dilemmas, total, err := uc.dilemmaRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list dilemmas", "error", err)
		return nil, err
	}

	supported := map[string]bool{}
	if len(query.ViewerToken) > 0 && len(dilemmas) > 0 {
		ids := make([]string, 0, len(dilemmas))
		for _, d := range dilemmas {
			ids = append(ids, d.ID())
		}
		supported, err = uc.dilemmaRepo.SupportedIDs(ctx, query.ViewerToken, ids)
		if err != nil {
			uc.logger.Warnw("failed to look up supported IDs", "error", err)
			supported = map[string]bool{}
		}
	}

	return &ListDilemmasResult{
		Dilemmas: dto.ToDilemmaDTOs(dilemmas, supported),
		Total:    total,
	}, nil
}
