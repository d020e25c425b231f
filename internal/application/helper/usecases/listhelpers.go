package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/helper/dto"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/authorization"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"

	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
)

type ListHelpersQuery struct {
	Role        string
	IsAvailable *bool
	Expertise   string
	Page        int
	PageSize    int
}

type ListHelpersResult struct {
	Helpers []*dto.HelperDTO `json:"helpers"`
	Total   int64            `json:"total"`
}

type ListHelpersUseCase struct {
	helperRepo helper.HelperRepository
	logger     logger.Interface
}

func NewListHelpersUseCase(
	helperRepo helper.HelperRepository,
	logger logger.Interface,
) *ListHelpersUseCase {
	return &ListHelpersUseCase{
		helperRepo: helperRepo,
		logger:     logger,
	}
}

func (uc *ListHelpersUseCase) Execute(ctx context.Context, query ListHelpersQuery) (*ListHelpersResult, error) {
	filter := helper.HelperFilter{
		IsAvailable: query.IsAvailable,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}

	if len(query.Role) > 0 {
		role := authorization.Role(query.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role filter")
		}
		filter.Role = &role
	}

	if len(query.Expertise) > 0 {
		if _, err := vo.NewCategory(query.Expertise); err != nil {
			return nil, errors.NewValidationError("invalid expertise filter")
		}
		filter.Expertise = query.Expertise
	}

	helpers, total, err := uc.helperRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list helpers", "error", err)
		return nil, err
	}

	out := make([]*dto.HelperDTO, 0, len(helpers))
	for _, h := range helpers {
		out = append(out, dto.ToHelperDTO(h))
	}

	return &ListHelpersResult{Helpers: out, Total: total}, nil
}
