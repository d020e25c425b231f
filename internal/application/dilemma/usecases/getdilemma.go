package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type GetDilemmaQuery struct {
	DilemmaID   string
	ViewerToken string
}

type GetDilemmaUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	logger      logger.Interface
}

func NewGetDilemmaUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	logger logger.Interface,
) *GetDilemmaUseCase {
	return &GetDilemmaUseCase{
		dilemmaRepo: dilemmaRepo,
		logger:      logger,
	}
}

func (uc *GetDilemmaUseCase) Execute(ctx context.Context, query GetDilemmaQuery) (*dto.DilemmaDTO, error) {
	if len(query.DilemmaID) == 0 {
		return nil, errors.NewValidationError("dilemma ID is required")
	}

	d, err := uc.dilemmaRepo.GetByID(ctx, query.DilemmaID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dilemma not found")
	}

	isSupported := false
	if len(query.ViewerToken) > 0 {
		isSupported, err = uc.dilemmaRepo.IsSupportedBy(ctx, query.DilemmaID, query.ViewerToken)
		if err != nil {
			uc.logger.Warnw("failed to look up viewer support state",
				"dilemma_id", query.DilemmaID, "error", err)
			isSupported = false
		}
	}

	return dto.ToDilemmaDTO(d, isSupported), nil
}
