package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/helper/dto"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

// GetHelperQuery resolves a helper by short ID or, when HelperID is empty,
// by the external identity the auth token carries.
type GetHelperQuery struct {
	HelperID           string
	ExternalIdentityID string
}

type GetHelperUseCase struct {
	helperRepo helper.HelperRepository
	logger     logger.Interface
}

func NewGetHelperUseCase(
	helperRepo helper.HelperRepository,
	logger logger.Interface,
) *GetHelperUseCase {
	return &GetHelperUseCase{
		helperRepo: helperRepo,
		logger:     logger,
	}
}

func (uc *GetHelperUseCase) Execute(ctx context.Context, query GetHelperQuery) (*dto.HelperDTO, error) {
	if len(query.HelperID) == 0 && len(query.ExternalIdentityID) == 0 {
		return nil, errors.NewValidationError("helper ID or external identity ID is required")
	}

	var (
		h   *helper.Helper
		err error
	)
	if len(query.HelperID) > 0 {
		h, err = uc.helperRepo.GetByID(ctx, query.HelperID)
	} else {
		h, err = uc.helperRepo.GetByExternalIdentityID(ctx, query.ExternalIdentityID)
	}
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, errors.NewNotFoundError("helper not found")
	}

	return dto.ToHelperDTO(h), nil
}
