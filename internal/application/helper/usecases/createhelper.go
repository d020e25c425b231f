package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/helper/dto"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type CreateHelperCommand struct {
	ExternalIdentityID string
	DisplayName        string
}

// CreateHelperUseCase provisions a helper profile on first sign-in. The
// profile starts with community role, zero stats and no availability.
type CreateHelperUseCase struct {
	helperRepo helper.HelperRepository
	logger     logger.Interface
}

func NewCreateHelperUseCase(
	helperRepo helper.HelperRepository,
	logger logger.Interface,
) *CreateHelperUseCase {
	return &CreateHelperUseCase{
		helperRepo: helperRepo,
		logger:     logger,
	}
}

func (uc *CreateHelperUseCase) Execute(ctx context.Context, cmd CreateHelperCommand) (*dto.HelperDTO, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.helperRepo.GetByExternalIdentityID(ctx, cmd.ExternalIdentityID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("helper profile already exists for this identity")
	}

	h, err := helper.NewHelper(cmd.ExternalIdentityID, cmd.DisplayName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	helperID, err := id.NewHelperID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate helper ID", err.Error())
	}
	if err := h.SetID(helperID); err != nil {
		return nil, errors.NewInternalError("failed to assign helper ID", err.Error())
	}

	if err := uc.helperRepo.Save(ctx, h); err != nil {
		uc.logger.Errorw("failed to save helper", "external_identity_id", cmd.ExternalIdentityID, "error", err)
		return nil, err
	}

	uc.logger.Infow("helper created", "helper_id", h.ID(), "display_name", h.DisplayName())

	return dto.ToHelperDTO(h), nil
}

func (uc *CreateHelperUseCase) validateCommand(cmd CreateHelperCommand) error {
	if len(cmd.ExternalIdentityID) == 0 {
		return errors.NewValidationError("external identity ID is required")
	}
	if len(cmd.DisplayName) == 0 {
		return errors.NewValidationError("display name is required")
	}
	return nil
}
