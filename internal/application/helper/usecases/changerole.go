package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/helper/dto"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/authorization"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type ChangeRoleCommand struct {
	HelperID string
	Role     string
}

// ChangeRoleUseCase escalates or demotes a helper's role. The administer
// capability is enforced at the transport layer.
type ChangeRoleUseCase struct {
	helperRepo helper.HelperRepository
	logger     logger.Interface
}

func NewChangeRoleUseCase(
	helperRepo helper.HelperRepository,
	logger logger.Interface,
) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		helperRepo: helperRepo,
		logger:     logger,
	}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*dto.HelperDTO, error) {
	if len(cmd.HelperID) == 0 {
		return nil, errors.NewValidationError("helper ID is required")
	}

	role := authorization.Role(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role: " + cmd.Role)
	}

	h, err := uc.helperRepo.GetByID(ctx, cmd.HelperID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, errors.NewNotFoundError("helper not found")
	}

	previous := h.Role()
	if err := h.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.helperRepo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to change helper role", "helper_id", cmd.HelperID, "error", err)
		return nil, err
	}

	uc.logger.Infow("helper role changed",
		"helper_id", cmd.HelperID,
		"previous_role", previous.String(),
		"new_role", role.String(),
	)

	return dto.ToHelperDTO(h), nil
}
