package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/helper/dto"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type SetAvailabilityCommand struct {
	HelperID    string
	ActorID     string
	IsAvailable bool
}

// SetAvailabilityUseCase flips a helper's availability and mirrors it into
// the presence cache. The database is the source of truth; a cache write
// failure only degrades the online count.
type SetAvailabilityUseCase struct {
	helperRepo helper.HelperRepository
	presence   PresenceCache
	logger     logger.Interface
}

func NewSetAvailabilityUseCase(
	helperRepo helper.HelperRepository,
	presence PresenceCache,
	logger logger.Interface,
) *SetAvailabilityUseCase {
	return &SetAvailabilityUseCase{
		helperRepo: helperRepo,
		presence:   presence,
		logger:     logger,
	}
}

func (uc *SetAvailabilityUseCase) Execute(ctx context.Context, cmd SetAvailabilityCommand) (*dto.HelperDTO, error) {
	if len(cmd.HelperID) == 0 {
		return nil, errors.NewValidationError("helper ID is required")
	}

	h, err := uc.helperRepo.GetByID(ctx, cmd.HelperID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, errors.NewNotFoundError("helper not found")
	}
	if h.ExternalIdentityID() != cmd.ActorID && h.ID() != cmd.ActorID {
		return nil, errors.NewForbiddenError("cannot change another helper's availability")
	}

	h.SetAvailability(cmd.IsAvailable)

	if err := uc.helperRepo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to update helper availability", "helper_id", cmd.HelperID, "error", err)
		return nil, err
	}

	if err := uc.presence.SetAvailable(ctx, h.ID(), cmd.IsAvailable); err != nil {
		uc.logger.Warnw("failed to mirror availability to presence cache",
			"helper_id", cmd.HelperID,
			"error", err,
		)
	}

	uc.logger.Debugw("helper availability changed", "helper_id", cmd.HelperID, "is_available", cmd.IsAvailable)

	return dto.ToHelperDTO(h), nil
}
