package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/helper/dto"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type CompleteTrainingCommand struct {
	HelperID  string
	ActorID   string
	QuizScore int
}

// CompleteTrainingUseCase records a passed training quiz on the helper's
// own profile.
type CompleteTrainingUseCase struct {
	helperRepo helper.HelperRepository
	logger     logger.Interface
}

func NewCompleteTrainingUseCase(
	helperRepo helper.HelperRepository,
	logger logger.Interface,
) *CompleteTrainingUseCase {
	return &CompleteTrainingUseCase{
		helperRepo: helperRepo,
		logger:     logger,
	}
}

func (uc *CompleteTrainingUseCase) Execute(ctx context.Context, cmd CompleteTrainingCommand) (*dto.HelperDTO, error) {
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
		return nil, errors.NewForbiddenError("cannot complete training for another helper")
	}

	if err := h.CompleteTraining(cmd.QuizScore); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.helperRepo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to record training completion", "helper_id", cmd.HelperID, "error", err)
		return nil, err
	}

	uc.logger.Infow("helper training completed", "helper_id", cmd.HelperID, "quiz_score", cmd.QuizScore)

	return dto.ToHelperDTO(h), nil
}
