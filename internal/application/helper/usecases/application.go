package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/helper/dto"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type SubmitApplicationCommand struct {
	HelperID string
	ActorID  string
}

// SubmitApplicationUseCase moves a helper's certification application to
// pending. Rejected applicants may apply again.
type SubmitApplicationUseCase struct {
	helperRepo helper.HelperRepository
	logger     logger.Interface
}

func NewSubmitApplicationUseCase(
	helperRepo helper.HelperRepository,
	logger logger.Interface,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		helperRepo: helperRepo,
		logger:     logger,
	}
}

func (uc *SubmitApplicationUseCase) Execute(ctx context.Context, cmd SubmitApplicationCommand) (*dto.HelperDTO, error) {
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
		return nil, errors.NewForbiddenError("cannot apply on behalf of another helper")
	}

	if err := h.SubmitApplication(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.helperRepo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to submit application", "helper_id", cmd.HelperID, "error", err)
		return nil, err
	}

	uc.logger.Infow("certification application submitted", "helper_id", cmd.HelperID)

	return dto.ToHelperDTO(h), nil
}

type ReviewApplicationCommand struct {
	HelperID string
	Approve  bool
}

// ReviewApplicationUseCase records an admin decision on a pending
// application. Approval promotes a community helper to certified.
type ReviewApplicationUseCase struct {
	helperRepo helper.HelperRepository
	logger     logger.Interface
}

func NewReviewApplicationUseCase(
	helperRepo helper.HelperRepository,
	logger logger.Interface,
) *ReviewApplicationUseCase {
	return &ReviewApplicationUseCase{
		helperRepo: helperRepo,
		logger:     logger,
	}
}

func (uc *ReviewApplicationUseCase) Execute(ctx context.Context, cmd ReviewApplicationCommand) (*dto.HelperDTO, error) {
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

	if err := h.ReviewApplication(cmd.Approve); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.helperRepo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to record application decision", "helper_id", cmd.HelperID, "error", err)
		return nil, err
	}

	uc.logger.Infow("certification application reviewed",
		"helper_id", cmd.HelperID,
		"approved", cmd.Approve,
	)

	return dto.ToHelperDTO(h), nil
}
