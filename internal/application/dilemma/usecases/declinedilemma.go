package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type DeclineDilemmaCommand struct {
	DilemmaID string
	HelperID  string
}

type DeclineDilemmaUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	helperRepo  helper.HelperRepository
	logger      logger.Interface
}

func NewDeclineDilemmaUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	helperRepo helper.HelperRepository,
	logger logger.Interface,
) *DeclineDilemmaUseCase {
	return &DeclineDilemmaUseCase{
		dilemmaRepo: dilemmaRepo,
		helperRepo:  helperRepo,
		logger:      logger,
	}
}

func (uc *DeclineDilemmaUseCase) Execute(ctx context.Context, cmd DeclineDilemmaCommand) (*dto.DilemmaDTO, error) {
	uc.logger.Infow("executing decline dilemma use case",
		"dilemma_id", cmd.DilemmaID, "helper_id", cmd.HelperID)

	if len(cmd.DilemmaID) == 0 {
		return nil, errors.NewValidationError("dilemma ID is required")
	}
	if len(cmd.HelperID) == 0 {
		return nil, errors.NewValidationError("helper ID is required")
	}

	d, err := uc.dilemmaRepo.GetByID(ctx, cmd.DilemmaID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dilemma not found")
	}

	// declining an already active dilemma is a no-op
	if d.Status().IsActive() {
		return dto.ToDilemmaDTO(d, false), nil
	}

	if !d.Status().IsDirectRequest() {
		return nil, errors.NewConflictError("only direct requests can be declined")
	}

	decliningHelper, err := resolveActingHelper(ctx, uc.helperRepo, cmd.HelperID)
	if err != nil {
		return nil, err
	}
	if decliningHelper == nil {
		return nil, errors.NewNotFoundError("helper not found")
	}
	if d.RequestedHelperID() != nil && *d.RequestedHelperID() != decliningHelper.ID() {
		return nil, errors.NewForbiddenError("only the requested helper may decline")
	}

	if err := d.Decline(decliningHelper.ID()); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.dilemmaRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to persist decline", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, err
	}

	uc.logger.Infow("direct request declined", "dilemma_id", d.ID(), "helper_id", cmd.HelperID)

	return dto.ToDilemmaDTO(d, false), nil
}
