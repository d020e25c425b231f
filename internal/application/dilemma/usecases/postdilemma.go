package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type PostDilemmaCommand struct {
	UserToken string
	Category  string
	Content   string
}

type PostDilemmaUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	logger      logger.Interface
}

func NewPostDilemmaUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	logger logger.Interface,
) *PostDilemmaUseCase {
	return &PostDilemmaUseCase{
		dilemmaRepo: dilemmaRepo,
		logger:      logger,
	}
}

func (uc *PostDilemmaUseCase) Execute(ctx context.Context, cmd PostDilemmaCommand) (*dto.DilemmaDTO, error) {
	uc.logger.Infow("executing post dilemma use case", "category", cmd.Category)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid post dilemma command", "error", err)
		return nil, err
	}

	newDilemma, err := dilemma.NewDilemma(cmd.UserToken, vo.Category(cmd.Category), cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to create dilemma entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	dilemmaID, err := id.NewDilemmaID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate dilemma ID", err.Error())
	}
	if err := newDilemma.SetID(dilemmaID); err != nil {
		return nil, errors.NewInternalError("failed to assign dilemma ID", err.Error())
	}

	if err := uc.dilemmaRepo.Save(ctx, newDilemma); err != nil {
		uc.logger.Errorw("failed to save dilemma", "error", err)
		return nil, err
	}

	uc.logger.Infow("dilemma posted", "dilemma_id", newDilemma.ID(), "category", cmd.Category)

	return dto.ToDilemmaDTO(newDilemma, false), nil
}

func (uc *PostDilemmaUseCase) validateCommand(cmd PostDilemmaCommand) error {
	if len(cmd.UserToken) == 0 {
		return errors.NewValidationError("user token is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	if len(cmd.Content) > 5000 {
		return errors.NewValidationError("content exceeds maximum length of 5000 characters")
	}
	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}
	return nil
}
