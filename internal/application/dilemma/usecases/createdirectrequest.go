package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type CreateDirectRequestCommand struct {
	UserToken         string
	Category          string
	Content           string
	RequestedHelperID string
}

type CreateDirectRequestUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	helperRepo  helper.HelperRepository
	notifier    DirectRequestNotifier
	logger      logger.Interface
}

func NewCreateDirectRequestUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	helperRepo helper.HelperRepository,
	notifier DirectRequestNotifier,
	logger logger.Interface,
) *CreateDirectRequestUseCase {
	return &CreateDirectRequestUseCase{
		dilemmaRepo: dilemmaRepo,
		helperRepo:  helperRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateDirectRequestUseCase) Execute(ctx context.Context, cmd CreateDirectRequestCommand) (*dto.DilemmaDTO, error) {
	uc.logger.Infow("executing create direct request use case",
		"category", cmd.Category, "requested_helper_id", cmd.RequestedHelperID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create direct request command", "error", err)
		return nil, err
	}

	requestedHelper, err := uc.helperRepo.GetByID(ctx, cmd.RequestedHelperID)
	if err != nil {
		return nil, err
	}
	if requestedHelper == nil {
		return nil, errors.NewNotFoundError("requested helper not found")
	}

	newDilemma, err := dilemma.NewDirectRequest(cmd.UserToken, vo.Category(cmd.Category), cmd.Content, cmd.RequestedHelperID)
	if err != nil {
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
		uc.logger.Errorw("failed to save direct request", "error", err)
		return nil, err
	}

	// notification is best-effort, the request stands either way
	if uc.notifier != nil {
		if err := uc.notifier.NotifyDirectRequest(ctx, requestedHelper, newDilemma); err != nil {
			uc.logger.Warnw("failed to notify requested helper",
				"helper_id", cmd.RequestedHelperID, "dilemma_id", newDilemma.ID(), "error", err)
		}
	}

	uc.logger.Infow("direct request created",
		"dilemma_id", newDilemma.ID(), "requested_helper_id", cmd.RequestedHelperID)

	return dto.ToDilemmaDTO(newDilemma, false), nil
}

func (uc *CreateDirectRequestUseCase) validateCommand(cmd CreateDirectRequestCommand) error {
	if len(cmd.UserToken) == 0 {
		return errors.NewValidationError("user token is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	if len(cmd.RequestedHelperID) == 0 {
		return errors.NewValidationError("requested helper ID is required")
	}
	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}
	return nil
}
