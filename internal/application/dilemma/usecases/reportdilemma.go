package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type ReportDilemmaCommand struct {
	DilemmaID string
	Reason    string
}

type ReportDilemmaUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	logger      logger.Interface
}

func NewReportDilemmaUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	logger logger.Interface,
) *ReportDilemmaUseCase {
	return &ReportDilemmaUseCase{
		dilemmaRepo: dilemmaRepo,
		logger:      logger,
	}
}

func (uc *ReportDilemmaUseCase) Execute(ctx context.Context, cmd ReportDilemmaCommand) (*dto.DilemmaDTO, error) {
	uc.logger.Infow("executing report dilemma use case", "dilemma_id", cmd.DilemmaID)

	if len(cmd.DilemmaID) == 0 {
		return nil, errors.NewValidationError("dilemma ID is required")
	}
	if len(cmd.Reason) == 0 {
		return nil, errors.NewValidationError("report reason is required")
	}

	d, err := uc.dilemmaRepo.GetByID(ctx, cmd.DilemmaID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dilemma not found")
	}

	if err := d.Report(cmd.Reason); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.dilemmaRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to persist report", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, err
	}

	uc.logger.Infow("dilemma reported", "dilemma_id", d.ID(), "status", d.Status().String())

	return dto.ToDilemmaDTO(d, false), nil
}
