package usecases

import (
	"context"
	"time"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

const summarizeTimeout = 20 * time.Second

type SummarizeDilemmaCommand struct {
	DilemmaID string
}

type SummarizeDilemmaUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	summarizer  Summarizer
	logger      logger.Interface
}

func NewSummarizeDilemmaUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	summarizer Summarizer,
	logger logger.Interface,
) *SummarizeDilemmaUseCase {
	return &SummarizeDilemmaUseCase{
		dilemmaRepo: dilemmaRepo,
		summarizer:  summarizer,
		logger:      logger,
	}
}

func (uc *SummarizeDilemmaUseCase) Execute(ctx context.Context, cmd SummarizeDilemmaCommand) (*dto.DilemmaDTO, error) {
	uc.logger.Infow("executing summarize dilemma use case", "dilemma_id", cmd.DilemmaID)

	if len(cmd.DilemmaID) == 0 {
		return nil, errors.NewValidationError("dilemma ID is required")
	}

	d, err := uc.dilemmaRepo.GetByID(ctx, cmd.DilemmaID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dilemma not found")
	}

	// cached summaries are reused, the model is not consulted twice
	if len(d.Summary()) > 0 {
		return dto.ToDilemmaDTO(d, false), nil
	}

	summarizeCtx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	defer cancel()

	summary, err := uc.summarizer.SummarizeDilemma(summarizeCtx, d.Content())
	if err != nil {
		// an upstream failure never mutates or rolls back dilemma state
		uc.logger.Warnw("summarization failed", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, errors.NewUpstreamError("summarization service unavailable", err.Error())
	}

	if err := d.SetSummary(summary); err != nil {
		return nil, errors.NewUpstreamError("summarization returned empty content")
	}

	if err := uc.dilemmaRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to persist summary", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, err
	}

	uc.logger.Infow("dilemma summarized", "dilemma_id", d.ID())

	return dto.ToDilemmaDTO(d, false), nil
}
