package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/application/feed"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type GetReportedQueueResult struct {
	Dilemmas []*dto.DilemmaDTO `json:"dilemmas"`
	Total    int               `json:"total"`
}

// GetReportedQueueUseCase composes the moderator queue of open reports.
type GetReportedQueueUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	logger      logger.Interface
}

func NewGetReportedQueueUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	logger logger.Interface,
) *GetReportedQueueUseCase {
	return &GetReportedQueueUseCase{
		dilemmaRepo: dilemmaRepo,
		logger:      logger,
	}
}

func (uc *GetReportedQueueUseCase) Execute(ctx context.Context) (*GetReportedQueueResult, error) {
	reported, err := uc.dilemmaRepo.GetReported(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load reported dilemmas", "error", err)
		return nil, err
	}

	queue := feed.ProjectReportedQueue(reported)

	return &GetReportedQueueResult{
		Dilemmas: dto.ToDilemmaDTOs(queue, map[string]bool{}),
		Total:    len(queue),
	}, nil
}
