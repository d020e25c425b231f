package usecases

import (
	"context"
	"time"

	dilemmadto "github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/domain/moderation"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type DismissReportCommand struct {
	DilemmaID   string
	ModeratorID string
}

// DismissReportUseCase clears a report, returning the dilemma to the feed
// untouched otherwise.
type DismissReportUseCase struct {
	dilemmaRepo    dilemma.DilemmaRepository
	moderationRepo moderation.ModerationRepository
	logger         logger.Interface
}

func NewDismissReportUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	moderationRepo moderation.ModerationRepository,
	logger logger.Interface,
) *DismissReportUseCase {
	return &DismissReportUseCase{
		dilemmaRepo:    dilemmaRepo,
		moderationRepo: moderationRepo,
		logger:         logger,
	}
}

func (uc *DismissReportUseCase) Execute(ctx context.Context, cmd DismissReportCommand) (*dilemmadto.DilemmaDTO, error) {
	if len(cmd.DilemmaID) == 0 {
		return nil, errors.NewValidationError("dilemma ID is required")
	}
	if len(cmd.ModeratorID) == 0 {
		return nil, errors.NewValidationError("moderator ID is required")
	}

	d, err := uc.dilemmaRepo.GetByID(ctx, cmd.DilemmaID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dilemma not found")
	}

	reason := d.ReportReason()

	if err := d.DismissReport(cmd.ModeratorID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.dilemmaRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to dismiss report", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, err
	}

	action := &moderation.Action{
		UserID:           d.AuthorToken(),
		Action:           moderation.ActionReportDismissed,
		Reason:           reason,
		RelatedContentID: d.ID(),
		ModeratorID:      cmd.ModeratorID,
		Timestamp:        time.Now(),
	}
	if actionID, genErr := id.Generate(id.DefaultLength); genErr == nil {
		action.ID = actionID
		if recErr := uc.moderationRepo.RecordAction(ctx, action); recErr != nil {
			uc.logger.Warnw("failed to record moderation action", "dilemma_id", cmd.DilemmaID, "error", recErr)
		}
	}

	uc.logger.Infow("report dismissed",
		"dilemma_id", cmd.DilemmaID,
		"moderator_id", cmd.ModeratorID,
	)

	return dilemmadto.ToDilemmaDTO(d, false), nil
}
