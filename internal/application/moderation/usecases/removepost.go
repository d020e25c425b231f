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

type RemovePostCommand struct {
	DilemmaID   string
	ModeratorID string
}

// RemovePostUseCase takes a reported dilemma down. The dilemma keeps its
// audit record and the author's history gains an entry; nothing is deleted.
type RemovePostUseCase struct {
	dilemmaRepo    dilemma.DilemmaRepository
	moderationRepo moderation.ModerationRepository
	logger         logger.Interface
}

func NewRemovePostUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	moderationRepo moderation.ModerationRepository,
	logger logger.Interface,
) *RemovePostUseCase {
	return &RemovePostUseCase{
		dilemmaRepo:    dilemmaRepo,
		moderationRepo: moderationRepo,
		logger:         logger,
	}
}

func (uc *RemovePostUseCase) Execute(ctx context.Context, cmd RemovePostCommand) (*dilemmadto.DilemmaDTO, error) {
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

	if err := d.Remove(cmd.ModeratorID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.dilemmaRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to remove dilemma", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, err
	}

	uc.recordAction(ctx, &moderation.Action{
		UserID:           d.AuthorToken(),
		Action:           moderation.ActionPostRemoved,
		Reason:           reason,
		RelatedContentID: d.ID(),
		ModeratorID:      cmd.ModeratorID,
		Timestamp:        time.Now(),
	})

	uc.logger.Infow("dilemma removed by moderator",
		"dilemma_id", cmd.DilemmaID,
		"moderator_id", cmd.ModeratorID,
	)

	return dilemmadto.ToDilemmaDTO(d, false), nil
}

// recordAction is best effort: the takedown stands even if the history
// write fails.
func (uc *RemovePostUseCase) recordAction(ctx context.Context, action *moderation.Action) {
	actionID, err := id.Generate(id.DefaultLength)
	if err == nil {
		action.ID = actionID
		err = uc.moderationRepo.RecordAction(ctx, action)
	}
	if err != nil {
		uc.logger.Warnw("failed to record moderation action",
			"user_id", action.UserID,
			"action", action.Action,
			"error", err,
		)
	}
}
