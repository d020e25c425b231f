package usecases

import (
	"context"
	"time"

	"github.com/kindredhq/kindred/internal/application/moderation/dto"
	"github.com/kindredhq/kindred/internal/domain/moderation"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type WarnUserCommand struct {
	UserID      string
	Reason      string
	ModeratorID string
}

type WarnUserUseCase struct {
	moderationRepo moderation.ModerationRepository
	logger         logger.Interface
}

func NewWarnUserUseCase(
	moderationRepo moderation.ModerationRepository,
	logger logger.Interface,
) *WarnUserUseCase {
	return &WarnUserUseCase{
		moderationRepo: moderationRepo,
		logger:         logger,
	}
}

func (uc *WarnUserUseCase) Execute(ctx context.Context, cmd WarnUserCommand) (*dto.UserStatusDTO, error) {
	if len(cmd.UserID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if len(cmd.Reason) == 0 {
		return nil, errors.NewValidationError("warning reason is required")
	}
	if len(cmd.ModeratorID) == 0 {
		return nil, errors.NewValidationError("moderator ID is required")
	}

	status, err := uc.moderationRepo.GetUserStatus(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	status.UserID = cmd.UserID
	status = status.Warn()

	if err := uc.moderationRepo.SaveUserStatus(ctx, status); err != nil {
		uc.logger.Errorw("failed to save user status", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	actionID, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate action ID", err.Error())
	}
	if err := uc.moderationRepo.RecordAction(ctx, &moderation.Action{
		ID:          actionID,
		UserID:      cmd.UserID,
		Action:      moderation.ActionWarningIssued,
		Reason:      cmd.Reason,
		ModeratorID: cmd.ModeratorID,
		Timestamp:   time.Now(),
	}); err != nil {
		uc.logger.Warnw("failed to record warning action", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("warning issued",
		"user_id", cmd.UserID,
		"warnings", status.Warnings,
		"moderator_id", cmd.ModeratorID,
	)

	return dto.ToUserStatusDTO(status), nil
}
