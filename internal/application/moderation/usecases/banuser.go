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

type BanUserCommand struct {
	UserID      string
	Reason      string
	ModeratorID string

	// DurationHours <= 0 bans permanently.
	DurationHours int
}

type BanUserUseCase struct {
	moderationRepo moderation.ModerationRepository
	logger         logger.Interface
}

func NewBanUserUseCase(
	moderationRepo moderation.ModerationRepository,
	logger logger.Interface,
) *BanUserUseCase {
	return &BanUserUseCase{
		moderationRepo: moderationRepo,
		logger:         logger,
	}
}

func (uc *BanUserUseCase) Execute(ctx context.Context, cmd BanUserCommand) (*dto.UserStatusDTO, error) {
	if len(cmd.UserID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if len(cmd.Reason) == 0 {
		return nil, errors.NewValidationError("ban reason is required")
	}
	if len(cmd.ModeratorID) == 0 {
		return nil, errors.NewValidationError("moderator ID is required")
	}

	status, err := uc.moderationRepo.GetUserStatus(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	status.UserID = cmd.UserID

	status, err = status.Ban(cmd.Reason, cmd.DurationHours, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

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
		Action:      moderation.ActionUserBanned,
		Reason:      cmd.Reason,
		ModeratorID: cmd.ModeratorID,
		Timestamp:   time.Now(),
	}); err != nil {
		uc.logger.Warnw("failed to record ban action", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("user banned",
		"user_id", cmd.UserID,
		"duration_hours", cmd.DurationHours,
		"moderator_id", cmd.ModeratorID,
	)

	return dto.ToUserStatusDTO(status), nil
}
