package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/moderation/dto"
	"github.com/kindredhq/kindred/internal/domain/moderation"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

// GetUserStatusUseCase reports a user's standing: warning count and
// whether a ban is currently in force.
type GetUserStatusUseCase struct {
	moderationRepo moderation.ModerationRepository
	logger         logger.Interface
}

func NewGetUserStatusUseCase(
	moderationRepo moderation.ModerationRepository,
	logger logger.Interface,
) *GetUserStatusUseCase {
	return &GetUserStatusUseCase{
		moderationRepo: moderationRepo,
		logger:         logger,
	}
}

func (uc *GetUserStatusUseCase) Execute(ctx context.Context, userID string) (*dto.UserStatusDTO, error) {
	if len(userID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	status, err := uc.moderationRepo.GetUserStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	status.UserID = userID

	return dto.ToUserStatusDTO(status), nil
}

type GetHistoryResult struct {
	Actions []*dto.ActionDTO `json:"actions"`
	Total   int              `json:"total"`
}

// GetHistoryUseCase lists the moderation actions taken against a user.
type GetHistoryUseCase struct {
	moderationRepo moderation.ModerationRepository
	logger         logger.Interface
}

func NewGetHistoryUseCase(
	moderationRepo moderation.ModerationRepository,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		moderationRepo: moderationRepo,
		logger:         logger,
	}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, userID string) (*GetHistoryResult, error) {
	if len(userID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	actions, err := uc.moderationRepo.GetHistory(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load moderation history", "user_id", userID, "error", err)
		return nil, err
	}

	return &GetHistoryResult{
		Actions: dto.ToActionDTOs(actions),
		Total:   len(actions),
	}, nil
}
