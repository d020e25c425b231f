package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type OnlineCountResult struct {
	OnlineCount int64 `json:"online_count"`
}

// OnlineCountUseCase answers the public "helpers online" counter from the
// presence cache, falling back to the database when the cache is down.
type OnlineCountUseCase struct {
	helperRepo helper.HelperRepository
	presence   PresenceCache
	logger     logger.Interface
}

func NewOnlineCountUseCase(
	helperRepo helper.HelperRepository,
	presence PresenceCache,
	logger logger.Interface,
) *OnlineCountUseCase {
	return &OnlineCountUseCase{
		helperRepo: helperRepo,
		presence:   presence,
		logger:     logger,
	}
}

func (uc *OnlineCountUseCase) Execute(ctx context.Context) (*OnlineCountResult, error) {
	count, err := uc.presence.OnlineCount(ctx)
	if err == nil {
		return &OnlineCountResult{OnlineCount: count}, nil
	}

	uc.logger.Warnw("presence cache unavailable, counting from database", "error", err)

	count, err = uc.helperRepo.CountAvailable(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count available helpers", "error", err)
		return nil, err
	}

	return &OnlineCountResult{OnlineCount: count}, nil
}
