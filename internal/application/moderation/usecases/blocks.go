package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/domain/moderation"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type BlockUserCommand struct {
	BlockerID string
	BlockedID string
}

// BlockUserUseCase hides one user's posts from another's feeds. Blocking
// an already blocked user is a no-op.
type BlockUserUseCase struct {
	blockRepo moderation.BlockRepository
	logger    logger.Interface
}

func NewBlockUserUseCase(
	blockRepo moderation.BlockRepository,
	logger logger.Interface,
) *BlockUserUseCase {
	return &BlockUserUseCase{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

func (uc *BlockUserUseCase) Execute(ctx context.Context, cmd BlockUserCommand) error {
	block, err := moderation.NewBlock(cmd.BlockerID, cmd.BlockedID)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	exists, err := uc.blockRepo.Exists(ctx, cmd.BlockerID, cmd.BlockedID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := uc.blockRepo.Save(ctx, block); err != nil {
		uc.logger.Errorw("failed to save block", "blocker_id", cmd.BlockerID, "error", err)
		return err
	}

	uc.logger.Infow("user blocked", "blocker_id", cmd.BlockerID, "blocked_id", cmd.BlockedID)
	return nil
}

type UnblockUserCommand struct {
	BlockerID string
	BlockedID string
}

type UnblockUserUseCase struct {
	blockRepo moderation.BlockRepository
	logger    logger.Interface
}

func NewUnblockUserUseCase(
	blockRepo moderation.BlockRepository,
	logger logger.Interface,
) *UnblockUserUseCase {
	return &UnblockUserUseCase{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

func (uc *UnblockUserUseCase) Execute(ctx context.Context, cmd UnblockUserCommand) error {
	if len(cmd.BlockerID) == 0 || len(cmd.BlockedID) == 0 {
		return errors.NewValidationError("blocker and blocked IDs are required")
	}

	if err := uc.blockRepo.Delete(ctx, cmd.BlockerID, cmd.BlockedID); err != nil {
		uc.logger.Errorw("failed to delete block", "blocker_id", cmd.BlockerID, "error", err)
		return err
	}

	uc.logger.Infow("user unblocked", "blocker_id", cmd.BlockerID, "blocked_id", cmd.BlockedID)
	return nil
}

type ListBlockedResult struct {
	BlockedIDs []string `json:"blocked_ids"`
}

type ListBlockedUseCase struct {
	blockRepo moderation.BlockRepository
	logger    logger.Interface
}

func NewListBlockedUseCase(
	blockRepo moderation.BlockRepository,
	logger logger.Interface,
) *ListBlockedUseCase {
	return &ListBlockedUseCase{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

func (uc *ListBlockedUseCase) Execute(ctx context.Context, blockerID string) (*ListBlockedResult, error) {
	if len(blockerID) == 0 {
		return nil, errors.NewValidationError("blocker ID is required")
	}

	ids, err := uc.blockRepo.GetBlockedIDs(ctx, blockerID)
	if err != nil {
		uc.logger.Errorw("failed to list blocked users", "blocker_id", blockerID, "error", err)
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}

	return &ListBlockedResult{BlockedIDs: ids}, nil
}
