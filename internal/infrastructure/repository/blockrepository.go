package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kindredhq/kindred/internal/domain/moderation"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
)

type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

func (r *BlockRepository) Save(ctx context.Context, block *moderation.Block) error {
	model := &models.UserBlockModel{
		BlockerID: block.BlockerID,
		BlockedID: block.BlockedID,
	}

	// The unique pair index makes repeated blocks a no-op.
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to save block: %w", err)
	}

	return nil
}

func (r *BlockRepository) Delete(ctx context.Context, blockerID, blockedID string) error {
	result := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.UserBlockModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete block: %w", result.Error)
	}

	return nil
}

func (r *BlockRepository) GetBlockedIDs(ctx context.Context, blockerID string) ([]string, error) {
	var blockedIDs []string

	if err := r.db.WithContext(ctx).
		Model(&models.UserBlockModel{}).
		Where("blocker_id = ?", blockerID).
		Pluck("blocked_id", &blockedIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list blocked IDs: %w", err)
	}

	return blockedIDs, nil
}

func (r *BlockRepository) Exists(ctx context.Context, blockerID, blockedID string) (bool, error) {
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.UserBlockModel{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&total).Error; err != nil {
		return false, fmt.Errorf("failed to look up block: %w", err)
	}

	return total > 0, nil
}
