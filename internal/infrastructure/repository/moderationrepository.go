package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kindredhq/kindred/internal/domain/moderation"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/mappers"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
)

type ModerationRepository struct {
	db     *gorm.DB
	mapper mappers.ModerationMapper
}

func NewModerationRepository(db *gorm.DB) *ModerationRepository {
	return &ModerationRepository{
		db:     db,
		mapper: mappers.NewModerationMapper(),
	}
}

func (r *ModerationRepository) RecordAction(ctx context.Context, action *moderation.Action) error {
	model := r.mapper.ActionToModel(action)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record moderation action: %w", err)
	}

	return nil
}

func (r *ModerationRepository) GetHistory(ctx context.Context, userID string) ([]*moderation.Action, error) {
	var actionModels []models.ModerationActionModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&actionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list moderation history: %w", err)
	}

	actions := make([]*moderation.Action, len(actionModels))
	for i, model := range actionModels {
		actions[i] = r.mapper.ActionToDomain(&model)
	}

	return actions, nil
}

// GetUserStatus returns a clean status when no row exists yet; statuses
// are created lazily on the first moderation action.
func (r *ModerationRepository) GetUserStatus(ctx context.Context, userID string) (moderation.UserStatus, error) {
	var model models.UserStatusModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return moderation.UserStatus{UserID: userID}, nil
		}
		return moderation.UserStatus{}, fmt.Errorf("failed to get user status: %w", err)
	}

	return r.mapper.UserStatusToDomain(&model), nil
}

func (r *ModerationRepository) SaveUserStatus(ctx context.Context, status moderation.UserStatus) error {
	model := r.mapper.UserStatusToModel(status)

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"warnings", "is_banned", "ban_reason", "ban_expires", "updated_at",
			}),
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user status: %w", err)
	}

	return nil
}
