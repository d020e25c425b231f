package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kindredhq/kindred/internal/domain/reflection"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/mappers"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
)

// addReactionAttempts bounds the optimistic retry loop in AddReaction.
const addReactionAttempts = 3

type ReflectionRepository struct {
	db     *gorm.DB
	mapper mappers.ReflectionMapper
}

func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{
		db:     db,
		mapper: mappers.NewReflectionMapper(),
	}
}

func (r *ReflectionRepository) Save(ctx context.Context, reflectionEntity *reflection.Reflection) error {
	model := r.mapper.ToModel(reflectionEntity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reflection: %w", err)
	}

	return nil
}

func (r *ReflectionRepository) Update(ctx context.Context, reflectionEntity *reflection.Reflection) error {
	model := r.mapper.ToModel(reflectionEntity)

	result := r.db.WithContext(ctx).
		Model(&models.ReflectionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update reflection: %w", result.Error)
	}

	return nil
}

func (r *ReflectionRepository) GetByID(ctx context.Context, reflectionID string) (*reflection.Reflection, error) {
	var model models.ReflectionModel

	if err := r.db.WithContext(ctx).
		Where("id = ?", reflectionID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find reflection: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReflectionRepository) List(ctx context.Context) ([]*reflection.Reflection, error) {
	var reflectionModels []models.ReflectionModel

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reflectionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list reflections: %w", err)
	}

	reflections := make([]*reflection.Reflection, len(reflectionModels))
	for i, model := range reflectionModels {
		entity, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		reflections[i] = entity
	}

	return reflections, nil
}

// AddReaction increments one reaction counter with an optimistic
// version check, so concurrent reactions never lose an increment.
func (r *ReflectionRepository) AddReaction(ctx context.Context, reflectionID, reactionType string) (*reflection.Reflection, error) {
	for attempt := 0; attempt < addReactionAttempts; attempt++ {
		var model models.ReflectionModel
		if err := r.db.WithContext(ctx).
			Where("id = ?", reflectionID).
			First(&model).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to find reflection: %w", err)
		}

		reactions := map[string]int{}
		if len(model.Reactions) > 0 {
			if err := json.Unmarshal(model.Reactions, &reactions); err != nil {
				return nil, fmt.Errorf("failed to unmarshal reactions: %w", err)
			}
		}
		reactions[reactionType]++

		reactionsJSON, err := json.Marshal(reactions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal reactions: %w", err)
		}

		result := r.db.WithContext(ctx).
			Model(&models.ReflectionModel{}).
			Where("id = ? AND version = ?", reflectionID, model.Version).
			Updates(map[string]interface{}{
				"reactions":  reactionsJSON,
				"version":    model.Version + 1,
				"updated_at": time.Now().UnixMilli(),
			})
		if result.Error != nil {
			return nil, fmt.Errorf("failed to add reaction: %w", result.Error)
		}
		if result.RowsAffected == 1 {
			model.Reactions = reactionsJSON
			model.Version++
			return r.mapper.ToDomain(&model)
		}

		// Lost the version race; reload and try again.
	}

	return nil, fmt.Errorf("failed to add reaction after %d attempts", addReactionAttempts)
}
