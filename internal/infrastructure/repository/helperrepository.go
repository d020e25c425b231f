package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/mappers"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
)

type HelperRepository struct {
	db     *gorm.DB
	mapper mappers.HelperMapper
}

func NewHelperRepository(db *gorm.DB) *HelperRepository {
	return &HelperRepository{
		db:     db,
		mapper: mappers.NewHelperMapper(),
	}
}

func (r *HelperRepository) Save(ctx context.Context, h *helper.Helper) error {
	model := r.mapper.ToModel(h)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save helper: %w", err)
	}

	return nil
}

func (r *HelperRepository) Update(ctx context.Context, h *helper.Helper) error {
	model := r.mapper.ToModel(h)

	// Select("*") forces zero values through, so flags that return to
	// false (availability, training) are not silently skipped.
	result := r.db.WithContext(ctx).
		Model(&models.HelperModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update helper: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *HelperRepository) GetByID(ctx context.Context, helperID string) (*helper.Helper, error) {
	var model models.HelperModel

	if err := r.db.WithContext(ctx).
		Where("id = ?", helperID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find helper: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *HelperRepository) GetByExternalIdentityID(ctx context.Context, externalIdentityID string) (*helper.Helper, error) {
	var model models.HelperModel

	if err := r.db.WithContext(ctx).
		Where("external_identity_id = ?", externalIdentityID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find helper: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *HelperRepository) List(ctx context.Context, filter helper.HelperFilter) ([]*helper.Helper, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.HelperModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}
	if filter.Expertise != "" {
		// Expertise is a JSON array of category names.
		query = query.Where("expertise LIKE ?", "%"+`"`+filter.Expertise+`"`+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count helpers: %w", err)
	}

	query = query.Order("reputation DESC, kudos_count DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var helperModels []models.HelperModel
	if err := query.Find(&helperModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list helpers: %w", err)
	}

	helpers := make([]*helper.Helper, len(helperModels))
	for i, model := range helperModels {
		h, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		helpers[i] = h
	}

	return helpers, total, nil
}

func (r *HelperRepository) CountAvailable(ctx context.Context) (int64, error) {
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.HelperModel{}).
		Where("is_available = ?", true).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count available helpers: %w", err)
	}

	return total, nil
}

func (r *HelperRepository) IncrementKudos(ctx context.Context, helperID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.HelperModel{}).
		Where("id = ?", helperID).
		Updates(map[string]interface{}{
			"kudos_count": gorm.Expr("kudos_count + 1"),
			"updated_at":  time.Now().UnixMilli(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to increment kudos: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("helper not found")
	}

	return nil
}
