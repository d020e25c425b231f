package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kindredhq/kindred/internal/domain/dilemma"
	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/mappers"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
	apperrors "github.com/kindredhq/kindred/internal/shared/errors"
)

// allowedDilemmaOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedDilemmaOrderByFields = map[string]bool{
	"id":            true,
	"category":      true,
	"status":        true,
	"support_count": true,
	"created_at":    true,
	"updated_at":    true,
}

type DilemmaRepository struct {
	db     *gorm.DB
	mapper mappers.DilemmaMapper
}

func NewDilemmaRepository(db *gorm.DB) *DilemmaRepository {
	return &DilemmaRepository{
		db:     db,
		mapper: mappers.NewDilemmaMapper(),
	}
}

func (r *DilemmaRepository) Save(ctx context.Context, d *dilemma.Dilemma) error {
	model := r.mapper.ToModel(d)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save dilemma: %w", err)
	}

	return nil
}

func (r *DilemmaRepository) Update(ctx context.Context, d *dilemma.Dilemma) error {
	model := r.mapper.ToModel(d)

	// Select("*") forces zero values through, so a dismissed report
	// actually clears is_reported and report_reason. support_count is
	// owned by ToggleSupport and never written from the aggregate.
	result := r.db.WithContext(ctx).
		Model(&models.DilemmaModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", "support_count").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update dilemma: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *DilemmaRepository) GetByID(ctx context.Context, dilemmaID string) (*dilemma.Dilemma, error) {
	var model models.DilemmaModel

	if err := r.db.WithContext(ctx).
		Where("id = ?", dilemmaID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find dilemma: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DilemmaRepository) List(ctx context.Context, filter dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DilemmaModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.AuthorToken != nil {
		query = query.Where("author_token = ?", *filter.AuthorToken)
	}
	if filter.Reported != nil {
		query = query.Where("is_reported = ?", *filter.Reported)
	}
	if filter.Search != "" {
		query = query.Where("content LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count dilemmas: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedDilemmaOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var dilemmaModels []models.DilemmaModel
	if err := query.Find(&dilemmaModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list dilemmas: %w", err)
	}

	dilemmas := make([]*dilemma.Dilemma, len(dilemmaModels))
	for i, model := range dilemmaModels {
		d, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		dilemmas[i] = d
	}

	return dilemmas, total, nil
}

func (r *DilemmaRepository) GetByAuthorToken(ctx context.Context, authorToken string) ([]*dilemma.Dilemma, error) {
	var dilemmaModels []models.DilemmaModel

	if err := r.db.WithContext(ctx).
		Where("author_token = ?", authorToken).
		Order("created_at DESC").
		Find(&dilemmaModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list dilemmas by author: %w", err)
	}

	dilemmas := make([]*dilemma.Dilemma, len(dilemmaModels))
	for i, model := range dilemmaModels {
		d, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		dilemmas[i] = d
	}

	return dilemmas, nil
}

func (r *DilemmaRepository) GetReported(ctx context.Context) ([]*dilemma.Dilemma, error) {
	var dilemmaModels []models.DilemmaModel

	if err := r.db.WithContext(ctx).
		Where("is_reported = ?", true).
		Where("status <> ?", vo.StatusRemovedByModerator.String()).
		Order("created_at DESC").
		Find(&dilemmaModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list reported dilemmas: %w", err)
	}

	dilemmas := make([]*dilemma.Dilemma, len(dilemmaModels))
	for i, model := range dilemmaModels {
		d, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		dilemmas[i] = d
	}

	return dilemmas, nil
}

// AcceptIfPending claims the dilemma with a single guarded UPDATE. The
// status predicate makes concurrent accepts race on the database row, so
// exactly one caller observes an affected row.
func (r *DilemmaRepository) AcceptIfPending(ctx context.Context, dilemmaID, helperID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.DilemmaModel{}).
		Where("id = ? AND status IN ?", dilemmaID, []string{
			vo.StatusActive.String(),
			vo.StatusDirectRequest.String(),
		}).
		Updates(map[string]interface{}{
			"status":             vo.StatusInProgress.String(),
			"assigned_helper_id": helperID,
			"version":            gorm.Expr("version + 1"),
			"updated_at":         time.Now().UnixMilli(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to accept dilemma: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// ToggleSupport flips the viewer's support row and adjusts the shared
// counter in the same transaction, so the count always matches the rows.
func (r *DilemmaRepository) ToggleSupport(ctx context.Context, dilemmaID, viewerToken string) (bool, int, error) {
	var supported bool
	var count int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.DilemmaSupportModel
		err := tx.
			Where("dilemma_id = ? AND viewer_token = ?", dilemmaID, viewerToken).
			First(&existing).Error

		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to remove support mark: %w", err)
			}
			result := tx.
				Model(&models.DilemmaModel{}).
				Where("id = ? AND support_count > 0", dilemmaID).
				Update("support_count", gorm.Expr("support_count - 1"))
			if result.Error != nil {
				return fmt.Errorf("failed to decrement support count: %w", result.Error)
			}
			supported = false

		case err == gorm.ErrRecordNotFound:
			mark := models.DilemmaSupportModel{
				DilemmaID:   dilemmaID,
				ViewerToken: viewerToken,
			}
			if err := tx.Create(&mark).Error; err != nil {
				return fmt.Errorf("failed to add support mark: %w", err)
			}
			result := tx.
				Model(&models.DilemmaModel{}).
				Where("id = ?", dilemmaID).
				Update("support_count", gorm.Expr("support_count + 1"))
			if result.Error != nil {
				return fmt.Errorf("failed to increment support count: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return apperrors.NewNotFoundError("dilemma not found")
			}
			supported = true

		default:
			return fmt.Errorf("failed to look up support mark: %w", err)
		}

		var model models.DilemmaModel
		if err := tx.Select("support_count").Where("id = ?", dilemmaID).First(&model).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewNotFoundError("dilemma not found")
			}
			return fmt.Errorf("failed to read support count: %w", err)
		}
		count = model.SupportCount

		return nil
	})
	if err != nil {
		return false, 0, err
	}

	return supported, count, nil
}

func (r *DilemmaRepository) IsSupportedBy(ctx context.Context, dilemmaID, viewerToken string) (bool, error) {
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.DilemmaSupportModel{}).
		Where("dilemma_id = ? AND viewer_token = ?", dilemmaID, viewerToken).
		Count(&total).Error; err != nil {
		return false, fmt.Errorf("failed to look up support mark: %w", err)
	}

	return total > 0, nil
}

func (r *DilemmaRepository) SupportedIDs(ctx context.Context, viewerToken string, dilemmaIDs []string) (map[string]bool, error) {
	supported := make(map[string]bool, len(dilemmaIDs))
	if len(dilemmaIDs) == 0 {
		return supported, nil
	}

	var marks []models.DilemmaSupportModel
	if err := r.db.WithContext(ctx).
		Where("viewer_token = ? AND dilemma_id IN ?", viewerToken, dilemmaIDs).
		Find(&marks).Error; err != nil {
		return nil, fmt.Errorf("failed to look up support marks: %w", err)
	}

	for _, mark := range marks {
		supported[mark.DilemmaID] = true
	}

	return supported, nil
}
