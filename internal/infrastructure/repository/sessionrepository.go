package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/mappers"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	model := r.mapper.ToModel(s)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Update(ctx context.Context, s *session.Session) error {
	model := r.mapper.ToModel(s)

	// Select("*") forces zero values through, so unfavoriting actually
	// clears the flag. kudos_given is owned by MarkKudosGiven.
	result := r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", "kudos_given").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*session.Session, error) {
	var model models.SessionModel

	if err := r.db.WithContext(ctx).
		Where("id = ?", sessionID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SessionRepository) GetByDilemmaID(ctx context.Context, dilemmaID string) (*session.Session, error) {
	var model models.SessionModel

	if err := r.db.WithContext(ctx).
		Where("dilemma_id = ?", dilemmaID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SessionRepository) GetByParticipant(ctx context.Context, actorID string) ([]*session.Session, error) {
	var sessionModels []models.SessionModel

	if err := r.db.WithContext(ctx).
		Where("seeker_token = ? OR helper_id = ?", actorID, actorID).
		Order("started_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*session.Session, len(sessionModels))
	for i, model := range sessionModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		sessions[i] = s
	}

	return sessions, nil
}

func (r *SessionRepository) CountByHelperID(ctx context.Context, helperID string) (int64, error) {
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("helper_id = ?", helperID).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return total, nil
}

// MarkKudosGiven wins only while kudos_given is still false, so two
// concurrent kudos calls cannot both flip the flag.
func (r *SessionRepository) MarkKudosGiven(ctx context.Context, sessionID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("id = ? AND kudos_given = ?", sessionID, false).
		Updates(map[string]interface{}{
			"kudos_given": true,
			"updated_at":  time.Now().UnixMilli(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to mark kudos: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}
