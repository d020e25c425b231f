package mappers

import (
	"time"

	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities and persistence models.
type SessionMapper interface {
	ToModel(s *session.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) (*session.Session, error)
}

// SessionMapperImpl is the concrete implementation of SessionMapper.
type SessionMapperImpl struct{}

// NewSessionMapper creates a new SessionMapper.
func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(s *session.Session) *models.SessionModel {
	model := &models.SessionModel{
		ID:                s.ID(),
		DilemmaID:         s.DilemmaID(),
		SeekerToken:       s.SeekerToken(),
		HelperID:          s.HelperID(),
		HelperDisplayName: s.HelperDisplayName(),
		IsFavorited:       s.IsFavorited(),
		KudosGiven:        s.KudosGiven(),
		Summary:           s.Summary(),
		StartedAt:         s.StartedAt().UnixMilli(),
		Version:           s.Version(),
		CreatedAt:         s.CreatedAt().UnixMilli(),
		UpdatedAt:         s.UpdatedAt().UnixMilli(),
	}

	if s.EndedAt() != nil {
		ended := s.EndedAt().UnixMilli()
		model.EndedAt = &ended
	}

	return model
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) (*session.Session, error) {
	var endedAt *time.Time
	if model.EndedAt != nil {
		ended := time.UnixMilli(*model.EndedAt)
		endedAt = &ended
	}

	return session.ReconstructSession(
		model.ID,
		model.DilemmaID,
		model.SeekerToken,
		model.HelperID,
		model.HelperDisplayName,
		model.IsFavorited,
		model.KudosGiven,
		model.Summary,
		time.UnixMilli(model.StartedAt),
		endedAt,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
