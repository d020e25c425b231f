package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/achievement"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/domain/session"
)

type mockSessionRepository struct {
	SaveFunc             func(ctx context.Context, s *session.Session) error
	UpdateFunc           func(ctx context.Context, s *session.Session) error
	GetByIDFunc          func(ctx context.Context, id string) (*session.Session, error)
	GetByDilemmaIDFunc   func(ctx context.Context, dilemmaID string) (*session.Session, error)
	GetByParticipantFunc func(ctx context.Context, actorID string) ([]*session.Session, error)
	CountByHelperIDFunc  func(ctx context.Context, helperID string) (int64, error)
	MarkKudosGivenFunc   func(ctx context.Context, sessionID string) (bool, error)
}

func (m *mockSessionRepository) Save(ctx context.Context, s *session.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id string) (*session.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionRepository) GetByDilemmaID(ctx context.Context, dilemmaID string) (*session.Session, error) {
	if m.GetByDilemmaIDFunc != nil {
		return m.GetByDilemmaIDFunc(ctx, dilemmaID)
	}
	return nil, nil
}

func (m *mockSessionRepository) GetByParticipant(ctx context.Context, actorID string) ([]*session.Session, error) {
	if m.GetByParticipantFunc != nil {
		return m.GetByParticipantFunc(ctx, actorID)
	}
	return nil, nil
}

func (m *mockSessionRepository) CountByHelperID(ctx context.Context, helperID string) (int64, error) {
	if m.CountByHelperIDFunc != nil {
		return m.CountByHelperIDFunc(ctx, helperID)
	}
	return 0, nil
}

func (m *mockSessionRepository) MarkKudosGiven(ctx context.Context, sessionID string) (bool, error) {
	if m.MarkKudosGivenFunc != nil {
		return m.MarkKudosGivenFunc(ctx, sessionID)
	}
	return true, nil
}

type mockHelperRepository struct {
	SaveFunc                    func(ctx context.Context, h *helper.Helper) error
	UpdateFunc                  func(ctx context.Context, h *helper.Helper) error
	GetByIDFunc                 func(ctx context.Context, helperID string) (*helper.Helper, error)
	GetByExternalIdentityIDFunc func(ctx context.Context, externalIdentityID string) (*helper.Helper, error)
	ListFunc                    func(ctx context.Context, filter helper.HelperFilter) ([]*helper.Helper, int64, error)
	CountAvailableFunc          func(ctx context.Context) (int64, error)
	IncrementKudosFunc          func(ctx context.Context, helperID string) error
}

func (m *mockHelperRepository) Save(ctx context.Context, h *helper.Helper) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, h)
	}
	return nil
}

func (m *mockHelperRepository) Update(ctx context.Context, h *helper.Helper) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, h)
	}
	return nil
}

func (m *mockHelperRepository) GetByID(ctx context.Context, helperID string) (*helper.Helper, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, helperID)
	}
	return nil, nil
}

func (m *mockHelperRepository) GetByExternalIdentityID(ctx context.Context, externalIdentityID string) (*helper.Helper, error) {
	if m.GetByExternalIdentityIDFunc != nil {
		return m.GetByExternalIdentityIDFunc(ctx, externalIdentityID)
	}
	return nil, nil
}

func (m *mockHelperRepository) List(ctx context.Context, filter helper.HelperFilter) ([]*helper.Helper, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockHelperRepository) CountAvailable(ctx context.Context) (int64, error) {
	if m.CountAvailableFunc != nil {
		return m.CountAvailableFunc(ctx)
	}
	return 0, nil
}

func (m *mockHelperRepository) IncrementKudos(ctx context.Context, helperID string) error {
	if m.IncrementKudosFunc != nil {
		return m.IncrementKudosFunc(ctx, helperID)
	}
	return nil
}

type mockEvaluator struct {
	CheckAndAwardFunc func(ctx context.Context, helperID string) (*achievement.EvaluateResult, error)
}

func (m *mockEvaluator) CheckAndAward(ctx context.Context, helperID string) (*achievement.EvaluateResult, error) {
	if m.CheckAndAwardFunc != nil {
		return m.CheckAndAwardFunc(ctx, helperID)
	}
	return &achievement.EvaluateResult{NewAchievements: []helper.Achievement{}}, nil
}
