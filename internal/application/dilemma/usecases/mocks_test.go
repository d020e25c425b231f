package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/achievement"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type mockDilemmaRepository struct {
	SaveFunc            func(ctx context.Context, d *dilemma.Dilemma) error
	UpdateFunc          func(ctx context.Context, d *dilemma.Dilemma) error
	GetByIDFunc         func(ctx context.Context, dilemmaID string) (*dilemma.Dilemma, error)
	ListFunc            func(ctx context.Context, filters dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error)
	GetByAuthorTokenFunc func(ctx context.Context, authorToken string) ([]*dilemma.Dilemma, error)
	GetReportedFunc     func(ctx context.Context) ([]*dilemma.Dilemma, error)
	AcceptIfPendingFunc func(ctx context.Context, dilemmaID, helperID string) (bool, error)
	ToggleSupportFunc   func(ctx context.Context, dilemmaID, viewerToken string) (bool, int, error)
	IsSupportedByFunc   func(ctx context.Context, dilemmaID, viewerToken string) (bool, error)
	SupportedIDsFunc    func(ctx context.Context, viewerToken string, dilemmaIDs []string) (map[string]bool, error)
}

func (m *mockDilemmaRepository) Save(ctx context.Context, d *dilemma.Dilemma) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDilemmaRepository) Update(ctx context.Context, d *dilemma.Dilemma) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDilemmaRepository) GetByID(ctx context.Context, dilemmaID string) (*dilemma.Dilemma, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, dilemmaID)
	}
	return nil, nil
}

func (m *mockDilemmaRepository) List(ctx context.Context, filters dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockDilemmaRepository) GetByAuthorToken(ctx context.Context, authorToken string) ([]*dilemma.Dilemma, error) {
	if m.GetByAuthorTokenFunc != nil {
		return m.GetByAuthorTokenFunc(ctx, authorToken)
	}
	return nil, nil
}

func (m *mockDilemmaRepository) GetReported(ctx context.Context) ([]*dilemma.Dilemma, error) {
	if m.GetReportedFunc != nil {
		return m.GetReportedFunc(ctx)
	}
	return nil, nil
}

func (m *mockDilemmaRepository) AcceptIfPending(ctx context.Context, dilemmaID, helperID string) (bool, error) {
	if m.AcceptIfPendingFunc != nil {
		return m.AcceptIfPendingFunc(ctx, dilemmaID, helperID)
	}
	return true, nil
}

func (m *mockDilemmaRepository) ToggleSupport(ctx context.Context, dilemmaID, viewerToken string) (bool, int, error) {
	if m.ToggleSupportFunc != nil {
		return m.ToggleSupportFunc(ctx, dilemmaID, viewerToken)
	}
	return false, 0, nil
}

func (m *mockDilemmaRepository) IsSupportedBy(ctx context.Context, dilemmaID, viewerToken string) (bool, error) {
	if m.IsSupportedByFunc != nil {
		return m.IsSupportedByFunc(ctx, dilemmaID, viewerToken)
	}
	return false, nil
}

func (m *mockDilemmaRepository) SupportedIDs(ctx context.Context, viewerToken string, dilemmaIDs []string) (map[string]bool, error) {
	if m.SupportedIDsFunc != nil {
		return m.SupportedIDsFunc(ctx, viewerToken, dilemmaIDs)
	}
	return map[string]bool{}, nil
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

type mockSessionRepository struct {
	SaveFunc             func(ctx context.Context, s *session.Session) error
	UpdateFunc           func(ctx context.Context, s *session.Session) error
	GetByIDFunc          func(ctx context.Context, sessionID string) (*session.Session, error)
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

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID string) (*session.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, sessionID)
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

type mockEvaluator struct {
	CheckAndAwardFunc func(ctx context.Context, helperID string) (*achievement.EvaluateResult, error)
}

func (m *mockEvaluator) CheckAndAward(ctx context.Context, helperID string) (*achievement.EvaluateResult, error) {
	if m.CheckAndAwardFunc != nil {
		return m.CheckAndAwardFunc(ctx, helperID)
	}
	return &achievement.EvaluateResult{NewAchievements: []helper.Achievement{}}, nil
}

type mockSummarizer struct {
	SummarizeDilemmaFunc func(ctx context.Context, content string) (string, error)
}

func (m *mockSummarizer) SummarizeDilemma(ctx context.Context, content string) (string, error) {
	if m.SummarizeDilemmaFunc != nil {
		return m.SummarizeDilemmaFunc(ctx, content)
	}
	return "summary", nil
}

type mockNotifier struct {
	NotifyDirectRequestFunc func(ctx context.Context, h *helper.Helper, d *dilemma.Dilemma) error
}

func (m *mockNotifier) NotifyDirectRequest(ctx context.Context, h *helper.Helper, d *dilemma.Dilemma) error {
	if m.NotifyDirectRequestFunc != nil {
		return m.NotifyDirectRequestFunc(ctx, h, d)
	}
	return nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	FatalFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) Fatal(msg string, args ...any) {
	if m.FatalFunc != nil {
		m.FatalFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
