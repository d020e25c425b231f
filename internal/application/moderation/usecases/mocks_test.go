package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/domain/moderation"
)

type mockDilemmaRepository struct {
	SaveFunc             func(ctx context.Context, d *dilemma.Dilemma) error
	UpdateFunc           func(ctx context.Context, d *dilemma.Dilemma) error
	GetByIDFunc          func(ctx context.Context, id string) (*dilemma.Dilemma, error)
	ListFunc             func(ctx context.Context, filter dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error)
	GetByAuthorTokenFunc func(ctx context.Context, authorToken string) ([]*dilemma.Dilemma, error)
	GetReportedFunc      func(ctx context.Context) ([]*dilemma.Dilemma, error)
	AcceptIfPendingFunc  func(ctx context.Context, dilemmaID, helperID string) (bool, error)
	ToggleSupportFunc    func(ctx context.Context, dilemmaID, viewerToken string) (bool, int, error)
	IsSupportedByFunc    func(ctx context.Context, dilemmaID, viewerToken string) (bool, error)
	SupportedIDsFunc     func(ctx context.Context, viewerToken string, ids []string) (map[string]bool, error)
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

func (m *mockDilemmaRepository) GetByID(ctx context.Context, id string) (*dilemma.Dilemma, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDilemmaRepository) List(ctx context.Context, filter dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
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

func (m *mockDilemmaRepository) SupportedIDs(ctx context.Context, viewerToken string, ids []string) (map[string]bool, error) {
	if m.SupportedIDsFunc != nil {
		return m.SupportedIDsFunc(ctx, viewerToken, ids)
	}
	return map[string]bool{}, nil
}

type mockModerationRepository struct {
	RecordActionFunc   func(ctx context.Context, action *moderation.Action) error
	GetHistoryFunc     func(ctx context.Context, userID string) ([]*moderation.Action, error)
	GetUserStatusFunc  func(ctx context.Context, userID string) (moderation.UserStatus, error)
	SaveUserStatusFunc func(ctx context.Context, status moderation.UserStatus) error
}

func (m *mockModerationRepository) RecordAction(ctx context.Context, action *moderation.Action) error {
	if m.RecordActionFunc != nil {
		return m.RecordActionFunc(ctx, action)
	}
	return nil
}

func (m *mockModerationRepository) GetHistory(ctx context.Context, userID string) ([]*moderation.Action, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockModerationRepository) GetUserStatus(ctx context.Context, userID string) (moderation.UserStatus, error) {
	if m.GetUserStatusFunc != nil {
		return m.GetUserStatusFunc(ctx, userID)
	}
	return moderation.UserStatus{}, nil
}

func (m *mockModerationRepository) SaveUserStatus(ctx context.Context, status moderation.UserStatus) error {
	if m.SaveUserStatusFunc != nil {
		return m.SaveUserStatusFunc(ctx, status)
	}
	return nil
}

type mockBlockRepository struct {
	SaveFunc          func(ctx context.Context, block *moderation.Block) error
	DeleteFunc        func(ctx context.Context, blockerID, blockedID string) error
	GetBlockedIDsFunc func(ctx context.Context, blockerID string) ([]string, error)
	ExistsFunc        func(ctx context.Context, blockerID, blockedID string) (bool, error)
}

func (m *mockBlockRepository) Save(ctx context.Context, block *moderation.Block) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, block)
	}
	return nil
}

func (m *mockBlockRepository) Delete(ctx context.Context, blockerID, blockedID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, blockerID, blockedID)
	}
	return nil
}

func (m *mockBlockRepository) GetBlockedIDs(ctx context.Context, blockerID string) ([]string, error) {
	if m.GetBlockedIDsFunc != nil {
		return m.GetBlockedIDsFunc(ctx, blockerID)
	}
	return nil, nil
}

func (m *mockBlockRepository) Exists(ctx context.Context, blockerID, blockedID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, blockerID, blockedID)
	}
	return false, nil
}
