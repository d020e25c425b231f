package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/domain/helper"
)

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

type mockPresenceCache struct {
	SetAvailableFunc func(ctx context.Context, helperID string, available bool) error
	OnlineCountFunc  func(ctx context.Context) (int64, error)
}

func (m *mockPresenceCache) SetAvailable(ctx context.Context, helperID string, available bool) error {
	if m.SetAvailableFunc != nil {
		return m.SetAvailableFunc(ctx, helperID, available)
	}
	return nil
}

func (m *mockPresenceCache) OnlineCount(ctx context.Context) (int64, error) {
	if m.OnlineCountFunc != nil {
		return m.OnlineCountFunc(ctx)
	}
	return 0, nil
}

type mockMarkdownService struct {
	SanitizeFunc func(htmlContent string) string
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) { return markdown, nil }
func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(htmlContent)
	}
	return htmlContent
}
func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) { return markdown, nil }
func (m *mockMarkdownService) StripToText(markdown string) string              { return markdown }
