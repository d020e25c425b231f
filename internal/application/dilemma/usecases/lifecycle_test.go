package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/internal/domain/dilemma"
	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
)

func TestPostDilemmaUseCase(t *testing.T) {
	t.Run("creates active dilemma with zero support", func(t *testing.T) {
		var saved *dilemma.Dilemma
		uc := NewPostDilemmaUseCase(&mockDilemmaRepository{
			SaveFunc: func(ctx context.Context, d *dilemma.Dilemma) error {
				saved = d
				return nil
			},
		}, &mockLogger{})

		result, err := uc.Execute(context.Background(), PostDilemmaCommand{
			UserToken: "tok1",
			Category:  "Anxiety",
			Content:   "I'm overwhelmed",
		})
		require.NoError(t, err)

		assert.Equal(t, "active", result.Status)
		assert.Equal(t, 0, result.SupportCount)
		assert.False(t, result.IsSupported)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), result.ID)
		assert.True(t, len(result.ID) > 3 && result.ID[:3] == "dl_")
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		uc := NewPostDilemmaUseCase(&mockDilemmaRepository{}, &mockLogger{})

		for _, cmd := range []PostDilemmaCommand{
			{Category: "Anxiety", Content: "x"},
			{UserToken: "tok1", Content: "x"},
			{UserToken: "tok1", Category: "Anxiety"},
			{UserToken: "tok1", Category: "Nonsense", Content: "x"},
		} {
			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		}
	})
}

func TestCreateDirectRequestUseCase(t *testing.T) {
	t.Run("creates direct request and notifies helper", func(t *testing.T) {
		h := testHelper(t, "hp_helper1")
		notified := false

		uc := NewCreateDirectRequestUseCase(
			&mockDilemmaRepository{},
			&mockHelperRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*helper.Helper, error) { return h, nil },
			},
			&mockNotifier{
				NotifyDirectRequestFunc: func(ctx context.Context, _ *helper.Helper, d *dilemma.Dilemma) error {
					notified = true
					return nil
				},
			},
			&mockLogger{},
		)

		result, err := uc.Execute(context.Background(), CreateDirectRequestCommand{
			UserToken:         "tok1",
			Category:          "Relationships",
			Content:           "Please help",
			RequestedHelperID: "hp_helper1",
		})
		require.NoError(t, err)

		assert.Equal(t, "direct_request", result.Status)
		require.NotNil(t, result.RequestedHelperID)
		assert.Equal(t, "hp_helper1", *result.RequestedHelperID)
		assert.True(t, notified)
	})

	t.Run("notification failure does not fail the request", func(t *testing.T) {
		h := testHelper(t, "hp_helper1")

		uc := NewCreateDirectRequestUseCase(
			&mockDilemmaRepository{},
			&mockHelperRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*helper.Helper, error) { return h, nil },
			},
			&mockNotifier{
				NotifyDirectRequestFunc: func(ctx context.Context, _ *helper.Helper, d *dilemma.Dilemma) error {
					return fmt.Errorf("smtp unavailable")
				},
			},
			&mockLogger{},
		)

		result, err := uc.Execute(context.Background(), CreateDirectRequestCommand{
			UserToken:         "tok1",
			Category:          "Relationships",
			Content:           "Please help",
			RequestedHelperID: "hp_helper1",
		})
		require.NoError(t, err)
		assert.Equal(t, "direct_request", result.Status)
	})

	t.Run("unknown helper rejected", func(t *testing.T) {
		uc := NewCreateDirectRequestUseCase(
			&mockDilemmaRepository{},
			&mockHelperRepository{},
			&mockNotifier{},
			&mockLogger{},
		)

		_, err := uc.Execute(context.Background(), CreateDirectRequestCommand{
			UserToken:         "tok1",
			Category:          "Relationships",
			Content:           "Please help",
			RequestedHelperID: "hp_missing",
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeclineDilemmaUseCase(t *testing.T) {
	t.Run("decline reverts direct request", func(t *testing.T) {
		requested := "hp_helper1"
		d := testDilemma(t, vo.StatusDirectRequest, &requested)

		h := testHelper(t, "hp_helper1")
		updated := false
		uc := NewDeclineDilemmaUseCase(&mockDilemmaRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
			UpdateFunc: func(ctx context.Context, d *dilemma.Dilemma) error {
				updated = true
				return nil
			},
		}, &mockHelperRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*helper.Helper, error) { return h, nil },
		}, &mockLogger{})

		result, err := uc.Execute(context.Background(), DeclineDilemmaCommand{
			DilemmaID: "dl_test00000001",
			HelperID:  "hp_helper1",
		})
		require.NoError(t, err)
		assert.Equal(t, "active", result.Status)
		assert.Nil(t, result.RequestedHelperID)
		assert.True(t, updated)
	})

	t.Run("requested helper declines with provider subject", func(t *testing.T) {
		requested := "hp_helper1"
		d := testDilemma(t, vo.StatusDirectRequest, &requested)
		h := testHelper(t, "hp_helper1")

		uc := NewDeclineDilemmaUseCase(&mockDilemmaRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
		}, &mockHelperRepository{
			GetByExternalIdentityIDFunc: func(ctx context.Context, externalID string) (*helper.Helper, error) {
				if externalID == "auth0|hp_helper1" {
					return h, nil
				}
				return nil, nil
			},
		}, &mockLogger{})

		result, err := uc.Execute(context.Background(), DeclineDilemmaCommand{
			DilemmaID: "dl_test00000001",
			HelperID:  "auth0|hp_helper1",
		})
		require.NoError(t, err)
		assert.Equal(t, "active", result.Status)
	})

	t.Run("declining active dilemma is idempotent no-op", func(t *testing.T) {
		d := testDilemma(t, vo.StatusActive, nil)

		updated := false
		uc := NewDeclineDilemmaUseCase(&mockDilemmaRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
			UpdateFunc: func(ctx context.Context, d *dilemma.Dilemma) error {
				updated = true
				return nil
			},
		}, &mockHelperRepository{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), DeclineDilemmaCommand{
			DilemmaID: "dl_test00000001",
			HelperID:  "hp_helper1",
		})
		require.NoError(t, err)
		assert.Equal(t, "active", result.Status)
		assert.False(t, updated, "no-op decline must not write")
	})

	t.Run("wrong helper forbidden", func(t *testing.T) {
		requested := "hp_helper1"
		d := testDilemma(t, vo.StatusDirectRequest, &requested)
		other := testHelper(t, "hp_other")

		uc := NewDeclineDilemmaUseCase(&mockDilemmaRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
		}, &mockHelperRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*helper.Helper, error) { return other, nil },
		}, &mockLogger{})

		_, err := uc.Execute(context.Background(), DeclineDilemmaCommand{
			DilemmaID: "dl_test00000001",
			HelperID:  "hp_other",
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestResolveDilemmaUseCase(t *testing.T) {
	t.Run("seeker resolves and session ends", func(t *testing.T) {
		d := testDilemma(t, vo.StatusInProgress, nil)

		uc := NewResolveDilemmaUseCase(
			&mockDilemmaRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
			},
			&mockSessionRepository{},
			&mockLogger{},
		)

		result, err := uc.Execute(context.Background(), ResolveDilemmaCommand{
			DilemmaID:   "dl_test00000001",
			SeekerToken: "tok1",
		})
		require.NoError(t, err)
		assert.Equal(t, "resolved", result.Status)
		assert.True(t, result.ResolvedBySeeker)
	})

	t.Run("non-owner forbidden with state unchanged", func(t *testing.T) {
		d := testDilemma(t, vo.StatusInProgress, nil)

		uc := NewResolveDilemmaUseCase(
			&mockDilemmaRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
			},
			&mockSessionRepository{},
			&mockLogger{},
		)

		_, err := uc.Execute(context.Background(), ResolveDilemmaCommand{
			DilemmaID:   "dl_test00000001",
			SeekerToken: "tok_other",
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.Equal(t, vo.StatusInProgress, d.Status())
	})
}

func TestReportDilemmaUseCase(t *testing.T) {
	d := testDilemma(t, vo.StatusInProgress, nil)

	uc := NewReportDilemmaUseCase(&mockDilemmaRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
	}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ReportDilemmaCommand{
		DilemmaID: "dl_test00000001",
		Reason:    "inappropriate",
	})
	require.NoError(t, err)

	assert.True(t, result.IsReported)
	assert.Equal(t, "inappropriate", result.ReportReason)
	assert.Equal(t, "in_progress", result.Status, "report leaves lifecycle status unchanged")

	_, err = uc.Execute(context.Background(), ReportDilemmaCommand{DilemmaID: "dl_test00000001"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestToggleSupportUseCase(t *testing.T) {
	supported := map[string]bool{}
	count := 0

	repo := &mockDilemmaRepository{
		ToggleSupportFunc: func(ctx context.Context, dilemmaID, viewerToken string) (bool, int, error) {
			if supported[viewerToken] {
				supported[viewerToken] = false
				count--
			} else {
				supported[viewerToken] = true
				count++
			}
			return supported[viewerToken], count, nil
		},
	}
	uc := NewToggleSupportUseCase(repo, &mockLogger{})

	// two viewers support independently
	r1, err := uc.Execute(context.Background(), ToggleSupportCommand{DilemmaID: "dl_x", ViewerToken: "tok1"})
	require.NoError(t, err)
	assert.True(t, r1.IsSupported)
	assert.Equal(t, 1, r1.SupportCount)

	r2, err := uc.Execute(context.Background(), ToggleSupportCommand{DilemmaID: "dl_x", ViewerToken: "tok2"})
	require.NoError(t, err)
	assert.True(t, r2.IsSupported)
	assert.Equal(t, 2, r2.SupportCount)

	// toggling twice returns to the original state
	r3, err := uc.Execute(context.Background(), ToggleSupportCommand{DilemmaID: "dl_x", ViewerToken: "tok1"})
	require.NoError(t, err)
	assert.False(t, r3.IsSupported)
	assert.Equal(t, 1, r3.SupportCount)
}

func TestSummarizeDilemmaUseCase(t *testing.T) {
	t.Run("summary persisted", func(t *testing.T) {
		d := testDilemma(t, vo.StatusActive, nil)

		uc := NewSummarizeDilemmaUseCase(
			&mockDilemmaRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
			},
			&mockSummarizer{
				SummarizeDilemmaFunc: func(ctx context.Context, content string) (string, error) {
					return "A short summary.", nil
				},
			},
			&mockLogger{},
		)

		result, err := uc.Execute(context.Background(), SummarizeDilemmaCommand{DilemmaID: "dl_test00000001"})
		require.NoError(t, err)
		assert.Equal(t, "A short summary.", result.Summary)
	})

	t.Run("upstream failure degrades without touching state", func(t *testing.T) {
		d := testDilemma(t, vo.StatusActive, nil)

		updated := false
		uc := NewSummarizeDilemmaUseCase(
			&mockDilemmaRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
				UpdateFunc: func(ctx context.Context, d *dilemma.Dilemma) error {
					updated = true
					return nil
				},
			},
			&mockSummarizer{
				SummarizeDilemmaFunc: func(ctx context.Context, content string) (string, error) {
					return "", fmt.Errorf("model timeout")
				},
			},
			&mockLogger{},
		)

		_, err := uc.Execute(context.Background(), SummarizeDilemmaCommand{DilemmaID: "dl_test00000001"})
		require.Error(t, err)
		assert.True(t, errors.IsUpstreamError(err))
		assert.False(t, updated)
		assert.Empty(t, d.Summary())
	})

	t.Run("cached summary short-circuits", func(t *testing.T) {
		d := testDilemma(t, vo.StatusActive, nil)
		require.NoError(t, d.SetSummary("cached"))

		called := false
		uc := NewSummarizeDilemmaUseCase(
			&mockDilemmaRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*dilemma.Dilemma, error) { return d, nil },
			},
			&mockSummarizer{
				SummarizeDilemmaFunc: func(ctx context.Context, content string) (string, error) {
					called = true
					return "fresh", nil
				},
			},
			&mockLogger{},
		)

		result, err := uc.Execute(context.Background(), SummarizeDilemmaCommand{DilemmaID: "dl_test00000001"})
		require.NoError(t, err)
		assert.Equal(t, "cached", result.Summary)
		assert.False(t, called)
	})
}
