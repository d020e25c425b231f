package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/internal/domain/dilemma"
	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

func activeDilemma(t *testing.T, id, author string, category vo.Category, supportCount int) *dilemma.Dilemma {
	t.Helper()
	now := time.Now()
	d, err := dilemma.ReconstructDilemma(
		id, author, category, "content of "+id, vo.StatusActive,
		supportCount, false, "", nil, nil,
		false, "", nil, 1, now, now,
	)
	require.NoError(t, err)
	return d
}

func TestGetCommunityFeedUseCase(t *testing.T) {
	pool := []*dilemma.Dilemma{
		activeDilemma(t, "dl_1", "tok1", vo.CategoryAnxiety, 3),
		activeDilemma(t, "dl_2", "tok_blocked", vo.CategoryAnxiety, 0),
		activeDilemma(t, "dl_3", "tok3", vo.CategoryRelationships, 1),
	}

	t.Run("filters blocked authors and marks supported items", func(t *testing.T) {
		dilemmaRepo := &mockDilemmaRepository{
			ListFunc: func(ctx context.Context, filter dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error) {
				return pool, int64(len(pool)), nil
			},
			SupportedIDsFunc: func(ctx context.Context, viewerToken string, ids []string) (map[string]bool, error) {
				return map[string]bool{"dl_1": true}, nil
			},
		}
		blockRepo := &mockBlockRepository{
			GetBlockedIDsFunc: func(ctx context.Context, blockerID string) ([]string, error) {
				assert.Equal(t, "tok_viewer", blockerID)
				return []string{"tok_blocked"}, nil
			},
		}
		uc := NewGetCommunityFeedUseCase(dilemmaRepo, blockRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), GetCommunityFeedQuery{
			ViewerToken: "tok_viewer",
			Sort:        "most-support",
			Page:        1,
		})
		require.NoError(t, err)

		require.Len(t, result.Dilemmas, 2)
		assert.Equal(t, "dl_1", result.Dilemmas[0].ID)
		assert.True(t, result.Dilemmas[0].IsSupported)
		assert.Equal(t, "dl_3", result.Dilemmas[1].ID)
		assert.False(t, result.Dilemmas[1].IsSupported)
		assert.Equal(t, 2, result.Total)
		assert.False(t, result.HasMore)
	})

	t.Run("block lookup failure widens the feed instead of failing", func(t *testing.T) {
		dilemmaRepo := &mockDilemmaRepository{
			ListFunc: func(ctx context.Context, filter dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error) {
				return pool, int64(len(pool)), nil
			},
		}
		blockRepo := &mockBlockRepository{
			GetBlockedIDsFunc: func(ctx context.Context, blockerID string) ([]string, error) {
				return nil, fmt.Errorf("store unavailable")
			},
		}
		uc := NewGetCommunityFeedUseCase(dilemmaRepo, blockRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), GetCommunityFeedQuery{ViewerToken: "tok_viewer", Page: 1})
		require.NoError(t, err)
		assert.Len(t, result.Dilemmas, 3)
	})

	t.Run("rejects unknown category filter", func(t *testing.T) {
		uc := NewGetCommunityFeedUseCase(&mockDilemmaRepository{}, &mockBlockRepository{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), GetCommunityFeedQuery{Category: "Astrology", Page: 1})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("paginates cumulatively", func(t *testing.T) {
		big := make([]*dilemma.Dilemma, 0, 15)
		for i := 0; i < 15; i++ {
			big = append(big, activeDilemma(t, fmt.Sprintf("dl_%02d", i), fmt.Sprintf("tok%d", i), vo.CategoryAnxiety, i))
		}
		dilemmaRepo := &mockDilemmaRepository{
			ListFunc: func(ctx context.Context, filter dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error) {
				return big, int64(len(big)), nil
			},
		}
		uc := NewGetCommunityFeedUseCase(dilemmaRepo, &mockBlockRepository{}, logger.NewLogger())

		result, err := uc.Execute(context.Background(), GetCommunityFeedQuery{Page: 1})
		require.NoError(t, err)
		assert.Len(t, result.Dilemmas, 10)
		assert.True(t, result.HasMore)

		result, err = uc.Execute(context.Background(), GetCommunityFeedQuery{Page: 2})
		require.NoError(t, err)
		assert.Len(t, result.Dilemmas, 15)
		assert.False(t, result.HasMore)
	})
}

func TestGetForYouFeedUseCase(t *testing.T) {
	t.Run("requires a viewer token", func(t *testing.T) {
		uc := NewGetForYouFeedUseCase(&mockDilemmaRepository{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), GetForYouFeedQuery{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("matches viewer history categories newest first", func(t *testing.T) {
		pool := []*dilemma.Dilemma{
			activeDilemma(t, "dl_anx", "tok1", vo.CategoryAnxiety, 0),
			activeDilemma(t, "dl_rel", "tok2", vo.CategoryRelationships, 0),
			activeDilemma(t, "dl_own", "tok_viewer", vo.CategoryAnxiety, 0),
		}
		dilemmaRepo := &mockDilemmaRepository{
			GetByAuthorTokenFunc: func(ctx context.Context, authorToken string) ([]*dilemma.Dilemma, error) {
				return []*dilemma.Dilemma{activeDilemma(t, "dl_own", "tok_viewer", vo.CategoryAnxiety, 0)}, nil
			},
			ListFunc: func(ctx context.Context, filter dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error) {
				return pool, int64(len(pool)), nil
			},
		}
		uc := NewGetForYouFeedUseCase(dilemmaRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), GetForYouFeedQuery{ViewerToken: "tok_viewer"})
		require.NoError(t, err)

		require.Len(t, result.Dilemmas, 1)
		assert.Equal(t, "dl_anx", result.Dilemmas[0].ID)
	})

	t.Run("cold start surfaces least supported posts", func(t *testing.T) {
		pool := []*dilemma.Dilemma{
			activeDilemma(t, "dl_busy", "tok1", vo.CategoryAnxiety, 9),
			activeDilemma(t, "dl_quiet", "tok2", vo.CategoryGrief, 0),
		}
		dilemmaRepo := &mockDilemmaRepository{
			ListFunc: func(ctx context.Context, filter dilemma.DilemmaFilter) ([]*dilemma.Dilemma, int64, error) {
				return pool, int64(len(pool)), nil
			},
		}
		uc := NewGetForYouFeedUseCase(dilemmaRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), GetForYouFeedQuery{ViewerToken: "tok_viewer"})
		require.NoError(t, err)

		require.Len(t, result.Dilemmas, 2)
		assert.Equal(t, "dl_quiet", result.Dilemmas[0].ID)
		assert.Equal(t, "dl_busy", result.Dilemmas[1].ID)
	})
}

func TestGetReportedQueueUseCase(t *testing.T) {
	now := time.Now()
	reported, err := dilemma.ReconstructDilemma(
		"dl_reported", "tok1", vo.CategoryAnxiety, "content", vo.StatusActive,
		0, true, "off topic", nil, nil, false, "", nil, 1, now, now,
	)
	require.NoError(t, err)
	removed, err := dilemma.ReconstructDilemma(
		"dl_removed", "tok2", vo.CategoryAnxiety, "content", vo.StatusRemovedByModerator,
		0, true, "spam", nil, nil, false, "", nil, 1, now, now,
	)
	require.NoError(t, err)

	dilemmaRepo := &mockDilemmaRepository{
		GetReportedFunc: func(ctx context.Context) ([]*dilemma.Dilemma, error) {
			return []*dilemma.Dilemma{reported, removed}, nil
		},
	}
	uc := NewGetReportedQueueUseCase(dilemmaRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Dilemmas, 1)
	assert.Equal(t, "dl_reported", result.Dilemmas[0].ID)
	assert.Equal(t, 1, result.Total)
}
