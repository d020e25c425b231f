package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/internal/domain/reflection"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type mockReflectionRepository struct {
	SaveFunc        func(ctx context.Context, r *reflection.Reflection) error
	UpdateFunc      func(ctx context.Context, r *reflection.Reflection) error
	GetByIDFunc     func(ctx context.Context, reflectionID string) (*reflection.Reflection, error)
	ListFunc        func(ctx context.Context) ([]*reflection.Reflection, error)
	AddReactionFunc func(ctx context.Context, reflectionID, reactionType string) (*reflection.Reflection, error)
}

func (m *mockReflectionRepository) Save(ctx context.Context, r *reflection.Reflection) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReflectionRepository) Update(ctx context.Context, r *reflection.Reflection) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReflectionRepository) GetByID(ctx context.Context, reflectionID string) (*reflection.Reflection, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, reflectionID)
	}
	return nil, nil
}

func (m *mockReflectionRepository) List(ctx context.Context) ([]*reflection.Reflection, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockReflectionRepository) AddReaction(ctx context.Context, reflectionID, reactionType string) (*reflection.Reflection, error) {
	if m.AddReactionFunc != nil {
		return m.AddReactionFunc(ctx, reflectionID, reactionType)
	}
	return nil, nil
}

func testReflection(t *testing.T) *reflection.Reflection {
	t.Helper()
	now := time.Now()
	r, err := reflection.ReconstructReflection(
		"rf_reflection01", "tok_user", "grateful for today",
		map[string]int{reflection.ReactionLight: 2},
		1, now, now,
	)
	require.NoError(t, err)
	return r
}

func TestPostReflectionUseCase(t *testing.T) {
	t.Run("posts with a generated ID and seeded reactions", func(t *testing.T) {
		var saved *reflection.Reflection
		repo := &mockReflectionRepository{
			SaveFunc: func(ctx context.Context, r *reflection.Reflection) error {
				saved = r
				return nil
			},
		}
		uc := NewPostReflectionUseCase(repo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), PostReflectionCommand{
			UserToken: "tok_user",
			Content:   "someone listened to me today",
		})
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.True(t, id.HasPrefix(result.ID, id.PrefixReflection))
		assert.Equal(t, map[string]int{reflection.ReactionLight: 0}, result.Reactions)
	})

	t.Run("validation table", func(t *testing.T) {
		uc := NewPostReflectionUseCase(&mockReflectionRepository{}, logger.NewLogger())

		tests := []struct {
			name string
			cmd  PostReflectionCommand
		}{
			{"missing token", PostReflectionCommand{Content: "hello"}},
			{"missing content", PostReflectionCommand{UserToken: "tok_user"}},
			{"content too long", PostReflectionCommand{UserToken: "tok_user", Content: strings.Repeat("x", 1001)}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.cmd)
				assert.True(t, errors.IsValidationError(err))
			})
		}
	})
}

func TestListReflectionsUseCase(t *testing.T) {
	repo := &mockReflectionRepository{
		ListFunc: func(ctx context.Context) ([]*reflection.Reflection, error) {
			return []*reflection.Reflection{testReflection(t)}, nil
		},
	}
	uc := NewListReflectionsUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Reflections, 1)
	assert.Equal(t, "rf_reflection01", result.Reflections[0].ID)
	assert.Equal(t, 1, result.Total)
}

func TestReactUseCase(t *testing.T) {
	t.Run("returns the updated counters", func(t *testing.T) {
		repo := &mockReflectionRepository{
			AddReactionFunc: func(ctx context.Context, reflectionID, reactionType string) (*reflection.Reflection, error) {
				r := testReflection(t)
				require.NoError(t, r.React(reactionType))
				return r, nil
			},
		}
		uc := NewReactUseCase(repo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), ReactCommand{
			ReflectionID: "rf_reflection01",
			ReactionType: reflection.ReactionLight,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Reactions[reflection.ReactionLight])
	})

	t.Run("unknown reflection", func(t *testing.T) {
		uc := NewReactUseCase(&mockReflectionRepository{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), ReactCommand{
			ReflectionID: "rf_missing",
			ReactionType: reflection.ReactionLight,
		})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("requires a reaction type", func(t *testing.T) {
		uc := NewReactUseCase(&mockReflectionRepository{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), ReactCommand{ReflectionID: "rf_reflection01"})
		assert.True(t, errors.IsValidationError(err))
	})
}
