package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

func testHelper(t *testing.T) *helper.Helper {
	t.Helper()
	h, err := helper.NewHelper("auth0|abc", "Jamie")
	require.NoError(t, err)
	require.NoError(t, h.SetID("hp_helper00001"))
	return h
}

func TestCreateHelperUseCase(t *testing.T) {
	t.Run("creates with community defaults", func(t *testing.T) {
		var saved *helper.Helper
		helperRepo := &mockHelperRepository{
			SaveFunc: func(ctx context.Context, h *helper.Helper) error {
				saved = h
				return nil
			},
		}
		uc := NewCreateHelperUseCase(helperRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), CreateHelperCommand{
			ExternalIdentityID: "auth0|new",
			DisplayName:        "Riley",
		})
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.True(t, id.HasPrefix(result.ID, id.PrefixHelper))
		assert.Equal(t, "community", result.Role)
		assert.False(t, result.IsAvailable)
		assert.Equal(t, 0, result.KudosCount)
		assert.Equal(t, 1, result.Level)
		assert.Equal(t, 100, result.NextLevelXP)
		assert.Equal(t, "none", result.ApplicationStatus)
		assert.Empty(t, result.Achievements)
	})

	t.Run("rejects a duplicate identity", func(t *testing.T) {
		helperRepo := &mockHelperRepository{
			GetByExternalIdentityIDFunc: func(ctx context.Context, externalIdentityID string) (*helper.Helper, error) {
				return testHelper(t), nil
			},
		}
		uc := NewCreateHelperUseCase(helperRepo, logger.NewLogger())

		_, err := uc.Execute(context.Background(), CreateHelperCommand{
			ExternalIdentityID: "auth0|abc",
			DisplayName:        "Jamie",
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("requires identity and display name", func(t *testing.T) {
		uc := NewCreateHelperUseCase(&mockHelperRepository{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), CreateHelperCommand{DisplayName: "Riley"})
		assert.True(t, errors.IsValidationError(err))

		_, err = uc.Execute(context.Background(), CreateHelperCommand{ExternalIdentityID: "auth0|x"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetHelperUseCase(t *testing.T) {
	helperRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
			if helperID == "hp_helper00001" {
				return testHelper(t), nil
			}
			return nil, nil
		},
		GetByExternalIdentityIDFunc: func(ctx context.Context, externalIdentityID string) (*helper.Helper, error) {
			if externalIdentityID == "auth0|abc" {
				return testHelper(t), nil
			}
			return nil, nil
		},
	}
	uc := NewGetHelperUseCase(helperRepo, logger.NewLogger())

	t.Run("by short ID", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetHelperQuery{HelperID: "hp_helper00001"})
		require.NoError(t, err)
		assert.Equal(t, "Jamie", result.DisplayName)
	})

	t.Run("by external identity", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetHelperQuery{ExternalIdentityID: "auth0|abc"})
		require.NoError(t, err)
		assert.Equal(t, "hp_helper00001", result.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetHelperQuery{HelperID: "hp_missing"})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("requires an identifier", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetHelperQuery{})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdateProfileUseCase(t *testing.T) {
	t.Run("sanitizes the bio before storing", func(t *testing.T) {
		h := testHelper(t)
		helperRepo := &mockHelperRepository{
			GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
				return h, nil
			},
		}
		md := &mockMarkdownService{
			SanitizeFunc: func(htmlContent string) string {
				return strings.ReplaceAll(htmlContent, "<script>alert(1)</script>", "")
			},
		}
		uc := NewUpdateProfileUseCase(helperRepo, md, logger.NewLogger())

		result, err := uc.Execute(context.Background(), UpdateProfileCommand{
			HelperID:    "hp_helper00001",
			ActorID:     "hp_helper00001",
			DisplayName: "Jamie R.",
			Bio:         "I listen.<script>alert(1)</script>",
			Expertise:   []string{"Anxiety", "Grief"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Jamie R.", result.DisplayName)
		assert.Equal(t, "I listen.", result.Bio)
		assert.Equal(t, []string{"Anxiety", "Grief"}, result.Expertise)
	})

	t.Run("rejects unknown expertise", func(t *testing.T) {
		uc := NewUpdateProfileUseCase(&mockHelperRepository{}, &mockMarkdownService{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), UpdateProfileCommand{
			HelperID:    "hp_helper00001",
			ActorID:     "hp_helper00001",
			DisplayName: "Jamie",
			Expertise:   []string{"Astrology"},
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("forbids editing someone else's profile", func(t *testing.T) {
		helperRepo := &mockHelperRepository{
			GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
				return testHelper(t), nil
			},
		}
		uc := NewUpdateProfileUseCase(helperRepo, &mockMarkdownService{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), UpdateProfileCommand{
			HelperID:    "hp_helper00001",
			ActorID:     "hp_intruder001",
			DisplayName: "Mallory",
		})
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestSetAvailabilityUseCase(t *testing.T) {
	t.Run("mirrors availability into the presence cache", func(t *testing.T) {
		h := testHelper(t)
		var cached *bool
		helperRepo := &mockHelperRepository{
			GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
				return h, nil
			},
		}
		presence := &mockPresenceCache{
			SetAvailableFunc: func(ctx context.Context, helperID string, available bool) error {
				assert.Equal(t, "hp_helper00001", helperID)
				cached = &available
				return nil
			},
		}
		uc := NewSetAvailabilityUseCase(helperRepo, presence, logger.NewLogger())

		result, err := uc.Execute(context.Background(), SetAvailabilityCommand{
			HelperID:    "hp_helper00001",
			ActorID:     "hp_helper00001",
			IsAvailable: true,
		})
		require.NoError(t, err)

		assert.True(t, result.IsAvailable)
		require.NotNil(t, cached)
		assert.True(t, *cached)
	})

	t.Run("cache failure does not fail the toggle", func(t *testing.T) {
		h := testHelper(t)
		helperRepo := &mockHelperRepository{
			GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
				return h, nil
			},
		}
		presence := &mockPresenceCache{
			SetAvailableFunc: func(ctx context.Context, helperID string, available bool) error {
				return fmt.Errorf("redis down")
			},
		}
		uc := NewSetAvailabilityUseCase(helperRepo, presence, logger.NewLogger())

		result, err := uc.Execute(context.Background(), SetAvailabilityCommand{
			HelperID:    "hp_helper00001",
			ActorID:     "hp_helper00001",
			IsAvailable: true,
		})
		require.NoError(t, err)
		assert.True(t, result.IsAvailable)
	})
}

func TestOnlineCountUseCase(t *testing.T) {
	t.Run("prefers the presence cache", func(t *testing.T) {
		presence := &mockPresenceCache{
			OnlineCountFunc: func(ctx context.Context) (int64, error) { return 7, nil },
		}
		uc := NewOnlineCountUseCase(&mockHelperRepository{}, presence, logger.NewLogger())

		result, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(7), result.OnlineCount)
	})

	t.Run("falls back to the database", func(t *testing.T) {
		presence := &mockPresenceCache{
			OnlineCountFunc: func(ctx context.Context) (int64, error) {
				return 0, fmt.Errorf("redis down")
			},
		}
		helperRepo := &mockHelperRepository{
			CountAvailableFunc: func(ctx context.Context) (int64, error) { return 3, nil },
		}
		uc := NewOnlineCountUseCase(helperRepo, presence, logger.NewLogger())

		result, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.OnlineCount)
	})
}

func TestApplicationLifecycleUseCases(t *testing.T) {
	t.Run("submit then approve promotes to certified", func(t *testing.T) {
		h := testHelper(t)
		helperRepo := &mockHelperRepository{
			GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
				return h, nil
			},
		}
		submit := NewSubmitApplicationUseCase(helperRepo, logger.NewLogger())
		review := NewReviewApplicationUseCase(helperRepo, logger.NewLogger())

		result, err := submit.Execute(context.Background(), SubmitApplicationCommand{
			HelperID: "hp_helper00001",
			ActorID:  "hp_helper00001",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", result.ApplicationStatus)

		result, err = review.Execute(context.Background(), ReviewApplicationCommand{
			HelperID: "hp_helper00001",
			Approve:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, "approved", result.ApplicationStatus)
		assert.Equal(t, "certified", result.Role)
	})

	t.Run("double submission conflicts", func(t *testing.T) {
		h := testHelper(t)
		require.NoError(t, h.SubmitApplication())
		helperRepo := &mockHelperRepository{
			GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
				return h, nil
			},
		}
		uc := NewSubmitApplicationUseCase(helperRepo, logger.NewLogger())

		_, err := uc.Execute(context.Background(), SubmitApplicationCommand{
			HelperID: "hp_helper00001",
			ActorID:  "hp_helper00001",
		})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("review without a pending application conflicts", func(t *testing.T) {
		helperRepo := &mockHelperRepository{
			GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
				return testHelper(t), nil
			},
		}
		uc := NewReviewApplicationUseCase(helperRepo, logger.NewLogger())

		_, err := uc.Execute(context.Background(), ReviewApplicationCommand{
			HelperID: "hp_helper00001",
			Approve:  true,
		})
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestCompleteTrainingUseCase(t *testing.T) {
	h := testHelper(t)
	helperRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
			return h, nil
		},
	}
	uc := NewCompleteTrainingUseCase(helperRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CompleteTrainingCommand{
		HelperID:  "hp_helper00001",
		ActorID:   "hp_helper00001",
		QuizScore: 85,
	})
	require.NoError(t, err)
	assert.True(t, result.TrainingCompleted)
	require.NotNil(t, result.QuizScore)
	assert.Equal(t, 85, *result.QuizScore)

	_, err = uc.Execute(context.Background(), CompleteTrainingCommand{
		HelperID:  "hp_helper00001",
		ActorID:   "hp_helper00001",
		QuizScore: 150,
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestChangeRoleUseCase(t *testing.T) {
	h := testHelper(t)
	helperRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, helperID string) (*helper.Helper, error) {
			return h, nil
		},
	}
	uc := NewChangeRoleUseCase(helperRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeRoleCommand{
		HelperID: "hp_helper00001",
		Role:     "moderator",
	})
	require.NoError(t, err)
	assert.Equal(t, "moderator", result.Role)

	_, err = uc.Execute(context.Background(), ChangeRoleCommand{
		HelperID: "hp_helper00001",
		Role:     "emperor",
	})
	assert.True(t, errors.IsValidationError(err))
}
