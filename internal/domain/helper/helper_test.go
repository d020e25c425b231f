package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dvo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	vo "github.com/kindredhq/kindred/internal/domain/helper/valueobjects"
	"github.com/kindredhq/kindred/internal/shared/authorization"
)

func newCommunityHelper(t *testing.T) *Helper {
	t.Helper()
	h, err := NewHelper("auth0|abc123", "Jamie")
	require.NoError(t, err)
	require.NoError(t, h.SetID("hp_test00000001"))
	return h
}

func TestNewHelper_Defaults(t *testing.T) {
	h, err := NewHelper("auth0|abc123", "Jamie")
	require.NoError(t, err)

	assert.Equal(t, authorization.RoleCommunity, h.Role())
	assert.Equal(t, 0.0, h.Reputation())
	assert.False(t, h.IsAvailable())
	assert.Equal(t, 0, h.KudosCount())
	assert.Empty(t, h.Achievements())
	assert.Equal(t, 0, h.XP())
	assert.Equal(t, 1, h.Level())
	assert.Equal(t, 100, h.NextLevelXP())
	assert.Equal(t, vo.ApplicationNone, h.ApplicationStatus())
	assert.False(t, h.TrainingCompleted())
}

func TestNewHelper_Invalid(t *testing.T) {
	_, err := NewHelper("", "Jamie")
	assert.Error(t, err)

	_, err = NewHelper("auth0|abc123", "")
	assert.Error(t, err)
}

func TestHelper_GrantAchievement(t *testing.T) {
	h := newCommunityHelper(t)

	assert.True(t, h.GrantAchievement("ach_first_step"))
	assert.True(t, h.HasAchievement("ach_first_step"))

	// granting twice must not duplicate
	assert.False(t, h.GrantAchievement("ach_first_step"))
	assert.Equal(t, []string{"ach_first_step"}, h.Achievements())

	assert.True(t, h.GrantAchievement("ach_first_kudos"))
	assert.Equal(t, []string{"ach_first_step", "ach_first_kudos"}, h.Achievements())
}

func TestHelper_AwardXP(t *testing.T) {
	h := newCommunityHelper(t)

	require.NoError(t, h.AwardXP(50))
	assert.Equal(t, 50, h.XP())
	assert.Equal(t, 1, h.Level())

	// crossing the threshold levels up and carries over the remainder
	require.NoError(t, h.AwardXP(75))
	assert.Equal(t, 25, h.XP())
	assert.Equal(t, 2, h.Level())
	assert.Equal(t, 200, h.NextLevelXP())

	assert.Error(t, h.AwardXP(0))
	assert.Error(t, h.AwardXP(-10))
}

func TestHelper_AwardXP_MultipleLevels(t *testing.T) {
	h := newCommunityHelper(t)

	// 100 + 200 + 50 crosses two level boundaries
	require.NoError(t, h.AwardXP(350))
	assert.Equal(t, 3, h.Level())
	assert.Equal(t, 50, h.XP())
	assert.Equal(t, 300, h.NextLevelXP())
}

func TestHelper_ApplicationLifecycle(t *testing.T) {
	h := newCommunityHelper(t)

	require.NoError(t, h.SubmitApplication())
	assert.Equal(t, vo.ApplicationPending, h.ApplicationStatus())

	// double submission rejected while pending
	assert.Error(t, h.SubmitApplication())

	require.NoError(t, h.ReviewApplication(true))
	assert.Equal(t, vo.ApplicationApproved, h.ApplicationStatus())
	assert.Equal(t, authorization.RoleCertified, h.Role())

	// approved is terminal
	assert.Error(t, h.SubmitApplication())
}

func TestHelper_ApplicationRejectedCanReapply(t *testing.T) {
	h := newCommunityHelper(t)

	require.NoError(t, h.SubmitApplication())
	require.NoError(t, h.ReviewApplication(false))
	assert.Equal(t, vo.ApplicationRejected, h.ApplicationStatus())
	assert.Equal(t, authorization.RoleCommunity, h.Role())

	require.NoError(t, h.SubmitApplication())
	assert.Equal(t, vo.ApplicationPending, h.ApplicationStatus())
}

func TestHelper_CompleteTraining(t *testing.T) {
	h := newCommunityHelper(t)

	require.NoError(t, h.CompleteTraining(85))
	assert.True(t, h.TrainingCompleted())
	require.NotNil(t, h.QuizScore())
	assert.Equal(t, 85, *h.QuizScore())

	assert.Error(t, h.CompleteTraining(101))
	assert.Error(t, h.CompleteTraining(-1))
}

func TestHelper_UpdateProfile(t *testing.T) {
	h := newCommunityHelper(t)

	err := h.UpdateProfile("Jamie L.", "Here to listen.", []dvo.Category{dvo.CategoryAnxiety, dvo.CategoryGrief})
	require.NoError(t, err)
	assert.Equal(t, "Jamie L.", h.DisplayName())
	assert.Equal(t, "Here to listen.", h.Bio())
	assert.Len(t, h.Expertise(), 2)

	assert.Error(t, h.UpdateProfile("", "bio", nil))
	assert.Error(t, h.UpdateProfile("Jamie", "bio", []dvo.Category{"Bogus"}))
}

func TestHelper_ChangeRole(t *testing.T) {
	h := newCommunityHelper(t)

	require.NoError(t, h.ChangeRole(authorization.RoleModerator))
	assert.Equal(t, authorization.RoleModerator, h.Role())

	assert.Error(t, h.ChangeRole(authorization.Role("superuser")))
}

func TestHelper_ReceiveKudosAndReputation(t *testing.T) {
	h := newCommunityHelper(t)

	h.ReceiveKudos()
	h.ReceiveKudos()
	assert.Equal(t, 2, h.KudosCount())

	h.AdjustReputation(1.5)
	assert.Equal(t, 1.5, h.Reputation())

	h.AdjustReputation(-5)
	assert.Equal(t, 0.0, h.Reputation(), "reputation floors at zero")
}

func TestAchievement_IsEarned(t *testing.T) {
	sessions := Achievement{ID: "ach_five_a_day", Metric: MetricSessions, Threshold: 5}
	kudos := Achievement{ID: "ach_first_kudos", Metric: MetricKudos, Threshold: 1}

	assert.False(t, sessions.IsEarned(HelperStats{SessionCount: 4}))
	assert.True(t, sessions.IsEarned(HelperStats{SessionCount: 5}))
	assert.True(t, sessions.IsEarned(HelperStats{SessionCount: 25}))

	assert.False(t, kudos.IsEarned(HelperStats{KudosCount: 0}))
	assert.True(t, kudos.IsEarned(HelperStats{KudosCount: 1}))

	unknown := Achievement{ID: "x", Metric: "unknown", Threshold: 1}
	assert.False(t, unknown.IsEarned(HelperStats{SessionCount: 10, KudosCount: 10}))
}
