package achievement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

var testCatalog = []helper.Achievement{
	{ID: "ach_first_step", Name: "First Step", Metric: helper.MetricSessions, Threshold: 1},
	{ID: "ach_five_a_day", Name: "Helping Hand", Metric: helper.MetricSessions, Threshold: 5},
	{ID: "ach_community_pillar", Name: "Community Pillar", Metric: helper.MetricSessions, Threshold: 25},
	{ID: "ach_first_kudos", Name: "Heartfelt Thanks", Metric: helper.MetricKudos, Threshold: 1},
	{ID: "ach_trusted_voice", Name: "Trusted Voice", Metric: helper.MetricKudos, Threshold: 10},
}

type stubCatalog struct{}

func (stubCatalog) All() []helper.Achievement { return testCatalog }

func (stubCatalog) Get(id string) (helper.Achievement, bool) {
	for _, a := range testCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return helper.Achievement{}, false
}

type stubHelperRepo struct {
	helper  *helper.Helper
	updates int
}

func (r *stubHelperRepo) Save(ctx context.Context, h *helper.Helper) error   { return nil }
func (r *stubHelperRepo) Update(ctx context.Context, h *helper.Helper) error {
	r.updates++
	return nil
}
func (r *stubHelperRepo) GetByID(ctx context.Context, helperID string) (*helper.Helper, error) {
	return r.helper, nil
}
func (r *stubHelperRepo) GetByExternalIdentityID(ctx context.Context, id string) (*helper.Helper, error) {
	return nil, nil
}
func (r *stubHelperRepo) List(ctx context.Context, f helper.HelperFilter) ([]*helper.Helper, int64, error) {
	return nil, 0, nil
}
func (r *stubHelperRepo) CountAvailable(ctx context.Context) (int64, error) { return 0, nil }
func (r *stubHelperRepo) IncrementKudos(ctx context.Context, helperID string) error {
	return nil
}

type stubSessionRepo struct {
	count int64
}

func (r *stubSessionRepo) Save(ctx context.Context, s *session.Session) error   { return nil }
func (r *stubSessionRepo) Update(ctx context.Context, s *session.Session) error { return nil }
func (r *stubSessionRepo) GetByID(ctx context.Context, id string) (*session.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) GetByDilemmaID(ctx context.Context, id string) (*session.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) GetByParticipant(ctx context.Context, actorID string) ([]*session.Session, error) {
	return nil, nil
}
func (r *stubSessionRepo) CountByHelperID(ctx context.Context, helperID string) (int64, error) {
	return r.count, nil
}
func (r *stubSessionRepo) MarkKudosGiven(ctx context.Context, sessionID string) (bool, error) {
	return true, nil
}

func newEvaluatorUnderTest(t *testing.T, h *helper.Helper, sessionCount int64) (*Evaluator, *stubHelperRepo) {
	t.Helper()
	helperRepo := &stubHelperRepo{helper: h}
	return NewEvaluator(helperRepo, &stubSessionRepo{count: sessionCount}, stubCatalog{}, logger.NewLogger()), helperRepo
}

func testHelperWithKudos(t *testing.T, kudos int) *helper.Helper {
	t.Helper()
	h, err := helper.NewHelper("auth0|abc", "Jamie")
	require.NoError(t, err)
	require.NoError(t, h.SetID("hp_test00000001"))
	for i := 0; i < kudos; i++ {
		h.ReceiveKudos()
	}
	return h
}

func TestEvaluator_FirstSession(t *testing.T) {
	h := testHelperWithKudos(t, 0)
	eval, repo := newEvaluatorUnderTest(t, h, 1)

	result, err := eval.CheckAndAward(context.Background(), "hp_test00000001")
	require.NoError(t, err)

	require.Len(t, result.NewAchievements, 1)
	assert.Equal(t, "ach_first_step", result.NewAchievements[0].ID)
	assert.True(t, result.Helper.HasAchievement("ach_first_step"))
	assert.Equal(t, 1, repo.updates)
}

func TestEvaluator_MultipleThresholdsAtOnce(t *testing.T) {
	h := testHelperWithKudos(t, 1)
	eval, _ := newEvaluatorUnderTest(t, h, 5)

	result, err := eval.CheckAndAward(context.Background(), "hp_test00000001")
	require.NoError(t, err)

	ids := make([]string, 0, len(result.NewAchievements))
	for _, a := range result.NewAchievements {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{"ach_first_step", "ach_five_a_day", "ach_first_kudos"}, ids)
}

func TestEvaluator_RedundantRunAwardsNothing(t *testing.T) {
	h := testHelperWithKudos(t, 0)
	eval, repo := newEvaluatorUnderTest(t, h, 1)

	first, err := eval.CheckAndAward(context.Background(), "hp_test00000001")
	require.NoError(t, err)
	require.Len(t, first.NewAchievements, 1)

	// same stat snapshot, second run must be a no-op
	second, err := eval.CheckAndAward(context.Background(), "hp_test00000001")
	require.NoError(t, err)
	assert.Empty(t, second.NewAchievements)
	assert.Equal(t, 1, repo.updates, "no write on a no-op run")
	assert.Len(t, second.Helper.Achievements(), 1)
}

func TestEvaluator_BelowThresholds(t *testing.T) {
	h := testHelperWithKudos(t, 0)
	eval, repo := newEvaluatorUnderTest(t, h, 0)

	result, err := eval.CheckAndAward(context.Background(), "hp_test00000001")
	require.NoError(t, err)
	assert.Empty(t, result.NewAchievements)
	assert.Equal(t, 0, repo.updates)
}

func TestEvaluator_HelperNotFound(t *testing.T) {
	eval := NewEvaluator(&stubHelperRepo{}, &stubSessionRepo{}, stubCatalog{}, logger.NewLogger())

	_, err := eval.CheckAndAward(context.Background(), "hp_missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
