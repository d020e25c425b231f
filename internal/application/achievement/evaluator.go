package achievement

import (
	"context"

	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

// Catalog exposes the fixed achievement threshold table.
type Catalog interface {
	All() []helper.Achievement
	Get(id string) (helper.Achievement, bool)
}

type EvaluateResult struct {
	Helper          *helper.Helper
	NewAchievements []helper.Achievement
}

// Evaluator awards achievements whose thresholds the helper's current
// statistics cross. The achievement set only grows, and re-running with
// unchanged stats awards nothing, so callers may invoke it redundantly.
type Evaluator struct {
	helperRepo  helper.HelperRepository
	sessionRepo session.SessionRepository
	catalog     Catalog
	logger      logger.Interface
}

func NewEvaluator(
	helperRepo helper.HelperRepository,
	sessionRepo session.SessionRepository,
	catalog Catalog,
	logger logger.Interface,
) *Evaluator {
	return &Evaluator{
		helperRepo:  helperRepo,
		sessionRepo: sessionRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

func (e *Evaluator) CheckAndAward(ctx context.Context, helperID string) (*EvaluateResult, error) {
	if len(helperID) == 0 {
		return nil, errors.NewValidationError("helper ID is required")
	}

	h, err := e.helperRepo.GetByID(ctx, helperID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, errors.NewNotFoundError("helper not found")
	}

	sessionCount, err := e.sessionRepo.CountByHelperID(ctx, helperID)
	if err != nil {
		return nil, err
	}

	stats := helper.HelperStats{
		SessionCount: int(sessionCount),
		KudosCount:   h.KudosCount(),
	}

	newAchievements := []helper.Achievement{}
	for _, a := range e.catalog.All() {
		if !a.IsEarned(stats) {
			continue
		}
		if h.GrantAchievement(a.ID) {
			newAchievements = append(newAchievements, a)
		}
	}

	if len(newAchievements) == 0 {
		return &EvaluateResult{Helper: h, NewAchievements: newAchievements}, nil
	}

	if err := e.helperRepo.Update(ctx, h); err != nil {
		e.logger.Errorw("failed to persist awarded achievements", "helper_id", helperID, "error", err)
		return nil, err
	}

	ids := make([]string, 0, len(newAchievements))
	for _, a := range newAchievements {
		ids = append(ids, a.ID)
	}
	e.logger.Infow("achievements awarded", "helper_id", helperID, "achievement_ids", ids)

	return &EvaluateResult{Helper: h, NewAchievements: newAchievements}, nil
}
