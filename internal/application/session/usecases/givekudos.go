package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/achievement"
	helperdto "github.com/kindredhq/kindred/internal/application/helper/dto"
	"github.com/kindredhq/kindred/internal/application/session/dto"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

// AchievementEvaluator re-checks a helper's thresholds after a stat change.
type AchievementEvaluator interface {
	CheckAndAward(ctx context.Context, helperID string) (*achievement.EvaluateResult, error)
}

type GiveKudosCommand struct {
	SessionID   string
	SeekerToken string
}

type GiveKudosResult struct {
	Session         *dto.SessionDTO            `json:"session"`
	UpdatedHelper   *helperdto.HelperDTO       `json:"updated_helper"`
	NewAchievements []helperdto.AchievementDTO `json:"new_achievements"`
}

// GiveKudosUseCase lets a seeker thank their helper once per session. The
// once-only guard is a conditional update on the session row so two
// concurrent attempts cannot both increment the helper's counter.
type GiveKudosUseCase struct {
	sessionRepo session.SessionRepository
	helperRepo  helper.HelperRepository
	evaluator   AchievementEvaluator
	logger      logger.Interface
}

func NewGiveKudosUseCase(
	sessionRepo session.SessionRepository,
	helperRepo helper.HelperRepository,
	evaluator AchievementEvaluator,
	logger logger.Interface,
) *GiveKudosUseCase {
	return &GiveKudosUseCase{
		sessionRepo: sessionRepo,
		helperRepo:  helperRepo,
		evaluator:   evaluator,
		logger:      logger,
	}
}

func (uc *GiveKudosUseCase) Execute(ctx context.Context, cmd GiveKudosCommand) (*GiveKudosResult, error) {
	if len(cmd.SessionID) == 0 {
		return nil, errors.NewValidationError("session ID is required")
	}
	if len(cmd.SeekerToken) == 0 {
		return nil, errors.NewValidationError("seeker token is required")
	}

	s, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.NewNotFoundError("session not found")
	}
	if s.SeekerToken() != cmd.SeekerToken {
		return nil, errors.NewForbiddenError("only the session's seeker may give kudos")
	}
	if s.KudosGiven() {
		return nil, errors.NewConflictError("kudos already given for this session")
	}

	flipped, err := uc.sessionRepo.MarkKudosGiven(ctx, cmd.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to mark kudos", "session_id", cmd.SessionID, "error", err)
		return nil, err
	}
	if !flipped {
		return nil, errors.NewConflictError("kudos already given for this session")
	}

	if err := s.GiveKudos(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.helperRepo.IncrementKudos(ctx, s.HelperID()); err != nil {
		uc.logger.Errorw("failed to increment helper kudos", "helper_id", s.HelperID(), "error", err)
		return nil, err
	}

	evalResult, err := uc.evaluator.CheckAndAward(ctx, s.HelperID())
	if err != nil {
		uc.logger.Errorw("achievement evaluation failed after kudos", "helper_id", s.HelperID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("kudos given",
		"session_id", cmd.SessionID,
		"helper_id", s.HelperID(),
		"new_achievements", len(evalResult.NewAchievements),
	)

	return &GiveKudosResult{
		Session:         dto.ToSessionDTO(s),
		UpdatedHelper:   helperdto.ToHelperDTO(evalResult.Helper),
		NewAchievements: helperdto.ToAchievementDTOs(evalResult.NewAchievements),
	}, nil
}
