package usecases

import (
	"context"

	ddto "github.com/kindredhq/kindred/internal/application/dilemma/dto"
	hdto "github.com/kindredhq/kindred/internal/application/helper/dto"
	sdto "github.com/kindredhq/kindred/internal/application/session/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type AcceptDilemmaCommand struct {
	DilemmaID string
	HelperID  string
}

// AcceptDilemmaResult carries every side effect of the acceptance in
// one response: the transitioned dilemma, the new session, the
// (possibly achievement-enriched) helper, and whatever was newly earned.
type AcceptDilemmaResult struct {
	Dilemma         *ddto.DilemmaDTO
	Session         *sdto.SessionDTO
	Helper          *hdto.HelperDTO
	NewAchievements []hdto.AchievementDTO
}

type AcceptDilemmaUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	helperRepo  helper.HelperRepository
	sessionRepo session.SessionRepository
	evaluator   AchievementEvaluator
	logger      logger.Interface
}

func NewAcceptDilemmaUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	helperRepo helper.HelperRepository,
	sessionRepo session.SessionRepository,
	evaluator AchievementEvaluator,
	logger logger.Interface,
) *AcceptDilemmaUseCase {
	return &AcceptDilemmaUseCase{
		dilemmaRepo: dilemmaRepo,
		helperRepo:  helperRepo,
		sessionRepo: sessionRepo,
		evaluator:   evaluator,
		logger:      logger,
	}
}

func (uc *AcceptDilemmaUseCase) Execute(ctx context.Context, cmd AcceptDilemmaCommand) (*AcceptDilemmaResult, error) {
	uc.logger.Infow("executing accept dilemma use case",
		"dilemma_id", cmd.DilemmaID, "helper_id", cmd.HelperID)

	if len(cmd.DilemmaID) == 0 {
		return nil, errors.NewValidationError("dilemma ID is required")
	}
	if len(cmd.HelperID) == 0 {
		return nil, errors.NewValidationError("helper ID is required")
	}

	d, err := uc.dilemmaRepo.GetByID(ctx, cmd.DilemmaID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dilemma not found")
	}

	acceptingHelper, err := resolveActingHelper(ctx, uc.helperRepo, cmd.HelperID)
	if err != nil {
		return nil, err
	}
	if acceptingHelper == nil {
		return nil, errors.NewNotFoundError("helper not found")
	}
	helperID := acceptingHelper.ID()

	if !d.Status().IsAcceptable() {
		return nil, errors.NewConflictError("dilemma is no longer open for acceptance")
	}
	if d.Status().IsDirectRequest() && d.RequestedHelperID() != nil && *d.RequestedHelperID() != helperID {
		return nil, errors.NewForbiddenError("dilemma is requested for a different helper")
	}

	// Guarded conditional update: only one of two racing accepts can win,
	// which keeps the one-session-per-dilemma invariant.
	won, err := uc.dilemmaRepo.AcceptIfPending(ctx, cmd.DilemmaID, helperID)
	if err != nil {
		uc.logger.Errorw("failed to accept dilemma", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, err
	}
	if !won {
		return nil, errors.NewConflictError("dilemma was already accepted")
	}

	if err := d.Accept(helperID); err != nil {
		return nil, errors.NewInternalError("failed to apply acceptance", err.Error())
	}

	newSession, err := session.NewSession(d.ID(), d.AuthorToken(), helperID, acceptingHelper.DisplayName())
	if err != nil {
		return nil, errors.NewInternalError("failed to create session", err.Error())
	}

	sessionID, err := id.NewSessionID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate session ID", err.Error())
	}
	if err := newSession.SetID(sessionID); err != nil {
		return nil, errors.NewInternalError("failed to assign session ID", err.Error())
	}

	if err := uc.sessionRepo.Save(ctx, newSession); err != nil {
		uc.logger.Errorw("failed to save session", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, err
	}

	evalResult, err := uc.evaluator.CheckAndAward(ctx, helperID)
	if err != nil {
		uc.logger.Errorw("achievement evaluation failed after accept",
			"helper_id", helperID, "error", err)
		return nil, err
	}

	uc.logger.Infow("dilemma accepted",
		"dilemma_id", d.ID(), "session_id", newSession.ID(),
		"helper_id", helperID, "new_achievements", len(evalResult.NewAchievements))

	return &AcceptDilemmaResult{
		Dilemma:         ddto.ToDilemmaDTO(d, false),
		Session:         sdto.ToSessionDTO(newSession),
		Helper:          hdto.ToHelperDTO(evalResult.Helper),
		NewAchievements: hdto.ToAchievementDTOs(evalResult.NewAchievements),
	}, nil
}
