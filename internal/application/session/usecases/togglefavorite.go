package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/session/dto"
	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type ToggleFavoriteCommand struct {
	SessionID   string
	SeekerToken string
}

// ToggleFavoriteUseCase flips the seeker's favorite mark on one of their
// sessions. Favoriting is seeker-only; the helper side has no mark.
type ToggleFavoriteUseCase struct {
	sessionRepo session.SessionRepository
	logger      logger.Interface
}

func NewToggleFavoriteUseCase(
	sessionRepo session.SessionRepository,
	logger logger.Interface,
) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, cmd ToggleFavoriteCommand) (*dto.SessionDTO, error) {
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

	if err := s.ToggleFavorite(cmd.SeekerToken); err != nil {
		return nil, errors.NewForbiddenError("only the session's seeker may favorite it")
	}

	if err := uc.sessionRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update session favorite", "session_id", cmd.SessionID, "error", err)
		return nil, err
	}

	uc.logger.Debugw("session favorite toggled",
		"session_id", cmd.SessionID,
		"is_favorited", s.IsFavorited(),
	)

	return dto.ToSessionDTO(s), nil
}
