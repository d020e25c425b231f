package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/session/dto"
	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type ListSessionsQuery struct {
	ActorID string
}

type ListSessionsResult struct {
	Sessions []*dto.SessionDTO `json:"sessions"`
	Total    int               `json:"total"`
}

// ListSessionsUseCase returns an actor's session history, newest first.
// The actor may be a seeker token or a helper ID; the repository matches
// on either side of the session.
type ListSessionsUseCase struct {
	sessionRepo session.SessionRepository
	logger      logger.Interface
}

func NewListSessionsUseCase(
	sessionRepo session.SessionRepository,
	logger logger.Interface,
) *ListSessionsUseCase {
	return &ListSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, query ListSessionsQuery) (*ListSessionsResult, error) {
	if len(query.ActorID) == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	sessions, err := uc.sessionRepo.GetByParticipant(ctx, query.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to list sessions", "actor_id", query.ActorID, "error", err)
		return nil, err
	}

	return &ListSessionsResult{
		Sessions: dto.ToSessionDTOs(sessions),
		Total:    len(sessions),
	}, nil
}
