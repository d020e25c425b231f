package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type ResolveDilemmaCommand struct {
	DilemmaID   string
	SeekerToken string
}

type ResolveDilemmaUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	sessionRepo session.SessionRepository
	logger      logger.Interface
}

func NewResolveDilemmaUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	sessionRepo session.SessionRepository,
	logger logger.Interface,
) *ResolveDilemmaUseCase {
	return &ResolveDilemmaUseCase{
		dilemmaRepo: dilemmaRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *ResolveDilemmaUseCase) Execute(ctx context.Context, cmd ResolveDilemmaCommand) (*dto.DilemmaDTO, error) {
	uc.logger.Infow("executing resolve dilemma use case", "dilemma_id", cmd.DilemmaID)

	if len(cmd.DilemmaID) == 0 {
		return nil, errors.NewValidationError("dilemma ID is required")
	}
	if len(cmd.SeekerToken) == 0 {
		return nil, errors.NewValidationError("seeker token is required")
	}

	d, err := uc.dilemmaRepo.GetByID(ctx, cmd.DilemmaID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dilemma not found")
	}

	if d.AuthorToken() != cmd.SeekerToken {
		return nil, errors.NewForbiddenError("only the original seeker may resolve this dilemma")
	}

	if err := d.Resolve(cmd.SeekerToken); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.dilemmaRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to persist resolution", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, err
	}

	// close the open session, if one exists
	if s, err := uc.sessionRepo.GetByDilemmaID(ctx, cmd.DilemmaID); err == nil && s != nil && !s.IsEnded() {
		s.End()
		if err := uc.sessionRepo.Update(ctx, s); err != nil {
			uc.logger.Warnw("failed to end session after resolve",
				"dilemma_id", cmd.DilemmaID, "session_id", s.ID(), "error", err)
		}
	}

	uc.logger.Infow("dilemma resolved", "dilemma_id", d.ID())

	return dto.ToDilemmaDTO(d, false), nil
}
