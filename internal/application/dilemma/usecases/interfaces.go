package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/achievement"
	"github.com/kindredhq/kindred/internal/application/dilemma/dto"
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/domain/helper"
)

type PostDilemmaExecutor interface {
	Execute(ctx context.Context, cmd PostDilemmaCommand) (*dto.DilemmaDTO, error)
}

type CreateDirectRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateDirectRequestCommand) (*dto.DilemmaDTO, error)
}

type AcceptDilemmaExecutor interface {
	Execute(ctx context.Context, cmd AcceptDilemmaCommand) (*AcceptDilemmaResult, error)
}

type DeclineDilemmaExecutor interface {
	Execute(ctx context.Context, cmd DeclineDilemmaCommand) (*dto.DilemmaDTO, error)
}

type ResolveDilemmaExecutor interface {
	Execute(ctx context.Context, cmd ResolveDilemmaCommand) (*dto.DilemmaDTO, error)
}

type ReportDilemmaExecutor interface {
	Execute(ctx context.Context, cmd ReportDilemmaCommand) (*dto.DilemmaDTO, error)
}

type ToggleSupportExecutor interface {
	Execute(ctx context.Context, cmd ToggleSupportCommand) (*ToggleSupportResult, error)
}

type SummarizeDilemmaExecutor interface {
	Execute(ctx context.Context, cmd SummarizeDilemmaCommand) (*dto.DilemmaDTO, error)
}

type GetDilemmaExecutor interface {
	Execute(ctx context.Context, query GetDilemmaQuery) (*dto.DilemmaDTO, error)
}

type ListDilemmasExecutor interface {
	Execute(ctx context.Context, query ListDilemmasQuery) (*ListDilemmasResult, error)
}

// AchievementEvaluator re-checks a helper's thresholds after an event
// that could cross one.
type AchievementEvaluator interface {
	CheckAndAward(ctx context.Context, helperID string) (*achievement.EvaluateResult, error)
}

// Summarizer produces an AI summary of dilemma content. Failures are
// surfaced as upstream errors and never mutate dilemma state.
type Summarizer interface {
	SummarizeDilemma(ctx context.Context, content string) (string, error)
}

// DirectRequestNotifier tells a helper they have been personally asked
// for help. Notification failures are logged, never fatal.
type DirectRequestNotifier interface {
	NotifyDirectRequest(ctx context.Context, h *helper.Helper, d *dilemma.Dilemma) error
}

// resolveActingHelper loads the helper behind an actor identifier.
// Bearer tokens carry the external identity subject for
// provider-authenticated helpers, while internal callers pass the
// domain ID, so both forms must resolve to the same record.
func resolveActingHelper(ctx context.Context, repo helper.HelperRepository, actorID string) (*helper.Helper, error) {
	h, err := repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		h, err = repo.GetByExternalIdentityID(ctx, actorID)
		if err != nil {
			return nil, err
		}
	}
	return h, nil
}
