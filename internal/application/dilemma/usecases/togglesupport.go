package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type ToggleSupportCommand struct {
	DilemmaID   string
	ViewerToken string
}

type ToggleSupportResult struct {
	DilemmaID    string `json:"dilemma_id"`
	IsSupported  bool   `json:"is_supported"`
	SupportCount int    `json:"support_count"`
}

type ToggleSupportUseCase struct {
	dilemmaRepo dilemma.DilemmaRepository
	logger      logger.Interface
}

func NewToggleSupportUseCase(
	dilemmaRepo dilemma.DilemmaRepository,
	logger logger.Interface,
) *ToggleSupportUseCase {
	return &ToggleSupportUseCase{
		dilemmaRepo: dilemmaRepo,
		logger:      logger,
	}
}

func (uc *ToggleSupportUseCase) Execute(ctx context.Context, cmd ToggleSupportCommand) (*ToggleSupportResult, error) {
	if len(cmd.DilemmaID) == 0 {
		return nil, errors.NewValidationError("dilemma ID is required")
	}
	if len(cmd.ViewerToken) == 0 {
		return nil, errors.NewValidationError("viewer token is required")
	}

	// The repository flips the viewer's mark and adjusts the shared
	// counter atomically, so concurrent toggles from different viewers
	// never lose updates.
	supported, count, err := uc.dilemmaRepo.ToggleSupport(ctx, cmd.DilemmaID, cmd.ViewerToken)
	if err != nil {
		uc.logger.Errorw("failed to toggle support", "dilemma_id", cmd.DilemmaID, "error", err)
		return nil, err
	}

	uc.logger.Debugw("support toggled",
		"dilemma_id", cmd.DilemmaID, "is_supported", supported, "support_count", count)

	return &ToggleSupportResult{
		DilemmaID:    cmd.DilemmaID,
		IsSupported:  supported,
		SupportCount: count,
	}, nil
}
