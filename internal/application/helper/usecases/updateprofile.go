package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/helper/dto"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/services/markdown"

	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
)

type UpdateProfileCommand struct {
	HelperID    string
	ActorID     string
	DisplayName string
	Bio         string
	Expertise   []string
}

// UpdateProfileUseCase edits a helper's own profile. The bio accepts
// markdown; raw HTML in the submitted text is stripped before storage.
type UpdateProfileUseCase struct {
	helperRepo      helper.HelperRepository
	markdownService markdown.MarkdownService
	logger          logger.Interface
}

func NewUpdateProfileUseCase(
	helperRepo helper.HelperRepository,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		helperRepo:      helperRepo,
		markdownService: markdownService,
		logger:          logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.HelperDTO, error) {
	if len(cmd.HelperID) == 0 {
		return nil, errors.NewValidationError("helper ID is required")
	}
	if len(cmd.DisplayName) == 0 {
		return nil, errors.NewValidationError("display name is required")
	}

	expertise := make([]vo.Category, 0, len(cmd.Expertise))
	for _, e := range cmd.Expertise {
		category, err := vo.NewCategory(e)
		if err != nil {
			return nil, errors.NewValidationError("invalid expertise category: " + e)
		}
		expertise = append(expertise, category)
	}

	h, err := uc.helperRepo.GetByID(ctx, cmd.HelperID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, errors.NewNotFoundError("helper not found")
	}
	if h.ExternalIdentityID() != cmd.ActorID && h.ID() != cmd.ActorID {
		return nil, errors.NewForbiddenError("cannot edit another helper's profile")
	}

	bio := uc.markdownService.Sanitize(cmd.Bio)

	if err := h.UpdateProfile(cmd.DisplayName, bio, expertise); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.helperRepo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to update helper profile", "helper_id", cmd.HelperID, "error", err)
		return nil, err
	}

	uc.logger.Infow("helper profile updated", "helper_id", cmd.HelperID)

	return dto.ToHelperDTO(h), nil
}
