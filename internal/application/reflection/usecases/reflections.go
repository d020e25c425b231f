package usecases

import (
	"context"

	"github.com/kindredhq/kindred/internal/application/reflection/dto"
	"github.com/kindredhq/kindred/internal/domain/reflection"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
)

type PostReflectionCommand struct {
	UserToken string
	Content   string
}

// PostReflectionUseCase adds a note to the anonymous gratitude wall.
type PostReflectionUseCase struct {
	reflectionRepo reflection.ReflectionRepository
	logger         logger.Interface
}

func NewPostReflectionUseCase(
	reflectionRepo reflection.ReflectionRepository,
	logger logger.Interface,
) *PostReflectionUseCase {
	return &PostReflectionUseCase{
		reflectionRepo: reflectionRepo,
		logger:         logger,
	}
}

func (uc *PostReflectionUseCase) Execute(ctx context.Context, cmd PostReflectionCommand) (*dto.ReflectionDTO, error) {
	r, err := reflection.NewReflection(cmd.UserToken, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	reflectionID, err := id.NewReflectionID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate reflection ID", err.Error())
	}
	if err := r.SetID(reflectionID); err != nil {
		return nil, errors.NewInternalError("failed to assign reflection ID", err.Error())
	}

	if err := uc.reflectionRepo.Save(ctx, r); err != nil {
		uc.logger.Errorw("failed to save reflection", "error", err)
		return nil, err
	}

	uc.logger.Infow("reflection posted", "reflection_id", r.ID())

	return dto.ToReflectionDTO(r), nil
}

type ListReflectionsResult struct {
	Reflections []*dto.ReflectionDTO `json:"reflections"`
	Total       int                  `json:"total"`
}

// ListReflectionsUseCase returns the wall, newest first.
type ListReflectionsUseCase struct {
	reflectionRepo reflection.ReflectionRepository
	logger         logger.Interface
}

func NewListReflectionsUseCase(
	reflectionRepo reflection.ReflectionRepository,
	logger logger.Interface,
) *ListReflectionsUseCase {
	return &ListReflectionsUseCase{
		reflectionRepo: reflectionRepo,
		logger:         logger,
	}
}

func (uc *ListReflectionsUseCase) Execute(ctx context.Context) (*ListReflectionsResult, error) {
	reflections, err := uc.reflectionRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list reflections", "error", err)
		return nil, err
	}

	return &ListReflectionsResult{
		Reflections: dto.ToReflectionDTOs(reflections),
		Total:       len(reflections),
	}, nil
}

type ReactCommand struct {
	ReflectionID string
	ReactionType string
}

// ReactUseCase bumps a reaction counter. Counters are unbounded per kind
// and the increment happens in the store so concurrent reactions all land.
type ReactUseCase struct {
	reflectionRepo reflection.ReflectionRepository
	logger         logger.Interface
}

func NewReactUseCase(
	reflectionRepo reflection.ReflectionRepository,
	logger logger.Interface,
) *ReactUseCase {
	return &ReactUseCase{
		reflectionRepo: reflectionRepo,
		logger:         logger,
	}
}

func (uc *ReactUseCase) Execute(ctx context.Context, cmd ReactCommand) (*dto.ReflectionDTO, error) {
	if len(cmd.ReflectionID) == 0 {
		return nil, errors.NewValidationError("reflection ID is required")
	}
	if len(cmd.ReactionType) == 0 {
		return nil, errors.NewValidationError("reaction type is required")
	}

	r, err := uc.reflectionRepo.AddReaction(ctx, cmd.ReflectionID, cmd.ReactionType)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.NewNotFoundError("reflection not found")
	}

	uc.logger.Debugw("reaction added",
		"reflection_id", cmd.ReflectionID,
		"reaction_type", cmd.ReactionType,
	)

	return dto.ToReflectionDTO(r), nil
}
