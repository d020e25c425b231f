package http

import (
	"github.com/kindredhq/kindred/internal/domain/dilemma"
	"github.com/kindredhq/kindred/internal/domain/helper"
	"github.com/kindredhq/kindred/internal/domain/moderation"
	"github.com/kindredhq/kindred/internal/domain/reflection"
	"github.com/kindredhq/kindred/internal/domain/session"
	"github.com/kindredhq/kindred/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	dilemmaRepo    dilemma.DilemmaRepository
	helperRepo     helper.HelperRepository
	sessionRepo    session.SessionRepository
	reflectionRepo reflection.ReflectionRepository
	moderationRepo moderation.ModerationRepository
	blockRepo      moderation.BlockRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		dilemmaRepo:    repository.NewDilemmaRepository(c.db),
		helperRepo:     repository.NewHelperRepository(c.db),
		sessionRepo:    repository.NewSessionRepository(c.db),
		reflectionRepo: repository.NewReflectionRepository(c.db),
		moderationRepo: repository.NewModerationRepository(c.db),
		blockRepo:      repository.NewBlockRepository(c.db),
	}
}
