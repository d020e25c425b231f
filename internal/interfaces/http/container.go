package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kindredhq/kindred/internal/application/achievement"
	"github.com/kindredhq/kindred/internal/infrastructure/ai"
	"github.com/kindredhq/kindred/internal/infrastructure/auth"
	"github.com/kindredhq/kindred/internal/infrastructure/cache"
	"github.com/kindredhq/kindred/internal/infrastructure/catalog"
	"github.com/kindredhq/kindred/internal/infrastructure/config"
	"github.com/kindredhq/kindred/internal/infrastructure/email"
	"github.com/kindredhq/kindred/internal/infrastructure/permission"
	"github.com/kindredhq/kindred/internal/infrastructure/ratelimit"
	"github.com/kindredhq/kindred/internal/interfaces/http/middleware"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/services/markdown"
)

const rbacModelPath = "./configs/rbac_model.conf"

// Container wires infrastructure, repositories, use cases, and handlers
// together and owns the shared clients that need closing on shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	actionRateLimiter    *middleware.ActionRateLimiter

	// Infrastructure services
	jwtService         *auth.JWTService
	enforcer           *permission.Enforcer
	rateLimiter        ratelimit.RateLimiter
	presenceCache      *cache.PresenceCache
	aiService          *ai.OpenAIService
	notifier           *email.SMTPNotifier
	achievementCatalog *catalog.AchievementCatalog
	markdownService    markdown.MarkdownService
	evaluator          *achievement.Evaluator
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initUseCases()
	c.initHandlers()
	c.initMiddlewares()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, rbacModelPath, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitDefaultPolicies(enforcer, c.log); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer

	c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis)
	c.presenceCache = cache.NewPresenceCache(c.redis)
	c.aiService = ai.NewOpenAIService(&c.cfg.AI, c.log)
	c.markdownService = markdown.NewMarkdownService()

	c.notifier = email.NewSMTPNotifier(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
		BaseURL:     c.cfg.Server.BaseURL,
	}, c.log)

	achievementCatalog, err := catalog.NewAchievementCatalog()
	if err != nil {
		return fmt.Errorf("failed to load achievement catalog: %w", err)
	}
	c.achievementCatalog = achievementCatalog

	return nil
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.actionRateLimiter = middleware.NewActionRateLimiter(c.rateLimiter, c.log)
}

// Shutdown releases shared clients.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
