package container

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	adminHandler "portfolio-backend/internal/domains/admin/handler"
	adminRepo "portfolio-backend/internal/domains/admin/repository"
	adminService "portfolio-backend/internal/domains/admin/service"
	blogHandler "portfolio-backend/internal/domains/blog/handler"
	blogRepo "portfolio-backend/internal/domains/blog/repository"
	blogService "portfolio-backend/internal/domains/blog/service"
	contactHandler "portfolio-backend/internal/domains/contact/handler"
	contactRepo "portfolio-backend/internal/domains/contact/repository"
	contactService "portfolio-backend/internal/domains/contact/service"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
	skillHandler "portfolio-backend/internal/domains/skill/handler"
	skillRepo "portfolio-backend/internal/domains/skill/repository"
	skillService "portfolio-backend/internal/domains/skill/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton for the lifetime of the process.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AdminRepo   adminRepo.Repository
	BlogRepo    blogRepo.Repository
	ProjectRepo projectRepo.Repository
	SkillRepo   skillRepo.Repository
	ContactRepo contactRepo.Repository

	AdminService   adminService.Service
	BlogService    blogService.Service
	ProjectService projectService.Service
	SkillService   skillService.Service
	ContactService contactService.Service

	AdminHandler   *adminHandler.AdminHandler
	BlogHandler    *blogHandler.BlogHandler
	ProjectHandler *projectHandler.ProjectHandler
	SkillHandler   *skillHandler.SkillHandler
	ContactHandler *contactHandler.ContactHandler
}

// NewContainer builds the whole dependency graph in order: config,
// infrastructure, repositories, services, handlers, then the admin seed.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)
	logger.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initCache()
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	if err := c.seedAdmin(); err != nil {
		return nil, err
	}

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	c.DB = db
	logger.Info("database connected", map[string]interface{}{
		"host":     dbConfig.Host,
		"database": dbConfig.DBName,
	})
	return nil
}

// initCache connects Redis. A Redis outage is not fatal: caching and rate
// limiting degrade, core endpoints keep working.
func (c *Container) initCache() {
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Warn("redis connection failed, continuing without cache", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		logger.Info("redis connected", map[string]interface{}{
			"host": c.Config.Redis.Host,
		})
	}

	c.Cache = redisCache
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AdminRepo = adminRepo.NewPostgresRepository(pool)
	c.BlogRepo = blogRepo.NewPostgresRepository(pool)
	c.ProjectRepo = projectRepo.NewPostgresRepository(pool)
	c.SkillRepo = skillRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AdminService = adminService.NewAdminService(c.AdminRepo, c.JWTManager)
	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.Cache)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo)
	c.SkillService = skillService.NewSkillService(c.SkillRepo, c.Cache)
	c.ContactService = contactService.NewContactService(c.ContactRepo)
}

func (c *Container) initHandlers() {
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService, c.Config.App.SiteURL, c.Config.App.Name)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.SkillHandler = skillHandler.NewSkillHandler(c.SkillService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
}

func (c *Container) seedAdmin() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin := c.Config.Admin
	if err := c.AdminService.Seed(ctx, admin.Email, admin.Password, admin.Name); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	return nil
}

// Cleanup releases infrastructure resources. Called during graceful
// shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis connection", err)
		}
	}

	logger.Info("container resources released", nil)
}
