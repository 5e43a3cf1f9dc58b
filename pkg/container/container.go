package container

import (
	"context"
	"fmt"
	"time"

	"sportshub-backend/internal/config"
	"sportshub-backend/internal/domains/article"
	articleHandler "sportshub-backend/internal/domains/article/handler"
	articleRepo "sportshub-backend/internal/domains/article/repository"
	articleService "sportshub-backend/internal/domains/article/service"
	"sportshub-backend/internal/domains/user"
	userHandler "sportshub-backend/internal/domains/user/handler"
	userRepo "sportshub-backend/internal/domains/user/repository"
	userService "sportshub-backend/internal/domains/user/service"
	infraCache "sportshub-backend/internal/infrastructure/cache"
	"sportshub-backend/internal/infrastructure/database"
	"sportshub-backend/internal/scheduler"
	"sportshub-backend/internal/seed"
	"sportshub-backend/pkg/cache"
	"sportshub-backend/pkg/jwt"
	"sportshub-backend/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB // nil with the memory driver
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	UserRepo    user.Repository
	ArticleRepo article.Repository

	// Services
	UserService    user.Service
	ArticleService article.Service

	// Handlers
	UserHandler    *userHandler.UserHandler
	ArticleHandler *articleHandler.ArticleHandler

	// Background jobs
	Publisher *scheduler.Publisher
}

// ========================================
// CONSTRUCTOR
// ========================================

// NewContainer builds the whole dependency graph. Initialization order
// matters: config, infrastructure, repositories, services, handlers,
// then background jobs.
func NewContainer() (*Container, error) {
	c := &Container{}

	// STEP 1: CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
		"storage":     cfg.Storage.Driver,
	})

	// STEP 2: STORAGE INFRASTRUCTURE
	if err := c.initStorage(); err != nil {
		return nil, err
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// STEP 3: SERVICES
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo)

	// STEP 4: HANDLERS
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.JWTManager, cfg.IsProduction())
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)

	// STEP 5: BACKGROUND JOBS
	c.Publisher = scheduler.NewPublisher(c.ArticleRepo)
	if err := c.Publisher.Start(); err != nil {
		return nil, fmt.Errorf("failed to start publisher: %w", err)
	}

	logger.Info("container initialized", nil)
	return c, nil
}

// initStorage picks the storage driver and builds the repositories on
// top of it.
func (c *Container) initStorage() error {
	switch c.Config.Storage.Driver {
	case "memory":
		return c.initMemoryStorage()
	default:
		return c.initPostgresStorage()
	}
}

// initMemoryStorage wires the ephemeral in-process stores plus the demo
// seed data. No database, no cache.
func (c *Container) initMemoryStorage() error {
	c.Cache = infraCache.NewNoopCache()
	c.UserRepo = userRepo.NewMemoryRepository()
	c.ArticleRepo = articleRepo.NewMemoryRepository(c.UserRepo)

	if err := seed.Run(context.Background(), c.UserRepo, c.ArticleRepo); err != nil {
		return fmt.Errorf("failed to seed memory storage: %w", err)
	}
	return nil
}

// initPostgresStorage connects Postgres, runs migrations, connects Redis
// (best effort) and wires the relational repositories.
func (c *Container) initPostgresStorage() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	if err := db.RunMigrations("migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Redis is an optimization, not a dependency. A failed connection
	// downgrades to the no-op cache.
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Warn("redis connection failed, caching disabled", map[string]interface{}{
			"error": err.Error(),
		})
		c.Cache = infraCache.NewNoopCache()
	} else {
		c.Cache = redisCache
	}

	c.UserRepo = userRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ArticleRepo = articleRepo.NewPostgresRepository(db.Pool, c.Cache)
	return nil
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases everything the container owns, in reverse order.
func (c *Container) Cleanup() {
	if c.Publisher != nil {
		c.Publisher.Stop()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("redis close", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	logger.Info("container cleaned up", nil)
}
