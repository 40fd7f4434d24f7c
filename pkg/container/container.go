package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"scribverse-backend/internal/config"
	"scribverse-backend/internal/domains/aiassist"
	aiHandler "scribverse-backend/internal/domains/aiassist/handler"
	aiService "scribverse-backend/internal/domains/aiassist/service"
	"scribverse-backend/internal/domains/category"
	categoryHandler "scribverse-backend/internal/domains/category/handler"
	categoryRepo "scribverse-backend/internal/domains/category/repository"
	categoryService "scribverse-backend/internal/domains/category/service"
	"scribverse-backend/internal/domains/post"
	postHandler "scribverse-backend/internal/domains/post/handler"
	postRepo "scribverse-backend/internal/domains/post/repository"
	postService "scribverse-backend/internal/domains/post/service"
	"scribverse-backend/internal/domains/user"
	userHandler "scribverse-backend/internal/domains/user/handler"
	userRepo "scribverse-backend/internal/domains/user/repository"
	userService "scribverse-backend/internal/domains/user/service"
	"scribverse-backend/internal/infrastructure/ai"
	infraCache "scribverse-backend/internal/infrastructure/cache"
	"scribverse-backend/internal/infrastructure/database"
	"scribverse-backend/internal/infrastructure/storage"
	"scribverse-backend/pkg/cache"
	"scribverse-backend/pkg/jwt"
	"scribverse-backend/pkg/logger"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton, built once at startup in dependency order: config, then
// infrastructure, then repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	Storage        *storage.MinIOStorage
	ImageProcessor *storage.ImageProcessor
	AIClient       *ai.Client
	AsynqClient    *asynq.Client

	UserRepo     user.Repository
	PostRepo     post.Repository
	CategoryRepo category.Repository

	UserService     user.Service
	PostService     post.Service
	CategoryService category.Service
	AIService       aiassist.Service

	UserHandler     *userHandler.UserHandler
	PostHandler     *postHandler.PostHandler
	CategoryHandler *categoryHandler.CategoryHandler
	AIHandler       *aiHandler.AIHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initDomains()

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}

	c.Cache = infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
	}

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.TokenTTL)

	c.Storage, err = storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("connect minio: %w", err)
	}
	c.ImageProcessor = storage.NewImageProcessor()

	c.AIClient = ai.NewClient(c.Config.AI)

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
	})

	return nil
}

func (c *Container) initDomains() {
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
	c.PostRepo = postRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(c.DB.Pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.PostService = postService.NewPostService(c.PostRepo, c.CategoryRepo, c.Storage, c.ImageProcessor, c.AsynqClient)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.Cache)
	c.AIService = aiService.NewAIService(c.AIClient, c.Cache)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.AIHandler = aiHandler.NewAIHandler(c.AIService)
}

// Cleanup releases external connections in reverse initialization order.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("close asynq client", err)
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
