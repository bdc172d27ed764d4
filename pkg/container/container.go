package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"

	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"

	"library-backend/internal/domains/circulation"
	circulationHandler "library-backend/internal/domains/circulation/handler"
	circulationRepo "library-backend/internal/domains/circulation/repository"
	circulationService "library-backend/internal/domains/circulation/service"

	"library-backend/internal/domains/employee"
	employeeHandler "library-backend/internal/domains/employee/handler"
	employeeRepo "library-backend/internal/domains/employee/repository"
	employeeService "library-backend/internal/domains/employee/service"

	"library-backend/internal/domains/genre"
	genreHandler "library-backend/internal/domains/genre/handler"
	genreRepo "library-backend/internal/domains/genre/repository"
	genreService "library-backend/internal/domains/genre/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	BookRepo        book.Repository
	EmployeeRepo    employee.Repository
	GenreRepo       genre.Repository
	CirculationRepo circulation.Repository

	BookService        book.Service
	EmployeeService    employee.Service
	GenreService       genre.Service
	CirculationService circulation.Service

	BookHandler        *bookHandler.BookHandler
	EmployeeHandler    *employeeHandler.EmployeeHandler
	GenreHandler       *genreHandler.GenreHandler
	CirculationHandler *circulationHandler.CirculationHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		// Cache is an accelerator, not a dependency. Genre tree reads fall
		// through to the database when redis is down.
		logger.Warn("redis connection failed, continuing without cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.EmployeeRepo = employeeRepo.NewPostgresRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
	c.CirculationRepo = circulationRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.BookService = bookService.NewBookService(c.BookRepo, c.GenreRepo)
	c.EmployeeService = employeeService.NewEmployeeService(c.EmployeeRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.Cache)
	c.CirculationService = circulationService.NewCirculationService(c.CirculationRepo)
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.EmployeeHandler = employeeHandler.NewEmployeeHandler(c.EmployeeService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.CirculationHandler = circulationHandler.NewCirculationHandler(c.CirculationService)
}

// Cleanup releases infrastructure resources, called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis client", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	logger.Info("container cleaned up", nil)
}
