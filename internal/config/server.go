package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ISLASKRIGA/IMony3/database/postgres"
	categoryHandler "github.com/ISLASKRIGA/IMony3/internal/api/category/handler"
	categoryRepository "github.com/ISLASKRIGA/IMony3/internal/api/category/repository"
	categoryService "github.com/ISLASKRIGA/IMony3/internal/api/category/service"
	transactionHandler "github.com/ISLASKRIGA/IMony3/internal/api/transaction/handler"
	transactionRepository "github.com/ISLASKRIGA/IMony3/internal/api/transaction/repository"
	transactionService "github.com/ISLASKRIGA/IMony3/internal/api/transaction/service"
	voiceHandler "github.com/ISLASKRIGA/IMony3/internal/api/voice/handler"
	voiceService "github.com/ISLASKRIGA/IMony3/internal/api/voice/service"
	"github.com/ISLASKRIGA/IMony3/internal/middleware"
	"github.com/ISLASKRIGA/IMony3/pkg/redis"
	"github.com/ISLASKRIGA/IMony3/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	redisServer redis.IRedis
	handlers    []handler

	categoryService categoryService.ICategoryService
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Category Domain
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo, s.redisServer)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)
	s.categoryService = categoryServices

	// Transaction Domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Voice Domain
	voiceServices := voiceService.NewVoiceService(s.log, categoryServices, transactionServices)
	voiceHandlers := voiceHandler.New(s.log, s.validator, s.middleware, voiceServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, categoryHandlers, transactionHandlers, voiceHandlers)
}

// SeedCategories writes the default registry once at startup. Existing rows
// are left untouched.
func (s *Server) SeedCategories() error {
	if s.categoryService == nil {
		return fmt.Errorf("handlers must be registered before seeding")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.categoryService.SeedDefaultCategories(ctx)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
