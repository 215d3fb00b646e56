package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/config"
	"github.com/zoo-visit-planner/internal/delivery/http/handler"
	"github.com/zoo-visit-planner/internal/delivery/http/middleware"
)

// Handlers - набор обработчиков HTTP API
type Handlers struct {
	Catalog *handler.CatalogHandler
	Session *handler.SessionHandler
	Plan    *handler.PlanHandler
	Map     *handler.MapHandler
	Stats   *handler.StatsHandler
}

// HealthCheck - проверка зависимостей для /health
type HealthCheck func(ctx context.Context) error

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
	health   HealthCheck
}

// NewServer - создание нового HTTP сервера. health может быть nil.
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers, health HealthCheck) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Zoo Visit Planner",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		health:   health,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		if s.health != nil {
			if err := s.health(c.Context()); err != nil {
				s.logger.Warn("Health check failed", zap.Error(err))
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unhealthy",
					"time":   time.Now(),
				})
			}
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Catalog routes
	api.Get("/locations", s.handlers.Catalog.ListLocations)
	api.Get("/locations/:id", s.handlers.Catalog.GetLocation)
	api.Get("/tours", s.handlers.Catalog.ListTours)

	// Session routes
	sessions := api.Group("/sessions")
	sessions.Post("/", s.handlers.Session.CreateSession)
	sessions.Get("/:id/selection", s.handlers.Session.GetSelection)
	sessions.Post("/:id/selection/toggle", s.handlers.Session.ToggleSelection)
	sessions.Post("/:id/tours/load", s.handlers.Session.LoadTour)
	sessions.Post("/:id/route", s.handlers.Session.GenerateRoute)
	sessions.Get("/:id/route", s.handlers.Session.GetRoute)

	// Map routes
	sessions.Get("/:id/map.svg", s.handlers.Map.RenderMap)
	sessions.Get("/:id/map/hit", s.handlers.Map.HitTest)

	// Plan routes
	api.Get("/plans", s.handlers.Plan.ListPlans)
	api.Delete("/plans/:plan_id", s.handlers.Plan.DeletePlan)
	sessions.Post("/:id/plans", s.handlers.Plan.SavePlan)
	sessions.Post("/:id/plans/:plan_id/load", s.handlers.Plan.LoadPlan)

	// Stats
	api.Get("/stats", s.handlers.Stats.GetStatistics)
	api.Post("/stats/refresh", s.handlers.Stats.RefreshStatistics)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
