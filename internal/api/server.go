// internal/api/server.go
package api

import (
	"context"
	"time"

	"career-match/internal/common/config"
	"career-match/internal/common/logger"
	matchcareer "career-match/internal/workers/assessment/match-career"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP boundary of the assessment service.
type Server struct {
	app     *fiber.App
	cfg     config.ServerConfig
	handler *matchcareer.Handler
	logger  logger.Logger
	started time.Time
}

func NewServer(cfg config.ServerConfig, handler *matchcareer.Handler, log logger.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		handler: handler,
		logger:  log,
		started: time.Now(),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "career-match",
		ReadTimeout:           config.GetDuration(cfg.ReadTimeout),
		WriteTimeout:          config.GetDuration(cfg.WriteTimeout),
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
	})

	s.app.Use(recover.New())
	s.app.Use(requestID())
	s.app.Use(accessLog(log))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, " + HeaderRequestID,
		ExposeHeaders: HeaderRequestID + ", " + HeaderCache,
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", s.health)
	s.app.Get("/ready", s.ready)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")
	api.Post("/match-career", s.matchCareer)
	api.Get("/questions", s.questions)
	api.Get("/careers", s.careers)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{"address": s.cfg.Address})
	return s.app.Listen(s.cfg.Address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
