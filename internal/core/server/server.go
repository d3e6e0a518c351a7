package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tracksolutions/internal/core/cache"
	"tracksolutions/internal/core/config"
	"tracksolutions/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "tracksolutions/docs/swagger"
)

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// New creates a new Server instance with configured middleware.
// The cache is probed by the health endpoint.
func New(cfg *config.AppConfig, sessions cache.Cache) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "tracksolutions",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", healthHandler(sessions))

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// healthHandler reports whether the service and its session store are up.
func healthHandler(sessions cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		if err := sessions.Ping(ctx); err != nil {
			logger.Get().Warn("Session store unreachable", zap.Error(err))
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"cache":  "unreachable",
			})
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}
