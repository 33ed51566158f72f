package handlers

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/developia-II/moderated-translator/internal/config"
	"github.com/developia-II/moderated-translator/internal/metrics"
	"github.com/developia-II/moderated-translator/internal/models"
	"github.com/developia-II/moderated-translator/internal/services"
	"github.com/developia-II/moderated-translator/utils"
)

const (
	corsAllowMethods = "POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// NewApp wires the middleware and routes of the HTTP server.
func NewApp(cfg config.Server, translator *services.Translator, m *metrics.Metrics, l *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler(l),
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: l.StandardLog().Writer(),
	}))
	if cfg.CORSAllowOrigins != "" {
		app.Use(corsHeaders(cfg.CORSAllowOrigins))
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSAllowOrigins,
			AllowHeaders: corsAllowHeaders,
			AllowMethods: corsAllowMethods,
		}))
	}

	app.Get("/healthz", Health)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// Routes
	api := app.Group("/api")
	if cfg.RateLimitPerMinute > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitPerMinute,
			Expiration: 1 * time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return utils.ErrorResponse(c, fiber.StatusTooManyRequests, models.ErrorResponse{
					Error:   "Too many requests",
					Details: "Rate limit exceeded, try again later",
				})
			},
		}))
	}

	th := NewTranslateHandler(translator)
	api.Post("/translate", th.Translate)
	if cfg.CORSAllowOrigins != "" {
		api.Options("/translate", Preflight)
	}
	api.All("/translate", MethodNotAllowed)

	return app
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// corsHeaders puts the CORS headers on every response, including errors and
// requests sent without Origin, which the cors middleware alone leaves bare.
func corsHeaders(origins string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if c.GetRespHeader(fiber.HeaderAccessControlAllowOrigin) == "" && !strings.Contains(origins, ",") {
				c.Set(fiber.HeaderAccessControlAllowOrigin, origins)
			}
			c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
			c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
		}()
		return c.Next()
	}
}
