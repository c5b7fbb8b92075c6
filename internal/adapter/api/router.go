package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"golang.org/x/time/rate"
)

type RouterConfig struct {
	Version         string
	Env             string
	AnalysisLimiter *rate.Limiter
	AccessLog       bool
}

func SetupRouter(app *fiber.App, handler *Handler, cfg RouterConfig) {
	// Middleware
	if cfg.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": cfg.Version,
			"env":     cfg.Env,
		})
	})

	// API Versioning
	v1 := app.Group("/v1")
	v1.Get("/engines", handler.HandleEngines)

	auth := v1.Group("/auth")
	auth.Post("/signup", handler.HandleSignUp)
	auth.Post("/signin", handler.HandleSignIn)

	// Everything below needs a signed-in caller. The group middleware matches
	// all of /v1, so it must be registered after the public routes.
	user := v1.Group("", RequireUser(handler.accounts))
	user.Post("/auth/signout", handler.HandleSignOut)
	user.Get("/me", handler.HandleMe)

	user.Get("/subscription", handler.HandleSubscription)
	user.Post("/subscription/upgrade", handler.HandleUpgrade)
	user.Post("/subscription/cancel", handler.HandleCancel)

	analyze := []fiber.Handler{handler.HandleAnalyze}
	if cfg.AnalysisLimiter != nil {
		analyze = append([]fiber.Handler{Throttle(cfg.AnalysisLimiter)}, analyze...)
	}
	user.Post("/analyses", analyze...)
	user.Get("/analyses/current", handler.HandleCurrent)
	user.Delete("/analyses/current", handler.HandleClear)
	user.Delete("/analyses/current/error", handler.HandleClearError)

	user.Get("/history", handler.HandleHistory)
	user.Delete("/history/:id", handler.HandleDeleteHistory)
	user.Get("/history/:id/comparison", handler.HandleComparison)
	user.Get("/history/:id/export", handler.HandleExport)
}
