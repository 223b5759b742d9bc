package routes

import (
	"log"

	"resume-match/internal/config"
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, cfg config.Config, logger *log.Logger, resultCache *cache.Redis) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app, cfg, logger, resultCache)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App, cfg config.Config, logger *log.Logger, resultCache *cache.Redis) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), cfg, logger, resultCache)
}
