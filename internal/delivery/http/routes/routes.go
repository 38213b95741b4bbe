package routes

import (
	"log"

	"tindev/internal/config"
	"tindev/internal/database"
	"tindev/internal/delivery/http/handler"
	"tindev/internal/infrastructure/cache"
	"tindev/internal/infrastructure/media"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, cfg config.Config, db database.DB, redis *cache.Redis, mediaClient media.Client, logger *log.Logger) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), cfg, db, redis, mediaClient, logger)
}
