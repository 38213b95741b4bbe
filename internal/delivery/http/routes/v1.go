package routes

import (
	"log"

	"tindev/internal/config"
	"tindev/internal/database"
	v1 "tindev/internal/delivery/http/routes/v1"
	"tindev/internal/infrastructure/cache"
	"tindev/internal/infrastructure/media"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, mediaClient media.Client, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redis, mediaClient, logger)
}
