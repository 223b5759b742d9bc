package routes

import (
	"log"

	"resume-match/internal/config"
	v1 "resume-match/internal/delivery/http/routes/v1"
	"resume-match/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, logger *log.Logger, resultCache *cache.Redis) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, logger, resultCache)
}
