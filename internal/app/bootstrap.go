package app

import (
	"fmt"
	"log"
	"strings"

	"resume-match/internal/config"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/routes"
	"resume-match/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, logger *log.Logger, resultCache *cache.Redis) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, cfg, logger, resultCache)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c := NewContainer(cfg)
	app := New(cfg, c.Logger, c.Cache)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())
}

func registerRoutes(app *fiber.App, cfg config.Config, logger *log.Logger, resultCache *cache.Redis) {
	if app == nil {
		return
	}

	routes.NewRegistry().Register(app, cfg, logger, resultCache)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
