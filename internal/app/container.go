package app

import (
	"log"
	"os"

	"resume-match/internal/config"
	"resume-match/internal/infrastructure/cache"
)

// Container holds process-wide resources that outlive a single request.
type Container struct {
	Config config.Config
	Logger *log.Logger
	Cache  *cache.Redis
}

func NewContainer(cfg config.Config) *Container {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	return &Container{
		Config: cfg,
		Logger: logger,
		Cache:  cache.NewRedis(logger),
	}
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
