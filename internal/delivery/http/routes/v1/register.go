package v1

import (
	"log"

	"resume-match/internal/config"
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/domain/matching"
	"resume-match/internal/domain/recommend"
	"resume-match/internal/infrastructure/cache"
	"resume-match/internal/infrastructure/embedding"
	"resume-match/internal/scraper"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, logger *log.Logger, resultCache *cache.Redis) {
	if r == nil {
		return
	}

	var sim matching.SimilarityScorer = matching.JaccardScorer{}
	if cfg.Embedding.GeminiAPIKey != "" {
		sim = embedding.NewScorer(cfg.Embedding.GeminiAPIKey, cfg.Embedding.Model, logger)
	}

	analysisUC := usecase.NewAnalysisUsecase(sim, resultCache, cfg.Thresholds(), logger)
	recommendationUC := usecase.NewRecommendationUsecase(recommend.NewGenerator(nil))

	analysisHandler := handler.NewAnalysisHandler(analysisUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	documentHandler := handler.NewDocumentHandler()
	scrapeHandler := handler.NewScrapeHandler(scraper.NewJobScraper(logger))

	analysisHandler.RegisterRoutes(r)
	recommendationHandler.RegisterRoutes(r)
	documentHandler.RegisterRoutes(r)
	scrapeHandler.RegisterRoutes(r)
}
