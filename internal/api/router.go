package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rosatisoft/axioma-criterion-engine/internal/api/handlers"
	mw "github.com/rosatisoft/axioma-criterion-engine/internal/api/middleware"
	"github.com/rosatisoft/axioma-criterion-engine/internal/config"
	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"github.com/rosatisoft/axioma-criterion-engine/internal/embedding"
	"github.com/rosatisoft/axioma-criterion-engine/internal/llm"
	"github.com/rosatisoft/axioma-criterion-engine/internal/patterns"
	"github.com/rosatisoft/axioma-criterion-engine/internal/service"
	"go.uber.org/zap"
)

// App holds the router and request metrics for lifecycle management.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(logger *zap.Logger) (*App, error) {
	library, err := patterns.Load()
	if err != nil {
		return nil, err
	}

	// External clients via provider factory. A failed initialization is a
	// warning, not a crash: every consumer has a deterministic fallback.
	generative, err := llm.NewClient(config.LLMProvider(), config.LLMAPIKey())
	if err != nil {
		logger.Warn("generative client initialization failed",
			zap.String("provider", config.LLMProvider()), zap.Error(err))
		generative = nil
	} else if generative != nil {
		logger.Info("generative client initialized", zap.String("provider", config.LLMProvider()))
	}

	embedder, err := embedding.NewClient(config.EmbeddingProvider(), config.EmbeddingAPIKey())
	if err != nil {
		logger.Warn("embedding client initialization failed",
			zap.String("provider", config.EmbeddingProvider()), zap.Error(err))
		embedder = nil
	} else if embedder != nil {
		logger.Info("embedding client initialized", zap.String("provider", config.EmbeddingProvider()))
	}

	var matcher *service.SemanticMatcher
	if embedder != nil {
		matcher = service.NewSemanticMatcher(embedder, config.SemanticThreshold())
	}

	classifier := service.NewThemeClassifier(generative, logger)
	scoring := service.NewScoringEngine(service.DefaultScoringConfig())
	calculator := service.NewCriterionCalculator()
	riskDetector := service.NewRiskPatternDetector(library, matcher, logger)
	softDetector := service.NewSoftContradictionDetector(generative, logger)

	discernmentHandler := handlers.NewDiscernmentHandler(classifier, scoring)
	criterionHandler := handlers.NewCriterionHandler(calculator)
	patternsHandler := handlers.NewPatternsHandler(library)
	detectHandler := handlers.NewDetectHandler(riskDetector, softDetector)

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics (no auth)
	r.Get("/health", healthHandler())
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		if key := config.APIKey(); key != "" {
			r.Use(mw.APIKeyAuth(key))
		}

		r.Post("/classify", discernmentHandler.Classify)
		r.Post("/evaluate", discernmentHandler.Evaluate)
		r.Post("/criterion", criterionHandler.Evaluate)
		r.Post("/detect", detectHandler.Detect)
		r.Get("/patterns", patternsHandler.List)
	})

	return app, nil
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure provider clients satisfy the domain interfaces at compile time.
var (
	_ domain.GenerativeClient = (*llm.OpenAIClient)(nil)
	_ domain.GenerativeClient = (*llm.AnthropicClient)(nil)
	_ domain.GenerativeClient = (*llm.GeminiClient)(nil)
	_ domain.GenerativeClient = (*llm.CerebrasClient)(nil)
	_ domain.GenerativeClient = (*llm.MockClient)(nil)
	_ domain.EmbeddingClient  = (*embedding.OpenAIClient)(nil)
	_ domain.EmbeddingClient  = (*embedding.MockClient)(nil)
)
