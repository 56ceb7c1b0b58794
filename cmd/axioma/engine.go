package main

import (
	"github.com/rosatisoft/axioma-criterion-engine/internal/config"
	"github.com/rosatisoft/axioma-criterion-engine/internal/embedding"
	"github.com/rosatisoft/axioma-criterion-engine/internal/llm"
	"github.com/rosatisoft/axioma-criterion-engine/internal/patterns"
	"github.com/rosatisoft/axioma-criterion-engine/internal/service"
	"go.uber.org/zap"
)

// engine bundles the components an interactive session needs.
type engine struct {
	interview *service.InterviewService
	scoring   *service.ScoringEngine
}

// buildEngine wires the interview stack from configuration. External client
// failures degrade to the deterministic paths, mirroring the HTTP wiring.
func buildEngine(logger *zap.Logger) (*engine, error) {
	library, err := patterns.Load()
	if err != nil {
		return nil, err
	}

	generative, err := llm.NewClient(config.LLMProvider(), config.LLMAPIKey())
	if err != nil {
		logger.Warn("generative client initialization failed",
			zap.String("provider", config.LLMProvider()), zap.Error(err))
		generative = nil
	}

	embedder, err := embedding.NewClient(config.EmbeddingProvider(), config.EmbeddingAPIKey())
	if err != nil {
		logger.Warn("embedding client initialization failed",
			zap.String("provider", config.EmbeddingProvider()), zap.Error(err))
		embedder = nil
	}

	var matcher *service.SemanticMatcher
	if embedder != nil {
		matcher = service.NewSemanticMatcher(embedder, config.SemanticThreshold())
	}

	classifier := service.NewThemeClassifier(generative, logger)
	softDetector := service.NewSoftContradictionDetector(generative, logger)
	riskDetector := service.NewRiskPatternDetector(library, matcher, logger)

	cfg := service.DefaultInterviewConfig()
	cfg.MaxTurns = config.MaxTurns()
	cfg.PerAxisMax = config.PerAxisMax()

	return &engine{
		interview: service.NewInterviewService(classifier, generative, softDetector, riskDetector, cfg, logger),
		scoring:   service.NewScoringEngine(service.DefaultScoringConfig()),
	}, nil
}
