package cmd

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/ai"
	"github.com/spigell/pathfinder/internal/ai/gemini"
	"github.com/spigell/pathfinder/internal/dialogue"
	"github.com/spigell/pathfinder/internal/logger"
	"github.com/spigell/pathfinder/internal/recommend"
	"github.com/spigell/pathfinder/internal/secrets"
)

// newGenerator builds the Gemini generator. A missing key wraps secrets.ErrNotConfigured.
func newGenerator(ctx context.Context, cfg *GeminiConfig, log *zap.Logger) (*gemini.Generator, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key, ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithModel(log, cfg.Model).With(zap.Int("ai_retry_attempts", cfg.MaxRetries))

	return gemini.NewGenerator(ctx, gemini.Config{
		APIKey:          apiKey,
		Model:           cfg.Model,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
		MaxRetries:      cfg.MaxRetries,
	}, genLogger)
}

// optionalGenerator falls back to templated text when Gemini is not configured.
func optionalGenerator(ctx context.Context, cfg *GeminiConfig, log *zap.Logger) ai.ContentGenerator {
	generator, err := newGenerator(ctx, cfg, log)
	if err != nil {
		if errors.Is(err, secrets.ErrNotConfigured) {
			log.Warn("gemini is not configured, using templated responses", zap.Error(err))
		} else {
			log.Error("gemini is unavailable, using templated responses", zap.Error(err))
		}
		return ai.Unavailable{}
	}

	log.Info("using gemini", zap.String(logger.FieldModel, generator.Model()))
	return generator
}

func newRecommender(cfg *Config, generator ai.ContentGenerator, log *zap.Logger) (*recommend.Recommender, error) {
	thresholds := cfg.Matching.Thresholds

	return recommend.New(recommend.Options{
		Generator:       generator,
		Thresholds:      &thresholds,
		DisabledFilters: cfg.Matching.DisabledFilters,
		Logger:          log.Named("recommend"),
		MaxLogLength:    cfg.AI.Gemini.MaxLogLength,
	})
}

func newSessions(cfg *Config, generator ai.ContentGenerator, rec *recommend.Recommender, log *zap.Logger) *dialogue.Manager {
	return dialogue.NewManager(dialogue.Deps{
		Generator:   generator,
		Extractor:   ai.NewExtractor(generator, log.Named("extract"), cfg.AI.Gemini.MaxLogLength),
		Recommender: rec,
		Logger:      log.Named("dialogue"),
	}, cfg.Dialogue)
}

// setup builds the logger and loads the configuration, exiting on failure.
func setup(outputs ...string) (*zap.Logger, *Config) {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), outputs...)
	if err != nil {
		stdlog.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	return log, config
}
