package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/textanalysis"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// loadConfigFile loads and validates the config file at path. An empty path yields a zero Config.
func loadConfigFile(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return *loaded, nil
}

// applyEnv fills secrets that were not set in the config file from the environment
func applyEnv(cfg *config.Config) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// engineDeps holds what buildEngine creates alongside the engine
type engineDeps struct {
	engine  *ranking.Engine
	closers []func() error
}

// Close releases the embedding client, if any
func (d *engineDeps) Close() {
	for _, c := range d.closers {
		_ = c()
	}
}

// buildEngine assembles the heuristic strategy, with the Gemini embedder behind a circuit
// breaker when embeddings are enabled. metrics may be nil.
func buildEngine(ctx context.Context, cfg config.Config, logger *zap.Logger, metrics *observability.Metrics) (*engineDeps, error) {
	deps := &engineDeps{}

	opts := []textanalysis.Option{
		textanalysis.WithEmbedTimeout(time.Duration(cfg.Embedding.TimeoutSeconds) * time.Second),
	}

	if cfg.Embedding.Enabled {
		gemini, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.Embedding.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create embedding client: %w", err)
		}
		deps.closers = append(deps.closers, gemini.Close)

		var onState embedding.StateFunc
		if metrics != nil {
			onState = func(_, to gobreaker.State) {
				metrics.EmbeddingBreaker.Set(float64(to))
			}
		}
		breaker := embedding.NewBreakerEmbedder(gemini, embedding.DefaultBreakerSettings(), logger, onState)
		opts = append(opts, textanalysis.WithEmbedder(breaker))
		logger.Debug("embedding similarity enabled", zap.String("model", gemini.Model()))
	}

	var strategy textanalysis.Strategy = textanalysis.NewHeuristic(opts...)
	if metrics != nil {
		strategy = metrics.Instrument(strategy)
	}

	deps.engine = ranking.NewEngine(strategy, ranking.WithParallelism(cfg.Parallelism))
	return deps, nil
}

// newLogger builds the CLI logger from the merged config
func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := observability.NewLogger(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// readJob loads the job description from a file or URL
func readJob(ctx context.Context, path, urlStr string, logger *zap.Logger) (string, *ingestion.Metadata, error) {
	if path != "" && urlStr != "" {
		return "", nil, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if path == "" && urlStr == "" {
		return "", nil, fmt.Errorf("either --job or --job-url must be provided")
	}

	text, metadata, err := ingestion.Ingest(ctx, path, urlStr, nil, logger)
	if err != nil {
		return "", nil, fmt.Errorf("failed to ingest job description: %w", err)
	}
	return text, metadata, nil
}

// writeJSON writes v as indented JSON to path, or to out when path is empty
func writeJSON(out io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
