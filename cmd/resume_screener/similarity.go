package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity",
	Short: "Compute the text similarity of two documents",
	Long:  "Compute the similarity of two text files using embeddings when enabled in the config, falling back to Jaccard word overlap.",
	RunE:  runSimilarity,
}

var (
	similarityA          string
	similarityB          string
	similarityConfigPath string
	similarityVerbose    bool
)

func init() {
	similarityCmd.Flags().StringVar(&similarityA, "a", "", "Path to the first text file")
	similarityCmd.Flags().StringVar(&similarityB, "b", "", "Path to the second text file")
	similarityCmd.Flags().StringVar(&similarityConfigPath, "config", "", "Path to config.json file (embedding settings)")
	similarityCmd.Flags().BoolVarP(&similarityVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = similarityCmd.MarkFlagRequired("a")
	_ = similarityCmd.MarkFlagRequired("b")

	rootCmd.AddCommand(similarityCmd)
}

func runSimilarity(cmd *cobra.Command, _ []string) error {
	a, err := os.ReadFile(similarityA)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", similarityA, err)
	}
	b, err := os.ReadFile(similarityB)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", similarityB, err)
	}

	cfg, err := loadConfigFile(similarityConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = similarityVerbose
	}
	cfg = cfg.MergeWithDefaults(config.Config{})
	applyEnv(&cfg)

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	deps, err := buildEngine(cmd.Context(), cfg, logger, nil)
	if err != nil {
		return err
	}
	defer deps.Close()

	result := deps.engine.Similarity(string(a), string(b))
	if result.Failure != "" {
		logger.Warn("similarity backend failed", zap.String("method", result.Method), zap.String("failure", result.Failure))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Similarity: %.4f (%s)\n", result.Score, result.Method)
	if result.Failure != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Fallback reason: %s\n", observability.TruncateForLog(result.Failure, 120))
	}
	return nil
}
