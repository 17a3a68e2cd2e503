package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/candidates"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score and rank candidates against a job description",
	Long: `Score every candidate record against a job description, rank them by overall score and report a summary and shortlist.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScore,
}

var (
	scoreConfigPath  string
	scoreJob         string
	scoreJobURL      string
	scoreCandidates  string
	scoreOut         string
	scoreMinScore    float64
	scoreSortBy      string
	scoreTopN        int
	scoreParallelism int
	scoreShortlist   bool
	scoreSave        bool
	scoreVerbose     bool
	scoreDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	scoreCmd.Flags().StringVarP(&scoreCandidates, "candidates", "c", "", "Path to candidate records JSON file")
	scoreCmd.Flags().StringVarP(&scoreOut, "out", "o", "", "Write the scored candidates as JSON to this file")
	scoreCmd.Flags().Float64Var(&scoreMinScore, "min-score", 0, "Drop candidates with an overall score below this value")
	scoreCmd.Flags().StringVar(&scoreSortBy, "sort-by", "", "Sort key: overall, skills or experience (default overall)")
	scoreCmd.Flags().IntVar(&scoreTopN, "top", 0, "Keep only the first N candidates (0 keeps all)")
	scoreCmd.Flags().IntVar(&scoreParallelism, "parallelism", 0, "Number of candidates scored concurrently")
	scoreCmd.Flags().BoolVar(&scoreShortlist, "shortlist", false, "Print the shortlisted candidates")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Persist the screening run to PostgreSQL")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for run persistence
	scoreCmd.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	// Note: --job and --candidates are not marked required; we validate after merging config

	rootCmd.AddCommand(scoreCmd)
}

// ScoreOutput is the JSON document written by score and read back by breakdown
type ScoreOutput struct {
	RunID      *uuid.UUID              `json:"run_id,omitempty"`
	Analysis   types.JobAnalysis       `json:"job_analysis"`
	Weights    types.Weights           `json:"weights"`
	Candidates []types.ScoredCandidate `json:"candidates"`
	Shortlist  []types.ScoredCandidate `json:"shortlist"`
	Summary    types.ScreeningSummary  `json:"summary"`
}

// scoreConfig merges the config file with flags the user explicitly set
func scoreConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadConfigFile(scoreConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("job") {
		cfg.Job = scoreJob
		cfg.JobURL = ""
	}
	if flags.Changed("job-url") {
		cfg.JobURL = scoreJobURL
		if !flags.Changed("job") {
			cfg.Job = ""
		}
	}
	if flags.Changed("candidates") {
		cfg.Candidates = scoreCandidates
	}
	if flags.Changed("min-score") {
		cfg.MinScore = scoreMinScore
	}
	if flags.Changed("sort-by") {
		cfg.SortBy = scoreSortBy
	}
	if flags.Changed("top") {
		cfg.TopN = scoreTopN
	}
	if flags.Changed("parallelism") {
		cfg.Parallelism = scoreParallelism
	}
	if flags.Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = scoreDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{SortBy: ranking.SortByOverall})
	applyEnv(&cfg)

	if cfg.Job == "" && cfg.JobURL == "" {
		return config.Config{}, fmt.Errorf("either --job or --job-url must be provided (via flag or config file)")
	}
	if cfg.Candidates == "" {
		return config.Config{}, fmt.Errorf("--candidates is required (via flag or config file)")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := scoreConfig(cmd)
	if err != nil {
		return err
	}
	weights, err := cfg.ResolveWeights()
	if err != nil {
		return err
	}
	if scoreSave && cfg.DatabaseURL == "" {
		return fmt.Errorf("--save requires DATABASE_URL or --db-url")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	jobText, metadata, err := readJob(ctx, cfg.Job, cfg.JobURL, logger)
	if err != nil {
		return err
	}
	records, err := candidates.LoadCandidates(cfg.Candidates)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}
	logger.Debug("inputs loaded",
		zap.Int("candidates", len(records)),
		zap.String("job_hash", metadata.Hash),
		zap.String("job", observability.TruncateForLog(jobText, 80)))

	deps, err := buildEngine(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	defer deps.Close()

	start := time.Now()
	scored, analysis := deps.engine.ScoreWithAnalysis(records, jobText, weights)
	logger.Debug("candidates scored", zap.Int("count", len(scored)), zap.Duration("elapsed", time.Since(start)))

	filter := ranking.FilterOptions{MinScore: cfg.MinScore, SortBy: cfg.SortBy, TopN: cfg.TopN}
	if err := filter.Validate(); err != nil {
		return err
	}

	output := ScoreOutput{
		Analysis:   analysis,
		Weights:    weights,
		Candidates: ranking.Filter(scored, filter),
		Shortlist:  ranking.Shortlist(scored, cfg.ShortlistThreshold),
		Summary:    ranking.Summarize(scored, cfg.ShortlistThreshold),
	}

	if scoreSave {
		id, err := saveRun(ctx, cfg.DatabaseURL, &db.RunInput{
			JobDescription: jobText,
			JobURL:         metadata.URL,
			Analysis:       output.Analysis,
			Weights:        weights,
			Summary:        output.Summary,
			Candidates:     scored,
		})
		if err != nil {
			return err
		}
		logger.Info("screening run saved", zap.String("run_id", id.String()))
		output.RunID = &id
	}

	if scoreOut != "" {
		if err := writeJSON(cmd.OutOrStdout(), scoreOut, output); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Scored candidates written to %s\n", scoreOut)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if cfg.Verbose {
		printer.PrintJobAnalysis(&output.Analysis)
	}
	printer.PrintRankedCandidates(output.Candidates)
	printer.PrintSummary(output.Summary)
	if scoreShortlist {
		if len(output.Shortlist) == 0 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No candidates reached the shortlist threshold of %.1f\n", cfg.ShortlistThreshold)
		} else {
			printer.PrintRankedCandidates(output.Shortlist)
		}
	}
	if output.RunID != nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Run ID: %s\n", output.RunID)
	}
	return nil
}

// saveRun persists one screening run, creating the schema if needed
func saveRun(ctx context.Context, databaseURL string, in *db.RunInput) (uuid.UUID, error) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	id, err := database.SaveRun(ctx, in)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save run: %w", err)
	}
	return id, nil
}
