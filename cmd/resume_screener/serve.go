package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort       int
	serveConfigPath string
	serveRetainDays int
	serveLogJSON    bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing job descriptions and scoring candidates.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().IntVar(&serveRetainDays, "retain-days", 0, "Delete stored runs older than this many days at startup (0 keeps all)")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON logs")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfigFile(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = serveLogJSON
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}
	cfg = cfg.MergeWithDefaults(config.Config{})
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	metrics := observability.NewMetrics()
	deps, err := buildEngine(ctx, cfg, logger, metrics)
	if err != nil {
		return err
	}
	defer deps.Close()

	opts := server.Options{
		Engine:  deps.engine,
		Logger:  logger,
		Metrics: metrics,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
		if serveRetainDays > 0 {
			cutoff := time.Now().AddDate(0, 0, -serveRetainDays)
			pruned, err := database.PruneRuns(ctx, cutoff)
			if err != nil {
				return fmt.Errorf("failed to prune runs: %w", err)
			}
			logger.Info("pruned old screening runs", zap.Int64("deleted", pruned), zap.Time("before", cutoff))
		}
		opts.Store = database
	} else {
		logger.Warn("DATABASE_URL not set; run storage is disabled")
	}

	if cfg.Server.RequireAuth || os.Getenv("JWT_SECRET") != "" {
		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return fmt.Errorf("failed to load JWT config: %w", err)
		}
		opts.JWT = server.NewJWTService(jwtCfg)
	}

	srv, err := server.New(cfg, opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start(ctx)
}
