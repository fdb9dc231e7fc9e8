package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/ranksync/internal/core/config"
	"github.com/vietddude/ranksync/internal/infra/roblox"
	"github.com/vietddude/ranksync/internal/metrics"
	"github.com/vietddude/ranksync/internal/ranking"
)

var (
	isDebug     bool
	dryRun      bool
	metricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "ranksync <config-file>",
	Short: "Synchronize group member ranks by account-creation year",
	Long: `ranksync is a one-shot batch job that assigns each group member a rank
derived from their account-creation year, as configured by a role→years
mapping with a wildcard fallback.`,
	Args: cobra.ExactArgs(1),
	Run:  runSync,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "classify members but skip the rank-set call")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address for the duration of the run")
}

func runSync(cmd *cobra.Command, args []string) {
	_ = godotenv.Load()

	cfg, err := config.Load(args[0])
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	initLogging(cfg)

	runID := uuid.NewString()
	slog.Info("Starting rank sync",
		"run", runID, "group", cfg.GroupID,
		"scannedRoles", len(cfg.ScannedRoles), "dryRun", dryRun)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if metricsAddr != "" {
		srv := metrics.NewServer(metricsAddr)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Stop(shutdownCtx)
		}()
		slog.Info("Serving metrics", "addr", metricsAddr)
	}

	report := func(role string, userID int64, year int) {
		fmt.Printf("Assigned role %s to user %d (account age: %d)\n", role, userID, year)
	}
	if dryRun {
		report = func(role string, userID int64, year int) {
			fmt.Printf("Would assign role %s to user %d (account age: %d)\n", role, userID, year)
		}
	}

	client := roblox.NewClient(cfg.Roblosecurity)
	engine := ranking.New(client, cfg, ranking.Options{
		DryRun: dryRun,
		Report: report,
	})

	if err := engine.Run(ctx); err != nil {
		slog.Error("Rank sync failed", "run", runID, "error", err)
		os.Exit(1)
	}

	slog.Info("Rank sync complete", "run", runID)
}

func initLogging(cfg *config.Config) {
	slogLevel := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	stylelog.InitDefault(&tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})
}
