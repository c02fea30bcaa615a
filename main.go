package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/chrisformoso-ca/rvezy-calgary/config"
	"github.com/chrisformoso-ca/rvezy-calgary/services"
	"github.com/chrisformoso-ca/rvezy-calgary/storage"
	"github.com/chrisformoso-ca/rvezy-calgary/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.PrettyLogs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger error:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("RVezy Listing Extraction Pipeline")
	logger.Infow("configuration",
		"driver", cfg.DatabaseDriver,
		"input", cfg.InputCSVPath,
		"progress_every", cfg.ProgressEvery,
	)

	if err := run(cfg, logger); err != nil {
		logger.Errorw("run failed", "error", err)
		os.Exit(1)
	}
}

// run owns the store and input lifetimes so both are released on every
// exit path, including failures.
func run(cfg *config.Config, logger *zap.SugaredLogger) error {
	ctx := context.Background()

	// =================== Store setup ========================
	store, err := storage.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot open store: %w", err)
	}
	defer store.Close()

	source, err := storage.NewCSVSource(cfg.InputCSVPath, logger)
	if err != nil {
		return fmt.Errorf("cannot open input: %w", err)
	}
	defer source.Close()

	// =============== Extraction batch ===================
	pipeline := services.NewPipeline(store, logger, cfg.ProgressEvery)
	stats, err := pipeline.Run(ctx, source)
	if err != nil {
		return err
	}

	// ==== Summary ============================
	insightSvc := services.NewInsightService(store, logger)
	report, err := insightSvc.Generate(ctx)
	if err != nil {
		return err
	}
	services.PrintInsightReport(report)

	logger.Infow("done",
		"processed", stats.Processed,
		"failed", stats.Failed,
		"duplicate_urls", stats.DuplicateURLs,
	)
	return nil
}
