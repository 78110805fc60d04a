// cmd/reconcile/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/config"
	"github.com/dangerclosesec/ukmhub/internal/database"
	"github.com/dangerclosesec/ukmhub/internal/repository"
	"github.com/dangerclosesec/ukmhub/internal/service"
)

func main() {
	// Command line flags
	var (
		batchSize = flag.Int("batch-size", 100, "Number of UKM to process in a batch")
		dryRun    = flag.Bool("dry-run", false, "Print what would be done without making changes")
		timeout   = flag.Duration("timeout", 30*time.Minute, "Maximum time to run reconciliation")
	)
	flag.Parse()

	// Initialize logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slogger := slog.New(logHandler)
	slog.SetDefault(slogger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		slogger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// Initialize repositories
	ukmRepo := repository.NewUKMRepository(db)
	anggotaRepo := repository.NewAnggotaRepository(db)

	// The API process owns the read-model cache, so this run uses a
	// throwaway one.
	cache := service.NewCacheService(service.CacheConfig{TTL: time.Minute, CleanupFreq: time.Minute})
	defer cache.Close()

	// Interval doesn't matter for a one-time run
	reconciliationService := service.NewReconciliationService(ukmRepo, anggotaRepo, cache, 0, slogger)
	reconciliationService.SetBatchSize(*batchSize)
	reconciliationService.SetDryRun(*dryRun)

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := reconciliationService.ReconcileMemberFlags(ctx)
	if err != nil {
		slogger.Error("reconciliation failed", "error", err)
		os.Exit(1)
	}

	slogger.Info("reconciliation completed successfully",
		"checked", result.Checked,
		"drifted", result.Drifted,
		"fixed", result.Fixed,
		"dry_run", *dryRun,
	)
}
