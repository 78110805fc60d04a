// cmd/api/main.go
package main

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

	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/config"
	"github.com/dangerclosesec/ukmhub/internal/database"
	"github.com/dangerclosesec/ukmhub/internal/email"
	"github.com/dangerclosesec/ukmhub/internal/email/mailer"
	"github.com/dangerclosesec/ukmhub/internal/handler"
	"github.com/dangerclosesec/ukmhub/internal/repository"
	"github.com/dangerclosesec/ukmhub/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     cfg.SlogLevel(),
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return err
	}

	tokenManager, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
	if err != nil {
		return fmt.Errorf("creating token manager: %w", err)
	}

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	defer database.Close(db)

	// Initialize repositories
	tx := repository.NewGormTransactor(db)
	userRepo := repository.NewUserRepository(db)
	ukmRepo := repository.NewUKMRepository(db)
	kegiatanRepo := repository.NewKegiatanRepository(db)
	laporanRepo := repository.NewLaporanRepository(db)
	anggotaRepo := repository.NewAnggotaRepository(db)
	komentarRepo := repository.NewKomentarRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         cfg.Cache.TTL,
		CleanupFreq: cfg.Cache.CleanupFreq,
	})
	defer cacheService.Close()

	auditLogService := service.NewAuditLogService(auditLogRepo)

	// Decision emails are optional
	var notifier service.DecisionNotifier
	provider, err := email.ProviderFor(cfg)
	switch {
	case errors.Is(err, email.ErrNotConfigured):
		logger.Info("no email provider configured, decision notifications disabled")
	case err != nil:
		return fmt.Errorf("selecting email provider: %w", err)
	default:
		emailService, err := email.NewEmailService(cfg, provider)
		if err != nil {
			return fmt.Errorf("initializing email service: %w", err)
		}
		notifier = mailer.NewDecisionNotifier(emailService)
		logger.Info("decision notifications enabled", "provider", provider)
	}

	// Initialize services
	ukmService := service.NewUKMService(tx, ukmRepo, kegiatanRepo, anggotaRepo, laporanRepo, cacheService, auditLogService)
	kegiatanService := service.NewKegiatanService(ukmRepo, kegiatanRepo, cacheService, auditLogService)
	laporanService := service.NewLaporanService(ukmRepo, laporanRepo, cacheService, auditLogService)
	anggotaService := service.NewAnggotaService(tx, ukmRepo, anggotaRepo, cacheService, auditLogService)
	komentarService := service.NewKomentarService(tx, komentarRepo, ukmRepo, cacheService, auditLogService)
	registrationService := service.NewRegistrationService(
		tx,
		registrationRepo,
		userRepo,
		ukmRepo,
		kegiatanRepo,
		anggotaRepo,
		cacheService,
		auditLogService,
		notifier,
	)

	// Periodic member flag reconciliation
	if cfg.Reconcile.Interval > 0 {
		reconciler := service.NewReconciliationService(ukmRepo, anggotaRepo, cacheService, cfg.Reconcile.Interval, logger)
		reconciler.SetBatchSize(cfg.Reconcile.BatchSize)
		reconciler.Start()
		defer reconciler.Stop()
	}

	// Create router
	r := handler.NewRouter(handler.RouterConfig{
		Logger:         logger,
		Tokens:         tokenManager,
		RequestTimeout: 30 * time.Second,
	}, handler.Handlers{
		UKM:          handler.NewUKMHandler(ukmService),
		Kegiatan:     handler.NewKegiatanHandler(kegiatanService),
		Laporan:      handler.NewLaporanHandler(laporanService),
		Anggota:      handler.NewAnggotaHandler(anggotaService),
		Registration: handler.NewRegistrationHandler(registrationService),
		Komentar:     handler.NewKomentarHandler(komentarService),
		AuditLog:     handler.NewAuditLogHandler(auditLogService),
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
