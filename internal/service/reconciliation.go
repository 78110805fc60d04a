// internal/service/reconciliation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/repository"
)

const (
	defaultReconcileInterval  = 30 * time.Minute
	defaultReconcileBatchSize = 100
	reconcileRunTimeout       = 5 * time.Minute
)

// ReconcileResult summarizes one reconciliation run.
type ReconcileResult struct {
	Checked int
	Drifted int
	Fixed   int
}

// ReconciliationService periodically recomputes every UKM's
// terdaftaranggota flag from its anggota rows.
type ReconciliationService struct {
	ukmRepo     repository.UKMRepositoryIface
	anggotaRepo repository.AnggotaRepositoryIface
	cache       *CacheService
	interval    time.Duration
	batchSize   int
	dryRun      bool // If true, don't make changes, just log
	logger      *slog.Logger
	startOnce   sync.Once
	stopOnce    sync.Once
	stopChan    chan struct{}
	stoppedChan chan struct{}
}

// NewReconciliationService creates a new reconciliation service. A
// non-positive interval falls back to 30 minutes.
func NewReconciliationService(
	ukmRepo repository.UKMRepositoryIface,
	anggotaRepo repository.AnggotaRepositoryIface,
	cache *CacheService,
	interval time.Duration,
	logger *slog.Logger,
) *ReconciliationService {
	if interval <= 0 {
		interval = defaultReconcileInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReconciliationService{
		ukmRepo:     ukmRepo,
		anggotaRepo: anggotaRepo,
		cache:       cache,
		interval:    interval,
		batchSize:   defaultReconcileBatchSize,
		logger:      logger,
		stopChan:    make(chan struct{}),
		stoppedChan: make(chan struct{}),
	}
}

// Start begins the periodic reconciliation process
func (s *ReconciliationService) Start() {
	s.startOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(s.interval)
			defer ticker.Stop()
			defer close(s.stoppedChan)

			for {
				select {
				case <-ticker.C:
					ctx, cancel := context.WithTimeout(context.Background(), reconcileRunTimeout)
					if _, err := s.ReconcileMemberFlags(ctx); err != nil {
						s.logger.Error("reconciliation failed", "error", err)
					}
					cancel()
				case <-s.stopChan:
					return
				}
			}
		}()
	})
}

// Stop halts the reconciliation process and waits for a running pass to end.
func (s *ReconciliationService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		started := true
		s.startOnce.Do(func() { started = false })
		if started {
			<-s.stoppedChan
		}
	})
}

// SetBatchSize sets the number of UKMs fetched per page
func (s *ReconciliationService) SetBatchSize(size int) {
	if size > 0 {
		s.batchSize = size
	}
}

// SetDryRun sets whether to actually make changes or just log what would be done
func (s *ReconciliationService) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// ReconcileMemberFlags walks all UKMs page by page and corrects every flag
// that disagrees with the anggota table.
func (s *ReconciliationService) ReconcileMemberFlags(ctx context.Context) (ReconcileResult, error) {
	var result ReconcileResult
	defer func() {
		if result.Fixed > 0 && s.cache != nil {
			s.cache.InvalidateAllUKM(ctx)
		}
	}()
	s.logger.Info("starting member flag reconciliation", "batch_size", s.batchSize, "dry_run", s.dryRun)

	for offset := 0; ; offset += s.batchSize {
		batch, total, err := s.ukmRepo.FindAllPaginated(ctx, offset, s.batchSize)
		if err != nil {
			return result, fmt.Errorf("fetching ukm batch: %w", err)
		}

		for _, ukm := range batch {
			result.Checked++

			count, err := s.anggotaRepo.Count(ctx, ukm.ID)
			if err != nil {
				s.logger.Error("failed to count anggota", "ukm_id", ukm.ID, "error", err)
				continue
			}

			want := count > 0
			if ukm.TerdaftarAnggota == want {
				continue
			}
			result.Drifted++

			if s.dryRun {
				s.logger.Info("would fix member flag (dry run)",
					"ukm_id", ukm.ID,
					"nama", ukm.Nama,
					"stored", ukm.TerdaftarAnggota,
					"actual", want,
				)
				continue
			}

			if err := s.ukmRepo.SetMemberFlag(ctx, ukm.ID, want); err != nil {
				s.logger.Error("failed to fix member flag", "ukm_id", ukm.ID, "error", err)
				continue
			}
			result.Fixed++
		}

		if len(batch) < s.batchSize || int64(offset+len(batch)) >= total {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}
	}

	s.logger.Info("completed member flag reconciliation",
		"checked", result.Checked,
		"drifted", result.Drifted,
		"fixed", result.Fixed,
	)
	return result, nil
}
