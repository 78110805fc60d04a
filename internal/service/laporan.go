// internal/service/laporan.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/ukmhub/internal/audit"
	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/repository"
	"github.com/go-playground/validator/v10"
)

type LaporanInput struct {
	Kegiatan string  `json:"kegiatan" validate:"required"`
	Peserta  int     `json:"peserta" validate:"gte=0"`
	Biaya    float64 `json:"biaya" validate:"gte=0"`
}

type LaporanService struct {
	ukmRepo  repository.UKMRepositoryIface
	repo     repository.LaporanRepositoryIface
	cache    *CacheService
	audit    audit.Logger
	validate *validator.Validate
}

func NewLaporanService(
	ukmRepo repository.UKMRepositoryIface,
	repo repository.LaporanRepositoryIface,
	cache *CacheService,
	auditLogger audit.Logger,
) *LaporanService {
	return &LaporanService{
		ukmRepo:  ukmRepo,
		repo:     repo,
		cache:    cache,
		audit:    auditLogger,
		validate: newValidator(),
	}
}

func (s *LaporanService) Create(ctx context.Context, ukmID int64, input LaporanInput) (*model.Laporan, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	exists, err := s.ukmRepo.Exists(ctx, ukmID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUKMNotFound
	}

	laporan := &model.Laporan{
		UKMID:    ukmID,
		Kegiatan: input.Kegiatan,
		Peserta:  input.Peserta,
		Biaya:    input.Biaya,
	}
	if err := s.repo.Create(ctx, laporan); err != nil {
		return nil, fmt.Errorf("creating laporan: %w", err)
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	warnAudit(ctx, s.audit.LogEntityCreate(ctx, model.EntityLaporan, laporan.ID, map[string]interface{}{
		"ukm_id":   ukmID,
		"kegiatan": laporan.Kegiatan,
		"biaya":    laporan.Biaya,
	}), model.EntityLaporan, laporan.ID)

	return laporan, nil
}

func (s *LaporanService) Update(ctx context.Context, ukmID, id int64, input LaporanInput) (*model.Laporan, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	laporan := &model.Laporan{
		ID:       id,
		UKMID:    ukmID,
		Kegiatan: input.Kegiatan,
		Peserta:  input.Peserta,
		Biaya:    input.Biaya,
	}
	if err := s.repo.Update(ctx, laporan); err != nil {
		return nil, err
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	warnAudit(ctx, s.audit.LogEntityUpdate(ctx, model.EntityLaporan, id, map[string]interface{}{
		"ukm_id":   ukmID,
		"kegiatan": laporan.Kegiatan,
		"biaya":    laporan.Biaya,
	}), model.EntityLaporan, id)

	return laporan, nil
}

func (s *LaporanService) Delete(ctx context.Context, ukmID, id int64) error {
	if err := s.repo.Delete(ctx, ukmID, id); err != nil {
		return err
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	warnAudit(ctx, s.audit.LogEntityDelete(ctx, model.EntityLaporan, id), model.EntityLaporan, id)
	return nil
}
