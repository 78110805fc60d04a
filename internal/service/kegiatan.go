// internal/service/kegiatan.go
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

type KegiatanInput struct {
	Nama      string      `json:"nama" validate:"required"`
	Deskripsi string      `json:"deskripsi"`
	Tanggal   *model.Date `json:"tanggal"`
	LinkWA    string      `json:"link_wa"`
}

type KegiatanService struct {
	ukmRepo  repository.UKMRepositoryIface
	repo     repository.KegiatanRepositoryIface
	cache    *CacheService
	audit    audit.Logger
	validate *validator.Validate
}

func NewKegiatanService(
	ukmRepo repository.UKMRepositoryIface,
	repo repository.KegiatanRepositoryIface,
	cache *CacheService,
	auditLogger audit.Logger,
) *KegiatanService {
	return &KegiatanService{
		ukmRepo:  ukmRepo,
		repo:     repo,
		cache:    cache,
		audit:    auditLogger,
		validate: newValidator(),
	}
}

func (s *KegiatanService) Create(ctx context.Context, ukmID int64, input KegiatanInput) (*model.Kegiatan, error) {
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

	kegiatan := &model.Kegiatan{
		UKMID:     ukmID,
		Nama:      input.Nama,
		Deskripsi: input.Deskripsi,
		Tanggal:   input.Tanggal,
		LinkWA:    input.LinkWA,
	}
	if err := s.repo.Create(ctx, kegiatan); err != nil {
		return nil, fmt.Errorf("creating kegiatan: %w", err)
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	warnAudit(ctx, s.audit.LogEntityCreate(ctx, model.EntityKegiatan, kegiatan.ID, map[string]interface{}{
		"ukm_id": ukmID,
		"nama":   kegiatan.Nama,
	}), model.EntityKegiatan, kegiatan.ID)

	return kegiatan, nil
}

func (s *KegiatanService) Update(ctx context.Context, ukmID, id int64, input KegiatanInput) (*model.Kegiatan, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	kegiatan := &model.Kegiatan{
		ID:        id,
		UKMID:     ukmID,
		Nama:      input.Nama,
		Deskripsi: input.Deskripsi,
		Tanggal:   input.Tanggal,
		LinkWA:    input.LinkWA,
	}
	if err := s.repo.Update(ctx, kegiatan); err != nil {
		return nil, err
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	warnAudit(ctx, s.audit.LogEntityUpdate(ctx, model.EntityKegiatan, id, map[string]interface{}{
		"ukm_id": ukmID,
		"nama":   kegiatan.Nama,
	}), model.EntityKegiatan, id)

	return kegiatan, nil
}

func (s *KegiatanService) Delete(ctx context.Context, ukmID, id int64) error {
	if err := s.repo.Delete(ctx, ukmID, id); err != nil {
		return err
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	warnAudit(ctx, s.audit.LogEntityDelete(ctx, model.EntityKegiatan, id), model.EntityKegiatan, id)
	return nil
}
