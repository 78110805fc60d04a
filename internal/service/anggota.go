// internal/service/anggota.go
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

type AnggotaInput struct {
	Nama    string `json:"nama" validate:"required"`
	NIM     string `json:"nim"`
	Jabatan string `json:"jabatan"`
}

// AnggotaService manages member rows. Creating or deleting a member
// refreshes the owning UKM's terdaftaranggota flag in the same transaction.
type AnggotaService struct {
	tx       repository.Transactor
	ukmRepo  repository.UKMRepositoryIface
	repo     repository.AnggotaRepositoryIface
	cache    *CacheService
	audit    audit.Logger
	validate *validator.Validate
}

func NewAnggotaService(
	tx repository.Transactor,
	ukmRepo repository.UKMRepositoryIface,
	repo repository.AnggotaRepositoryIface,
	cache *CacheService,
	auditLogger audit.Logger,
) *AnggotaService {
	return &AnggotaService{
		tx:       tx,
		ukmRepo:  ukmRepo,
		repo:     repo,
		cache:    cache,
		audit:    auditLogger,
		validate: newValidator(),
	}
}

func (s *AnggotaService) Create(ctx context.Context, ukmID int64, input AnggotaInput) (*model.Anggota, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	anggota := &model.Anggota{
		UKMID:   ukmID,
		Nama:    input.Nama,
		NIM:     input.NIM,
		Jabatan: input.Jabatan,
	}
	if anggota.Jabatan == "" {
		anggota.Jabatan = model.DefaultJabatan
	}

	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		exists, err := s.ukmRepo.Exists(ctx, ukmID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrUKMNotFound
		}
		if err := s.repo.Create(ctx, anggota); err != nil {
			return fmt.Errorf("creating anggota: %w", err)
		}
		return s.ukmRepo.SetMemberFlag(ctx, ukmID, true)
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	warnAudit(ctx, s.audit.LogEntityCreate(ctx, model.EntityAnggota, anggota.ID, map[string]interface{}{
		"ukm_id":  ukmID,
		"nim":     anggota.NIM,
		"jabatan": anggota.Jabatan,
	}), model.EntityAnggota, anggota.ID)

	return anggota, nil
}

func (s *AnggotaService) Update(ctx context.Context, ukmID, id int64, input AnggotaInput) (*model.Anggota, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	anggota := &model.Anggota{
		ID:      id,
		UKMID:   ukmID,
		Nama:    input.Nama,
		NIM:     input.NIM,
		Jabatan: input.Jabatan,
	}
	if anggota.Jabatan == "" {
		anggota.Jabatan = model.DefaultJabatan
	}
	if err := s.repo.Update(ctx, anggota); err != nil {
		return nil, err
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	warnAudit(ctx, s.audit.LogEntityUpdate(ctx, model.EntityAnggota, id, map[string]interface{}{
		"ukm_id":  ukmID,
		"nim":     anggota.NIM,
		"jabatan": anggota.Jabatan,
	}), model.EntityAnggota, id)

	return anggota, nil
}

func (s *AnggotaService) Delete(ctx context.Context, ukmID, id int64) error {
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, ukmID, id); err != nil {
			return err
		}
		return s.ukmRepo.RefreshMemberFlag(ctx, ukmID)
	})
	if err != nil {
		return err
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	warnAudit(ctx, s.audit.LogEntityDelete(ctx, model.EntityAnggota, id), model.EntityAnggota, id)
	return nil
}
