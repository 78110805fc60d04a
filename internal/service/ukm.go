// internal/service/ukm.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/ukmhub/internal/audit"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/repository"
	"github.com/go-playground/validator/v10"
)

type UKMInput struct {
	Nama      string `json:"nama" validate:"required"`
	Deskripsi string `json:"deskripsi"`
	Gambar    string `json:"gambar"`
	WAGroup   string `json:"wa_group"`
}

type UKMService struct {
	tx           repository.Transactor
	ukmRepo      repository.UKMRepositoryIface
	kegiatanRepo repository.KegiatanRepositoryIface
	anggotaRepo  repository.AnggotaRepositoryIface
	laporanRepo  repository.LaporanRepositoryIface
	cache        *CacheService
	audit        audit.Logger
	validate     *validator.Validate
}

func NewUKMService(
	tx repository.Transactor,
	ukmRepo repository.UKMRepositoryIface,
	kegiatanRepo repository.KegiatanRepositoryIface,
	anggotaRepo repository.AnggotaRepositoryIface,
	laporanRepo repository.LaporanRepositoryIface,
	cache *CacheService,
	auditLogger audit.Logger,
) *UKMService {
	return &UKMService{
		tx:           tx,
		ukmRepo:      ukmRepo,
		kegiatanRepo: kegiatanRepo,
		anggotaRepo:  anggotaRepo,
		laporanRepo:  laporanRepo,
		cache:        cache,
		audit:        auditLogger,
		validate:     newValidator(),
	}
}

// List returns every UKM with its children and comment stats, newest first.
func (s *UKMService) List(ctx context.Context) ([]model.UKMDetail, error) {
	var details []model.UKMDetail
	err := s.cache.GetOrSet(ctx, ukmListCacheKey, &details, func() (interface{}, error) {
		ukms, err := s.ukmRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return s.assemble(ctx, ukms)
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

// Get returns one UKM with its children and comment stats.
func (s *UKMService) Get(ctx context.Context, id int64) (*model.UKMDetail, error) {
	var detail model.UKMDetail
	err := s.cache.GetOrSet(ctx, ukmCacheKey(id), &detail, func() (interface{}, error) {
		ukm, err := s.ukmRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		details, err := s.assemble(ctx, []model.UKM{*ukm})
		if err != nil {
			return nil, err
		}
		return details[0], nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// assemble loads the children of all ukms with one query per table and
// nests them. Missing children become empty lists.
func (s *UKMService) assemble(ctx context.Context, ukms []model.UKM) ([]model.UKMDetail, error) {
	ids := make([]int64, len(ukms))
	for i, ukm := range ukms {
		ids[i] = ukm.ID
	}

	stats, err := s.ukmRepo.Stats(ctx, ids)
	if err != nil {
		return nil, err
	}
	kegiatan, err := s.kegiatanRepo.FindByUKMIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	anggota, err := s.anggotaRepo.FindByUKMIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	laporan, err := s.laporanRepo.FindByUKMIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	kegiatanByUKM := make(map[int64][]model.Kegiatan)
	for _, k := range kegiatan {
		kegiatanByUKM[k.UKMID] = append(kegiatanByUKM[k.UKMID], k)
	}
	anggotaByUKM := make(map[int64][]model.Anggota)
	for _, a := range anggota {
		anggotaByUKM[a.UKMID] = append(anggotaByUKM[a.UKMID], a)
	}
	laporanByUKM := make(map[int64][]model.Laporan)
	for _, l := range laporan {
		laporanByUKM[l.UKMID] = append(laporanByUKM[l.UKMID], l)
	}

	details := make([]model.UKMDetail, len(ukms))
	for i, ukm := range ukms {
		detail := model.UKMDetail{
			UKM:      ukm,
			Kegiatan: orEmpty(kegiatanByUKM[ukm.ID]),
			Anggota:  orEmpty(anggotaByUKM[ukm.ID]),
			Laporan:  orEmpty(laporanByUKM[ukm.ID]),
		}
		if st, ok := stats[ukm.ID]; ok {
			detail.KomentarCount = st.KomentarCount
			detail.AvgRating = st.AvgRating
		}
		details[i] = detail
	}
	return details, nil
}

func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func (s *UKMService) Create(ctx context.Context, input UKMInput) (*model.UKM, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	ukm := &model.UKM{
		Nama:      input.Nama,
		Deskripsi: input.Deskripsi,
		Gambar:    input.Gambar,
		WAGroup:   input.WAGroup,
	}
	if err := s.ukmRepo.Create(ctx, ukm); err != nil {
		return nil, fmt.Errorf("creating ukm: %w", err)
	}

	s.cache.InvalidateUKM(ctx, ukm.ID)
	warnAudit(ctx, s.audit.LogEntityCreate(ctx, model.EntityUKM, ukm.ID, map[string]interface{}{
		"nama": ukm.Nama,
	}), model.EntityUKM, ukm.ID)

	return ukm, nil
}

// Update overwrites the UKM's fields and recomputes its member flag.
func (s *UKMService) Update(ctx context.Context, id int64, input UKMInput) (*model.UKM, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	ukm := &model.UKM{
		ID:        id,
		Nama:      input.Nama,
		Deskripsi: input.Deskripsi,
		Gambar:    input.Gambar,
		WAGroup:   input.WAGroup,
	}
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		if err := s.ukmRepo.RefreshMemberFlag(ctx, id); err != nil {
			return err
		}
		return s.ukmRepo.Update(ctx, ukm)
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateUKM(ctx, id)
	warnAudit(ctx, s.audit.LogEntityUpdate(ctx, model.EntityUKM, id, map[string]interface{}{
		"nama":             ukm.Nama,
		"terdaftaranggota": ukm.TerdaftarAnggota,
	}), model.EntityUKM, id)

	return ukm, nil
}

func (s *UKMService) Delete(ctx context.Context, id int64) error {
	if err := s.ukmRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.InvalidateUKM(ctx, id)
	warnAudit(ctx, s.audit.LogEntityDelete(ctx, model.EntityUKM, id), model.EntityUKM, id)
	return nil
}
