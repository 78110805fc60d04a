// internal/repository/kegiatan.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"gorm.io/gorm"
)

type KegiatanRepositoryIface interface {
	FindByUKMIDs(ctx context.Context, ukmIDs []int64) ([]model.Kegiatan, error)
	FindByID(ctx context.Context, ukmID, id int64) (*model.Kegiatan, error)
	Create(ctx context.Context, kegiatan *model.Kegiatan) error
	Update(ctx context.Context, kegiatan *model.Kegiatan) error
	Delete(ctx context.Context, ukmID, id int64) error
}

type KegiatanRepository struct {
	db *gorm.DB
}

func NewKegiatanRepository(db *gorm.DB) *KegiatanRepository {
	return &KegiatanRepository{db: db}
}

// FindByUKMIDs returns the kegiatan of the given UKMs ordered by date.
func (r *KegiatanRepository) FindByUKMIDs(ctx context.Context, ukmIDs []int64) ([]model.Kegiatan, error) {
	var kegiatan []model.Kegiatan
	if err := findByUKMIDs(ctx, r.db, &kegiatan, ukmIDs, "tanggal, id", "kegiatan"); err != nil {
		return nil, err
	}
	return kegiatan, nil
}

func (r *KegiatanRepository) FindByID(ctx context.Context, ukmID, id int64) (*model.Kegiatan, error) {
	var kegiatan model.Kegiatan
	result := conn(ctx, r.db).First(&kegiatan, "id = ? AND ukm_id = ?", id, ukmID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKegiatanNotFound
		}
		return nil, fmt.Errorf("failed to find kegiatan: %w", result.Error)
	}
	return &kegiatan, nil
}

func (r *KegiatanRepository) Create(ctx context.Context, kegiatan *model.Kegiatan) error {
	if err := conn(ctx, r.db).Create(kegiatan).Error; err != nil {
		return fmt.Errorf("failed to create kegiatan: %w", err)
	}
	return nil
}

func (r *KegiatanRepository) Update(ctx context.Context, kegiatan *model.Kegiatan) error {
	return updateScoped(ctx, r.db, kegiatan, kegiatan.ID, kegiatan.UKMID,
		[]string{"nama", "deskripsi", "tanggal", "link_wa"}, domain.ErrKegiatanNotFound, "kegiatan")
}

func (r *KegiatanRepository) Delete(ctx context.Context, ukmID, id int64) error {
	return deleteScoped(ctx, r.db, &model.Kegiatan{}, id, ukmID, domain.ErrKegiatanNotFound, "kegiatan")
}
