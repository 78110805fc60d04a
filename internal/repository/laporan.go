// internal/repository/laporan.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"gorm.io/gorm"
)

type LaporanRepositoryIface interface {
	FindByUKMIDs(ctx context.Context, ukmIDs []int64) ([]model.Laporan, error)
	Create(ctx context.Context, laporan *model.Laporan) error
	Update(ctx context.Context, laporan *model.Laporan) error
	Delete(ctx context.Context, ukmID, id int64) error
}

type LaporanRepository struct {
	db *gorm.DB
}

func NewLaporanRepository(db *gorm.DB) *LaporanRepository {
	return &LaporanRepository{db: db}
}

func (r *LaporanRepository) FindByUKMIDs(ctx context.Context, ukmIDs []int64) ([]model.Laporan, error) {
	var laporan []model.Laporan
	if err := findByUKMIDs(ctx, r.db, &laporan, ukmIDs, "id", "laporan"); err != nil {
		return nil, err
	}
	return laporan, nil
}

func (r *LaporanRepository) Create(ctx context.Context, laporan *model.Laporan) error {
	if err := conn(ctx, r.db).Create(laporan).Error; err != nil {
		return fmt.Errorf("failed to create laporan: %w", err)
	}
	return nil
}

func (r *LaporanRepository) Update(ctx context.Context, laporan *model.Laporan) error {
	return updateScoped(ctx, r.db, laporan, laporan.ID, laporan.UKMID,
		[]string{"kegiatan", "peserta", "biaya"}, domain.ErrLaporanNotFound, "laporan")
}

func (r *LaporanRepository) Delete(ctx context.Context, ukmID, id int64) error {
	return deleteScoped(ctx, r.db, &model.Laporan{}, id, ukmID, domain.ErrLaporanNotFound, "laporan")
}
