// internal/repository/anggota.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"gorm.io/gorm"
)

type AnggotaRepositoryIface interface {
	FindByUKMIDs(ctx context.Context, ukmIDs []int64) ([]model.Anggota, error)
	ExistsByNIM(ctx context.Context, ukmID int64, nim string) (bool, error)
	Count(ctx context.Context, ukmID int64) (int64, error)
	Create(ctx context.Context, anggota *model.Anggota) error
	Update(ctx context.Context, anggota *model.Anggota) error
	Delete(ctx context.Context, ukmID, id int64) error
}

type AnggotaRepository struct {
	db *gorm.DB
}

func NewAnggotaRepository(db *gorm.DB) *AnggotaRepository {
	return &AnggotaRepository{db: db}
}

func (r *AnggotaRepository) FindByUKMIDs(ctx context.Context, ukmIDs []int64) ([]model.Anggota, error) {
	var anggota []model.Anggota
	if err := findByUKMIDs(ctx, r.db, &anggota, ukmIDs, "id", "anggota"); err != nil {
		return nil, err
	}
	return anggota, nil
}

// ExistsByNIM reports whether the UKM already has a member row with this
// student id.
func (r *AnggotaRepository) ExistsByNIM(ctx context.Context, ukmID int64, nim string) (bool, error) {
	var count int64
	result := conn(ctx, r.db).Model(&model.Anggota{}).
		Where("ukm_id = ? AND nim = ?", ukmID, nim).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check anggota: %w", result.Error)
	}
	return count > 0, nil
}

func (r *AnggotaRepository) Count(ctx context.Context, ukmID int64) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&model.Anggota{}).Where("ukm_id = ?", ukmID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count anggota: %w", err)
	}
	return count, nil
}

func (r *AnggotaRepository) Create(ctx context.Context, anggota *model.Anggota) error {
	if err := conn(ctx, r.db).Create(anggota).Error; err != nil {
		return fmt.Errorf("failed to create anggota: %w", err)
	}
	return nil
}

func (r *AnggotaRepository) Update(ctx context.Context, anggota *model.Anggota) error {
	return updateScoped(ctx, r.db, anggota, anggota.ID, anggota.UKMID,
		[]string{"nama", "nim", "jabatan"}, domain.ErrAnggotaNotFound, "anggota")
}

func (r *AnggotaRepository) Delete(ctx context.Context, ukmID, id int64) error {
	return deleteScoped(ctx, r.db, &model.Anggota{}, id, ukmID, domain.ErrAnggotaNotFound, "anggota")
}
