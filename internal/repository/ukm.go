// internal/repository/ukm.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"gorm.io/gorm"
)

type UKMRepositoryIface interface {
	FindAll(ctx context.Context) ([]model.UKM, error)
	FindAllPaginated(ctx context.Context, offset, limit int) ([]model.UKM, int64, error)
	FindByID(ctx context.Context, id int64) (*model.UKM, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Stats(ctx context.Context, ids []int64) (map[int64]model.UKMStats, error)
	Create(ctx context.Context, ukm *model.UKM) error
	Update(ctx context.Context, ukm *model.UKM) error
	Delete(ctx context.Context, id int64) error
	SetMemberFlag(ctx context.Context, id int64, registered bool) error
	RefreshMemberFlag(ctx context.Context, id int64) error
}

type UKMRepository struct {
	db *gorm.DB
}

func NewUKMRepository(db *gorm.DB) *UKMRepository {
	return &UKMRepository{db: db}
}

// FindAll returns all UKMs, newest first.
func (r *UKMRepository) FindAll(ctx context.Context) ([]model.UKM, error) {
	var ukms []model.UKM
	result := conn(ctx, r.db).Order("created_at DESC").Find(&ukms)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all ukm: %w", result.Error)
	}
	return ukms, nil
}

// FindAllPaginated returns a page of UKMs ordered by id along with the total count.
func (r *UKMRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]model.UKM, int64, error) {
	var ukms []model.UKM
	var count int64

	if err := conn(ctx, r.db).Model(&model.UKM{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ukm: %w", err)
	}

	result := conn(ctx, r.db).Order("id").Offset(offset).Limit(limit).Find(&ukms)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated ukm: %w", result.Error)
	}

	return ukms, count, nil
}

func (r *UKMRepository) FindByID(ctx context.Context, id int64) (*model.UKM, error) {
	var ukm model.UKM
	result := conn(ctx, r.db).First(&ukm, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUKMNotFound
		}
		return nil, fmt.Errorf("failed to find ukm: %w", result.Error)
	}
	return &ukm, nil
}

func (r *UKMRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&model.UKM{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ukm: %w", err)
	}
	return count > 0, nil
}

// Stats aggregates active comments per UKM. UKMs without active comments
// are absent from the result.
func (r *UKMRepository) Stats(ctx context.Context, ids []int64) (map[int64]model.UKMStats, error) {
	stats := make(map[int64]model.UKMStats, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}

	var rows []model.UKMStats
	result := conn(ctx, r.db).Model(&model.Komentar{}).
		Select("ukm_id, COUNT(*) AS komentar_count, COALESCE(AVG(rating), 0) AS avg_rating").
		Where("ukm_id IN ? AND is_active = ?", ids, true).
		Group("ukm_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to aggregate komentar: %w", result.Error)
	}

	for _, row := range rows {
		stats[row.UKMID] = row
	}
	return stats, nil
}

func (r *UKMRepository) Create(ctx context.Context, ukm *model.UKM) error {
	result := conn(ctx, r.db).Create(ukm)
	if result.Error != nil {
		return fmt.Errorf("failed to create ukm: %w", result.Error)
	}
	return nil
}

// Update overwrites the editable columns and reloads the row into ukm.
func (r *UKMRepository) Update(ctx context.Context, ukm *model.UKM) error {
	result := conn(ctx, r.db).Model(&model.UKM{}).
		Where("id = ?", ukm.ID).
		Select("nama", "deskripsi", "gambar", "wa_group").
		Updates(ukm)
	if result.Error != nil {
		return fmt.Errorf("failed to update ukm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUKMNotFound
	}

	if err := conn(ctx, r.db).First(ukm, "id = ?", ukm.ID).Error; err != nil {
		return fmt.Errorf("failed to reload ukm: %w", err)
	}
	return nil
}

// Delete removes the UKM; children go with it through ON DELETE CASCADE.
func (r *UKMRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&model.UKM{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ukm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUKMNotFound
	}
	return nil
}

func (r *UKMRepository) SetMemberFlag(ctx context.Context, id int64, registered bool) error {
	result := conn(ctx, r.db).Model(&model.UKM{}).
		Where("id = ?", id).
		Update("terdaftaranggota", registered)
	if result.Error != nil {
		return fmt.Errorf("failed to set member flag: %w", result.Error)
	}
	return nil
}

// RefreshMemberFlag recomputes terdaftaranggota from the anggota table.
func (r *UKMRepository) RefreshMemberFlag(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Model(&model.UKM{}).
		Where("id = ?", id).
		Update("terdaftaranggota", gorm.Expr("EXISTS (SELECT 1 FROM anggota WHERE anggota.ukm_id = ?)", id))
	if result.Error != nil {
		return fmt.Errorf("failed to refresh member flag: %w", result.Error)
	}
	return nil
}
