// internal/repository/komentar.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KomentarRepositoryIface interface {
	ListActiveByUKM(ctx context.Context, ukmID int64) ([]model.KomentarView, error)
	HasActive(ctx context.Context, ukmID, userID int64) (bool, error)
	Create(ctx context.Context, komentar *model.Komentar) error
	UpdateOwned(ctx context.Context, komentar *model.Komentar) error
	Deactivate(ctx context.Context, id, userID int64, asAdmin bool) (*model.Komentar, error)
}

type KomentarRepository struct {
	db *gorm.DB
}

func NewKomentarRepository(db *gorm.DB) *KomentarRepository {
	return &KomentarRepository{db: db}
}

// ListActiveByUKM returns active comments with their author, newest first.
func (r *KomentarRepository) ListActiveByUKM(ctx context.Context, ukmID int64) ([]model.KomentarView, error) {
	var views []model.KomentarView
	result := conn(ctx, r.db).Table("komentar_ukm AS k").
		Select("k.*, u.nama AS user_nama, u.nim").
		Joins("JOIN users u ON u.id = k.user_id").
		Where("k.ukm_id = ? AND k.is_active = ?", ukmID, true).
		Order("k.created_at DESC").
		Scan(&views)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list komentar: %w", result.Error)
	}
	return views, nil
}

func (r *KomentarRepository) HasActive(ctx context.Context, ukmID, userID int64) (bool, error) {
	var count int64
	result := conn(ctx, r.db).Model(&model.Komentar{}).
		Where("ukm_id = ? AND user_id = ? AND is_active = ?", ukmID, userID, true).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check komentar: %w", result.Error)
	}
	return count > 0, nil
}

func (r *KomentarRepository) Create(ctx context.Context, komentar *model.Komentar) error {
	if err := conn(ctx, r.db).Create(komentar).Error; err != nil {
		return fmt.Errorf("failed to create komentar: %w", err)
	}
	return nil
}

// UpdateOwned rewrites text and rating of an active comment owned by
// komentar.UserID and loads the stored row back.
func (r *KomentarRepository) UpdateOwned(ctx context.Context, komentar *model.Komentar) error {
	result := conn(ctx, r.db).Model(komentar).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ? AND is_active = ?", komentar.ID, komentar.UserID, true).
		Updates(map[string]interface{}{
			"komentar":   komentar.Komentar,
			"rating":     komentar.Rating,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update komentar: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrKomentarNotOwned
	}
	return nil
}

// Deactivate soft-deletes a comment. Non-admins may only deactivate their
// own comments. The deactivated row is returned.
func (r *KomentarRepository) Deactivate(ctx context.Context, id, userID int64, asAdmin bool) (*model.Komentar, error) {
	var komentar model.Komentar
	query := conn(ctx, r.db).Where("id = ?", id)
	if !asAdmin {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.First(&komentar).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKomentarNotFound
		}
		return nil, fmt.Errorf("failed to find komentar: %w", err)
	}

	result := conn(ctx, r.db).Model(&komentar).Updates(map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to deactivate komentar: %w", result.Error)
	}
	komentar.IsActive = false
	return &komentar, nil
}
