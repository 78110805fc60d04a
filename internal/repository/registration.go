// internal/repository/registration.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"gorm.io/gorm"
)

type RegistrationRepositoryIface interface {
	ListByUser(ctx context.Context, userID int64) ([]model.RegistrationView, error)
	ListKegiatanByUser(ctx context.Context, userID int64) ([]model.RegistrationView, error)
	ListAll(ctx context.Context) ([]model.RegistrationView, error)
	Exists(ctx context.Context, userID, ukmID int64, typ model.RegistrationType) (bool, error)
	Create(ctx context.Context, reg *model.Registration) error
	FindByID(ctx context.Context, id int64) (*model.Registration, error)
	UpdateStatus(ctx context.Context, reg *model.Registration, status model.RegistrationStatus) error
}

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// userRegistrations lists a user's registrations for UKMs that still
// exist. The activity join is left so UKM registrations are kept.
func userRegistrations(db *gorm.DB, userID int64) *gorm.DB {
	return db.Table("user_ukm_registrations AS r").
		Select("r.*, u.nama AS ukm_nama, k.nama AS kegiatan_nama, k.link_wa").
		Joins("JOIN ukm u ON u.id = r.ukm_id").
		Joins("LEFT JOIN kegiatan k ON k.id = r.kegiatan_id").
		Where("r.user_id = ?", userID).
		Order("r.registered_at DESC")
}

func userKegiatanRegistrations(db *gorm.DB, userID int64) *gorm.DB {
	return db.Table("user_ukm_registrations AS r").
		Select("r.*, u.nama AS ukm_nama, k.nama AS kegiatan_nama, k.link_wa").
		Joins("JOIN ukm u ON u.id = r.ukm_id").
		Joins("JOIN kegiatan k ON k.id = r.kegiatan_id").
		Where("r.user_id = ? AND r.type = ?", userID, model.RegistrationKegiatan).
		Order("r.registered_at DESC")
}

// allRegistrations lists registrations whose applicant still exists.
func allRegistrations(db *gorm.DB) *gorm.DB {
	return db.Table("user_ukm_registrations AS r").
		Select("r.*, us.nama AS user_nama, us.nim, us.fakultas, u.nama AS ukm_nama, k.nama AS kegiatan_nama").
		Joins("JOIN users us ON us.id = r.user_id").
		Joins("LEFT JOIN ukm u ON u.id = r.ukm_id").
		Joins("LEFT JOIN kegiatan k ON k.id = r.kegiatan_id").
		Order("r.registered_at DESC")
}

// ListByUser returns every registration of the user, newest first.
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID int64) ([]model.RegistrationView, error) {
	var views []model.RegistrationView
	if err := userRegistrations(conn(ctx, r.db), userID).Find(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return views, nil
}

// ListKegiatanByUser returns the user's activity registrations whose
// activity still exists.
func (r *RegistrationRepository) ListKegiatanByUser(ctx context.Context, userID int64) ([]model.RegistrationView, error) {
	var views []model.RegistrationView
	if err := userKegiatanRegistrations(conn(ctx, r.db), userID).Find(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list kegiatan registrations: %w", err)
	}
	return views, nil
}

// ListAll returns every registration with its applicant.
func (r *RegistrationRepository) ListAll(ctx context.Context) ([]model.RegistrationView, error) {
	var views []model.RegistrationView
	if err := allRegistrations(conn(ctx, r.db)).Find(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list all registrations: %w", err)
	}
	return views, nil
}

// Exists reports whether the user already registered for the UKM with
// this type, in any status.
func (r *RegistrationRepository) Exists(ctx context.Context, userID, ukmID int64, typ model.RegistrationType) (bool, error) {
	var count int64
	result := conn(ctx, r.db).Model(&model.Registration{}).
		Where("user_id = ? AND ukm_id = ? AND type = ?", userID, ukmID, typ).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check registration: %w", result.Error)
	}
	return count > 0, nil
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	if err := conn(ctx, r.db).Create(reg).Error; err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id int64) (*model.Registration, error) {
	var reg model.Registration
	result := conn(ctx, r.db).First(&reg, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to find registration: %w", result.Error)
	}
	return &reg, nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, reg *model.Registration, status model.RegistrationStatus) error {
	result := conn(ctx, r.db).Model(&model.Registration{}).
		Where("id = ?", reg.ID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update registration status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRegistrationNotFound
	}
	reg.Status = status
	return nil
}
