// internal/repository/scoped.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Kegiatan, anggota and laporan rows live under a UKM. Every write to
// them is filtered by both the row id and the owning ukm_id, so a row
// addressed through the wrong UKM reads as missing.

// updateScoped writes columns of row (whose ID and UKMID are set) and
// loads the stored row back into it.
func updateScoped(ctx context.Context, db *gorm.DB, row interface{}, id, ukmID int64, columns []string, notFound error, what string) error {
	result := conn(ctx, db).Model(row).
		Clauses(clause.Returning{}).
		Where("id = ? AND ukm_id = ?", id, ukmID).
		Select(columns).
		Updates(row)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", what, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

func deleteScoped(ctx context.Context, db *gorm.DB, row interface{}, id, ukmID int64, notFound error, what string) error {
	result := conn(ctx, db).Where("id = ? AND ukm_id = ?", id, ukmID).Delete(row)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", what, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

func findByUKMIDs(ctx context.Context, db *gorm.DB, dest interface{}, ukmIDs []int64, order, what string) error {
	if len(ukmIDs) == 0 {
		return nil
	}
	result := conn(ctx, db).Where("ukm_id IN ?", ukmIDs).Order(order).Find(dest)
	if result.Error != nil {
		return fmt.Errorf("failed to find %s: %w", what, result.Error)
	}
	return nil
}
