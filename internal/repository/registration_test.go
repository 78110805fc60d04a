package repository

import (
	"testing"

	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB renders SQL without a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestRegistrationViewJoins(t *testing.T) {
	db := dryRunDB(t)

	tests := []struct {
		name    string
		query   func(tx *gorm.DB) *gorm.DB
		want    []string
		notWant []string
	}{
		{
			name:    "user list requires the ukm",
			query:   func(tx *gorm.DB) *gorm.DB { return userRegistrations(tx, 42) },
			want:    []string{"JOIN ukm u ON u.id = r.ukm_id", "LEFT JOIN kegiatan k", "r.user_id = 42"},
			notWant: []string{"LEFT JOIN ukm"},
		},
		{
			name:    "kegiatan list requires ukm and kegiatan",
			query:   func(tx *gorm.DB) *gorm.DB { return userKegiatanRegistrations(tx, 42) },
			want:    []string{"JOIN ukm u ON u.id = r.ukm_id", "JOIN kegiatan k ON k.id = r.kegiatan_id", "r.type = 'kegiatan'"},
			notWant: []string{"LEFT JOIN"},
		},
		{
			name:    "admin list requires the applicant",
			query:   allRegistrations,
			want:    []string{"JOIN users us ON us.id = r.user_id", "LEFT JOIN ukm u", "LEFT JOIN kegiatan k"},
			notWant: []string{"LEFT JOIN users"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var views []model.RegistrationView
				return tt.query(tx).Find(&views)
			})

			for _, fragment := range tt.want {
				assert.Contains(t, sql, fragment)
			}
			for _, fragment := range tt.notWant {
				assert.NotContains(t, sql, fragment)
			}
			assert.Contains(t, sql, "ORDER BY r.registered_at DESC")
		})
	}
}
