// internal/model/organization.go
package model

import (
	"time"
)

// UKM is a student organization.
type UKM struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Nama      string `gorm:"type:text;not null" json:"nama"`
	Deskripsi string `gorm:"type:text" json:"deskripsi"`
	Gambar    string `gorm:"type:text" json:"gambar"`
	WAGroup   string `gorm:"column:wa_group;type:text" json:"wa_group"`

	// TerdaftarAnggota is true once the organization has at least one member row.
	TerdaftarAnggota bool      `gorm:"column:terdaftaranggota;not null;default:false" json:"terdaftaranggota"`
	CreatedAt        time.Time `json:"created_at"`
}

func (UKM) TableName() string {
	return "ukm"
}

// Kegiatan is an activity hosted by a UKM.
type Kegiatan struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	UKMID     int64  `gorm:"column:ukm_id;not null" json:"ukm_id"`
	Nama      string `gorm:"type:text;not null" json:"nama"`
	Deskripsi string `gorm:"type:text" json:"deskripsi"`
	Tanggal   *Date  `gorm:"type:date" json:"tanggal"`
	LinkWA    string `gorm:"column:link_wa;type:text" json:"link_wa"`
}

func (Kegiatan) TableName() string {
	return "kegiatan"
}

// Anggota is a member row of a UKM. It is a denormalized copy of the
// user's name and student id, not a reference to the account.
type Anggota struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	UKMID   int64  `gorm:"column:ukm_id;not null" json:"ukm_id"`
	Nama    string `gorm:"type:text;not null" json:"nama"`
	NIM     string `gorm:"column:nim;type:text" json:"nim"`
	Jabatan string `gorm:"type:text" json:"jabatan"`
}

func (Anggota) TableName() string {
	return "anggota"
}

const DefaultJabatan = "Anggota"

// Laporan is an activity report filed under a UKM.
type Laporan struct {
	ID       int64   `gorm:"primaryKey" json:"id"`
	UKMID    int64   `gorm:"column:ukm_id;not null" json:"ukm_id"`
	Kegiatan string  `gorm:"type:text" json:"kegiatan"`
	Peserta  int     `json:"peserta"`
	Biaya    float64 `gorm:"type:numeric" json:"biaya"`
}

func (Laporan) TableName() string {
	return "laporan"
}

// UKMStats is the comment aggregate of one UKM.
type UKMStats struct {
	UKMID         int64   `gorm:"column:ukm_id"`
	KomentarCount int64   `gorm:"column:komentar_count"`
	AvgRating     float64 `gorm:"column:avg_rating"`
}

// UKMDetail is the public read model of a UKM.
type UKMDetail struct {
	UKM
	KomentarCount int64      `json:"komentar_count"`
	AvgRating     float64    `json:"avg_rating"`
	Kegiatan      []Kegiatan `json:"kegiatan"`
	Anggota       []Anggota  `json:"anggota"`
	Laporan       []Laporan  `json:"laporan"`
}
