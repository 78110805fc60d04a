// internal/model/registration.go
package model

import "time"

type RegistrationType string

const (
	RegistrationAnggota  RegistrationType = "anggota"
	RegistrationKegiatan RegistrationType = "kegiatan"
)

func (t RegistrationType) Valid() bool {
	return t == RegistrationAnggota || t == RegistrationKegiatan
}

type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusAccepted RegistrationStatus = "accepted"
	StatusRejected RegistrationStatus = "rejected"
)

// Decided reports whether s is a status an admin may set.
func (s RegistrationStatus) Decided() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Registration is a user's request to join a UKM or one of its activities.
// Registrations are never deleted.
type Registration struct {
	ID           int64              `gorm:"primaryKey" json:"id"`
	UserID       int64              `gorm:"column:user_id;not null" json:"user_id"`
	UKMID        int64              `gorm:"column:ukm_id;not null" json:"ukm_id"`
	KegiatanID   *int64             `gorm:"column:kegiatan_id" json:"kegiatan_id"`
	Type         RegistrationType   `gorm:"type:text;not null" json:"type"`
	Status       RegistrationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	RegisteredAt time.Time          `gorm:"autoCreateTime" json:"registered_at"`
}

func (Registration) TableName() string {
	return "user_ukm_registrations"
}

// RegistrationView is a registration with denormalized display fields.
// The user fields are only populated on the admin listing.
type RegistrationView struct {
	Registration `gorm:"embedded"`
	UKMNama      *string `gorm:"column:ukm_nama" json:"ukm_nama"`
	KegiatanNama *string `gorm:"column:kegiatan_nama" json:"kegiatan_nama"`
	LinkWA       *string `gorm:"column:link_wa" json:"link_wa,omitempty"`
	UserNama     *string `gorm:"column:user_nama" json:"user_nama,omitempty"`
	NIM          *string `gorm:"column:nim" json:"nim,omitempty"`
	Fakultas     *string `gorm:"column:fakultas" json:"fakultas,omitempty"`
}
