package model

import "time"

const DefaultRating = 5

// Komentar is a user's rating and comment on a UKM. Deleting a comment
// only clears IsActive.
type Komentar struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UKMID     int64     `gorm:"column:ukm_id;not null" json:"ukm_id"`
	UserID    int64     `gorm:"column:user_id;not null" json:"user_id"`
	Komentar  string    `gorm:"column:komentar;type:text;not null" json:"komentar"`
	Rating    int       `gorm:"not null;default:5" json:"rating"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Komentar) TableName() string {
	return "komentar_ukm"
}

// KomentarView is a comment joined with its author.
type KomentarView struct {
	Komentar `gorm:"embedded"`
	UserNama string `gorm:"column:user_nama" json:"user_nama"`
	NIM      string `gorm:"column:nim" json:"nim"`
}
