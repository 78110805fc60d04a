// internal/model/user.go
package model

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User is a platform account. Accounts are owned by the external auth
// service; this module only reads them.
type User struct {
	ID       int64   `gorm:"primaryKey" json:"id"`
	Nama     string  `gorm:"type:text;not null" json:"nama"`
	NIM      string  `gorm:"column:nim;type:text" json:"nim"`
	Fakultas string  `gorm:"type:text" json:"fakultas"`
	Email    *string `gorm:"type:text" json:"email,omitempty"`
	Role     Role    `gorm:"type:text;not null;default:'member'" json:"role"`
}

func (User) TableName() string {
	return "users"
}
