package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records an admin mutation or a registration transition.
type AuditLog struct {
	ID         uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp  time.Time         `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP"`
	ActionType string            `json:"action_type"`
	ActorID    int64             `json:"actor_id"`
	ActorRole  Role              `json:"actor_role" gorm:"type:text"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Context    datatypes.JSONMap `json:"context" gorm:"type:jsonb"`
	RequestID  string            `json:"request_id"`
	ClientIP   string            `json:"client_ip"`
	UserAgent  string            `json:"user_agent"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Constants for AuditLog action types
const (
	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionTransition = "transition"
)

// Constants for AuditLog entity types
const (
	EntityUKM          = "ukm"
	EntityKegiatan     = "kegiatan"
	EntityLaporan      = "laporan"
	EntityAnggota      = "anggota"
	EntityRegistration = "registration"
	EntityKomentar     = "komentar"
)
