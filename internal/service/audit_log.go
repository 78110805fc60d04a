// internal/service/audit_log.go
package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/audit"
	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Ensure AuditLogService implements the audit.Logger interface
var _ audit.Logger = (*AuditLogService)(nil)

// AuditLogService writes and queries audit log entries.
type AuditLogService struct {
	repo *repository.AuditLogRepository
}

func NewAuditLogService(repo *repository.AuditLogRepository) *AuditLogService {
	return &AuditLogService{repo: repo}
}

func (s *AuditLogService) LogEntityCreate(ctx context.Context, entityType string, entityID int64, attributes map[string]interface{}) error {
	return s.record(ctx, model.ActionCreate, entityType, entityID, attributes)
}

func (s *AuditLogService) LogEntityUpdate(ctx context.Context, entityType string, entityID int64, attributes map[string]interface{}) error {
	return s.record(ctx, model.ActionUpdate, entityType, entityID, attributes)
}

func (s *AuditLogService) LogEntityDelete(ctx context.Context, entityType string, entityID int64) error {
	return s.record(ctx, model.ActionDelete, entityType, entityID, nil)
}

func (s *AuditLogService) LogTransition(ctx context.Context, registrationID int64, from, to model.RegistrationStatus, attributes map[string]interface{}) error {
	data := map[string]interface{}{"from": from, "to": to}
	for k, v := range attributes {
		data[k] = v
	}
	return s.record(ctx, model.ActionTransition, model.EntityRegistration, registrationID, data)
}

func (s *AuditLogService) record(ctx context.Context, action, entityType string, entityID int64, attributes map[string]interface{}) error {
	log := &model.AuditLog{
		ActionType: action,
		EntityType: entityType,
		EntityID:   strconv.FormatInt(entityID, 10),
		Timestamp:  time.Now().UTC(),
	}
	if attributes != nil {
		log.Context = datatypes.JSONMap(attributes)
	}

	if id, ok := auth.IdentityFrom(ctx); ok {
		log.ActorID = id.UserID
		log.ActorRole = id.Role
	}

	meta := audit.RequestMetaFrom(ctx)
	log.RequestID = meta.RequestID
	log.ClientIP = meta.ClientIP
	log.UserAgent = meta.UserAgent

	return s.repo.Create(ctx, log)
}

// GetAuditLogs retrieves audit logs based on query parameters
func (s *AuditLogService) GetAuditLogs(ctx context.Context, params repository.QueryParams) ([]model.AuditLog, int64, error) {
	return s.repo.Query(ctx, params)
}

// GetAuditLogByID retrieves an audit log by ID
func (s *AuditLogService) GetAuditLogByID(ctx context.Context, id uuid.UUID) (*model.AuditLog, error) {
	return s.repo.FindByID(ctx, id)
}

// warnAudit logs a failed audit write. Audit failures never fail the
// operation being audited.
func warnAudit(ctx context.Context, err error, entityType string, entityID int64) {
	if err == nil {
		return
	}
	slog.WarnContext(ctx, "Failed to write audit log",
		"entity_type", entityType,
		"entity_id", entityID,
		"error", err,
	)
}
