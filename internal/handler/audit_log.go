// internal/handler/audit_log.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/repository"
	"github.com/dangerclosesec/ukmhub/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AuditLogHandler handles API requests related to audit logs
type AuditLogHandler struct {
	auditLogService *service.AuditLogService
}

func NewAuditLogHandler(auditLogService *service.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{auditLogService: auditLogService}
}

type AuditLogsResponse struct {
	Logs  []model.AuditLog `json:"logs"`
	Total int64            `json:"total"`
}

// GetAuditLogs handles requests to retrieve audit logs with filtering.
// Malformed filters are ignored.
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := repository.QueryParams{
		ActionType: q.Get("action_type"),
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
	}

	if actorID, err := strconv.ParseInt(q.Get("actor_id"), 10, 64); err == nil {
		params.ActorID = actorID
	}
	if startTime, err := time.Parse(time.RFC3339, q.Get("start_time")); err == nil {
		params.StartTime = startTime
	}
	if endTime, err := time.Parse(time.RFC3339, q.Get("end_time")); err == nil {
		params.EndTime = endTime
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset >= 0 {
		params.Offset = offset
	}

	logs, total, err := h.auditLogService.GetAuditLogs(r.Context(), params)
	if err != nil {
		handleError(w, r, err, "Failed to retrieve audit logs")
		return
	}

	respondWithJSON(w, http.StatusOK, AuditLogsResponse{Logs: nonNil(logs), Total: total})
}

// GetAuditLogByID handles requests to retrieve a specific audit log by ID
func (h *AuditLogHandler) GetAuditLogByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid audit log ID format")
		return
	}

	log, err := h.auditLogService.GetAuditLogByID(r.Context(), id)
	if err != nil {
		handleError(w, r, err, "Failed to retrieve audit log")
		return
	}
	respondWithJSON(w, http.StatusOK, log)
}
