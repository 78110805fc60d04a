package audit

import (
	"context"

	"github.com/dangerclosesec/ukmhub/internal/model"
)

// Logger defines the interface for auditing admin mutations. The actor and
// request metadata are taken from ctx.
type Logger interface {
	// LogEntityCreate logs an entity creation operation
	LogEntityCreate(ctx context.Context, entityType string, entityID int64, attributes map[string]interface{}) error

	// LogEntityUpdate logs an entity update operation
	LogEntityUpdate(ctx context.Context, entityType string, entityID int64, attributes map[string]interface{}) error

	// LogEntityDelete logs an entity deletion operation
	LogEntityDelete(ctx context.Context, entityType string, entityID int64) error

	// LogTransition logs a registration status change
	LogTransition(ctx context.Context, registrationID int64, from, to model.RegistrationStatus, attributes map[string]interface{}) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (l *NoOpLogger) LogEntityCreate(ctx context.Context, entityType string, entityID int64, attributes map[string]interface{}) error {
	return nil
}

func (l *NoOpLogger) LogEntityUpdate(ctx context.Context, entityType string, entityID int64, attributes map[string]interface{}) error {
	return nil
}

func (l *NoOpLogger) LogEntityDelete(ctx context.Context, entityType string, entityID int64) error {
	return nil
}

func (l *NoOpLogger) LogTransition(ctx context.Context, registrationID int64, from, to model.RegistrationStatus, attributes map[string]interface{}) error {
	return nil
}
