// internal/repository/repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// PostgreSQL: could not serialize access due to concurrent update.
	serializationFailureCode = "40001"
	// PostgreSQL: deadlock detected.
	deadlockDetectedCode = "40P01"

	// Attempts including the first one.
	maxTxAttempts = 3
	// Linear backoff base between attempts.
	txRetryBackoff = 20 * time.Millisecond
)

// Transactor runs a function inside one database transaction. Repository
// calls made with the ctx passed to fn join that transaction.
type Transactor interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// conn returns the transaction bound to ctx, or db when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// GormTransactor runs transactions at SERIALIZABLE isolation and retries
// serialization failures and deadlocks.
type GormTransactor struct {
	db *gorm.DB
}

func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// Transact implements Transactor. A nested call joins the outer
// transaction instead of opening a new one.
func (t *GormTransactor) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(context.WithValue(ctx, txKey{}, tx))
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})

		if err == nil || !isRetryableTxError(err) || attempt == maxTxAttempts {
			return err
		}

		slog.WarnContext(ctx, "Rolling back transaction, retrying", "attempt", attempt, "error", err)

		select {
		case <-time.After(time.Duration(attempt) * txRetryBackoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// isRetryableTxError reports whether err is a transaction conflict that
// succeeds when run again.
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == serializationFailureCode || pgErr.Code == deadlockDetectedCode
	}
	return false
}
