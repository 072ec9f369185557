package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	txMaxRetries  = 3
	txBackoffBase = 10 * time.Millisecond
)

type DB struct {
	*sql.DB
	classifier *SQLiteErrorClassifier
	logger     *logger.Logger
}

func newDB(sqlDB *sql.DB, logger *logger.Logger) *DB {
	return &DB{DB: sqlDB, classifier: NewSQLiteErrorClassifier(), logger: logger}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// inTx runs fn in a transaction, rolling back on error. A transaction that
// fails on lock contention is retried from scratch with exponential backoff.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	backoff := retry.WithMaxRetries(txMaxRetries, retry.NewExponential(txBackoffBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.runTx(ctx, fn)
		if err != nil && db.classifier.Classify(err) == Retryable {
			db.logger.Warn().Err(err).
				Str("func", "DB.inTx").
				Int("attempt", attempt).
				Msg("database is busy, retrying transaction")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			db.logger.Err(rbErr).Str("func", "DB.inTx").Msg("rollback failed")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
