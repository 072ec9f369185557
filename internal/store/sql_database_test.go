package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySQLiteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: Retryable},
		{name: "wrapped busy", err: fmt.Errorf("%w: %w", ErrExecutingStatement, sqlite3.Error{Code: sqlite3.ErrBusy}), want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
		{name: "disk full", err: sqlite3.Error{Code: sqlite3.ErrFull}, want: NonRetryable},
		{name: "not a driver error", err: errors.New("boom"), want: NonRetryable},
	}

	c := NewSQLiteErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func execInTx(db *DB) error {
	return db.inTx(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM records"); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func TestInTx_RetriesBusyDatabase(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM records").WillReturnError(busy)
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM records").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, execInTx(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_GivesUpAfterRetries(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	for range txMaxRetries + 1 {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM records").WillReturnError(busy)
		mock.ExpectRollback()
	}

	err := execInTx(db)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_DoesNotRetryPermanentErrors(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM records").WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})
	mock.ExpectRollback()

	err := execInTx(db)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
