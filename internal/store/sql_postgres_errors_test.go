package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soilstack/fieldsync/internal/logger"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil error", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
		{name: "wrapped deadlock", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestWrapDBError(t *testing.T) {
	db := &DB{logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}

	t.Run("transient fault maps to storage unavailable", func(t *testing.T) {
		err := db.wrapDBError(ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.ConnectionFailure})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		assert.NotErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("hard fault keeps the sentinel", func(t *testing.T) {
		err := db.wrapDBError(ErrExecutingStatement, errors.New("column does not exist"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NotErrorIs(t, err, ErrStorageUnavailable)
	})
}
