package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification sorts database failures into transient faults worth
// retrying and hard faults that will fail the same way on every attempt.
type ErrorClassification int

const (
	// NonRetryable covers constraint violations, malformed data and
	// statements, and every unrecognised failure.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient faults such as dropped connections,
	// serialization rollbacks, and deadlock victims.
	Retryable
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier classifies failures by their PostgreSQL error
// code. See https://www.postgresql.org/docs/current/errcodes-appendix.html.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// retryablePgCodes holds the connection-exception (class 08), transaction
// rollback (class 40), and cannot-connect-now (57P03) codes after which a
// repeated attempt can succeed.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// Classify implements [ErrorClassificator]. Errors that do not unwrap to a
// *pgconn.PgError, and pg errors outside the retryable code set, are
// [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
