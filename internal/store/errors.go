package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateOrderID is returned when an order event insert violates the
// unique constraint on order_events.order_id. Callers map it to a conflict
// response, distinct from any other persistence failure.
var ErrDuplicateOrderID = errors.New("order_id already exists")

// Postgres SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
