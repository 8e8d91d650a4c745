package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"staybook/internal/infra"
)

const (
	pgUniqueViolation    = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation = "23P01"
)

// classify maps Postgres error codes onto repository error kinds so the
// use case layer never sees driver-level errors.
func classify(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.KindDuplicateKey
		case pgForeignKeyViolation:
			return infra.KindForeignKeyViolated
		case pgExclusionViolation:
			return infra.KindConflict
		}
	}
	return infra.KindDBFailure
}
