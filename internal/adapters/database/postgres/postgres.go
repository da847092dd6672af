package postgres

import (
	"errors"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// notFound translates gorm's record-not-found into the domain taxonomy so
// services never import gorm.
func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorz.NotFoundf(format, args...)
	}
	return err
}

// conflict translates a unique-constraint violation into the domain taxonomy.
func conflict(err error, format string, args ...interface{}) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errorz.Conflictf(format, args...)
	}
	return err
}
