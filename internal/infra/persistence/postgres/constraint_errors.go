package postgres

import (
	"newsbite/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes relevant to constraint handling.
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeNotNullViolation    = "23502"
)

// pgErrorCode extracts the SQLSTATE code from a driver error, or "" when the
// error did not originate from PostgreSQL.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	// GORM translates 23505 when TranslateError is enabled; the raw code
	// still shows up on paths that bypass translation.
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgCodeUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgCodeForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgCodeNotNullViolation
}
