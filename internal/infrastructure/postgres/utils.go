package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de Postgres para violación de constraint único.
const uniqueViolationCode = "23505"

// isUniqueViolation reporta si err proviene de un índice o constraint UNIQUE.
// pgx v5 siempre entrega errores del servidor como *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
