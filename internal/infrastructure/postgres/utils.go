package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de PostgreSQL para violación de índice único.
const codigoUniqueViolation = "23505"

// isUniqueViolation reconoce la violación de unicidad tanto si llega como
// *pgconn.PgError como si viene envuelta solo con su texto.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codigoUniqueViolation
	}
	return strings.Contains(err.Error(), codigoUniqueViolation)
}
