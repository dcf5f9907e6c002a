package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503),
// p. ej. una factura que referencia un cliente que no existe.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// likeEscaper neutraliza los metacaracteres de LIKE: el término del usuario
// es un substring literal, no un patrón. Sin esto, buscar "%" casa con todo
// y "_" con cualquier carácter.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern construye el patrón ILIKE de búsqueda por substring.
// Con term vacío el patrón "%%" casa con todas las filas, así las consultas
// no necesitan ramificar entre "con filtro" y "sin filtro".
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
