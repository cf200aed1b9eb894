package postgres

import (
	"errors"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// stripAccents elimina marcas diacríticas (NFD + quitar Mn + NFC) para que
// la búsqueda encuentre "Jose" escribiendo "José" y viceversa.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// searchPattern construye el patrón ILIKE de un término de búsqueda,
// normalizando acentos. Término vacío devuelve "%".
func searchPattern(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return "%"
	}
	if normalized, _, err := transform.String(stripAccents, term); err == nil {
		term = normalized
	}
	return "%" + term + "%"
}
