package sqlstore

import (
	"fmt"
	"strings"

	"bordoodles-api/internal/domain/catalog"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

func (d Driver) IsValid() bool {
	return d == DriverPostgres || d == DriverSQLite
}

// dialect aísla las diferencias de SQL entre Postgres y SQLite.
type dialect struct {
	driver Driver

	// nombre registrado en database/sql
	sqlDriver string

	idColumn string
	dateType string
}

func dialectFor(d Driver) (dialect, error) {
	switch d {
	case DriverPostgres:
		return dialect{
			driver:    d,
			sqlDriver: "pgx",
			idColumn:  "BIGSERIAL PRIMARY KEY",
			dateType:  "DATE",
		}, nil
	case DriverSQLite:
		return dialect{
			driver:    d,
			sqlDriver: "sqlite",
			// AUTOINCREMENT evita reutilizar ids de filas borradas
			idColumn: "INTEGER PRIMARY KEY AUTOINCREMENT",
			dateType: "TEXT",
		}, nil
	default:
		return dialect{}, fmt.Errorf("unsupported sql driver: %q", d)
	}
}

// ph devuelve el placeholder n (1-based).
func (d dialect) ph(n int) string {
	if d.driver == DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (d dialect) placeholders(from, count int) string {
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		parts = append(parts, d.ph(from+i))
	}
	return strings.Join(parts, ", ")
}

// updateSQL arma "UPDATE table SET a=$1, b=$2 WHERE id=$3".
// Sin columnas, el update igual cuenta la fila para poder responder 404 o 200.
func (d dialect) updateSQL(table string, cols []catalog.Column) (string, []any) {
	if len(cols) == 0 {
		return fmt.Sprintf("UPDATE %s SET id = id WHERE id = %s", table, d.ph(1)), nil
	}

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = %s", c.Name, d.ph(i+1)))
		args = append(args, c.Value)
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = %s", table, strings.Join(sets, ", "), d.ph(len(cols)+1))
	return q, args
}
