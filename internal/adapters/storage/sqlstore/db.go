// Package sqlstore implementa los gateways de parents y puppies sobre database/sql.
// Postgres vía pgx (producción) y SQLite vía modernc (desarrollo, sin cgo).
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store agrupa la conexión y los repos de ambas colecciones.
type Store struct {
	db      *sql.DB
	dialect dialect

	parents *ParentsRepo
	puppies *PuppiesRepo
}

// Open abre el pool y verifica conectividad.
// Para SQLite, dsn es un path de archivo (se crea el directorio si falta).
func Open(driver Driver, dsn string) (*Store, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("sqlstore: empty dsn for %s", driver)
	}

	if driver == DriverSQLite {
		dsn, err = sqliteDSN(dsn)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(d.sqlDriver, dsn)
	if err != nil {
		return nil, err
	}

	switch driver {
	case DriverSQLite:
		// SQLite serializa escrituras; una sola conexión evita SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return newStore(db, d), nil
}

func newStore(db *sql.DB, d dialect) *Store {
	return &Store{
		db:      db,
		dialect: d,
		parents: &ParentsRepo{db: db, d: d},
		puppies: &PuppiesRepo{db: db, d: d},
	}
}

func sqliteDSN(path string) (string, error) {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return path, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("sqlstore: create data dir: %w", err)
		}
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
}

func (s *Store) Driver() Driver {
	return s.dialect.driver
}

func (s *Store) Parents() *ParentsRepo {
	return s.parents
}

func (s *Store) Puppies() *PuppiesRepo {
	return s.puppies
}

func (s *Store) Close() error {
	return s.db.Close()
}
