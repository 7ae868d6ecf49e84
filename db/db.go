package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported dialects
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// DB wraps *sql.DB with the active dialect so the same query text works
// against both PostgreSQL and SQLite. Queries are written with $1..$N
// placeholders and rebound to ?1..?N for SQLite.
type DB struct {
	conn    *sql.DB
	dialect string
}

// Open connects using the given dialect ("postgres" or "sqlite") and URL.
func Open(dialect, url string) (*DB, error) {
	switch dialect {
	case DialectPostgres, DialectSQLite:
	default:
		return nil, fmt.Errorf("unsupported database type: %q", dialect)
	}

	conn, err := sql.Open(dialect, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite permits a single writer; keeping one connection avoids
	// SQLITE_BUSY and makes in-memory databases behave.
	if dialect == DialectSQLite {
		conn.SetMaxOpenConns(1)
	}

	return &DB{conn: conn, dialect: dialect}, nil
}

func (d *DB) Dialect() string { return d.dialect }

func (d *DB) Close() error { return d.conn.Close() }

func (d *DB) Ping() error { return d.conn.Ping() }

func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	return d.conn.Exec(d.rebind(query), args...)
}

func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return d.conn.Query(d.rebind(query), args...)
}

func (d *DB) QueryRow(query string, args ...any) *sql.Row {
	return d.conn.QueryRow(d.rebind(query), args...)
}

// Begin starts a transaction whose statements are rebound like the DB's.
func (d *DB) Begin() (*Tx, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, dialect: d.dialect}, nil
}

// ForUpdate returns the row-lock clause for SELECTs that guard a
// read-then-write sequence. SQLite serializes writers already, so the
// clause is empty there.
func (d *DB) ForUpdate() string {
	if d.dialect == DialectPostgres {
		return " FOR UPDATE"
	}
	return ""
}

// Tx is a transaction with dialect-aware placeholder rebinding.
type Tx struct {
	tx      *sql.Tx
	dialect string
}

func (t *Tx) Exec(query string, args ...any) (sql.Result, error) {
	return t.tx.Exec(rebind(t.dialect, query), args...)
}

func (t *Tx) Query(query string, args ...any) (*sql.Rows, error) {
	return t.tx.Query(rebind(t.dialect, query), args...)
}

func (t *Tx) QueryRow(query string, args ...any) *sql.Row {
	return t.tx.QueryRow(rebind(t.dialect, query), args...)
}

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

func (d *DB) rebind(query string) string {
	return rebind(d.dialect, query)
}

// rebind rewrites $N placeholders to ?N for SQLite. Postgres queries
// pass through untouched.
func rebind(dialect, query string) string {
	if dialect != DialectSQLite || !strings.ContainsRune(query, '$') {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
