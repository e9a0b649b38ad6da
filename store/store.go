// Package store persists segmentation problems and runs in a SQLite database.
//
// Problems are stored by unique name with their edges in input order (the
// seq column), so a reloaded problem segments exactly like the original.
// Each run keeps the compacted components with chain order and attach
// weights.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Sentinel errors.
var (
	// ErrProblemNotFound indicates no problem is stored under the given name.
	ErrProblemNotFound = errors.New("store: problem not found")

	// ErrRunNotFound indicates no run exists with the given id.
	ErrRunNotFound = errors.New("store: run not found")
)

const schema = `
CREATE TABLE IF NOT EXISTS problems (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT    NOT NULL UNIQUE,
	vertex_count INTEGER NOT NULL,
	constant     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS edges (
	problem_id  INTEGER NOT NULL REFERENCES problems(id) ON DELETE CASCADE,
	seq         INTEGER NOT NULL,
	origin      INTEGER NOT NULL,
	destination INTEGER NOT NULL,
	weight      INTEGER NOT NULL,
	PRIMARY KEY (problem_id, seq)
);
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	uuid       TEXT    NOT NULL UNIQUE,
	problem_id INTEGER NOT NULL REFERENCES problems(id) ON DELETE CASCADE,
	constant   INTEGER NOT NULL,
	strategy   TEXT    NOT NULL,
	merges     INTEGER NOT NULL,
	created_at TEXT    NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);
CREATE TABLE IF NOT EXISTS run_members (
	run_id        INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	component     INTEGER NOT NULL,
	position      INTEGER NOT NULL,
	vertex        INTEGER NOT NULL,
	attach_weight INTEGER NOT NULL,
	confidence    INTEGER NOT NULL,
	PRIMARY KEY (run_id, component, position)
);
`

// DB wraps a SQLite connection holding problems and runs.
type DB struct {
	conn *sql.DB
	log  *zap.Logger
	Path string
}

// Open opens (creating if needed) the database at path, enables foreign keys
// and applies the schema. A nil logger is replaced by a no-op one.
func Open(ctx context.Context, path string, log *zap.Logger) (*DB, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps PRAGMAs and in-memory databases consistent.
	conn.SetMaxOpenConns(1)

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	log.Debug("database opened", zap.String("path", path))

	return &DB{conn: conn, log: log, Path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// inTx runs fn inside a transaction, rolling back on error.
func (d *DB) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// problemID resolves a problem name.
func problemID(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, name string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, "SELECT id FROM problems WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %q", ErrProblemNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("looking up problem %q: %w", name, err)
	}

	return id, nil
}
