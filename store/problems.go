package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlseg/edgestore"
	"github.com/katalvlaran/lvlseg/graphio"
	"go.uber.org/zap"
)

// SaveProblem stores p under name, replacing any problem (and its runs)
// previously saved under the same name. Edges keep their input order.
func (d *DB) SaveProblem(ctx context.Context, name string, p *graphio.Problem) error {
	err := d.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM problems WHERE name = ?", name); err != nil {
			return fmt.Errorf("replacing problem %q: %w", name, err)
		}
		res, err := tx.ExecContext(ctx,
			"INSERT INTO problems (name, vertex_count, constant) VALUES (?, ?, ?)",
			name, p.VertexCount, p.Constant)
		if err != nil {
			return fmt.Errorf("inserting problem %q: %w", name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("problem id: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO edges (problem_id, seq, origin, destination, weight) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("preparing edge insert: %w", err)
		}
		defer stmt.Close()
		for i, e := range p.Edges {
			if _, err := stmt.ExecContext(ctx, id, i, e.Origin, e.Destination, e.Weight); err != nil {
				return fmt.Errorf("inserting edge #%d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}
	d.log.Info("problem saved",
		zap.String("name", name),
		zap.Int("vertices", p.VertexCount),
		zap.Int("edges", len(p.Edges)))

	return nil
}

// LoadProblem returns the problem stored under name with edges in input order.
func (d *DB) LoadProblem(ctx context.Context, name string) (*graphio.Problem, error) {
	var (
		id int64
		p  graphio.Problem
	)
	err := d.conn.QueryRowContext(ctx,
		"SELECT id, vertex_count, constant FROM problems WHERE name = ?", name).
		Scan(&id, &p.VertexCount, &p.Constant)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrProblemNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading problem %q: %w", name, err)
	}

	rows, err := d.conn.QueryContext(ctx,
		"SELECT origin, destination, weight FROM edges WHERE problem_id = ? ORDER BY seq", id)
	if err != nil {
		return nil, fmt.Errorf("loading edges of %q: %w", name, err)
	}
	defer rows.Close()

	p.Edges = make([]edgestore.Edge, 0)
	for rows.Next() {
		var e edgestore.Edge
		if err := rows.Scan(&e.Origin, &e.Destination, &e.Weight); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		p.Edges = append(p.Edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating edges: %w", err)
	}

	return &p, nil
}

// ListProblems returns the stored problem names in alphabetical order.
func (d *DB) ListProblems(ctx context.Context) ([]string, error) {
	rows, err := d.conn.QueryContext(ctx, "SELECT name FROM problems ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing problems: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scanning problem name: %w", err)
		}
		names = append(names, n)
	}

	return names, rows.Err()
}
