package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvlseg/component"
	"github.com/katalvlaran/lvlseg/segment"
	"go.uber.org/zap"
)

// RunInfo summarizes a stored run.
type RunInfo struct {
	ID         int64
	UUID       string // stable across databases
	Problem    string
	Constant   int64
	Strategy   string
	Merges     int
	Components int
	CreatedAt  string
}

// Run is a stored run with its full result.
type Run struct {
	RunInfo
	Result *segment.Result
}

// SaveRun records res as a run of the named problem and returns the run id.
func (d *DB) SaveRun(ctx context.Context, problem string, strategy segment.Strategy, res *segment.Result) (int64, error) {
	var runID int64
	runUUID := uuid.NewString()
	err := d.inTx(ctx, func(tx *sql.Tx) error {
		pid, err := problemID(ctx, tx, problem)
		if err != nil {
			return err
		}
		r, err := tx.ExecContext(ctx,
			"INSERT INTO runs (uuid, problem_id, constant, strategy, merges) VALUES (?, ?, ?, ?, ?)",
			runUUID, pid, res.Constant, strategy.String(), res.Merges)
		if err != nil {
			return fmt.Errorf("inserting run: %w", err)
		}
		if runID, err = r.LastInsertId(); err != nil {
			return fmt.Errorf("run id: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_members (run_id, component, position, vertex, attach_weight, confidence)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing member insert: %w", err)
		}
		defer stmt.Close()
		for ci, c := range res.Components {
			for pos, m := range c.Members {
				if _, err := stmt.ExecContext(ctx, runID, ci, pos, m.Vertex, m.AttachWeight, c.Confidence); err != nil {
					return fmt.Errorf("inserting member %d of component %d: %w", pos, ci, err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	d.log.Info("run saved",
		zap.String("problem", problem),
		zap.Int64("run", runID),
		zap.String("uuid", runUUID),
		zap.Int("components", res.Len()))

	return runID, nil
}

// ListRuns returns the runs of the named problem, oldest first.
func (d *DB) ListRuns(ctx context.Context, problem string) ([]RunInfo, error) {
	pid, err := problemID(ctx, d.conn, problem)
	if err != nil {
		return nil, err
	}
	rows, err := d.conn.QueryContext(ctx, `
		SELECT r.id, r.uuid, r.constant, r.strategy, r.merges, r.created_at,
		       (SELECT COUNT(DISTINCT component) FROM run_members m WHERE m.run_id = r.id)
		FROM runs r WHERE r.problem_id = ? ORDER BY r.id`, pid)
	if err != nil {
		return nil, fmt.Errorf("listing runs of %q: %w", problem, err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		info := RunInfo{Problem: problem}
		if err := rows.Scan(&info.ID, &info.UUID, &info.Constant, &info.Strategy, &info.Merges, &info.CreatedAt, &info.Components); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		out = append(out, info)
	}

	return out, rows.Err()
}

// LoadRun returns the run with the given id and its reconstructed result.
func (d *DB) LoadRun(ctx context.Context, id int64) (*Run, error) {
	run := &Run{RunInfo: RunInfo{ID: id}}
	var vertexCount int
	err := d.conn.QueryRowContext(ctx, `
		SELECT r.uuid, p.name, p.vertex_count, r.constant, r.strategy, r.merges, r.created_at
		FROM runs r JOIN problems p ON p.id = r.problem_id WHERE r.id = ?`, id).
		Scan(&run.UUID, &run.Problem, &vertexCount, &run.Constant, &run.Strategy, &run.Merges, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading run %d: %w", id, err)
	}

	rows, err := d.conn.QueryContext(ctx, `
		SELECT component, vertex, attach_weight, confidence
		FROM run_members WHERE run_id = ? ORDER BY component, position`, id)
	if err != nil {
		return nil, fmt.Errorf("loading members of run %d: %w", id, err)
	}
	defer rows.Close()

	res := &segment.Result{
		VertexCount: vertexCount,
		Constant:    run.Constant,
		Merges:      run.Merges,
		Components:  make([]segment.Component, 0),
	}
	for rows.Next() {
		var (
			ci, conf int64
			m        component.Member
		)
		if err := rows.Scan(&ci, &m.Vertex, &m.AttachWeight, &conf); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		for int64(len(res.Components)) <= ci {
			res.Components = append(res.Components, segment.Component{Members: make([]component.Member, 0)})
		}
		res.Components[ci].Members = append(res.Components[ci].Members, m)
		res.Components[ci].Confidence = conf
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}
	run.Components = res.Len()
	run.Result = res

	return run, nil
}
