package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlseg/edgestore"
)

// Constructor produces a vertex count and an edge list under cfg.
type Constructor func(cfg builderConfig) (vertexCount int, edges []edgestore.Edge, err error)

// Build runs cons with opts and validates the result into a store.
func Build(cons Constructor, opts ...Option) (*edgestore.Store, error) {
	n, edges, err := Edges(cons, opts...)
	if err != nil {
		return nil, err
	}

	return edgestore.New(n, edges)
}

// Edges runs cons with opts and returns the raw vertex count and edges.
func Edges(cons Constructor, opts ...Option) (int, []edgestore.Edge, error) {
	return cons(newBuilderConfig(opts...))
}

// ByName resolves a topology name. n is the vertex count, or the side of the
// square for "grid"; p is used by "random" only.
func ByName(name string, n int, p float64) (Constructor, error) {
	switch name {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "complete":
		return Complete(n), nil
	case "grid":
		return Grid(n, n), nil
	case "random":
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
}

// Topologies lists the names accepted by ByName.
func Topologies() []string {
	return []string{"path", "cycle", "star", "complete", "grid", "random"}
}

// Path links i and i+1 for i in 0..n-2. Requires n ≥ 1.
func Path(n int) Constructor {
	return func(cfg builderConfig) (int, []edgestore.Edge, error) {
		if n < 1 {
			return 0, nil, fmt.Errorf("Path: n=%d (must be ≥ 1): %w", n, ErrTooFewVertices)
		}
		edges := make([]edgestore.Edge, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, edgestore.NewEdge(i, i+1, cfg.weightFn(cfg.rng)))
		}

		return n, edges, nil
	}
}

// Cycle is Path plus the closing edge n-1 → 0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (int, []edgestore.Edge, error) {
		if n < 3 {
			return 0, nil, fmt.Errorf("Cycle: n=%d (must be ≥ 3): %w", n, ErrTooFewVertices)
		}
		_, edges, err := Path(n)(cfg)
		if err != nil {
			return 0, nil, err
		}
		edges = append(edges, edgestore.NewEdge(n-1, 0, cfg.weightFn(cfg.rng)))

		return n, edges, nil
	}
}

// Star links the hub 0 to every leaf 1..n-1 in ascending order. Requires n ≥ 2.
func Star(n int) Constructor {
	return func(cfg builderConfig) (int, []edgestore.Edge, error) {
		if n < 2 {
			return 0, nil, fmt.Errorf("Star: n=%d (must be ≥ 2): %w", n, ErrTooFewVertices)
		}
		edges := make([]edgestore.Edge, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			edges = append(edges, edgestore.NewEdge(0, leaf, cfg.weightFn(cfg.rng)))
		}

		return n, edges, nil
	}
}

// Complete links every unordered pair {i,j}, i<j, with i then j ascending.
// Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (int, []edgestore.Edge, error) {
		if n < 1 {
			return 0, nil, fmt.Errorf("Complete: n=%d (must be ≥ 1): %w", n, ErrTooFewVertices)
		}
		edges := make([]edgestore.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, edgestore.NewEdge(i, j, cfg.weightFn(cfg.rng)))
			}
		}

		return n, edges, nil
	}
}

// Grid builds a rows×cols orthogonal lattice. Vertex r*cols+c is cell (r,c);
// for each cell in row-major order the right then bottom neighbour is linked.
// Requires rows, cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (int, []edgestore.Edge, error) {
		if rows < 1 || cols < 1 {
			return 0, nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w",
				rows, cols, ErrTooFewVertices)
		}
		edges := make([]edgestore.Edge, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					edges = append(edges, edgestore.NewEdge(u, u+1, cfg.weightFn(cfg.rng)))
				}
				if r+1 < rows {
					edges = append(edges, edgestore.NewEdge(u, u+cols, cfg.weightFn(cfg.rng)))
				}
			}
		}

		return rows * cols, edges, nil
	}
}

// RandomSparse includes each unordered pair {i,j}, i<j, independently with
// probability p, trying pairs with i then j ascending. Requires n ≥ 1 and
// 0 ≤ p ≤ 1; an RNG is required when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (int, []edgestore.Edge, error) {
		if n < 1 {
			return 0, nil, fmt.Errorf("RandomSparse: n=%d (must be ≥ 1): %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return 0, nil, fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return 0, nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		var edges []edgestore.Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				edges = append(edges, edgestore.NewEdge(i, j, cfg.weightFn(cfg.rng)))
			}
		}

		return n, edges, nil
	}
}
