package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/lvlseg/graphio"
	"github.com/katalvlaran/lvlseg/gridgraph"
	"github.com/katalvlaran/lvlseg/segment"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errGridConstant is returned for grid input without --constant, since a
// grid file carries no constant of its own.
var errGridConstant = errors.New("grid input requires --constant")

// readProblem decodes the problem in path, or stdin when path is empty or "-".
func (a *app) readProblem(cmd *cobra.Command, path string) (*graphio.Problem, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	format := graphio.Format(a.cfg.InputFormat)
	if format != graphio.FormatGrid {
		return graphio.Read(r, format)
	}

	rows, err := graphio.ReadGrid(r)
	if err != nil {
		return nil, err
	}
	if a.cfg.Constant == nil {
		return nil, errGridConstant
	}
	opts := gridgraph.DefaultGridOptions()
	if a.cfg.Conn == 8 {
		opts.Conn = gridgraph.Conn8
	}
	opts.BaseWeight = a.cfg.BaseWeight
	gg, err := gridgraph.NewGridGraph(rows, opts)
	if err != nil {
		return nil, err
	}
	a.log.Debug("grid decoded", zap.Int("width", gg.Width), zap.Int("height", gg.Height))

	return &graphio.Problem{
		VertexCount: gg.VertexCount(),
		Constant:    *a.cfg.Constant,
		Edges:       gg.Edges(),
	}, nil
}

// segmentProblem runs the engine on p, honouring the constant override.
func (a *app) segmentProblem(p *graphio.Problem) (*segment.Result, error) {
	s, err := p.Store()
	if err != nil {
		return nil, err
	}
	c := p.Constant
	if a.cfg.Constant != nil {
		c = *a.cfg.Constant
	}

	strategy := a.cfg.SegmentStrategy()
	start := time.Now()
	res, err := segment.Segment(s,
		segment.WithConstant(c),
		segment.WithStrategy(strategy),
		segment.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.metrics.ObserveRun(strategy, s.Len(), res, time.Since(start))

	return res, nil
}

// writeResult writes res to --output, or the command's stdout.
func (a *app) writeResult(cmd *cobra.Command, res *segment.Result) error {
	format := graphio.Format(a.cfg.OutputFormat)
	if a.cfg.Output == "" {
		return graphio.Write(cmd.OutOrStdout(), res, format)
	}

	f, err := os.Create(a.cfg.Output)
	if err != nil {
		return err
	}
	if err := graphio.Write(f, res, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", a.cfg.Output, err)
	}
	a.log.Info("result written", zap.String("path", a.cfg.Output), zap.String("format", string(format)))

	return nil
}
