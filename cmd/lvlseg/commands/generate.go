package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvlseg/builder"
	"github.com/katalvlaran/lvlseg/graphio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateFlags holds the flags local to generate.
type generateFlags struct {
	n          int
	p          float64
	seed       int64
	minWeight  int64
	maxWeight  int64
	constant   int64
	importName string
}

func newGenerateCmd(a *app) *cobra.Command {
	var gf generateFlags

	cmd := &cobra.Command{
		Use:   "generate <topology>",
		Short: "Generate a problem with a known topology",
		Long: "Generate a problem and write it as text or YAML, or store it with --import.\n" +
			"Topologies: " + strings.Join(builder.Topologies(), ", ") + ".",
		Example: `  lvlseg generate grid -n 16 --max-weight 50 --constant 40 > grid.txt
  lvlseg generate random -n 500 -p 0.02 --seed 7 --import bench`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gf.checkWeights(); err != nil {
				return err
			}
			cons, err := builder.ByName(args[0], gf.n, gf.p)
			if err != nil {
				return err
			}
			n, edges, err := builder.Edges(cons,
				builder.WithSeed(gf.seed),
				builder.WithUniformWeight(gf.minWeight, gf.maxWeight))
			if err != nil {
				return err
			}
			p := &graphio.Problem{VertexCount: n, Constant: gf.constant, Edges: edges}
			a.log.Debug("problem generated",
				zap.String("topology", args[0]),
				zap.Int("vertices", n),
				zap.Int("edges", len(edges)))

			if gf.importName != "" {
				return a.saveProblem(cmd, gf.importName, p)
			}

			return a.writeProblem(cmd, p)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&gf.n, "vertices", "n", 10, "vertex count (grid: side length)")
	fs.Float64VarP(&gf.p, "probability", "p", 0.1, "edge probability for random")
	fs.Int64Var(&gf.seed, "seed", 1, "random seed")
	fs.Int64Var(&gf.minWeight, "min-weight", 1, "smallest edge weight")
	fs.Int64Var(&gf.maxWeight, "max-weight", 1, "largest edge weight")
	fs.Int64Var(&gf.constant, "constant", 0, "confidence constant written with the problem")
	fs.StringVar(&gf.importName, "import", "", "store the problem under this name instead of printing it")
	fs.StringP("format", "f", "text", "problem format: text or yaml")
	fs.StringP("output", "o", "", "output file (default stdout)")

	return cmd
}

// checkWeights rejects a weight range the builder would panic on.
func (gf generateFlags) checkWeights() error {
	if gf.minWeight < 0 || gf.maxWeight < gf.minWeight {
		return fmt.Errorf("weights need 0 ≤ --min-weight ≤ --max-weight, got %d and %d", gf.minWeight, gf.maxWeight)
	}

	return nil
}

// writeProblem writes p to --output, or the command's stdout.
func (a *app) writeProblem(cmd *cobra.Command, p *graphio.Problem) error {
	format := graphio.Format(a.cfg.OutputFormat)
	if a.cfg.Output == "" {
		return graphio.WriteProblem(cmd.OutOrStdout(), p, format)
	}

	f, err := os.Create(a.cfg.Output)
	if err != nil {
		return err
	}
	if err := graphio.WriteProblem(f, p, format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
