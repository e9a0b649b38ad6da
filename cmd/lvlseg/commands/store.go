package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/lvlseg/graphio"
	"github.com/katalvlaran/lvlseg/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// withDB opens the configured database for the duration of fn.
func (a *app) withDB(cmd *cobra.Command, fn func(*store.DB) error) error {
	db, err := store.Open(cmd.Context(), a.cfg.DBPath, a.log)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(db)
}

// saveProblem validates p and stores it under name.
func (a *app) saveProblem(cmd *cobra.Command, name string, p *graphio.Problem) error {
	if _, err := p.Store(); err != nil {
		return err
	}

	return a.withDB(cmd, func(db *store.DB) error {
		err := db.SaveProblem(cmd.Context(), name, p)
		a.metrics.ObserveDB("save_problem", err)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %s: %d vertices, %d edges\n",
			name, p.VertexCount, len(p.Edges))
		return err
	})
}

func newImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <name> [file]",
		Short: "Store a problem in the database under a name",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 2 {
				path = args[1]
			}
			p, err := a.readProblem(cmd, path)
			if err != nil {
				return err
			}
			if a.cfg.Constant != nil {
				p.Constant = *a.cfg.Constant
			}

			return a.saveProblem(cmd, args[0], p)
		},
	}
	addInputFlags(cmd.Flags())
	cmd.Flags().Int64("constant", 0, "confidence constant stored with the problem (required for grid input)")

	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Segment a stored problem and record the run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(cmd, func(db *store.DB) error {
				p, err := db.LoadProblem(cmd.Context(), args[0])
				a.metrics.ObserveDB("load_problem", err)
				if err != nil {
					return err
				}
				res, err := a.segmentProblem(p)
				if err != nil {
					return err
				}
				id, err := db.SaveRun(cmd.Context(), args[0], a.cfg.SegmentStrategy(), res)
				a.metrics.ObserveDB("save_run", err)
				if err != nil {
					return err
				}
				a.log.Info("run recorded", zap.String("problem", args[0]), zap.Int64("run", id))

				return a.writeResult(cmd, res)
			})
		},
	}
	addSegmentFlags(cmd.Flags())

	return cmd
}

func newRunsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "runs <name>",
		Short: "List the recorded runs of a stored problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(cmd, func(db *store.DB) error {
				runs, err := db.ListRuns(cmd.Context(), args[0])
				a.metrics.ObserveDB("list_runs", err)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tCONSTANT\tSTRATEGY\tMERGES\tCOMPONENTS\tCREATED\tUUID")
				for _, r := range runs {
					fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%s\t%s\n",
						r.ID, r.Constant, r.Strategy, r.Merges, r.Components, r.CreatedAt, r.UUID)
				}

				return tw.Flush()
			})
		},
	}
}
