package commands

import (
	"github.com/spf13/cobra"
)

func newSegmentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segment [file]",
		Short: "Segment a problem read from a file or stdin",
		Example: `  lvlseg segment graph.txt
  lvlseg segment -i yaml -f json graph.yaml
  lvlseg segment -i grid --conn 8 --constant 300 image.grid`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			p, err := a.readProblem(cmd, path)
			if err != nil {
				return err
			}
			res, err := a.segmentProblem(p)
			if err != nil {
				return err
			}

			return a.writeResult(cmd, res)
		},
	}
	addInputFlags(cmd.Flags())
	addSegmentFlags(cmd.Flags())

	return cmd
}
