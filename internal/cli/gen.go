package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bbtsp/builder"
	"github.com/katalvlaran/bbtsp/tsplib"
)

func newGenCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random Euclidean instance in TSPLIB format",
		Args:  cobra.NoArgs,
		RunE:  newGenRun(input),
	}
	f := cmd.Flags()
	f.IntVarP(&input.genNodes, "nodes", "n", 10, "number of cities")
	f.Int64Var(&input.seed, "seed", 1, "seed for random instances")
	f.StringVar(&input.genName, "name", "", "instance NAME (default: randomN)")
	f.StringVarP(&input.genOut, "out", "o", "", "output file (default: stdout)")
	f.Float64Var(&input.genMax, "max-coord", 1000, "coordinates are drawn from [0, max-coord)")

	return cmd
}

func newGenRun(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := input.applyConfig(cmd.Flags()); err != nil {
			return err
		}
		if !(input.genMax > 0) {
			return errors.Errorf("max-coord must be positive, got %g", input.genMax)
		}
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{
				builder.WithSeed(input.seed),
				builder.WithCoordRange(0, input.genMax),
			},
			builder.EuclideanPoints(input.genNodes))
		if err != nil {
			return err
		}
		name := input.genName
		if name == "" {
			name = fmt.Sprintf("random%d", input.genNodes)
		}
		p, err := tsplib.FromGraph(name, g)
		if err != nil {
			return err
		}
		p.Comment = fmt.Sprintf("random Euclidean instance, seed %d", input.seed)

		if input.genOut == "" {
			return tsplib.Write(cmd.OutOrStdout(), p)
		}

		return writeProblem(input.genOut, p)
	}
}

func writeProblem(path string, p *tsplib.Problem) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "gen output")
	}
	if err = tsplib.Write(f, p); err != nil {
		f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "gen output")
}
