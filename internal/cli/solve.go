package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bbtsp/builder"
	"github.com/katalvlaran/bbtsp/core"
	"github.com/katalvlaran/bbtsp/tsp"
	"github.com/katalvlaran/bbtsp/tsplib"
)

var errNoInstance = errors.New("no instance: pass a .tsp file or --random N")

func newSolveCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file.tsp]",
		Short: "Solve a TSPLIB instance, or a random Euclidean one with --random",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newSolveRun(ctx, input),
	}
	f := cmd.Flags()
	f.StringVarP(&input.policy, "policy", "p", tsp.BestFS.String(), "queue policy: BestFS or DFS")
	f.IntVarP(&input.workers, "workers", "w", runtime.NumCPU(), "number of concurrent workers")
	f.IntVar(&input.root, "root", 0, "1-tree target node (default: smallest node ID)")
	f.BoolVar(&input.dropDeficient, "drop-deficient", false, "drop nodes with fewer than two edges instead of failing")
	f.BoolVar(&input.strictQuiesce, "strict-quiescence", true, "count in-flight subproblems when deciding the search is over")
	f.DurationVar(&input.shutdownTimeout, "shutdown-timeout", tsp.DefaultShutdownTimeout, "wait for workers after completion")
	f.IntVarP(&input.random, "random", "n", 0, "solve a random Euclidean instance with N nodes")
	f.Int64Var(&input.seed, "seed", 1, "seed for random instances")
	f.StringVarP(&input.tourOut, "tour-out", "o", "", "write the best tour to this file in TSPLIB TOUR format")
	f.BoolVar(&input.crossCheck, "cross-check", false, "re-check the tour cost and compare with the exact DP on small instances")

	return cmd
}

func newSolveRun(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := input.applyConfig(cmd.Flags()); err != nil {
			return err
		}
		log, err := input.newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		name, g, err := input.loadGraph(args)
		if err != nil {
			return err
		}
		policy, err := tsp.ParsePolicy(input.policy)
		if err != nil {
			return err
		}

		opts := []tsp.Option{
			tsp.WithPolicy(policy),
			tsp.WithWorkers(input.workers),
			tsp.WithDropDeficient(input.dropDeficient),
			tsp.WithStrictQuiescence(input.strictQuiesce),
			tsp.WithShutdownTimeout(input.shutdownTimeout),
			tsp.WithLogger(log.WithField("instance", name)),
		}
		if input.hasRoot {
			opts = append(opts, tsp.WithRoot(input.root))
		}
		eng, err := tsp.NewEngine(g, opts...)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"instance": name,
			"nodes":    len(g.Nodes()),
			"workers":  input.workers,
		}).Debug("solving")

		sol, solveErr := eng.Solve(ctx)
		if sol == nil {
			return solveErr
		}
		if solveErr != nil {
			log.WithError(solveErr).Warn("search stopped before completion")
		}

		out := cmd.OutOrStdout()
		order := report(out, name, len(g.Nodes()), sol)
		if input.crossCheck && order != nil {
			if err = crossCheck(out, log, g, order, sol); err != nil {
				return err
			}
		}
		if input.tourOut != "" {
			if err = writeTour(input.tourOut, name, order); err != nil {
				return err
			}
			log.WithField("file", input.tourOut).Info("tour written")
		}

		return solveErr
	}
}

func (i *Input) loadGraph(args []string) (string, *core.Graph, error) {
	switch {
	case len(args) == 1:
		p, err := tsplib.ReadFile(args[0])
		if err != nil {
			return "", nil, err
		}
		g, err := p.Graph()
		if err != nil {
			return "", nil, err
		}
		name := p.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}
		return name, g, nil
	case i.random > 0:
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(i.seed)},
			builder.EuclideanPoints(i.random))
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("random%d", i.random), g, nil
	default:
		return "", nil, errNoInstance
	}
}

// report prints the outcome and returns the tour order, nil when none.
func report(w io.Writer, name string, nodes int, sol *tsp.Solution) []int {
	fmt.Fprintf(w, "instance: %s (%d nodes)\n", name, nodes)
	fmt.Fprintf(w, "state: %s\n", sol.State())
	fmt.Fprintln(w, sol.String())

	var order []int
	if path, err := sol.Path(); err == nil {
		order = tsp.TourOrder(path)
		fmt.Fprintf(w, "tour: %v\n", order)
	}
	fmt.Fprint(w, sol.Statistics())
	fmt.Fprintf(w, "elapsed: %s\n", sol.Elapsed())

	return order
}

func crossCheck(w io.Writer, log logrus.FieldLogger, g *core.Graph, order []int, sol *tsp.Solution) error {
	if len(order)-1 != len(g.Nodes()) {
		log.Warn("cross-check skipped: tour does not cover the input graph")
		return nil
	}
	cost, err := tsp.ValidateTour(g, order)
	if err != nil {
		return errors.Wrap(err, "cross-check")
	}
	if int(cost) != sol.Cost() {
		return errors.Errorf("cross-check: tour weighs %g, solver reported %d", cost, sol.Cost())
	}
	if len(order)-1 > tsp.MaxExactNodes || sol.State() != tsp.Resolved {
		fmt.Fprintln(w, "cross-check: tour valid")
		return nil
	}
	exact, err := tsp.Exact(g)
	if err != nil {
		return errors.Wrap(err, "cross-check")
	}
	if int(exact.Cost) != sol.Cost() {
		return errors.Errorf("cross-check: exact optimum %g, solver reported %d", exact.Cost, sol.Cost())
	}
	fmt.Fprintln(w, "cross-check: tour valid, matches exact optimum")

	return nil
}

func writeTour(path, name string, order []int) error {
	if order == nil {
		return errors.New("no tour to write")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "tour output")
	}
	if err = tsplib.WriteTour(f, name+".tour", order); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
