// Package cli wires the bbtsp command line: flag parsing, the optional YAML
// config file, logging setup and the solve/gen subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) error {
	return createRootCommand(ctx, &Input{}, version).Execute()
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bbtsp",
		Short:        "Solve the travelling salesman problem exactly with branch-and-bound.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&input.configFile, "config", "c", "", "YAML file with solver defaults; flags override it")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&input.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newSolveCommand(ctx, input),
		newGenCommand(input),
		newVersionCommand(version),
	)

	return rootCmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bbtsp version %s\n", version)
		},
	}
}

// newLogger builds a per-run logger writing to w.
func (i *Input) newLogger(w io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)
	switch strings.ToLower(i.logFormat) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q", i.logFormat)
	}
	if i.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log, nil
}
