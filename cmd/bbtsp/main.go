package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/bbtsp/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// Ctrl+C cancels the search; the best tour so far is still reported.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := cli.Execute(ctx, version); err != nil {
		os.Exit(1)
	}
}
