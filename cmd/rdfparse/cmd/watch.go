package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdfparse/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Parse a file again each time it changes",
	Long: `Parse a file once, then again every time it is saved, until interrupted.
Each run reuses the same configuration. Parse errors are reported and
watching continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchFile(ctx, cmd, args[0])
}

func watchFile(ctx context.Context, cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); err != nil {
		return describe(err)
	}
	cfg, err := sourceConfig(path)
	if err != nil {
		return describe(err)
	}
	sink, err := openSink(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer sink.close()

	d := newDispatcher()
	errOut := cmd.ErrOrStderr()

	// Runs are serialized so output from two saves never interleaves.
	var mu sync.Mutex
	run := func() {
		mu.Lock()
		defer mu.Unlock()
		outcome, err := parseOnce(d, sink.bind(cfg))
		if err == nil {
			err = sink.flush()
		}
		if err != nil {
			fmt.Fprintf(errOut, "parse %s: %v\n", path, err)
			return
		}
		fmt.Fprintf(errOut, "parsed %d statements from %s (%s)\n", sink.count, outcome.Source, outcome.Duration())
	}

	w, err := watch.New()
	if err != nil {
		return err
	}
	defer w.Stop()
	if err := w.Watch(path, func(string) { run() }); err != nil {
		return err
	}

	run()
	<-ctx.Done()
	return nil
}
