package param

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/scadparam/scadparam/internal/cmdtypes"
	"github.com/scadparam/scadparam/internal/cmdutil"
	"github.com/scadparam/scadparam/internal/config"
	"github.com/scadparam/scadparam/internal/output"
	"github.com/scadparam/scadparam/internal/watch"
)

// watchOptions holds the flags for the watch command.
type watchOptions struct {
	debounce time.Duration
}

// NewWatchCmd creates the param watch command.
func NewWatchCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &watchOptions{}

	c := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the parameters of a file every time it changes",
		Long: `Print the parameters of an OpenSCAD file, then print them again every time the
file is saved, together with a summary of what changed. Runs until interrupted.

Output is a table unless an output format is set by flag, environment or config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runWatch(c, cfg, args[0], opts)
		},
	}

	c.Flags().DurationVar(&opts.debounce, "debounce", watch.DefaultDebounce, "Wait this long for writes to settle before reading")

	return c
}

func runWatch(c *cobra.Command, cfg *cmdtypes.GlobalConfig, path string, opts *watchOptions) error {
	if cmdutil.IsStdin(path) {
		return fmt.Errorf("watch needs a file path, not stdin")
	}

	w, err := watch.New(path, watch.WithDebounce(opts.debounce))
	if err != nil {
		return err
	}
	defer w.Close()

	format := output.FormatTable
	if cfg != nil && cfg.Resolved.Output.Source != "" && cfg.Resolved.Output.Source != config.SourceDefault {
		format = cfg.OutputFormat()
	}

	ctx := c.Context()
	out := c.OutOrStdout()
	show := func(snap watch.Snapshot) error {
		return printSnapshot(out, path, snap, format)
	}

	if !output.IsTTY() {
		return w.Run(ctx, show)
	}

	snap, err := w.Current()
	if err != nil {
		return err
	}
	if err := show(snap); err != nil {
		return err
	}

	title := fmt.Sprintf("Watching %s for changes (ctrl+c to stop)", path)
	for {
		var next watch.Snapshot
		err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
			var err error
			next, err = w.Next(ctx)
			return err
		}, output.WithTitle(title))
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := show(next); err != nil {
			return err
		}
	}
}

func printSnapshot(out io.Writer, path string, snap watch.Snapshot, format output.Format) error {
	fileLog := output.FileLogger(path)

	switch {
	case snap.Changes == nil:
		fileLog.Info(fmt.Sprintf("%d parameters", len(snap.Parameters)))
	case snap.Changes.IsEmpty():
		fileLog.Info("source changed, parameters unchanged")
	default:
		fileLog.Info("parameters changed", "summary", snap.Changes.Summary())
		for _, name := range snap.Changes.Added {
			fileLog.Debug("added", "name", name)
		}
		for _, name := range snap.Changes.Removed {
			fileLog.Debug("removed", "name", name)
		}
		for _, name := range snap.Changes.ModifiedNames() {
			fileLog.Debug("modified", "name", name)
		}
	}

	return output.WriteParameters(out, snap.Parameters, format)
}
