package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jwilder/multispin/pkg/spinner"
	"github.com/rodaine/table"
)

type RunArgs struct {
	Tasks []Task
	// FirstRow is the 1-indexed row of the first task; rows below 1 are
	// rejected.
	FirstRow int
	// Interval between frames; zero means spinner.DefaultInterval.
	Interval time.Duration
	// Clear erases the screen first when Output is a terminal.
	Clear   bool
	Summary bool
	Output  io.Writer
	Logger  *slog.Logger
}

// Run shows one spinner per task on consecutive rows starting at FirstRow
// and returns when all of them have stopped.
func Run(ctx context.Context, args RunArgs) error {
	if len(args.Tasks) == 0 {
		return errors.New("at least one task is required")
	}
	if args.Interval == 0 {
		args.Interval = spinner.DefaultInterval
	}
	out := args.Output
	if out == nil {
		out = os.Stdout
	}
	logger := args.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	term := spinner.NewTerminal(out, spinner.WithTerminalLogger(logger))
	group := spinner.NewGroup(spinner.WithGroupLogger(logger))
	for i, task := range args.Tasks {
		s, err := spinner.New(task.Label, args.FirstRow+i,
			spinner.WithTerminal(term),
			spinner.WithInterval(args.Interval),
			spinner.WithLogger(logger),
		)
		if err != nil {
			return fmt.Errorf("failed to create spinner: %w", err)
		}
		group.Add(s, task.StopAfter)
	}

	lastRow := args.FirstRow + len(args.Tasks) - 1
	if h, ok := term.Height(); ok && lastRow > h {
		logger.Warn("spinner rows exceed terminal height", "lastRow", lastRow, "height", h)
	}
	if args.Clear {
		if term.IsTerminal() {
			term.Clear()
		} else {
			logger.Debug("output is not a terminal, not clearing")
		}
	}

	logger.Debug("starting spinners", "count", group.Len(), "firstRow", args.FirstRow)
	err := group.Run(ctx)
	term.MoveBelow(lastRow)
	if err != nil {
		return fmt.Errorf("spinners interrupted: %w", err)
	}

	if args.Summary {
		printSummary(out, group.Results())
	}
	return nil
}

func printSummary(w io.Writer, results []spinner.Result) {
	tbl := table.New("LABEL", "ROW", "STOP_AFTER", "ELAPSED").WithWriter(w)
	for _, r := range results {
		tbl.AddRow(r.Label, r.Row, r.StopAfter, r.Elapsed.Round(time.Millisecond))
	}
	tbl.Print()
}
