package main

import (
	"fmt"

	"github.com/jwilder/multispin/board"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Show one spinner per --task, each stopping after its own duration",
		Example: `  multispin run --task "Downloading...=10s" --task "Fetching...=2s"
  multispin run --first-row 3 --summary --task "Building=5s"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, _ := cmd.Flags().GetStringArray("task")
			if len(specs) == 0 {
				return fmt.Errorf("at least one --task is required")
			}
			tasks, err := board.ParseTasks(specs)
			if err != nil {
				return err
			}
			return runBoard(cmd, opts, tasks)
		},
	}
	runCmd.Flags().StringArray("task", nil, "Spinner as label=duration, e.g. \"Downloading...=10s\" (repeatable)")
	addBoardFlags(runCmd)
	return runCmd
}

func runBoard(cmd *cobra.Command, opts *rootOptions, tasks []board.Task) error {
	firstRow, _ := cmd.Flags().GetInt("first-row")
	clearScreen, _ := cmd.Flags().GetBool("clear")
	summary, _ := cmd.Flags().GetBool("summary")

	if err := board.Run(cmd.Context(), board.RunArgs{
		Tasks:    tasks,
		FirstRow: firstRow,
		Interval: opts.interval,
		Clear:    clearScreen,
		Summary:  summary,
		Output:   cmd.OutOrStdout(),
		Logger:   opts.logger,
	}); err != nil {
		return fmt.Errorf("failed to run spinners: %w", err)
	}
	return nil
}
