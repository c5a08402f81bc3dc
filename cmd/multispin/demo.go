package main

import (
	"github.com/jwilder/multispin/board"
	"github.com/spf13/cobra"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Show four spinners that stop after 10s, 7s, 5s and 2s",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, opts, board.DemoTasks())
		},
	}
	addBoardFlags(demoCmd)
	return demoCmd
}
