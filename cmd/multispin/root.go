package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jwilder/multispin/pkg/spinner"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	interval time.Duration
	debug    bool
	logger   *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		interval: spinner.DefaultInterval,
		logger:   slog.New(slog.DiscardHandler),
	}
	// Set defaults from env if present
	if v := os.Getenv("MULTISPIN_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.interval = d
		}
	}
	if v := os.Getenv("MULTISPIN_DEBUG"); v != "" {
		opts.debug, _ = strconv.ParseBool(v)
	}

	rootCmd := &cobra.Command{
		Use:               "multispin",
		Short:             "Animated spinners on fixed terminal rows",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", opts.interval)
			}
			opts.logger = newLogger(opts.debug)
			return nil
		},
	}
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().DurationVar(&opts.interval, "interval", opts.interval, "Delay between spinner frames (or set MULTISPIN_INTERVAL)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", opts.debug, "Log debug output to stderr (or set MULTISPIN_DEBUG)")

	rootCmd.AddCommand(newDemoCmd(opts), newRunCmd(opts))
	return rootCmd
}

// newLogger writes to stderr so log lines do not land on the spinner rows
// when stdout is redirected.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().Int("first-row", 1, "Terminal row of the first spinner (1-indexed)")
	cmd.Flags().Bool("clear", true, "Clear the screen before drawing when stdout is a terminal")
	cmd.Flags().Bool("summary", false, "Print a summary table once every spinner has stopped")
}
