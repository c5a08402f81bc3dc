package spinner

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Option configures a Spinner at construction time.
type Option func(*Spinner) error

// WithInterval sets the delay between two frames.
func WithInterval(d time.Duration) Option {
	return func(s *Spinner) error {
		if d <= 0 {
			return fmt.Errorf("interval %s: %w", d, ErrInvalidInterval)
		}
		s.interval = d
		return nil
	}
}

// WithGlyphs replaces the default "| / - \" rotation.
func WithGlyphs(glyphs ...string) Option {
	return func(s *Spinner) error {
		if len(glyphs) == 0 {
			return ErrNoGlyphs
		}
		s.glyphs = slices.Clone(glyphs)
		return nil
	}
}

// WithTerminal makes the spinner render through t instead of Stdout().
func WithTerminal(t *Terminal) Option {
	return func(s *Spinner) error {
		if t != nil {
			s.term = t
		}
		return nil
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Spinner) error {
		if l != nil {
			s.logger = l
		}
		return nil
	}
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

func WithTerminalLogger(l *slog.Logger) TerminalOption {
	return func(t *Terminal) {
		if l != nil {
			t.logger = l
		}
	}
}

// GroupOption configures a Group.
type GroupOption func(*Group)

func WithGroupLogger(l *slog.Logger) GroupOption {
	return func(g *Group) {
		if l != nil {
			g.logger = l
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
