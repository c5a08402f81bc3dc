package spinner

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the delay between two frames of a spinner.
const DefaultInterval = 150 * time.Millisecond

var defaultGlyphs = []string{"|", "/", "-", "\\"}

// DefaultGlyphs returns the rotation used when WithGlyphs is not given.
func DefaultGlyphs() []string {
	return slices.Clone(defaultGlyphs)
}

var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Spinner displays a label behind a rotating glyph on a fixed terminal row
// until Stop is called.
//
// A Spinner is safe for concurrent use. Start and Stop may be called from any
// goroutine, in any order, any number of times.
type Spinner struct {
	glyphs   []string
	label    string
	row      int
	interval time.Duration
	term     *Terminal
	logger   *slog.Logger

	running atomic.Bool

	// mu guards the animation goroutine's lifetime.
	mu    sync.Mutex
	alive bool
	done  chan struct{}
}

// New creates an idle spinner for label on the 1-indexed terminal row.
// The row is not checked against the terminal height.
func New(label string, row int, opts ...Option) (*Spinner, error) {
	if row < 1 {
		return nil, fmt.Errorf("spinner %q on row %d: %w", label, row, ErrInvalidRow)
	}
	s := &Spinner{
		glyphs:   DefaultGlyphs(),
		label:    label,
		row:      row,
		interval: DefaultInterval,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("spinner %q: %w", label, err)
		}
	}
	if s.term == nil {
		s.term = Stdout()
	}
	return s, nil
}

func (s *Spinner) Label() string           { return s.label }
func (s *Spinner) Row() int                { return s.row }
func (s *Spinner) Interval() time.Duration { return s.interval }
func (s *Spinner) Glyphs() []string        { return slices.Clone(s.glyphs) }

// Running reports whether the spinner has been started and not stopped since.
func (s *Spinner) Running() bool {
	return s.running.Load()
}

// Start begins the animation in a background goroutine and returns at once.
// Calling Start on a running spinner does nothing. A stopped spinner whose
// goroutine has not exited yet is revived instead of getting a second one.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running.Store(true)
	if s.alive {
		return
	}
	s.alive = true
	s.done = make(chan struct{})
	go s.animate(s.done)
}

// Stop asks the animation to end and returns without waiting for it. The
// goroutine notices before its next frame; use Wait or Done to block on it.
func (s *Spinner) Stop() {
	s.running.Store(false)
}

// Done returns a channel closed once the current animation goroutine has
// written its trailing blank line and exited. For a spinner that was never
// started the channel is already closed.
func (s *Spinner) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return closedDone
	}
	return s.done
}

func (s *Spinner) Wait() {
	<-s.Done()
}

func (s *Spinner) animate(done chan struct{}) {
	defer close(done)
	s.logger.Debug("spinner started", "label", s.label, "row", s.row)

	for i := 0; ; i = (i + 1) % len(s.glyphs) {
		if !s.running.Load() && s.retire() {
			return
		}
		s.term.Frame(s.row, s.glyphs[i], s.label)
		time.Sleep(s.interval)
	}
}

// retire writes the trailing blank line and marks the goroutine gone, unless
// Start flipped the flag back on since it was last read.
func (s *Spinner) retire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return false
	}
	s.term.Newline()
	s.alive = false
	s.logger.Debug("spinner stopped", "label", s.label, "row", s.row)
	return true
}
