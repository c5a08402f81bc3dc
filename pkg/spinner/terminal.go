package spinner

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

type flusher interface {
	Flush() error
}

// Terminal serializes output from any number of spinners onto one writer.
// Every frame is composed up front and handed to the writer in a single
// Write, so frames of different spinners never interleave.
//
// Write and flush failures are dropped; rendering is best effort and must not
// disturb the spinners' timing.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	fd     int
	logger *slog.Logger
}

func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		w:      w,
		fd:     -1,
		logger: discardLogger(),
	}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		t.fd = int(f.Fd())
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var (
	stdoutOnce sync.Once
	stdout     *Terminal
)

// Stdout returns the process-wide terminal on os.Stdout. Spinners built
// without WithTerminal share it.
func Stdout() *Terminal {
	stdoutOnce.Do(func() {
		stdout = NewTerminal(os.Stdout)
	})
	return stdout
}

// Frame draws "\r<glyph> <label>" on row, saving the cursor before the move
// and restoring it afterwards.
func (t *Terminal) Frame(row int, glyph, label string) {
	var b strings.Builder
	b.WriteString(ansi.SaveCursor)
	b.WriteString(ansi.CursorPosition(1, row))
	b.WriteByte('\r')
	b.WriteString(glyph)
	b.WriteByte(' ')
	b.WriteString(label)
	b.WriteString(ansi.RestoreCursor)
	t.write(b.String())
}

// Newline ends the current line and leaves one blank line after it.
func (t *Terminal) Newline() {
	t.write("\n\n")
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() {
	t.write(ansi.EraseDisplay(2) + ansi.CursorPosition(1, 1))
}

// MoveBelow puts the cursor at the start of the line after row.
func (t *Terminal) MoveBelow(row int) {
	t.write(ansi.CursorPosition(1, row+1))
}

func (t *Terminal) IsTerminal() bool {
	return t.fd >= 0 && term.IsTerminal(t.fd)
}

// Height returns the number of rows of the attached terminal. ok is false when
// the writer is not a terminal or its size cannot be read.
func (t *Terminal) Height() (height int, ok bool) {
	if !t.IsTerminal() {
		return 0, false
	}
	_, h, err := term.GetSize(t.fd)
	if err != nil {
		t.logger.Debug("cannot read terminal size", "error", err)
		return 0, false
	}
	return h, true
}

func (t *Terminal) write(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := io.WriteString(t.w, s); err != nil {
		t.logger.Debug("terminal write failed", "error", err)
		return
	}
	if f, ok := t.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			t.logger.Debug("terminal flush failed", "error", err)
		}
	}
}
