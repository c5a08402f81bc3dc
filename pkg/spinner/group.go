package spinner

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Group runs a set of spinners that each stop on their own schedule.
type Group struct {
	logger *slog.Logger

	mu      sync.Mutex
	members []*member
}

type member struct {
	spinner   *Spinner
	stopAfter time.Duration
	elapsed   time.Duration
}

// Result describes how one spinner of a Group ran.
type Result struct {
	Label     string
	Row       int
	StopAfter time.Duration
	Elapsed   time.Duration
}

func NewGroup(opts ...GroupOption) *Group {
	g := &Group{logger: discardLogger()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Add registers s to be stopped stopAfter after the group starts. A
// non-positive stopAfter keeps s spinning until the Run context is done.
// Add must not be called while Run is in progress.
func (g *Group) Add(s *Spinner, stopAfter time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members = append(g.members, &member{spinner: s, stopAfter: stopAfter})
}

func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.members)
}

// Run starts every spinner, stops each one when its delay elapses or ctx is
// done, and returns once every spinner's goroutine and every timer has
// finished. The error is ctx.Err() when ctx ended the run early.
func (g *Group) Run(ctx context.Context) error {
	g.mu.Lock()
	members := make([]*member, len(g.members))
	copy(members, g.members)
	g.mu.Unlock()

	start := time.Now()
	for _, m := range members {
		m.spinner.Start()
	}

	var wg sync.WaitGroup
	for _, m := range members {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !sleepCtx(ctx, m.stopAfter) {
				g.logger.Debug("spinner cancelled", "label", m.spinner.Label(), "error", ctx.Err())
			}
			m.spinner.Stop()
			m.spinner.Wait()

			g.mu.Lock()
			m.elapsed = time.Since(start)
			g.mu.Unlock()
		}()
	}
	wg.Wait()

	return ctx.Err()
}

// Results reports every member in the order it was added. Elapsed is zero for
// members that have not completed a Run.
func (g *Group) Results() []Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	results := make([]Result, 0, len(g.members))
	for _, m := range g.members {
		results = append(results, Result{
			Label:     m.spinner.Label(),
			Row:       m.spinner.Row(),
			StopAfter: m.stopAfter,
			Elapsed:   m.elapsed,
		})
	}
	return results
}

// sleepCtx waits for d, or for ctx when d is not positive. It returns false
// if ctx ended the wait.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		<-ctx.Done()
		return false
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
