package board

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTask = errors.New("invalid task")

// Task is one spinner of a board: its label and how long it spins.
type Task struct {
	Label     string
	StopAfter time.Duration
}

// ParseTask reads a "label=duration" pair such as "Downloading...=10s".
// The duration follows the last '=' so labels may contain '=' themselves.
func ParseTask(s string) (Task, error) {
	i := strings.LastIndex(s, "=")
	if i < 0 {
		return Task{}, fmt.Errorf("%w %q: expected label=duration", ErrInvalidTask, s)
	}
	label := strings.TrimSpace(s[:i])
	if label == "" {
		return Task{}, fmt.Errorf("%w %q: empty label", ErrInvalidTask, s)
	}
	d, err := time.ParseDuration(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return Task{}, fmt.Errorf("%w %q: %v", ErrInvalidTask, s, err)
	}
	if d <= 0 {
		return Task{}, fmt.Errorf("%w %q: duration must be positive", ErrInvalidTask, s)
	}
	return Task{Label: label, StopAfter: d}, nil
}

func ParseTasks(specs []string) ([]Task, error) {
	tasks := make([]Task, 0, len(specs))
	for _, s := range specs {
		t, err := ParseTask(s)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// DemoTasks returns four spinners that finish in reverse order.
func DemoTasks() []Task {
	return []Task{
		{Label: "Downloading...", StopAfter: 10 * time.Second},
		{Label: "Executing...", StopAfter: 7 * time.Second},
		{Label: "Closing...", StopAfter: 5 * time.Second},
		{Label: "Fetching...", StopAfter: 2 * time.Second},
	}
}
