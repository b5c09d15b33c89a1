package statistics

import (
	"context"
	"sync"
)

// Task is one statistics load started for one screen activation. It moves from
// Loading to exactly one terminal state and never back.
type Task struct {
	mu     sync.Mutex
	state  State
	done   chan struct{}
	cancel context.CancelFunc
}

func newTask(teamID int, cancel context.CancelFunc) *Task {
	return &Task{
		state:  loading(teamID),
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// completedTask is a task that failed before any upstream call was made.
func completedTask(s State) *Task {
	t := newTask(s.TeamID, func() {})
	t.finish(s)
	return t
}

// State returns the current snapshot.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Done is closed once the task reaches a terminal state.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel abandons the upstream request. A task that is still loading then fails.
func (t *Task) Cancel() {
	t.cancel()
}

// Wait blocks until the task finishes or ctx ends. When ctx ends first the
// upstream request is cancelled and ctx.Err() is returned with the Loading state.
func (t *Task) Wait(ctx context.Context) (State, error) {
	select {
	case <-t.done:
		return t.State(), nil
	case <-ctx.Done():
		t.cancel()
		return t.State(), ctx.Err()
	}
}

// finish stores s if the task is still loading; later calls are ignored.
func (t *Task) finish(s State) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Terminal() {
		return false
	}
	t.state = s
	close(t.done)
	return true
}
