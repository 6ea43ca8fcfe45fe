package core

import "sync"

// Action represents a semantic input, abstracted from physical key presses.
// The simulation only ever sees ActionActivate; the rest are consumed by the
// platform layer.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, W, Enter - start/restart or flap depending on state
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionScores          // Tab - open the scoreboard
	ActionBack            // B, Escape - leave the scoreboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionQuit:
		return "Quit"
	case ActionScores:
		return "Scores"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputQueue buffers actions that arrive between ticks.
// Push is safe from any goroutine; Drain belongs to the simulation and is
// called once at the start of each tick.
type InputQueue struct {
	mu      sync.Mutex
	pending []Action
}

// NewInputQueue creates an empty input queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{pending: make([]Action, 0, 4)}
}

// Push appends an action. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, a)
	q.mu.Unlock()
}

// Drain returns all pending actions in arrival order and empties the queue.
func (q *InputQueue) Drain() []Action {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Action, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
