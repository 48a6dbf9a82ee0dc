package shell

import "sync"

// Command is an externally injected action, applied at the next frame
// boundary so the single-writer frame discipline holds.
type Command struct {
	Action Action
	Arg    string
}

// ControlQueue buffers commands arriving from outside the frame loop (the
// control socket, the interactive driver). Only the frame loop drains it.
type ControlQueue struct {
	mu      sync.Mutex
	pending []Command
}

// NewControlQueue creates an empty queue.
func NewControlQueue() *ControlQueue {
	return &ControlQueue{}
}

// Push appends a command. Safe to call from any goroutine.
func (q *ControlQueue) Push(cmd Command) {
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// Drain removes and returns all pending commands in arrival order.
func (q *ControlQueue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	cmds := q.pending
	q.pending = nil
	return cmds
}
