package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/consoletris/consoletris/internal/engine"
)

const maxQueuedKeys = 4

func commandForKey(msg tea.KeyMsg) (engine.Command, bool) {
	switch msg.String() {
	case "left", "h":
		return engine.MoveLeft, true
	case "right", "l":
		return engine.MoveRight, true
	case "down", "j":
		return engine.SoftDrop, true
	case "up", "k", "x":
		return engine.Rotate, true
	case " ":
		return engine.HardDrop, true
	case "esc", "q", "ctrl+c":
		return engine.Quit, true
	default:
		return engine.NoOp, false
	}
}

// keyQueue buffers terminal key presses between frames. The loop drains at
// most one per frame; presses beyond maxQueuedKeys are dropped so a held key
// cannot build a backlog.
type keyQueue struct {
	pending []engine.Command
	polled  engine.Command
}

func (q *keyQueue) Push(cmd engine.Command) bool {
	if len(q.pending) >= maxQueuedKeys {
		return false
	}
	q.pending = append(q.pending, cmd)
	return true
}

func (q *keyQueue) Poll() (engine.Command, bool) {
	if len(q.pending) == 0 {
		q.polled = engine.NoOp
		return engine.NoOp, false
	}
	cmd := q.pending[0]
	q.pending = q.pending[1:]
	q.polled = cmd
	return cmd, true
}

// LastPolled is the command handed out by the most recent Poll.
func (q *keyQueue) LastPolled() engine.Command { return q.polled }

func (q *keyQueue) Len() int { return len(q.pending) }
