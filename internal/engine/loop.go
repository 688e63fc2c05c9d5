package engine

import (
	"context"
	"time"
)

// Loop drives a Game the way a console host does: draw the current state,
// apply at most one pending command, then let gravity catch up with the
// time elapsed since the previous iteration.
type Loop struct {
	game     *Game
	input    InputSource
	renderer Renderer
	ghost    bool
	last     time.Time
}

type LoopOption func(*Loop)

// WithGhost marks the landing position of the active piece in every frame.
func WithGhost(enabled bool) LoopOption {
	return func(l *Loop) {
		l.ghost = enabled
	}
}

func NewLoop(game *Game, input InputSource, renderer Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		game:     game,
		input:    input,
		renderer: renderer,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) Game() *Game { return l.game }

// Reset restarts elapsed-time tracking at now, e.g. after the host paused.
func (l *Loop) Reset(now time.Time) {
	l.last = now
}

// Iterate runs one pass of the loop at wall time now.
func (l *Loop) Iterate(now time.Time) (Result, error) {
	if l.last.IsZero() {
		l.last = now
	}
	if err := Draw(l.renderer, l.game.Snapshot(), l.ghost); err != nil {
		return Result{}, err
	}
	var result Result
	if l.input != nil {
		if cmd, ok := l.input.Poll(); ok {
			result = result.merge(l.game.Apply(cmd))
		}
	}
	// A hard drop restarts the fall timer at now, so the new piece gets a
	// full interval.
	if !l.game.Over() && !result.Locked {
		result = result.merge(l.game.Advance(now.Sub(l.last)))
	}
	l.last = now
	result.GameOver = l.game.Over()
	return result, nil
}

// Run iterates until the game is over or ctx is done, sleeping pace between
// iterations, and returns the final state.
func (l *Loop) Run(ctx context.Context, now func() time.Time, pace time.Duration) (Snapshot, error) {
	for !l.game.Over() {
		if _, err := l.Iterate(now()); err != nil {
			return l.game.Snapshot(), err
		}
		if pace <= 0 {
			if err := ctx.Err(); err != nil {
				return l.game.Snapshot(), err
			}
			continue
		}
		timer := time.NewTimer(pace)
		select {
		case <-ctx.Done():
			timer.Stop()
			return l.game.Snapshot(), ctx.Err()
		case <-timer.C:
		}
	}
	return l.game.Snapshot(), nil
}

func (r Result) merge(other Result) Result {
	r.Moved = r.Moved || other.Moved
	r.Rotated = r.Rotated || other.Rotated
	r.Locked = r.Locked || other.Locked
	r.Cleared += other.Cleared
	r.ScoreDelta += other.ScoreDelta
	r.GameOver = r.GameOver || other.GameOver
	return r
}
