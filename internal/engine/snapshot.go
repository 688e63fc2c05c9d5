package engine

import "time"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Board    [][]Color
	Piece    Piece
	GhostY   int
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	Over     bool
}

func (g *Game) Snapshot() Snapshot {
	piece := g.piece
	piece.Matrix = piece.Matrix.Clone()
	return Snapshot{
		Board:    g.board.Cells(),
		Piece:    piece,
		GhostY:   g.GhostY(),
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		Interval: g.interval,
		Over:     g.over,
	}
}

// State reports whether the loop should keep running.
type State int

const (
	Running State = iota
	GameOver
)

func (s Snapshot) State() State {
	if s.Over {
		return GameOver
	}
	return Running
}

func (s State) String() string {
	if s == GameOver {
		return "game-over"
	}
	return "running"
}
