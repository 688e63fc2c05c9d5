package engine

import (
	"math/rand/v2"
	"time"
)

// Randomizer picks spawn shapes. *rand.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// Piece is the falling tetromino: its current rotation and the board
// position of the matrix's top-left corner.
type Piece struct {
	Kind   Kind
	Color  Color
	Matrix Matrix
	X      int
	Y      int
}

// Result describes what a single Apply or Advance call changed.
type Result struct {
	Moved      bool
	Rotated    bool
	Locked     bool
	Cleared    int
	ScoreDelta int
	GameOver   bool
}

// Game is the gameplay engine. It is not safe for concurrent use; a host
// that renders or polls input on other goroutines must serialize access.
type Game struct {
	board     *Board
	piece     Piece
	score     int
	level     int
	lines     int
	interval  time.Duration
	over      bool
	sinceFall time.Duration
	rng       Randomizer
}

type Option func(*Game)

func WithRand(rng Randomizer) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func New(opts ...Option) *Game {
	g := &Game{
		board:    NewBoard(),
		level:    1,
		interval: FallInterval(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g.spawn()
	return g
}

func (g *Game) Over() bool { return g.over }

func (g *Game) Score() int { return g.score }

func (g *Game) Level() int { return g.level }

func (g *Game) Lines() int { return g.lines }

func (g *Game) Interval() time.Duration { return g.interval }

// Apply runs one player command. Commands that would collide are reverted
// and everything is a no-op once the game is over.
func (g *Game) Apply(cmd Command) Result {
	if g.over {
		return Result{GameOver: true}
	}
	var result Result
	switch cmd {
	case MoveLeft:
		result.Moved = g.shift(-1, 0)
	case MoveRight:
		result.Moved = g.shift(1, 0)
	case SoftDrop:
		result.Moved = g.shift(0, 1)
	case Rotate:
		result.Rotated = g.rotate()
	case HardDrop:
		startY := g.piece.Y
		for !g.board.Collides(g.piece.Matrix, g.piece.X, g.piece.Y) {
			g.piece.Y++
		}
		g.piece.Y--
		dropped := g.piece.Y > startY
		result = g.lockAndSpawn()
		result.Moved = dropped
		g.sinceFall = 0
	case Quit:
		g.over = true
	}
	result.GameOver = g.over
	return result
}

// Advance moves the clock forward by dt. Once the time since the last
// automatic step reaches the fall interval the piece steps down one row, or
// locks when it cannot. At most one step happens per call.
func (g *Game) Advance(dt time.Duration) Result {
	if g.over {
		return Result{GameOver: true}
	}
	g.sinceFall += dt
	if g.sinceFall < g.interval {
		return Result{}
	}
	var result Result
	if g.shift(0, 1) {
		result.Moved = true
	} else {
		result = g.lockAndSpawn()
	}
	g.sinceFall = 0
	result.GameOver = g.over
	return result
}

// GhostY is the row the active piece would lock at after a hard drop.
func (g *Game) GhostY() int {
	y := g.piece.Y
	if g.board.Collides(g.piece.Matrix, g.piece.X, y) {
		return y
	}
	for !g.board.Collides(g.piece.Matrix, g.piece.X, y+1) {
		y++
	}
	return y
}

func (g *Game) shift(dx, dy int) bool {
	g.piece.X += dx
	g.piece.Y += dy
	if g.board.Collides(g.piece.Matrix, g.piece.X, g.piece.Y) {
		g.piece.X -= dx
		g.piece.Y -= dy
		return false
	}
	return true
}

// rotate tries a clockwise turn about the matrix's top-left corner and keeps
// the old orientation when the turned piece would collide.
func (g *Game) rotate() bool {
	rotated := RotateCW(g.piece.Matrix)
	if g.board.Collides(rotated, g.piece.X, g.piece.Y) {
		return false
	}
	g.piece.Matrix = rotated
	return true
}

func (g *Game) lockAndSpawn() Result {
	g.board.Merge(g.piece.Matrix, g.piece.X, g.piece.Y, g.piece.Color)
	result := Result{Locked: true}
	cleared := g.board.ClearLines()
	if cleared > 0 {
		g.lines += cleared
		result.Cleared = cleared
		result.ScoreDelta = LineScore(cleared, g.level)
		g.score += result.ScoreDelta
		g.level = LevelFor(g.lines)
		g.interval = FallInterval(g.level)
	}
	g.spawn()
	return result
}

func (g *Game) spawn() {
	shape := shapes[g.rng.IntN(len(shapes))]
	g.piece = Piece{
		Kind:   shape.Kind,
		Color:  shape.Color,
		Matrix: shape.Matrix(),
		X:      Width/2 - shape.Width()/2,
		Y:      0,
	}
	if g.board.Collides(g.piece.Matrix, g.piece.X, g.piece.Y) {
		g.over = true
	}
}
