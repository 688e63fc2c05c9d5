package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	frame   [Height][Width]Cell
	flushes []Snapshot
	err     error
}

func (r *recordingRenderer) SetCell(x, y int, c Cell) {
	r.frame[y][x] = c
}

func (r *recordingRenderer) Flush(s Snapshot) error {
	r.flushes = append(r.flushes, s)
	return r.err
}

type queuedInput struct {
	commands []Command
}

func (q *queuedInput) Poll() (Command, bool) {
	if len(q.commands) == 0 {
		return NoOp, false
	}
	cmd := q.commands[0]
	q.commands = q.commands[1:]
	return cmd, true
}

func TestDrawPaintsBoardPieceAndGhost(t *testing.T) {
	g := newTestGame(t, KindO)
	g.board.cells.Set(0, 19, ColorRed)
	r := &recordingRenderer{}

	require.NoError(t, Draw(r, g.Snapshot(), true))

	assert.Equal(t, Cell{Glyph: '#', Color: ColorRed, Kind: CellLocked}, r.frame[19][0])
	assert.Equal(t, Cell{Glyph: '#', Color: ColorYellow, Kind: CellActive}, r.frame[0][4])
	assert.Equal(t, Cell{Glyph: '.', Color: ColorYellow, Kind: CellGhost}, r.frame[19][5])
	assert.Equal(t, Cell{Glyph: ' '}, r.frame[10][0])
	require.Len(t, r.flushes, 1)
}

func TestDrawWithoutGhost(t *testing.T) {
	g := newTestGame(t, KindO)
	r := &recordingRenderer{}

	require.NoError(t, Draw(r, g.Snapshot(), false))
	assert.Equal(t, CellEmpty, r.frame[19][5].Kind)
}

func TestIterateAppliesOneCommandPerPass(t *testing.T) {
	g := newTestGame(t, KindO)
	in := &queuedInput{commands: []Command{MoveLeft, MoveLeft}}
	r := &recordingRenderer{}
	loop := NewLoop(g, in, r)
	start := time.Unix(0, 0)

	res, err := loop.Iterate(start)
	require.NoError(t, err)
	assert.True(t, res.Moved)
	assert.Equal(t, 3, g.piece.X)
	assert.Len(t, in.commands, 1)

	// the frame is drawn before input is applied
	assert.Equal(t, 4, r.flushes[0].Piece.X)
}

func TestIterateAdvancesByWallTime(t *testing.T) {
	g := newTestGame(t, KindO)
	loop := NewLoop(g, &queuedInput{}, &recordingRenderer{})
	start := time.Unix(100, 0)

	_, err := loop.Iterate(start)
	require.NoError(t, err)
	_, err = loop.Iterate(start.Add(600 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 0, g.piece.Y)

	_, err = loop.Iterate(start.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, g.piece.Y)
}

func TestIterateHardDropGivesNewPieceFullInterval(t *testing.T) {
	g := newTestGame(t, KindO)
	in := &queuedInput{}
	loop := NewLoop(g, in, &recordingRenderer{})
	start := time.Unix(0, 0)

	_, err := loop.Iterate(start)
	require.NoError(t, err)

	in.commands = []Command{HardDrop}
	res, err := loop.Iterate(start.Add(990 * time.Millisecond))
	require.NoError(t, err)
	assert.True(t, res.Locked)
	assert.Equal(t, 0, g.piece.Y)
	assert.Zero(t, g.sinceFall)

	_, err = loop.Iterate(start.Add(1000 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 0, g.piece.Y)

	_, err = loop.Iterate(start.Add(1990 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 1, g.piece.Y)
}

func TestIterateReturnsRendererError(t *testing.T) {
	g := newTestGame(t, KindO)
	boom := errors.New("boom")
	loop := NewLoop(g, &queuedInput{commands: []Command{MoveLeft}}, &recordingRenderer{err: boom})

	_, err := loop.Iterate(time.Unix(0, 0))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, g.piece.X)
}

func TestRunStopsOnQuit(t *testing.T) {
	g := newTestGame(t, KindO)
	in := &queuedInput{commands: []Command{HardDrop, Quit, MoveLeft}}
	loop := NewLoop(g, in, &recordingRenderer{})
	now := time.Unix(0, 0)
	clock := func() time.Time {
		now = now.Add(10 * time.Millisecond)
		return now
	}

	final, err := loop.Run(context.Background(), clock, 0)
	require.NoError(t, err)
	assert.True(t, final.Over)
	assert.Equal(t, ColorYellow, final.Board[Height-1][4])
	assert.Equal(t, []Command{MoveLeft}, in.commands)
}

func TestRunHonoursContext(t *testing.T) {
	g := newTestGame(t, KindO)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoop(g, &queuedInput{}, &recordingRenderer{}).Run(ctx, time.Now, time.Millisecond)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, g.Over())
}

func TestRunPlaysUntilTopOut(t *testing.T) {
	g := newTestGame(t, KindO)
	now := time.Unix(0, 0)
	clock := func() time.Time {
		now = now.Add(100 * time.Millisecond)
		return now
	}

	final, err := NewLoop(g, nil, &recordingRenderer{}).Run(context.Background(), clock, 0)
	require.NoError(t, err)
	assert.Equal(t, GameOver, final.State())
	assert.Equal(t, 0, final.Lines)
}
