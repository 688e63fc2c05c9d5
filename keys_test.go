package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/consoletris/consoletris/internal/engine"
)

func TestCommandForKey(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want engine.Command
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, engine.MoveLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, engine.MoveRight},
		{tea.KeyMsg{Type: tea.KeyDown}, engine.SoftDrop},
		{tea.KeyMsg{Type: tea.KeyUp}, engine.Rotate},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, engine.HardDrop},
		{tea.KeyMsg{Type: tea.KeyEsc}, engine.Quit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, engine.MoveLeft},
	}
	for _, tc := range cases {
		got, ok := commandForKey(tc.msg)
		assert.True(t, ok, tc.msg.String())
		assert.Equal(t, tc.want, got, tc.msg.String())
	}
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	_, ok := commandForKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	assert.False(t, ok)
}

func TestKeyQueueHandsOutOneCommandPerPoll(t *testing.T) {
	q := &keyQueue{}
	_, ok := q.Poll()
	assert.False(t, ok)

	assert.True(t, q.Push(engine.MoveLeft))
	assert.True(t, q.Push(engine.Rotate))

	cmd, ok := q.Poll()
	assert.True(t, ok)
	assert.Equal(t, engine.MoveLeft, cmd)
	assert.Equal(t, engine.MoveLeft, q.LastPolled())
	assert.Equal(t, 1, q.Len())

	q.Poll()
	q.Poll()
	assert.Equal(t, engine.NoOp, q.LastPolled())
}

func TestKeyQueueDropsBacklog(t *testing.T) {
	q := &keyQueue{}
	for i := 0; i < maxQueuedKeys; i++ {
		assert.True(t, q.Push(engine.SoftDrop))
	}
	assert.False(t, q.Push(engine.HardDrop))
	assert.Equal(t, maxQueuedKeys, q.Len())
}
