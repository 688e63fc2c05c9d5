package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/consoletris/consoletris/internal/engine"
)

type frameMsg time.Time

type soundMsg struct{}

// Model hosts the engine loop inside bubbletea. Every frame tick runs one
// loop iteration; key presses between frames wait in the queue.
type Model struct {
	width    int
	height   int
	config   Config
	theme    Theme
	loop     *engine.Loop
	input    *keyQueue
	view     *boardView
	sound    *SoundEngine
	music    *MusicPlayer
	interval time.Duration
	paused   bool
	final    *engine.Snapshot
}

func NewModel(config Config, game *engine.Game, sound *SoundEngine, music *MusicPlayer) Model {
	config = config.normalize()
	theme, _ := themeByName(config.Theme)
	input := &keyQueue{}
	view := newBoardView(theme)
	return Model{
		config:   config,
		theme:    theme,
		loop:     engine.NewLoop(game, input, view, engine.WithGhost(config.Shadow)),
		input:    input,
		view:     view,
		sound:    sound,
		music:    music,
		interval: time.Second / time.Duration(config.FPS),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.interval), startMusic(m.music))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	case frameMsg:
		return m.frame(time.Time(msg))
	case soundMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "p":
		m.paused = !m.paused
		debugLog.Debug("pause toggled", "paused", m.paused)
		return nil
	case "m":
		m.config.Sound = !m.config.Sound
		m.sound.SetEnabled(m.config.Sound)
		debugLog.Debug("sound toggled", "sound", m.config.Sound)
		return nil
	case "+", "=":
		m.adjustVolume(volumeStep)
		return nil
	case "-":
		m.adjustVolume(-volumeStep)
		return nil
	}
	cmd, ok := commandForKey(msg)
	if !ok {
		return nil
	}
	if cmd == engine.Quit {
		m.paused = false
	} else if m.paused {
		return nil
	}
	if !m.input.Push(cmd) {
		debugLog.Debug("key dropped", "command", cmd, "queued", m.input.Len())
	}
	return nil
}

const volumeStep = 10

func (m *Model) adjustVolume(delta int) {
	m.config.Volume = clampVolumePercent(m.config.Volume + delta)
	volume := volumeFromPercent(m.config.Volume)
	m.sound.SetVolume(volume)
	m.music.SetVolume(volume)
	debugLog.Debug("volume changed", "percent", m.config.Volume)
}

func (m Model) frame(now time.Time) (tea.Model, tea.Cmd) {
	if m.final != nil {
		return m, nil
	}
	if m.paused {
		m.loop.Reset(now)
		return m, frameCmd(m.interval)
	}
	result, err := m.loop.Iterate(now)
	if err != nil {
		debugLog.Error("frame failed", "err", err)
	}
	var cmds []tea.Cmd
	if event, ok := soundEventFor(m.input.LastPolled(), result); ok && m.sound.Enabled() {
		cmds = append(cmds, playSound(m.sound, event))
	}
	if result.Cleared > 0 {
		s := m.loop.Game().Snapshot()
		debugLog.Debug("lines cleared", "rows", result.Cleared, "score", s.Score, "level", s.Level, "lines", s.Lines)
	}
	if result.GameOver {
		final := m.loop.Game().Snapshot()
		m.final = &final
		m.music.Stop()
		debugLog.Info("game over", "score", final.Score, "lines", final.Lines, "level", final.Level)
		cmds = append(cmds, tea.Quit)
		return m, tea.Sequence(cmds...)
	}
	cmds = append(cmds, frameCmd(m.interval))
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.final != nil {
		return ""
	}
	content := m.view.Frame()
	if m.paused {
		content = lipgloss.JoinVertical(lipgloss.Left, content, highlightStyle(m.theme).Render("  Paused"))
	}
	return center(m.width, m.height, content)
}

// Final is the state the game ended in, or false while it is still running.
func (m Model) Final() (engine.Snapshot, bool) {
	if m.final == nil {
		return engine.Snapshot{}, false
	}
	return *m.final, true
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func playSound(sounds *SoundEngine, event SoundEvent) tea.Cmd {
	return func() tea.Msg {
		sounds.Play(event)
		return soundMsg{}
	}
}

func startMusic(player *MusicPlayer) tea.Cmd {
	if player == nil {
		return nil
	}
	return func() tea.Msg {
		if err := player.Start(); err != nil {
			debugLog.Warn("music disabled", "err", err)
		}
		return nil
	}
}
