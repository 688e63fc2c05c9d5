package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/consoletris/consoletris/internal/engine"
)

type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	PieceColors map[engine.Color]lipgloss.Color
}

var themes = []Theme{
	{
		Name:        "Classic Console",
		BorderColor: lipgloss.Color("15"),
		TextColor:   lipgloss.Color("250"),
		AccentColor: lipgloss.Color("226"),
		PieceColors: map[engine.Color]lipgloss.Color{
			engine.ColorBlue:         "12",
			engine.ColorYellow:       "3",
			engine.ColorPurple:       "5",
			engine.ColorGreen:        "2",
			engine.ColorRed:          "1",
			engine.ColorCyan:         "6",
			engine.ColorBrightYellow: "11",
		},
	},
	{
		Name:        "Amber Terminal",
		BorderColor: lipgloss.Color("214"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("208"),
		PieceColors: map[engine.Color]lipgloss.Color{
			engine.ColorBlue:         "220",
			engine.ColorYellow:       "214",
			engine.ColorPurple:       "222",
			engine.ColorGreen:        "208",
			engine.ColorRed:          "215",
			engine.ColorCyan:         "216",
			engine.ColorBrightYellow: "223",
		},
	},
	{
		Name:        "Ocean Neon",
		BorderColor: lipgloss.Color("33"),
		TextColor:   lipgloss.Color("159"),
		AccentColor: lipgloss.Color("39"),
		PieceColors: map[engine.Color]lipgloss.Color{
			engine.ColorBlue:         "45",
			engine.ColorYellow:       "39",
			engine.ColorPurple:       "51",
			engine.ColorGreen:        "44",
			engine.ColorRed:          "50",
			engine.ColorCyan:         "75",
			engine.ColorBrightYellow: "81",
		},
	},
	{
		Name:        "Mono Matrix",
		BorderColor: lipgloss.Color("250"),
		TextColor:   lipgloss.Color("245"),
		AccentColor: lipgloss.Color("82"),
		PieceColors: map[engine.Color]lipgloss.Color{
			engine.ColorBlue:         "236",
			engine.ColorYellow:       "239",
			engine.ColorPurple:       "242",
			engine.ColorGreen:        "245",
			engine.ColorRed:          "248",
			engine.ColorCyan:         "251",
			engine.ColorBrightYellow: "254",
		},
	},
}

func themeByName(name string) (Theme, bool) {
	for _, theme := range themes {
		if strings.EqualFold(theme.Name, name) {
			return theme, true
		}
	}
	return themes[0], false
}

func (t Theme) pieceColor(c engine.Color) lipgloss.Color {
	if color, ok := t.PieceColors[c]; ok {
		return color
	}
	return t.TextColor
}

const cellWidth = 2

// boardView is the terminal Renderer. The engine paints cells into it and
// Flush turns them into the string bubbletea shows.
type boardView struct {
	theme Theme
	cells [engine.Height][engine.Width]engine.Cell
	frame string
}

func newBoardView(theme Theme) *boardView {
	return &boardView{theme: theme}
}

func (v *boardView) SetCell(x, y int, c engine.Cell) {
	if x < 0 || x >= engine.Width || y < 0 || y >= engine.Height {
		return
	}
	v.cells[y][x] = c
}

func (v *boardView) Flush(s engine.Snapshot) error {
	v.frame = lipgloss.JoinHorizontal(lipgloss.Top, v.renderBoard(), renderInfo(s, v.theme))
	return nil
}

func (v *boardView) Frame() string { return v.frame }

func (v *boardView) renderBoard() string {
	border := lipgloss.NewStyle().Foreground(v.theme.BorderColor)
	edge := border.Render("+" + strings.Repeat("-", engine.Width*cellWidth) + "+")
	var b strings.Builder
	b.WriteString(edge)
	b.WriteString("\n")
	for y := 0; y < engine.Height; y++ {
		b.WriteString(border.Render("|"))
		for x := 0; x < engine.Width; x++ {
			b.WriteString(v.renderCell(v.cells[y][x]))
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(edge)
	return b.String()
}

func (v *boardView) renderCell(c engine.Cell) string {
	text := strings.Repeat(string(c.Glyph), cellWidth)
	switch c.Kind {
	case engine.CellLocked, engine.CellActive:
		return lipgloss.NewStyle().
			Foreground(v.theme.pieceColor(c.Color)).
			Background(v.theme.pieceColor(c.Color)).
			Render(text)
	case engine.CellGhost:
		return lipgloss.NewStyle().Foreground(v.theme.pieceColor(c.Color)).Faint(true).Render(text)
	default:
		return strings.Repeat(" ", cellWidth)
	}
}

func renderInfo(s engine.Snapshot, theme Theme) string {
	var b strings.Builder
	pad := lipgloss.NewStyle().PaddingLeft(2)
	b.WriteString(pad.Render(titleStyle(theme).Render("CONSOLETRIS")))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(fmt.Sprintf("Score: %d", s.Score)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Level: %d", s.Level)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Lines: %d", s.Lines)))
	b.WriteString("\n\n")
	keys := []string{
		"Left/Right: move",
		"Up: rotate",
		"Down: soft drop",
		"Space: hard drop",
		"P: pause",
		"M: sound",
		"+/-: volume",
		"Esc: quit",
	}
	for _, line := range keys {
		b.WriteString(pad.Render(helpStyle(theme).Render(line)))
		b.WriteString("\n")
	}
	if s.Over {
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render("Game Over")))
	}
	return b.String()
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func highlightStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func finalReport(s engine.Snapshot) string {
	return fmt.Sprintf("Game Over!\nFinal Score: %d\nLines Cleared: %d\n", s.Score, s.Lines)
}
