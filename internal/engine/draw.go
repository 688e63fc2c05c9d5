package engine

// CellKind tells a renderer what a painted cell represents.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellLocked
	CellActive
	CellGhost
)

type Cell struct {
	Glyph rune
	Color Color
	Kind  CellKind
}

// Renderer is an output device for frames. SetCell is called once per board
// cell, then Flush completes the frame with the HUD values in s.
type Renderer interface {
	SetCell(x, y int, c Cell)
	Flush(s Snapshot) error
}

const (
	blockGlyph = '#'
	ghostGlyph = '.'
	emptyGlyph = ' '
)

// Draw paints s onto r. With ghost set, the landing position of the active
// piece is marked on empty cells.
func Draw(r Renderer, s Snapshot, ghost bool) error {
	frame := NewGrid[Cell](Width, Height)
	for y, row := range s.Board {
		for x, color := range row {
			if color == Empty {
				frame.Set(x, y, Cell{Glyph: emptyGlyph})
				continue
			}
			frame.Set(x, y, Cell{Glyph: blockGlyph, Color: color, Kind: CellLocked})
		}
	}
	if ghost && !s.Over && s.GhostY != s.Piece.Y {
		Cells(s.Piece.Matrix, func(px, py int) {
			x, y := s.Piece.X+px, s.GhostY+py
			if cell, ok := frame.At(x, y); ok && cell.Kind == CellEmpty {
				frame.Set(x, y, Cell{Glyph: ghostGlyph, Color: s.Piece.Color, Kind: CellGhost})
			}
		})
	}
	if !s.Over {
		Cells(s.Piece.Matrix, func(px, py int) {
			frame.Set(s.Piece.X+px, s.Piece.Y+py, Cell{Glyph: blockGlyph, Color: s.Piece.Color, Kind: CellActive})
		})
	}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			cell, _ := frame.At(x, y)
			r.SetCell(x, y, cell)
		}
	}
	return r.Flush(s)
}
