package engine

const (
	Width  = 10
	Height = 20
)

// Board is the fixed playfield. Row 0 is the top.
type Board struct {
	cells Grid[Color]
}

func NewBoard() *Board {
	return &Board{cells: NewGrid[Color](Width, Height)}
}

func (b *Board) At(x, y int) Color {
	c, _ := b.cells.At(x, y)
	return c
}

// Cells returns a copy of the board contents indexed [y][x].
func (b *Board) Cells() [][]Color {
	return b.cells.Rows()
}

// Collides reports whether m placed with its top-left at (originX, originY)
// leaves the board sideways, reaches below the floor, or overlaps a filled
// cell. Cells above the top row only collide when out of horizontal range.
func (b *Board) Collides(m Matrix, originX, originY int) bool {
	hit := false
	Cells(m, func(px, py int) {
		if hit {
			return
		}
		x := originX + px
		y := originY + py
		if x < 0 || x >= Width || y >= Height {
			hit = true
			return
		}
		if y >= 0 && b.At(x, y) != Empty {
			hit = true
		}
	})
	return hit
}

// Merge writes color into every in-bounds occupied cell of m.
func (b *Board) Merge(m Matrix, originX, originY int, color Color) {
	Cells(m, func(px, py int) {
		b.cells.Set(originX+px, originY+py, color)
	})
}

// ClearLines removes every complete row, scanning bottom to top. After a
// removal the same row index is checked again because the rows above have
// shifted into it.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := Height - 1; y >= 0; y-- {
		if !b.rowComplete(y) {
			continue
		}
		b.removeRow(y)
		cleared++
		y++
	}
	return cleared
}

func (b *Board) rowComplete(y int) bool {
	for x := 0; x < Width; x++ {
		if b.At(x, y) == Empty {
			return false
		}
	}
	return true
}

func (b *Board) removeRow(row int) {
	for y := row; y > 0; y-- {
		for x := 0; x < Width; x++ {
			b.cells.Set(x, y, b.At(x, y-1))
		}
	}
	for x := 0; x < Width; x++ {
		b.cells.Set(x, 0, Empty)
	}
}
