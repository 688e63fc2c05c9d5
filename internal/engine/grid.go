package engine

// Grid is a fixed-size two dimensional grid addressed by column x and row y.
// Accessors are bounds-checked; out-of-range reads report ok=false and
// out-of-range writes are dropped.
type Grid[T comparable] struct {
	width  int
	height int
	cells  []T
}

func NewGrid[T comparable](width, height int) Grid[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// GridFromRows builds a grid from row slices. Short rows are padded with the
// zero value so the grid stays rectangular.
func GridFromRows[T comparable](rows [][]T) Grid[T] {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g := NewGrid[T](width, len(rows))
	for y, row := range rows {
		copy(g.cells[y*width:], row)
	}
	return g
}

func (g Grid[T]) Width() int { return g.width }
func (g Grid[T]) Height() int { return g.height }

func (g Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g Grid[T]) At(x, y int) (T, bool) {
	if !g.In(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.width+x], true
}

func (g Grid[T]) Set(x, y int, value T) bool {
	if !g.In(x, y) {
		return false
	}
	g.cells[y*g.width+x] = value
	return true
}

func (g Grid[T]) Fill(value T) {
	for i := range g.cells {
		g.cells[i] = value
	}
}

// Row returns a copy of row y, or nil when y is out of range.
func (g Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]T, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}

func (g Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

func (g Grid[T]) Clone() Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return Grid[T]{width: g.width, height: g.height, cells: cells}
}

func (g Grid[T]) Equal(other Grid[T]) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Matrix is a piece occupancy grid.
type Matrix = Grid[bool]

// RotateCW turns an N-row by M-column matrix a quarter turn clockwise into an
// M-row by N-column one: row x, column N-1-y of the result holds row y,
// column x of the input.
func RotateCW(m Matrix) Matrix {
	n := m.Height()
	rotated := NewGrid[bool](n, m.Width())
	for y := 0; y < n; y++ {
		for x := 0; x < m.Width(); x++ {
			value, _ := m.At(x, y)
			rotated.Set(n-1-y, x, value)
		}
	}
	return rotated
}

// Cells calls fn for every occupied cell of m.
func Cells(m Matrix, fn func(x, y int)) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if occupied, _ := m.At(x, y); occupied {
				fn(x, y)
			}
		}
	}
}
