package engine

// Kind names one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color identifies what occupies a board cell. Values follow the classic
// 16-color console palette; Empty marks a free cell.
type Color uint8

const (
	Empty             Color = 0
	ColorBlue         Color = 1
	ColorGreen        Color = 2
	ColorCyan         Color = 3
	ColorRed          Color = 4
	ColorPurple       Color = 5
	ColorYellow       Color = 6
	ColorBrightYellow Color = 14
)

// Valid reports whether c is one of the seven piece colors.
func (c Color) Valid() bool {
	for _, s := range shapes {
		if s.Color == c {
			return true
		}
	}
	return false
}

// Shape is a read-only tetromino template at its spawn orientation.
type Shape struct {
	Kind   Kind
	Color  Color
	matrix Matrix
}

// Matrix returns a copy of the template so callers can never alter it.
func (s Shape) Matrix() Matrix {
	return s.matrix.Clone()
}

func (s Shape) Width() int { return s.matrix.Width() }

var shapes = []Shape{
	{Kind: KindI, Color: ColorBlue, matrix: parseMatrix(
		"....",
		"####",
		"....",
		"....",
	)},
	{Kind: KindO, Color: ColorYellow, matrix: parseMatrix(
		"##",
		"##",
	)},
	{Kind: KindT, Color: ColorPurple, matrix: parseMatrix(
		".#.",
		"###",
		"...",
	)},
	{Kind: KindS, Color: ColorGreen, matrix: parseMatrix(
		".##",
		"##.",
		"...",
	)},
	{Kind: KindZ, Color: ColorRed, matrix: parseMatrix(
		"##.",
		".##",
		"...",
	)},
	{Kind: KindJ, Color: ColorCyan, matrix: parseMatrix(
		"#..",
		"###",
		"...",
	)},
	{Kind: KindL, Color: ColorBrightYellow, matrix: parseMatrix(
		"..#",
		"###",
		"...",
	)},
}

// Shapes returns the seven templates in Kind order.
func Shapes() []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	return out
}

// ShapeOf returns the template for kind.
func ShapeOf(kind Kind) (Shape, bool) {
	if kind < 0 || int(kind) >= len(shapes) {
		return Shape{}, false
	}
	return shapes[kind], true
}

func parseMatrix(rows ...string) Matrix {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, ch := range row {
			cells[y][x] = ch == '#'
		}
	}
	return GridFromRows(cells)
}
