package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapesAreTetrominoes(t *testing.T) {
	all := Shapes()
	assert.Len(t, all, 7)

	colors := map[Color]bool{}
	for i, shape := range all {
		assert.Equal(t, Kind(i), shape.Kind)
		assert.True(t, shape.Color.Valid())
		colors[shape.Color] = true

		m := shape.Matrix()
		assert.Equal(t, m.Width(), m.Height(), "shape %s is square", shape.Kind)
		count := 0
		Cells(m, func(int, int) { count++ })
		assert.Equal(t, 4, count, "shape %s has four cells", shape.Kind)
	}
	assert.Len(t, colors, 7)
}

func TestShapeMatrixIsACopy(t *testing.T) {
	shape, _ := ShapeOf(KindT)
	m := shape.Matrix()
	m.Fill(true)

	assert.False(t, shape.Matrix().Equal(m))
}

func TestColorValid(t *testing.T) {
	assert.False(t, Empty.Valid())
	assert.False(t, Color(7).Valid())
	assert.True(t, ColorBrightYellow.Valid())
}

func TestShapeOfRejectsUnknownKind(t *testing.T) {
	_, ok := ShapeOf(Kind(7))
	assert.False(t, ok)
	assert.Equal(t, "?", Kind(-1).String())
}
