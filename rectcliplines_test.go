package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectClipLinesCrossing(t *testing.T) {
	rect := NewRect64(0, 0, 10, 10)
	lines := Paths64{{{5, -5}, {5, 15}}}

	solution := RectClipLines64(rect, lines)
	require.Len(t, solution, 1)
	require.Len(t, solution[0], 2)
	assert.Equal(t, Point64{5, 0}, solution[0][0])
	assert.Equal(t, Point64{5, 10}, solution[0][1])
}

func TestRectClipLinesInside(t *testing.T) {
	rect := NewRect64(0, 0, 100, 100)
	lines := Paths64{{{10, 10}, {50, 50}, {90, 10}}}

	solution := RectClipLines64(rect, lines)
	require.Len(t, solution, 1)
	assert.Equal(t, lines[0], solution[0])
}

func TestRectClipLinesOutside(t *testing.T) {
	rect := NewRect64(0, 0, 10, 10)
	lines := Paths64{{{20, 20}, {30, 30}}}
	assert.Empty(t, RectClipLines64(rect, lines))
}

func TestRectClipLinesMultipleCrossings(t *testing.T) {
	// a zig-zag that leaves and re-enters the rectangle splits in two
	rect := NewRect64(0, 0, 100, 100)
	lines := Paths64{{{-10, 50}, {30, 50}, {50, 150}, {70, 50}, {110, 50}}}

	solution := RectClipLines64(rect, lines)
	require.Len(t, solution, 2)
	for _, p := range solution {
		assert.GreaterOrEqual(t, len(p), 2)
	}
}

func TestRectClipLinesD(t *testing.T) {
	rect := NewRectD(0, 0, 10, 10)
	lines := PathsD{{{5, -5}, {5, 15}}}

	solution := RectClipLinesD(rect, lines, 2)
	require.Len(t, solution, 1)
	require.Len(t, solution[0], 2)
	assert.InDelta(t, 0.0, solution[0][0].Y, 1e-9)
	assert.InDelta(t, 10.0, solution[0][1].Y, 1e-9)
}
