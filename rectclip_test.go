package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectClipSubjectInside(t *testing.T) {
	rect := NewRect64(100, 100, 700, 500)
	subject := Paths64{{{110, 110}, {690, 110}, {690, 490}, {110, 490}}}

	solution := RectClip64(rect, subject)
	require.Len(t, solution, 1)
	assert.Equal(t, AreaPaths64(subject), AreaPaths64(solution))
}

func TestRectClipSubjectSurroundsRect(t *testing.T) {
	rect := NewRect64(100, 100, 700, 500)
	subject := Paths64{{{90, 90}, {700, 100}, {700, 500}, {100, 500}}}

	solution := RectClip64(rect, subject)
	require.NotEmpty(t, solution)
	assert.Equal(t, float64(rect.Width()*rect.Height()), AreaPaths64(solution))
}

func TestRectClipEnclosingSubjectYieldsRect(t *testing.T) {
	rect := NewRect64(100, 100, 700, 500)
	subject := Paths64{{{0, 0}, {1000, 0}, {1000, 1000}, {0, 1000}}}

	solution := RectClip64(rect, subject)
	require.Len(t, solution, 1)
	assert.Equal(t, float64(rect.Width()*rect.Height()), AreaPaths64(solution))
	assert.Equal(t, rect, Bounds64(solution[0]))
}

func TestRectClipThinStrip(t *testing.T) {
	// issue 597 class: a long thin horizontal strip through the rect
	rect := NewRect64(54690, 0, 65628, 6000)
	subject := Paths64{{{700000, 6000}, {0, 6000}, {0, 5925}, {700000, 5925}}}

	solution := RectClip64(rect, subject)
	require.Len(t, solution, 1)
	assert.Len(t, solution[0], 4)
}

func TestRectClipOrientationPreserved(t *testing.T) {
	// issue 864 class: clipped output keeps the subject's orientation
	rect := NewRect64(1222, 1323, 3247, 3348)
	subject := Path64{{375, 1680}, {1915, 4716}, {5943, 586}, {3987, 152}}

	for _, path := range []Path64{subject, Reverse64(subject)} {
		solution := RectClip64(rect, Paths64{path})
		require.NotEmpty(t, solution)
		for _, p := range solution {
			require.GreaterOrEqual(t, len(p), 3)
			assert.Equal(t, IsPositive64(path), IsPositive64(p))
		}
	}
}

func TestRectClipTouchingFromOutside(t *testing.T) {
	rect := NewRect64(100, 100, 200, 200)
	subject := Paths64{{{0, 100}, {100, 100}, {100, 200}, {0, 200}}}

	solution := RectClip64(rect, subject)
	assert.Empty(t, solution)
}

func TestRectClipTriangleWhollyOutside(t *testing.T) {
	rect := NewRect64(100, 100, 200, 200)
	subject := Paths64{{{40, 40}, {160, 40}, {40, 140}}}

	solution := RectClip64(rect, subject)
	assert.Empty(t, solution)
}

func TestRectClipDisjointBounds(t *testing.T) {
	rect := NewRect64(0, 0, 10, 10)
	subject := Paths64{{{20, 20}, {30, 20}, {30, 30}, {20, 30}}}
	assert.Empty(t, RectClip64(rect, subject))
}

func TestRectClipEmptyRect(t *testing.T) {
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	assert.Empty(t, RectClip64(NewRect64(5, 5, 5, 20), subject))
}

func TestRectClipPartialOverlap(t *testing.T) {
	rect := NewRect64(0, 0, 10, 10)
	subject := Paths64{{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}

	solution := RectClip64(rect, subject)
	require.Len(t, solution, 1)
	assert.Equal(t, 25.0, AreaPaths64(solution))
	assert.Equal(t, NewRect64(5, 5, 10, 10), Bounds64(solution[0]))
}

func TestRectClipMultiplePaths(t *testing.T) {
	rect := NewRect64(0, 0, 100, 100)
	subject := Paths64{
		{{10, 10}, {20, 10}, {20, 20}, {10, 20}},         // inside
		{{-50, -50}, {-10, -50}, {-10, -10}, {-50, -10}}, // outside
		{{90, 90}, {110, 90}, {110, 110}, {90, 110}},     // overlapping
	}
	solution := RectClip64(rect, subject)
	require.Len(t, solution, 2)
	assert.Equal(t, 100.0+100.0, AreaPaths64(solution))
}

func TestRectClipD(t *testing.T) {
	rect := NewRectD(0, 0, 10, 10)
	subject := PathsD{{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}

	solution := RectClipD(rect, subject, 2)
	require.Len(t, solution, 1)
	assert.InDelta(t, 25.0, AreaPathsD(solution), 1e-6)

	// out-of-range precision is clamped, not rejected
	clamped := RectClipD(rect, subject, 42)
	require.Len(t, clamped, 1)
	assert.InDelta(t, 25.0, AreaPathsD(clamped), 1e-6)
}
