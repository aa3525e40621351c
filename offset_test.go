package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSquare100() Paths64 {
	return Paths64{{{0, 0}, {100, 0}, {100, 100}, {0, 100}}}
}

func TestInflateSquareMiter(t *testing.T) {
	solution, err := InflatePaths64(testSquare100(), 10, JoinMiter, EndPolygon)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	// right-angle corners stay sharp under the default miter limit
	assert.InDelta(t, 14400.0, AreaPaths64(solution), 5.0)

	bounds := BoundsPaths64(solution)
	assert.Equal(t, NewRect64(-10, -10, 110, 110), bounds)
}

func TestInflateSquareBevel(t *testing.T) {
	solution, err := InflatePaths64(testSquare100(), 10, JoinBevel, EndPolygon)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	// each corner loses half of a 10x10 square
	assert.InDelta(t, 14200.0, AreaPaths64(solution), 5.0)
}

func TestInflateSquareRound(t *testing.T) {
	solution, err := InflatePaths64(testSquare100(), 10, JoinRound, EndPolygon)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	area := AreaPaths64(solution)
	// rounded corners approximate pi*delta^2 in total
	assert.InDelta(t, 10000.0+4000.0+314.16, area, 25.0)
	// round output has more vertices than the square-join equivalent
	squared, err := InflatePaths64(testSquare100(), 10, JoinSquare, EndPolygon)
	require.NoError(t, err)
	assert.Greater(t, len(solution[0]), len(squared[0]))
}

func TestDeflateSquare(t *testing.T) {
	solution, err := InflatePaths64(testSquare100(), -10, JoinMiter, EndPolygon)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	assert.InDelta(t, 6400.0, AreaPaths64(solution), 5.0)
}

func TestDeflateToNothing(t *testing.T) {
	solution, err := InflatePaths64(testSquare100(), -60, JoinMiter, EndPolygon)
	require.NoError(t, err)
	assert.Empty(t, solution)
}

func TestInflateReversedSquare(t *testing.T) {
	// a negative-orientation polygon inflates outward too, keeping its
	// orientation in the result
	reversed := Paths64{Reverse64(testSquare100()[0])}
	solution, err := InflatePaths64(reversed, 10, JoinMiter, EndPolygon)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	assert.False(t, IsPositive64(solution[0]))
	assert.InDelta(t, -14400.0, AreaPaths64(solution), 5.0)
}

// For convex polygons inflation is monotonic in delta.
func TestInflateMonotonicity(t *testing.T) {
	subject := Paths64{{{0, 0}, {80, 20}, {100, 100}, {10, 90}}}
	prev := AreaPaths64(subject)
	for _, delta := range []float64{1, 2, 5, 10, 20} {
		solution, err := InflatePaths64(subject, delta, JoinRound, EndPolygon)
		require.NoError(t, err)
		area := AreaPaths64(solution)
		assert.GreaterOrEqual(t, area, prev)
		prev = area
	}
}

func TestInflateOpenButt(t *testing.T) {
	line := Paths64{{{0, 0}, {100, 0}}}
	solution, err := InflatePaths64(line, 10, JoinSquare, EndButt)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	assert.InDelta(t, 2000.0, AreaPaths64(solution), 10.0)
}

func TestInflateOpenSquare(t *testing.T) {
	line := Paths64{{{0, 0}, {100, 0}}}
	solution, err := InflatePaths64(line, 10, JoinSquare, EndSquare)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	assert.InDelta(t, 2400.0, AreaPaths64(solution), 10.0)
	bounds := BoundsPaths64(solution)
	assert.Equal(t, NewRect64(-10, -10, 110, 10), bounds)
}

func TestInflateOpenRound(t *testing.T) {
	line := Paths64{{{0, 0}, {100, 0}}}
	solution, err := InflatePaths64(line, 10, JoinRound, EndRound)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	// a stadium shape: rectangle plus a full disc of end caps
	assert.InDelta(t, 2000.0+314.16, AreaPaths64(solution), 25.0)
}

func TestInflateJoinedLine(t *testing.T) {
	ring := Paths64{{{0, 0}, {100, 0}, {100, 100}, {0, 100}}}
	solution, err := InflatePaths64(ring, 5, JoinMiter, EndJoined)
	require.NoError(t, err)
	// both sides of the closed line are offset, leaving a frame
	require.Len(t, solution, 2)
	outer := AreaPaths64(solution)
	// outer ring area minus inner hole
	assert.InDelta(t, 110*110-90*90, outer, 10.0)
}

func TestInflateSinglePoint(t *testing.T) {
	pt := Paths64{{{50, 50}}}
	round, err := InflatePaths64(pt, 10, JoinRound, EndRound)
	require.NoError(t, err)
	require.Len(t, round, 1)
	assert.InDelta(t, 314.16, AreaPaths64(round), 15.0)

	square, err := InflatePaths64(pt, 10, JoinSquare, EndSquare)
	require.NoError(t, err)
	require.Len(t, square, 1)
	assert.InDelta(t, 400.0, AreaPaths64(square), 1.0)
}

func TestInflateValidation(t *testing.T) {
	_, err := InflatePaths64(testSquare100(), 10, JoinType(99), EndPolygon)
	assert.ErrorIs(t, err, ErrInvalidJoinType)

	_, err = InflatePaths64(testSquare100(), 10, JoinMiter, EndType(99))
	assert.ErrorIs(t, err, ErrInvalidEndType)

	_, err = InflatePaths64(testSquare100(), 10, JoinMiter, EndPolygon,
		OffsetOptions{MiterLimit: -1})
	assert.ErrorIs(t, err, ErrInvalidOptions)

	empty, err := InflatePaths64(nil, 10, JoinMiter, EndPolygon)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInflatePathsD(t *testing.T) {
	subject := PathsD{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	solution, err := InflatePathsD(subject, 1, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	assert.InDelta(t, 144.0, AreaPathsD(solution), 0.5)

	// out-of-range precision is clamped, not rejected
	clamped, err := InflatePathsD(subject, 1, JoinMiter, EndPolygon, 11)
	require.NoError(t, err)
	assert.InDelta(t, 144.0, AreaPathsD(clamped), 0.5)
}

func TestOffsetMiterLimitFallback(t *testing.T) {
	// a sharp spike: with a tight miter limit the corner is squared off,
	// with a generous one it extends further
	spike := Paths64{{{0, 0}, {100, 0}, {52, 10}, {50, 100}, {48, 10}}}

	tight, err := InflatePaths64(spike, 5, JoinMiter, EndPolygon,
		OffsetOptions{MiterLimit: 2})
	require.NoError(t, err)
	generous, err := InflatePaths64(spike, 5, JoinMiter, EndPolygon,
		OffsetOptions{MiterLimit: 20})
	require.NoError(t, err)

	tightBounds := BoundsPaths64(tight)
	generousBounds := BoundsPaths64(generous)
	assert.GreaterOrEqual(t, generousBounds.Bottom, tightBounds.Bottom)
}

func BenchmarkInflatePaths64(b *testing.B) {
	subject := Paths64{StarPolygon64(Point64{500, 500}, 400, 150, 9)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = InflatePaths64(subject, 10, JoinRound, EndPolygon)
	}
}
