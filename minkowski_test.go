package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinkowskiSumOpenPath(t *testing.T) {
	pattern := Path64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	path := Path64{{0, 0}, {10, 0}}

	solution, err := MinkowskiSum64(pattern, path, false)
	require.NoError(t, err)
	require.NotEmpty(t, solution)
	// a 2x2 square swept along a length-10 segment: 12 x 2 rectangle
	assert.InDelta(t, 24.0, AreaPaths64(solution), 0.01)
	assert.Equal(t, NewRect64(-1, -1, 11, 1), BoundsPaths64(solution))
}

func TestMinkowskiSumClosedPath(t *testing.T) {
	pattern := Path64{{-2, -2}, {2, -2}, {2, 2}, {-2, 2}}
	ring := Path64{{0, 0}, {100, 0}, {100, 100}, {0, 100}}

	solution, err := MinkowskiSum64(pattern, ring, true)
	require.NoError(t, err)
	require.NotEmpty(t, solution)
	// the swept band covers a frame around the ring's boundary
	assert.Equal(t, NewRect64(-2, -2, 102, 102), BoundsPaths64(solution))
	// frame area: outer 104^2 minus inner 96^2
	assert.InDelta(t, 104.0*104-96.0*96, AreaPaths64(solution), 1.0)
}

func TestMinkowskiDiff(t *testing.T) {
	pattern := Path64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	path := Path64{{0, 0}, {10, 0}}

	sum, err := MinkowskiSum64(pattern, path, false)
	require.NoError(t, err)
	diff, err := MinkowskiDiff64(pattern, path, false)
	require.NoError(t, err)
	// the pattern is symmetric about the origin, so sum == diff
	assert.InDelta(t, AreaPaths64(sum), AreaPaths64(diff), 0.01)
}

func TestMinkowskiEmptyInputs(t *testing.T) {
	_, err := MinkowskiSum64(nil, Path64{{0, 0}}, false)
	assert.ErrorIs(t, err, ErrEmptyPath)
	_, err = MinkowskiDiff64(Path64{{0, 0}}, nil, true)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestMinkowskiSumD(t *testing.T) {
	pattern := PathD{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	path := PathD{{0, 0}, {5, 0}}

	solution, err := MinkowskiSumD(pattern, path, false, 2)
	require.NoError(t, err)
	require.NotEmpty(t, solution)
	assert.InDelta(t, 6.0, AreaPathsD(solution), 0.05)

	// out-of-range precision is clamped, not rejected
	clamped, err := MinkowskiSumD(pattern, path, false, 9)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, AreaPathsD(clamped), 0.05)
}
