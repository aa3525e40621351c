package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyPath64RemovesJitter(t *testing.T) {
	// a square with tiny perturbations along its bottom edge
	path := Path64{
		{0, 0}, {25, 1}, {50, 0}, {75, 1}, {100, 0},
		{100, 100}, {0, 100},
	}
	simplified := SimplifyPath64(path, 2.5, true)
	assert.Len(t, simplified, 4)
	assert.InDelta(t, 10000.0, Area64(simplified), 150.0)
}

func TestSimplifyPath64KeepsSignificantVertices(t *testing.T) {
	path := Path64{{0, 0}, {50, 40}, {100, 0}, {100, 100}, {0, 100}}
	simplified := SimplifyPath64(path, 2.0, true)
	assert.Equal(t, path, simplified)
}

func TestSimplifyIdempotence(t *testing.T) {
	paths := []Path64{
		{{0, 0}, {25, 1}, {50, 0}, {75, 1}, {100, 0}, {100, 100}, {0, 100}},
		{{0, 0}, {10, 1}, {20, -1}, {30, 2}, {40, 0}, {50, 1}, {60, 0}},
		{{0, 0}, {100, 0}, {100, 100}, {0, 100}},
	}
	for _, p := range paths {
		for _, eps := range []float64{0.5, 2.0, 5.0} {
			once := SimplifyPath64(p, eps, true)
			twice := SimplifyPath64(once, eps, true)
			assert.Equal(t, once, twice)
		}
	}
}

func TestSimplifyOpenPathKeepsEnds(t *testing.T) {
	path := Path64{{0, 0}, {10, 1}, {20, 0}, {30, 1}, {40, 0}}
	simplified := SimplifyPath64(path, 2.0, false)
	require.GreaterOrEqual(t, len(simplified), 2)
	assert.Equal(t, Point64{0, 0}, simplified[0])
	assert.Equal(t, Point64{40, 0}, simplified[len(simplified)-1])
}

func TestSimplifyPaths64(t *testing.T) {
	paths := Paths64{
		{{0, 0}, {25, 1}, {50, 0}, {75, 1}, {100, 0}, {100, 100}, {0, 100}},
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
	}
	simplified := SimplifyPaths64(paths, 2.5, true)
	require.Len(t, simplified, 2)
	assert.Len(t, simplified[0], 4)
	assert.Len(t, simplified[1], 4)
}

func TestSimplifyPathD(t *testing.T) {
	path := PathD{{0, 0}, {0.25, 0.01}, {0.5, 0}, {0.75, 0.01}, {1, 0}, {1, 1}, {0, 1}}
	simplified := SimplifyPathD(path, 0.025, true)
	assert.Len(t, simplified, 4)
}

func TestRamerDouglasPeucker64(t *testing.T) {
	// collinear middle points collapse, corners survive
	path := Path64{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {30, 30}, {15, 16}, {0, 30}}
	reduced := RamerDouglasPeucker64(path, 2.0)
	assert.Equal(t, Path64{{0, 0}, {30, 0}, {30, 30}, {15, 16}, {0, 30}}, reduced)
}

func TestRamerDouglasPeuckerKeepsEndpoints(t *testing.T) {
	path := Path64{{0, 0}, {1, 1}, {2, -1}, {3, 1}, {4, 0}, {5, 0}}
	reduced := RamerDouglasPeucker64(path, 10.0)
	require.GreaterOrEqual(t, len(reduced), 2)
	assert.Equal(t, Point64{0, 0}, reduced[0])
	assert.Equal(t, Point64{5, 0}, reduced[len(reduced)-1])
}

func TestRamerDouglasPeuckerShortPathUnchanged(t *testing.T) {
	path := Path64{{0, 0}, {5, 5}, {10, 0}, {5, -5}}
	assert.Equal(t, path, RamerDouglasPeucker64(path, 1.0))
}

func TestRamerDouglasPeuckerD(t *testing.T) {
	path := PathD{{0, 0}, {1, 0.01}, {2, 0}, {3, 0.01}, {4, 0}, {4, 4}, {0, 4}}
	reduced := RamerDouglasPeuckerD(path, 0.5)
	assert.Less(t, len(reduced), len(path))
	assert.Equal(t, PointD{0, 0}, reduced[0])
}
