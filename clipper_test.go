package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect64Rectangles(t *testing.T) {
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	clip := Paths64{{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}

	solution, err := Intersect64(subject, clip, NonZero)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	assert.Equal(t, 25.0, AreaPaths64(solution))
	assert.True(t, IsPositive64(solution[0]))
}

func TestUnion64Rectangles(t *testing.T) {
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	clip := Paths64{{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}

	solution, err := Union64(subject, clip, NonZero)
	require.NoError(t, err)
	require.Len(t, solution, 1)
	// 100 + 100 - 25 overlap
	assert.Equal(t, 175.0, AreaPaths64(solution))
}

func TestDifference64Rectangles(t *testing.T) {
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	clip := Paths64{{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}

	solution, err := Difference64(subject, clip, NonZero)
	require.NoError(t, err)
	require.NotEmpty(t, solution)
	assert.Equal(t, 75.0, AreaPaths64(solution))
}

func TestXor64Rectangles(t *testing.T) {
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	clip := Paths64{{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}

	solution, err := Xor64(subject, clip, NonZero)
	require.NoError(t, err)
	require.NotEmpty(t, solution)
	assert.Equal(t, 150.0, AreaPaths64(solution))
}

func TestUnion64DisjointRectangles(t *testing.T) {
	subject := Paths64{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{20, 0}, {30, 0}, {30, 10}, {20, 10}},
	}
	solution, err := Union64(subject, nil, NonZero)
	require.NoError(t, err)
	assert.Len(t, solution, 2)
	assert.Equal(t, 200.0, AreaPaths64(solution))
}

func TestIntersect64Disjoint(t *testing.T) {
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	clip := Paths64{{{20, 20}, {30, 20}, {30, 30}, {20, 30}}}

	solution, err := Intersect64(subject, clip, NonZero)
	require.NoError(t, err)
	assert.Empty(t, solution)
}

// Difference of a polygon with itself must be empty under both common
// fill rules.
func TestDifference64Nullity(t *testing.T) {
	subjects := []Paths64{
		{{{0, 0}, {100, 0}, {100, 100}, {0, 100}}},
		{{{0, 0}, {50, 20}, {100, 0}, {80, 80}, {20, 90}}},
	}
	for _, subject := range subjects {
		for _, fr := range []FillRule{EvenOdd, NonZero} {
			solution, err := Difference64(subject, subject, fr)
			require.NoError(t, err)
			assert.Empty(t, solution)
		}
	}
}

// The union's area is never less than the largest component's area, and is
// strictly smaller than the sum when components overlap.
func TestUnion64AreaBound(t *testing.T) {
	a := Path64{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	b := Path64{{50, 50}, {150, 50}, {150, 150}, {50, 150}}

	solution, err := Union64(Paths64{a, b}, nil, NonZero)
	require.NoError(t, err)
	total := AreaPaths64(solution)
	assert.GreaterOrEqual(t, total, Area64(a))
	assert.GreaterOrEqual(t, total, Area64(b))
	assert.Less(t, total, Area64(a)+Area64(b))
	assert.Equal(t, 17500.0, total)
}

// Two self-intersecting stars under NonZero: the intersection must be
// non-empty and no larger than either resolved fill.
func TestIntersectStars(t *testing.T) {
	subject := Paths64{{{200, 100}, {20, 158}, {130, 4}, {130, 196}, {20, 42}}}
	clip := Paths64{{{196, 126}, {8, 136}, {154, 16}, {104, 200}, {38, 24}}}

	solution, err := Intersect64(subject, clip, NonZero)
	require.NoError(t, err)
	require.NotEmpty(t, solution)

	area := AreaPaths64(solution)
	assert.Greater(t, area, 0.0)

	subjFill, err := Union64(subject, nil, NonZero)
	require.NoError(t, err)
	clipFill, err := Union64(clip, nil, NonZero)
	require.NoError(t, err)
	assert.LessOrEqual(t, area, AreaPaths64(subjFill))
	assert.LessOrEqual(t, area, AreaPaths64(clipFill))
}

func TestUnion64SelfIntersectingEvenOddVsNonZero(t *testing.T) {
	// a five-point star: NonZero fills the core, EvenOdd leaves it empty
	star := Paths64{{{200, 100}, {20, 158}, {130, 4}, {130, 196}, {20, 42}}}

	nonZero, err := Union64(star, nil, NonZero)
	require.NoError(t, err)
	evenOdd, err := Union64(star, nil, EvenOdd)
	require.NoError(t, err)

	require.NotEmpty(t, nonZero)
	require.NotEmpty(t, evenOdd)
	assert.Greater(t, AreaPaths64(nonZero), AreaPaths64(evenOdd))
}

func TestBooleanOp64Validation(t *testing.T) {
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	_, _, err := BooleanOp64(ClipType(99), NonZero, subject, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidClipType)

	_, _, err = BooleanOp64(Union, FillRule(99), subject, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidFillRule)
}

func TestBooleanOp64RangeError(t *testing.T) {
	bad := Paths64{{{0, 0}, {MaxCoord + 1, 0}, {10, 10}}}
	_, _, err := BooleanOp64(Union, NonZero, bad, nil, nil)
	assert.ErrorIs(t, err, ErrRange)
}

func TestBooleanOp64NoClip(t *testing.T) {
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	solution, solutionOpen, err := BooleanOp64(NoClip, NonZero, subject, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, solution)
	assert.Empty(t, solutionOpen)
}

func TestBooleanOp64EmptyInputs(t *testing.T) {
	solution, solutionOpen, err := BooleanOp64(Union, NonZero, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, solution)
	assert.Empty(t, solutionOpen)
}

func TestOpenPathClipping(t *testing.T) {
	clip := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	openSubject := Paths64{{{5, -5}, {5, 15}}}

	solution, solutionOpen, err := BooleanOp64(Intersection, NonZero, nil, openSubject, clip)
	require.NoError(t, err)
	assert.Empty(t, solution)
	require.Len(t, solutionOpen, 1)
	require.Len(t, solutionOpen[0], 2)

	got := map[Point64]bool{}
	for _, pt := range solutionOpen[0] {
		got[pt] = true
	}
	assert.True(t, got[Point64{5, 0}])
	assert.True(t, got[Point64{5, 10}])
}

func TestOpenPathOutsideClip(t *testing.T) {
	clip := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	openSubject := Paths64{{{20, 20}, {30, 30}}}

	_, solutionOpen, err := BooleanOp64(Intersection, NonZero, nil, openSubject, clip)
	require.NoError(t, err)
	assert.Empty(t, solutionOpen)
}

func TestClipperReuse(t *testing.T) {
	c := NewClipper64()
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	clip := Paths64{{{5, 0}, {15, 0}, {15, 10}, {5, 10}}}

	require.NoError(t, c.AddSubject(subject))
	require.NoError(t, c.AddClip(clip))
	var solution Paths64
	require.True(t, c.Execute(Intersection, NonZero, &solution, nil))
	assert.Equal(t, 50.0, AreaPaths64(solution))

	// the same inputs can be executed again after the first run
	var second Paths64
	require.True(t, c.Execute(Union, NonZero, &second, nil))
	assert.Equal(t, 150.0, AreaPaths64(second))

	c.Clear()
	var third Paths64
	require.True(t, c.Execute(Union, NonZero, &third, nil))
	assert.Empty(t, third)
}

func TestPreserveCollinear(t *testing.T) {
	// a square with one collinear midpoint on its bottom edge
	subject := Paths64{{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}}

	c := NewClipper64()
	require.NoError(t, c.AddSubject(subject))
	var kept Paths64
	require.True(t, c.Execute(Union, NonZero, &kept, nil))
	require.Len(t, kept, 1)
	assert.Len(t, kept[0], 5)

	c2 := NewClipper64()
	c2.PreserveCollinear = false
	require.NoError(t, c2.AddSubject(subject))
	var stripped Paths64
	require.True(t, c2.Execute(Union, NonZero, &stripped, nil))
	require.Len(t, stripped, 1)
	assert.Len(t, stripped[0], 4)
}

func TestReverseSolution(t *testing.T) {
	subject := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	c := NewClipper64()
	c.ReverseSolution = true
	require.NoError(t, c.AddSubject(subject))
	var solution Paths64
	require.True(t, c.Execute(Union, NonZero, &solution, nil))
	require.Len(t, solution, 1)
	assert.False(t, IsPositive64(solution[0]))
	assert.Equal(t, -100.0, AreaPaths64(solution))
}

func TestPositiveAndNegativeFillRules(t *testing.T) {
	cw := Paths64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}  // positive area
	ccw := Paths64{{{0, 0}, {0, 10}, {10, 10}, {10, 0}}} // negative area

	pos, err := Union64(cw, nil, Positive)
	require.NoError(t, err)
	assert.Equal(t, 100.0, AreaPaths64(pos))

	posEmpty, err := Union64(ccw, nil, Positive)
	require.NoError(t, err)
	assert.Empty(t, posEmpty)

	neg, err := Union64(ccw, nil, Negative)
	require.NoError(t, err)
	assert.Equal(t, 100.0, AreaPaths64(neg))
}

func BenchmarkIntersect64(b *testing.B) {
	subject := Paths64{StarPolygon64(Point64{500, 500}, 400, 150, 7)}
	clip := Paths64{Ellipse64(Point64{500, 500}, 350, 350, 0)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Intersect64(subject, clip, NonZero)
	}
}
