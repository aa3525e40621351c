package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArea64(t *testing.T) {
	square := Path64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.Equal(t, 100.0, Area64(square))

	reversed := Reverse64(square)
	assert.Equal(t, -100.0, Area64(reversed))

	assert.Equal(t, 0.0, Area64(Path64{}))
	assert.Equal(t, 0.0, Area64(Path64{{1, 1}, {5, 5}}))

	triangle := Path64{{0, 0}, {10, 0}, {0, 10}}
	assert.Equal(t, 50.0, Area64(triangle))
}

func TestAreaD(t *testing.T) {
	square := PathD{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.Equal(t, 100.0, AreaD(square))
	assert.Equal(t, 0.0, AreaD(PathD{{0, 0}, {1, 1}}))
}

func TestIsPositive64(t *testing.T) {
	cw := Path64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.True(t, IsPositive64(cw))
	assert.False(t, IsPositive64(Reverse64(cw)))
}

func TestBounds64(t *testing.T) {
	path := Path64{{3, -2}, {-7, 11}, {40, 5}}
	b := Bounds64(path)
	assert.Equal(t, NewRect64(-7, -2, 40, 11), b)
	assert.True(t, b.IsValid())

	empty := Bounds64(Path64{})
	assert.False(t, empty.IsValid())
	assert.True(t, empty.IsEmpty())
}

func TestBoundsPaths64(t *testing.T) {
	paths := Paths64{
		{{0, 0}, {10, 0}},
		{{-5, 20}, {3, 2}},
	}
	assert.Equal(t, NewRect64(-5, 0, 10, 20), BoundsPaths64(paths))
}

func TestRect64Basics(t *testing.T) {
	r := NewRect64(0, 0, 100, 50)
	assert.Equal(t, int64(100), r.Width())
	assert.Equal(t, int64(50), r.Height())
	assert.False(t, r.IsEmpty())
	assert.Equal(t, Point64{50, 25}, r.MidPoint())
	assert.Equal(t, Path64{{0, 0}, {100, 0}, {100, 50}, {0, 50}}, r.AsPath())
	assert.True(t, IsPositive64(r.AsPath()))

	assert.True(t, NewRect64(10, 10, 10, 40).IsEmpty())
	assert.True(t, r.Intersects(NewRect64(90, 40, 200, 60)))
	assert.False(t, r.Intersects(NewRect64(101, 0, 200, 50)))
	assert.True(t, r.ContainsRect(NewRect64(10, 10, 90, 40)))
	assert.False(t, r.ContainsRect(NewRect64(10, 10, 110, 40)))
}

func TestMidPoint64(t *testing.T) {
	assert.Equal(t, Point64{50, 100}, MidPoint64(Point64{0, 0}, Point64{100, 200}))
	assert.Equal(t, PointD{3, 5}, MidPointD(PointD{1, 3}, PointD{5, 7}))
}

func TestPointArithmetic(t *testing.T) {
	p := Point64{10, 20}
	q := Point64{5, 15}
	assert.Equal(t, Point64{15, 35}, p.Add(q))
	assert.Equal(t, Point64{5, 5}, p.Sub(q))
	assert.Equal(t, Point64{-10, -20}, p.Negate())
}

func TestPointInPolygon64(t *testing.T) {
	square := Path64{{0, 0}, {100, 0}, {100, 100}, {0, 100}}

	assert.Equal(t, PointInside, PointInPolygon64(Point64{50, 50}, square))
	assert.Equal(t, PointOutside, PointInPolygon64(Point64{150, 50}, square))
	assert.Equal(t, PointOutside, PointInPolygon64(Point64{-1, -1}, square))
	assert.Equal(t, PointOnEdge, PointInPolygon64(Point64{0, 50}, square))
	assert.Equal(t, PointOnEdge, PointInPolygon64(Point64{100, 100}, square))
	assert.Equal(t, PointOnEdge, PointInPolygon64(Point64{50, 0}, square))

	// degenerate polygon
	assert.Equal(t, PointOutside, PointInPolygon64(Point64{0, 0}, Path64{{1, 1}, {2, 2}}))

	triangle := Path64{{0, 0}, {10, 0}, {0, 10}}
	assert.Equal(t, PointInside, PointInPolygon64(Point64{2, 2}, triangle))
	assert.Equal(t, PointOutside, PointInPolygon64(Point64{9, 9}, triangle))
	assert.Equal(t, PointOnEdge, PointInPolygon64(Point64{5, 5}, triangle))
}

func TestPointInPolygonD(t *testing.T) {
	square := PathD{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	assert.Equal(t, PointInside, PointInPolygonD(PointD{0.5, 0.5}, square, 2))
	assert.Equal(t, PointOutside, PointInPolygonD(PointD{1.5, 0.5}, square, 2))

	// out-of-range precision is clamped, not rejected
	assert.Equal(t, PointInside, PointInPolygonD(PointD{0.5, 0.5}, square, 9))
}

func TestIsCollinear(t *testing.T) {
	assert.True(t, IsCollinear(Point64{0, 0}, Point64{5, 5}, Point64{10, 10}))
	assert.False(t, IsCollinear(Point64{0, 0}, Point64{5, 5}, Point64{10, 11}))

	// extreme coordinates overflow a naive int64 cross product
	assert.True(t, IsCollinear(
		Point64{MinCoord, MinCoord},
		Point64{0, 0},
		Point64{MaxCoord, MaxCoord}))
	assert.False(t, IsCollinear(
		Point64{MinCoord, MinCoord},
		Point64{0, 1},
		Point64{MaxCoord, MaxCoord}))
}

func TestCrossDotProducts(t *testing.T) {
	assert.Equal(t, 1.0, CrossProduct(Point64{0, 0}, Point64{1, 0}, Point64{1, 1}))
	assert.Equal(t, -1.0, CrossProduct(Point64{0, 0}, Point64{1, 0}, Point64{1, -1}))
	assert.Equal(t, 0.0, CrossProduct(Point64{0, 0}, Point64{1, 1}, Point64{2, 2}))

	assert.Equal(t, 0.0, DotProduct(Point64{0, 0}, Point64{1, 0}, Point64{1, 1}))
	assert.Equal(t, 1.0, DotProduct(Point64{0, 0}, Point64{1, 0}, Point64{2, 0}))
	assert.Equal(t, -1.0, DotProduct(Point64{0, 0}, Point64{1, 0}, Point64{0, 0}))

	assert.Equal(t, 10.0, DotProductVecD(PointD{3, 4}, PointD{2, 1}))
	assert.Equal(t, 0.0, DotProductVecD(PointD{1, 0}, PointD{0, 1}))
}

func TestPerpendicDistFromLineSqrd(t *testing.T) {
	assert.Equal(t, 25.0, PerpendicDistFromLineSqrd(Point64{0, 5}, Point64{-10, 0}, Point64{10, 0}))
	assert.Equal(t, 0.0, PerpendicDistFromLineSqrd(Point64{5, 0}, Point64{-10, 0}, Point64{10, 0}))
	// degenerate line
	assert.Equal(t, 0.0, PerpendicDistFromLineSqrd(Point64{3, 4}, Point64{1, 1}, Point64{1, 1}))
}

func TestSegmentIntersectPt(t *testing.T) {
	ip, ok := getSegmentIntersectPt(Point64{0, 0}, Point64{10, 10}, Point64{0, 10}, Point64{10, 0})
	require.True(t, ok)
	assert.Equal(t, Point64{5, 5}, ip)

	// parallel segments
	_, ok = getSegmentIntersectPt(Point64{0, 0}, Point64{10, 0}, Point64{0, 5}, Point64{10, 5})
	assert.False(t, ok)
}
