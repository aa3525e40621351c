package clipper

import "math"

// ==============================================================================
// Areas, Orientation and Bounds
// ==============================================================================

// Area64 calculates the signed area of a path using the shoelace formula.
// Returns 0 for paths with fewer than 3 points. With the top-left origin
// (y-down) convention, a clockwise-on-screen path has positive area.
func Area64(path Path64) float64 {
	if len(path) < 3 {
		return 0
	}
	return Area128(path).ToFloat64() * 0.5
}

// AreaD calculates the signed area of a float64 path.
func AreaD(path PathD) float64 {
	if len(path) < 3 {
		return 0
	}
	a := 0.0
	prev := len(path) - 1
	for i := range path {
		a += (path[prev].Y + path[i].Y) * (path[prev].X - path[i].X)
		prev = i
	}
	return a * 0.5
}

// AreaPaths64 sums the signed areas of all paths.
func AreaPaths64(paths Paths64) float64 {
	a := 0.0
	for _, path := range paths {
		a += Area64(path)
	}
	return a
}

// AreaPathsD sums the signed areas of all float64 paths.
func AreaPathsD(paths PathsD) float64 {
	a := 0.0
	for _, path := range paths {
		a += AreaD(path)
	}
	return a
}

// IsPositive64 reports whether the path has non-negative signed area.
func IsPositive64(path Path64) bool {
	return Area64(path) >= 0
}

// IsPositiveD reports whether the float64 path has non-negative signed area.
func IsPositiveD(path PathD) bool {
	return AreaD(path) >= 0
}

// Bounds64 calculates the tight bounding rectangle of a path.
// Empty input yields the invalid-rectangle sentinel.
func Bounds64(path Path64) Rect64 {
	bounds := InvalidRect64()
	for _, pt := range path {
		if pt.X < bounds.Left {
			bounds.Left = pt.X
		}
		if pt.X > bounds.Right {
			bounds.Right = pt.X
		}
		if pt.Y < bounds.Top {
			bounds.Top = pt.Y
		}
		if pt.Y > bounds.Bottom {
			bounds.Bottom = pt.Y
		}
	}
	return bounds
}

// BoundsPaths64 calculates the tight bounding rectangle of multiple paths.
func BoundsPaths64(paths Paths64) Rect64 {
	bounds := InvalidRect64()
	for _, path := range paths {
		for _, pt := range path {
			if pt.X < bounds.Left {
				bounds.Left = pt.X
			}
			if pt.X > bounds.Right {
				bounds.Right = pt.X
			}
			if pt.Y < bounds.Top {
				bounds.Top = pt.Y
			}
			if pt.Y > bounds.Bottom {
				bounds.Bottom = pt.Y
			}
		}
	}
	return bounds
}

// BoundsD calculates the tight bounding rectangle of a float64 path.
func BoundsD(path PathD) RectD {
	bounds := InvalidRectD()
	for _, pt := range path {
		if pt.X < bounds.Left {
			bounds.Left = pt.X
		}
		if pt.X > bounds.Right {
			bounds.Right = pt.X
		}
		if pt.Y < bounds.Top {
			bounds.Top = pt.Y
		}
		if pt.Y > bounds.Bottom {
			bounds.Bottom = pt.Y
		}
	}
	return bounds
}

// BoundsPathsD calculates the tight bounding rectangle of float64 paths.
func BoundsPathsD(paths PathsD) RectD {
	bounds := InvalidRectD()
	for _, path := range paths {
		for _, pt := range path {
			if pt.X < bounds.Left {
				bounds.Left = pt.X
			}
			if pt.X > bounds.Right {
				bounds.Right = pt.X
			}
			if pt.Y < bounds.Top {
				bounds.Top = pt.Y
			}
			if pt.Y > bounds.Bottom {
				bounds.Bottom = pt.Y
			}
		}
	}
	return bounds
}

// MidPoint64 returns the midpoint of two points (integer division).
func MidPoint64(p1, p2 Point64) Point64 {
	return Point64{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// MidPointD returns the midpoint of two float64 points.
func MidPointD(p1, p2 PointD) PointD {
	return PointD{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// ==============================================================================
// Cross and Dot Products
// ==============================================================================

// CrossProduct calculates the cross product of vectors (pt2-pt1) and
// (pt3-pt2) in float64. Near-zero results must not be used for exact
// orientation decisions; use IsCollinear for those.
func CrossProduct(pt1, pt2, pt3 Point64) float64 {
	return (float64(pt2.X)-float64(pt1.X))*(float64(pt3.Y)-float64(pt2.Y)) -
		(float64(pt2.Y)-float64(pt1.Y))*(float64(pt3.X)-float64(pt2.X))
}

// CrossProductD is the float64-point variant of CrossProduct.
func CrossProductD(pt1, pt2, pt3 PointD) float64 {
	return (pt2.X-pt1.X)*(pt3.Y-pt2.Y) - (pt2.Y-pt1.Y)*(pt3.X-pt2.X)
}

// CrossProductVecD calculates the cross product of two vectors.
func CrossProductVecD(vec1, vec2 PointD) float64 {
	return vec1.Y*vec2.X - vec2.Y*vec1.X
}

// DotProduct calculates the dot product of vectors (pt2-pt1) and (pt3-pt2).
func DotProduct(pt1, pt2, pt3 Point64) float64 {
	return (float64(pt2.X)-float64(pt1.X))*(float64(pt3.X)-float64(pt2.X)) +
		(float64(pt2.Y)-float64(pt1.Y))*(float64(pt3.Y)-float64(pt2.Y))
}

// DotProductVecD calculates the dot product of two vectors.
func DotProductVecD(vec1, vec2 PointD) float64 {
	return vec1.X*vec2.X + vec1.Y*vec2.Y
}

// IsCollinear reports whether three points are exactly collinear. The test
// compares the two cross-product terms as 128-bit products, so it is exact
// at extreme coordinates.
func IsCollinear(pt1, sharedPt, pt2 Point64) bool {
	a := sharedPt.X - pt1.X
	b := pt2.Y - sharedPt.Y
	c := sharedPt.Y - pt1.Y
	d := pt2.X - sharedPt.X
	return ProductsAreEqual(a, b, c, d)
}

// ==============================================================================
// Distances
// ==============================================================================

func sqr(val float64) float64 { return val * val }

// DistanceSqr returns the squared distance between two points in float64.
func DistanceSqr(pt1, pt2 Point64) float64 {
	return sqr(float64(pt1.X)-float64(pt2.X)) + sqr(float64(pt1.Y)-float64(pt2.Y))
}

// DistanceSqrD returns the squared distance between two float64 points.
func DistanceSqrD(pt1, pt2 PointD) float64 {
	return sqr(pt1.X-pt2.X) + sqr(pt1.Y-pt2.Y)
}

// PerpendicDistFromLineSqrd returns the squared perpendicular distance of
// pt from the infinite line through line1 and line2.
func PerpendicDistFromLineSqrd(pt, line1, line2 Point64) float64 {
	a := float64(pt.X) - float64(line1.X)
	b := float64(pt.Y) - float64(line1.Y)
	c := float64(line2.X) - float64(line1.X)
	d := float64(line2.Y) - float64(line1.Y)
	if c == 0 && d == 0 {
		return 0
	}
	return sqr(a*d-c*b) / (c*c + d*d)
}

// PerpendicDistFromLineSqrdD is the float64-point variant.
func PerpendicDistFromLineSqrdD(pt, line1, line2 PointD) float64 {
	a := pt.X - line1.X
	b := pt.Y - line1.Y
	c := line2.X - line1.X
	d := line2.Y - line1.Y
	if c == 0 && d == 0 {
		return 0
	}
	return sqr(a*d-c*b) / (c*c + d*d)
}

// ==============================================================================
// Segment Intersection
// ==============================================================================

// getSegmentIntersectPt returns the intersection of segments (p1,p2) and
// (p3,p4), clamped to segment (p1,p2) when the parametric solution falls
// outside it. Returns false for parallel segments.
func getSegmentIntersectPt(p1, p2, p3, p4 Point64) (Point64, bool) {
	dx1 := float64(p2.X - p1.X)
	dy1 := float64(p2.Y - p1.Y)
	dx2 := float64(p4.X - p3.X)
	dy2 := float64(p4.Y - p3.Y)
	det := dy1*dx2 - dy2*dx1
	if det == 0 {
		return Point64{}, false
	}
	t := (float64(p1.X-p3.X)*dy2 - float64(p1.Y-p3.Y)*dx2) / det
	switch {
	case t <= 0:
		return p1, true
	case t >= 1:
		return p2, true
	default:
		return Point64{
			X: p1.X + int64(math.Round(t*dx1)),
			Y: p1.Y + int64(math.Round(t*dy1)),
		}, true
	}
}

// segsIntersect reports whether two segments properly intersect. When
// inclusive, touching endpoints also count.
func segsIntersect(seg1a, seg1b, seg2a, seg2b Point64, inclusive bool) bool {
	if !inclusive {
		return (CrossProduct(seg1a, seg2a, seg2b)*CrossProduct(seg1b, seg2a, seg2b) < 0) &&
			(CrossProduct(seg2a, seg1a, seg1b)*CrossProduct(seg2b, seg1a, seg1b) < 0)
	}
	res1 := CrossProduct(seg1a, seg2a, seg2b)
	res2 := CrossProduct(seg1b, seg2a, seg2b)
	if res1*res2 > 0 {
		return false
	}
	res3 := CrossProduct(seg2a, seg1a, seg1b)
	res4 := CrossProduct(seg2b, seg1a, seg1b)
	if res3*res4 > 0 {
		return false
	}
	// ensure segments are not collinear but disjoint
	return res1 != 0 || res2 != 0 || res3 != 0 || res4 != 0
}

// ==============================================================================
// Point In Polygon
// ==============================================================================

// PointInPolygon64 determines whether pt is inside, outside or on the edge
// of polygon, using crossing parity with explicit on-edge detection.
func PointInPolygon64(pt Point64, polygon Path64) PointInPolygonResult {
	length := len(polygon)
	if length < 3 {
		return PointOutside
	}

	start := 0
	for start < length && polygon[start].Y == pt.Y {
		start++
	}
	if start == length {
		return PointOutside
	}

	isAbove := polygon[start].Y < pt.Y
	startingAbove := isAbove
	val := 0
	i := start + 1
	end := length

	for {
		if i == end {
			if end == 0 || start == 0 {
				break
			}
			end = start
			i = 0
		}

		if isAbove {
			for i < end && polygon[i].Y < pt.Y {
				i++
			}
		} else {
			for i < end && polygon[i].Y > pt.Y {
				i++
			}
		}
		if i == end {
			continue
		}

		curr := polygon[i]
		var prev Point64
		if i > 0 {
			prev = polygon[i-1]
		} else {
			prev = polygon[length-1]
		}

		if curr.Y == pt.Y {
			if curr.X == pt.X ||
				(curr.Y == prev.Y && (pt.X < prev.X) != (pt.X < curr.X)) {
				return PointOnEdge
			}
			i++
			if i == start {
				break
			}
			continue
		}

		if pt.X < curr.X && pt.X < prev.X {
			// edge entirely to the right of pt; no crossing
		} else if pt.X > prev.X && pt.X > curr.X {
			val = 1 - val
		} else {
			d := CrossProduct(prev, curr, pt)
			if d == 0 {
				return PointOnEdge
			}
			if (d < 0) == isAbove {
				val = 1 - val
			}
		}
		isAbove = !isAbove
		i++
	}

	if isAbove != startingAbove {
		if i == length {
			i = 0
		}
		var d float64
		if i == 0 {
			d = CrossProduct(polygon[length-1], polygon[0], pt)
		} else {
			d = CrossProduct(polygon[i-1], polygon[i], pt)
		}
		if d == 0 {
			return PointOnEdge
		}
		if (d < 0) == isAbove {
			val = 1 - val
		}
	}

	if val == 0 {
		return PointOutside
	}
	return PointInside
}

// PointInPolygonD is the float64 overload of PointInPolygon64; coordinates
// are scaled by 10^precision and rounded before the integer test. An
// out-of-range precision is clamped (non-fatal).
func PointInPolygonD(pt PointD, polygon PathD, precision int) PointInPolygonResult {
	CheckPrecisionRange(&precision, nil)
	scale := math.Pow(10, float64(precision))
	p := Point64{X: checkCastInt64(pt.X * scale), Y: checkCastInt64(pt.Y * scale)}
	path := scalePathDTo64(polygon, scale)
	return PointInPolygon64(p, path)
}

// path1ContainsPath2 reports whether path2 lies (mostly) inside path1.
// Several vertices are tested because path2's vertices may touch path1's
// edges.
func path1ContainsPath2(path1, path2 Path64) bool {
	ioCount := 0
	for _, pt := range path2 {
		switch PointInPolygon64(pt, path1) {
		case PointOutside:
			ioCount++
		case PointInside:
			ioCount--
		}
		if ioCount > 1 || ioCount < -1 {
			break
		}
	}
	return ioCount <= 0
}
