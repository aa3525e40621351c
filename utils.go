package clipper

import "math"

// Path construction, scaling and transformation helpers shared by the
// public façade and the decimal wrapper.

// MakePath64 builds a path from interleaved x,y coordinate values.
//
// Possible errors: ErrNonPair (odd number of values)
func MakePath64(values ...int64) (Path64, error) {
	if len(values)%2 != 0 {
		return nil, ErrNonPair
	}
	path := make(Path64, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		path = append(path, Point64{X: values[i], Y: values[i+1]})
	}
	return path, nil
}

// MakePathD builds a float64 path from interleaved x,y coordinate values.
//
// Possible errors: ErrNonPair (odd number of values)
func MakePathD(values ...float64) (PathD, error) {
	if len(values)%2 != 0 {
		return nil, ErrNonPair
	}
	path := make(PathD, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		path = append(path, PointD{X: values[i], Y: values[i+1]})
	}
	return path, nil
}

// checkPathRange verifies every coordinate is within the permitted range.
func checkPathRange(path Path64) error {
	for _, pt := range path {
		if pt.X > MaxCoord || pt.X < MinCoord || pt.Y > MaxCoord || pt.Y < MinCoord {
			return ErrRange
		}
	}
	return nil
}

func checkPathsRange(paths Paths64) error {
	for _, path := range paths {
		if err := checkPathRange(path); err != nil {
			return err
		}
	}
	return nil
}

// StripDuplicates removes consecutive duplicate points; for closed paths a
// trailing point equal to the head is also removed.
func StripDuplicates(path Path64, isClosedPath bool) Path64 {
	result := make(Path64, 0, len(path))
	var last Point64
	for i, pt := range path {
		if i == 0 || pt != last {
			result = append(result, pt)
			last = pt
		}
	}
	if isClosedPath {
		for len(result) > 1 && result[len(result)-1] == result[0] {
			result = result[:len(result)-1]
		}
	}
	return result
}

// stripDuplicatesPaths applies StripDuplicates to every path.
func stripDuplicatesPaths(paths Paths64, isClosedPath bool) Paths64 {
	result := make(Paths64, 0, len(paths))
	for _, path := range paths {
		result = append(result, StripDuplicates(path, isClosedPath))
	}
	return result
}

// Reverse64 returns a copy of the path with points in reverse order.
func Reverse64(path Path64) Path64 {
	if len(path) == 0 {
		return Path64{}
	}
	result := make(Path64, len(path))
	for i, j := 0, len(path)-1; i < len(path); i, j = i+1, j-1 {
		result[i] = path[j]
	}
	return result
}

// ReversePaths64 returns a copy with each path reversed.
func ReversePaths64(paths Paths64) Paths64 {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		result[i] = Reverse64(path)
	}
	return result
}

// ==============================================================================
// Scaling and Translation
// ==============================================================================

// ScalePath64 multiplies each coordinate by scale, rounding to nearest.
// A zero or non-finite scale leaves the path untouched and sets
// ErrScaleBit in *errorCode.
func ScalePath64(path Path64, scale float64, errorCode *int) Path64 {
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		if errorCode != nil {
			*errorCode |= ErrScaleBit
		}
		result := make(Path64, len(path))
		copy(result, path)
		return result
	}
	result := make(Path64, len(path))
	for i, pt := range path {
		result[i] = Point64{
			X: checkCastInt64(float64(pt.X) * scale),
			Y: checkCastInt64(float64(pt.Y) * scale),
		}
	}
	return result
}

// ScalePaths64 applies ScalePath64 to every path.
func ScalePaths64(paths Paths64, scale float64, errorCode *int) Paths64 {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		result[i] = ScalePath64(path, scale, errorCode)
	}
	return result
}

// scalePathDTo64 converts a float64 path to integer coordinates.
func scalePathDTo64(path PathD, scale float64) Path64 {
	result := make(Path64, len(path))
	for i, pt := range path {
		result[i] = Point64{
			X: checkCastInt64(pt.X * scale),
			Y: checkCastInt64(pt.Y * scale),
		}
	}
	return result
}

// scalePathsDTo64 converts float64 paths to integer coordinates.
func scalePathsDTo64(paths PathsD, scale float64) Paths64 {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		result[i] = scalePathDTo64(path, scale)
	}
	return result
}

// scalePath64ToD converts an integer path to float64 coordinates.
func scalePath64ToD(path Path64, scale float64) PathD {
	result := make(PathD, len(path))
	for i, pt := range path {
		result[i] = PointD{X: float64(pt.X) * scale, Y: float64(pt.Y) * scale}
	}
	return result
}

// scalePaths64ToD converts integer paths to float64 coordinates.
func scalePaths64ToD(paths Paths64, scale float64) PathsD {
	result := make(PathsD, len(paths))
	for i, path := range paths {
		result[i] = scalePath64ToD(path, scale)
	}
	return result
}

// TranslatePath64 shifts every point by (dx, dy).
func TranslatePath64(path Path64, dx, dy int64) Path64 {
	result := make(Path64, len(path))
	for i, pt := range path {
		result[i] = Point64{X: pt.X + dx, Y: pt.Y + dy}
	}
	return result
}

// TranslatePaths64 shifts every point of every path by (dx, dy).
func TranslatePaths64(paths Paths64, dx, dy int64) Paths64 {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		result[i] = TranslatePath64(path, dx, dy)
	}
	return result
}

// ==============================================================================
// Shape Generators
// ==============================================================================

// Ellipse64 generates a closed elliptical path. radiusY defaults to radiusX
// when non-positive; steps defaults to a count derived from the mean radius.
func Ellipse64(center Point64, radiusX, radiusY float64, steps int) Path64 {
	if radiusX <= 0 {
		return Path64{}
	}
	if radiusY <= 0 {
		radiusY = radiusX
	}
	if steps <= 2 {
		steps = int(math.Ceil(math.Pi * math.Sqrt((radiusX+radiusY)/2)))
	}
	si, co := math.Sincos(2 * math.Pi / float64(steps))
	dx, dy := co, si
	result := make(Path64, 0, steps)
	result = append(result, Point64{X: center.X + int64(math.Round(radiusX)), Y: center.Y})
	for i := 1; i < steps; i++ {
		result = append(result, Point64{
			X: center.X + int64(math.Round(radiusX*dx)),
			Y: center.Y + int64(math.Round(radiusY*dy)),
		})
		dx, dy = dx*co-dy*si, dy*co+dx*si
	}
	return result
}

// EllipseD generates a closed elliptical float64 path.
func EllipseD(center PointD, radiusX, radiusY float64, steps int) PathD {
	if radiusX <= 0 {
		return PathD{}
	}
	if radiusY <= 0 {
		radiusY = radiusX
	}
	if steps <= 2 {
		steps = int(math.Ceil(math.Pi * math.Sqrt((radiusX+radiusY)/2)))
	}
	si, co := math.Sincos(2 * math.Pi / float64(steps))
	dx, dy := co, si
	result := make(PathD, 0, steps)
	result = append(result, PointD{X: center.X + radiusX, Y: center.Y})
	for i := 1; i < steps; i++ {
		result = append(result, PointD{X: center.X + radiusX*dx, Y: center.Y + radiusY*dy})
		dx, dy = dx*co-dy*si, dy*co+dx*si
	}
	return result
}

// StarPolygon64 generates a star with alternating outer and inner vertices.
func StarPolygon64(center Point64, outerRadius, innerRadius float64, points int) Path64 {
	if outerRadius <= 0 || innerRadius <= 0 || points < 3 {
		return Path64{}
	}
	result := make(Path64, 0, points*2)
	for i := 0; i < points*2; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := float64(i) * math.Pi / float64(points)
		result = append(result, Point64{
			X: center.X + int64(math.Round(radius*math.Sin(angle))),
			Y: center.Y - int64(math.Round(radius*math.Cos(angle))),
		})
	}
	return result
}

// ==============================================================================
// Small shared helpers
// ==============================================================================

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
