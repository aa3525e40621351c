package clipper

import "math"

// Minkowski sum and difference. For every edge of the traversal path, the
// quads spanned by the translated pattern are collected and resolved by a
// NonZero union on the sweep engine.

func minkowskiInternal(pattern, path Path64, isSum, isClosed bool) Paths64 {
	delta := 1
	if isClosed {
		delta = 0
	}
	patLen := len(pattern)
	pathLen := len(path)

	tmp := make(Paths64, 0, pathLen)
	for _, pathPt := range path {
		path2 := make(Path64, 0, patLen)
		if isSum {
			for _, basePt := range pattern {
				path2 = append(path2, pathPt.Add(basePt))
			}
		} else {
			for _, basePt := range pattern {
				path2 = append(path2, pathPt.Sub(basePt))
			}
		}
		tmp = append(tmp, path2)
	}

	result := make(Paths64, 0, (pathLen-delta)*patLen)
	g := 0
	if isClosed {
		g = pathLen - 1
	}
	h := patLen - 1
	for i := delta; i < pathLen; i++ {
		for j := 0; j < patLen; j++ {
			quad := Path64{tmp[g][h], tmp[i][h], tmp[i][j], tmp[g][j]}
			if !IsPositive64(quad) {
				result = append(result, Reverse64(quad))
			} else {
				result = append(result, quad)
			}
			h = j
		}
		g = i
	}
	return result
}

// MinkowskiSum64 returns the Minkowski sum of pattern swept along path.
//
// Possible errors: ErrEmptyPath
func MinkowskiSum64(pattern, path Path64, isClosed bool) (Paths64, error) {
	if len(pattern) == 0 || len(path) == 0 {
		return nil, ErrEmptyPath
	}
	return Union64(minkowskiInternal(pattern, path, true, isClosed), nil, NonZero)
}

// MinkowskiDiff64 returns the Minkowski difference: pattern reflected
// through the origin and swept along path.
//
// Possible errors: ErrEmptyPath
func MinkowskiDiff64(pattern, path Path64, isClosed bool) (Paths64, error) {
	if len(pattern) == 0 || len(path) == 0 {
		return nil, ErrEmptyPath
	}
	return Union64(minkowskiInternal(pattern, path, false, isClosed), nil, NonZero)
}

// MinkowskiSumD is the float64 overload of MinkowskiSum64. An out-of-range
// precision is clamped (non-fatal).
//
// Possible errors: ErrEmptyPath
func MinkowskiSumD(pattern, path PathD, isClosed bool, precision int) (PathsD, error) {
	if len(pattern) == 0 || len(path) == 0 {
		return nil, ErrEmptyPath
	}
	CheckPrecisionRange(&precision, nil)
	scale := math.Pow(10, float64(precision))
	tmp, err := MinkowskiSum64(scalePathDTo64(pattern, scale), scalePathDTo64(path, scale), isClosed)
	if err != nil {
		return nil, err
	}
	return scalePaths64ToD(tmp, 1/scale), nil
}

// MinkowskiDiffD is the float64 overload of MinkowskiDiff64. An
// out-of-range precision is clamped (non-fatal).
//
// Possible errors: ErrEmptyPath
func MinkowskiDiffD(pattern, path PathD, isClosed bool, precision int) (PathsD, error) {
	if len(pattern) == 0 || len(path) == 0 {
		return nil, ErrEmptyPath
	}
	CheckPrecisionRange(&precision, nil)
	scale := math.Pow(10, float64(precision))
	tmp, err := MinkowskiDiff64(scalePathDTo64(pattern, scale), scalePathDTo64(path, scale), isClosed)
	if err != nil {
		return nil, err
	}
	return scalePaths64ToD(tmp, 1/scale), nil
}
