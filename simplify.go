package clipper

import "math"

// Path simplification: a distance-based vertex remover that is idempotent
// at a fixed epsilon, and the classic Ramer-Douglas-Peucker reducer.

func simplifyGetNext(current, high int, flags []bool) int {
	current++
	for current <= high && flags[current] {
		current++
	}
	if current <= high {
		return current
	}
	current = 0
	for flags[current] {
		current++
	}
	return current
}

func simplifyGetPrior(current, high int, flags []bool) int {
	current--
	for current >= 0 && flags[current] {
		current--
	}
	if current >= 0 {
		return current
	}
	current = high
	for flags[current] {
		current--
	}
	return current
}

// SimplifyPath64 removes vertices whose removal leaves their neighbours
// within epsilon (perpendicular distance). The operation is idempotent at
// a fixed epsilon.
func SimplifyPath64(path Path64, epsilon float64, isClosedPath bool) Path64 {
	length := len(path)
	high := length - 1
	epsSqr := sqr(epsilon)
	if length < 4 {
		result := make(Path64, length)
		copy(result, path)
		return result
	}

	flags := make([]bool, length)
	dsq := make([]float64, length)
	if isClosedPath {
		dsq[0] = PerpendicDistFromLineSqrd(path[0], path[high], path[1])
		dsq[high] = PerpendicDistFromLineSqrd(path[high], path[0], path[high-1])
	} else {
		dsq[0] = math.MaxFloat64
		dsq[high] = math.MaxFloat64
	}
	for i := 1; i < high; i++ {
		dsq[i] = PerpendicDistFromLineSqrd(path[i], path[i-1], path[i+1])
	}

	curr := 0
	for {
		if dsq[curr] > epsSqr {
			start := curr
			for {
				curr = simplifyGetNext(curr, high, flags)
				if curr == start || dsq[curr] <= epsSqr {
					break
				}
			}
			if curr == start {
				break
			}
		}

		prev := simplifyGetPrior(curr, high, flags)
		next := simplifyGetNext(curr, high, flags)
		if next == prev {
			break
		}

		var prior2 int
		// remove the smaller-distance one of curr and next
		if dsq[next] < dsq[curr] {
			prior2 = prev
			prev = curr
			curr = next
			next = simplifyGetNext(next, high, flags)
		} else {
			prior2 = simplifyGetPrior(prev, high, flags)
		}

		flags[curr] = true
		curr = next
		next = simplifyGetNext(next, high, flags)

		if isClosedPath || (curr != high && curr != 0) {
			dsq[curr] = PerpendicDistFromLineSqrd(path[curr], path[prev], path[next])
		}
		if isClosedPath || (prev != 0 && prev != high) {
			dsq[prev] = PerpendicDistFromLineSqrd(path[prev], path[prior2], path[curr])
		}
	}

	result := make(Path64, 0, length)
	for i, pt := range path {
		if !flags[i] {
			result = append(result, pt)
		}
	}
	return result
}

// SimplifyPaths64 applies SimplifyPath64 to every path.
func SimplifyPaths64(paths Paths64, epsilon float64, isClosedPaths bool) Paths64 {
	result := make(Paths64, 0, len(paths))
	for _, path := range paths {
		result = append(result, SimplifyPath64(path, epsilon, isClosedPaths))
	}
	return result
}

// SimplifyPathD is the float64 overload of SimplifyPath64.
func SimplifyPathD(path PathD, epsilon float64, isClosedPath bool) PathD {
	length := len(path)
	if length < 4 {
		result := make(PathD, length)
		copy(result, path)
		return result
	}
	high := length - 1
	epsSqr := sqr(epsilon)

	flags := make([]bool, length)
	dsq := make([]float64, length)
	if isClosedPath {
		dsq[0] = PerpendicDistFromLineSqrdD(path[0], path[high], path[1])
		dsq[high] = PerpendicDistFromLineSqrdD(path[high], path[0], path[high-1])
	} else {
		dsq[0] = math.MaxFloat64
		dsq[high] = math.MaxFloat64
	}
	for i := 1; i < high; i++ {
		dsq[i] = PerpendicDistFromLineSqrdD(path[i], path[i-1], path[i+1])
	}

	curr := 0
	for {
		if dsq[curr] > epsSqr {
			start := curr
			for {
				curr = simplifyGetNext(curr, high, flags)
				if curr == start || dsq[curr] <= epsSqr {
					break
				}
			}
			if curr == start {
				break
			}
		}

		prev := simplifyGetPrior(curr, high, flags)
		next := simplifyGetNext(curr, high, flags)
		if next == prev {
			break
		}

		var prior2 int
		if dsq[next] < dsq[curr] {
			prior2 = prev
			prev = curr
			curr = next
			next = simplifyGetNext(next, high, flags)
		} else {
			prior2 = simplifyGetPrior(prev, high, flags)
		}

		flags[curr] = true
		curr = next
		next = simplifyGetNext(next, high, flags)

		if isClosedPath || (curr != high && curr != 0) {
			dsq[curr] = PerpendicDistFromLineSqrdD(path[curr], path[prev], path[next])
		}
		if isClosedPath || (prev != 0 && prev != high) {
			dsq[prev] = PerpendicDistFromLineSqrdD(path[prev], path[prior2], path[curr])
		}
	}

	result := make(PathD, 0, length)
	for i, pt := range path {
		if !flags[i] {
			result = append(result, pt)
		}
	}
	return result
}

// SimplifyPathsD applies SimplifyPathD to every path.
func SimplifyPathsD(paths PathsD, epsilon float64, isClosedPaths bool) PathsD {
	result := make(PathsD, 0, len(paths))
	for _, path := range paths {
		result = append(result, SimplifyPathD(path, epsilon, isClosedPaths))
	}
	return result
}

// ==============================================================================
// Ramer-Douglas-Peucker
// ==============================================================================

func rdp(path Path64, begin, end int, epsSqrd float64, flags []bool) {
	idx := 0
	maxD := 0.0
	for end > begin && path[begin] == path[end] {
		flags[end] = false
		end--
	}
	for i := begin + 1; i < end; i++ {
		// squared distances avoid the sqrt
		d := PerpendicDistFromLineSqrd(path[i], path[begin], path[end])
		if d <= maxD {
			continue
		}
		maxD = d
		idx = i
	}
	if maxD <= epsSqrd {
		return
	}
	flags[idx] = true
	if idx > begin+1 {
		rdp(path, begin, idx, epsSqrd, flags)
	}
	if idx < end-1 {
		rdp(path, idx, end, epsSqrd, flags)
	}
}

// RamerDouglasPeucker64 reduces a path with the recursive RDP algorithm;
// endpoints are always preserved.
func RamerDouglasPeucker64(path Path64, epsilon float64) Path64 {
	length := len(path)
	if length < 5 {
		result := make(Path64, length)
		copy(result, path)
		return result
	}
	flags := make([]bool, length)
	flags[0] = true
	flags[length-1] = true
	rdp(path, 0, length-1, sqr(epsilon), flags)
	result := make(Path64, 0, length)
	for i, pt := range path {
		if flags[i] {
			result = append(result, pt)
		}
	}
	return result
}

// RamerDouglasPeuckerPaths64 applies RamerDouglasPeucker64 to every path.
func RamerDouglasPeuckerPaths64(paths Paths64, epsilon float64) Paths64 {
	result := make(Paths64, 0, len(paths))
	for _, path := range paths {
		result = append(result, RamerDouglasPeucker64(path, epsilon))
	}
	return result
}

func rdpD(path PathD, begin, end int, epsSqrd float64, flags []bool) {
	idx := 0
	maxD := 0.0
	for end > begin && path[begin] == path[end] {
		flags[end] = false
		end--
	}
	for i := begin + 1; i < end; i++ {
		d := PerpendicDistFromLineSqrdD(path[i], path[begin], path[end])
		if d <= maxD {
			continue
		}
		maxD = d
		idx = i
	}
	if maxD <= epsSqrd {
		return
	}
	flags[idx] = true
	if idx > begin+1 {
		rdpD(path, begin, idx, epsSqrd, flags)
	}
	if idx < end-1 {
		rdpD(path, idx, end, epsSqrd, flags)
	}
}

// RamerDouglasPeuckerD reduces a float64 path with the RDP algorithm.
func RamerDouglasPeuckerD(path PathD, epsilon float64) PathD {
	length := len(path)
	if length < 5 {
		result := make(PathD, length)
		copy(result, path)
		return result
	}
	flags := make([]bool, length)
	flags[0] = true
	flags[length-1] = true
	rdpD(path, 0, length-1, sqr(epsilon), flags)
	result := make(PathD, 0, length)
	for i, pt := range path {
		if flags[i] {
			result = append(result, pt)
		}
	}
	return result
}

// RamerDouglasPeuckerPathsD applies RamerDouglasPeuckerD to every path.
func RamerDouglasPeuckerPathsD(paths PathsD, epsilon float64) PathsD {
	result := make(PathsD, 0, len(paths))
	for _, path := range paths {
		result = append(result, RamerDouglasPeuckerD(path, epsilon))
	}
	return result
}
