package clipper

// Polyline variant of the fast rectangle clipper: open paths are split at
// the boundary crossings; there is no corner-sweep logic because polylines
// carry no fill.

type rectClipLines64 struct {
	rectClip64
}

func newRectClipLines64(rect Rect64) *rectClipLines64 {
	return &rectClipLines64{rectClip64: *newRectClip64(rect)}
}

func (rc *rectClipLines64) executeInternal(path Path64) {
	rc.results = rc.results[:0]
	if len(path) < 2 || rc.rect.IsEmpty() {
		return
	}

	prev := locInside
	i := 1
	highI := len(path) - 1

	loc, ok := getLocation(rc.rect, path[0])
	if !ok {
		for i <= highI {
			if prev, ok = getLocation(rc.rect, path[i]); ok {
				break
			}
			i++
		}
		if i > highI {
			// the path lies entirely on the rectangle's boundary
			for _, pt := range path {
				rc.add(pt, false)
			}
			return
		}
		if prev == locInside {
			loc = locInside
		}
		i = 1
	}
	if loc == locInside {
		rc.add(path[0], false)
	}

	for i <= highI {
		prev = loc
		loc, i = rc.getNextLocation(path, loc, i, highI)
		if i > highI {
			break
		}
		prevPt := path[i-1]

		ip, _, crossed := rc.getIntersection(path[i], prevPt, loc)
		if !crossed {
			i++
			continue // still outside
		}

		switch {
		case loc == locInside:
			// entering: start a new output segment
			rc.add(ip, true)
		case prev != locInside:
			// passing right through: ip is the second crossing, so find the
			// first (ip2) and emit a two-point segment
			firstLoc := prev
			ip2, _, _ := rc.getIntersection(prevPt, path[i], firstLoc)
			rc.add(ip2, true)
			rc.add(ip, false)
		default:
			// exiting
			rc.add(ip, false)
		}
	}
}

func (rc *rectClipLines64) getLinePath(op *outPt2) Path64 {
	if op == nil || op == op.next {
		return nil
	}
	op = op.next // start at the beginning of the segment
	result := Path64{op.pt}
	for op2 := op.next; op2 != op; op2 = op2.next {
		result = append(result, op2.pt)
	}
	return result
}

func (rc *rectClipLines64) execute(paths Paths64) Paths64 {
	result := Paths64{}
	if rc.rect.IsEmpty() {
		return result
	}
	for _, path := range paths {
		if len(path) < 2 {
			continue
		}
		rc.pathBounds = Bounds64(path)
		if !rc.rect.Intersects(rc.pathBounds) {
			continue
		}
		rc.executeInternal(path)
		for _, op := range rc.results {
			if tmp := rc.getLinePath(op); len(tmp) > 0 {
				result = append(result, tmp)
			}
		}
		rc.results = rc.results[:0]
	}
	return result
}
