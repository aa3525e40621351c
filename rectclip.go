package clipper

// Fast axis-aligned rectangle clipping. Each path is clipped in O(n) by
// classifying vertices against the rectangle's nine regions and emitting
// boundary crossings in traversal order, so the general sweep engine is
// never invoked. Output orientation follows input orientation.

// location identifies the region of a point relative to the clip rect.
// The four sides double as rectangle-corner indices (left=0 pairs with the
// top-left corner of the rect path, and so on clockwise).
type location uint8

const (
	locLeft location = iota
	locTop
	locRight
	locBottom
	locInside
)

// outPt2 is a vertex in a rectClip result ring.
type outPt2 struct {
	pt       Point64
	ownerIdx int
	edge     *[]*outPt2
	next     *outPt2
	prev     *outPt2
}

type rectClip64 struct {
	rect       Rect64
	mp         Point64
	rectPath   Path64
	pathBounds Rect64
	results    []*outPt2
	edges      [8][]*outPt2 // per rect side: clockwise and counter-clockwise lists
}

func newRectClip64(rect Rect64) *rectClip64 {
	return &rectClip64{
		rect:     rect,
		mp:       rect.MidPoint(),
		rectPath: rect.AsPath(),
	}
}

func (rc *rectClip64) add(pt Point64, startingNewPath bool) *outPt2 {
	currIdx := len(rc.results)
	var result *outPt2
	if currIdx == 0 || startingNewPath {
		result = &outPt2{pt: pt, ownerIdx: currIdx}
		result.prev = result
		result.next = result
		rc.results = append(rc.results, result)
		return result
	}
	currIdx--
	prevOp := rc.results[currIdx]
	if prevOp.pt == pt {
		return prevOp
	}
	result = &outPt2{pt: pt, ownerIdx: currIdx}
	result.next = prevOp.next
	prevOp.next.prev = result
	prevOp.next = result
	result.prev = prevOp
	rc.results[currIdx] = result
	return result
}

// getLocation classifies pt; the bool result is false when pt lies exactly
// on the rectangle's boundary (loc then names that side).
func getLocation(rec Rect64, pt Point64) (location, bool) {
	if pt.X == rec.Left && pt.Y >= rec.Top && pt.Y <= rec.Bottom {
		return locLeft, false
	}
	if pt.X == rec.Right && pt.Y >= rec.Top && pt.Y <= rec.Bottom {
		return locRight, false
	}
	if pt.Y == rec.Top && pt.X >= rec.Left && pt.X <= rec.Right {
		return locTop, false
	}
	if pt.Y == rec.Bottom && pt.X >= rec.Left && pt.X <= rec.Right {
		return locBottom, false
	}
	switch {
	case pt.X < rec.Left:
		return locLeft, true
	case pt.X > rec.Right:
		return locRight, true
	case pt.Y < rec.Top:
		return locTop, true
	case pt.Y > rec.Bottom:
		return locBottom, true
	default:
		return locInside, true
	}
}

func areOpposites(prev, curr location) bool {
	d := int(prev) - int(curr)
	return d == 2 || d == -2
}

func headingClockwise(prev, curr location) bool {
	return (int(prev)+1)%4 == int(curr)
}

func isClockwise(prev, curr location, prevPt, currPt, rectMidPoint Point64) bool {
	if areOpposites(prev, curr) {
		return CrossProduct(prevPt, rectMidPoint, currPt) < 0
	}
	return headingClockwise(prev, curr)
}

func getAdjacentLocation(loc location, isClockwise bool) location {
	delta := 3
	if isClockwise {
		delta = 1
	}
	return location((int(loc) + delta) % 4)
}

func isHorizontalPts(pt1, pt2 Point64) bool { return pt1.Y == pt2.Y }

// getSegmentIntersection is the boundary-aware segment intersection: a
// touch at an endpoint counts, collinear overlap does not. Orientation
// signs are computed with exact 128-bit cross products, so on-boundary
// decisions hold at extreme coordinates.
func getSegmentIntersection(p1, p2, p3, p4 Point64) (Point64, bool) {
	res1 := CrossProduct128(p1, p3, p4).Sign()
	res2 := CrossProduct128(p2, p3, p4).Sign()

	if res1 == 0 {
		if res2 == 0 {
			return p1, false // segments are collinear
		}
		if p1 == p3 || p1 == p4 {
			return p1, true
		}
		if isHorizontalPts(p3, p4) {
			return p1, (p1.X > p3.X) == (p1.X < p4.X)
		}
		return p1, (p1.Y > p3.Y) == (p1.Y < p4.Y)
	}
	if res2 == 0 {
		if p2 == p3 || p2 == p4 {
			return p2, true
		}
		if isHorizontalPts(p3, p4) {
			return p2, (p2.X > p3.X) == (p2.X < p4.X)
		}
		return p2, (p2.Y > p3.Y) == (p2.Y < p4.Y)
	}
	if (res1 > 0) == (res2 > 0) {
		return Point64{}, false
	}

	res3 := CrossProduct128(p3, p1, p2).Sign()
	res4 := CrossProduct128(p4, p1, p2).Sign()
	if res3 == 0 {
		if p3 == p1 || p3 == p2 {
			return p3, true
		}
		if isHorizontalPts(p1, p2) {
			return p3, (p3.X > p1.X) == (p3.X < p2.X)
		}
		return p3, (p3.Y > p1.Y) == (p3.Y < p2.Y)
	}
	if res4 == 0 {
		if p4 == p1 || p4 == p2 {
			return p4, true
		}
		if isHorizontalPts(p1, p2) {
			return p4, (p4.X > p1.X) == (p4.X < p2.X)
		}
		return p4, (p4.Y > p1.Y) == (p4.Y < p2.Y)
	}
	if (res3 > 0) == (res4 > 0) {
		return Point64{}, false
	}

	// segments must intersect to get here
	return getSegmentIntersectPt(p1, p2, p3, p4)
}

// getIntersection finds the intersection of segment (p, p2) with the rect
// boundary that is closest to p; loc is updated to the crossed side.
func (rc *rectClip64) getIntersection(p, p2 Point64, loc location) (Point64, location, bool) {
	rectPath := rc.rectPath
	switch loc {
	case locLeft:
		if ip, ok := getSegmentIntersection(p, p2, rectPath[0], rectPath[3]); ok {
			return ip, loc, true
		}
		if p.Y < rectPath[0].Y {
			if ip, ok := getSegmentIntersection(p, p2, rectPath[0], rectPath[1]); ok {
				return ip, locTop, true
			}
		}
		if ip, ok := getSegmentIntersection(p, p2, rectPath[2], rectPath[3]); ok {
			return ip, locBottom, true
		}
		return Point64{}, loc, false
	case locRight:
		if ip, ok := getSegmentIntersection(p, p2, rectPath[1], rectPath[2]); ok {
			return ip, loc, true
		}
		if p.Y < rectPath[0].Y {
			if ip, ok := getSegmentIntersection(p, p2, rectPath[0], rectPath[1]); ok {
				return ip, locTop, true
			}
		}
		if ip, ok := getSegmentIntersection(p, p2, rectPath[2], rectPath[3]); ok {
			return ip, locBottom, true
		}
		return Point64{}, loc, false
	case locTop:
		if ip, ok := getSegmentIntersection(p, p2, rectPath[0], rectPath[1]); ok {
			return ip, loc, true
		}
		if p.X < rectPath[0].X {
			if ip, ok := getSegmentIntersection(p, p2, rectPath[0], rectPath[3]); ok {
				return ip, locLeft, true
			}
		}
		if p.X > rectPath[1].X {
			if ip, ok := getSegmentIntersection(p, p2, rectPath[1], rectPath[2]); ok {
				return ip, locRight, true
			}
		}
		return Point64{}, loc, false
	case locBottom:
		if ip, ok := getSegmentIntersection(p, p2, rectPath[2], rectPath[3]); ok {
			return ip, loc, true
		}
		if p.X < rectPath[3].X {
			if ip, ok := getSegmentIntersection(p, p2, rectPath[0], rectPath[3]); ok {
				return ip, locLeft, true
			}
		}
		if p.X > rectPath[2].X {
			if ip, ok := getSegmentIntersection(p, p2, rectPath[1], rectPath[2]); ok {
				return ip, locRight, true
			}
		}
		return Point64{}, loc, false
	default: // inside
		if ip, ok := getSegmentIntersection(p, p2, rectPath[0], rectPath[3]); ok {
			return ip, locLeft, true
		}
		if ip, ok := getSegmentIntersection(p, p2, rectPath[0], rectPath[1]); ok {
			return ip, locTop, true
		}
		if ip, ok := getSegmentIntersection(p, p2, rectPath[1], rectPath[2]); ok {
			return ip, locRight, true
		}
		if ip, ok := getSegmentIntersection(p, p2, rectPath[2], rectPath[3]); ok {
			return ip, locBottom, true
		}
		return Point64{}, loc, false
	}
}

func (rc *rectClip64) addCornerBetween(prev, curr location) {
	if headingClockwise(prev, curr) {
		rc.add(rc.rectPath[int(prev)], false)
	} else {
		rc.add(rc.rectPath[int(curr)], false)
	}
}

func (rc *rectClip64) addCorner(loc location, isClockwise bool) location {
	if isClockwise {
		rc.add(rc.rectPath[int(loc)], false)
		return getAdjacentLocation(loc, true)
	}
	loc = getAdjacentLocation(loc, false)
	rc.add(rc.rectPath[int(loc)], false)
	return loc
}

// getNextLocation advances i while the path remains in loc's region,
// updating loc when the region changes (inside points are emitted as-is).
func (rc *rectClip64) getNextLocation(path Path64, loc location, i, highI int) (location, int) {
	switch loc {
	case locLeft:
		for i <= highI && path[i].X <= rc.rect.Left {
			i++
		}
		if i > highI {
			break
		}
		switch {
		case path[i].X >= rc.rect.Right:
			loc = locRight
		case path[i].Y <= rc.rect.Top:
			loc = locTop
		case path[i].Y >= rc.rect.Bottom:
			loc = locBottom
		default:
			loc = locInside
		}
	case locTop:
		for i <= highI && path[i].Y <= rc.rect.Top {
			i++
		}
		if i > highI {
			break
		}
		switch {
		case path[i].Y >= rc.rect.Bottom:
			loc = locBottom
		case path[i].X <= rc.rect.Left:
			loc = locLeft
		case path[i].X >= rc.rect.Right:
			loc = locRight
		default:
			loc = locInside
		}
	case locRight:
		for i <= highI && path[i].X >= rc.rect.Right {
			i++
		}
		if i > highI {
			break
		}
		switch {
		case path[i].X <= rc.rect.Left:
			loc = locLeft
		case path[i].Y <= rc.rect.Top:
			loc = locTop
		case path[i].Y >= rc.rect.Bottom:
			loc = locBottom
		default:
			loc = locInside
		}
	case locBottom:
		for i <= highI && path[i].Y >= rc.rect.Bottom {
			i++
		}
		if i > highI {
			break
		}
		switch {
		case path[i].Y <= rc.rect.Top:
			loc = locTop
		case path[i].X <= rc.rect.Left:
			loc = locLeft
		case path[i].X >= rc.rect.Right:
			loc = locRight
		default:
			loc = locInside
		}
	case locInside:
		for i <= highI {
			switch {
			case path[i].X < rc.rect.Left:
				loc = locLeft
			case path[i].X > rc.rect.Right:
				loc = locRight
			case path[i].Y > rc.rect.Bottom:
				loc = locBottom
			case path[i].Y < rc.rect.Top:
				loc = locTop
			default:
				rc.add(path[i], false)
				i++
				continue
			}
			break
		}
	}
	return loc, i
}

func (rc *rectClip64) executeInternal(path Path64) {
	if len(path) < 3 || rc.rect.IsEmpty() {
		return
	}
	var startLocs []location

	firstCross := locInside
	crossingLoc := firstCross
	prev := firstCross

	highI := len(path) - 1
	loc, ok := getLocation(rc.rect, path[highI])
	if !ok {
		i := highI - 1
		for i >= 0 {
			if prev, ok = getLocation(rc.rect, path[i]); ok {
				break
			}
			i--
		}
		if i < 0 {
			// the path lies entirely on the rectangle's boundary
			for _, pt := range path {
				rc.add(pt, false)
			}
			return
		}
		if prev == locInside {
			loc = locInside
		}
	}
	startingLoc := loc

	i := 0
	for i <= highI {
		prev = loc
		crossingPrev := crossingLoc

		loc, i = rc.getNextLocation(path, loc, i, highI)
		if i > highI {
			break
		}

		var prevPt Point64
		if i > 0 {
			prevPt = path[i-1]
		} else {
			prevPt = path[highI]
		}

		crossingLoc = loc
		ip, newLoc, crossed := rc.getIntersection(path[i], prevPt, crossingLoc)
		if !crossed {
			// still outside; maybe sweeping around the rectangle
			if crossingPrev == locInside {
				isClockw := isClockwise(prev, loc, prevPt, path[i], rc.mp)
				for {
					startLocs = append(startLocs, prev)
					prev = getAdjacentLocation(prev, isClockw)
					if prev == loc {
						break
					}
				}
				crossingLoc = crossingPrev // still not crossed
			} else if prev != locInside && prev != loc {
				isClockw := isClockwise(prev, loc, prevPt, path[i], rc.mp)
				for {
					prev = rc.addCorner(prev, isClockw)
					if prev == loc {
						break
					}
				}
			}
			i++
			continue
		}
		crossingLoc = newLoc

		// the path crosses the rectangle boundary here
		if loc == locInside {
			// entering
			if firstCross == locInside {
				firstCross = crossingLoc
				startLocs = append(startLocs, prev)
			} else if prev != crossingLoc {
				isClockw := isClockwise(prev, crossingLoc, prevPt, path[i], rc.mp)
				for {
					prev = rc.addCorner(prev, isClockw)
					if prev == crossingLoc {
						break
					}
				}
			}
		} else if prev != locInside {
			// passing right through: ip is the second crossing, so the first
			// (ip2) is needed too
			loc = prev
			var ip2 Point64
			ip2, loc, _ = rc.getIntersection(prevPt, path[i], loc)
			if crossingPrev != locInside && crossingPrev != loc {
				rc.addCornerBetween(crossingPrev, loc)
			}
			if firstCross == locInside {
				firstCross = loc
				startLocs = append(startLocs, prev)
			}
			loc = crossingLoc
			rc.add(ip2, false)
			if ip == ip2 {
				// and exiting again immediately
				loc, _ = getLocation(rc.rect, path[i])
				rc.addCornerBetween(crossingLoc, loc)
				crossingLoc = loc
				continue
			}
		} else {
			// exiting
			loc = crossingLoc
			if firstCross == locInside {
				firstCross = crossingLoc
			}
		}

		rc.add(ip, false)
	}

	if firstCross == locInside {
		// the path never crossed the rectangle
		if startingLoc == locInside {
			return
		}
		if rc.pathBounds.ContainsRect(rc.rect) && path1ContainsPath2(path, rc.rectPath) {
			// the path fully encloses the rectangle: emit the rectangle,
			// wound the same way as the path (read from its start locations)
			turn := 0
			for j := 1; j < len(startLocs); j++ {
				switch int(startLocs[j]) - int(startLocs[j-1]) {
				case 1, -3:
					turn++
				case -1, 3:
					turn--
				}
			}
			for j := 0; j < 4; j++ {
				k := j
				if turn <= 0 {
					k = 3 - j
				}
				rc.add(rc.rectPath[k], false)
				addToEdge(&rc.edges[k*2], rc.results[0])
			}
		}
	} else if loc != locInside && (loc != firstCross || len(startLocs) > 2) {
		if len(startLocs) > 0 {
			prev = loc
			for _, loc2 := range startLocs {
				if prev == loc2 {
					continue
				}
				prev = rc.addCorner(prev, headingClockwise(prev, loc2))
				prev = loc2
			}
			loc = prev
		}
		if loc != firstCross {
			rc.addCorner(loc, headingClockwise(loc, firstCross))
		}
	}
}

// ==============================================================================
// Edge bookkeeping along the rectangle's sides
// ==============================================================================

func addToEdge(edge *[]*outPt2, op *outPt2) {
	if op.edge != nil {
		return
	}
	op.edge = edge
	*edge = append(*edge, op)
}

func uncoupleEdge(op *outPt2) {
	if op.edge == nil {
		return
	}
	for i, op2 := range *op.edge {
		if op2 == op {
			(*op.edge)[i] = nil
			break
		}
	}
	op.edge = nil
}

func setNewOwner(op *outPt2, newIdx int) {
	op.ownerIdx = newIdx
	for op2 := op.next; op2 != op; op2 = op2.next {
		op2.ownerIdx = newIdx
	}
}

// getEdgesForPt returns a bitset of the rect sides pt lies on.
func getEdgesForPt(pt Point64, rec Rect64) uint {
	var result uint
	if pt.X == rec.Left {
		result = 1
	} else if pt.X == rec.Right {
		result = 4
	}
	if pt.Y == rec.Top {
		result += 2
	} else if pt.Y == rec.Bottom {
		result += 8
	}
	return result
}

func isHeadingClockwiseOnEdge(pt1, pt2 Point64, edgeIdx int) bool {
	switch edgeIdx {
	case 0:
		return pt2.Y < pt1.Y
	case 1:
		return pt2.X > pt1.X
	case 2:
		return pt2.Y > pt1.Y
	default:
		return pt2.X < pt1.X
	}
}

func hasHorzOverlap(left1, right1, left2, right2 Point64) bool {
	return left1.X < right2.X && right1.X > left2.X
}

func hasVertOverlap(top1, bottom1, top2, bottom2 Point64) bool {
	return top1.Y < bottom2.Y && bottom1.Y > top2.Y
}

func unlinkOp(op *outPt2) *outPt2 {
	if op.next == op {
		return nil
	}
	op.prev.next = op.next
	op.next.prev = op.prev
	return op.next
}

func unlinkOpBack(op *outPt2) *outPt2 {
	if op.next == op {
		return nil
	}
	op.prev.next = op.next
	op.next.prev = op.prev
	return op.prev
}

func (rc *rectClip64) checkEdges() {
	for i := range rc.results {
		op := rc.results[i]
		if op == nil {
			continue
		}
		op2 := op
		for {
			if IsCollinear(op2.prev.pt, op2.pt, op2.next.pt) {
				if op2 == op {
					op2 = unlinkOpBack(op2)
					if op2 == nil {
						break
					}
					op = op2.prev
				} else {
					op2 = unlinkOpBack(op2)
					if op2 == nil {
						break
					}
				}
			} else {
				op2 = op2.next
			}
			if op2 == op {
				break
			}
		}

		if op2 == nil {
			rc.results[i] = nil
			continue
		}
		rc.results[i] = op2

		edgeSet1 := getEdgesForPt(op.prev.pt, rc.rect)
		op2 = op
		for {
			edgeSet2 := getEdgesForPt(op2.pt, rc.rect)
			if edgeSet2 != 0 && op2.edge == nil {
				combinedSet := edgeSet1 & edgeSet2
				for j := 0; j < 4; j++ {
					if combinedSet&(1<<uint(j)) == 0 {
						continue
					}
					if isHeadingClockwiseOnEdge(op2.prev.pt, op2.pt, j) {
						addToEdge(&rc.edges[j*2], op2)
					} else {
						addToEdge(&rc.edges[j*2+1], op2)
					}
				}
			}
			edgeSet1 = edgeSet2
			op2 = op2.next
			if op2 == op {
				break
			}
		}
	}
}

func (rc *rectClip64) tidyEdgePair(idx int, cw, ccw *[]*outPt2) {
	if len(*ccw) == 0 {
		return
	}
	isHorz := idx == 1 || idx == 3
	cwIsTowardLarger := idx == 1 || idx == 2
	i, j := 0, 0

	for i < len(*cw) {
		p1 := (*cw)[i]
		if p1 == nil || p1.next == p1.prev {
			(*cw)[i] = nil
			i++
			j = 0
			continue
		}

		jLim := len(*ccw)
		for j < jLim && ((*ccw)[j] == nil || (*ccw)[j].next == (*ccw)[j].prev) {
			j++
		}
		if j == jLim {
			i++
			j = 0
			continue
		}

		var p1a, p2, p2a *outPt2
		if cwIsTowardLarger {
			// p1 >>>> p1a; p2 <<<< p2a
			p1 = (*cw)[i].prev
			p1a = (*cw)[i]
			p2 = (*ccw)[j]
			p2a = (*ccw)[j].prev
		} else {
			// p1 <<<< p1a; p2 >>>> p2a
			p1 = (*cw)[i]
			p1a = (*cw)[i].prev
			p2 = (*ccw)[j].prev
			p2a = (*ccw)[j]
		}

		if (isHorz && !hasHorzOverlap(p1.pt, p1a.pt, p2.pt, p2a.pt)) ||
			(!isHorz && !hasVertOverlap(p1.pt, p1a.pt, p2.pt, p2a.pt)) {
			j++
			continue
		}

		// overlapping edge runs either split one ring or rejoin two
		isRejoining := (*cw)[i].ownerIdx != (*ccw)[j].ownerIdx
		if isRejoining {
			rc.results[p2.ownerIdx] = nil
			setNewOwner(p2, p1.ownerIdx)
		}

		if cwIsTowardLarger {
			// p1 >> | >> p1a; p2 << | << p2a
			p1.next = p2
			p2.prev = p1
			p1a.prev = p2a
			p2a.next = p1a
		} else {
			p1.prev = p2
			p2.next = p1
			p1a.next = p2a
			p2a.prev = p1a
		}

		if !isRejoining {
			newIdx := len(rc.results)
			rc.results = append(rc.results, p1a)
			setNewOwner(p1a, newIdx)
		}

		var op, op2 *outPt2
		if cwIsTowardLarger {
			op = p2
			op2 = p1a
		} else {
			op = p1
			op2 = p2a
		}
		rc.results[op.ownerIdx] = op
		rc.results[op2.ownerIdx] = op2

		// prepare the lists for the next pass
		var opIsLarger, op2IsLarger bool
		if isHorz {
			opIsLarger = op.pt.X > op.prev.pt.X
			op2IsLarger = op2.pt.X > op2.prev.pt.X
		} else {
			opIsLarger = op.pt.Y > op.prev.pt.Y
			op2IsLarger = op2.pt.Y > op2.prev.pt.Y
		}

		switch {
		case op.next == op.prev || op.pt == op.prev.pt:
			if op2IsLarger == cwIsTowardLarger {
				(*cw)[i] = op2
				(*ccw)[j] = nil
				j++
			} else {
				(*ccw)[j] = op2
				(*cw)[i] = nil
				i++
			}
		case op2.next == op2.prev || op2.pt == op2.prev.pt:
			if opIsLarger == cwIsTowardLarger {
				(*cw)[i] = op
				(*ccw)[j] = nil
				j++
			} else {
				(*ccw)[j] = op
				(*cw)[i] = nil
				i++
			}
		case opIsLarger == op2IsLarger:
			if opIsLarger == cwIsTowardLarger {
				(*cw)[i] = op
				uncoupleEdge(op2)
				addToEdge(cw, op2)
				(*ccw)[j] = nil
				j++
			} else {
				(*cw)[i] = nil
				i++
				(*ccw)[j] = op2
				uncoupleEdge(op)
				addToEdge(ccw, op)
				j = 0
			}
		default:
			if opIsLarger == cwIsTowardLarger {
				(*cw)[i] = op
			} else {
				(*ccw)[j] = op
			}
			if op2IsLarger == cwIsTowardLarger {
				(*cw)[i] = op2
			} else {
				(*ccw)[j] = op2
			}
		}
	}
}

func (rc *rectClip64) getPath(op *outPt2) Path64 {
	if op == nil || op.next == op.prev {
		return nil
	}
	op2 := op.next
	for op2 != nil && op2 != op {
		if IsCollinear(op2.prev.pt, op2.pt, op2.next.pt) {
			op = op2.prev
			op2 = unlinkOp(op2)
		} else {
			op2 = op2.next
		}
	}
	if op2 == nil {
		return nil
	}
	result := Path64{op2.pt}
	for op3 := op2.next; op3 != op2; op3 = op3.next {
		result = append(result, op3.pt)
	}
	return result
}

func (rc *rectClip64) execute(paths Paths64) Paths64 {
	result := Paths64{}
	if rc.rect.IsEmpty() {
		return result
	}
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		rc.pathBounds = Bounds64(path)
		if !rc.rect.Intersects(rc.pathBounds) {
			continue // the path is entirely outside
		}
		if rc.rect.ContainsRect(rc.pathBounds) {
			result = append(result, path)
			continue // the path is entirely inside
		}
		rc.executeInternal(path)
		rc.checkEdges()
		for i := 0; i < 4; i++ {
			rc.tidyEdgePair(i, &rc.edges[i*2], &rc.edges[i*2+1])
		}
		for _, op := range rc.results {
			if tmp := rc.getPath(op); len(tmp) > 0 {
				result = append(result, tmp)
			}
		}
		rc.results = rc.results[:0]
		for i := range rc.edges {
			rc.edges[i] = rc.edges[i][:0]
		}
	}
	return result
}
