package clipper

import (
	"math"
	"sort"
)

// The Vatti sweep engine. Scanlines are processed from the bottom of a
// y-down canvas upward (descending y values); between two scanlines — a
// scanbeam — edges are advanced, intersections resolved in deterministic
// (y, x) order and output polygons grown edge by edge.
//
// All linked structures here (active edges, sorted-edge list, out-recs and
// their op-node rings) are scratch state owned by the clipper and cleared
// between Execute calls.

// ==============================================================================
// Engine-internal structures
// ==============================================================================

type joinWith uint8

const (
	joinWithNone joinWith = iota
	joinWithLeft
	joinWithRight
)

// active is an edge currently crossing the scanline (a member of the AEL).
type active struct {
	bot Point64
	top Point64

	curX       int64   // current (updated at every new scanline)
	dx         float64 // x advance per unit y
	windDx     int     // 1 or -1 depending on input winding direction
	windCount  int     // winding count of this edge's own polytype
	windCount2 int     // winding count of the opposite polytype

	outrec *outRec

	// AEL: the double-linked, x-ordered list of edges crossing the scanline
	prevInAEL *active
	nextInAEL *active

	// SEL: a reordered AEL snapshot used for intersections and horizontals
	prevInSEL *active
	nextInSEL *active
	jump      *active

	vertexTop   *vertex
	localMin    localMinima // the bottom of this edge's bound
	isLeftBound bool
	joinWith    joinWith
}

// outPt is a vertex of an output polygon under construction; op-nodes form
// a circular doubly linked ring owned by their outRec.
type outPt struct {
	pt     Point64
	next   *outPt
	prev   *outPt
	outrec *outRec
	horz   *horzSegment
}

func newOutPt(pt Point64, outrec *outRec) *outPt {
	op := &outPt{pt: pt, outrec: outrec}
	op.next = op
	op.prev = op
	return op
}

// outRec collects an output polygon (or open polyline) while sweeping.
type outRec struct {
	idx       int
	owner     *outRec
	frontEdge *active
	backEdge  *active
	pts       *outPt
	polypath  *PolyPath64
	bounds    Rect64
	path      Path64
	isOpen    bool

	splits         []int
	recursiveSplit *outRec
}

// intersectNode is a pending swap of two adjacent AEL edges that cross
// inside the current scanbeam.
type intersectNode struct {
	pt    Point64
	edge1 *active
	edge2 *active
}

// horzSegment records a horizontal run of output points for later joining.
type horzSegment struct {
	leftOp      *outPt
	rightOp     *outPt
	leftToRight bool
}

type horzJoin struct {
	op1 *outPt
	op2 *outPt
}

// ==============================================================================
// Clipper64
// ==============================================================================

// Clipper64 is the boolean-operation state machine for integer paths.
// Add subject and clip paths, call Execute (or ExecuteTree), then reuse or
// drop the instance. A Clipper64 must not be shared between goroutines.
type Clipper64 struct {
	// PreserveCollinear retains edge-collinear output vertices (default true;
	// 180-degree spikes are always removed).
	PreserveCollinear bool
	// ReverseSolution flips the orientation of all output paths.
	ReverseSolution bool

	cliptype ClipType
	fillrule FillRule

	actives *active
	sel     *active

	minimaList    []localMinima
	intersectList []*intersectNode
	vertexLists   [][]vertex
	outrecList    []*outRec
	scanlineList  []int64 // ascending; popped from the end
	horzSegList   []*horzSegment
	horzJoinList  []*horzJoin

	currentLocMin      int
	currentBotY        int64
	isSortedMinimaList bool
	hasOpenPaths       bool
	usingPolytree      bool
	succeeded          bool
}

// NewClipper64 creates a clipper with default options.
func NewClipper64() *Clipper64 {
	return &Clipper64{PreserveCollinear: true}
}

// AddSubject adds closed subject paths.
//
// Possible errors: ErrRange
func (c *Clipper64) AddSubject(paths Paths64) error {
	return c.addPaths(paths, PathTypeSubject, false)
}

// AddOpenSubject adds open subject paths (polylines).
//
// Possible errors: ErrRange
func (c *Clipper64) AddOpenSubject(paths Paths64) error {
	return c.addPaths(paths, PathTypeSubject, true)
}

// AddClip adds closed clip paths.
//
// Possible errors: ErrRange
func (c *Clipper64) AddClip(paths Paths64) error {
	return c.addPaths(paths, PathTypeClip, false)
}

func (c *Clipper64) addPaths(paths Paths64, polytype PathType, isOpen bool) error {
	if err := checkPathsRange(paths); err != nil {
		return err
	}
	if isOpen {
		c.hasOpenPaths = true
	}
	c.isSortedMinimaList = false
	addPathsToVertexList(paths, polytype, isOpen, &c.minimaList, &c.vertexLists)
	return nil
}

// Clear discards all added paths and any retained solution state.
func (c *Clipper64) Clear() {
	c.clearSolutionOnly()
	c.minimaList = c.minimaList[:0]
	c.vertexLists = c.vertexLists[:0]
	c.currentLocMin = 0
	c.isSortedMinimaList = false
	c.hasOpenPaths = false
}

func (c *Clipper64) clearSolutionOnly() {
	for c.actives != nil {
		c.deleteFromAEL(c.actives)
	}
	c.scanlineList = c.scanlineList[:0]
	c.intersectList = c.intersectList[:0]
	c.outrecList = c.outrecList[:0]
	c.horzSegList = c.horzSegList[:0]
	c.horzJoinList = c.horzJoinList[:0]
	c.sel = nil
}

// Execute runs the boolean operation, filling solutionClosed (and, when
// non-nil, solutionOpen with clipped open-subject polylines). It reports
// whether the operation succeeded; on failure outputs are left empty.
func (c *Clipper64) Execute(clipType ClipType, fillRule FillRule, solutionClosed, solutionOpen *Paths64) bool {
	*solutionClosed = (*solutionClosed)[:0]
	if solutionOpen != nil {
		*solutionOpen = (*solutionOpen)[:0]
	}
	c.usingPolytree = false
	c.execute(clipType, fillRule)
	if c.succeeded {
		c.buildPaths(solutionClosed, solutionOpen)
	}
	c.clearSolutionOnly()
	return c.succeeded
}

// ExecuteTree runs the boolean operation, filling a hierarchical PolyTree
// plus any open output paths.
func (c *Clipper64) ExecuteTree(clipType ClipType, fillRule FillRule, polytree *PolyTree64, solutionOpen *Paths64) bool {
	polytree.Clear()
	if solutionOpen != nil {
		*solutionOpen = (*solutionOpen)[:0]
	}
	c.usingPolytree = true
	c.execute(clipType, fillRule)
	if c.succeeded {
		c.buildTree(polytree, solutionOpen)
	}
	c.clearSolutionOnly()
	return c.succeeded
}

// execute wraps the sweep so that an internal invariant breach surfaces as
// failure rather than a crash.
func (c *Clipper64) execute(clipType ClipType, fillRule FillRule) {
	c.succeeded = true
	defer func() {
		if r := recover(); r != nil {
			c.succeeded = false
		}
	}()
	c.executeInternal(clipType, fillRule)
}

func (c *Clipper64) executeInternal(ct ClipType, fillRule FillRule) {
	if ct == NoClip {
		return
	}
	c.fillrule = fillRule
	c.cliptype = ct
	c.reset()
	y, ok := c.popScanline()
	if !ok {
		return
	}
	for c.succeeded {
		c.insertLocalMinimaIntoAEL(y)
		for {
			ae, ok := c.popHorz()
			if !ok {
				break
			}
			c.doHorizontal(ae)
		}
		if len(c.horzSegList) > 0 {
			c.convertHorzSegsToJoins()
			c.horzSegList = c.horzSegList[:0]
		}
		c.currentBotY = y // bottom of the scanbeam
		y, ok = c.popScanline()
		if !ok {
			break // y is now the top of the scanbeam
		}
		c.doIntersections(y)
		c.doTopOfScanbeam(y)
		for {
			ae, ok := c.popHorz()
			if !ok {
				break
			}
			c.doHorizontal(ae)
		}
	}
	if c.succeeded {
		c.processHorzJoins()
	}
}

func (c *Clipper64) reset() {
	if !c.isSortedMinimaList {
		// descending y; ties broken on x then original order for determinism
		sort.SliceStable(c.minimaList, func(i, j int) bool {
			a, b := c.minimaList[i].vertex.pt, c.minimaList[j].vertex.pt
			if a.Y != b.Y {
				return a.Y > b.Y
			}
			return a.X < b.X
		})
		c.isSortedMinimaList = true
	}
	for i := len(c.minimaList) - 1; i >= 0; i-- {
		c.insertScanline(c.minimaList[i].vertex.pt.Y)
	}
	c.currentBotY = 0
	c.currentLocMin = 0
	c.actives = nil
	c.sel = nil
	c.succeeded = true
}

// ==============================================================================
// Scanline queue and local minima
// ==============================================================================

func (c *Clipper64) insertScanline(y int64) {
	i := sort.Search(len(c.scanlineList), func(i int) bool { return c.scanlineList[i] >= y })
	if i < len(c.scanlineList) && c.scanlineList[i] == y {
		return
	}
	c.scanlineList = append(c.scanlineList, 0)
	copy(c.scanlineList[i+1:], c.scanlineList[i:])
	c.scanlineList[i] = y
}

func (c *Clipper64) popScanline() (int64, bool) {
	n := len(c.scanlineList)
	if n == 0 {
		return 0, false
	}
	y := c.scanlineList[n-1]
	c.scanlineList = c.scanlineList[:n-1]
	return y, true
}

func (c *Clipper64) hasLocMinAtY(y int64) bool {
	return c.currentLocMin < len(c.minimaList) &&
		c.minimaList[c.currentLocMin].vertex.pt.Y == y
}

func (c *Clipper64) popLocalMinima() localMinima {
	lm := c.minimaList[c.currentLocMin]
	c.currentLocMin++
	return lm
}

// ==============================================================================
// Edge helpers
// ==============================================================================

func isOdd(val int) bool { return val&1 != 0 }

func isHotEdge(ae *active) bool { return ae.outrec != nil }

func isOpen(ae *active) bool { return ae.localMin.isOpen }

func isOpenEndActive(ae *active) bool {
	return ae.localMin.isOpen && ae.vertexTop.flags&(vertexFlagsOpenStart|vertexFlagsOpenEnd) != 0
}

func isJoined(ae *active) bool { return ae.joinWith != joinWithNone }

func getPrevHotEdge(ae *active) *active {
	prev := ae.prevInAEL
	for prev != nil && (isOpen(prev) || !isHotEdge(prev)) {
		prev = prev.prevInAEL
	}
	return prev
}

func isFront(ae *active) bool { return ae == ae.outrec.frontEdge }

// getDx returns dx/dy; horizontal edges get +/-infinity so that they sort
// deterministically against rising edges.
func getDx(pt1, pt2 Point64) float64 {
	dy := float64(pt2.Y - pt1.Y)
	if dy != 0 {
		return float64(pt2.X-pt1.X) / dy
	}
	if pt2.X > pt1.X {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func topX(ae *active, currentY int64) int64 {
	if currentY == ae.top.Y || ae.top.X == ae.bot.X {
		return ae.top.X
	}
	if currentY == ae.bot.Y {
		return ae.bot.X
	}
	return ae.bot.X + int64(math.Round(ae.dx*float64(currentY-ae.bot.Y)))
}

func isHorizontal(ae *active) bool { return ae.top.Y == ae.bot.Y }

func isHeadingRightHorz(ae *active) bool { return math.IsInf(ae.dx, -1) }

func isHeadingLeftHorz(ae *active) bool { return math.IsInf(ae.dx, 1) }

func getPolyType(ae *active) PathType { return ae.localMin.polytype }

func isSamePolyType(ae1, ae2 *active) bool {
	return ae1.localMin.polytype == ae2.localMin.polytype
}

func setDx(ae *active) { ae.dx = getDx(ae.bot, ae.top) }

func nextVertex(ae *active) *vertex {
	if ae.windDx > 0 {
		return ae.vertexTop.next
	}
	return ae.vertexTop.prev
}

// prevPrevVertex walks against the ascending direction: the vertex below
// the bound's bottom.
func prevPrevVertex(ae *active) *vertex {
	if ae.windDx > 0 {
		return ae.vertexTop.prev.prev
	}
	return ae.vertexTop.next.next
}

func isMaximaVertex(v *vertex) bool { return v.flags&vertexFlagsLocalMax != 0 }

func isMaxima(ae *active) bool { return isMaximaVertex(ae.vertexTop) }

func getMaximaPair(ae *active) *active {
	ae2 := ae.nextInAEL
	for ae2 != nil {
		if ae2.vertexTop == ae.vertexTop {
			return ae2 // found!
		}
		ae2 = ae2.nextInAEL
	}
	return nil
}

func getCurrYMaximaVertex(ae *active) *vertex {
	result := ae.vertexTop
	if ae.windDx > 0 {
		for result.next.pt.Y == result.pt.Y {
			result = result.next
		}
	} else {
		for result.prev.pt.Y == result.pt.Y {
			result = result.prev
		}
	}
	if !isMaximaVertex(result) {
		result = nil
	}
	return result
}

func getCurrYMaximaVertexOpen(ae *active) *vertex {
	result := ae.vertexTop
	stop := vertexFlagsOpenEnd | vertexFlagsOpenStart | vertexFlagsLocalMax
	if ae.windDx > 0 {
		for result.next.pt.Y == result.pt.Y && result.flags&stop == 0 {
			result = result.next
		}
	} else {
		for result.prev.pt.Y == result.pt.Y && result.flags&stop == 0 {
			result = result.prev
		}
	}
	if !isMaximaVertex(result) {
		result = nil
	}
	return result
}

func swapOutrecs(ae1, ae2 *active) {
	or1 := ae1.outrec
	or2 := ae2.outrec
	if or1 == or2 {
		ae := or1.frontEdge
		or1.frontEdge = or1.backEdge
		or1.backEdge = ae
		return
	}
	if or1 != nil {
		if ae1 == or1.frontEdge {
			or1.frontEdge = ae2
		} else {
			or1.backEdge = ae2
		}
	}
	if or2 != nil {
		if ae2 == or2.frontEdge {
			or2.frontEdge = ae1
		} else {
			or2.backEdge = ae1
		}
	}
	ae1.outrec = or2
	ae2.outrec = or1
}

func setOwner(outrec, newOwner *outRec) {
	for newOwner.owner != nil && newOwner.owner.pts == nil {
		newOwner.owner = newOwner.owner.owner
	}
	// outrec must not own its new owner
	tmp := newOwner
	for tmp != nil && tmp != outrec {
		tmp = tmp.owner
	}
	if tmp != nil {
		newOwner.owner = outrec.owner
	}
	outrec.owner = newOwner
}

func getRealOutRec(outrec *outRec) *outRec {
	for outrec != nil && outrec.pts == nil {
		outrec = outrec.owner
	}
	return outrec
}

func isValidOwner(outrec, testOwner *outRec) bool {
	for testOwner != nil && testOwner != outrec {
		testOwner = testOwner.owner
	}
	return testOwner == nil
}

func uncoupleOutRec(ae *active) {
	outrec := ae.outrec
	if outrec == nil {
		return
	}
	outrec.frontEdge.outrec = nil
	outrec.backEdge.outrec = nil
	outrec.frontEdge = nil
	outrec.backEdge = nil
}

func outrecIsAscending(hotEdge *active) bool {
	return hotEdge == hotEdge.outrec.frontEdge
}

func swapFrontBackSides(outrec *outRec) {
	// necessary for open paths, almost never for closed ones
	ae2 := outrec.frontEdge
	outrec.frontEdge = outrec.backEdge
	outrec.backEdge = ae2
	outrec.pts = outrec.pts.next
}

func setSides(outrec *outRec, startEdge, endEdge *active) {
	outrec.frontEdge = startEdge
	outrec.backEdge = endEdge
}

func edgesAdjacentInAEL(inode *intersectNode) bool {
	return inode.edge1.nextInAEL == inode.edge2 || inode.edge1.prevInAEL == inode.edge2
}

// ==============================================================================
// Winding counts and contribution
// ==============================================================================

func (c *Clipper64) setWindCountForClosedPathEdge(ae *active) {
	// Winding counts look at ascending edge direction: positive when the
	// prior edge of the same polytype winds the same way.
	pt := getPolyType(ae)
	ae2 := ae.prevInAEL
	for ae2 != nil && (getPolyType(ae2) != pt || isOpen(ae2)) {
		ae2 = ae2.prevInAEL
	}

	if ae2 == nil {
		ae.windCount = ae.windDx
		ae2 = c.actives
	} else if c.fillrule == EvenOdd {
		ae.windCount = ae.windDx
		ae.windCount2 = ae2.windCount2
		ae2 = ae2.nextInAEL
	} else {
		// NonZero, Positive or Negative filling
		if ae2.windCount*ae2.windDx < 0 {
			// opposite winding direction, so ae is outside ae2
			if abs(ae2.windCount) > 1 {
				if ae2.windDx*ae.windDx < 0 {
					ae.windCount = ae2.windCount
				} else {
					ae.windCount = ae2.windCount + ae.windDx
				}
			} else if isOpen(ae) {
				ae.windCount = 1
			} else {
				ae.windCount = ae.windDx
			}
		} else {
			// same winding direction, so ae is inside ae2
			if ae2.windDx*ae.windDx < 0 {
				ae.windCount = ae2.windCount
			} else {
				ae.windCount = ae2.windCount + ae.windDx
			}
		}
		ae.windCount2 = ae2.windCount2
		ae2 = ae2.nextInAEL
	}

	// update windCount2 from the edges of the opposite polytype
	if c.fillrule == EvenOdd {
		for ae2 != ae {
			if getPolyType(ae2) != pt && !isOpen(ae2) {
				if ae.windCount2 == 0 {
					ae.windCount2 = 1
				} else {
					ae.windCount2 = 0
				}
			}
			ae2 = ae2.nextInAEL
		}
	} else {
		for ae2 != ae {
			if getPolyType(ae2) != pt && !isOpen(ae2) {
				ae.windCount2 += ae2.windDx
			}
			ae2 = ae2.nextInAEL
		}
	}
}

func (c *Clipper64) setWindCountForOpenPathEdge(ae *active) {
	ae2 := c.actives
	if c.fillrule == EvenOdd {
		cnt1, cnt2 := 0, 0
		for ae2 != ae {
			if getPolyType(ae2) == PathTypeClip {
				cnt2++
			} else if !isOpen(ae2) {
				cnt1++
			}
			ae2 = ae2.nextInAEL
		}
		if isOdd(cnt1) {
			ae.windCount = 1
		} else {
			ae.windCount = 0
		}
		if isOdd(cnt2) {
			ae.windCount2 = 1
		} else {
			ae.windCount2 = 0
		}
	} else {
		for ae2 != ae {
			if getPolyType(ae2) == PathTypeClip {
				ae.windCount2 += ae2.windDx
			} else if !isOpen(ae2) {
				ae.windCount += ae2.windDx
			}
			ae2 = ae2.nextInAEL
		}
	}
}

func (c *Clipper64) isContributingClosed(ae *active) bool {
	switch c.fillrule {
	case Positive:
		if ae.windCount != 1 {
			return false
		}
	case Negative:
		if ae.windCount != -1 {
			return false
		}
	case NonZero:
		if abs(ae.windCount) != 1 {
			return false
		}
	}

	switch c.cliptype {
	case Intersection:
		switch c.fillrule {
		case Positive:
			return ae.windCount2 > 0
		case Negative:
			return ae.windCount2 < 0
		default:
			return ae.windCount2 != 0
		}
	case Union:
		switch c.fillrule {
		case Positive:
			return ae.windCount2 <= 0
		case Negative:
			return ae.windCount2 >= 0
		default:
			return ae.windCount2 == 0
		}
	case Difference:
		var result bool
		switch c.fillrule {
		case Positive:
			result = ae.windCount2 <= 0
		case Negative:
			result = ae.windCount2 >= 0
		default:
			result = ae.windCount2 == 0
		}
		return (getPolyType(ae) == PathTypeSubject) == result
	case Xor:
		return true
	default:
		return false
	}
}

func (c *Clipper64) isContributingOpen(ae *active) bool {
	var isInSubj, isInClip bool
	switch c.fillrule {
	case Positive:
		isInSubj = ae.windCount > 0
		isInClip = ae.windCount2 > 0
	case Negative:
		isInSubj = ae.windCount < 0
		isInClip = ae.windCount2 < 0
	default:
		isInSubj = ae.windCount != 0
		isInClip = ae.windCount2 != 0
	}

	switch c.cliptype {
	case Intersection:
		return isInClip
	case Union:
		return !isInSubj && !isInClip
	default:
		return !isInClip
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ==============================================================================
// AEL insertion
// ==============================================================================

// isValidAelOrder decides whether newcomer belongs to the right of resident.
func isValidAelOrder(resident, newcomer *active) bool {
	if newcomer.curX != resident.curX {
		return newcomer.curX > resident.curX
	}

	// x positions tie, so compare turning direction
	d := CrossProduct(resident.top, newcomer.bot, newcomer.top)
	if d != 0 {
		return d < 0
	}

	// edges are collinear so far; use the bounds they're about to follow
	if !isMaxima(resident) && resident.top.Y > newcomer.top.Y {
		return CrossProduct(newcomer.bot, resident.top, nextVertex(resident).pt) <= 0
	}
	if !isMaxima(newcomer) && newcomer.top.Y > resident.top.Y {
		return CrossProduct(newcomer.bot, newcomer.top, nextVertex(newcomer).pt) >= 0
	}

	y := newcomer.bot.Y
	newcomerIsLeft := newcomer.isLeftBound
	if resident.bot.Y != y || resident.localMin.vertex.pt.Y != y {
		return newcomer.isLeftBound
	}
	// resident must also have just been inserted
	if resident.isLeftBound != newcomerIsLeft {
		return newcomerIsLeft
	}
	if CrossProduct(prevPrevVertex(resident).pt, resident.bot, resident.top) == 0 {
		return true
	}
	// compare turning direction of the alternate bound
	return (CrossProduct(prevPrevVertex(resident).pt, newcomer.bot, prevPrevVertex(newcomer).pt) > 0) == newcomerIsLeft
}

func (c *Clipper64) insertLeftEdge(ae *active) {
	if c.actives == nil {
		ae.prevInAEL = nil
		ae.nextInAEL = nil
		c.actives = ae
		return
	}
	if !isValidAelOrder(c.actives, ae) {
		ae.prevInAEL = nil
		ae.nextInAEL = c.actives
		c.actives.prevInAEL = ae
		c.actives = ae
		return
	}
	ae2 := c.actives
	for ae2.nextInAEL != nil && isValidAelOrder(ae2.nextInAEL, ae) {
		ae2 = ae2.nextInAEL
	}
	ae.nextInAEL = ae2.nextInAEL
	if ae2.nextInAEL != nil {
		ae2.nextInAEL.prevInAEL = ae
	}
	ae.prevInAEL = ae2
	ae2.nextInAEL = ae
}

func insertRightEdge(ae, ae2 *active) {
	ae2.nextInAEL = ae.nextInAEL
	if ae.nextInAEL != nil {
		ae.nextInAEL.prevInAEL = ae2
	}
	ae2.prevInAEL = ae
	ae.nextInAEL = ae2
}

func (c *Clipper64) insertLocalMinimaIntoAEL(botY int64) {
	// Add any local minima at botY: horizontal edges are processed after
	// the non-horizontals, and only rising (left and right bound) edges
	// join the AEL here.
	for c.hasLocMinAtY(botY) {
		lm := c.popLocalMinima()

		var leftBound *active
		if lm.vertex.flags&vertexFlagsOpenStart == 0 {
			leftBound = &active{
				bot:       lm.vertex.pt,
				curX:      lm.vertex.pt.X,
				windDx:    -1,
				vertexTop: lm.vertex.prev,
				top:       lm.vertex.prev.pt,
				localMin:  lm,
			}
			setDx(leftBound)
		}

		var rightBound *active
		if lm.vertex.flags&vertexFlagsOpenEnd == 0 {
			rightBound = &active{
				bot:       lm.vertex.pt,
				curX:      lm.vertex.pt.X,
				windDx:    1,
				vertexTop: lm.vertex.next,
				top:       lm.vertex.next.pt,
				localMin:  lm,
			}
			setDx(rightBound)
		}

		if leftBound != nil && rightBound != nil {
			if isHorizontal(leftBound) {
				if isHeadingRightHorz(leftBound) {
					leftBound, rightBound = rightBound, leftBound
				}
			} else if isHorizontal(rightBound) {
				if isHeadingLeftHorz(rightBound) {
					leftBound, rightBound = rightBound, leftBound
				}
			} else if leftBound.dx < rightBound.dx {
				leftBound, rightBound = rightBound, leftBound
			}
		} else if leftBound == nil {
			leftBound = rightBound
			rightBound = nil
		}

		var contributing bool
		leftBound.isLeftBound = true
		c.insertLeftEdge(leftBound)

		if isOpen(leftBound) {
			c.setWindCountForOpenPathEdge(leftBound)
			contributing = c.isContributingOpen(leftBound)
		} else {
			c.setWindCountForClosedPathEdge(leftBound)
			contributing = c.isContributingClosed(leftBound)
		}

		if rightBound != nil {
			rightBound.windCount = leftBound.windCount
			rightBound.windCount2 = leftBound.windCount2
			insertRightEdge(leftBound, rightBound)

			if contributing {
				c.addLocalMinPoly(leftBound, rightBound, leftBound.bot, true)
				if !isHorizontal(leftBound) {
					c.checkJoinLeft(leftBound, leftBound.bot, false)
				}
			}

			for rightBound.nextInAEL != nil && isValidAelOrder(rightBound.nextInAEL, rightBound) {
				c.intersectEdges(rightBound, rightBound.nextInAEL, rightBound.bot)
				c.swapPositionsInAEL(rightBound, rightBound.nextInAEL)
			}

			if isHorizontal(rightBound) {
				c.pushHorz(rightBound)
			} else {
				c.checkJoinRight(rightBound, rightBound.bot, false)
				c.insertScanline(rightBound.top.Y)
			}
		} else if contributing {
			c.startOpenPath(leftBound, leftBound.bot)
		}

		if isHorizontal(leftBound) {
			c.pushHorz(leftBound)
		} else {
			c.insertScanline(leftBound.top.Y)
		}
	}
}

func (c *Clipper64) pushHorz(ae *active) {
	if c.sel != nil {
		ae.nextInSEL = c.sel
	} else {
		ae.nextInSEL = nil
	}
	c.sel = ae
}

func (c *Clipper64) popHorz() (*active, bool) {
	ae := c.sel
	if ae == nil {
		return nil, false
	}
	c.sel = ae.nextInSEL
	return ae, true
}

// ==============================================================================
// Output records
// ==============================================================================

func (c *Clipper64) newOutRec() *outRec {
	result := &outRec{idx: len(c.outrecList)}
	c.outrecList = append(c.outrecList, result)
	return result
}

func (c *Clipper64) addLocalMinPoly(ae1, ae2 *active, pt Point64, isNew bool) *outPt {
	outrec := c.newOutRec()
	ae1.outrec = outrec
	ae2.outrec = outrec

	if isOpen(ae1) {
		outrec.owner = nil
		outrec.isOpen = true
		if ae1.windDx > 0 {
			setSides(outrec, ae1, ae2)
		} else {
			setSides(outrec, ae2, ae1)
		}
	} else {
		outrec.isOpen = false
		prevHotEdge := getPrevHotEdge(ae1)
		// the front edge is the ascending edge, and front/back choice here
		// determines output orientation
		if prevHotEdge != nil {
			if c.usingPolytree {
				setOwner(outrec, prevHotEdge.outrec)
			}
			outrec.owner = prevHotEdge.outrec
			if outrecIsAscending(prevHotEdge) == isNew {
				setSides(outrec, ae2, ae1)
			} else {
				setSides(outrec, ae1, ae2)
			}
		} else {
			outrec.owner = nil
			if isNew {
				setSides(outrec, ae1, ae2)
			} else {
				setSides(outrec, ae2, ae1)
			}
		}
	}

	op := newOutPt(pt, outrec)
	outrec.pts = op
	return op
}

func (c *Clipper64) addLocalMaxPoly(ae1, ae2 *active, pt Point64) *outPt {
	if isJoined(ae1) {
		c.split(ae1, pt)
	}
	if isJoined(ae2) {
		c.split(ae2, pt)
	}

	if isFront(ae1) == isFront(ae2) {
		if isOpenEndActive(ae1) {
			swapFrontBackSides(ae1.outrec)
		} else if isOpenEndActive(ae2) {
			swapFrontBackSides(ae2.outrec)
		} else {
			c.succeeded = false
			return nil
		}
	}

	result := c.addOutPt(ae1, pt)
	if ae1.outrec == ae2.outrec {
		outrec := ae1.outrec
		outrec.pts = result
		if c.usingPolytree {
			e := getPrevHotEdge(ae1)
			if e == nil {
				outrec.owner = nil
			} else {
				setOwner(outrec, e.outrec)
			}
			// owner here may not be the real owner; resolved in buildTree
		}
		uncoupleOutRec(ae1)
	} else if isOpen(ae1) {
		// preserve the winding orientation of the output
		if ae1.windDx < 0 {
			c.joinOutrecPaths(ae1, ae2)
		} else {
			c.joinOutrecPaths(ae2, ae1)
		}
	} else if ae1.outrec.idx < ae2.outrec.idx {
		c.joinOutrecPaths(ae1, ae2)
	} else {
		c.joinOutrecPaths(ae2, ae1)
	}
	return result
}

func (c *Clipper64) joinOutrecPaths(ae1, ae2 *active) {
	// join ae2's outrec path onto ae1's, leaving ae2's outrec empty
	p1Start := ae1.outrec.pts
	p2Start := ae2.outrec.pts
	p1End := p1Start.next
	p2End := p2Start.next
	if isFront(ae1) {
		p2End.prev = p1Start
		p1Start.next = p2End
		p2Start.next = p1End
		p1End.prev = p2Start
		ae1.outrec.pts = p2Start
		ae1.outrec.frontEdge = ae2.outrec.frontEdge
		if ae1.outrec.frontEdge != nil {
			ae1.outrec.frontEdge.outrec = ae1.outrec
		}
	} else {
		p1End.prev = p2Start
		p2Start.next = p1End
		p1Start.next = p2End
		p2End.prev = p1Start
		ae1.outrec.backEdge = ae2.outrec.backEdge
		if ae1.outrec.backEdge != nil {
			ae1.outrec.backEdge.outrec = ae1.outrec
		}
	}

	ae2.outrec.frontEdge = nil
	ae2.outrec.backEdge = nil
	ae2.outrec.pts = nil
	setOwner(ae2.outrec, ae1.outrec)

	if isOpenEndActive(ae1) {
		ae2.outrec.pts = ae1.outrec.pts
		ae1.outrec.pts = nil
	}

	ae1.outrec = nil
	ae2.outrec = nil
}

func (c *Clipper64) addOutPt(ae *active, pt Point64) *outPt {
	// The front of an out-rec's op ring grows from outrec.pts, the back
	// from outrec.pts.next.
	outrec := ae.outrec
	toFront := isFront(ae)
	opFront := outrec.pts
	opBack := opFront.next

	if toFront && pt == opFront.pt {
		return opFront
	}
	if !toFront && pt == opBack.pt {
		return opBack
	}

	newOp := &outPt{pt: pt, outrec: outrec}
	opBack.prev = newOp
	newOp.prev = opFront
	newOp.next = opBack
	opFront.next = newOp
	if toFront {
		outrec.pts = newOp
	}
	return newOp
}

func (c *Clipper64) startOpenPath(ae *active, pt Point64) *outPt {
	outrec := c.newOutRec()
	outrec.isOpen = true
	if ae.windDx > 0 {
		outrec.frontEdge = ae
		outrec.backEdge = nil
	} else {
		outrec.frontEdge = nil
		outrec.backEdge = ae
	}
	ae.outrec = outrec
	op := newOutPt(pt, outrec)
	outrec.pts = op
	return op
}

func (c *Clipper64) updateEdgeIntoAEL(ae *active) {
	ae.bot = ae.top
	ae.vertexTop = nextVertex(ae)
	ae.top = ae.vertexTop.pt
	ae.curX = ae.bot.X
	setDx(ae)

	if isJoined(ae) {
		c.split(ae, ae.bot)
	}

	if isHorizontal(ae) {
		if !isOpen(ae) {
			c.trimHorz(ae, c.PreserveCollinear)
		}
		return
	}
	c.insertScanline(ae.top.Y)

	c.checkJoinLeft(ae, ae.bot, false)
	c.checkJoinRight(ae, ae.bot, true)
}

func findEdgeWithMatchingLocMin(ae *active) *active {
	result := ae.nextInAEL
	for result != nil {
		if result.localMin.vertex == ae.localMin.vertex {
			return result
		}
		if !isHorizontal(result) && ae.bot != result.bot {
			result = nil
		} else {
			result = result.nextInAEL
		}
	}
	result = ae.prevInAEL
	for result != nil {
		if result.localMin.vertex == ae.localMin.vertex {
			return result
		}
		if !isHorizontal(result) && ae.bot != result.bot {
			return nil
		}
		result = result.prevInAEL
	}
	return result
}

// ==============================================================================
// Edge intersection (the event classifier)
// ==============================================================================

func (c *Clipper64) intersectEdges(ae1, ae2 *active, pt Point64) {
	// open path intersections are managed separately
	if c.hasOpenPaths && (isOpen(ae1) || isOpen(ae2)) {
		if isOpen(ae1) && isOpen(ae2) {
			return
		}
		if isOpen(ae2) {
			ae1, ae2 = ae2, ae1
		}
		if isJoined(ae2) {
			c.split(ae2, pt)
		}

		if c.cliptype == Union {
			if !isHotEdge(ae2) {
				return
			}
		} else if ae2.localMin.polytype == PathTypeSubject {
			return
		}

		switch c.fillrule {
		case Positive:
			if ae2.windCount != 1 {
				return
			}
		case Negative:
			if ae2.windCount != -1 {
				return
			}
		default:
			if abs(ae2.windCount) != 1 {
				return
			}
		}

		// toggle the open-edge contribution
		if isHotEdge(ae1) {
			c.addOutPt(ae1, pt)
			if isFront(ae1) {
				ae1.outrec.frontEdge = nil
			} else {
				ae1.outrec.backEdge = nil
			}
			ae1.outrec = nil
		} else if pt == ae1.localMin.vertex.pt &&
			ae1.localMin.vertex.flags&(vertexFlagsOpenStart|vertexFlagsOpenEnd) == 0 {
			// horizontal edges can pass under open paths at a local minimum,
			// so look for the bound on the other side of it
			ae3 := findEdgeWithMatchingLocMin(ae1)
			if ae3 != nil && isHotEdge(ae3) {
				ae1.outrec = ae3.outrec
				if ae1.windDx > 0 {
					setSides(ae3.outrec, ae1, ae3)
				} else {
					setSides(ae3.outrec, ae3, ae1)
				}
				return
			}
			c.startOpenPath(ae1, pt)
		} else {
			c.startOpenPath(ae1, pt)
		}
		return
	}

	// managing closed paths from here on
	if isJoined(ae1) {
		c.split(ae1, pt)
	}
	if isJoined(ae2) {
		c.split(ae2, pt)
	}

	// update winding counts
	if ae1.localMin.polytype == ae2.localMin.polytype {
		if c.fillrule == EvenOdd {
			ae1.windCount, ae2.windCount = ae2.windCount, ae1.windCount
		} else {
			if ae1.windCount+ae2.windDx == 0 {
				ae1.windCount = -ae1.windCount
			} else {
				ae1.windCount += ae2.windDx
			}
			if ae2.windCount-ae1.windDx == 0 {
				ae2.windCount = -ae2.windCount
			} else {
				ae2.windCount -= ae1.windDx
			}
		}
	} else {
		if c.fillrule != EvenOdd {
			ae1.windCount2 += ae2.windDx
		} else if ae1.windCount2 == 0 {
			ae1.windCount2 = 1
		} else {
			ae1.windCount2 = 0
		}
		if c.fillrule != EvenOdd {
			ae2.windCount2 -= ae1.windDx
		} else if ae2.windCount2 == 0 {
			ae2.windCount2 = 1
		} else {
			ae2.windCount2 = 0
		}
	}

	var e1Wc, e2Wc int
	switch c.fillrule {
	case Positive:
		e1Wc = ae1.windCount
		e2Wc = ae2.windCount
	case Negative:
		e1Wc = -ae1.windCount
		e2Wc = -ae2.windCount
	default:
		e1Wc = abs(ae1.windCount)
		e2Wc = abs(ae2.windCount)
	}

	if (!isHotEdge(ae1) && e1Wc != 0 && e1Wc != 1) ||
		(!isHotEdge(ae2) && e2Wc != 0 && e2Wc != 1) {
		return
	}

	// now process the intersection
	if isHotEdge(ae1) && isHotEdge(ae2) {
		if (e1Wc != 0 && e1Wc != 1) || (e2Wc != 0 && e2Wc != 1) ||
			(ae1.localMin.polytype != ae2.localMin.polytype && c.cliptype != Xor) {
			c.addLocalMaxPoly(ae1, ae2, pt)
		} else if isFront(ae1) || ae1.outrec == ae2.outrec {
			// polygons touching at a shared vertex are split apart here
			c.addLocalMaxPoly(ae1, ae2, pt)
			c.addLocalMinPoly(ae1, ae2, pt, false)
		} else {
			c.addOutPt(ae1, pt)
			c.addOutPt(ae2, pt)
			swapOutrecs(ae1, ae2)
		}
	} else if isHotEdge(ae1) {
		c.addOutPt(ae1, pt)
		swapOutrecs(ae1, ae2)
	} else if isHotEdge(ae2) {
		c.addOutPt(ae2, pt)
		swapOutrecs(ae1, ae2)
	} else {
		var e1Wc2, e2Wc2 int
		switch c.fillrule {
		case Positive:
			e1Wc2 = ae1.windCount2
			e2Wc2 = ae2.windCount2
		case Negative:
			e1Wc2 = -ae1.windCount2
			e2Wc2 = -ae2.windCount2
		default:
			e1Wc2 = abs(ae1.windCount2)
			e2Wc2 = abs(ae2.windCount2)
		}

		if !isSamePolyType(ae1, ae2) {
			c.addLocalMinPoly(ae1, ae2, pt, false)
		} else if e1Wc == 1 && e2Wc == 1 {
			switch c.cliptype {
			case Union:
				if e1Wc2 > 0 && e2Wc2 > 0 {
					return
				}
				c.addLocalMinPoly(ae1, ae2, pt, false)
			case Difference:
				if (getPolyType(ae1) == PathTypeClip && e1Wc2 > 0 && e2Wc2 > 0) ||
					(getPolyType(ae1) == PathTypeSubject && e1Wc2 <= 0 && e2Wc2 <= 0) {
					c.addLocalMinPoly(ae1, ae2, pt, false)
				}
			case Xor:
				c.addLocalMinPoly(ae1, ae2, pt, false)
			default: // Intersection
				if e1Wc2 <= 0 || e2Wc2 <= 0 {
					return
				}
				c.addLocalMinPoly(ae1, ae2, pt, false)
			}
		}
	}
}

func (c *Clipper64) deleteFromAEL(ae *active) {
	prev := ae.prevInAEL
	next := ae.nextInAEL
	if prev == nil && next == nil && ae != c.actives {
		return // already deleted
	}
	if prev != nil {
		prev.nextInAEL = next
	} else {
		c.actives = next
	}
	if next != nil {
		next.prevInAEL = prev
	}
	ae.prevInAEL = nil
	ae.nextInAEL = nil
}

func (c *Clipper64) adjustCurrXAndCopyToSEL(topY int64) {
	ae := c.actives
	c.sel = ae
	for ae != nil {
		ae.prevInSEL = ae.prevInAEL
		ae.nextInSEL = ae.nextInAEL
		ae.jump = ae.nextInSEL
		if ae.joinWith == joinWithLeft {
			ae.curX = ae.prevInAEL.curX // keeps joined edges together
		} else {
			ae.curX = topX(ae, topY)
		}
		ae = ae.nextInAEL
	}
}

// ==============================================================================
// Joins (collinear hot-edge merging)
// ==============================================================================

func (c *Clipper64) split(e *active, currPt Point64) {
	if e.joinWith == joinWithRight {
		e.joinWith = joinWithNone
		e.nextInAEL.joinWith = joinWithNone
		c.addLocalMinPoly(e, e.nextInAEL, currPt, true)
	} else {
		e.joinWith = joinWithNone
		e.prevInAEL.joinWith = joinWithNone
		c.addLocalMinPoly(e.prevInAEL, e, currPt, true)
	}
}

func (c *Clipper64) checkJoinLeft(e *active, pt Point64, checkCurrX bool) {
	prev := e.prevInAEL
	if prev == nil || !isHotEdge(e) || !isHotEdge(prev) ||
		isHorizontal(e) || isHorizontal(prev) || isOpen(e) || isOpen(prev) {
		return
	}
	if (pt.Y < e.top.Y+2 || pt.Y < prev.top.Y+2) &&
		(e.bot.Y > pt.Y || prev.bot.Y > pt.Y) {
		return // avoid trivial joins
	}
	if checkCurrX {
		if PerpendicDistFromLineSqrd(pt, prev.bot, prev.top) > 0.25 {
			return
		}
	} else if e.curX != prev.curX {
		return
	}
	if !IsCollinear(e.top, pt, prev.top) {
		return
	}

	if e.outrec.idx == prev.outrec.idx {
		c.addLocalMaxPoly(prev, e, pt)
	} else if e.outrec.idx < prev.outrec.idx {
		c.joinOutrecPaths(e, prev)
	} else {
		c.joinOutrecPaths(prev, e)
	}
	prev.joinWith = joinWithRight
	e.joinWith = joinWithLeft
}

func (c *Clipper64) checkJoinRight(e *active, pt Point64, checkCurrX bool) {
	next := e.nextInAEL
	if next == nil || !isHotEdge(e) || !isHotEdge(next) ||
		isHorizontal(e) || isHorizontal(next) || isOpen(e) || isOpen(next) {
		return
	}
	if (pt.Y < e.top.Y+2 || pt.Y < next.top.Y+2) &&
		(e.bot.Y > pt.Y || next.bot.Y > pt.Y) {
		return // avoid trivial joins
	}
	if checkCurrX {
		if PerpendicDistFromLineSqrd(pt, next.bot, next.top) > 0.35 {
			return
		}
	} else if e.curX != next.curX {
		return
	}
	if !IsCollinear(e.top, pt, next.top) {
		return
	}

	if e.outrec.idx == next.outrec.idx {
		c.addLocalMaxPoly(e, next, pt)
	} else if e.outrec.idx < next.outrec.idx {
		c.joinOutrecPaths(e, next)
	} else {
		c.joinOutrecPaths(next, e)
	}
	e.joinWith = joinWithRight
	next.joinWith = joinWithLeft
}

// ==============================================================================
// Intersections within a scanbeam
// ==============================================================================

func (c *Clipper64) doIntersections(topY int64) {
	if c.buildIntersectList(topY) {
		c.processIntersectList()
		c.intersectList = c.intersectList[:0]
	}
}

// getClosestPtOnSegment projects offPt onto segment (seg1, seg2).
func getClosestPtOnSegment(offPt, seg1, seg2 Point64) Point64 {
	if seg1 == seg2 {
		return seg1
	}
	dx := float64(seg2.X - seg1.X)
	dy := float64(seg2.Y - seg1.Y)
	q := (float64(offPt.X-seg1.X)*dx + float64(offPt.Y-seg1.Y)*dy) / (dx*dx + dy*dy)
	if q < 0 {
		q = 0
	} else if q > 1 {
		q = 1
	}
	return Point64{
		X: seg1.X + int64(math.Round(q*dx)),
		Y: seg1.Y + int64(math.Round(q*dy)),
	}
}

func (c *Clipper64) addNewIntersectNode(ae1, ae2 *active, topY int64) {
	ip, ok := getSegmentIntersectPt(ae1.bot, ae1.top, ae2.bot, ae2.top)
	if !ok {
		ip = Point64{X: ae1.curX, Y: topY}
	}

	if ip.Y > c.currentBotY || ip.Y < topY {
		// rounding can nudge the intersection outside the scanbeam; keep the
		// point that preserves AEL monotonicity (near-horizontal edges get a
		// projection onto the flatter segment)
		absDx1 := math.Abs(ae1.dx)
		absDx2 := math.Abs(ae2.dx)
		switch {
		case absDx1 > 100 && absDx2 > 100:
			if absDx1 > absDx2 {
				ip = getClosestPtOnSegment(ip, ae1.bot, ae1.top)
			} else {
				ip = getClosestPtOnSegment(ip, ae2.bot, ae2.top)
			}
		case absDx1 > 100:
			ip = getClosestPtOnSegment(ip, ae1.bot, ae1.top)
		case absDx2 > 100:
			ip = getClosestPtOnSegment(ip, ae2.bot, ae2.top)
		default:
			if ip.Y < topY {
				ip.Y = topY
			} else {
				ip.Y = c.currentBotY
			}
			if absDx1 < absDx2 {
				ip.X = topX(ae1, ip.Y)
			} else {
				ip.X = topX(ae2, ip.Y)
			}
		}
	}

	c.intersectList = append(c.intersectList, &intersectNode{pt: ip, edge1: ae1, edge2: ae2})
}

func extractFromSEL(ae *active) *active {
	res := ae.nextInSEL
	if res != nil {
		res.prevInSEL = ae.prevInSEL
	}
	ae.prevInSEL.nextInSEL = res
	return res
}

func insert1Before2InSEL(ae1, ae2 *active) {
	ae1.prevInSEL = ae2.prevInSEL
	if ae1.prevInSEL != nil {
		ae1.prevInSEL.nextInSEL = ae1
	}
	ae1.nextInSEL = ae2
	ae2.prevInSEL = ae1
}

func (c *Clipper64) buildIntersectList(topY int64) bool {
	if c.actives == nil || c.actives.nextInAEL == nil {
		return false
	}

	// Edge positions at the top of the scanbeam determine which adjacent
	// pairs must swap; a stable merge over the SEL records each crossing.
	c.adjustCurrXAndCopyToSEL(topY)

	left := c.sel
	for left.jump != nil {
		var prevBase *active
		for left != nil && left.jump != nil {
			currBase := left
			right := left.jump
			lEnd := right
			rEnd := right.jump
			left.jump = rEnd
			for left != lEnd && right != rEnd {
				if right.curX < left.curX {
					tmp := right.prevInSEL
					for {
						c.addNewIntersectNode(tmp, right, topY)
						if left == tmp {
							break
						}
						tmp = tmp.prevInSEL
					}
					tmp = right
					right = extractFromSEL(tmp)
					lEnd = right
					insert1Before2InSEL(tmp, left)
					if left == currBase {
						currBase = tmp
						currBase.jump = rEnd
						if prevBase == nil {
							c.sel = currBase
						} else {
							prevBase.jump = currBase
						}
					}
				} else {
					left = left.nextInSEL
				}
			}
			prevBase = currBase
			left = rEnd
		}
		left = c.sel
	}
	return len(c.intersectList) > 0
}

func (c *Clipper64) processIntersectList() {
	// Intersections must be processed from the bottom of the scanbeam up,
	// and strictly between edges that are adjacent in the AEL at the time.
	sort.SliceStable(c.intersectList, func(i, j int) bool {
		a, b := c.intersectList[i].pt, c.intersectList[j].pt
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X < b.X
	})

	for i := 0; i < len(c.intersectList); i++ {
		if !edgesAdjacentInAEL(c.intersectList[i]) {
			j := i + 1
			for !edgesAdjacentInAEL(c.intersectList[j]) {
				j++
			}
			c.intersectList[i], c.intersectList[j] = c.intersectList[j], c.intersectList[i]
		}

		node := c.intersectList[i]
		c.intersectEdges(node.edge1, node.edge2, node.pt)
		c.swapPositionsInAEL(node.edge1, node.edge2)

		node.edge1.curX = node.pt.X
		node.edge2.curX = node.pt.X
		c.checkJoinLeft(node.edge2, node.pt, true)
		c.checkJoinRight(node.edge1, node.pt, true)
	}
}

func (c *Clipper64) swapPositionsInAEL(ae1, ae2 *active) {
	// precondition: ae1 is immediately left of ae2
	next := ae2.nextInAEL
	if next != nil {
		next.prevInAEL = ae1
	}
	prev := ae1.prevInAEL
	if prev != nil {
		prev.nextInAEL = ae2
	}
	ae2.prevInAEL = prev
	ae2.nextInAEL = ae1
	ae1.prevInAEL = ae2
	ae1.nextInAEL = next
	if ae2.prevInAEL == nil {
		c.actives = ae2
	}
}

// ==============================================================================
// Horizontal edges
// ==============================================================================

func (c *Clipper64) trimHorz(horzEdge *active, preserveCollinear bool) {
	wasTrimmed := false
	pt := nextVertex(horzEdge).pt
	for pt.Y == horzEdge.top.Y {
		// always trim 180 degree spikes in closed paths
		if preserveCollinear &&
			(pt.X < horzEdge.top.X) != (horzEdge.bot.X < horzEdge.top.X) {
			break
		}
		horzEdge.vertexTop = nextVertex(horzEdge)
		horzEdge.top = pt
		wasTrimmed = true
		if isMaxima(horzEdge) {
			break
		}
		pt = nextVertex(horzEdge).pt
	}
	if wasTrimmed {
		setDx(horzEdge) // +/-infinity
	}
}

func resetHorzDirection(horz *active, vertexMax *vertex) (leftToRight bool, leftX, rightX int64) {
	if horz.bot.X == horz.top.X {
		// degenerate horizontal; direction is decided by its maxima pair
		leftX = horz.curX
		rightX = horz.curX
		ae := horz.nextInAEL
		for ae != nil && ae.vertexTop != vertexMax {
			ae = ae.nextInAEL
		}
		return ae != nil, leftX, rightX
	}
	if horz.curX < horz.top.X {
		return true, horz.curX, horz.top.X
	}
	return false, horz.top.X, horz.curX
}

func (c *Clipper64) doHorizontal(horz *active) {
	// Horizontal edges at a scanline are layered: they intersect the bottom
	// vertices of other horizontals and any non-horizontal edge they pass
	// over, then promote to the next edge in their bound.
	horzIsOpen := isOpen(horz)
	y := horz.bot.Y

	var vertexMax *vertex
	if horzIsOpen {
		vertexMax = getCurrYMaximaVertexOpen(horz)
	} else {
		vertexMax = getCurrYMaximaVertex(horz)
	}

	// remove 180 degree spikes and consecutive collinear horizontals
	if vertexMax != nil && !horzIsOpen && vertexMax != horz.vertexTop {
		c.trimHorz(horz, c.PreserveCollinear)
	}

	leftToRight, leftX, rightX := resetHorzDirection(horz, vertexMax)

	if isHotEdge(horz) {
		op := c.addOutPt(horz, Point64{X: horz.curX, Y: y})
		c.addToHorzSegList(op)
	}

	for {
		// loop through consecutive horizontal edges
		var ae *active
		if leftToRight {
			ae = horz.nextInAEL
		} else {
			ae = horz.prevInAEL
		}

		for ae != nil {
			if ae.vertexTop == vertexMax {
				// the horizontal's maxima pair: finish here
				if isHotEdge(horz) && isJoined(ae) {
					c.split(ae, ae.top)
				}
				if isHotEdge(horz) {
					for horz.vertexTop != vertexMax {
						c.addOutPt(horz, horz.top)
						c.updateEdgeIntoAEL(horz)
					}
					if leftToRight {
						c.addLocalMaxPoly(horz, ae, horz.top)
					} else {
						c.addLocalMaxPoly(ae, horz, horz.top)
					}
				}
				c.deleteFromAEL(ae)
				c.deleteFromAEL(horz)
				return
			}

			// when the horizontal is a maxima, keep going until its maxima
			// pair; otherwise stop at the end of the horizontal run
			if vertexMax != horz.vertexTop || isOpenEndActive(horz) {
				if (leftToRight && ae.curX > rightX) ||
					(!leftToRight && ae.curX < leftX) {
					break
				}

				if ae.curX == horz.top.X && !isHorizontal(ae) {
					pt := nextVertex(horz).pt
					if horzIsOpen && isOpen(ae) && !isSamePolyType(horz, ae) {
						// keep open edges in solutions where possible: only
						// break when past the horizontal's end
						if (leftToRight && topX(ae, pt.Y) > pt.X) ||
							(!leftToRight && topX(ae, pt.Y) < pt.X) {
							break
						}
					} else if (leftToRight && topX(ae, pt.Y) >= pt.X) ||
						(!leftToRight && topX(ae, pt.Y) <= pt.X) {
						break
					}
				}
			}

			pt := Point64{X: ae.curX, Y: y}
			if leftToRight {
				c.intersectEdges(horz, ae, pt)
				c.swapPositionsInAEL(horz, ae)
				horz.curX = ae.curX
				ae = horz.nextInAEL
			} else {
				c.intersectEdges(ae, horz, pt)
				c.swapPositionsInAEL(ae, horz)
				horz.curX = ae.curX
				ae = horz.prevInAEL
			}
			if isHotEdge(horz) {
				c.addToHorzSegList(c.getLastOp(horz))
			}
		}

		// end of this horizontal run
		if horzIsOpen && isOpenEndActive(horz) {
			// open at the top
			if isHotEdge(horz) {
				c.addOutPt(horz, horz.top)
				if isFront(horz) {
					horz.outrec.frontEdge = nil
				} else {
					horz.outrec.backEdge = nil
				}
				horz.outrec = nil
			}
			c.deleteFromAEL(horz)
			return
		}
		if nextVertex(horz).pt.Y != horz.top.Y {
			break
		}

		// more horizontals in this bound
		if isHotEdge(horz) {
			c.addOutPt(horz, horz.top)
		}
		c.updateEdgeIntoAEL(horz)

		leftToRight, leftX, rightX = resetHorzDirection(horz, vertexMax)
	}

	if isHotEdge(horz) {
		op := c.addOutPt(horz, horz.top)
		c.addToHorzSegList(op)
	}
	c.updateEdgeIntoAEL(horz) // the end of an intermediate horizontal
}

// ==============================================================================
// Top of scanbeam and maxima
// ==============================================================================

func (c *Clipper64) doTopOfScanbeam(y int64) {
	c.sel = nil // reused to queue horizontals (see pushHorz)
	ae := c.actives
	for ae != nil {
		// ae is never horizontal here
		if ae.top.Y == y {
			ae.curX = ae.top.X
			if isMaxima(ae) {
				ae = c.doMaxima(ae) // top of bound
				continue
			}
			// an intermediate vertex
			if isHotEdge(ae) {
				c.addOutPt(ae, ae.top)
			}
			c.updateEdgeIntoAEL(ae)
			if isHorizontal(ae) {
				c.pushHorz(ae) // horizontals are processed later
			}
		} else {
			ae.curX = topX(ae, y)
		}
		ae = ae.nextInAEL
	}
}

func (c *Clipper64) doMaxima(ae *active) *active {
	prevE := ae.prevInAEL

	if isOpenEndActive(ae) {
		if isHotEdge(ae) {
			c.addOutPt(ae, ae.top)
		}
		if !isHorizontal(ae) {
			if isHotEdge(ae) {
				if isFront(ae) {
					ae.outrec.frontEdge = nil
				} else {
					ae.outrec.backEdge = nil
				}
				ae.outrec = nil
			}
			c.deleteFromAEL(ae)
		}
		if prevE != nil {
			return prevE.nextInAEL
		}
		return c.actives
	}

	maxPair := getMaximaPair(ae)
	if maxPair == nil {
		return ae.nextInAEL // the maxima pair is horizontal
	}

	if isJoined(ae) {
		c.split(ae, ae.top)
	}
	if isJoined(maxPair) {
		c.split(maxPair, maxPair.top)
	}

	// process any edges between the maxima pair
	nextE := ae.nextInAEL
	for nextE != maxPair {
		c.intersectEdges(ae, nextE, ae.top)
		c.swapPositionsInAEL(ae, nextE)
		nextE = ae.nextInAEL
	}

	if isOpen(ae) {
		if isHotEdge(ae) {
			c.addLocalMaxPoly(ae, maxPair, ae.top)
		}
		c.deleteFromAEL(maxPair)
		c.deleteFromAEL(ae)
	} else {
		// ae.nextInAEL == maxPair here
		if isHotEdge(ae) {
			c.addLocalMaxPoly(ae, maxPair, ae.top)
		}
		c.deleteFromAEL(ae)
		c.deleteFromAEL(maxPair)
	}
	if prevE != nil {
		return prevE.nextInAEL
	}
	return c.actives
}

// ==============================================================================
// Horizontal segment joining
// ==============================================================================

func (c *Clipper64) addToHorzSegList(op *outPt) {
	if op.outrec.isOpen {
		return
	}
	c.horzSegList = append(c.horzSegList, &horzSegment{leftOp: op, leftToRight: true})
}

func (c *Clipper64) getLastOp(hotEdge *active) *outPt {
	outrec := hotEdge.outrec
	if hotEdge == outrec.frontEdge {
		return outrec.pts
	}
	return outrec.pts.next
}

func setHorzSegHeadingForward(hs *horzSegment, opP, opN *outPt) bool {
	if opP.pt.X == opN.pt.X {
		return false
	}
	if opP.pt.X < opN.pt.X {
		hs.leftOp = opP
		hs.rightOp = opN
		hs.leftToRight = true
	} else {
		hs.leftOp = opN
		hs.rightOp = opP
		hs.leftToRight = false
	}
	return true
}

func updateHorzSegment(hs *horzSegment) bool {
	op := hs.leftOp
	outrec := getRealOutRec(op.outrec)
	outrecHasEdges := outrec.frontEdge != nil
	currY := op.pt.Y
	opP, opN := op, op
	if outrecHasEdges {
		opA := outrec.pts
		opZ := opA.next
		for opP != opZ && opP.prev.pt.Y == currY {
			opP = opP.prev
		}
		for opN != opA && opN.next.pt.Y == currY {
			opN = opN.next
		}
	} else {
		for opP.prev != opN && opP.prev.pt.Y == currY {
			opP = opP.prev
		}
		for opN.next != opP && opN.next.pt.Y == currY {
			opN = opN.next
		}
	}
	result := setHorzSegHeadingForward(hs, opP, opN) && hs.leftOp.horz == nil
	if result {
		hs.leftOp.horz = hs
	} else {
		hs.rightOp = nil // flags the segment as spent, for sorting
	}
	return result
}

func duplicateOp(op *outPt, insertAfter bool) *outPt {
	result := &outPt{pt: op.pt, outrec: op.outrec}
	if insertAfter {
		result.next = op.next
		result.next.prev = result
		result.prev = op
		op.next = result
	} else {
		result.prev = op.prev
		result.prev.next = result
		result.next = op
		op.prev = result
	}
	return result
}

func (c *Clipper64) convertHorzSegsToJoins() {
	k := 0
	for _, hs := range c.horzSegList {
		if updateHorzSegment(hs) {
			k++
		}
	}
	if k < 2 {
		return
	}
	sort.SliceStable(c.horzSegList, func(i, j int) bool {
		hs1, hs2 := c.horzSegList[i], c.horzSegList[j]
		if hs1.rightOp == nil {
			return false
		}
		if hs2.rightOp == nil {
			return true
		}
		return hs1.leftOp.pt.X < hs2.leftOp.pt.X
	})

	for i := 0; i < k-1; i++ {
		hs1 := c.horzSegList[i]
		// find all later segments overlapping hs1
		for j := i + 1; j < k; j++ {
			hs2 := c.horzSegList[j]
			if hs2.leftOp.pt.X >= hs1.rightOp.pt.X ||
				hs2.leftToRight == hs1.leftToRight ||
				hs2.rightOp.pt.X <= hs1.leftOp.pt.X {
				continue
			}
			currY := hs1.leftOp.pt.Y
			if hs1.leftToRight {
				for hs1.leftOp.next.pt.Y == currY &&
					hs1.leftOp.next.pt.X <= hs2.leftOp.pt.X {
					hs1.leftOp = hs1.leftOp.next
				}
				for hs2.leftOp.prev.pt.Y == currY &&
					hs2.leftOp.prev.pt.X <= hs1.leftOp.pt.X {
					hs2.leftOp = hs2.leftOp.prev
				}
				c.horzJoinList = append(c.horzJoinList, &horzJoin{
					op1: duplicateOp(hs1.leftOp, true),
					op2: duplicateOp(hs2.leftOp, false),
				})
			} else {
				for hs1.leftOp.prev.pt.Y == currY &&
					hs1.leftOp.prev.pt.X <= hs2.leftOp.pt.X {
					hs1.leftOp = hs1.leftOp.prev
				}
				for hs2.leftOp.next.pt.Y == currY &&
					hs2.leftOp.next.pt.X <= hs1.leftOp.pt.X {
					hs2.leftOp = hs2.leftOp.next
				}
				c.horzJoinList = append(c.horzJoinList, &horzJoin{
					op1: duplicateOp(hs2.leftOp, true),
					op2: duplicateOp(hs1.leftOp, false),
				})
			}
		}
	}
}

func fixOutRecPts(outrec *outRec) {
	op := outrec.pts
	for {
		op.outrec = outrec
		op = op.next
		if op == outrec.pts {
			break
		}
	}
}

// getCleanPath flattens an op ring to a path, skipping spikes that would
// distort point-in-polygon testing.
func getCleanPath(op *outPt) Path64 {
	var result Path64
	op2 := op
	for op2.next != op &&
		((op2.pt.X == op2.next.pt.X && op2.pt.X == op2.prev.pt.X) ||
			(op2.pt.Y == op2.next.pt.Y && op2.pt.Y == op2.prev.pt.Y)) {
		op2 = op2.next
	}
	result = append(result, op2.pt)
	prevOp := op2
	op2 = op2.next
	for op2 != op {
		if (op2.pt.X != op2.next.pt.X || op2.pt.X != prevOp.pt.X) &&
			(op2.pt.Y != op2.next.pt.Y || op2.pt.Y != prevOp.pt.Y) {
			result = append(result, op2.pt)
			prevOp = op2
		}
		op2 = op2.next
	}
	return result
}

func path1InsidePath2(op1, op2 *outPt) bool {
	// accommodate rounding: one stray vertex mustn't decide containment
	outsideCnt := 0
	path := getCleanPath(op2)
	op := op1
	for {
		switch PointInPolygon64(op.pt, path) {
		case PointOutside:
			outsideCnt++
		case PointInside:
			outsideCnt--
		}
		op = op.next
		if op == op1 || outsideCnt > 1 || outsideCnt < -1 {
			break
		}
	}
	if outsideCnt > 1 || outsideCnt < -1 {
		return outsideCnt < 0
	}
	// still equivocal, so test the midpoint
	mp := Bounds64(getCleanPath(op1)).MidPoint()
	return PointInPolygon64(mp, path) != PointOutside
}

func moveSplits(fromOr, toOr *outRec) {
	if fromOr.splits == nil {
		return
	}
	toOr.splits = append(toOr.splits, fromOr.splits...)
	fromOr.splits = nil
}

func (c *Clipper64) processHorzJoins() {
	for _, j := range c.horzJoinList {
		or1 := getRealOutRec(j.op1.outrec)
		or2 := getRealOutRec(j.op2.outrec)

		op1b := j.op1.next
		op2b := j.op2.prev
		j.op1.next = j.op2
		j.op2.prev = j.op1
		op1b.prev = op2b
		op2b.next = op1b

		if or1 == or2 {
			// a join within one ring is really a split
			or2 = c.newOutRec()
			or2.pts = op1b
			fixOutRecPts(or2)

			if or1.pts.outrec == or2 {
				or1.pts = j.op1
				or1.pts.outrec = or1
			}

			if c.usingPolytree {
				if path1InsidePath2(or1.pts, or2.pts) {
					or2.pts, or1.pts = or1.pts, or2.pts
					fixOutRecPts(or1)
					fixOutRecPts(or2)
					or2.owner = or1
				} else if path1InsidePath2(or2.pts, or1.pts) {
					or2.owner = or1
				} else {
					or2.owner = or1.owner
				}
				or1.splits = append(or1.splits, or2.idx)
			} else {
				or2.owner = or1
			}
		} else {
			or2.pts = nil
			if c.usingPolytree {
				setOwner(or2, or1)
				moveSplits(or2, or1)
			} else {
				or2.owner = or1
			}
		}
	}
}

// ==============================================================================
// Output cleanup (collinear removal and self-intersection splitting)
// ==============================================================================

func disposeOutPt(op *outPt) *outPt {
	var result *outPt
	if op.next != op {
		result = op.next
	}
	op.prev.next = op.next
	op.next.prev = op.prev
	return result
}

func ptsReallyClose(pt1, pt2 Point64) bool {
	return abs64(pt1.X-pt2.X) < 2 && abs64(pt1.Y-pt2.Y) < 2
}

func isVerySmallTriangle(op *outPt) bool {
	return op.next.next == op.prev &&
		(ptsReallyClose(op.prev.pt, op.next.pt) ||
			ptsReallyClose(op.pt, op.next.pt) ||
			ptsReallyClose(op.pt, op.prev.pt))
}

func isValidClosedPath(op *outPt) bool {
	return op != nil && op.next != op &&
		(op.next != op.prev || !isVerySmallTriangle(op))
}

func outPtRingArea(op *outPt) float64 {
	area := 0.0
	op2 := op
	for {
		area += float64(op2.prev.pt.Y+op2.pt.Y) * float64(op2.prev.pt.X-op2.pt.X)
		op2 = op2.next
		if op2 == op {
			break
		}
	}
	return area * 0.5
}

func areaTriangle(pt1, pt2, pt3 Point64) float64 {
	return float64(pt3.Y+pt1.Y)*float64(pt3.X-pt1.X) +
		float64(pt1.Y+pt2.Y)*float64(pt1.X-pt2.X) +
		float64(pt2.Y+pt3.Y)*float64(pt2.X-pt3.X)
}

func (c *Clipper64) cleanCollinear(outrec *outRec) {
	outrec = getRealOutRec(outrec)
	if outrec == nil || outrec.isOpen {
		return
	}
	if !isValidClosedPath(outrec.pts) {
		outrec.pts = nil
		return
	}

	startOp := outrec.pts
	op2 := startOp
	for {
		// with PreserveCollinear only 180 degree spikes are removed
		if IsCollinear(op2.prev.pt, op2.pt, op2.next.pt) &&
			(op2.pt == op2.prev.pt || op2.pt == op2.next.pt ||
				!c.PreserveCollinear ||
				DotProduct(op2.prev.pt, op2.pt, op2.next.pt) < 0) {
			if op2 == outrec.pts {
				outrec.pts = op2.prev
			}
			op2 = disposeOutPt(op2)
			if !isValidClosedPath(op2) {
				outrec.pts = nil
				return
			}
			startOp = op2
			continue
		}
		op2 = op2.next
		if op2 == startOp {
			break
		}
	}
	c.fixSelfIntersects(outrec)
}

func (c *Clipper64) doSplitOp(outrec *outRec, splitOp *outPt) {
	// splitOp.prev<=>splitOp and splitOp.next<=>splitOp.next.next intersect
	prevOp := splitOp.prev
	nextNextOp := splitOp.next.next
	outrec.pts = prevOp

	ip, _ := getSegmentIntersectPt(prevOp.pt, splitOp.pt, splitOp.next.pt, nextNextOp.pt)

	area1 := outPtRingArea(prevOp)
	absArea1 := math.Abs(area1)
	if absArea1 < 2 {
		outrec.pts = nil
		return
	}

	area2 := areaTriangle(ip, splitOp.pt, splitOp.next.pt)
	absArea2 := math.Abs(area2)

	// de-link splitOp and splitOp.next while inserting the intersect point
	if ip == prevOp.pt || ip == nextNextOp.pt {
		nextNextOp.prev = prevOp
		prevOp.next = nextNextOp
	} else {
		newOp2 := &outPt{pt: ip, outrec: outrec, prev: prevOp, next: nextNextOp}
		nextNextOp.prev = newOp2
		prevOp.next = newOp2
	}

	// the split triangle survives as its own ring only when it is genuinely
	// filled area (compare its area sign and magnitude with the whole ring)
	if absArea2 > 1 && (absArea2 > absArea1 || (area2 > 0) == (area1 > 0)) {
		newOutRec := c.newOutRec()
		newOutRec.owner = outrec.owner
		splitOp.outrec = newOutRec
		splitOp.next.outrec = newOutRec
		if c.usingPolytree {
			outrec.splits = append(outrec.splits, newOutRec.idx)
		}
		newOp := &outPt{pt: ip, outrec: newOutRec, prev: splitOp.next, next: splitOp}
		newOutRec.pts = newOp
		splitOp.prev = newOp
		splitOp.next.next = newOp
	}
}

func (c *Clipper64) fixSelfIntersects(outrec *outRec) {
	op2 := outrec.pts
	for {
		if op2.prev == op2.next.next {
			break // triangles can't self-intersect
		}
		if segsIntersect(op2.prev.pt, op2.pt, op2.next.pt, op2.next.next.pt, false) {
			c.doSplitOp(outrec, op2)
			if outrec.pts == nil {
				return
			}
			op2 = outrec.pts
			continue
		}
		op2 = op2.next
		if op2 == outrec.pts {
			break
		}
	}
}

// ==============================================================================
// Building results
// ==============================================================================

func buildPath(op *outPt, reverse, isOpen bool, path *Path64) bool {
	if op == nil || op.next == op || (!isOpen && op.next == op.prev) {
		return false
	}
	*path = (*path)[:0]

	var lastPt Point64
	var op2 *outPt
	if reverse {
		lastPt = op.pt
		op2 = op.prev
	} else {
		op = op.next
		lastPt = op.pt
		op2 = op.next
	}
	*path = append(*path, lastPt)
	for op2 != op {
		if op2.pt != lastPt {
			lastPt = op2.pt
			*path = append(*path, lastPt)
		}
		if reverse {
			op2 = op2.prev
		} else {
			op2 = op2.next
		}
	}
	if len(*path) == 3 && !isOpen && isVerySmallTriangle(op2) {
		return false
	}
	return true
}

func (c *Clipper64) buildPaths(solutionClosed, solutionOpen *Paths64) {
	// outrecList can grow during this loop (cleanCollinear may split), so
	// iterate by index
	for i := 0; i < len(c.outrecList); i++ {
		outrec := c.outrecList[i]
		if outrec.pts == nil {
			continue
		}
		var path Path64
		if outrec.isOpen {
			if solutionOpen != nil && buildPath(outrec.pts, c.ReverseSolution, true, &path) {
				*solutionOpen = append(*solutionOpen, path)
			}
		} else {
			c.cleanCollinear(outrec)
			// closed paths should always return positive orientation, except
			// when ReverseSolution is set
			if buildPath(outrec.pts, c.ReverseSolution, false, &path) {
				*solutionClosed = append(*solutionClosed, path)
			}
		}
	}
}

func (c *Clipper64) checkBounds(outrec *outRec) bool {
	if outrec.pts == nil {
		return false
	}
	if !outrec.bounds.IsEmpty() {
		return true
	}
	c.cleanCollinear(outrec)
	if outrec.pts == nil || !buildPath(outrec.pts, c.ReverseSolution, false, &outrec.path) {
		return false
	}
	outrec.bounds = Bounds64(outrec.path)
	return true
}

func (c *Clipper64) checkSplitOwner(outrec *outRec, splits []int) bool {
	for _, i := range splits {
		split := getRealOutRec(c.outrecList[i])
		if split == nil || split == outrec || split.recursiveSplit == outrec {
			continue
		}
		split.recursiveSplit = outrec
		if split.splits != nil && c.checkSplitOwner(outrec, split.splits) {
			return true
		}
		if isValidOwner(outrec, split) && c.checkBounds(split) &&
			split.bounds.ContainsRect(outrec.bounds) &&
			path1InsidePath2(outrec.pts, split.pts) {
			outrec.owner = split
			return true
		}
	}
	return false
}

func (c *Clipper64) recursiveCheckOwners(outrec *outRec, polypath *PolyPath64) {
	// pre-condition: outrec has valid bounds
	if outrec.polypath != nil || outrec.bounds.IsEmpty() {
		return
	}

	for outrec.owner != nil {
		if outrec.owner.splits != nil && c.checkSplitOwner(outrec, outrec.owner.splits) {
			break
		}
		if outrec.owner.pts != nil && c.checkBounds(outrec.owner) &&
			outrec.owner.bounds.ContainsRect(outrec.bounds) &&
			path1InsidePath2(outrec.pts, outrec.owner.pts) {
			break // the real owner
		}
		outrec.owner = outrec.owner.owner
	}

	if outrec.owner != nil {
		if outrec.owner.polypath == nil {
			c.recursiveCheckOwners(outrec.owner, polypath)
		}
		outrec.polypath = outrec.owner.polypath.AddChild(outrec.path)
	} else {
		outrec.polypath = polypath.AddChild(outrec.path)
	}
}

func (c *Clipper64) buildTree(polytree *PolyTree64, solutionOpen *Paths64) {
	for i := 0; i < len(c.outrecList); i++ {
		outrec := c.outrecList[i]
		if outrec.pts == nil {
			continue
		}
		if outrec.isOpen {
			var openPath Path64
			if solutionOpen != nil && buildPath(outrec.pts, c.ReverseSolution, true, &openPath) {
				*solutionOpen = append(*solutionOpen, openPath)
			}
			continue
		}
		if !c.checkBounds(outrec) {
			continue
		}
		c.recursiveCheckOwners(outrec, polytree)
	}
}
