package clipper

import "math"

// Path offsetting (inflation/deflation). Corner geometry is generated per
// join type, terminals per end type, and the resulting self-overlapping
// contours are cleaned by a Union on the sweep engine under the Positive
// fill rule (Negative when the input polygons were reversed).

const offsetTolerance = 1.0e-12

// offsetGroup is a batch of paths sharing one join type and end type.
type offsetGroup struct {
	inPaths       Paths64
	joinType      JoinType
	endType       EndType
	pathsReversed bool
	lowestPathIdx int
}

func newOffsetGroup(paths Paths64, joinType JoinType, endType EndType) *offsetGroup {
	group := &offsetGroup{joinType: joinType, endType: endType}
	isJoined := endType == EndPolygon || endType == EndJoined
	group.inPaths = make(Paths64, 0, len(paths))
	for _, path := range paths {
		group.inPaths = append(group.inPaths, StripDuplicates(path, isJoined))
	}
	if endType == EndPolygon {
		group.lowestPathIdx = getLowestPathIdx(group.inPaths)
		// the lowest path determines the group's orientation; reversing the
		// delta sign is cheaper than reversing every path
		group.pathsReversed = group.lowestPathIdx >= 0 &&
			Area64(group.inPaths[group.lowestPathIdx]) < 0
	} else {
		group.lowestPathIdx = -1
	}
	return group
}

// getLowestPathIdx returns the index of the path owning the bottom-most
// (then left-most) vertex, or -1 when all paths are empty.
func getLowestPathIdx(paths Paths64) int {
	result := -1
	botPt := Point64{X: math.MaxInt64, Y: math.MinInt64}
	for i, path := range paths {
		for _, pt := range path {
			if pt.Y < botPt.Y || (pt.Y == botPt.Y && pt.X >= botPt.X) {
				continue
			}
			result = i
			botPt = pt
		}
	}
	return result
}

// ClipperOffset performs polygon and polyline offsetting. Add paths with
// their join/end treatments, then call Execute with a signed delta.
type ClipperOffset struct {
	MiterLimit        float64 // maximum miter distance as a multiple of delta
	ArcTolerance      float64 // maximum chord deviation for round joins (0 = derived)
	PreserveCollinear bool
	ReverseSolution   bool

	groups   []*offsetGroup
	solution Paths64
	normals  PathD
	pathOut  Path64

	delta      float64
	groupDelta float64 // delta signed per group orientation
	mitLimSqr  float64
	joinType   JoinType
	endType    EndType

	stepsPerRad float64
	stepSin     float64
	stepCos     float64
}

// NewClipperOffset creates an offsetter with the defaults the library
// documents (miter limit 2.0, derived arc tolerance).
func NewClipperOffset() *ClipperOffset {
	return &ClipperOffset{MiterLimit: 2.0}
}

// AddPath queues a single path for offsetting.
func (co *ClipperOffset) AddPath(path Path64, joinType JoinType, endType EndType) {
	co.AddPaths(Paths64{path}, joinType, endType)
}

// AddPaths queues paths sharing a join type and end type.
func (co *ClipperOffset) AddPaths(paths Paths64, joinType JoinType, endType EndType) {
	if len(paths) == 0 {
		return
	}
	co.groups = append(co.groups, newOffsetGroup(paths, joinType, endType))
}

// Clear removes all queued paths.
func (co *ClipperOffset) Clear() {
	co.groups = co.groups[:0]
	co.normals = co.normals[:0]
}

// Execute offsets the queued paths by delta (positive inflates polygons,
// negative deflates) and fills solution with clean, resolved polygons.
func (co *ClipperOffset) Execute(delta float64, solution *Paths64) error {
	*solution = (*solution)[:0]
	co.executeInternal(delta)
	if len(co.solution) == 0 {
		return nil
	}

	pathsReversed := co.checkPathsReversed()
	fillRule := Positive
	if pathsReversed {
		fillRule = Negative
	}

	// clean up self-intersections in the raw offset output
	c := NewClipper64()
	c.PreserveCollinear = co.PreserveCollinear
	// the solution should retain the orientation of the input
	c.ReverseSolution = co.ReverseSolution != pathsReversed
	if err := c.AddSubject(co.solution); err != nil {
		return err
	}
	if !c.Execute(Union, fillRule, solution, nil) {
		return ErrInternal
	}
	return nil
}

func (co *ClipperOffset) checkPathsReversed() bool {
	for _, g := range co.groups {
		if g.endType == EndPolygon {
			return g.pathsReversed
		}
	}
	return false
}

func (co *ClipperOffset) executeInternal(delta float64) {
	co.solution = co.solution[:0]
	if len(co.groups) == 0 {
		return
	}

	if math.Abs(delta) < 0.5 {
		// too small to produce visible offsets; pass the input through the
		// cleanup union unchanged
		for _, group := range co.groups {
			co.solution = append(co.solution, group.inPaths...)
		}
		return
	}

	co.delta = delta
	if co.MiterLimit <= 1 {
		co.mitLimSqr = 2.0
	} else {
		co.mitLimSqr = 2.0 / sqr(co.MiterLimit)
	}

	for _, group := range co.groups {
		co.doGroupOffset(group)
	}
}

// derivedArcTolerance is used when no explicit arc tolerance is set:
// |delta|/500 clamped into [0.25, |delta|/4].
func derivedArcTolerance(absDelta float64) float64 {
	tol := absDelta / 500
	if tol < 0.25 {
		tol = 0.25
	}
	if hi := absDelta / 4; hi > 0.25 && tol > hi {
		tol = hi
	}
	return tol
}

func (co *ClipperOffset) doGroupOffset(group *offsetGroup) {
	if group.endType == EndPolygon {
		if group.lowestPathIdx < 0 {
			co.delta = math.Abs(co.delta)
		}
		if group.pathsReversed {
			co.groupDelta = -co.delta
		} else {
			co.groupDelta = co.delta
		}
	} else {
		co.groupDelta = math.Abs(co.delta)
	}

	absDelta := math.Abs(co.groupDelta)
	co.joinType = group.joinType
	co.endType = group.endType

	if group.joinType == JoinRound || group.endType == EndRound {
		// chord count bounding the deviation from the true arc
		arcTol := co.ArcTolerance
		if arcTol <= 0.01 {
			arcTol = derivedArcTolerance(absDelta)
		}
		stepsPer360 := math.Pi / math.Acos(1-arcTol/absDelta)
		if stepsPer360 > absDelta*math.Pi {
			stepsPer360 = absDelta * math.Pi // avoids excessive precision
		}
		co.stepSin = math.Sin(2 * math.Pi / stepsPer360)
		co.stepCos = math.Cos(2 * math.Pi / stepsPer360)
		if co.groupDelta < 0 {
			co.stepSin = -co.stepSin
		}
		co.stepsPerRad = stepsPer360 / (2 * math.Pi)
	}

	for _, p := range group.inPaths {
		co.pathOut = Path64{}

		switch len(p) {
		case 0:
			continue
		case 1:
			// a single vertex inflates to a circle or a square
			if group.endType == EndRound {
				steps := int(math.Ceil(co.stepsPerRad * 2 * math.Pi))
				co.pathOut = Ellipse64(p[0], absDelta, absDelta, steps)
			} else {
				d := int64(math.Ceil(absDelta))
				r := NewRect64(p[0].X-d, p[0].Y-d, p[0].X+d, p[0].Y+d)
				co.pathOut = r.AsPath()
			}
			co.solution = append(co.solution, co.pathOut)
			continue
		case 2:
			if group.endType == EndJoined {
				if group.joinType == JoinRound {
					co.endType = EndRound
				} else {
					co.endType = EndSquare
				}
			}
		}

		co.buildNormals(p)
		switch co.endType {
		case EndPolygon:
			co.offsetPolygon(p)
		case EndJoined:
			co.offsetOpenJoined(p)
		default:
			co.offsetOpenPath(p)
		}
	}
}

func getUnitNormal(pt1, pt2 Point64) PointD {
	dx := float64(pt2.X - pt1.X)
	dy := float64(pt2.Y - pt1.Y)
	if dx == 0 && dy == 0 {
		return PointD{}
	}
	f := 1.0 / math.Sqrt(dx*dx+dy*dy)
	return PointD{X: dy * f, Y: -dx * f}
}

func (co *ClipperOffset) buildNormals(path Path64) {
	co.normals = co.normals[:0]
	if len(path) == 0 {
		return
	}
	for i := 0; i < len(path)-1; i++ {
		co.normals = append(co.normals, getUnitNormal(path[i], path[i+1]))
	}
	co.normals = append(co.normals, getUnitNormal(path[len(path)-1], path[0]))
}

func (co *ClipperOffset) offsetPolygon(path Path64) {
	for i, k := 0, len(path)-1; i < len(path); i++ {
		k = co.offsetPoint(path, i, k)
	}
	co.solution = append(co.solution, co.pathOut)
}

func (co *ClipperOffset) offsetOpenJoined(path Path64) {
	co.offsetPolygon(path)
	reversed := Reverse64(path)
	co.pathOut = Path64{}
	co.buildNormals(reversed)
	co.offsetPolygon(reversed)
}

func (co *ClipperOffset) offsetOpenPath(path Path64) {
	highI := len(path) - 1

	// the start cap
	switch co.endType {
	case EndButt:
		co.doBevel(path, 0, 0)
	case EndRound:
		co.doRound(path, 0, 0, math.Pi)
	default:
		co.doSquare(path, 0, 0)
	}

	// offset along one side
	for i, k := 1, 0; i < highI; i++ {
		k = co.offsetPoint(path, i, k)
	}

	// reverse the normals for the return side
	for i := highI; i > 0; i-- {
		co.normals[i] = PointD{X: -co.normals[i-1].X, Y: -co.normals[i-1].Y}
	}
	co.normals[0] = co.normals[highI]

	// the end cap
	switch co.endType {
	case EndButt:
		co.doBevel(path, highI, highI)
	case EndRound:
		co.doRound(path, highI, highI, math.Pi)
	default:
		co.doSquare(path, highI, highI)
	}

	// offset back along the other side
	for i, k := highI-1, highI; i > 0; i-- {
		k = co.offsetPoint(path, i, k)
	}

	co.solution = append(co.solution, co.pathOut)
}

// offsetPoint emits the corner geometry for vertex j (with k the previous
// vertex index) and returns the new k.
func (co *ClipperOffset) offsetPoint(path Path64, j, k int) int {
	if path[j] == path[k] {
		return j
	}

	// sinA/cosA describe the turn between the adjoining edge normals
	sinA := CrossProductVecD(co.normals[j], co.normals[k])
	cosA := DotProductVecD(co.normals[k], co.normals[j])
	if sinA > 1.0 {
		sinA = 1.0
	} else if sinA < -1.0 {
		sinA = -1.0
	}

	if math.Abs(co.groupDelta) < offsetTolerance {
		co.pathOut = append(co.pathOut, path[j])
		return j
	}

	switch {
	case cosA > -0.999 && sinA*co.groupDelta < 0:
		// concave: the extra middle vertex guarantees the reversal is fully
		// removed by the trailing union
		co.pathOut = append(co.pathOut, co.getPerpendic(path[j], co.normals[k]))
		co.pathOut = append(co.pathOut, path[j])
		co.pathOut = append(co.pathOut, co.getPerpendic(path[j], co.normals[j]))
	case cosA > 0.999 && co.joinType != JoinRound:
		// almost straight: a miter is safe regardless of the join type
		co.doMiter(path, j, k, cosA)
	case co.joinType == JoinMiter:
		if cosA > co.mitLimSqr-1 {
			co.doMiter(path, j, k, cosA)
		} else {
			co.doSquare(path, j, k)
		}
	case co.joinType == JoinRound:
		co.doRound(path, j, k, math.Atan2(sinA, cosA))
	case co.joinType == JoinBevel:
		co.doBevel(path, j, k)
	default:
		co.doSquare(path, j, k)
	}
	return j
}

func (co *ClipperOffset) getPerpendic(pt Point64, norm PointD) Point64 {
	return Point64{
		X: pt.X + int64(math.Round(norm.X*co.groupDelta)),
		Y: pt.Y + int64(math.Round(norm.Y*co.groupDelta)),
	}
}

func (co *ClipperOffset) getPerpendicD(pt Point64, norm PointD) PointD {
	return PointD{
		X: float64(pt.X) + norm.X*co.groupDelta,
		Y: float64(pt.Y) + norm.Y*co.groupDelta,
	}
}

func (co *ClipperOffset) doBevel(path Path64, j, k int) {
	var pt1, pt2 PointD
	if j == k {
		// line end cap squared off exactly at the endpoint
		absDelta := math.Abs(co.groupDelta)
		pt1 = PointD{
			X: float64(path[j].X) - absDelta*co.normals[j].X,
			Y: float64(path[j].Y) - absDelta*co.normals[j].Y,
		}
		pt2 = PointD{
			X: float64(path[j].X) + absDelta*co.normals[j].X,
			Y: float64(path[j].Y) + absDelta*co.normals[j].Y,
		}
	} else {
		pt1 = co.getPerpendicD(path[j], co.normals[k])
		pt2 = co.getPerpendicD(path[j], co.normals[j])
	}
	co.pathOut = append(co.pathOut,
		Point64{X: int64(math.Round(pt1.X)), Y: int64(math.Round(pt1.Y))},
		Point64{X: int64(math.Round(pt2.X)), Y: int64(math.Round(pt2.Y))})
}

func translatePoint(pt PointD, dx, dy float64) PointD {
	return PointD{X: pt.X + dx, Y: pt.Y + dy}
}

func reflectPoint(pt, pivot PointD) PointD {
	return PointD{X: pivot.X + (pivot.X - pt.X), Y: pivot.Y + (pivot.Y - pt.Y)}
}

func getAvgUnitVector(vec1, vec2 PointD) PointD {
	x := vec1.X + vec2.X
	y := vec1.Y + vec2.Y
	h := math.Sqrt(x*x + y*y)
	if h == 0 {
		return PointD{}
	}
	return PointD{X: x / h, Y: y / h}
}

// intersectPointD returns the intersection of the infinite lines through
// (pt1a,pt1b) and (pt2a,pt2b).
func intersectPointD(pt1a, pt1b, pt2a, pt2b PointD) PointD {
	if pt1a.X == pt1b.X { // vertical
		if pt2a.X == pt2b.X {
			return PointD{}
		}
		m2 := (pt2b.Y - pt2a.Y) / (pt2b.X - pt2a.X)
		b2 := pt2a.Y - m2*pt2a.X
		return PointD{X: pt1a.X, Y: m2*pt1a.X + b2}
	}
	if pt2a.X == pt2b.X { // vertical
		m1 := (pt1b.Y - pt1a.Y) / (pt1b.X - pt1a.X)
		b1 := pt1a.Y - m1*pt1a.X
		return PointD{X: pt2a.X, Y: m1*pt2a.X + b1}
	}
	m1 := (pt1b.Y - pt1a.Y) / (pt1b.X - pt1a.X)
	b1 := pt1a.Y - m1*pt1a.X
	m2 := (pt2b.Y - pt2a.Y) / (pt2b.X - pt2a.X)
	b2 := pt2a.Y - m2*pt2a.X
	if m1 == m2 {
		return PointD{}
	}
	x := (b2 - b1) / (m1 - m2)
	return PointD{X: x, Y: m1*x + b1}
}

func (co *ClipperOffset) doSquare(path Path64, j, k int) {
	var vec PointD
	if j == k {
		vec = PointD{X: co.normals[j].Y, Y: -co.normals[j].X}
	} else {
		vec = getAvgUnitVector(
			PointD{X: -co.normals[k].Y, Y: co.normals[k].X},
			PointD{X: co.normals[j].Y, Y: -co.normals[j].X})
	}

	absDelta := math.Abs(co.groupDelta)

	// offset the original vertex delta units along the unit vector
	ptQ := PointD{X: float64(path[j].X), Y: float64(path[j].Y)}
	ptQ = translatePoint(ptQ, absDelta*vec.X, absDelta*vec.Y)

	// the perpendicular vertices
	pt1 := translatePoint(ptQ, co.groupDelta*vec.Y, co.groupDelta*-vec.X)
	pt2 := translatePoint(ptQ, co.groupDelta*-vec.Y, co.groupDelta*vec.X)
	// and 2 vertices along one edge offset
	pt3 := co.getPerpendicD(path[k], co.normals[k])

	if j == k {
		pt4 := PointD{X: pt3.X + vec.X*co.groupDelta, Y: pt3.Y + vec.Y*co.groupDelta}
		pt := intersectPointD(pt1, pt2, pt3, pt4)
		// the second vertex by reflection
		r := reflectPoint(pt, ptQ)
		co.pathOut = append(co.pathOut,
			Point64{X: int64(math.Round(r.X)), Y: int64(math.Round(r.Y))},
			Point64{X: int64(math.Round(pt.X)), Y: int64(math.Round(pt.Y))})
	} else {
		pt4 := co.getPerpendicD(path[j], co.normals[k])
		pt := intersectPointD(pt1, pt2, pt3, pt4)
		r := reflectPoint(pt, ptQ)
		co.pathOut = append(co.pathOut,
			Point64{X: int64(math.Round(pt.X)), Y: int64(math.Round(pt.Y))},
			Point64{X: int64(math.Round(r.X)), Y: int64(math.Round(r.Y))})
	}
}

func (co *ClipperOffset) doMiter(path Path64, j, k int, cosA float64) {
	q := co.groupDelta / (cosA + 1)
	co.pathOut = append(co.pathOut, Point64{
		X: path[j].X + int64(math.Round((co.normals[k].X+co.normals[j].X)*q)),
		Y: path[j].Y + int64(math.Round((co.normals[k].Y+co.normals[j].Y)*q)),
	})
}

func (co *ClipperOffset) doRound(path Path64, j, k int, angle float64) {
	pt := path[j]
	offsetVec := PointD{X: co.normals[k].X * co.groupDelta, Y: co.normals[k].Y * co.groupDelta}
	if j == k {
		offsetVec = PointD{X: -offsetVec.X, Y: -offsetVec.Y}
	}
	co.pathOut = append(co.pathOut, Point64{
		X: pt.X + int64(math.Round(offsetVec.X)),
		Y: pt.Y + int64(math.Round(offsetVec.Y)),
	})
	steps := int(math.Ceil(co.stepsPerRad * math.Abs(angle)))
	for i := 1; i < steps; i++ {
		offsetVec = PointD{
			X: offsetVec.X*co.stepCos - co.stepSin*offsetVec.Y,
			Y: offsetVec.X*co.stepSin + offsetVec.Y*co.stepCos,
		}
		co.pathOut = append(co.pathOut, Point64{
			X: pt.X + int64(math.Round(offsetVec.X)),
			Y: pt.Y + int64(math.Round(offsetVec.Y)),
		})
	}
	co.pathOut = append(co.pathOut, co.getPerpendic(pt, co.normals[j]))
}
