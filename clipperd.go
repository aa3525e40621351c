package clipper

import "math"

// ClipperD wraps the integer engine for float64 paths. Inputs are scaled by
// 10^precision on the way in and descaled on the way out, so the interior
// algorithms stay exact.
type ClipperD struct {
	clipper  Clipper64
	scale    float64
	invScale float64

	// ErrorCode holds the non-fatal error bits; NewClipperD sets
	// ErrPrecisionBit here when it clamps the precision.
	ErrorCode int
}

// NewClipperD creates a decimal clipper. Precision is the count of decimal
// digits preserved (clamped into ±MaxDecimalPrecision; clamping sets
// ErrPrecisionBit in ErrorCode).
func NewClipperD(precision int) *ClipperD {
	d := &ClipperD{}
	CheckPrecisionRange(&precision, &d.ErrorCode)
	d.scale = math.Pow(10, float64(precision))
	d.invScale = 1 / d.scale
	d.clipper.PreserveCollinear = true
	return d
}

// SetPreserveCollinear toggles retention of collinear output vertices.
func (d *ClipperD) SetPreserveCollinear(value bool) {
	d.clipper.PreserveCollinear = value
}

// SetReverseSolution toggles reversal of output orientation.
func (d *ClipperD) SetReverseSolution(value bool) {
	d.clipper.ReverseSolution = value
}

// AddSubject adds closed subject paths.
//
// Possible errors: ErrRange
func (d *ClipperD) AddSubject(paths PathsD) error {
	return d.clipper.AddSubject(scalePathsDTo64(paths, d.scale))
}

// AddOpenSubject adds open subject paths.
//
// Possible errors: ErrRange
func (d *ClipperD) AddOpenSubject(paths PathsD) error {
	return d.clipper.AddOpenSubject(scalePathsDTo64(paths, d.scale))
}

// AddClip adds closed clip paths.
//
// Possible errors: ErrRange
func (d *ClipperD) AddClip(paths PathsD) error {
	return d.clipper.AddClip(scalePathsDTo64(paths, d.scale))
}

// Clear discards all added paths.
func (d *ClipperD) Clear() { d.clipper.Clear() }

// Execute runs the boolean operation, filling solutionClosed and, when
// non-nil, solutionOpen. Reports success; on failure outputs are empty.
func (d *ClipperD) Execute(clipType ClipType, fillRule FillRule, solutionClosed, solutionOpen *PathsD) bool {
	var closed64, open64 Paths64
	var openPtr *Paths64
	if solutionOpen != nil {
		openPtr = &open64
	}
	ok := d.clipper.Execute(clipType, fillRule, &closed64, openPtr)
	*solutionClosed = (*solutionClosed)[:0]
	if solutionOpen != nil {
		*solutionOpen = (*solutionOpen)[:0]
	}
	if !ok {
		return false
	}
	*solutionClosed = append(*solutionClosed, scalePaths64ToD(closed64, d.invScale)...)
	if solutionOpen != nil {
		*solutionOpen = append(*solutionOpen, scalePaths64ToD(open64, d.invScale)...)
	}
	return true
}

// ExecuteTree runs the boolean operation into a hierarchical PolyTreeD.
func (d *ClipperD) ExecuteTree(clipType ClipType, fillRule FillRule, polytree *PolyTreeD, solutionOpen *PathsD) bool {
	polytree.Clear()
	polytree.scale = d.scale
	if solutionOpen != nil {
		*solutionOpen = (*solutionOpen)[:0]
	}

	tree64 := NewPolyTree64()
	var open64 Paths64
	var openPtr *Paths64
	if solutionOpen != nil {
		openPtr = &open64
	}
	if !d.clipper.ExecuteTree(clipType, fillRule, tree64, openPtr) {
		return false
	}

	copyPolyTree64ToD(tree64, polytree)
	if solutionOpen != nil {
		*solutionOpen = append(*solutionOpen, scalePaths64ToD(open64, d.invScale)...)
	}
	return true
}

func copyPolyTree64ToD(src *PolyPath64, dst *PolyPathD) {
	for _, child64 := range src.children {
		childD := dst.AddChild(child64.polygon)
		copyPolyTree64ToD(child64, childD)
	}
}
