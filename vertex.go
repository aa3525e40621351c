package clipper

// ==============================================================================
// Vertex Chains and Local Minima
// ==============================================================================

// vertexFlags marks a vertex's role within its source path.
type vertexFlags uint8

const (
	vertexFlagsNone      vertexFlags = 0
	vertexFlagsOpenStart vertexFlags = 1 << iota
	vertexFlagsOpenEnd
	vertexFlagsLocalMax
	vertexFlagsLocalMin
)

// vertex is a polygon vertex with next/prev links into its source path.
// Vertices are created once per AddPath call and are immutable thereafter.
type vertex struct {
	pt    Point64
	next  *vertex
	prev  *vertex
	flags vertexFlags
}

func (v *vertex) isLocalMin() bool  { return v.flags&vertexFlagsLocalMin != 0 }
func (v *vertex) isLocalMax() bool  { return v.flags&vertexFlagsLocalMax != 0 }
func (v *vertex) isOpenStart() bool { return v.flags&vertexFlagsOpenStart != 0 }
func (v *vertex) isOpenEnd() bool   { return v.flags&vertexFlagsOpenEnd != 0 }

// localMinima records a local minimum vertex (a vertex below both of its
// neighbours on a y-down canvas) together with its path role. The bounding
// left and right edges are stitched into the AEL when the scanline reaches
// the vertex.
type localMinima struct {
	vertex   *vertex
	polytype PathType
	isOpen   bool
}

// addPathsToVertexList converts paths into circular (closed) or linear
// (open) vertex chains, deduplicating consecutive points, and appends a
// localMinima entry for every detected minimum. Completely flat closed
// paths produce no minima and are dropped.
func addPathsToVertexList(paths Paths64, polytype PathType, isOpen bool,
	minimaList *[]localMinima, vertexLists *[][]vertex) {

	totalVerts := 0
	for _, path := range paths {
		totalVerts += len(path)
	}
	if totalVerts == 0 {
		return
	}
	// one contiguous arena per AddPaths call; links never outlive the clipper
	arena := make([]vertex, 0, totalVerts)

	addLocMin := func(v *vertex) {
		if v.flags&vertexFlagsLocalMin != 0 {
			return
		}
		v.flags |= vertexFlagsLocalMin
		*minimaList = append(*minimaList, localMinima{vertex: v, polytype: polytype, isOpen: isOpen})
	}

	for _, path := range paths {
		var v0, prevV *vertex
		start := len(arena)
		for _, pt := range path {
			if v0 == nil {
				arena = append(arena, vertex{pt: pt})
				v0 = &arena[len(arena)-1]
				prevV = v0
			} else if prevV.pt != pt { // skip duplicates
				arena = append(arena, vertex{pt: pt})
				v := &arena[len(arena)-1]
				prevV.next = v
				v.prev = prevV
				prevV = v
			}
		}
		if prevV == nil || prevV.prev == nil {
			arena = arena[:start]
			v0 = nil
			continue
		}
		if !isOpen && prevV.pt == v0.pt {
			prevV = prevV.prev
		}
		prevV.next = v0
		v0.prev = prevV
		if !isOpen && prevV.next == prevV {
			arena = arena[:start]
			continue
		}

		// establish the initial direction, skipping leading horizontals
		var goingUp bool
		if isOpen {
			curr := v0.next
			for curr != v0 && curr.pt.Y == v0.pt.Y {
				curr = curr.next
			}
			goingUp = curr.pt.Y <= v0.pt.Y
			if goingUp {
				v0.flags = vertexFlagsOpenStart
				addLocMin(v0)
			} else {
				v0.flags = vertexFlagsOpenStart | vertexFlagsLocalMax
			}
		} else {
			prevV = v0.prev
			for prevV != v0 && prevV.pt.Y == v0.pt.Y {
				prevV = prevV.prev
			}
			if prevV == v0 {
				continue // completely flat closed path
			}
			goingUp = prevV.pt.Y > v0.pt.Y // rising edges head toward smaller y
		}

		goingUp0 := goingUp
		prevV = v0
		currV := v0.next
		for currV != v0 {
			if currV.pt.Y > prevV.pt.Y && goingUp {
				prevV.flags |= vertexFlagsLocalMax
				goingUp = false
			} else if currV.pt.Y < prevV.pt.Y && !goingUp {
				goingUp = true
				addLocMin(prevV)
			}
			prevV = currV
			currV = currV.next
		}

		if isOpen {
			prevV.flags |= vertexFlagsOpenEnd
			if goingUp {
				prevV.flags |= vertexFlagsLocalMax
			} else {
				addLocMin(prevV)
			}
		} else if goingUp != goingUp0 {
			if goingUp0 {
				addLocMin(prevV)
			} else {
				prevV.flags |= vertexFlagsLocalMax
			}
		}
	}

	if len(arena) > 0 {
		*vertexLists = append(*vertexLists, arena)
	}
}
