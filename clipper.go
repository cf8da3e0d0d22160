//===============================================================================
//                                                                              //
// Author    :  Angus Johnson                                                   //
// Version   :  6.4.2                                                           //
// Date      :  27 February 2017                                                //
// Website   :  http://www.angusj.com                                           //
// Copyright :  Angus Johnson 2010-2017                                         //
//                                                                              //
// License:                                                                     //
// Use, modification & distribution is subject to Boost Software License Ver 1. //
// http://www.boost.org/LICENSE_1_0.txt                                         //
//                                                                              //
// Attributions:                                                                //
// The code in this library is an extension of Bala Vatti's clipping algorithm: //
// "A generic solution to polygon clipping"                                     //
// Communications of the ACM, Vol 35, Issue 7 (July 1992) PP 56-63.             //
// http://portal.acm.org/citation.cfm?id=129906                                 //
//                                                                              //
// Computer graphics && geometric modeling: implementation && algorithms        //
// By Max K. Agoston                                                            //
// Springer; 1 edition (January 4, 2005)                                        //
// http://books.google.com/books?q=vatti+clipping+agoston                       //
//                                                                              //
//===============================================================================

package clipper

// Clipper executes Boolean operations over the paths added to it. The
// zero value is not usable; construct with NewClipper.
type Clipper struct {
	ClipperBase
	zFill

	clipType      ClipType
	maximaList    *maxima
	sortedEdges   int
	intersectList []intersectNode
	clipFillType  PolyFillType
	subjFillType  PolyFillType
	joins         []joinRec
	ghostJoins    []joinRec
	polyOuts      []outRec
	outPts        []outPt
	executing     bool
	usingPolyTree bool

	// ReverseSolution flips the orientation of output contours.
	ReverseSolution bool
	// StrictlySimple trades speed for strictly simple output polygons.
	StrictlySimple bool

	// scanbeamHook, when non-nil, runs after each top-of-scanbeam pass.
	// Tests use it to audit AEL ordering mid-sweep.
	scanbeamHook func(topY cInt)
}

func NewClipper(initOptions ...InitOptions) *Clipper {
	c := &Clipper{
		ClipperBase: newClipperBase(),
		sortedEdges: unassigned,
	}
	for _, opt := range initOptions {
		if opt&InitReverseSolution != 0 {
			c.ReverseSolution = true
		}
		if opt&InitStrictlySimple != 0 {
			c.StrictlySimple = true
		}
		if opt&InitPreserveCollinear != 0 {
			c.PreserveCollinear = true
		}
	}
	return c
}

func (c *Clipper) op(i int) *outPt {
	return &c.outPts[i]
}

func (c *Clipper) rec(i int) *outRec {
	return &c.polyOuts[i]
}

func (c *Clipper) createOutRec() int {
	idx := len(c.polyOuts)
	c.polyOuts = append(c.polyOuts, outRec{
		idx:       idx,
		firstLeft: unassigned,
		pts:       unassigned,
		bottomPt:  unassigned,
	})
	return idx
}

// getOutRec chases idx redirections left behind by appendPolygon.
func (c *Clipper) getOutRec(idx int) int {
	for idx != c.polyOuts[idx].idx {
		idx = c.polyOuts[idx].idx
	}
	return idx
}

func (c *Clipper) disposeAllPolyPts() {
	c.polyOuts = c.polyOuts[:0]
	c.outPts = c.outPts[:0]
}

// Execute performs the Boolean clip operation and returns the solution as
// a flat contour set. It returns false when a sweep is already running on
// this context, when open paths were added (those need Execute2), or when
// the sweep failed. Repeated calls with the same added paths are fine.
func (c *Clipper) Execute(clipType ClipType, subjFillType, clipFillType PolyFillType) (Paths, bool) {
	if c.executing || c.hasOpenPaths {
		return nil, false
	}
	c.executing = true
	c.subjFillType = subjFillType
	c.clipFillType = clipFillType
	c.clipType = clipType
	c.usingPolyTree = false
	succeeded := c.executeInternal()
	var solution Paths
	if succeeded {
		solution = c.buildResult()
	}
	c.disposeAllPolyPts()
	c.executing = false
	return solution, succeeded
}

// Execute2 performs the Boolean clip operation and returns the solution as
// a PolyTree, which also carries any open path results.
func (c *Clipper) Execute2(clipType ClipType, subjFillType, clipFillType PolyFillType) (*PolyTree, bool) {
	if c.executing {
		return nil, false
	}
	c.executing = true
	c.subjFillType = subjFillType
	c.clipFillType = clipFillType
	c.clipType = clipType
	c.usingPolyTree = true
	succeeded := c.executeInternal()
	var solution *PolyTree
	if succeeded {
		solution = new(PolyTree)
		succeeded = c.buildResult2(solution)
	}
	c.disposeAllPolyPts()
	c.executing = false
	return solution, succeeded
}

// executeInternal drives the scanbeam loop. The slab between botY and topY
// is processed in three phases: horizontals at the bottom, crossings within
// the slab, then maxima/promotions at the top. The loop ends when the
// scanbeam queue is exhausted; every pending local minimum has its Y in the
// queue, so no minima can remain either.
func (c *Clipper) executeInternal() bool {
	c.reset()
	c.maximaList = nil
	c.sortedEdges = unassigned
	c.joins = c.joins[:0]
	c.ghostJoins = c.ghostJoins[:0]

	botY, ok := c.popScanbeam()
	if !ok {
		return false
	}
	c.insertLocalMinimaIntoAEL(botY)
	for {
		c.processHorizontals()
		c.ghostJoins = c.ghostJoins[:0]
		topY, ok := c.popScanbeam()
		if !ok {
			break
		}
		if !c.processIntersections(topY) {
			return false
		}
		if !c.processEdgesAtTopOfScanbeam(topY) {
			return false
		}
		if c.scanbeamHook != nil {
			c.scanbeamHook(topY)
		}
		botY = topY
		c.insertLocalMinimaIntoAEL(botY)
	}

	// fix orientations
	for i := range c.polyOuts {
		r := &c.polyOuts[i]
		if r.pts == unassigned || r.isOpen {
			continue
		}
		if (r.isHole != c.ReverseSolution) == (c.areaOutRec(i) > 0) {
			c.reversePolyPtLinks(r.pts)
		}
	}

	c.joinCommonEdges()

	for i := range c.polyOuts {
		r := &c.polyOuts[i]
		if r.pts == unassigned {
			continue
		} else if r.isOpen {
			c.fixupOutPolyline(i)
		} else {
			c.fixupOutPolygon(i)
		}
	}

	if c.StrictlySimple {
		c.doSimplePolygons()
	}
	return true
}

func (c *Clipper) insertLocalMinimaIntoAEL(botY cInt) {
	for {
		lm, ok := c.popLocalMinima(botY)
		if !ok {
			return
		}
		lb := lm.leftBound
		rb := lm.rightBound

		op1 := unassigned
		if lb == unassigned {
			c.insertEdgeIntoAEL(rb, unassigned)
			c.setWindingCount(rb)
			if c.isContributing(c.e(rb)) {
				op1 = c.addOutPt(rb, c.e(rb).bot)
			}
		} else if rb == unassigned {
			c.insertEdgeIntoAEL(lb, unassigned)
			c.setWindingCount(lb)
			if c.isContributing(c.e(lb)) {
				op1 = c.addOutPt(lb, c.e(lb).bot)
			}
			c.insertScanbeam(c.e(lb).top.Y)
		} else {
			c.insertEdgeIntoAEL(lb, unassigned)
			c.insertEdgeIntoAEL(rb, lb)
			c.setWindingCount(lb)
			c.e(rb).windCnt = c.e(lb).windCnt
			c.e(rb).windCnt2 = c.e(lb).windCnt2
			if c.isContributing(c.e(lb)) {
				op1 = c.addLocalMinPoly(lb, rb, c.e(lb).bot)
			}
			c.insertScanbeam(c.e(lb).top.Y)
		}

		if rb != unassigned {
			if isHorizontal(c.e(rb)) {
				if c.e(rb).nextInLML != unassigned {
					c.insertScanbeam(c.e(c.e(rb).nextInLML).top.Y)
				}
				c.addEdgeToSEL(rb)
			} else {
				c.insertScanbeam(c.e(rb).top.Y)
			}
		}

		if lb == unassigned || rb == unassigned {
			continue
		}

		// if output polygons share an Edge with a horizontal rb, they'll
		// need joining later
		if op1 != unassigned && isHorizontal(c.e(rb)) &&
			len(c.ghostJoins) > 0 && c.e(rb).windDelta != 0 {
			for i := range c.ghostJoins {
				j := &c.ghostJoins[i]
				if horzSegmentsOverlap(c.op(j.outPt1).pt.X, j.offPt.X, c.e(rb).bot.X, c.e(rb).top.X) {
					c.addJoin(j.outPt1, op1, j.offPt)
				}
			}
		}

		if c.e(lb).outIdx >= 0 && c.e(lb).prevInAEL != unassigned &&
			c.e(c.e(lb).prevInAEL).curr.X == c.e(lb).bot.X &&
			c.e(c.e(lb).prevInAEL).outIdx >= 0 &&
			slopesEqual4(c.e(c.e(lb).prevInAEL).curr, c.e(c.e(lb).prevInAEL).top, c.e(lb).curr, c.e(lb).top, c.useFullRange) &&
			c.e(lb).windDelta != 0 && c.e(c.e(lb).prevInAEL).windDelta != 0 {
			op2 := c.addOutPt(c.e(lb).prevInAEL, c.e(lb).bot)
			c.addJoin(op1, op2, c.e(lb).top)
		}

		if c.e(lb).nextInAEL != rb {
			if c.e(rb).outIdx >= 0 && c.e(c.e(rb).prevInAEL).outIdx >= 0 &&
				slopesEqual4(c.e(c.e(rb).prevInAEL).curr, c.e(c.e(rb).prevInAEL).top, c.e(rb).curr, c.e(rb).top, c.useFullRange) &&
				c.e(rb).windDelta != 0 && c.e(c.e(rb).prevInAEL).windDelta != 0 {
				op2 := c.addOutPt(c.e(rb).prevInAEL, c.e(rb).bot)
				c.addJoin(op1, op2, c.e(rb).top)
			}

			e := c.e(lb).nextInAEL
			if e != unassigned {
				for e != rb {
					// nb: For calculating winding counts etc, IntersectEdges()
					// assumes that param1 will be to the right of param2 ABOVE
					// the intersection.
					c.intersectEdges(rb, e, c.e(lb).curr)
					e = c.e(e).nextInAEL
				}
			}
		}
	}
}

func (c *Clipper) insertEdgeIntoAEL(i, startEdge int) {
	e := c.e(i)
	if c.activeEdges == unassigned {
		e.prevInAEL = unassigned
		e.nextInAEL = unassigned
		c.activeEdges = i
	} else if startEdge == unassigned && c.e2InsertsBeforeE1(c.activeEdges, i) {
		e.prevInAEL = unassigned
		e.nextInAEL = c.activeEdges
		c.e(c.activeEdges).prevInAEL = i
		c.activeEdges = i
	} else {
		if startEdge == unassigned {
			startEdge = c.activeEdges
		}
		for c.e(startEdge).nextInAEL != unassigned &&
			!c.e2InsertsBeforeE1(c.e(startEdge).nextInAEL, i) {
			startEdge = c.e(startEdge).nextInAEL
		}
		e.nextInAEL = c.e(startEdge).nextInAEL
		if c.e(startEdge).nextInAEL != unassigned {
			c.e(c.e(startEdge).nextInAEL).prevInAEL = i
		}
		e.prevInAEL = startEdge
		c.e(startEdge).nextInAEL = i
	}
}

func (c *Clipper) e2InsertsBeforeE1(i1, i2 int) bool {
	e1 := c.e(i1)
	e2 := c.e(i2)
	if e2.curr.X == e1.curr.X {
		if e2.top.Y > e1.top.Y {
			return e2.top.X < topX(e1, e2.top.Y)
		}
		return e1.top.X > topX(e2, e1.top.Y)
	}
	return e2.curr.X < e1.curr.X
}

func (c *Clipper) isEvenOddFillType(e *edge) bool {
	if e.polyTyp == Subject {
		return c.subjFillType == EvenOdd
	}
	return c.clipFillType == EvenOdd
}

func (c *Clipper) isEvenOddAltFillType(e *edge) bool {
	if e.polyTyp == Subject {
		return c.clipFillType == EvenOdd
	}
	return c.subjFillType == EvenOdd
}

func (c *Clipper) setWindingCount(i int) {
	edge := c.e(i)
	e := edge.prevInAEL
	// find the edge of the same polytype that immediately precedes 'edge'
	// in AEL
	for e != unassigned && (c.e(e).polyTyp != edge.polyTyp || c.e(e).windDelta == 0) {
		e = c.e(e).prevInAEL
	}
	if e == unassigned {
		var pft PolyFillType
		if edge.polyTyp == Subject {
			pft = c.subjFillType
		} else {
			pft = c.clipFillType
		}
		if edge.windDelta == 0 {
			if pft == Negative {
				edge.windCnt = -1
			} else {
				edge.windCnt = 1
			}
		} else {
			edge.windCnt = edge.windDelta
		}
		edge.windCnt2 = 0
		e = c.activeEdges // ie get ready to calc windCnt2
	} else if edge.windDelta == 0 && c.clipType != Union {
		edge.windCnt = 1
		edge.windCnt2 = c.e(e).windCnt2
		e = c.e(e).nextInAEL
	} else if c.isEvenOddFillType(edge) {
		// EvenOdd filling
		if edge.windDelta == 0 {
			// are we inside a subj polygon?
			inside := true
			e2 := c.e(e).prevInAEL
			for e2 != unassigned {
				if c.e(e2).polyTyp == c.e(e).polyTyp && c.e(e2).windDelta != 0 {
					inside = !inside
				}
				e2 = c.e(e2).prevInAEL
			}
			if inside {
				edge.windCnt = 0
			} else {
				edge.windCnt = 1
			}
		} else {
			edge.windCnt = edge.windDelta
		}
		edge.windCnt2 = c.e(e).windCnt2
		e = c.e(e).nextInAEL
	} else {
		// NonZero, Positive or Negative filling
		prev := c.e(e)
		if prev.windCnt*prev.windDelta < 0 {
			// prev edge is 'decreasing' WindCount (WC) toward zero
			// so we're outside the previous polygon
			if absInt(prev.windCnt) > 1 {
				// outside prev poly but still inside another.
				// when reversing direction of prev poly use the same WC
				if prev.windDelta*edge.windDelta < 0 {
					edge.windCnt = prev.windCnt
				} else {
					// otherwise continue to 'decrease' WC
					edge.windCnt = prev.windCnt + edge.windDelta
				}
			} else {
				// now outside all polys of same polytype so set own WC
				if edge.windDelta == 0 {
					edge.windCnt = 1
				} else {
					edge.windCnt = edge.windDelta
				}
			}
		} else {
			// prev edge is 'increasing' WindCount (WC) away from zero
			// so we're inside the previous polygon
			if edge.windDelta == 0 {
				if prev.windCnt < 0 {
					edge.windCnt = prev.windCnt - 1
				} else {
					edge.windCnt = prev.windCnt + 1
				}
			} else if prev.windDelta*edge.windDelta < 0 {
				// if wind direction is reversing prev then use same WC
				edge.windCnt = prev.windCnt
			} else {
				// otherwise add to WC
				edge.windCnt = prev.windCnt + edge.windDelta
			}
		}
		edge.windCnt2 = prev.windCnt2
		e = prev.nextInAEL // ie get ready to calc windCnt2
	}

	// update windCnt2
	if c.isEvenOddAltFillType(edge) {
		for e != i {
			if c.e(e).windDelta != 0 {
				if edge.windCnt2 == 0 {
					edge.windCnt2 = 1
				} else {
					edge.windCnt2 = 0
				}
			}
			e = c.e(e).nextInAEL
		}
	} else {
		for e != i {
			edge.windCnt2 += c.e(e).windDelta
			e = c.e(e).nextInAEL
		}
	}
}

func (c *Clipper) isContributing(edge *edge) bool {
	var pft, pft2 PolyFillType
	if edge.polyTyp == Subject {
		pft = c.subjFillType
		pft2 = c.clipFillType
	} else {
		pft = c.clipFillType
		pft2 = c.subjFillType
	}

	switch pft {
	case EvenOdd:
		// return false if a subj line has been flagged as inside a subj
		// polygon
		if edge.windDelta == 0 && edge.windCnt != 1 {
			return false
		}
	case NonZero:
		if absInt(edge.windCnt) != 1 {
			return false
		}
	case Positive:
		if edge.windCnt != 1 {
			return false
		}
	default: // Negative
		if edge.windCnt != -1 {
			return false
		}
	}

	switch c.clipType {
	case Intersection:
		switch pft2 {
		case EvenOdd, NonZero:
			return edge.windCnt2 != 0
		case Positive:
			return edge.windCnt2 > 0
		default:
			return edge.windCnt2 < 0
		}
	case Union:
		switch pft2 {
		case EvenOdd, NonZero:
			return edge.windCnt2 == 0
		case Positive:
			return edge.windCnt2 <= 0
		default:
			return edge.windCnt2 >= 0
		}
	case Difference:
		if edge.polyTyp == Subject {
			switch pft2 {
			case EvenOdd, NonZero:
				return edge.windCnt2 == 0
			case Positive:
				return edge.windCnt2 <= 0
			default:
				return edge.windCnt2 >= 0
			}
		}
		switch pft2 {
		case EvenOdd, NonZero:
			return edge.windCnt2 != 0
		case Positive:
			return edge.windCnt2 > 0
		default:
			return edge.windCnt2 < 0
		}
	case Xor:
		if edge.windDelta == 0 {
			// XOr always contributing unless open
			switch pft2 {
			case EvenOdd, NonZero:
				return edge.windCnt2 == 0
			case Positive:
				return edge.windCnt2 <= 0
			default:
				return edge.windCnt2 >= 0
			}
		}
		return true
	}
	return true
}

func (c *Clipper) addEdgeToSEL(i int) {
	// SEL pointers in PEdge are use to build transient lists of horizontal
	// edges. However, since we don't need to worry about processing order,
	// all additions are made to the front of the list
	e := c.e(i)
	if c.sortedEdges == unassigned {
		c.sortedEdges = i
		e.prevInSEL = unassigned
		e.nextInSEL = unassigned
	} else {
		e.nextInSEL = c.sortedEdges
		e.prevInSEL = unassigned
		c.e(c.sortedEdges).prevInSEL = i
		c.sortedEdges = i
	}
}

func (c *Clipper) popEdgeFromSEL() (int, bool) {
	i := c.sortedEdges
	if i == unassigned {
		return unassigned, false
	}
	e := c.e(i)
	c.sortedEdges = e.nextInSEL
	if c.sortedEdges != unassigned {
		c.e(c.sortedEdges).prevInSEL = unassigned
	}
	e.nextInSEL = unassigned
	e.prevInSEL = unassigned
	return i, true
}

func (c *Clipper) copyAELToSEL() {
	e := c.activeEdges
	c.sortedEdges = e
	for e != unassigned {
		ed := c.e(e)
		ed.prevInSEL = ed.prevInAEL
		ed.nextInSEL = ed.nextInAEL
		e = ed.nextInAEL
	}
}

func (c *Clipper) deleteFromSEL(i int) {
	e := c.e(i)
	selPrev := e.prevInSEL
	selNext := e.nextInSEL
	if selPrev == unassigned && selNext == unassigned && i != c.sortedEdges {
		return // already deleted
	}
	if selPrev != unassigned {
		c.e(selPrev).nextInSEL = selNext
	} else {
		c.sortedEdges = selNext
	}
	if selNext != unassigned {
		c.e(selNext).prevInSEL = selPrev
	}
	e.nextInSEL = unassigned
	e.prevInSEL = unassigned
}

func (c *Clipper) swapPositionsInSEL(i1, i2 int) {
	e1 := c.e(i1)
	e2 := c.e(i2)
	if e1.nextInSEL == unassigned && e1.prevInSEL == unassigned {
		return
	}
	if e2.nextInSEL == unassigned && e2.prevInSEL == unassigned {
		return
	}

	if e1.nextInSEL == i2 {
		next := e2.nextInSEL
		if next != unassigned {
			c.e(next).prevInSEL = i1
		}
		prev := e1.prevInSEL
		if prev != unassigned {
			c.e(prev).nextInSEL = i2
		}
		e2.prevInSEL = prev
		e2.nextInSEL = i1
		e1.prevInSEL = i2
		e1.nextInSEL = next
	} else if e2.nextInSEL == i1 {
		next := e1.nextInSEL
		if next != unassigned {
			c.e(next).prevInSEL = i2
		}
		prev := e2.prevInSEL
		if prev != unassigned {
			c.e(prev).nextInSEL = i1
		}
		e1.prevInSEL = prev
		e1.nextInSEL = i2
		e2.prevInSEL = i1
		e2.nextInSEL = next
	} else {
		next := e1.nextInSEL
		prev := e1.prevInSEL
		e1.nextInSEL = e2.nextInSEL
		if e1.nextInSEL != unassigned {
			c.e(e1.nextInSEL).prevInSEL = i1
		}
		e1.prevInSEL = e2.prevInSEL
		if e1.prevInSEL != unassigned {
			c.e(e1.prevInSEL).nextInSEL = i1
		}
		e2.nextInSEL = next
		if e2.nextInSEL != unassigned {
			c.e(e2.nextInSEL).prevInSEL = i2
		}
		e2.prevInSEL = prev
		if e2.prevInSEL != unassigned {
			c.e(e2.prevInSEL).nextInSEL = i2
		}
	}

	if e1.prevInSEL == unassigned {
		c.sortedEdges = i1
	} else if e2.prevInSEL == unassigned {
		c.sortedEdges = i2
	}
}

func (c *Clipper) addJoin(op1, op2 int, offPt Point) {
	c.joins = append(c.joins, joinRec{outPt1: op1, outPt2: op2, offPt: offPt})
}

func (c *Clipper) addGhostJoin(op int, offPt Point) {
	c.ghostJoins = append(c.ghostJoins, joinRec{outPt1: op, outPt2: unassigned, offPt: offPt})
}

func swapSides(e1, e2 *edge) {
	e1.side, e2.side = e2.side, e1.side
}

func swapPolyIndexes(e1, e2 *edge) {
	e1.outIdx, e2.outIdx = e2.outIdx, e1.outIdx
}

// aelSorted reports whether current X values are non-decreasing walking
// the AEL front to back. This holds at every scanbeam boundary.
func (c *Clipper) aelSorted() bool {
	e := c.activeEdges
	for e != unassigned {
		next := c.e(e).nextInAEL
		if next != unassigned && c.e(next).curr.X < c.e(e).curr.X {
			return false
		}
		e = next
	}
	return true
}
