package clipper

// ClipperBase owns the per-operation edge arena, the local minima list and
// the scanbeam. Edge links are indices into the arena; see types.go.
type ClipperBase struct {
	minimaList   *localMinima
	currentLM    *localMinima
	edges        []edge
	scanbeam     *scanbeam
	activeEdges  int
	useFullRange bool
	hasOpenPaths bool

	// PreserveCollinear stops AddPath from removing collinear interior
	// vertices.
	PreserveCollinear bool

	ranges rangeCfg
}

func newClipperBase() ClipperBase {
	return ClipperBase{
		activeEdges: unassigned,
		ranges:      defaultRanges(),
	}
}

func (c *ClipperBase) e(i int) *edge {
	return &c.edges[i]
}

// rangeTest promotes the context to full range arithmetic once any
// coordinate exceeds the reduced bound; beyond the full bound is an error.
func (c *ClipperBase) rangeTest(pt Point) error {
	if c.useFullRange {
		if pt.X > c.ranges.hi || pt.Y > c.ranges.hi || -pt.X > c.ranges.hi || -pt.Y > c.ranges.hi {
			return ErrCoordinateRange
		}
		return nil
	}
	if pt.X > c.ranges.lo || pt.Y > c.ranges.lo || -pt.X > c.ranges.lo || -pt.Y > c.ranges.lo {
		c.useFullRange = true
		return c.rangeTest(pt)
	}
	return nil
}

func (c *ClipperBase) initEdge(i, nextI, prevI int, pt Point) {
	e := c.e(i)
	e.next = nextI
	e.prev = prevI
	e.curr = pt
	e.outIdx = unassigned
}

func (c *ClipperBase) initEdge2(i int, polyType PolyType) {
	e := c.e(i)
	if e.curr.Y >= c.e(e.next).curr.Y {
		e.bot = e.curr
		e.top = c.e(e.next).curr
	} else {
		e.top = e.curr
		e.bot = c.e(e.next).curr
	}
	setDx(e)
	e.polyTyp = polyType
}

// removeEdge unlinks an edge from its contour chain, leaving it floating.
func (c *ClipperBase) removeEdge(i int) int {
	e := c.e(i)
	c.e(e.prev).next = e.next
	c.e(e.next).prev = e.prev
	result := e.next
	e.prev = unassigned
	return result
}

func (c *ClipperBase) findNextLocMin(i int) int {
	for {
		e := c.e(i)
		for !ptEq(e.bot, c.e(e.prev).bot) || ptEq(e.curr, e.top) {
			i = e.next
			e = c.e(i)
		}
		if e.dx != horizontal && c.e(e.prev).dx != horizontal {
			break
		}
		for c.e(e.prev).dx == horizontal {
			i = e.prev
			e = c.e(i)
		}
		e2 := i
		for e.dx == horizontal {
			i = e.next
			e = c.e(i)
		}
		if e.top.Y == c.e(e.prev).bot.Y {
			continue // just an intermediate horizontal
		}
		// prefer the leftmost of the two flanking bounds
		if c.e(c.e(e2).prev).bot.X < e.bot.X {
			i = e2
		}
		break
	}
	return i
}

func (c *ClipperBase) processBound(i int, leftBoundIsForward bool) int {
	result := i

	if c.e(i).outIdx == skipEdge {
		// There are edges beyond this skip edge in the bound; create
		// another local minimum from them and process it separately.
		e := i
		if leftBoundIsForward {
			for c.e(e).top.Y == c.e(c.e(e).next).bot.Y {
				e = c.e(e).next
			}
			for e != result && c.e(e).dx == horizontal {
				e = c.e(e).prev
			}
		} else {
			for c.e(e).top.Y == c.e(c.e(e).prev).bot.Y {
				e = c.e(e).prev
			}
			for e != result && c.e(e).dx == horizontal {
				e = c.e(e).next
			}
		}
		if e == result {
			if leftBoundIsForward {
				result = c.e(e).next
			} else {
				result = c.e(e).prev
			}
		} else {
			if leftBoundIsForward {
				e = c.e(result).next
			} else {
				e = c.e(result).prev
			}
			locMin := &localMinima{
				y:          c.e(e).bot.Y,
				leftBound:  unassigned,
				rightBound: e,
			}
			c.e(e).windDelta = 0
			result = c.processBound(e, leftBoundIsForward)
			c.insertLocalMinima(locMin)
		}
		return result
	}

	var eStart int
	if c.e(i).dx == horizontal {
		// Starting direction of a horizontal bound head is ambiguous, so
		// check whether its bot.X lines up with the adjoining lower edge.
		if leftBoundIsForward {
			eStart = c.e(i).prev
		} else {
			eStart = c.e(i).next
		}
		if c.e(eStart).dx == horizontal { // an adjoining horizontal skip edge
			if c.e(eStart).bot.X != c.e(i).bot.X && c.e(eStart).top.X != c.e(i).bot.X {
				c.reverseHorizontal(c.e(i))
			}
		} else if c.e(eStart).bot.X != c.e(i).bot.X {
			c.reverseHorizontal(c.e(i))
		}
	}

	eStart = i
	e := i
	if leftBoundIsForward {
		for c.e(result).top.Y == c.e(c.e(result).next).bot.Y && c.e(c.e(result).next).outIdx != skipEdge {
			result = c.e(result).next
		}
		if c.e(result).dx == horizontal && c.e(c.e(result).next).outIdx != skipEdge {
			// At the top of a bound, horizontals are added to the bound
			// only when the preceding edge wasn't a horizontal, and only
			// when the horizontal extends the bound's reach.
			horz := result
			for c.e(c.e(horz).prev).dx == horizontal {
				horz = c.e(horz).prev
			}
			if c.e(c.e(horz).prev).top.X > c.e(c.e(result).next).top.X {
				result = c.e(horz).prev
			}
		}
		for e != result {
			c.e(e).nextInLML = c.e(e).next
			if c.e(e).dx == horizontal && e != eStart && c.e(e).bot.X != c.e(c.e(e).prev).top.X {
				c.reverseHorizontal(c.e(e))
			}
			e = c.e(e).next
		}
		if c.e(e).dx == horizontal && e != eStart && c.e(e).bot.X != c.e(c.e(e).prev).top.X {
			c.reverseHorizontal(c.e(e))
		}
		result = c.e(result).next // move to the edge just beyond current bound
	} else {
		for c.e(result).top.Y == c.e(c.e(result).prev).bot.Y && c.e(c.e(result).prev).outIdx != skipEdge {
			result = c.e(result).prev
		}
		if c.e(result).dx == horizontal && c.e(c.e(result).prev).outIdx != skipEdge {
			horz := result
			for c.e(c.e(horz).next).dx == horizontal {
				horz = c.e(horz).next
			}
			if c.e(c.e(horz).next).top.X >= c.e(c.e(result).prev).top.X {
				result = c.e(horz).next
			}
		}
		for e != result {
			c.e(e).nextInLML = c.e(e).prev
			if c.e(e).dx == horizontal && e != eStart && c.e(e).bot.X != c.e(c.e(e).next).top.X {
				c.reverseHorizontal(c.e(e))
			}
			e = c.e(e).prev
		}
		if c.e(e).dx == horizontal && e != eStart && c.e(e).bot.X != c.e(c.e(e).next).top.X {
			c.reverseHorizontal(c.e(e))
		}
		result = c.e(result).prev
	}
	return result
}

// AddPath adds a subject or clip contour. It returns false with a nil error
// when the contour is degenerate and has been dropped; structural problems
// (open clip paths, out of range coordinates) return an error.
func (c *ClipperBase) AddPath(pg Path, polyType PolyType, closed bool) (bool, error) {
	if !closed && polyType == Clip {
		return false, ErrOpenClipPath
	}

	highI := len(pg) - 1
	if closed {
		for highI > 0 && ptEq(pg[highI], pg[0]) {
			highI--
		}
	}
	for highI > 0 && ptEq(pg[highI], pg[highI-1]) {
		highI--
	}
	if (closed && highI < 2) || (!closed && highI < 1) {
		return false, nil
	}

	// create a new edge array
	start := len(c.edges)
	c.edges = append(c.edges, make([]edge, highI+1)...)
	for k := start; k < len(c.edges); k++ {
		e := &c.edges[k]
		e.outIdx = unassigned
		e.nextInLML = unassigned
		e.nextInAEL, e.prevInAEL = unassigned, unassigned
		e.nextInSEL, e.prevInSEL = unassigned, unassigned
	}

	fail := func(err error) (bool, error) {
		c.edges = c.edges[:start]
		return false, err
	}

	if err := c.rangeTest(pg[0]); err != nil {
		return fail(err)
	}
	if err := c.rangeTest(pg[highI]); err != nil {
		return fail(err)
	}
	c.initEdge(start, start+1, start+highI, pg[0])
	c.initEdge(start+highI, start, start+highI-1, pg[highI])
	for i := highI - 1; i >= 1; i-- {
		if err := c.rangeTest(pg[i]); err != nil {
			return fail(err)
		}
		c.initEdge(start+i, start+i+1, start+i-1, pg[i])
	}

	eStart := start
	// remove duplicate vertices and (when not preserving them) collinear
	// interior vertices
	eIx := eStart
	eLoopStop := eStart
	for {
		e := c.e(eIx)
		if ptEq(e.curr, c.e(e.next).curr) && (closed || e.next != eStart) {
			if eIx == e.next {
				break
			}
			if eIx == eStart {
				eStart = e.next
			}
			eIx = c.removeEdge(eIx)
			eLoopStop = eIx
			continue
		}
		if e.prev == e.next {
			break // only two vertices
		}
		if closed &&
			slopesEqual3(c.e(e.prev).curr, e.curr, c.e(e.next).curr, c.useFullRange) &&
			(!c.PreserveCollinear || !pt2IsBetweenPt1AndPt3(c.e(e.prev).curr, e.curr, c.e(e.next).curr)) {
			if eIx == eStart {
				eStart = e.next
			}
			eIx = c.removeEdge(eIx)
			eIx = c.e(eIx).prev
			eLoopStop = eIx
			continue
		}
		eIx = e.next
		if eIx == eLoopStop || (!closed && c.e(eIx).next == eStart) {
			break
		}
	}

	if (!closed && eIx == c.e(eIx).next) || (closed && c.e(eIx).prev == c.e(eIx).next) {
		return fail(nil)
	}

	if !closed {
		c.hasOpenPaths = true
		c.e(c.e(eStart).prev).outIdx = skipEdge
	}

	// set bot, top and dx, and detect fully flat contours
	eIx = eStart
	isFlat := true
	for {
		c.initEdge2(eIx, polyType)
		eIx = c.e(eIx).next
		if isFlat && c.e(eIx).curr.Y != c.e(eStart).curr.Y {
			isFlat = false
		}
		if eIx == eStart {
			break
		}
	}

	// A fully flat path cannot be clipped as a polygon; a flat open path
	// becomes a single right bound with no winding contribution so it can
	// be crossed but never filled.
	if isFlat {
		if closed {
			return fail(nil)
		}
		c.e(c.e(eIx).prev).outIdx = skipEdge
		locMin := &localMinima{
			y:          c.e(eIx).bot.Y,
			leftBound:  unassigned,
			rightBound: eIx,
		}
		c.e(eIx).side = esRight
		c.e(eIx).windDelta = 0
		for {
			e := c.e(eIx)
			if e.bot.X != c.e(e.prev).top.X {
				c.reverseHorizontal(e)
			}
			if c.e(e.next).outIdx == skipEdge {
				break
			}
			e.nextInLML = e.next
			eIx = e.next
		}
		c.insertLocalMinima(locMin)
		return true, nil
	}

	var leftBoundIsForward bool
	eMin := unassigned

	// Open paths have matching start and end points, so avoid mistaking
	// them for a local minimum.
	if ptEq(c.e(c.e(eIx).prev).bot, c.e(c.e(eIx).prev).top) {
		eIx = c.e(eIx).next
	}

	for {
		eIx = c.findNextLocMin(eIx)
		if eIx == eMin {
			break
		} else if eMin == unassigned {
			eMin = eIx
		}

		// e and e.prev now share a local minimum (left aligned if
		// horizontal); compare their slopes to find which starts which
		// bound.
		locMin := &localMinima{y: c.e(eIx).bot.Y}
		if c.e(eIx).dx < c.e(c.e(eIx).prev).dx {
			locMin.leftBound = c.e(eIx).prev
			locMin.rightBound = eIx
			leftBoundIsForward = false // Q.nextInLML = Q.prev
		} else {
			locMin.leftBound = eIx
			locMin.rightBound = c.e(eIx).prev
			leftBoundIsForward = true // Q.nextInLML = Q.next
		}
		c.e(locMin.leftBound).side = esLeft
		c.e(locMin.rightBound).side = esRight

		if !closed {
			c.e(locMin.leftBound).windDelta = 0
		} else if c.e(locMin.leftBound).next == locMin.rightBound {
			c.e(locMin.leftBound).windDelta = -1
		} else {
			c.e(locMin.leftBound).windDelta = 1
		}
		c.e(locMin.rightBound).windDelta = -c.e(locMin.leftBound).windDelta

		eIx = c.processBound(locMin.leftBound, leftBoundIsForward)
		if c.e(eIx).outIdx == skipEdge {
			eIx = c.processBound(eIx, leftBoundIsForward)
		}
		e2 := c.processBound(locMin.rightBound, !leftBoundIsForward)
		if c.e(e2).outIdx == skipEdge {
			e2 = c.processBound(e2, !leftBoundIsForward)
		}

		if c.e(locMin.leftBound).outIdx == skipEdge {
			locMin.leftBound = unassigned
		} else if c.e(locMin.rightBound).outIdx == skipEdge {
			locMin.rightBound = unassigned
		}
		c.insertLocalMinima(locMin)
		if !leftBoundIsForward {
			eIx = e2
		}
	}
	return true, nil
}

func (c *ClipperBase) AddPaths(ppg Paths, polyType PolyType, closed bool) (bool, error) {
	result := false
	for _, pg := range ppg {
		ok, err := c.AddPath(pg, polyType, closed)
		if err != nil {
			return result, err
		}
		if ok {
			result = true
		}
	}
	return result, nil
}

// AddPolygon adds a closed contour.
func (c *ClipperBase) AddPolygon(pg Path, polyType PolyType) (bool, error) {
	return c.AddPath(pg, polyType, true)
}

// AddPolygons adds a set of closed contours.
func (c *ClipperBase) AddPolygons(ppg Paths, polyType PolyType) (bool, error) {
	return c.AddPaths(ppg, polyType, true)
}

func (c *ClipperBase) insertLocalMinima(newLm *localMinima) {
	if c.minimaList == nil {
		c.minimaList = newLm
	} else if newLm.y >= c.minimaList.y {
		newLm.next = c.minimaList
		c.minimaList = newLm
	} else {
		tmpLm := c.minimaList
		for tmpLm.next != nil && newLm.y < tmpLm.next.y {
			tmpLm = tmpLm.next
		}
		newLm.next = tmpLm.next
		tmpLm.next = newLm
	}
}

func (c *ClipperBase) popLocalMinima(y cInt) (*localMinima, bool) {
	if c.currentLM == nil || c.currentLM.y != y {
		return nil, false
	}
	current := c.currentLM
	c.currentLM = c.currentLM.next
	return current, true
}

func (c *ClipperBase) localMinimaPending() bool {
	return c.currentLM != nil
}

// Clear discards all added paths so the context can be reused.
func (c *ClipperBase) Clear() {
	c.minimaList = nil
	c.currentLM = nil
	c.edges = c.edges[:0]
	c.scanbeam = nil
	c.activeEdges = unassigned
	c.useFullRange = false
	c.hasOpenPaths = false
}

func (c *ClipperBase) reset() {
	c.currentLM = c.minimaList
	if c.currentLM == nil {
		return // nothing to process
	}

	// rebuild the scanbeam, reset bound heads
	c.scanbeam = nil
	lm := c.minimaList
	for lm != nil {
		c.insertScanbeam(lm.y)
		if lm.leftBound != unassigned {
			e := c.e(lm.leftBound)
			e.curr = e.bot
			e.side = esLeft
			e.outIdx = unassigned
		}
		if lm.rightBound != unassigned {
			e := c.e(lm.rightBound)
			e.curr = e.bot
			e.side = esRight
			e.outIdx = unassigned
		}
		lm = lm.next
	}
	c.activeEdges = unassigned
}

func (c *ClipperBase) insertScanbeam(y cInt) {
	// single-linked list, sorted descending, ignoring duplicates
	if c.scanbeam == nil {
		c.scanbeam = &scanbeam{y: y}
	} else if y > c.scanbeam.y {
		c.scanbeam = &scanbeam{y: y, next: c.scanbeam}
	} else {
		sb := c.scanbeam
		for sb.next != nil && y <= sb.next.y {
			sb = sb.next
		}
		if y == sb.y {
			return
		}
		sb.next = &scanbeam{y: y, next: sb.next}
	}
}

func (c *ClipperBase) popScanbeam() (cInt, bool) {
	if c.scanbeam == nil {
		return 0, false
	}
	y := c.scanbeam.y
	c.scanbeam = c.scanbeam.next
	return y, true
}

func (c *ClipperBase) deleteFromAEL(i int) {
	e := c.e(i)
	aelPrev := e.prevInAEL
	aelNext := e.nextInAEL
	if aelPrev == unassigned && aelNext == unassigned && i != c.activeEdges {
		return // already deleted
	}
	if aelPrev != unassigned {
		c.e(aelPrev).nextInAEL = aelNext
	} else {
		c.activeEdges = aelNext
	}
	if aelNext != unassigned {
		c.e(aelNext).prevInAEL = aelPrev
	}
	e.nextInAEL = unassigned
	e.prevInAEL = unassigned
}

// updateEdgeIntoAEL replaces an edge that has reached its top with its
// bound continuation and returns the continuation's index.
func (c *ClipperBase) updateEdgeIntoAEL(i int) int {
	e := c.e(i)
	if e.nextInLML == unassigned {
		return i // no continuation; caller never does this
	}
	aelPrev := e.prevInAEL
	aelNext := e.nextInAEL
	next := e.nextInLML
	en := c.e(next)
	en.outIdx = e.outIdx
	if aelPrev != unassigned {
		c.e(aelPrev).nextInAEL = next
	} else {
		c.activeEdges = next
	}
	if aelNext != unassigned {
		c.e(aelNext).prevInAEL = next
	}
	en.side = e.side
	en.windDelta = e.windDelta
	en.windCnt = e.windCnt
	en.windCnt2 = e.windCnt2
	en.curr = en.bot
	en.prevInAEL = aelPrev
	en.nextInAEL = aelNext
	if !isHorizontal(en) {
		c.insertScanbeam(en.top.Y)
	}
	return next
}

func (c *ClipperBase) swapPositionsInAEL(i1, i2 int) {
	e1 := c.e(i1)
	e2 := c.e(i2)
	// check that one or other edge hasn't already been removed from AEL
	if e1.nextInAEL == e1.prevInAEL || e2.nextInAEL == e2.prevInAEL {
		return
	}

	if e1.nextInAEL == i2 {
		next := e2.nextInAEL
		if next != unassigned {
			c.e(next).prevInAEL = i1
		}
		prev := e1.prevInAEL
		if prev != unassigned {
			c.e(prev).nextInAEL = i2
		}
		e2.prevInAEL = prev
		e2.nextInAEL = i1
		e1.prevInAEL = i2
		e1.nextInAEL = next
	} else if e2.nextInAEL == i1 {
		next := e1.nextInAEL
		if next != unassigned {
			c.e(next).prevInAEL = i2
		}
		prev := e2.prevInAEL
		if prev != unassigned {
			c.e(prev).nextInAEL = i1
		}
		e1.prevInAEL = prev
		e1.nextInAEL = i2
		e2.prevInAEL = i1
		e2.nextInAEL = next
	} else {
		next := e1.nextInAEL
		prev := e1.prevInAEL
		e1.nextInAEL = e2.nextInAEL
		if e1.nextInAEL != unassigned {
			c.e(e1.nextInAEL).prevInAEL = i1
		}
		e1.prevInAEL = e2.prevInAEL
		if e1.prevInAEL != unassigned {
			c.e(e1.prevInAEL).nextInAEL = i1
		}
		e2.nextInAEL = next
		if e2.nextInAEL != unassigned {
			c.e(e2.nextInAEL).prevInAEL = i2
		}
		e2.prevInAEL = prev
		if e2.prevInAEL != unassigned {
			c.e(e2.prevInAEL).nextInAEL = i2
		}
	}

	if e1.prevInAEL == unassigned {
		c.activeEdges = i1
	} else if e2.prevInAEL == unassigned {
		c.activeEdges = i2
	}
}

// GetBounds returns the bounding rectangle of all added paths.
func (c *ClipperBase) GetBounds() IntRect {
	lm := c.minimaList
	if lm == nil {
		return IntRect{}
	}
	var result IntRect
	seeded := false
	for lm != nil {
		for _, bound := range [2]int{lm.leftBound, lm.rightBound} {
			e := bound
			for e != unassigned {
				ed := c.e(e)
				if !seeded {
					result = IntRect{Left: ed.bot.X, Right: ed.bot.X, Top: ed.bot.Y, Bottom: ed.bot.Y}
					seeded = true
				}
				for _, pt := range [2]Point{ed.bot, ed.top} {
					if pt.X < result.Left {
						result.Left = pt.X
					}
					if pt.X > result.Right {
						result.Right = pt.X
					}
					if pt.Y < result.Top {
						result.Top = pt.Y
					}
					if pt.Y > result.Bottom {
						result.Bottom = pt.Y
					}
				}
				e = ed.nextInLML
			}
		}
		lm = lm.next
	}
	return result
}
