package clipper

// addOutPt appends a vertex to the ring the edge contributes to, creating
// the ring on first contribution, and returns the new point's index.
func (c *Clipper) addOutPt(eIx int, pt Point) int {
	e := c.e(eIx)
	if e.outIdx < 0 {
		recIx := c.createOutRec()
		c.rec(recIx).isOpen = e.windDelta == 0
		newOpIx := len(c.outPts)
		c.outPts = append(c.outPts, outPt{idx: recIx, pt: pt, next: newOpIx, prev: newOpIx})
		c.rec(recIx).pts = newOpIx
		if !c.rec(recIx).isOpen {
			c.setHoleState(eIx, recIx)
		}
		e.outIdx = recIx // nb: do this after SetZ
		return newOpIx
	}

	recIx := e.outIdx
	// opIx is the 'Left'most point; prevIx is the 'Right'most
	opIx := c.rec(recIx).pts
	toFront := e.side == esLeft
	if toFront && ptEq(pt, c.op(opIx).pt) {
		return opIx
	}
	prevIx := c.op(opIx).prev
	if !toFront && ptEq(pt, c.op(prevIx).pt) {
		return prevIx
	}
	newOpIx := len(c.outPts)
	c.outPts = append(c.outPts, outPt{idx: recIx, pt: pt, next: opIx, prev: prevIx})
	c.op(prevIx).next = newOpIx
	c.op(opIx).prev = newOpIx
	if toFront {
		c.rec(recIx).pts = newOpIx
	}
	return newOpIx
}

func (c *Clipper) getLastOutPt(eIx int) int {
	r := c.rec(c.e(eIx).outIdx)
	if c.e(eIx).side == esLeft {
		return r.pts
	}
	return c.op(r.pts).prev
}

func (c *Clipper) addLocalMinPoly(e1Ix, e2Ix int, pt Point) int {
	var result int
	var eIx, prevEIx int
	if isHorizontal(c.e(e2Ix)) || c.e(e1Ix).dx > c.e(e2Ix).dx {
		result = c.addOutPt(e1Ix, pt)
		c.e(e2Ix).outIdx = c.e(e1Ix).outIdx
		c.e(e1Ix).side = esLeft
		c.e(e2Ix).side = esRight
		eIx = e1Ix
		if c.e(eIx).prevInAEL == e2Ix {
			prevEIx = c.e(e2Ix).prevInAEL
		} else {
			prevEIx = c.e(eIx).prevInAEL
		}
	} else {
		result = c.addOutPt(e2Ix, pt)
		c.e(e1Ix).outIdx = c.e(e2Ix).outIdx
		c.e(e1Ix).side = esRight
		c.e(e2Ix).side = esLeft
		eIx = e2Ix
		if c.e(eIx).prevInAEL == e1Ix {
			prevEIx = c.e(e1Ix).prevInAEL
		} else {
			prevEIx = c.e(eIx).prevInAEL
		}
	}

	if prevEIx != unassigned && c.e(prevEIx).outIdx >= 0 {
		xPrev := topX(c.e(prevEIx), pt.Y)
		xE := topX(c.e(eIx), pt.Y)
		if xPrev == xE && c.e(eIx).windDelta != 0 && c.e(prevEIx).windDelta != 0 &&
			slopesEqual4(Point{X: xPrev, Y: pt.Y}, c.e(prevEIx).top,
				Point{X: xE, Y: pt.Y}, c.e(eIx).top, c.useFullRange) {
			outPt := c.addOutPt(prevEIx, pt)
			c.addJoin(result, outPt, c.e(eIx).top)
		}
	}
	return result
}

func (c *Clipper) addLocalMaxPoly(e1Ix, e2Ix int, pt Point) {
	c.addOutPt(e1Ix, pt)
	if c.e(e2Ix).windDelta == 0 {
		c.addOutPt(e2Ix, pt)
	}
	if c.e(e1Ix).outIdx == c.e(e2Ix).outIdx {
		c.e(e1Ix).outIdx = unassigned
		c.e(e2Ix).outIdx = unassigned
	} else if c.e(e1Ix).outIdx < c.e(e2Ix).outIdx {
		c.appendPolygon(e1Ix, e2Ix)
	} else {
		c.appendPolygon(e2Ix, e1Ix)
	}
}

func (c *Clipper) setHoleState(eIx, recIx int) {
	e2 := c.e(eIx).prevInAEL
	eTmp := unassigned
	for e2 != unassigned {
		if c.e(e2).outIdx >= 0 && c.e(e2).windDelta != 0 {
			if eTmp == unassigned {
				eTmp = e2
			} else if c.e(eTmp).outIdx == c.e(e2).outIdx {
				eTmp = unassigned // paired
			}
		}
		e2 = c.e(e2).prevInAEL
	}
	if eTmp == unassigned {
		c.rec(recIx).firstLeft = unassigned
		c.rec(recIx).isHole = false
	} else {
		fl := c.e(eTmp).outIdx
		c.rec(recIx).firstLeft = fl
		c.rec(recIx).isHole = !c.rec(fl).isHole
	}
}

func (c *Clipper) firstIsBottomPt(btmPt1, btmPt2 int) bool {
	p := c.op(btmPt1).prev
	for ptEq(c.op(p).pt, c.op(btmPt1).pt) && p != btmPt1 {
		p = c.op(p).prev
	}
	dx1p := absFloat(getDx(c.op(btmPt1).pt, c.op(p).pt))
	p = c.op(btmPt1).next
	for ptEq(c.op(p).pt, c.op(btmPt1).pt) && p != btmPt1 {
		p = c.op(p).next
	}
	dx1n := absFloat(getDx(c.op(btmPt1).pt, c.op(p).pt))

	p = c.op(btmPt2).prev
	for ptEq(c.op(p).pt, c.op(btmPt2).pt) && p != btmPt2 {
		p = c.op(p).prev
	}
	dx2p := absFloat(getDx(c.op(btmPt2).pt, c.op(p).pt))
	p = c.op(btmPt2).next
	for ptEq(c.op(p).pt, c.op(btmPt2).pt) && p != btmPt2 {
		p = c.op(p).next
	}
	dx2n := absFloat(getDx(c.op(btmPt2).pt, c.op(p).pt))

	if maxFloat(dx1p, dx1n) == maxFloat(dx2p, dx2n) &&
		minFloat(dx1p, dx1n) == minFloat(dx2p, dx2n) {
		return c.areaOutPt(btmPt1) > 0 // if otherwise identical use orientation
	}
	return (dx1p >= dx2p && dx1p >= dx2n) || (dx1n >= dx2p && dx1n >= dx2n)
}

func (c *Clipper) getBottomPt(ppIx int) int {
	dups := unassigned
	p := c.op(ppIx).next
	for p != ppIx {
		if c.op(p).pt.Y > c.op(ppIx).pt.Y {
			ppIx = p
			dups = unassigned
		} else if c.op(p).pt.Y == c.op(ppIx).pt.Y && c.op(p).pt.X <= c.op(ppIx).pt.X {
			if c.op(p).pt.X < c.op(ppIx).pt.X {
				dups = unassigned
				ppIx = p
			} else if c.op(p).next != ppIx && c.op(p).prev != ppIx {
				dups = p
			}
		}
		p = c.op(p).next
	}
	if dups != unassigned {
		// there appears to be at least 2 vertices at bottomPt so ...
		for dups != p {
			if !c.firstIsBottomPt(p, dups) {
				ppIx = dups
			}
			dups = c.op(dups).next
			for !ptEq(c.op(dups).pt, c.op(ppIx).pt) {
				dups = c.op(dups).next
			}
		}
	}
	return ppIx
}

func (c *Clipper) getLowermostRec(outRec1, outRec2 int) int {
	// work out which polygon fragment has the correct hole state
	if c.rec(outRec1).bottomPt == unassigned {
		c.rec(outRec1).bottomPt = c.getBottomPt(c.rec(outRec1).pts)
	}
	if c.rec(outRec2).bottomPt == unassigned {
		c.rec(outRec2).bottomPt = c.getBottomPt(c.rec(outRec2).pts)
	}
	bPt1 := c.op(c.rec(outRec1).bottomPt)
	bPt2 := c.op(c.rec(outRec2).bottomPt)
	switch {
	case bPt1.pt.Y > bPt2.pt.Y:
		return outRec1
	case bPt1.pt.Y < bPt2.pt.Y:
		return outRec2
	case bPt1.pt.X < bPt2.pt.X:
		return outRec1
	case bPt1.pt.X > bPt2.pt.X:
		return outRec2
	case bPt1.next == c.rec(outRec1).bottomPt:
		return outRec2
	case bPt2.next == c.rec(outRec2).bottomPt:
		return outRec1
	case c.firstIsBottomPt(c.rec(outRec1).bottomPt, c.rec(outRec2).bottomPt):
		return outRec1
	default:
		return outRec2
	}
}

func (c *Clipper) outRec1RightOfOutRec2(outRec1, outRec2 int) bool {
	for {
		outRec1 = c.rec(outRec1).firstLeft
		if outRec1 == outRec2 {
			return true
		}
		if outRec1 == unassigned {
			return false
		}
	}
}

// appendPolygon splices e2's ring onto e1's and retires e2's outRec,
// leaving an idx redirect behind for getOutRec.
func (c *Clipper) appendPolygon(e1Ix, e2Ix int) {
	outRec1 := c.e(e1Ix).outIdx
	outRec2 := c.e(e2Ix).outIdx

	var holeStateRec int
	if c.outRec1RightOfOutRec2(outRec1, outRec2) {
		holeStateRec = outRec2
	} else if c.outRec1RightOfOutRec2(outRec2, outRec1) {
		holeStateRec = outRec1
	} else {
		holeStateRec = c.getLowermostRec(outRec1, outRec2)
	}

	// get the start and ends of both output polygons and
	// join e2 poly onto e1 poly and delete pointers to e2 ...
	p1lft := c.rec(outRec1).pts
	p1rt := c.op(p1lft).prev
	p2lft := c.rec(outRec2).pts
	p2rt := c.op(p2lft).prev

	if c.e(e1Ix).side == esLeft {
		if c.e(e2Ix).side == esLeft {
			// z y x a b c
			c.reversePolyPtLinks(p2lft)
			c.op(p2lft).next = p1lft
			c.op(p1lft).prev = p2lft
			c.op(p1rt).next = p2rt
			c.op(p2rt).prev = p1rt
			c.rec(outRec1).pts = p2rt
		} else {
			// x y z a b c
			c.op(p2rt).next = p1lft
			c.op(p1lft).prev = p2rt
			c.op(p2lft).prev = p1rt
			c.op(p1rt).next = p2lft
			c.rec(outRec1).pts = p2lft
		}
	} else {
		if c.e(e2Ix).side == esRight {
			// a b c z y x
			c.reversePolyPtLinks(p2lft)
			c.op(p1rt).next = p2rt
			c.op(p2rt).prev = p1rt
			c.op(p2lft).next = p1lft
			c.op(p1lft).prev = p2lft
		} else {
			// a b c x y z
			c.op(p1rt).next = p2lft
			c.op(p2lft).prev = p1rt
			c.op(p1lft).prev = p2rt
			c.op(p2rt).next = p1lft
		}
	}

	c.rec(outRec1).bottomPt = unassigned
	if holeStateRec == outRec2 {
		if c.rec(outRec2).firstLeft != outRec1 {
			c.rec(outRec1).firstLeft = c.rec(outRec2).firstLeft
		}
		c.rec(outRec1).isHole = c.rec(outRec2).isHole
	}
	c.rec(outRec2).pts = unassigned
	c.rec(outRec2).bottomPt = unassigned
	c.rec(outRec2).firstLeft = outRec1

	okIdx := c.e(e1Ix).outIdx
	obsoleteIdx := c.e(e2Ix).outIdx
	c.e(e1Ix).outIdx = unassigned // safe because we only get here via addLocalMaxPoly
	c.e(e2Ix).outIdx = unassigned

	e := c.activeEdges
	for e != unassigned {
		if c.e(e).outIdx == obsoleteIdx {
			c.e(e).outIdx = okIdx
			c.e(e).side = c.e(e1Ix).side
			break
		}
		e = c.e(e).nextInAEL
	}
	c.rec(outRec2).idx = c.rec(outRec1).idx
}

func (c *Clipper) reversePolyPtLinks(ppIx int) {
	if ppIx == unassigned {
		return
	}
	pp1 := ppIx
	for {
		p := c.op(pp1)
		pp2 := p.next
		p.next = p.prev
		p.prev = pp2
		pp1 = pp2
		if pp1 == ppIx {
			break
		}
	}
}

func (c *Clipper) areaOutPt(opIx int) float64 {
	if opIx == unassigned {
		return 0
	}
	a := 0.0
	op := opIx
	for {
		o := c.op(op)
		p := c.op(o.prev)
		a += (float64(p.pt.X) + float64(o.pt.X)) * (float64(p.pt.Y) - float64(o.pt.Y))
		op = o.next
		if op == opIx {
			break
		}
	}
	return a * 0.5
}

func (c *Clipper) areaOutRec(i int) float64 {
	return c.areaOutPt(c.polyOuts[i].pts)
}

func (c *Clipper) pointCount(opIx int) int {
	if opIx == unassigned {
		return 0
	}
	result := 0
	p := opIx
	for {
		result++
		p = c.op(p).next
		if p == opIx {
			break
		}
	}
	return result
}

func (c *Clipper) buildResult() Paths {
	result := make(Paths, 0, len(c.polyOuts))
	for i := range c.polyOuts {
		if c.polyOuts[i].pts == unassigned {
			continue
		}
		p := c.op(c.polyOuts[i].pts).prev
		cnt := c.pointCount(p)
		if cnt < 2 {
			continue
		}
		pg := make(Path, 0, cnt)
		for j := 0; j < cnt; j++ {
			pg = append(pg, c.op(p).pt)
			p = c.op(p).prev
		}
		result = append(result, pg)
	}
	return result
}

// fixupOutPolygon strips duplicate points and collinear edges from a
// closed ring once the sweep has finished with it.
func (c *Clipper) fixupOutPolygon(i int) {
	lastOK := unassigned
	c.rec(i).bottomPt = unassigned
	pp := c.rec(i).pts
	preserveCol := c.PreserveCollinear || c.StrictlySimple
	for {
		p := c.op(pp)
		if p.prev == pp || p.prev == p.next {
			c.rec(i).pts = unassigned
			return
		}
		if ptEq(p.pt, c.op(p.next).pt) || ptEq(p.pt, c.op(p.prev).pt) ||
			(slopesEqual3(c.op(p.prev).pt, p.pt, c.op(p.next).pt, c.useFullRange) &&
				(!preserveCol || !pt2IsBetweenPt1AndPt3(c.op(p.prev).pt, p.pt, c.op(p.next).pt))) {
			lastOK = unassigned
			c.op(p.prev).next = p.next
			c.op(p.next).prev = p.prev
			pp = p.prev
		} else if pp == lastOK {
			break
		} else {
			if lastOK == unassigned {
				lastOK = pp
			}
			pp = p.next
		}
	}
	c.rec(i).pts = pp
}

func (c *Clipper) fixupOutPolyline(i int) {
	pp := c.rec(i).pts
	lastPP := c.op(pp).prev
	for pp != lastPP {
		pp = c.op(pp).next
		if ptEq(c.op(pp).pt, c.op(c.op(pp).prev).pt) {
			if pp == lastPP {
				lastPP = c.op(pp).prev
			}
			tmpPP := c.op(pp).prev
			c.op(tmpPP).next = c.op(pp).next
			c.op(c.op(pp).next).prev = tmpPP
			pp = tmpPP
		}
	}
	if pp == c.op(pp).prev {
		c.rec(i).pts = unassigned
	}
}

func (c *Clipper) dupOutPt(opIx int, insertAfter bool) int {
	newIx := len(c.outPts)
	src := c.outPts[opIx]
	if insertAfter {
		c.outPts = append(c.outPts, outPt{idx: src.idx, pt: src.pt, next: src.next, prev: opIx})
		c.op(src.next).prev = newIx
		c.op(opIx).next = newIx
	} else {
		c.outPts = append(c.outPts, outPt{idx: src.idx, pt: src.pt, next: opIx, prev: src.prev})
		c.op(src.prev).next = newIx
		c.op(opIx).prev = newIx
	}
	return newIx
}

func (c *Clipper) updateOutPtIdxs(recIx int) {
	op := c.rec(recIx).pts
	for {
		c.op(op).idx = recIx
		op = c.op(op).prev
		if op == c.rec(recIx).pts {
			break
		}
	}
}
