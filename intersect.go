package clipper

import "sort"

// intersectEdges handles a crossing between e1 and e2 at pt, where e1 is
// just right of e2 in the AEL above the crossing. Winding counts are
// swapped or adjusted per fill rule, output vertices emitted, and ring
// merges scheduled.
func (c *Clipper) intersectEdges(e1Ix, e2Ix int, pt Point) {
	e1 := c.e(e1Ix)
	e2 := c.e(e2Ix)

	// e1 will be to the left of e2 BELOW the intersection. Therefore e1 is
	// before e2 in AEL except when e1 is being inserted at the
	// intersection point ...
	e1Contributing := e1.outIdx >= 0
	e2Contributing := e2.outIdx >= 0

	c.setZ(&pt, e1, e2)

	// if either edge is on an OPEN path ...
	if e1.windDelta == 0 || e2.windDelta == 0 {
		// ignore subject-subject open path intersections unless they're
		// the same open path
		if e1.windDelta == 0 && e2.windDelta == 0 {
			return
		}
		if e1.polyTyp == e2.polyTyp && e1.windDelta != e2.windDelta && c.clipType == Union {
			if e1.windDelta == 0 {
				if e2Contributing {
					c.addOutPt(e1Ix, pt)
					if e1Contributing {
						e1.outIdx = unassigned
					}
				}
			} else {
				if e1Contributing {
					c.addOutPt(e2Ix, pt)
					if e2Contributing {
						e2.outIdx = unassigned
					}
				}
			}
		} else if e1.polyTyp != e2.polyTyp {
			if e1.windDelta == 0 && absInt(e2.windCnt) == 1 &&
				(c.clipType != Union || e2.windCnt2 == 0) {
				c.addOutPt(e1Ix, pt)
				if e1Contributing {
					e1.outIdx = unassigned
				}
			} else if e2.windDelta == 0 && absInt(e1.windCnt) == 1 &&
				(c.clipType != Union || e1.windCnt2 == 0) {
				c.addOutPt(e2Ix, pt)
				if e2Contributing {
					e2.outIdx = unassigned
				}
			}
		}
		return
	}

	// update winding counts...
	// assumes that e1 will be to the right of e2 ABOVE the intersection
	if e1.polyTyp == e2.polyTyp {
		if c.isEvenOddFillType(e1) {
			e1.windCnt, e2.windCnt = e2.windCnt, e1.windCnt
		} else {
			if e1.windCnt+e2.windDelta == 0 {
				e1.windCnt = -e1.windCnt
			} else {
				e1.windCnt += e2.windDelta
			}
			if e2.windCnt-e1.windDelta == 0 {
				e2.windCnt = -e2.windCnt
			} else {
				e2.windCnt -= e1.windDelta
			}
		}
	} else {
		if !c.isEvenOddFillType(e2) {
			e1.windCnt2 += e2.windDelta
		} else if e1.windCnt2 == 0 {
			e1.windCnt2 = 1
		} else {
			e1.windCnt2 = 0
		}
		if !c.isEvenOddFillType(e1) {
			e2.windCnt2 -= e1.windDelta
		} else if e2.windCnt2 == 0 {
			e2.windCnt2 = 1
		} else {
			e2.windCnt2 = 0
		}
	}

	var e1FillType, e2FillType, e1FillType2, e2FillType2 PolyFillType
	if e1.polyTyp == Subject {
		e1FillType = c.subjFillType
		e1FillType2 = c.clipFillType
	} else {
		e1FillType = c.clipFillType
		e1FillType2 = c.subjFillType
	}
	if e2.polyTyp == Subject {
		e2FillType = c.subjFillType
		e2FillType2 = c.clipFillType
	} else {
		e2FillType = c.clipFillType
		e2FillType2 = c.subjFillType
	}

	var e1Wc, e2Wc int
	switch e1FillType {
	case Positive:
		e1Wc = e1.windCnt
	case Negative:
		e1Wc = -e1.windCnt
	default:
		e1Wc = absInt(e1.windCnt)
	}
	switch e2FillType {
	case Positive:
		e2Wc = e2.windCnt
	case Negative:
		e2Wc = -e2.windCnt
	default:
		e2Wc = absInt(e2.windCnt)
	}

	if e1Contributing && e2Contributing {
		if (e1Wc != 0 && e1Wc != 1) || (e2Wc != 0 && e2Wc != 1) ||
			(e1.polyTyp != e2.polyTyp && c.clipType != Xor) {
			c.addLocalMaxPoly(e1Ix, e2Ix, pt)
		} else {
			c.addOutPt(e1Ix, pt)
			c.addOutPt(e2Ix, pt)
			swapSides(e1, e2)
			swapPolyIndexes(e1, e2)
		}
	} else if e1Contributing {
		if e2Wc == 0 || e2Wc == 1 {
			c.addOutPt(e1Ix, pt)
			swapSides(e1, e2)
			swapPolyIndexes(e1, e2)
		}
	} else if e2Contributing {
		if e1Wc == 0 || e1Wc == 1 {
			c.addOutPt(e2Ix, pt)
			swapSides(e1, e2)
			swapPolyIndexes(e1, e2)
		}
	} else if (e1Wc == 0 || e1Wc == 1) && (e2Wc == 0 || e2Wc == 1) {
		// neither edge is currently contributing ...
		var e1Wc2, e2Wc2 int
		switch e1FillType2 {
		case Positive:
			e1Wc2 = e1.windCnt2
		case Negative:
			e1Wc2 = -e1.windCnt2
		default:
			e1Wc2 = absInt(e1.windCnt2)
		}
		switch e2FillType2 {
		case Positive:
			e2Wc2 = e2.windCnt2
		case Negative:
			e2Wc2 = -e2.windCnt2
		default:
			e2Wc2 = absInt(e2.windCnt2)
		}

		if e1.polyTyp != e2.polyTyp {
			c.addLocalMinPoly(e1Ix, e2Ix, pt)
		} else if e1Wc == 1 && e2Wc == 1 {
			switch c.clipType {
			case Intersection:
				if e1Wc2 > 0 && e2Wc2 > 0 {
					c.addLocalMinPoly(e1Ix, e2Ix, pt)
				}
			case Union:
				if e1Wc2 <= 0 && e2Wc2 <= 0 {
					c.addLocalMinPoly(e1Ix, e2Ix, pt)
				}
			case Difference:
				if (e1.polyTyp == Clip && e1Wc2 > 0 && e2Wc2 > 0) ||
					(e1.polyTyp == Subject && e1Wc2 <= 0 && e2Wc2 <= 0) {
					c.addLocalMinPoly(e1Ix, e2Ix, pt)
				}
			case Xor:
				c.addLocalMinPoly(e1Ix, e2Ix, pt)
			}
		} else {
			swapSides(e1, e2)
		}
	}
}

func (c *Clipper) processIntersections(topY cInt) bool {
	if c.activeEdges == unassigned {
		return true
	}
	c.buildIntersectList(topY)
	if len(c.intersectList) == 0 {
		return true
	}
	if len(c.intersectList) == 1 || c.fixupIntersectionOrder() {
		c.processIntersectList()
	} else {
		c.sortedEdges = unassigned
		c.intersectList = c.intersectList[:0]
		return false
	}
	c.sortedEdges = unassigned
	return true
}

func (c *Clipper) buildIntersectList(topY cInt) {
	if c.activeEdges == unassigned {
		return
	}

	// prepare for sorting
	e := c.activeEdges
	c.sortedEdges = e
	for e != unassigned {
		ed := c.e(e)
		ed.prevInSEL = ed.prevInAEL
		ed.nextInSEL = ed.nextInAEL
		ed.curr.X = topX(ed, topY)
		e = ed.nextInAEL
	}

	// bubblesort; every adjacent swap is a crossing inside the slab
	isModified := true
	for isModified && c.sortedEdges != unassigned {
		isModified = false
		e = c.sortedEdges
		for c.e(e).nextInSEL != unassigned {
			eNext := c.e(e).nextInSEL
			if c.e(e).curr.X > c.e(eNext).curr.X {
				pt := intersectPoint(c.e(e), c.e(eNext))
				if pt.Y < topY {
					pt = Point{X: topX(c.e(e), topY), Y: topY}
				}
				c.intersectList = append(c.intersectList, intersectNode{
					edge1: e, edge2: eNext, pt: pt,
				})
				c.swapPositionsInSEL(e, eNext)
				isModified = true
			} else {
				e = eNext
			}
		}
		if c.e(e).prevInSEL != unassigned {
			c.e(c.e(e).prevInSEL).nextInSEL = unassigned
		} else {
			break
		}
	}
	c.sortedEdges = unassigned
}

func (c *Clipper) edgesAdjacent(inode intersectNode) bool {
	return c.e(inode.edge1).nextInSEL == inode.edge2 ||
		c.e(inode.edge1).prevInSEL == inode.edge2
}

// fixupIntersectionOrder ensures intersections are processed bottom-most
// first and only ever between AEL-adjacent edges.
func (c *Clipper) fixupIntersectionOrder() bool {
	sort.SliceStable(c.intersectList, func(i, j int) bool {
		return c.intersectList[i].pt.Y > c.intersectList[j].pt.Y
	})
	c.copyAELToSEL()
	cnt := len(c.intersectList)
	for i := 0; i < cnt; i++ {
		if !c.edgesAdjacent(c.intersectList[i]) {
			j := i + 1
			for j < cnt && !c.edgesAdjacent(c.intersectList[j]) {
				j++
			}
			if j == cnt {
				return false
			}
			c.intersectList[i], c.intersectList[j] = c.intersectList[j], c.intersectList[i]
		}
		c.swapPositionsInSEL(c.intersectList[i].edge1, c.intersectList[i].edge2)
	}
	return true
}

func (c *Clipper) processIntersectList() {
	for i := range c.intersectList {
		node := c.intersectList[i]
		c.intersectEdges(node.edge1, node.edge2, node.pt)
		c.swapPositionsInAEL(node.edge1, node.edge2)
	}
	c.intersectList = c.intersectList[:0]
}

func intersectPoint(edge1, edge2 *edge) Point {
	var ip Point
	// nb: with very large coordinate values, it's possible for slopesEqual
	// to report equality when the edges don't quite meet
	if edge1.dx == edge2.dx {
		ip.Y = edge1.curr.Y
		ip.X = topX(edge1, ip.Y)
		return ip
	}

	if edge1.delta.X == 0 {
		ip.X = edge1.bot.X
		if isHorizontal(edge2) {
			ip.Y = edge2.bot.Y
		} else {
			b2 := float64(edge2.bot.Y) - float64(edge2.bot.X)/edge2.dx
			ip.Y = round(float64(ip.X)/edge2.dx + b2)
		}
	} else if edge2.delta.X == 0 {
		ip.X = edge2.bot.X
		if isHorizontal(edge1) {
			ip.Y = edge1.bot.Y
		} else {
			b1 := float64(edge1.bot.Y) - float64(edge1.bot.X)/edge1.dx
			ip.Y = round(float64(ip.X)/edge1.dx + b1)
		}
	} else {
		b1 := float64(edge1.bot.X) - float64(edge1.bot.Y)*edge1.dx
		b2 := float64(edge2.bot.X) - float64(edge2.bot.Y)*edge2.dx
		q := (b2 - b1) / (edge1.dx - edge2.dx)
		ip.Y = round(q)
		if absFloat(edge1.dx) < absFloat(edge2.dx) {
			ip.X = round(edge1.dx*q + b1)
		} else {
			ip.X = round(edge2.dx*q + b2)
		}
	}

	if ip.Y < edge1.top.Y || ip.Y < edge2.top.Y {
		if edge1.top.Y > edge2.top.Y {
			ip.Y = edge1.top.Y
		} else {
			ip.Y = edge2.top.Y
		}
		if absFloat(edge1.dx) < absFloat(edge2.dx) {
			ip.X = topX(edge1, ip.Y)
		} else {
			ip.X = topX(edge2, ip.Y)
		}
	}
	// finally, don't allow 'ip' to be BELOW curr.Y (ie bottom of scanbeam)
	if ip.Y > edge1.curr.Y {
		ip.Y = edge1.curr.Y
		// use the more vertical edge to derive X
		if absFloat(edge1.dx) > absFloat(edge2.dx) {
			ip.X = topX(edge2, ip.Y)
		} else {
			ip.X = topX(edge1, ip.Y)
		}
	}
	return ip
}

func (c *Clipper) isMaxima(eIx int, y cInt) bool {
	return eIx != unassigned && c.e(eIx).top.Y == y && c.e(eIx).nextInLML == unassigned
}

func (c *Clipper) isIntermediate(eIx int, y cInt) bool {
	return c.e(eIx).top.Y == y && c.e(eIx).nextInLML != unassigned
}

func (c *Clipper) getMaximaPair(eIx int) int {
	e := c.e(eIx)
	if ptEq(c.e(e.next).top, e.top) && c.e(e.next).nextInLML == unassigned {
		return e.next
	}
	if ptEq(c.e(e.prev).top, e.top) && c.e(e.prev).nextInLML == unassigned {
		return e.prev
	}
	return unassigned
}

// getMaximaPairEx is as getMaximaPair, but skips pairs that aren't in the
// AEL (or have been marked skip).
func (c *Clipper) getMaximaPairEx(eIx int) int {
	result := c.getMaximaPair(eIx)
	if result == unassigned || c.e(result).outIdx == skipEdge ||
		(c.e(result).nextInAEL == c.e(result).prevInAEL && !isHorizontal(c.e(result))) {
		return unassigned
	}
	return result
}

func (c *Clipper) insertMaxima(x cInt) {
	// double-linked list, sorted ascending, ignoring duplicates
	newMax := &maxima{x: x}
	if c.maximaList == nil {
		c.maximaList = newMax
	} else if x < c.maximaList.x {
		newMax.next = c.maximaList
		c.maximaList.prev = newMax
		c.maximaList = newMax
	} else {
		m := c.maximaList
		for m.next != nil && x >= m.next.x {
			m = m.next
		}
		if x == m.x {
			return
		}
		newMax.next = m.next
		newMax.prev = m
		if m.next != nil {
			m.next.prev = newMax
		}
		m.next = newMax
	}
}

func (c *Clipper) processEdgesAtTopOfScanbeam(topY cInt) bool {
	e := c.activeEdges
	for e != unassigned {
		// 1. process maxima, treating them as if they're 'bent' horizontal
		// edges, but exclude maxima with horizontal edges. nb: e can't be
		// a horizontal.
		isMaximaEdge := c.isMaxima(e, topY)
		if isMaximaEdge {
			eMaxPair := c.getMaximaPairEx(e)
			isMaximaEdge = eMaxPair == unassigned || !isHorizontal(c.e(eMaxPair))
		}
		if isMaximaEdge {
			if c.StrictlySimple {
				c.insertMaxima(c.e(e).top.X)
			}
			ePrev := c.e(e).prevInAEL
			if !c.doMaxima(e) {
				return false
			}
			if ePrev == unassigned {
				e = c.activeEdges
			} else {
				e = c.e(ePrev).nextInAEL
			}
		} else {
			// 2. promote horizontal edges, otherwise update curr.X and
			// curr.Y ...
			if c.isIntermediate(e, topY) && isHorizontal(c.e(c.e(e).nextInLML)) {
				e = c.updateEdgeIntoAEL(e)
				if c.e(e).outIdx >= 0 {
					c.addOutPt(e, c.e(e).bot)
				}
				c.addEdgeToSEL(e)
			} else {
				c.e(e).curr.X = topX(c.e(e), topY)
				c.e(e).curr.Y = topY
				setCurrZ(c.e(e), topY)
			}

			// When StrictlySimple and 'e' is being touched by another
			// edge, make sure both edges have a vertex here ...
			if c.StrictlySimple {
				ePrev := c.e(e).prevInAEL
				if c.e(e).outIdx >= 0 && c.e(e).windDelta != 0 &&
					ePrev != unassigned && c.e(ePrev).outIdx >= 0 &&
					c.e(ePrev).curr.X == c.e(e).curr.X && c.e(ePrev).windDelta != 0 {
					ip := c.e(e).curr
					c.setZ(&ip, c.e(ePrev), c.e(e))
					op := c.addOutPt(ePrev, ip)
					op2 := c.addOutPt(e, ip)
					c.addJoin(op, op2, ip) // strictly simple (type-3) join
				}
			}
			e = c.e(e).nextInAEL
		}
	}

	// 3. process horizontals at the top of the scanbeam ...
	c.processHorizontals()
	c.maximaList = nil

	// 4. promote intermediate vertices ...
	e = c.activeEdges
	for e != unassigned {
		if c.isIntermediate(e, topY) {
			op := unassigned
			if c.e(e).outIdx >= 0 {
				op = c.addOutPt(e, c.e(e).top)
			}
			e = c.updateEdgeIntoAEL(e)

			// if output polygons share an edge, they'll need joining later
			ePrev := c.e(e).prevInAEL
			eNext := c.e(e).nextInAEL
			if ePrev != unassigned && c.e(ePrev).curr.X == c.e(e).bot.X &&
				c.e(ePrev).curr.Y == c.e(e).bot.Y && op != unassigned &&
				c.e(ePrev).outIdx >= 0 && c.e(ePrev).curr.Y > c.e(ePrev).top.Y &&
				slopesEqual4(c.e(e).curr, c.e(e).top, c.e(ePrev).curr, c.e(ePrev).top, c.useFullRange) &&
				c.e(e).windDelta != 0 && c.e(ePrev).windDelta != 0 {
				op2 := c.addOutPt(ePrev, c.e(e).bot)
				c.addJoin(op, op2, c.e(e).top)
			} else if eNext != unassigned && c.e(eNext).curr.X == c.e(e).bot.X &&
				c.e(eNext).curr.Y == c.e(e).bot.Y && op != unassigned &&
				c.e(eNext).outIdx >= 0 && c.e(eNext).curr.Y > c.e(eNext).top.Y &&
				slopesEqual4(c.e(e).curr, c.e(e).top, c.e(eNext).curr, c.e(eNext).top, c.useFullRange) &&
				c.e(e).windDelta != 0 && c.e(eNext).windDelta != 0 {
				op2 := c.addOutPt(eNext, c.e(e).bot)
				c.addJoin(op, op2, c.e(e).top)
			}
		}
		e = c.e(e).nextInAEL
	}
	return true
}

func (c *Clipper) doMaxima(eIx int) bool {
	eMaxPair := c.getMaximaPairEx(eIx)
	if eMaxPair == unassigned {
		if c.e(eIx).outIdx >= 0 {
			c.addOutPt(eIx, c.e(eIx).top)
		}
		c.deleteFromAEL(eIx)
		return true
	}

	eNext := c.e(eIx).nextInAEL
	for eNext != unassigned && eNext != eMaxPair {
		c.intersectEdges(eIx, eNext, c.e(eIx).top)
		c.swapPositionsInAEL(eIx, eNext)
		eNext = c.e(eIx).nextInAEL
	}

	switch {
	case c.e(eIx).outIdx == unassigned && c.e(eMaxPair).outIdx == unassigned:
		c.deleteFromAEL(eIx)
		c.deleteFromAEL(eMaxPair)
	case c.e(eIx).outIdx >= 0 && c.e(eMaxPair).outIdx >= 0:
		c.addLocalMaxPoly(eIx, eMaxPair, c.e(eIx).top)
		c.deleteFromAEL(eIx)
		c.deleteFromAEL(eMaxPair)
	case c.e(eIx).windDelta == 0:
		if c.e(eIx).outIdx >= 0 {
			c.addOutPt(eIx, c.e(eIx).top)
			c.e(eIx).outIdx = unassigned
		}
		c.deleteFromAEL(eIx)
		if c.e(eMaxPair).outIdx >= 0 {
			c.addOutPt(eMaxPair, c.e(eIx).top)
			c.e(eMaxPair).outIdx = unassigned
		}
		c.deleteFromAEL(eMaxPair)
	default:
		return false
	}
	return true
}
