package clipper

func getHorzDirection(horzEdge *edge) (dir direction, left, right cInt) {
	if horzEdge.bot.X < horzEdge.top.X {
		return dLeftToRight, horzEdge.bot.X, horzEdge.top.X
	}
	return dRightToLeft, horzEdge.top.X, horzEdge.bot.X
}

func horzSegmentsOverlap(seg1a, seg1b, seg2a, seg2b cInt) bool {
	if seg1a > seg1b {
		seg1a, seg1b = seg1b, seg1a
	}
	if seg2a > seg2b {
		seg2a, seg2b = seg2b, seg2a
	}
	return seg1a < seg2b && seg2a < seg1b
}

func (c *Clipper) getNextInAEL(eIx int, dir direction) int {
	if dir == dLeftToRight {
		return c.e(eIx).nextInAEL
	}
	return c.e(eIx).prevInAEL
}

func (c *Clipper) processHorizontals() {
	for {
		horzEdge, ok := c.popEdgeFromSEL()
		if !ok {
			return
		}
		c.processHorizontal(horzEdge)
	}
}

// processHorizontal walks horzEdge along the bottom of the scanbeam,
// intersecting every edge it crosses. Horizontal edges at the same Y are
// chained through nextInLML and handled as one run.
func (c *Clipper) processHorizontal(horzEdge int) {
	isOpen := c.e(horzEdge).windDelta == 0

	dir, horzLeft, horzRight := getHorzDirection(c.e(horzEdge))

	eLastHorz := horzEdge
	eMaxPair := unassigned
	for c.e(eLastHorz).nextInLML != unassigned && isHorizontal(c.e(c.e(eLastHorz).nextInLML)) {
		eLastHorz = c.e(eLastHorz).nextInLML
	}
	if c.e(eLastHorz).nextInLML == unassigned {
		eMaxPair = c.getMaximaPair(eLastHorz)
	}

	// get the first maxima in range (X) ...
	currMax := c.maximaList
	if currMax != nil {
		if dir == dLeftToRight {
			for currMax != nil && currMax.x <= c.e(horzEdge).bot.X {
				currMax = currMax.next
			}
			if currMax != nil && currMax.x >= c.e(eLastHorz).top.X {
				currMax = nil
			}
		} else {
			for currMax.next != nil && currMax.next.x < c.e(horzEdge).bot.X {
				currMax = currMax.next
			}
			if currMax.x <= c.e(eLastHorz).top.X {
				currMax = nil
			}
		}
	}

	op1 := unassigned
	for { // loop through consec. horizontal edges
		isLastHorz := horzEdge == eLastHorz
		e := c.getNextInAEL(horzEdge, dir)
		for e != unassigned {
			// insert extra coords into horizontal edges (in output
			// polygons) wherever maxima touch these horizontal edges
			if currMax != nil {
				if dir == dLeftToRight {
					for currMax != nil && currMax.x < c.e(e).curr.X {
						if c.e(horzEdge).outIdx >= 0 && !isOpen {
							c.addOutPt(horzEdge, Point{X: currMax.x, Y: c.e(horzEdge).bot.Y})
						}
						currMax = currMax.next
					}
				} else {
					for currMax != nil && currMax.x > c.e(e).curr.X {
						if c.e(horzEdge).outIdx >= 0 && !isOpen {
							c.addOutPt(horzEdge, Point{X: currMax.x, Y: c.e(horzEdge).bot.Y})
						}
						currMax = currMax.prev
					}
				}
			}

			if (dir == dLeftToRight && c.e(e).curr.X > horzRight) ||
				(dir == dRightToLeft && c.e(e).curr.X < horzLeft) {
				break
			}

			// Also break if we've got to the end of an intermediate
			// horizontal edge. nb: smaller dx's are to the right of larger
			// dx's ABOVE the horizontal.
			if c.e(e).curr.X == c.e(horzEdge).top.X &&
				c.e(horzEdge).nextInLML != unassigned &&
				c.e(e).dx < c.e(c.e(horzEdge).nextInLML).dx {
				break
			}

			if c.e(horzEdge).outIdx >= 0 && !isOpen { // may be done multiple times
				op1 = c.addOutPt(horzEdge, c.e(e).curr)
				eNextHorz := c.sortedEdges
				for eNextHorz != unassigned {
					if c.e(eNextHorz).outIdx >= 0 &&
						horzSegmentsOverlap(c.e(horzEdge).bot.X, c.e(horzEdge).top.X,
							c.e(eNextHorz).bot.X, c.e(eNextHorz).top.X) {
						op2 := c.getLastOutPt(eNextHorz)
						c.addJoin(op2, op1, c.e(eNextHorz).top)
					}
					eNextHorz = c.e(eNextHorz).nextInSEL
				}
				c.addGhostJoin(op1, c.e(horzEdge).bot)
			}

			// so far we're still in range of the horizontal edge, but make
			// sure we're at the last of consec. horizontals when matching
			// with eMaxPair
			if e == eMaxPair && isLastHorz {
				if c.e(horzEdge).outIdx >= 0 {
					c.addLocalMaxPoly(horzEdge, eMaxPair, c.e(horzEdge).top)
				}
				c.deleteFromAEL(horzEdge)
				c.deleteFromAEL(eMaxPair)
				return
			}

			pt := Point{X: c.e(e).curr.X, Y: c.e(horzEdge).curr.Y}
			if dir == dLeftToRight {
				c.intersectEdges(horzEdge, e, pt)
			} else {
				c.intersectEdges(e, horzEdge, pt)
			}
			eNext := c.getNextInAEL(e, dir)
			c.swapPositionsInAEL(horzEdge, e)
			e = eNext
		}

		// break out of the loop if horzEdge.nextInLML is not also horizontal
		if c.e(horzEdge).nextInLML == unassigned || !isHorizontal(c.e(c.e(horzEdge).nextInLML)) {
			break
		}

		horzEdge = c.updateEdgeIntoAEL(horzEdge)
		if c.e(horzEdge).outIdx >= 0 {
			c.addOutPt(horzEdge, c.e(horzEdge).bot)
		}
		dir, horzLeft, horzRight = getHorzDirection(c.e(horzEdge))
	}

	if c.e(horzEdge).outIdx >= 0 && op1 == unassigned {
		op1 = c.getLastOutPt(horzEdge)
		eNextHorz := c.sortedEdges
		for eNextHorz != unassigned {
			if c.e(eNextHorz).outIdx >= 0 &&
				horzSegmentsOverlap(c.e(horzEdge).bot.X, c.e(horzEdge).top.X,
					c.e(eNextHorz).bot.X, c.e(eNextHorz).top.X) {
				op2 := c.getLastOutPt(eNextHorz)
				c.addJoin(op2, op1, c.e(eNextHorz).top)
			}
			eNextHorz = c.e(eNextHorz).nextInSEL
		}
		c.addGhostJoin(op1, c.e(horzEdge).top)
	}

	if c.e(horzEdge).nextInLML != unassigned {
		if c.e(horzEdge).outIdx >= 0 {
			op1b := c.addOutPt(horzEdge, c.e(horzEdge).top)

			horzEdge = c.updateEdgeIntoAEL(horzEdge)
			if c.e(horzEdge).windDelta == 0 {
				return
			}
			// nb: horzEdge is no longer horizontal here
			ePrev := c.e(horzEdge).prevInAEL
			eNext := c.e(horzEdge).nextInAEL
			if ePrev != unassigned && c.e(ePrev).curr.X == c.e(horzEdge).bot.X &&
				c.e(ePrev).curr.Y == c.e(horzEdge).bot.Y && c.e(ePrev).windDelta != 0 &&
				c.e(ePrev).outIdx >= 0 && c.e(ePrev).curr.Y > c.e(ePrev).top.Y &&
				slopesEqualEdges(c.e(horzEdge), c.e(ePrev), c.useFullRange) {
				op2 := c.addOutPt(ePrev, c.e(horzEdge).bot)
				c.addJoin(op1b, op2, c.e(horzEdge).top)
			} else if eNext != unassigned && c.e(eNext).curr.X == c.e(horzEdge).bot.X &&
				c.e(eNext).curr.Y == c.e(horzEdge).bot.Y && c.e(eNext).windDelta != 0 &&
				c.e(eNext).outIdx >= 0 && c.e(eNext).curr.Y > c.e(eNext).top.Y &&
				slopesEqualEdges(c.e(horzEdge), c.e(eNext), c.useFullRange) {
				op2 := c.addOutPt(eNext, c.e(horzEdge).bot)
				c.addJoin(op1b, op2, c.e(horzEdge).top)
			}
		} else {
			horzEdge = c.updateEdgeIntoAEL(horzEdge)
		}
	} else {
		if c.e(horzEdge).outIdx >= 0 {
			c.addOutPt(horzEdge, c.e(horzEdge).top)
		}
		c.deleteFromAEL(horzEdge)
	}
}
