package clipper

func getOverlap(a1, a2, b1, b2 cInt) (left, right cInt, ok bool) {
	if a1 < a2 {
		if b1 < b2 {
			left, right = maxCInt(a1, b1), minCInt(a2, b2)
		} else {
			left, right = maxCInt(a1, b2), minCInt(a2, b1)
		}
	} else {
		if b1 < b2 {
			left, right = maxCInt(a2, b1), minCInt(a1, b2)
		} else {
			left, right = maxCInt(a2, b2), minCInt(a1, b1)
		}
	}
	return left, right, left < right
}

func maxCInt(a, b cInt) cInt {
	if a > b {
		return a
	}
	return b
}

func minCInt(a, b cInt) cInt {
	if a < b {
		return a
	}
	return b
}

func (c *Clipper) joinHorz(op1, op1b, op2, op2b int, pt Point, discardLeft bool) bool {
	dir1 := dLeftToRight
	if c.op(op1).pt.X > c.op(op1b).pt.X {
		dir1 = dRightToLeft
	}
	dir2 := dLeftToRight
	if c.op(op2).pt.X > c.op(op2b).pt.X {
		dir2 = dRightToLeft
	}
	if dir1 == dir2 {
		return false
	}

	// When discardLeft, op1b must end up on the left of op1, otherwise on
	// the right. So when discardLeft, advance to AT or RIGHT of pt before
	// inserting op1b, otherwise to AT or LEFT of pt. Likewise op2b.
	if dir1 == dLeftToRight {
		for c.op(c.op(op1).next).pt.X <= pt.X &&
			c.op(c.op(op1).next).pt.X >= c.op(op1).pt.X &&
			c.op(c.op(op1).next).pt.Y == pt.Y {
			op1 = c.op(op1).next
		}
		if discardLeft && c.op(op1).pt.X != pt.X {
			op1 = c.op(op1).next
		}
		op1b = c.dupOutPt(op1, !discardLeft)
		if !ptEq(c.op(op1b).pt, pt) {
			op1 = op1b
			c.op(op1).pt = pt
			op1b = c.dupOutPt(op1, !discardLeft)
		}
	} else {
		for c.op(c.op(op1).next).pt.X >= pt.X &&
			c.op(c.op(op1).next).pt.X <= c.op(op1).pt.X &&
			c.op(c.op(op1).next).pt.Y == pt.Y {
			op1 = c.op(op1).next
		}
		if !discardLeft && c.op(op1).pt.X != pt.X {
			op1 = c.op(op1).next
		}
		op1b = c.dupOutPt(op1, discardLeft)
		if !ptEq(c.op(op1b).pt, pt) {
			op1 = op1b
			c.op(op1).pt = pt
			op1b = c.dupOutPt(op1, discardLeft)
		}
	}

	if dir2 == dLeftToRight {
		for c.op(c.op(op2).next).pt.X <= pt.X &&
			c.op(c.op(op2).next).pt.X >= c.op(op2).pt.X &&
			c.op(c.op(op2).next).pt.Y == pt.Y {
			op2 = c.op(op2).next
		}
		if discardLeft && c.op(op2).pt.X != pt.X {
			op2 = c.op(op2).next
		}
		op2b = c.dupOutPt(op2, !discardLeft)
		if !ptEq(c.op(op2b).pt, pt) {
			op2 = op2b
			c.op(op2).pt = pt
			op2b = c.dupOutPt(op2, !discardLeft)
		}
	} else {
		for c.op(c.op(op2).next).pt.X >= pt.X &&
			c.op(c.op(op2).next).pt.X <= c.op(op2).pt.X &&
			c.op(c.op(op2).next).pt.Y == pt.Y {
			op2 = c.op(op2).next
		}
		if !discardLeft && c.op(op2).pt.X != pt.X {
			op2 = c.op(op2).next
		}
		op2b = c.dupOutPt(op2, discardLeft)
		if !ptEq(c.op(op2b).pt, pt) {
			op2 = op2b
			c.op(op2).pt = pt
			op2b = c.dupOutPt(op2, discardLeft)
		}
	}

	if (dir1 == dLeftToRight) == discardLeft {
		c.op(op1).prev = op2
		c.op(op2).next = op1
		c.op(op1b).next = op2b
		c.op(op2b).prev = op1b
	} else {
		c.op(op1).next = op2
		c.op(op2).prev = op1
		c.op(op1b).prev = op2b
		c.op(op2b).next = op1b
	}
	return true
}

// joinPoints splices two output rings (or two spots on the same ring)
// together along a shared edge. There are three kinds of joins: horizontal
// joins where outPt1 and outPt2 lie anywhere along collinear horizontal
// edges, non-horizontal joins where both points sit at the bottom of the
// overlapping segment with offPt above, and strictly-simple joins where the
// edges merely touch and all three points coincide.
func (c *Clipper) joinPoints(j *joinRec, outRec1Ix, outRec2Ix int) bool {
	op1 := j.outPt1
	op2 := j.outPt2
	var op1b, op2b int

	isHorz := c.op(j.outPt1).pt.Y == j.offPt.Y

	if isHorz && ptEq(j.offPt, c.op(j.outPt1).pt) && ptEq(j.offPt, c.op(j.outPt2).pt) {
		// strictly simple join ...
		if outRec1Ix != outRec2Ix {
			return false
		}
		op1b = c.op(j.outPt1).next
		for op1b != op1 && ptEq(c.op(op1b).pt, j.offPt) {
			op1b = c.op(op1b).next
		}
		reverse1 := c.op(op1b).pt.Y > j.offPt.Y
		op2b = c.op(j.outPt2).next
		for op2b != op2 && ptEq(c.op(op2b).pt, j.offPt) {
			op2b = c.op(op2b).next
		}
		reverse2 := c.op(op2b).pt.Y > j.offPt.Y
		if reverse1 == reverse2 {
			return false
		}
		if reverse1 {
			op1b = c.dupOutPt(op1, false)
			op2b = c.dupOutPt(op2, true)
			c.op(op1).prev = op2
			c.op(op2).next = op1
			c.op(op1b).next = op2b
			c.op(op2b).prev = op1b
		} else {
			op1b = c.dupOutPt(op1, true)
			op2b = c.dupOutPt(op2, false)
			c.op(op1).next = op2
			c.op(op2).prev = op1
			c.op(op1b).prev = op2b
			c.op(op2b).next = op1b
		}
		j.outPt1 = op1
		j.outPt2 = op1b
		return true
	} else if isHorz {
		// with horizontal joins we're not yet sure where the overlap is:
		// outPt1 and outPt2 may be anywhere along the horizontal edge
		op1b = op1
		for c.op(c.op(op1).prev).pt.Y == c.op(op1).pt.Y &&
			c.op(op1).prev != op1b && c.op(op1).prev != op2 {
			op1 = c.op(op1).prev
		}
		for c.op(c.op(op1b).next).pt.Y == c.op(op1b).pt.Y &&
			c.op(op1b).next != op1 && c.op(op1b).next != op2 {
			op1b = c.op(op1b).next
		}
		if c.op(op1b).next == op1 || c.op(op1b).next == op2 {
			return false // a flat 'polygon'
		}

		op2b = op2
		for c.op(c.op(op2).prev).pt.Y == c.op(op2).pt.Y &&
			c.op(op2).prev != op2b && c.op(op2).prev != op1b {
			op2 = c.op(op2).prev
		}
		for c.op(c.op(op2b).next).pt.Y == c.op(op2b).pt.Y &&
			c.op(op2b).next != op2 && c.op(op2b).next != op1 {
			op2b = c.op(op2b).next
		}
		if c.op(op2b).next == op2 || c.op(op2b).next == op1 {
			return false // a flat 'polygon'
		}

		// op1..op1b and op2..op2b are the extremites of the horizontal edges
		left, right, ok := getOverlap(c.op(op1).pt.X, c.op(op1b).pt.X,
			c.op(op2).pt.X, c.op(op2b).pt.X)
		if !ok {
			return false
		}

		var pt Point
		var discardLeftSide bool
		switch {
		case c.op(op1).pt.X >= left && c.op(op1).pt.X <= right:
			pt = c.op(op1).pt
			discardLeftSide = c.op(op1).pt.X > c.op(op1b).pt.X
		case c.op(op2).pt.X >= left && c.op(op2).pt.X <= right:
			pt = c.op(op2).pt
			discardLeftSide = c.op(op2).pt.X > c.op(op2b).pt.X
		case c.op(op1b).pt.X >= left && c.op(op1b).pt.X <= right:
			pt = c.op(op1b).pt
			discardLeftSide = c.op(op1b).pt.X > c.op(op1).pt.X
		default:
			pt = c.op(op2b).pt
			discardLeftSide = c.op(op2b).pt.X > c.op(op2).pt.X
		}
		j.outPt1 = op1
		j.outPt2 = op2
		return c.joinHorz(op1, op1b, op2, op2b, pt, discardLeftSide)
	}

	// non-horizontal joins: outPt1.pt.Y == outPt2.pt.Y and both sit below
	// offPt. Make sure the ring fragments are correctly oriented first.
	op1b = c.op(op1).next
	for ptEq(c.op(op1b).pt, c.op(op1).pt) && op1b != op1 {
		op1b = c.op(op1b).next
	}
	reverse1 := c.op(op1b).pt.Y > c.op(op1).pt.Y ||
		!slopesEqual3(c.op(op1).pt, c.op(op1b).pt, j.offPt, c.useFullRange)
	if reverse1 {
		op1b = c.op(op1).prev
		for ptEq(c.op(op1b).pt, c.op(op1).pt) && op1b != op1 {
			op1b = c.op(op1b).prev
		}
		if c.op(op1b).pt.Y > c.op(op1).pt.Y ||
			!slopesEqual3(c.op(op1).pt, c.op(op1b).pt, j.offPt, c.useFullRange) {
			return false
		}
	}
	op2b = c.op(op2).next
	for ptEq(c.op(op2b).pt, c.op(op2).pt) && op2b != op2 {
		op2b = c.op(op2b).next
	}
	reverse2 := c.op(op2b).pt.Y > c.op(op2).pt.Y ||
		!slopesEqual3(c.op(op2).pt, c.op(op2b).pt, j.offPt, c.useFullRange)
	if reverse2 {
		op2b = c.op(op2).prev
		for ptEq(c.op(op2b).pt, c.op(op2).pt) && op2b != op2 {
			op2b = c.op(op2b).prev
		}
		if c.op(op2b).pt.Y > c.op(op2).pt.Y ||
			!slopesEqual3(c.op(op2).pt, c.op(op2b).pt, j.offPt, c.useFullRange) {
			return false
		}
	}

	if op1b == op1 || op2b == op2 || op1b == op2b ||
		(outRec1Ix == outRec2Ix && reverse1 == reverse2) {
		return false
	}

	if reverse1 {
		op1b = c.dupOutPt(op1, false)
		op2b = c.dupOutPt(op2, true)
		c.op(op1).prev = op2
		c.op(op2).next = op1
		c.op(op1b).next = op2b
		c.op(op2b).prev = op1b
	} else {
		op1b = c.dupOutPt(op1, true)
		op2b = c.dupOutPt(op2, false)
		c.op(op1).next = op2
		c.op(op2).prev = op1
		c.op(op1b).prev = op2b
		c.op(op2b).next = op1b
	}
	j.outPt1 = op1
	j.outPt2 = op1b
	return true
}

func (c *Clipper) joinCommonEdges() {
	for i := range c.joins {
		j := &c.joins[i]

		outRec1 := c.getOutRec(c.op(j.outPt1).idx)
		outRec2 := c.getOutRec(c.op(j.outPt2).idx)

		if c.rec(outRec1).pts == unassigned || c.rec(outRec2).pts == unassigned {
			continue
		}
		if c.rec(outRec1).isOpen || c.rec(outRec2).isOpen {
			continue
		}

		// get the polygon fragment with the correct hole state (firstLeft)
		// before calling joinPoints ...
		var holeStateRec int
		switch {
		case outRec1 == outRec2:
			holeStateRec = outRec1
		case c.outRec1RightOfOutRec2(outRec1, outRec2):
			holeStateRec = outRec2
		case c.outRec1RightOfOutRec2(outRec2, outRec1):
			holeStateRec = outRec1
		default:
			holeStateRec = c.getLowermostRec(outRec1, outRec2)
		}

		if !c.joinPoints(j, outRec1, outRec2) {
			continue
		}

		if outRec1 == outRec2 {
			// instead of joining two polygons, we've just split one
			// polygon into two
			c.rec(outRec1).pts = j.outPt1
			c.rec(outRec1).bottomPt = unassigned
			outRec2 = c.createOutRec()
			c.rec(outRec2).pts = j.outPt2

			c.updateOutPtIdxs(outRec2)

			if c.poly2ContainsPoly1(c.rec(outRec2).pts, c.rec(outRec1).pts) {
				// outRec1 contains outRec2 ...
				c.rec(outRec2).isHole = !c.rec(outRec1).isHole
				c.rec(outRec2).firstLeft = outRec1

				if c.usingPolyTree {
					c.fixupFirstLefts2(outRec2, outRec1)
				}

				if (c.rec(outRec2).isHole != c.ReverseSolution) == (c.areaOutRec(outRec2) > 0) {
					c.reversePolyPtLinks(c.rec(outRec2).pts)
				}
			} else if c.poly2ContainsPoly1(c.rec(outRec1).pts, c.rec(outRec2).pts) {
				// outRec2 contains outRec1 ...
				c.rec(outRec2).isHole = c.rec(outRec1).isHole
				c.rec(outRec1).isHole = !c.rec(outRec2).isHole
				c.rec(outRec2).firstLeft = c.rec(outRec1).firstLeft
				c.rec(outRec1).firstLeft = outRec2

				if c.usingPolyTree {
					c.fixupFirstLefts2(outRec1, outRec2)
				}

				if (c.rec(outRec1).isHole != c.ReverseSolution) == (c.areaOutRec(outRec1) > 0) {
					c.reversePolyPtLinks(c.rec(outRec1).pts)
				}
			} else {
				// the 2 polygons are completely separate ...
				c.rec(outRec2).isHole = c.rec(outRec1).isHole
				c.rec(outRec2).firstLeft = c.rec(outRec1).firstLeft

				if c.usingPolyTree {
					c.fixupFirstLefts1(outRec1, outRec2)
				}
			}
		} else {
			// joined 2 polygons together ...
			c.rec(outRec2).pts = unassigned
			c.rec(outRec2).bottomPt = unassigned
			c.rec(outRec2).idx = c.rec(outRec1).idx

			c.rec(outRec1).isHole = c.rec(holeStateRec).isHole
			if holeStateRec == outRec2 {
				c.rec(outRec1).firstLeft = c.rec(outRec2).firstLeft
			}
			c.rec(outRec2).firstLeft = outRec1

			if c.usingPolyTree {
				c.fixupFirstLefts3(outRec2, outRec1)
			}
		}
	}
}

func (c *Clipper) parseFirstLeft(firstLeft int) int {
	for firstLeft != unassigned && c.rec(firstLeft).pts == unassigned {
		firstLeft = c.rec(firstLeft).firstLeft
	}
	return firstLeft
}

func (c *Clipper) fixupFirstLefts1(oldOutRec, newOutRec int) {
	for i := range c.polyOuts {
		firstLeft := c.parseFirstLeft(c.polyOuts[i].firstLeft)
		if c.polyOuts[i].pts != unassigned && firstLeft == oldOutRec {
			if c.poly2ContainsPoly1(c.polyOuts[i].pts, c.rec(newOutRec).pts) {
				c.polyOuts[i].firstLeft = newOutRec
			}
		}
	}
}

// fixupFirstLefts2 handles a polygon that has split into two such that one
// is now the inner of the other. The split pieces may now wrap around other
// polygons, so every polygon contained by the outer piece's own container
// gets rechecked.
func (c *Clipper) fixupFirstLefts2(innerOutRec, outerOutRec int) {
	orfl := c.rec(outerOutRec).firstLeft
	for i := range c.polyOuts {
		if c.polyOuts[i].pts == unassigned || i == outerOutRec || i == innerOutRec {
			continue
		}
		firstLeft := c.parseFirstLeft(c.polyOuts[i].firstLeft)
		if firstLeft != orfl && firstLeft != innerOutRec && firstLeft != outerOutRec {
			continue
		}
		if c.poly2ContainsPoly1(c.polyOuts[i].pts, c.rec(innerOutRec).pts) {
			c.polyOuts[i].firstLeft = innerOutRec
		} else if c.poly2ContainsPoly1(c.polyOuts[i].pts, c.rec(outerOutRec).pts) {
			c.polyOuts[i].firstLeft = outerOutRec
		} else if c.polyOuts[i].firstLeft == innerOutRec || c.polyOuts[i].firstLeft == outerOutRec {
			c.polyOuts[i].firstLeft = orfl
		}
	}
}

// fixupFirstLefts3 is as fixupFirstLefts1 but skips the containment test.
func (c *Clipper) fixupFirstLefts3(oldOutRec, newOutRec int) {
	for i := range c.polyOuts {
		firstLeft := c.parseFirstLeft(c.polyOuts[i].firstLeft)
		if c.polyOuts[i].pts != unassigned && firstLeft == oldOutRec {
			c.polyOuts[i].firstLeft = newOutRec
		}
	}
}

// pointInPolygonOutPt is PointInPolygon against an output ring.
func (c *Clipper) pointInPolygonOutPt(pt Point, opIx int) int {
	result := 0
	startOp := opIx
	ptx, pty := pt.X, pt.Y
	poly0x, poly0y := c.op(opIx).pt.X, c.op(opIx).pt.Y
	for {
		opIx = c.op(opIx).next
		poly1x, poly1y := c.op(opIx).pt.X, c.op(opIx).pt.Y

		if poly1y == pty {
			if poly1x == ptx || (poly0y == pty && (poly1x > ptx) == (poly0x < ptx)) {
				return -1
			}
		}
		if (poly0y < pty) != (poly1y < pty) {
			if poly0x >= ptx {
				if poly1x > ptx {
					result = 1 - result
				} else {
					d := float64(poly0x-ptx)*float64(poly1y-pty) -
						float64(poly1x-ptx)*float64(poly0y-pty)
					if d == 0 {
						return -1
					}
					if (d > 0) == (poly1y > poly0y) {
						result = 1 - result
					}
				}
			} else if poly1x > ptx {
				d := float64(poly0x-ptx)*float64(poly1y-pty) -
					float64(poly1x-ptx)*float64(poly0y-pty)
				if d == 0 {
					return -1
				}
				if (d > 0) == (poly1y > poly0y) {
					result = 1 - result
				}
			}
		}
		poly0x, poly0y = poly1x, poly1y
		if startOp == opIx {
			break
		}
	}
	return result
}

func (c *Clipper) poly2ContainsPoly1(outPt1, outPt2 int) bool {
	op := outPt1
	for {
		res := c.pointInPolygonOutPt(c.op(op).pt, outPt2)
		if res >= 0 {
			return res > 0
		}
		op = c.op(op).next
		if op == outPt1 {
			break
		}
	}
	return true
}

// doSimplePolygons splits any ring that touches itself at a vertex into
// separate rings.
func (c *Clipper) doSimplePolygons() {
	for i := 0; i < len(c.polyOuts); i++ {
		op := c.rec(i).pts
		if op == unassigned || c.rec(i).isOpen {
			continue
		}
		for { // for each point in the ring until a duplicate is found
			op2 := c.op(op).next
			for op2 != c.rec(i).pts {
				if ptEq(c.op(op).pt, c.op(op2).pt) &&
					c.op(op2).next != op && c.op(op2).prev != op {
					// split the polygon into two ...
					op3 := c.op(op).prev
					op4 := c.op(op2).prev
					c.op(op).prev = op4
					c.op(op4).next = op
					c.op(op2).prev = op3
					c.op(op3).next = op2

					c.rec(i).pts = op
					outRec2 := c.createOutRec()
					c.rec(outRec2).pts = op2
					c.updateOutPtIdxs(outRec2)
					if c.poly2ContainsPoly1(c.rec(outRec2).pts, c.rec(i).pts) {
						c.rec(outRec2).isHole = !c.rec(i).isHole
						c.rec(outRec2).firstLeft = i
						if c.usingPolyTree {
							c.fixupFirstLefts2(outRec2, i)
						}
					} else if c.poly2ContainsPoly1(c.rec(i).pts, c.rec(outRec2).pts) {
						c.rec(outRec2).isHole = c.rec(i).isHole
						c.rec(i).isHole = !c.rec(outRec2).isHole
						c.rec(outRec2).firstLeft = c.rec(i).firstLeft
						c.rec(i).firstLeft = outRec2
						if c.usingPolyTree {
							c.fixupFirstLefts2(i, outRec2)
						}
					} else {
						c.rec(outRec2).isHole = c.rec(i).isHole
						c.rec(outRec2).firstLeft = c.rec(i).firstLeft
						if c.usingPolyTree {
							c.fixupFirstLefts1(i, outRec2)
						}
					}
					op2 = op // get ready for the next iteration
				}
				op2 = c.op(op2).next
			}
			op = c.op(op).next
			if op == c.rec(i).pts {
				break
			}
		}
	}
}

// fixHoleLinkage skips outermost polygons and those that already point to
// the correct firstLeft, then walks firstLeft until a container with the
// opposite hole state is found.
func (c *Clipper) fixHoleLinkage(outRecIx int) {
	r := c.rec(outRecIx)
	if r.firstLeft == unassigned ||
		(r.isHole != c.rec(r.firstLeft).isHole && c.rec(r.firstLeft).pts != unassigned) {
		return
	}
	orfl := r.firstLeft
	for orfl != unassigned &&
		(c.rec(orfl).isHole == r.isHole || c.rec(orfl).pts == unassigned) {
		orfl = c.rec(orfl).firstLeft
	}
	c.rec(outRecIx).firstLeft = orfl
}
