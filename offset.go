package clipper

import "math"

const (
	twoPi           = math.Pi * 2
	defArcTolerance = 0.25
	tolerance       = 1.0e-20
)

func nearZero(val float64) bool {
	return val > -tolerance && val < tolerance
}

type doublePoint struct {
	X, Y float64
}

func getUnitNormal(pt1, pt2 Point) doublePoint {
	dx := float64(pt2.X - pt1.X)
	dy := float64(pt2.Y - pt1.Y)
	if dx == 0 && dy == 0 {
		return doublePoint{}
	}
	f := 1.0 / math.Sqrt(dx*dx+dy*dy)
	return doublePoint{X: dy * f, Y: -dx * f}
}

// ClipperOffset grows or shrinks closed polygons and inflates open
// polylines by a given delta. Corners are shaped per JoinType and open
// path ends per EndType.
type ClipperOffset struct {
	MiterLimit   float64
	ArcTolerance float64

	destPolys   Paths
	srcPoly     Path
	destPoly    Path
	normals     []doublePoint
	delta       float64
	sinA        float64
	sin, cos    float64
	miterLim    float64
	stepsPerRad float64

	// lowestChild/lowestIdx locate the bottom-most vertex over all added
	// closed polygons; its ring's orientation defines "outward".
	lowestChild int
	lowestIdx   int
	polyNodes   PolyNode
}

func NewClipperOffset() *ClipperOffset {
	return &ClipperOffset{
		MiterLimit:   2.0,
		ArcTolerance: defArcTolerance,
		lowestChild:  -1,
	}
}

func (co *ClipperOffset) Clear() {
	co.polyNodes.childs = co.polyNodes.childs[:0]
	co.lowestChild = -1
}

func (co *ClipperOffset) AddPath(path Path, joinType JoinType, endType EndType) {
	highI := len(path) - 1
	if highI < 0 {
		return
	}
	newNode := &PolyNode{jointype: joinType, endtype: endType}

	// strip duplicate points from path and also get the index of the
	// lowest point ...
	if endType == ClosedLine || endType == ClosedPolygon {
		for highI > 0 && ptEq(path[0], path[highI]) {
			highI--
		}
	}
	newNode.polygon = make(Path, 0, highI+1)
	newNode.polygon = append(newNode.polygon, path[0])
	j, k := 0, 0
	for i := 1; i <= highI; i++ {
		if !ptEq(newNode.polygon[j], path[i]) {
			j++
			newNode.polygon = append(newNode.polygon, path[i])
			if path[i].Y > newNode.polygon[k].Y ||
				(path[i].Y == newNode.polygon[k].Y && path[i].X < newNode.polygon[k].X) {
				k = j
			}
		}
	}
	if endType == ClosedPolygon && j < 2 {
		return
	}

	co.polyNodes.addChild(newNode)

	// if this path's lowest point is lower than all the others, update
	// the lowest vertex ...
	if endType != ClosedPolygon {
		return
	}
	if co.lowestChild < 0 {
		co.lowestChild = co.polyNodes.ChildCount() - 1
		co.lowestIdx = k
	} else {
		ip := co.polyNodes.childs[co.lowestChild].polygon[co.lowestIdx]
		if newNode.polygon[k].Y > ip.Y ||
			(newNode.polygon[k].Y == ip.Y && newNode.polygon[k].X < ip.X) {
			co.lowestChild = co.polyNodes.ChildCount() - 1
			co.lowestIdx = k
		}
	}
}

func (co *ClipperOffset) AddPaths(paths Paths, joinType JoinType, endType EndType) {
	for _, p := range paths {
		co.AddPath(p, joinType, endType)
	}
}

// fixOrientations reverses all closed paths when the path holding the
// bottom-most vertex winds the wrong way.
func (co *ClipperOffset) fixOrientations() {
	if co.lowestChild >= 0 &&
		!Orientation(co.polyNodes.childs[co.lowestChild].polygon) {
		for _, node := range co.polyNodes.childs {
			if node.endtype == ClosedPolygon ||
				(node.endtype == ClosedLine && Orientation(node.polygon)) {
				ReversePath(node.polygon)
			}
		}
	} else {
		for _, node := range co.polyNodes.childs {
			if node.endtype == ClosedLine && !Orientation(node.polygon) {
				ReversePath(node.polygon)
			}
		}
	}
}

func (co *ClipperOffset) doOffset(delta float64) {
	co.destPolys = nil
	co.delta = delta

	// if zero offset, just copy any CLOSED polygons to the result
	if nearZero(delta) {
		co.destPolys = make(Paths, 0, co.polyNodes.ChildCount())
		for _, node := range co.polyNodes.childs {
			if node.endtype == ClosedPolygon {
				co.destPolys = append(co.destPolys, node.polygon)
			}
		}
		return
	}

	if co.MiterLimit > 2 {
		co.miterLim = 2 / (co.MiterLimit * co.MiterLimit)
	} else {
		co.miterLim = 0.5
	}

	var y float64
	switch {
	case co.ArcTolerance <= 0:
		y = defArcTolerance
	case co.ArcTolerance > absFloat(delta)*defArcTolerance:
		y = absFloat(delta) * defArcTolerance
	default:
		y = co.ArcTolerance
	}
	steps := math.Pi / math.Acos(1-y/absFloat(delta))
	co.sin = math.Sin(twoPi / steps)
	co.cos = math.Cos(twoPi / steps)
	co.stepsPerRad = steps / twoPi
	if delta < 0 {
		co.sin = -co.sin
	}

	co.destPolys = make(Paths, 0, co.polyNodes.ChildCount()*2)
	for _, node := range co.polyNodes.childs {
		co.srcPoly = node.polygon
		length := len(co.srcPoly)

		if length == 0 || (delta <= 0 && (length < 3 || node.endtype != ClosedPolygon)) {
			continue
		}

		co.destPoly = nil

		if length == 1 {
			if node.jointype == RoundJoin {
				x, yy := 1.0, 0.0
				for j := 1; j <= int(steps); j++ {
					co.destPoly = append(co.destPoly, Point{
						X: round(float64(co.srcPoly[0].X) + x*delta),
						Y: round(float64(co.srcPoly[0].Y) + yy*delta),
					})
					x2 := x
					x = x*co.cos - co.sin*yy
					yy = x2*co.sin + yy*co.cos
				}
			} else {
				x, yy := -1.0, -1.0
				for j := 0; j < 4; j++ {
					co.destPoly = append(co.destPoly, Point{
						X: round(float64(co.srcPoly[0].X) + x*delta),
						Y: round(float64(co.srcPoly[0].Y) + yy*delta),
					})
					if x < 0 {
						x = 1
					} else if yy < 0 {
						yy = 1
					} else {
						x = -1
					}
				}
			}
			co.destPolys = append(co.destPolys, co.destPoly)
			continue
		}

		// build the normals ...
		co.normals = co.normals[:0]
		for j := 0; j < length-1; j++ {
			co.normals = append(co.normals, getUnitNormal(co.srcPoly[j], co.srcPoly[j+1]))
		}
		if node.endtype == ClosedLine || node.endtype == ClosedPolygon {
			co.normals = append(co.normals, getUnitNormal(co.srcPoly[length-1], co.srcPoly[0]))
		} else {
			co.normals = append(co.normals, co.normals[length-2])
		}

		switch node.endtype {
		case ClosedPolygon:
			k := length - 1
			for j := 0; j < length; j++ {
				k = co.offsetPoint(j, k, node.jointype)
			}
			co.destPolys = append(co.destPolys, co.destPoly)

		case ClosedLine:
			k := length - 1
			for j := 0; j < length; j++ {
				k = co.offsetPoint(j, k, node.jointype)
			}
			co.destPolys = append(co.destPolys, co.destPoly)
			co.destPoly = nil
			// re-build the normals for the return pass ...
			n := co.normals[length-1]
			for j := length - 1; j > 0; j-- {
				co.normals[j] = doublePoint{X: -co.normals[j-1].X, Y: -co.normals[j-1].Y}
			}
			co.normals[0] = doublePoint{X: -n.X, Y: -n.Y}
			k = 0
			for j := length - 1; j >= 0; j-- {
				k = co.offsetPoint(j, k, node.jointype)
			}
			co.destPolys = append(co.destPolys, co.destPoly)

		default:
			k := 0
			for j := 1; j < length-1; j++ {
				k = co.offsetPoint(j, k, node.jointype)
			}

			if node.endtype == ButtEnd {
				j := length - 1
				co.destPoly = append(co.destPoly, Point{
					X: round(float64(co.srcPoly[j].X) + co.normals[j].X*delta),
					Y: round(float64(co.srcPoly[j].Y) + co.normals[j].Y*delta),
				})
				co.destPoly = append(co.destPoly, Point{
					X: round(float64(co.srcPoly[j].X) - co.normals[j].X*delta),
					Y: round(float64(co.srcPoly[j].Y) - co.normals[j].Y*delta),
				})
			} else {
				j := length - 1
				k = length - 2
				co.sinA = 0
				co.normals[j] = doublePoint{X: -co.normals[j].X, Y: -co.normals[j].Y}
				if node.endtype == SquareEnd {
					co.doSquare(j, k)
				} else {
					co.doRound(j, k)
				}
			}

			// re-build the normals for the return pass ...
			for j := length - 1; j > 0; j-- {
				co.normals[j] = doublePoint{X: -co.normals[j-1].X, Y: -co.normals[j-1].Y}
			}
			co.normals[0] = doublePoint{X: -co.normals[1].X, Y: -co.normals[1].Y}

			k = length - 1
			for j := k - 1; j > 0; j-- {
				k = co.offsetPoint(j, k, node.jointype)
			}

			if node.endtype == ButtEnd {
				co.destPoly = append(co.destPoly, Point{
					X: round(float64(co.srcPoly[0].X) - co.normals[0].X*delta),
					Y: round(float64(co.srcPoly[0].Y) - co.normals[0].Y*delta),
				})
				co.destPoly = append(co.destPoly, Point{
					X: round(float64(co.srcPoly[0].X) + co.normals[0].X*delta),
					Y: round(float64(co.srcPoly[0].Y) + co.normals[0].Y*delta),
				})
			} else {
				co.sinA = 0
				if node.endtype == SquareEnd {
					co.doSquare(0, 1)
				} else {
					co.doRound(0, 1)
				}
			}
			co.destPolys = append(co.destPolys, co.destPoly)
		}
	}
}

// Execute offsets the added paths by delta and returns the cleaned result.
// A union pass over the raw offset outlines removes the self-intersecting
// corner artefacts.
func (co *ClipperOffset) Execute(delta float64) (Paths, error) {
	co.fixOrientations()
	co.doOffset(delta)

	clpr := NewClipper()
	clpr.AddPaths(co.destPolys, Subject, true)
	if delta > 0 {
		solution, ok := clpr.Execute(Union, Positive, Positive)
		if !ok {
			return nil, ErrClipFailed
		}
		return solution, nil
	}

	r := GetBounds(co.destPolys)
	outer := Path{
		{X: r.Left - 10, Y: r.Bottom + 10},
		{X: r.Right + 10, Y: r.Bottom + 10},
		{X: r.Right + 10, Y: r.Top - 10},
		{X: r.Left - 10, Y: r.Top - 10},
	}
	clpr.AddPath(outer, Subject, true)
	clpr.ReverseSolution = true
	solution, ok := clpr.Execute(Union, Negative, Negative)
	if !ok {
		return nil, ErrClipFailed
	}
	if len(solution) > 0 {
		solution = solution[1:]
	}
	return solution, nil
}

// Execute2 is as Execute but returns the result as a PolyTree.
func (co *ClipperOffset) Execute2(delta float64) (*PolyTree, error) {
	co.fixOrientations()
	co.doOffset(delta)

	clpr := NewClipper()
	clpr.AddPaths(co.destPolys, Subject, true)
	if delta > 0 {
		solution, ok := clpr.Execute2(Union, Positive, Positive)
		if !ok {
			return nil, ErrClipFailed
		}
		return solution, nil
	}

	r := GetBounds(co.destPolys)
	outer := Path{
		{X: r.Left - 10, Y: r.Bottom + 10},
		{X: r.Right + 10, Y: r.Bottom + 10},
		{X: r.Right + 10, Y: r.Top - 10},
		{X: r.Left - 10, Y: r.Top - 10},
	}
	clpr.AddPath(outer, Subject, true)
	clpr.ReverseSolution = true
	solution, ok := clpr.Execute2(Union, Negative, Negative)
	if !ok {
		return nil, ErrClipFailed
	}
	// remove the artificial outer rectangle ...
	if solution.ChildCount() == 1 && solution.childs[0].ChildCount() > 0 {
		outerNode := solution.childs[0]
		solution.childs = solution.childs[:1]
		solution.childs[0] = outerNode.childs[0]
		solution.childs[0].parent = &solution.PolyNode
		solution.childs[0].index = 0
		for i := 1; i < outerNode.ChildCount(); i++ {
			solution.addChild(outerNode.childs[i])
		}
	} else {
		solution.Clear()
	}
	return solution, nil
}

func (co *ClipperOffset) offsetPoint(j, k int, jointype JoinType) int {
	// cross product ...
	co.sinA = co.normals[k].X*co.normals[j].Y - co.normals[j].X*co.normals[k].Y

	if absFloat(co.sinA*co.delta) < 1.0 {
		// dot product ...
		cosA := co.normals[k].X*co.normals[j].X + co.normals[j].Y*co.normals[k].Y
		if cosA > 0 { // angle approaching 0 degrees
			co.destPoly = append(co.destPoly, Point{
				X: round(float64(co.srcPoly[j].X) + co.normals[k].X*co.delta),
				Y: round(float64(co.srcPoly[j].Y) + co.normals[k].Y*co.delta),
			})
			return k
		}
		// else angle approaching 180 degrees
	} else if co.sinA > 1.0 {
		co.sinA = 1.0
	} else if co.sinA < -1.0 {
		co.sinA = -1.0
	}

	if co.sinA*co.delta < 0 { // concave corner
		co.destPoly = append(co.destPoly, Point{
			X: round(float64(co.srcPoly[j].X) + co.normals[k].X*co.delta),
			Y: round(float64(co.srcPoly[j].Y) + co.normals[k].Y*co.delta),
		})
		co.destPoly = append(co.destPoly, co.srcPoly[j])
		co.destPoly = append(co.destPoly, Point{
			X: round(float64(co.srcPoly[j].X) + co.normals[j].X*co.delta),
			Y: round(float64(co.srcPoly[j].Y) + co.normals[j].Y*co.delta),
		})
	} else {
		switch jointype {
		case Miter:
			r := 1 + co.normals[j].X*co.normals[k].X + co.normals[j].Y*co.normals[k].Y
			if r >= co.miterLim {
				co.doMiter(j, k, r)
			} else {
				co.doSquare(j, k)
			}
		case SquareJoin:
			co.doSquare(j, k)
		case RoundJoin:
			co.doRound(j, k)
		}
	}
	return j
}

func (co *ClipperOffset) doSquare(j, k int) {
	dx := math.Tan(math.Atan2(co.sinA,
		co.normals[k].X*co.normals[j].X+co.normals[k].Y*co.normals[j].Y) / 4)
	co.destPoly = append(co.destPoly, Point{
		X: round(float64(co.srcPoly[j].X) + co.delta*(co.normals[k].X-co.normals[k].Y*dx)),
		Y: round(float64(co.srcPoly[j].Y) + co.delta*(co.normals[k].Y+co.normals[k].X*dx)),
	})
	co.destPoly = append(co.destPoly, Point{
		X: round(float64(co.srcPoly[j].X) + co.delta*(co.normals[j].X+co.normals[j].Y*dx)),
		Y: round(float64(co.srcPoly[j].Y) + co.delta*(co.normals[j].Y-co.normals[j].X*dx)),
	})
}

func (co *ClipperOffset) doMiter(j, k int, r float64) {
	q := co.delta / r
	co.destPoly = append(co.destPoly, Point{
		X: round(float64(co.srcPoly[j].X) + (co.normals[k].X+co.normals[j].X)*q),
		Y: round(float64(co.srcPoly[j].Y) + (co.normals[k].Y+co.normals[j].Y)*q),
	})
}

func (co *ClipperOffset) doRound(j, k int) {
	a := math.Atan2(co.sinA,
		co.normals[k].X*co.normals[j].X+co.normals[k].Y*co.normals[j].Y)
	steps := int(round(co.stepsPerRad * absFloat(a)))
	if steps < 1 {
		steps = 1
	}

	x, y := co.normals[k].X, co.normals[k].Y
	for i := 0; i < steps; i++ {
		co.destPoly = append(co.destPoly, Point{
			X: round(float64(co.srcPoly[j].X) + x*co.delta),
			Y: round(float64(co.srcPoly[j].Y) + y*co.delta),
		})
		x2 := x
		x = x*co.cos - co.sin*y
		y = x2*co.sin + y*co.cos
	}
	co.destPoly = append(co.destPoly, Point{
		X: round(float64(co.srcPoly[j].X) + co.normals[j].X*co.delta),
		Y: round(float64(co.srcPoly[j].Y) + co.normals[j].Y*co.delta),
	})
}
