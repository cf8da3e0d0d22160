package clipper

func minkowski(pattern, path Path, isSum, isClosed bool) Paths {
	delta := 0
	if isClosed {
		delta = 1
	}
	polyCnt := len(pattern)
	pathCnt := len(path)
	translated := make(Paths, 0, pathCnt)
	if isSum {
		for i := 0; i < pathCnt; i++ {
			p := make(Path, 0, polyCnt)
			for _, ip := range pattern {
				p = append(p, Point{X: path[i].X + ip.X, Y: path[i].Y + ip.Y})
			}
			translated = append(translated, p)
		}
	} else {
		for i := 0; i < pathCnt; i++ {
			p := make(Path, 0, polyCnt)
			for _, ip := range pattern {
				p = append(p, Point{X: path[i].X - ip.X, Y: path[i].Y - ip.Y})
			}
			translated = append(translated, p)
		}
	}

	quads := make(Paths, 0, (pathCnt+delta)*(polyCnt+1))
	for i := 0; i < pathCnt-1+delta; i++ {
		for j := 0; j < polyCnt; j++ {
			quad := Path{
				translated[i%pathCnt][j%polyCnt],
				translated[(i+1)%pathCnt][j%polyCnt],
				translated[(i+1)%pathCnt][(j+1)%polyCnt],
				translated[i%pathCnt][(j+1)%polyCnt],
			}
			if !Orientation(quad) {
				ReversePath(quad)
			}
			quads = append(quads, quad)
		}
	}
	return quads
}

// MinkowskiSum returns the Minkowski sum of pattern swept along path.
func MinkowskiSum(pattern, path Path, pathIsClosed bool) (Paths, error) {
	paths := minkowski(pattern, path, true, pathIsClosed)
	c := NewClipper()
	c.AddPaths(paths, Subject, true)
	solution, ok := c.Execute(Union, NonZero, NonZero)
	if !ok {
		return nil, ErrClipFailed
	}
	return solution, nil
}

// TranslatePath returns path shifted by delta.
func TranslatePath(path Path, delta Point) Path {
	outPath := make(Path, len(path))
	for i := range path {
		outPath[i] = Point{X: path[i].X + delta.X, Y: path[i].Y + delta.Y}
	}
	return outPath
}

// MinkowskiSumPaths is as MinkowskiSum but sweeps pattern along each of
// several paths.
func MinkowskiSumPaths(pattern Path, paths Paths, pathIsClosed bool) (Paths, error) {
	c := NewClipper()
	for i := range paths {
		tmp := minkowski(pattern, paths[i], true, pathIsClosed)
		c.AddPaths(tmp, Subject, true)
		if pathIsClosed {
			path := TranslatePath(paths[i], pattern[0])
			c.AddPath(path, Clip, true)
		}
	}
	solution, ok := c.Execute(Union, NonZero, NonZero)
	if !ok {
		return nil, ErrClipFailed
	}
	return solution, nil
}

// MinkowskiDiff returns the Minkowski difference of poly1 and poly2.
func MinkowskiDiff(poly1, poly2 Path) (Paths, error) {
	paths := minkowski(poly1, poly2, false, true)
	c := NewClipper()
	c.AddPaths(paths, Subject, true)
	solution, ok := c.Execute(Union, NonZero, NonZero)
	if !ok {
		return nil, ErrClipFailed
	}
	return solution, nil
}

// SimplifyPolygon removes self-intersections from poly by unioning it
// against nothing with StrictlySimple set.
func SimplifyPolygon(poly Path, fillType PolyFillType) (Paths, error) {
	c := NewClipper()
	c.StrictlySimple = true
	c.AddPath(poly, Subject, true)
	solution, ok := c.Execute(Union, fillType, fillType)
	if !ok {
		return nil, ErrClipFailed
	}
	return solution, nil
}

// SimplifyPolygons is as SimplifyPolygon for a set of polygons.
func SimplifyPolygons(polys Paths, fillType PolyFillType) (Paths, error) {
	c := NewClipper()
	c.StrictlySimple = true
	c.AddPaths(polys, Subject, true)
	solution, ok := c.Execute(Union, fillType, fillType)
	if !ok {
		return nil, ErrClipFailed
	}
	return solution, nil
}

type cleanNode struct {
	pt         Point
	next, prev *cleanNode
	keep       bool
}

func excludeNode(node *cleanNode) *cleanNode {
	result := node.prev
	result.next = node.next
	node.next.prev = result
	result.keep = false
	return result
}

// CleanPolygon strips vertices that are within distance of an adjacent
// vertex or of a semi-adjacent edge. A distance of about 1.415 (sqrt 2)
// removes vertices whose x and y coords are both within 1 unit of their
// neighbours.
func CleanPolygon(path Path, distance float64) Path {
	cnt := len(path)
	if cnt == 0 {
		return Path{}
	}

	nodes := make([]cleanNode, cnt)
	for i := 0; i < cnt; i++ {
		nodes[i].pt = path[i]
		nodes[i].next = &nodes[(i+1)%cnt]
		nodes[i].next.prev = &nodes[i]
	}

	distSqrd := distance * distance
	node := &nodes[0]
	for !node.keep && node.next != node.prev {
		switch {
		case pointsAreClose(node.pt, node.prev.pt, distSqrd):
			node = excludeNode(node)
			cnt--
		case pointsAreClose(node.prev.pt, node.next.pt, distSqrd):
			excludeNode(node.next)
			node = excludeNode(node)
			cnt -= 2
		case slopesNearCollinear(node.prev.pt, node.pt, node.next.pt, distSqrd):
			node = excludeNode(node)
			cnt--
		default:
			node.keep = true
			node = node.next
		}
	}

	if cnt < 3 {
		cnt = 0
	}
	result := make(Path, 0, cnt)
	for i := 0; i < cnt; i++ {
		result = append(result, node.pt)
		node = node.next
	}
	return result
}

// CleanPolygons is as CleanPolygon for a set of polygons.
func CleanPolygons(polys Paths, distance float64) Paths {
	result := make(Paths, len(polys))
	for i := range polys {
		result[i] = CleanPolygon(polys[i], distance)
	}
	return result
}
