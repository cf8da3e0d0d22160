package clipper

// PolyNode is a node in the containment tree built by Execute2. Its
// children are the polygons directly inside its contour, so outers and
// holes alternate level by level.
type PolyNode struct {
	parent   *PolyNode
	polygon  Path
	index    int
	jointype JoinType
	endtype  EndType
	childs   []*PolyNode

	// IsOpen is true when the contour came from an open path.
	IsOpen bool
}

// Contour returns the node's polygon.
func (pn *PolyNode) Contour() Path {
	return pn.polygon
}

func (pn *PolyNode) ChildCount() int {
	return len(pn.childs)
}

func (pn *PolyNode) Childs() []*PolyNode {
	return pn.childs
}

func (pn *PolyNode) Parent() *PolyNode {
	return pn.parent
}

// IsHole reports whether the node's contour is a hole, determined by the
// parity of its depth in the tree.
func (pn *PolyNode) IsHole() bool {
	result := true
	node := pn.parent
	for node != nil {
		result = !result
		node = node.parent
	}
	return result
}

func (pn *PolyNode) addChild(child *PolyNode) {
	child.parent = pn
	child.index = len(pn.childs)
	pn.childs = append(pn.childs, child)
}

// GetNext returns the next node in a depth-first walk of the tree.
func (pn *PolyNode) GetNext() *PolyNode {
	if len(pn.childs) > 0 {
		return pn.childs[0]
	}
	return pn.getNextSiblingUp()
}

func (pn *PolyNode) getNextSiblingUp() *PolyNode {
	if pn.parent == nil {
		return nil
	}
	if pn.index == len(pn.parent.childs)-1 {
		return pn.parent.getNextSiblingUp()
	}
	return pn.parent.childs[pn.index+1]
}

// PolyTree is the root of the containment tree returned by Execute2. The
// root itself carries no contour; its children are the outermost polygons.
type PolyTree struct {
	PolyNode
	allPolys []*PolyNode
}

func (pt *PolyTree) Clear() {
	pt.allPolys = pt.allPolys[:0]
	pt.childs = pt.childs[:0]
}

// GetFirst returns the first outermost polygon, or nil when the tree is
// empty.
func (pt *PolyTree) GetFirst() *PolyNode {
	if len(pt.childs) > 0 {
		return pt.childs[0]
	}
	return nil
}

// Total returns the number of contours in the tree.
func (pt *PolyTree) Total() int {
	result := len(pt.allPolys)
	// with negative offsets, ignore the hidden outer polygon ...
	if result > 0 && pt.childs[0] != pt.allPolys[0] {
		result--
	}
	return result
}

func (c *Clipper) buildResult2(polytree *PolyTree) bool {
	polytree.Clear()

	// add each output ring to the tree as a PolyNode ...
	for i := range c.polyOuts {
		cnt := c.pointCount(c.polyOuts[i].pts)
		if (c.polyOuts[i].isOpen && cnt < 2) || (!c.polyOuts[i].isOpen && cnt < 3) {
			continue
		}
		c.fixHoleLinkage(i)
		pn := &PolyNode{polygon: make(Path, 0, cnt)}
		polytree.allPolys = append(polytree.allPolys, pn)
		c.polyOuts[i].polyNode = pn
		op := c.op(c.polyOuts[i].pts).prev
		for j := 0; j < cnt; j++ {
			pn.polygon = append(pn.polygon, c.op(op).pt)
			op = c.op(op).prev
		}
	}

	// fixup PolyNode links ...
	for i := range c.polyOuts {
		outRec := &c.polyOuts[i]
		if outRec.polyNode == nil {
			continue
		}
		if outRec.isOpen {
			outRec.polyNode.IsOpen = true
			polytree.addChild(outRec.polyNode)
		} else if outRec.firstLeft != unassigned && c.rec(outRec.firstLeft).polyNode != nil {
			c.rec(outRec.firstLeft).polyNode.addChild(outRec.polyNode)
		} else {
			polytree.addChild(outRec.polyNode)
		}
	}
	return true
}

type nodeType int

const (
	ntAny nodeType = iota
	ntOpen
	ntClosed
)

func addPolyNodeToPaths(polynode *PolyNode, nt nodeType, paths *Paths) {
	match := true
	switch nt {
	case ntOpen:
		return
	case ntClosed:
		match = !polynode.IsOpen
	}
	if len(polynode.polygon) > 0 && match {
		*paths = append(*paths, polynode.polygon)
	}
	for _, pn := range polynode.childs {
		addPolyNodeToPaths(pn, nt, paths)
	}
}

// PolyTreeToPaths flattens every contour in the tree into a path list.
func PolyTreeToPaths(polytree *PolyTree) Paths {
	result := make(Paths, 0, polytree.Total())
	addPolyNodeToPaths(&polytree.PolyNode, ntAny, &result)
	return result
}

// ClosedPathsFromPolyTree returns only the closed contours in the tree.
func ClosedPathsFromPolyTree(polytree *PolyTree) Paths {
	result := make(Paths, 0, polytree.Total())
	addPolyNodeToPaths(&polytree.PolyNode, ntClosed, &result)
	return result
}

// OpenPathsFromPolyTree returns only the open polylines in the tree. Open
// paths are always children of the root.
func OpenPathsFromPolyTree(polytree *PolyTree) Paths {
	result := make(Paths, 0, polytree.ChildCount())
	for _, child := range polytree.childs {
		if child.IsOpen {
			result = append(result, child.polygon)
		}
	}
	return result
}
