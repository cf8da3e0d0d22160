package clipper

import (
	"testing"

	"github.com/tdewolff/test"
)

func buildNestedTree(t *testing.T) *PolyTree {
	t.Helper()
	c := NewClipper()
	// an island inside a hole inside an outer square, plus a separate square
	c.AddPolygon(square(0, 0, 100), Subject)
	hole := square(20, 20, 60)
	ReversePath(hole)
	c.AddPolygon(hole, Subject)
	c.AddPolygon(square(40, 40, 20), Subject)
	c.AddPolygon(square(200, 0, 50), Subject)

	tree, ok := c.Execute2(Union, NonZero, NonZero)
	test.That(t, ok)
	return tree
}

func TestPolyTreeStructure(t *testing.T) {
	tree := buildNestedTree(t)

	test.T(t, tree.ChildCount(), 2)
	test.T(t, tree.Total(), 4)

	var outer *PolyNode
	for _, child := range tree.Childs() {
		test.That(t, !child.IsHole())
		if child.ChildCount() > 0 {
			outer = child
		}
	}
	if outer == nil {
		t.Fatal("no child with a hole found")
	}
	test.Float(t, Area(outer.Contour()), 10000)

	hole := outer.Childs()[0]
	test.That(t, hole.IsHole())
	test.T(t, hole.Parent(), outer)
	test.T(t, hole.ChildCount(), 1)

	island := hole.Childs()[0]
	test.That(t, !island.IsHole())
	test.Float(t, Area(island.Contour()), 400)
}

func TestPolyTreeWalk(t *testing.T) {
	tree := buildNestedTree(t)

	count := 0
	for node := tree.GetFirst(); node != nil; node = node.GetNext() {
		count++
	}
	test.T(t, count, tree.Total())
}

func TestPolyTreeToPathsVariants(t *testing.T) {
	c := NewClipper()
	c.AddPath(Path{{X: 5, Y: -5}, {X: 5, Y: 15}}, Subject, false)
	c.AddPolygon(square(0, 0, 10), Subject)
	tree, ok := c.Execute2(Union, NonZero, NonZero)
	test.That(t, ok)

	all := PolyTreeToPaths(tree)
	closed := ClosedPathsFromPolyTree(tree)
	open := OpenPathsFromPolyTree(tree)
	test.T(t, len(all), 3)
	test.T(t, len(closed), 1)
	test.T(t, len(open), 2)
	test.Float(t, Area(closed[0]), 100)
}

func TestPolyTreeEmpty(t *testing.T) {
	tree := &PolyTree{}
	test.T(t, tree.Total(), 0)
	if tree.GetFirst() != nil {
		t.Fatal("empty tree has a first node")
	}
	test.T(t, len(PolyTreeToPaths(tree)), 0)
}
