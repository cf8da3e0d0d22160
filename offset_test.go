package clipper

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestOffsetMiterSquare(t *testing.T) {
	co := NewClipperOffset()
	co.AddPath(square(0, 0, 100), Miter, ClosedPolygon)
	solution, err := co.Execute(10)
	test.Error(t, err)
	test.T(t, len(solution), 1)
	// 90 degree corners stay within the default miter limit, so the result
	// is the exact grown square
	test.T(t, len(solution[0]), 4)
	test.Float(t, Area(solution[0]), 120*120)
}

func TestOffsetNegativeDelta(t *testing.T) {
	co := NewClipperOffset()
	co.AddPath(square(0, 0, 100), Miter, ClosedPolygon)
	solution, err := co.Execute(-10)
	test.Error(t, err)
	test.T(t, len(solution), 1)
	test.That(t, Orientation(solution[0]))
	test.Float(t, Area(solution[0]), 80*80)
}

func TestOffsetRoundTrip(t *testing.T) {
	co := NewClipperOffset()
	co.AddPath(square(0, 0, 100), SquareJoin, ClosedPolygon)
	grown, err := co.Execute(10)
	test.Error(t, err)

	co.Clear()
	co.AddPaths(grown, SquareJoin, ClosedPolygon)
	shrunk, err := co.Execute(-10)
	test.Error(t, err)

	test.T(t, len(shrunk), 1)
	area := Area(shrunk[0])
	if math.Abs(area-10000)/10000 > 0.01 {
		t.Fatalf("round trip area %v, want within 1%% of 10000", area)
	}
}

func TestOffsetZeroDelta(t *testing.T) {
	co := NewClipperOffset()
	co.AddPath(square(0, 0, 100), RoundJoin, ClosedPolygon)
	solution, err := co.Execute(0)
	test.Error(t, err)
	test.T(t, len(solution), 1)
	test.Float(t, Area(solution[0]), 10000)
}

func TestOffsetSinglePointRound(t *testing.T) {
	co := NewClipperOffset()
	co.AddPath(Path{{X: 50, Y: 50}}, RoundJoin, RoundEnd)
	solution, err := co.Execute(10)
	test.Error(t, err)
	test.T(t, len(solution), 1)
	// a polygonal approximation of a circle of radius 10
	area := Area(solution[0])
	if math.Abs(area-math.Pi*100)/(math.Pi*100) > 0.05 {
		t.Fatalf("circle area %v, want within 5%% of %v", area, math.Pi*100)
	}
}

func TestOffsetOpenLineButt(t *testing.T) {
	co := NewClipperOffset()
	co.AddPath(Path{{X: 0, Y: 0}, {X: 100, Y: 0}}, SquareJoin, ButtEnd)
	solution, err := co.Execute(5)
	test.Error(t, err)
	test.T(t, len(solution), 1)
	test.T(t, len(solution[0]), 4)
	test.Float(t, Area(solution[0]), 100*10)
}

func TestOffsetOpenLineEndsGrow(t *testing.T) {
	line := Path{{X: 0, Y: 0}, {X: 100, Y: 0}}

	co := NewClipperOffset()
	co.AddPath(line, SquareJoin, SquareEnd)
	squared, err := co.Execute(5)
	test.Error(t, err)
	test.T(t, len(squared), 1)
	test.Float(t, Area(squared[0]), 110*10)

	co.Clear()
	co.AddPath(line, SquareJoin, RoundEnd)
	rounded, err := co.Execute(5)
	test.Error(t, err)
	test.T(t, len(rounded), 1)
	area := Area(rounded[0])
	want := 100*10 + math.Pi*25
	if math.Abs(area-want)/want > 0.05 {
		t.Fatalf("round ends area %v, want within 5%% of %v", area, want)
	}
}

func TestOffsetExecute2Negative(t *testing.T) {
	co := NewClipperOffset()
	co.AddPath(square(0, 0, 100), Miter, ClosedPolygon)
	tree, err := co.Execute2(-10)
	test.Error(t, err)
	test.T(t, tree.ChildCount(), 1)
	test.That(t, !tree.Childs()[0].IsHole())
	test.Float(t, Area(tree.Childs()[0].Contour()), 80*80)
}
