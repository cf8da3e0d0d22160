package clipper

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/tdewolff/test"
)

func init() {
	rand.Seed(time.Now().UTC().UnixNano())
}

func RandomPoly(maxWidth, maxHeight, vertCnt int) Path {
	result := make(Path, vertCnt)
	for i := 0; i < vertCnt; i++ {
		result[i] = Point{X: cInt(rand.Intn(maxWidth)), Y: cInt(rand.Intn(maxHeight))}
	}
	return result
}

func square(left, top, size cInt) Path {
	return Path{
		{X: left, Y: top},
		{X: left + size, Y: top},
		{X: left + size, Y: top + size},
		{X: left, Y: top + size},
	}
}

func TestRandom(t *testing.T) {
	scale := int(1e0)

	for i := 0; i < 1000; i++ {
		subj, clip := make(Paths, 0), make(Paths, 0)

		// Generate random subject and clip polygons ...
		subj = append(subj, RandomPoly(640*scale, 480*scale, 100))
		clip = append(clip, RandomPoly(640*scale, 480*scale, 100))

		c := NewClipper()
		pft := EvenOdd

		clipTypes := map[string]ClipType{"intersection": Intersection, "union": Union, "xor": Xor}
		areas := make(map[string]float64)
		// Load the polygons into Clipper and execute the boolean clip op ...
		c.AddPolygons(subj, Subject)
		c.AddPolygons(clip, Clip)

		for clipType, ct := range clipTypes {
			solution, result := c.Execute(ct, pft, pft)
			if !result {
				t.Fatal("Execute failed")
			}
			areas[clipType] = AreaCombined(solution)
		}

		if different(areas["union"], areas["intersection"]+areas["xor"]) {
			t.Logf("%v\t%10.1f%10.1f\tFail", i, areas["union"],
				areas["intersection"]+areas["xor"])
			t.FailNow()
		}
	}
}

func different(a, b float64) bool {
	return math.Abs(a-b)/b > 0.01
}

func TestAreaInclusionExclusion(t *testing.T) {
	pairs := []struct {
		a, b Path
	}{
		{square(0, 0, 10), square(5, 5, 10)},  // partial overlap
		{square(0, 0, 20), square(5, 5, 10)},  // b inside a
		{square(0, 0, 10), square(10, 0, 10)}, // edge contact only
	}
	for _, pair := range pairs {
		c := NewClipper()
		c.AddPolygon(pair.a, Subject)
		c.AddPolygon(pair.b, Clip)
		union, ok := c.Execute(Union, NonZero, NonZero)
		test.That(t, ok)
		intersection, ok := c.Execute(Intersection, NonZero, NonZero)
		test.That(t, ok)

		want := Area(pair.a) + Area(pair.b) - AreaCombined(intersection)
		test.Float(t, AreaCombined(union), want)
	}
}

func TestUnionSelfIdempotent(t *testing.T) {
	subj := square(0, 0, 100)

	c := NewClipper()
	c.AddPolygon(subj, Subject)
	c.AddPolygon(subj, Clip)
	solution, ok := c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, len(solution), 1)
	test.Float(t, Area(solution[0]), 10000)
}

func TestUnionDisjointSquares(t *testing.T) {
	c := NewClipper()
	c.AddPolygon(square(0, 0, 10), Subject)
	c.AddPolygon(square(100, 100, 10), Subject)
	solution, ok := c.Execute(Union, NonZero, NonZero)
	test.That(t, ok)
	test.T(t, len(solution), 2)
	for _, ring := range solution {
		test.That(t, Orientation(ring))
		test.Float(t, Area(ring), 100)
	}
}

func TestDifferenceLeavesHole(t *testing.T) {
	c := NewClipper()
	c.AddPolygon(square(0, 0, 10), Subject)
	c.AddPolygon(square(3, 3, 4), Clip)

	solution, ok := c.Execute(Difference, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 100-16)
	// one outer ring, one oppositely wound hole
	outers := 0
	for _, ring := range solution {
		if Orientation(ring) {
			outers++
		}
	}
	test.T(t, outers, 1)

	tree, ok := c.Execute2(Difference, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, tree.ChildCount(), 1)
	outer := tree.Childs()[0]
	test.That(t, !outer.IsHole())
	test.T(t, outer.ChildCount(), 1)
	test.That(t, outer.Childs()[0].IsHole())
	test.T(t, tree.Total(), 2)
}

// A self-intersecting bowtie resolves to the same two triangles under both
// fill rules because each lobe has |winding| == 1.
func TestBowtieFillRules(t *testing.T) {
	bowtie := Path{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	want := map[Point]bool{
		{X: 0, Y: 0}:   true,
		{X: 0, Y: 10}:  true,
		{X: 5, Y: 5}:   true,
		{X: 10, Y: 0}:  true,
		{X: 10, Y: 10}: true,
	}

	for _, pft := range []PolyFillType{EvenOdd, NonZero} {
		c := NewClipper()
		c.AddPolygon(bowtie, Subject)
		solution, ok := c.Execute(Union, pft, pft)
		test.That(t, ok)
		test.T(t, len(solution), 2)
		got := map[Point]bool{}
		for _, ring := range solution {
			test.T(t, len(ring), 3)
			test.That(t, Orientation(ring))
			test.Float(t, Area(ring), 25)
			for _, pt := range ring {
				got[pt] = true
			}
		}
		test.T(t, got, want)
	}
}

func TestDegeneratePathsDropped(t *testing.T) {
	c := NewClipper()

	ok, err := c.AddPath(Path{{X: 0, Y: 0}, {X: 10, Y: 0}}, Subject, true)
	test.Error(t, err)
	test.That(t, !ok)

	// flat closed contours carry no area either
	ok, err = c.AddPath(Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 0}}, Subject, true)
	test.Error(t, err)
	test.That(t, !ok)

	// the dropped contours contribute nothing next to a real one
	c.AddPolygon(square(0, 0, 10), Subject)
	solution, succeeded := c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, succeeded)
	test.T(t, len(solution), 1)
	test.Float(t, Area(solution[0]), 100)
}

func TestOpenPathRules(t *testing.T) {
	c := NewClipper()
	_, err := c.AddPath(Path{{X: 0, Y: 0}, {X: 10, Y: 0}}, Clip, false)
	test.T(t, err, ErrOpenClipPath)

	ok, err := c.AddPath(Path{{X: 5, Y: -5}, {X: 5, Y: 15}}, Subject, false)
	test.Error(t, err)
	test.That(t, ok)
	c.AddPolygon(square(0, 0, 10), Clip)

	// open paths need a PolyTree result
	_, succeeded := c.Execute(Intersection, NonZero, NonZero)
	test.That(t, !succeeded)

	tree, succeeded := c.Execute2(Intersection, NonZero, NonZero)
	test.That(t, succeeded)
	open := OpenPathsFromPolyTree(tree)
	test.T(t, len(open), 1)
	test.T(t, len(open[0]), 2)
	minY, maxY := open[0][0].Y, open[0][1].Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	test.T(t, open[0][0].X, cInt(5))
	test.T(t, open[0][1].X, cInt(5))
	test.T(t, minY, cInt(0))
	test.T(t, maxY, cInt(10))
}

func TestExecuteReentrancy(t *testing.T) {
	c := NewClipper()
	c.AddPolygon(square(0, 0, 10), Subject)
	c.scanbeamHook = func(topY cInt) {
		_, ok := c.Execute(Union, EvenOdd, EvenOdd)
		test.That(t, !ok)
	}
	_, ok := c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
}

// Joins left behind by an aborted sweep point into an arena the next sweep
// rebuilds, so Execute must discard them before joining.
func TestExecuteClearsStaleJoins(t *testing.T) {
	c := NewClipper()
	c.AddPolygon(square(0, 0, 10), Subject)
	c.AddPolygon(square(5, 5, 10), Clip)

	c.joins = append(c.joins, joinRec{outPt1: 40, outPt2: 41, offPt: Point{X: 1, Y: 1}})
	c.ghostJoins = append(c.ghostJoins, joinRec{outPt1: 40, offPt: Point{X: 1, Y: 1}})

	solution, ok := c.Execute(Intersection, NonZero, NonZero)
	test.That(t, ok)
	test.T(t, len(solution), 1)
	test.Float(t, Area(solution[0]), 25)
}

// The active edge list must stay sorted by current X at every scanbeam
// boundary, whatever the input looks like.
func TestActiveEdgeOrder(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := NewClipper()
		c.AddPolygon(RandomPoly(640, 480, 50), Subject)
		c.AddPolygon(RandomPoly(640, 480, 50), Clip)
		c.scanbeamHook = func(topY cInt) {
			if !c.aelSorted() {
				t.Fatalf("active edges out of order at y=%v", topY)
			}
		}
		_, ok := c.Execute(Xor, NonZero, NonZero)
		test.That(t, ok)
	}
}

func TestPreserveCollinear(t *testing.T) {
	// a square with one extra collinear vertex on its top edge
	subj := Path{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0},
		{X: 10, Y: 10}, {X: 0, Y: 10},
	}

	c := NewClipper()
	c.AddPolygon(subj, Subject)
	solution, ok := c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, len(solution), 1)
	test.T(t, len(solution[0]), 4)

	c = NewClipper(InitPreserveCollinear)
	c.AddPolygon(subj, Subject)
	solution, ok = c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, len(solution), 1)
	test.T(t, len(solution[0]), 5)
}

func TestRangePromotion(t *testing.T) {
	c := NewClipper()
	big := defaultLoRange * 16
	ok, err := c.AddPolygon(Path{
		{X: 0, Y: 0}, {X: big, Y: 0}, {X: big, Y: big}, {X: 0, Y: big},
	}, Subject)
	test.Error(t, err)
	test.That(t, ok)
	test.That(t, c.useFullRange)

	_, err = c.AddPolygon(Path{
		{X: 0, Y: 0}, {X: defaultHiRange + 1, Y: 0}, {X: 0, Y: defaultHiRange},
	}, Subject)
	test.T(t, err, ErrCoordinateRange)
}

func TestClearAndReuse(t *testing.T) {
	c := NewClipper()
	c.AddPolygon(square(0, 0, 10), Subject)
	solution, ok := c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, len(solution), 1)

	c.Clear()
	c.AddPolygon(square(0, 0, 4), Subject)
	solution, ok = c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, len(solution), 1)
	test.Float(t, Area(solution[0]), 16)
}

func TestGetBoundsAdded(t *testing.T) {
	c := NewClipper()
	c.AddPolygon(square(-5, 2, 10), Subject)
	c.AddPolygon(square(20, -8, 3), Clip)
	r := c.GetBounds()
	test.T(t, r, IntRect{Left: -5, Top: -8, Right: 23, Bottom: 12})
}
