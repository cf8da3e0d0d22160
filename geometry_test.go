package clipper

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestAreaOrientation(t *testing.T) {
	ring := square(0, 0, 10)
	test.Float(t, Area(ring), 100)
	test.That(t, Orientation(ring))

	ReversePath(ring)
	test.Float(t, Area(ring), -100)
	test.That(t, !Orientation(ring))

	test.Float(t, Area(Path{{X: 0, Y: 0}, {X: 10, Y: 0}}), 0)
}

func TestAreaCombined(t *testing.T) {
	outer := square(0, 0, 10)
	hole := square(2, 2, 4)
	ReversePath(hole)
	test.Float(t, AreaCombined(Paths{outer, hole}), 100-16)
}

func TestPointInPolygonCases(t *testing.T) {
	ring := square(0, 0, 10)
	test.T(t, PointInPolygon(Point{X: 5, Y: 5}, ring), 1)
	test.T(t, PointInPolygon(Point{X: 15, Y: 5}, ring), 0)
	test.T(t, PointInPolygon(Point{X: 0, Y: 5}, ring), -1)
	test.T(t, PointInPolygon(Point{X: 10, Y: 10}, ring), -1)
	test.T(t, PointInPolygon(Point{X: 1, Y: 1}, Path{{X: 0, Y: 0}, {X: 10, Y: 0}}), 0)
}

func TestGetBoundsPaths(t *testing.T) {
	paths := Paths{
		{},
		square(-3, 4, 10),
		{{X: 50, Y: -20}},
	}
	test.T(t, GetBounds(paths), IntRect{Left: -3, Top: -20, Right: 50, Bottom: 14})
	test.T(t, GetBounds(Paths{}), IntRect{})
}

func TestSlopesEqualFullRange(t *testing.T) {
	// collinearity that a 64 bit cross product would get wrong
	big := defaultLoRange * 1000
	test.That(t, slopesEqual3(
		Point{X: -big, Y: -big}, Point{X: 0, Y: 0}, Point{X: big, Y: big}, true))
	test.That(t, !slopesEqual3(
		Point{X: -big, Y: -big}, Point{X: 0, Y: 0}, Point{X: big, Y: big + 1}, true))
}

func TestCleanPolygonVertices(t *testing.T) {
	// jittered square: near-duplicate and collinear vertices collapse
	path := Path{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0},
		{X: 100, Y: 100}, {X: 0, Y: 100},
	}
	cleaned := CleanPolygon(path, 1.415)
	test.T(t, len(cleaned), 4)

	// too few survivors yields an empty path
	test.T(t, len(CleanPolygon(Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, 1.415)), 0)
	test.T(t, len(CleanPolygon(Path{}, 1.415)), 0)

	polys := CleanPolygons(Paths{path, square(0, 0, 50)}, 1.415)
	test.T(t, len(polys), 2)
	test.T(t, len(polys[0]), 4)
	test.T(t, len(polys[1]), 4)
}
