package clipper

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/tdewolff/test"
)

func TestGeomRoundTrip(t *testing.T) {
	poly := geom.Polygon{
		{{X: 0, Y: 0}, {X: 1.5, Y: 0}, {X: 1.5, Y: 1.5}, {X: 0, Y: 1.5}},
	}
	paths := PathsFromGeom(poly, 100)
	test.T(t, len(paths), 1)
	test.T(t, paths[0], Path{{X: 0, Y: 0}, {X: 150, Y: 0}, {X: 150, Y: 150}, {X: 0, Y: 150}})

	back := paths.ToGeom(100)
	test.T(t, len(back), 1)
	for i, pt := range back[0] {
		test.Float(t, pt.X, poly[0][i].X)
		test.Float(t, pt.Y, poly[0][i].Y)
	}
}

func TestGeomClip(t *testing.T) {
	subj := geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}
	clip := geom.Polygon{{{X: 0.5, Y: 0}, {X: 1.5, Y: 0}, {X: 1.5, Y: 1}, {X: 0.5, Y: 1}}}

	const scale = 1000
	c := NewClipper()
	c.AddPaths(PathsFromGeom(subj, scale), Subject, true)
	c.AddPaths(PathsFromGeom(clip, scale), Clip, true)
	solution, ok := c.Execute(Intersection, NonZero, NonZero)
	test.That(t, ok)

	result := solution.ToGeom(scale)
	test.T(t, len(result), 1)
	area := 0.0
	for _, path := range solution {
		area += Area(path)
	}
	test.Float(t, area/(scale*scale), 0.5)
}
