package clipper

import "github.com/ctessum/geom"

// Conversions between the integer paths used here and the floating-point
// geometry types in github.com/ctessum/geom. Coordinates are multiplied by
// scale on the way in and divided by it on the way out, so callers choose
// how much precision survives the round trip.

// PathFromGeom converts one polygon ring to an integer path.
func PathFromGeom(ring []geom.Point, scale float64) Path {
	path := make(Path, len(ring))
	for i, pt := range ring {
		path[i] = Point{X: round(pt.X * scale), Y: round(pt.Y * scale)}
	}
	return path
}

// PathsFromGeom converts a polygon and its holes to integer paths.
func PathsFromGeom(poly geom.Polygon, scale float64) Paths {
	paths := make(Paths, len(poly))
	for i, ring := range poly {
		paths[i] = PathFromGeom(ring, scale)
	}
	return paths
}

// ToGeomRing converts the path back to a floating-point ring.
func (path Path) ToGeomRing(scale float64) []geom.Point {
	ring := make([]geom.Point, len(path))
	for i, pt := range path {
		ring[i] = geom.Point{X: float64(pt.X) / scale, Y: float64(pt.Y) / scale}
	}
	return ring
}

// ToGeom converts the paths back to a floating-point polygon.
func (paths Paths) ToGeom(scale float64) geom.Polygon {
	poly := make(geom.Polygon, len(paths))
	for i, path := range paths {
		poly[i] = path.ToGeomRing(scale)
	}
	return poly
}
