package clipper

import (
	"math"
	"math/bits"
)

var horizontal = math.Inf(-1)

func abs(i cInt) cInt {
	if i < 0 {
		return -i
	}
	return i
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func round(v float64) cInt {
	return cInt(math.Round(v))
}

func absFloat(v float64) float64 {
	return math.Abs(v)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// mul128 returns the signed 128 bit product of a and b.
func mul128(a, b cInt) (hi int64, lo uint64) {
	h, l := bits.Mul64(uint64(int64(a)), uint64(int64(b)))
	if a < 0 {
		h -= uint64(int64(b))
	}
	if b < 0 {
		h -= uint64(int64(a))
	}
	return int64(h), l
}

func mul128Equal(a, b, c, d cInt) bool {
	hi1, lo1 := mul128(a, b)
	hi2, lo2 := mul128(c, d)
	return hi1 == hi2 && lo1 == lo2
}

func slopesEqual3(pt1, pt2, pt3 Point, useFullRange bool) bool {
	if useFullRange {
		return mul128Equal(pt1.Y-pt2.Y, pt2.X-pt3.X, pt1.X-pt2.X, pt2.Y-pt3.Y)
	}
	return (pt1.Y-pt2.Y)*(pt2.X-pt3.X)-(pt1.X-pt2.X)*(pt2.Y-pt3.Y) == 0
}

func slopesEqual4(pt1, pt2, pt3, pt4 Point, useFullRange bool) bool {
	if useFullRange {
		return mul128Equal(pt1.Y-pt2.Y, pt3.X-pt4.X, pt1.X-pt2.X, pt3.Y-pt4.Y)
	}
	return (pt1.Y-pt2.Y)*(pt3.X-pt4.X)-(pt1.X-pt2.X)*(pt3.Y-pt4.Y) == 0
}

func slopesEqualEdges(e1, e2 *edge, useFullRange bool) bool {
	if useFullRange {
		return mul128Equal(e1.delta.Y, e2.delta.X, e1.delta.X, e2.delta.Y)
	}
	return e1.delta.Y*e2.delta.X == e1.delta.X*e2.delta.Y
}

func pt2IsBetweenPt1AndPt3(pt1, pt2, pt3 Point) bool {
	if ptEq(pt1, pt3) || ptEq(pt1, pt2) || ptEq(pt3, pt2) {
		return false
	} else if pt1.X != pt3.X {
		return (pt2.X > pt1.X) == (pt2.X < pt3.X)
	}
	return (pt2.Y > pt1.Y) == (pt2.Y < pt3.Y)
}

func isHorizontal(e *edge) bool {
	return e.delta.Y == 0
}

func topX(e *edge, currentY cInt) cInt {
	if currentY == e.top.Y {
		return e.top.X
	}
	return e.bot.X + round(e.dx*float64(currentY-e.bot.Y))
}

func getDx(pt1, pt2 Point) float64 {
	if pt1.Y == pt2.Y {
		return horizontal
	}
	return float64(pt2.X-pt1.X) / float64(pt2.Y-pt1.Y)
}

func setDx(e *edge) {
	e.delta.X = e.top.X - e.bot.X
	e.delta.Y = e.top.Y - e.bot.Y
	if e.delta.Y == 0 {
		e.dx = horizontal
	} else {
		e.dx = float64(e.delta.X) / float64(e.delta.Y)
	}
}

// Area returns the signed area of a closed path.
func Area(path Path) float64 {
	cnt := len(path)
	if cnt < 3 {
		return 0
	}
	a := 0.0
	j := cnt - 1
	for i := 0; i < cnt; i++ {
		a += (float64(path[j].X) + float64(path[i].X)) *
			(float64(path[j].Y) - float64(path[i].Y))
		j = i
	}
	return -a * 0.5
}

// AreaCombined sums the signed areas of a set of paths, so holes subtract
// from the contours that enclose them.
func AreaCombined(paths Paths) float64 {
	a := 0.0
	for _, path := range paths {
		a += Area(path)
	}
	return a
}

func Orientation(path Path) bool {
	return Area(path) >= 0
}

func ReversePath(path Path) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

func ReversePaths(paths Paths) {
	for _, path := range paths {
		ReversePath(path)
	}
}

// PointInPolygon returns 0 when pt is outside path, +1 when inside and -1
// when on the boundary. It implements the crossing walk from Hormann &
// Agathos, "The Point in Polygon Problem for Arbitrary Polygons".
func PointInPolygon(pt Point, path Path) int {
	result := 0
	cnt := len(path)
	if cnt < 3 {
		return 0
	}
	ip := path[0]
	for i := 1; i <= cnt; i++ {
		var ipNext Point
		if i == cnt {
			ipNext = path[0]
		} else {
			ipNext = path[i]
		}
		if ipNext.Y == pt.Y {
			if ipNext.X == pt.X || (ip.Y == pt.Y && (ipNext.X > pt.X) == (ip.X < pt.X)) {
				return -1
			}
		}
		if (ip.Y < pt.Y) != (ipNext.Y < pt.Y) {
			if ip.X >= pt.X {
				if ipNext.X > pt.X {
					result = 1 - result
				} else {
					d := float64(ip.X-pt.X)*float64(ipNext.Y-pt.Y) -
						float64(ipNext.X-pt.X)*float64(ip.Y-pt.Y)
					if d == 0 {
						return -1
					} else if (d > 0) == (ipNext.Y > ip.Y) {
						result = 1 - result
					}
				}
			} else if ipNext.X > pt.X {
				d := float64(ip.X-pt.X)*float64(ipNext.Y-pt.Y) -
					float64(ipNext.X-pt.X)*float64(ip.Y-pt.Y)
				if d == 0 {
					return -1
				} else if (d > 0) == (ipNext.Y > ip.Y) {
					result = 1 - result
				}
			}
		}
		ip = ipNext
	}
	return result
}

// GetBounds returns the bounding rectangle of a set of paths.
func GetBounds(paths Paths) IntRect {
	i, cnt := 0, len(paths)
	for i < cnt && len(paths[i]) == 0 {
		i++
	}
	if i == cnt {
		return IntRect{}
	}
	result := IntRect{
		Left:   paths[i][0].X,
		Right:  paths[i][0].X,
		Top:    paths[i][0].Y,
		Bottom: paths[i][0].Y,
	}
	for ; i < cnt; i++ {
		for _, pt := range paths[i] {
			if pt.X < result.Left {
				result.Left = pt.X
			} else if pt.X > result.Right {
				result.Right = pt.X
			}
			if pt.Y < result.Top {
				result.Top = pt.Y
			} else if pt.Y > result.Bottom {
				result.Bottom = pt.Y
			}
		}
	}
	return result
}

func distanceSqrd(pt1, pt2 Point) float64 {
	dx := float64(pt1.X - pt2.X)
	dy := float64(pt1.Y - pt2.Y)
	return dx*dx + dy*dy
}

func distanceFromLineSqrd(pt, ln1, ln2 Point) float64 {
	// The equation of a line in general form (Ax + By + C = 0) given two
	// points (x1,y1) and (x2,y2) is A = y1 - y2, B = x2 - x1 and
	// C = A*x1 + B*y1.
	a := float64(ln1.Y - ln2.Y)
	b := float64(ln2.X - ln1.X)
	c := a*float64(ln1.X) + b*float64(ln1.Y)
	c = a*float64(pt.X) + b*float64(pt.Y) - c
	return (c * c) / (a*a + b*b)
}

func slopesNearCollinear(pt1, pt2, pt3 Point, distSqrd float64) bool {
	// This function is more accurate when the point that's geometrically
	// between the other two points is the one tested for distance.
	if abs(pt1.X-pt2.X) > abs(pt1.Y-pt2.Y) {
		if (pt1.X > pt2.X) == (pt1.X < pt3.X) {
			return distanceFromLineSqrd(pt1, pt2, pt3) < distSqrd
		} else if (pt2.X > pt1.X) == (pt2.X < pt3.X) {
			return distanceFromLineSqrd(pt2, pt1, pt3) < distSqrd
		}
		return distanceFromLineSqrd(pt3, pt1, pt2) < distSqrd
	}
	if (pt1.Y > pt2.Y) == (pt1.Y < pt3.Y) {
		return distanceFromLineSqrd(pt1, pt2, pt3) < distSqrd
	} else if (pt2.Y > pt1.Y) == (pt2.Y < pt3.Y) {
		return distanceFromLineSqrd(pt2, pt1, pt3) < distSqrd
	}
	return distanceFromLineSqrd(pt3, pt1, pt2) < distSqrd
}

func pointsAreClose(pt1, pt2 Point, distSqrd float64) bool {
	return distanceSqrd(pt1, pt2) <= distSqrd
}
