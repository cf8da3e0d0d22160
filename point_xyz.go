// +build use_xyz

package clipper

import "fmt"

type Point struct {
	X cInt
	Y cInt
	Z cInt
}

func (p Point) String() string {
	return fmt.Sprintf("{%v, %v, %v}", p.X, p.Y, p.Z)
}

func NewPoint(x, y, z cInt) Point {
	return Point{X: x, Y: y, Z: z}
}

func NewPointFromFloat(x, y, z float64) Point {
	return Point{X: cInt(x), Y: cInt(y), Z: cInt(z)}
}

// ZFillCallback assigns the Z member of intersection points; the four
// arguments are the endpoints of the two intersecting edges.
type ZFillCallback func(bot1, top1, bot2, top2 Point, pt *Point)

type zFill struct {
	ZFillFunction ZFillCallback
}

func (c *ClipperBase) reverseHorizontal(e *edge) {
	//swap horizontal edges' top and bottom x's so they follow the natural
	//progression of the bounds - ie so their xbots will align with the
	//adjoining lower edge. [Helpful in the processHorizontal() method.]
	e.top.X, e.bot.X = e.bot.X, e.top.X
	e.top.Z, e.bot.Z = e.bot.Z, e.top.Z
}

// ptEq reports coordinate equality ignoring the application-defined Z tag.
func ptEq(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

func setCurrZ(e *edge, topY cInt) {
	switch topY {
	case e.top.Y:
		e.curr.Z = e.top.Z
	case e.bot.Y:
		e.curr.Z = e.bot.Z
	default:
		e.curr.Z = 0
	}
}

func (c *Clipper) setZ(pt *Point, e1, e2 *edge) {
	if pt.Z != 0 || c.ZFillFunction == nil {
		return
	}
	switch {
	case ptEq(*pt, e1.bot):
		pt.Z = e1.bot.Z
	case ptEq(*pt, e1.top):
		pt.Z = e1.top.Z
	case ptEq(*pt, e2.bot):
		pt.Z = e2.bot.Z
	case ptEq(*pt, e2.top):
		pt.Z = e2.top.Z
	default:
		c.ZFillFunction(e1.bot, e1.top, e2.bot, e2.top, pt)
	}
}
