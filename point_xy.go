// +build !use_xyz

package clipper

import "fmt"

type Point struct {
	X cInt
	Y cInt
}

func (p Point) String() string {
	return fmt.Sprintf("{%v, %v}", p.X, p.Y)
}

func NewPoint(x, y cInt) Point {
	return Point{X: x, Y: y}
}

func NewPointFromFloat(x, y float64) Point {
	return Point{X: cInt(x), Y: cInt(y)}
}

// ptEq reports coordinate equality. The use_xyz variant ignores Z.
func ptEq(a, b Point) bool {
	return a == b
}

// zFill is empty without the use_xyz tag; Z bookkeeping compiles away.
type zFill struct{}

func (c *ClipperBase) reverseHorizontal(e *edge) {
	//swap horizontal edges' top and bottom x's so they follow the natural
	//progression of the bounds - ie so their xbots will align with the
	//adjoining lower edge. [Helpful in the processHorizontal() method.]
	e.top.X, e.bot.X = e.bot.X, e.top.X
}

func (c *Clipper) setZ(pt *Point, e1, e2 *edge) {
}

func setCurrZ(e *edge, topY cInt) {
}
