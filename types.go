package clipper

import "errors"

// Structural failures surfaced to callers. Degenerate geometry (too few
// distinct vertices, flat closed contours, zero-length edges) is absorbed
// silently instead.
var (
	ErrCoordinateRange = errors.New("clipper: coordinate outside allowed range")
	ErrOpenClipPath    = errors.New("clipper: open paths can only be subjects")
	ErrClipFailed      = errors.New("clipper: clipping operation failed")
)

type ClipType int

const (
	Intersection ClipType = iota
	Union
	Difference
	Xor
)

type PolyType int

const (
	Subject PolyType = iota
	Clip
)

// PolyFillType: see http://glprogramming.com/red/chapter11.html
type PolyFillType int

const (
	EvenOdd PolyFillType = iota
	NonZero
	Positive
	Negative
)

type JoinType int

const (
	SquareJoin JoinType = iota
	RoundJoin
	Miter
)

type EndType int

const (
	ClosedPolygon EndType = iota
	ClosedLine
	ButtEnd
	SquareEnd
	RoundEnd
)

// InitOptions configure a new Clipper; combine with bitwise or.
type InitOptions int

const (
	InitReverseSolution   InitOptions = 1
	InitStrictlySimple    InitOptions = 2
	InitPreserveCollinear InitOptions = 4
)

type edgeSide int

const (
	esLeft edgeSide = iota
	esRight
)

type direction int

const (
	dLeftToRight direction = iota
	dRightToLeft
)

type Path []Point

type Paths []Path

type IntRect struct {
	Left, Top, Right, Bottom cInt
}

// Index sentinels for the per-operation arenas. Every pool reference below
// is an index into its arena; unassigned plays the role of a nil link.
const (
	unassigned = -1
	skipEdge   = -2
)

// edge lives in the ClipperBase edge arena for the duration of one
// operation. next/prev give contour adjacency, nextInLML the bound
// continuation, the AEL/SEL links the current sweep order.
type edge struct {
	bot, curr, top, delta Point
	dx                    float64
	polyTyp               PolyType
	side                  edgeSide
	windDelta             int
	windCnt, windCnt2     int
	outIdx                int
	next, prev            int
	nextInLML             int
	nextInAEL, prevInAEL  int
	nextInSEL, prevInSEL  int
}

type localMinima struct {
	y                     cInt
	leftBound, rightBound int
	next                  *localMinima
}

type scanbeam struct {
	y    cInt
	next *scanbeam
}

type maxima struct {
	x          cInt
	next, prev *maxima
}

// outPt is a node of a circular doubly linked output ring, held in the
// Clipper outPt arena.
type outPt struct {
	idx        int
	pt         Point
	next, prev int
}

// outRec owns an output ring. firstLeft is the nearest enclosing ring seen
// during the sweep; it steers hole classification and PolyTree nesting.
type outRec struct {
	idx       int
	isHole    bool
	isOpen    bool
	firstLeft int
	pts       int
	bottomPt  int
	polyNode  *PolyNode
}

type joinRec struct {
	outPt1, outPt2 int
	offPt          Point
}

type intersectNode struct {
	edge1, edge2 int
	pt           Point
}

// rangeCfg carries the coordinate bounds for one execution context so
// independent operations can run with different precision settings.
type rangeCfg struct {
	lo, hi cInt
}

func defaultRanges() rangeCfg {
	return rangeCfg{lo: defaultLoRange, hi: defaultHiRange}
}
