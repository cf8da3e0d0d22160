package clipper

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestMinkowskiSumSquares(t *testing.T) {
	pattern := square(0, 0, 2)
	solution, err := MinkowskiSum(pattern, square(0, 0, 20), true)
	test.Error(t, err)
	test.T(t, len(solution), 1)
	// dilation of a 20 square by a 2 square
	test.Float(t, Area(solution[0]), 22*22)
}

func TestMinkowskiSumOpenPath(t *testing.T) {
	pattern := square(-1, -1, 2)
	line := Path{{X: 0, Y: 0}, {X: 100, Y: 0}}
	solution, err := MinkowskiSum(pattern, line, false)
	test.Error(t, err)
	test.T(t, len(solution), 1)
	// the line swept by the pattern: a 102x2 band
	test.Float(t, Area(solution[0]), 102*2)
}

func TestMinkowskiSumPaths(t *testing.T) {
	pattern := square(0, 0, 2)
	solution, err := MinkowskiSumPaths(pattern, Paths{square(0, 0, 20), square(100, 100, 20)}, true)
	test.Error(t, err)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 2*22*22)
}

func TestMinkowskiDiffSquares(t *testing.T) {
	solution, err := MinkowskiDiff(square(0, 0, 2), square(0, 0, 20))
	test.Error(t, err)
	test.T(t, len(solution), 1)
	test.Float(t, Area(solution[0]), 22*22)
}

func TestTranslatePath(t *testing.T) {
	path := TranslatePath(square(0, 0, 10), Point{X: 5, Y: -5})
	test.T(t, path, square(5, -5, 10))
}

func TestSimplifyPolygonBowtie(t *testing.T) {
	bowtie := Path{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	solution, err := SimplifyPolygon(bowtie, EvenOdd)
	test.Error(t, err)
	test.T(t, len(solution), 2)
	for _, ring := range solution {
		test.Float(t, Area(ring), 25)
	}

	many, err := SimplifyPolygons(Paths{bowtie, square(100, 100, 10)}, EvenOdd)
	test.Error(t, err)
	test.T(t, len(many), 3)
}
