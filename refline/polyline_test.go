package refline

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestNewPolylineValidation(t *testing.T) {
	_, err := NewPolyline([]r2.Point{{}}, 1.75, 1.75)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewPolyline([]r2.Point{{}, {}}, 1.75, 1.75)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewPolyline([]r2.Point{{}, {X: 10}}, 0, 1.75)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewStraight(-1, 1.75, 1.75)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestStraightLine(t *testing.T) {
	line, err := NewStraight(100, 1.75, 1.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, line.Length(), test.ShouldEqual, 100)

	left, right := line.LaneWidth(42)
	test.That(t, left, test.ShouldEqual, 1.75)
	test.That(t, right, test.ShouldEqual, 1.5)

	test.That(t, line.Heading(50), test.ShouldEqual, 0)
	test.That(t, line.Curvature(50), test.ShouldEqual, 0)

	pt := line.SLToXY(SLPoint{S: 30, L: 2})
	test.That(t, pt.X, test.ShouldAlmostEqual, 30)
	test.That(t, pt.Y, test.ShouldAlmostEqual, 2)

	// projection round trip recovers (s, l) when curvature is zero
	for _, sl := range []SLPoint{{S: 0, L: 0}, {S: 12.5, L: 1.2}, {S: 80, L: -0.7}} {
		back := line.XYToSL(line.SLToXY(sl))
		test.That(t, back.S, test.ShouldAlmostEqual, sl.S, 1e-9)
		test.That(t, back.L, test.ShouldAlmostEqual, sl.L, 1e-9)
	}
}

func TestPolylineHeadingAndCurvature(t *testing.T) {
	// 90 degree left turn made of two 10m segments
	line, err := NewPolyline([]r2.Point{{}, {X: 10}, {X: 10, Y: 10}}, 1.75, 1.75)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, line.Length(), test.ShouldAlmostEqual, 20)

	test.That(t, line.Heading(5), test.ShouldEqual, 0)
	test.That(t, line.Heading(15), test.ShouldAlmostEqual, math.Pi/2)

	// heading change of pi/2 over ds=10 at the interior vertex
	test.That(t, line.Curvature(10), test.ShouldAlmostEqual, math.Pi/2/10)

	// lateral offsets follow the left normal of the containing segment
	pt := line.SLToXY(SLPoint{S: 15, L: 1})
	test.That(t, pt.X, test.ShouldAlmostEqual, 9)
	test.That(t, pt.Y, test.ShouldAlmostEqual, 5)
}
