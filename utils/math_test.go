package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestSquare(t *testing.T) {
	test.That(t, Square(3), test.ShouldEqual, 9)
	test.That(t, Square(-2.5), test.ShouldEqual, 6.25)
	test.That(t, Square(0), test.ShouldEqual, 0)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1.0, 1.0+1e-10, 1e-9), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1.0, 1.1, 1e-9), test.ShouldBeFalse)
	test.That(t, Float64AlmostEqual(-1.0, -1.0, 0), test.ShouldBeTrue)
}
