package speed

import (
	"testing"

	"go.viam.com/test"
)

func TestNewProfileValidation(t *testing.T) {
	_, err := NewProfile(nil)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewProfile([]Point{{T: 0, S: 0}, {T: 0, S: 1}})
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewProfile([]Point{{T: 0, S: 5}, {T: 1, S: 4}})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestProfileEvaluateByTime(t *testing.T) {
	profile, err := NewProfile([]Point{
		{T: 0, S: 0, V: 10},
		{T: 1, S: 10, V: 10},
		{T: 2, S: 18, V: 6},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, profile.TotalTime(), test.ShouldEqual, 2)

	pt, ok := profile.EvaluateByTime(0)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, pt.S, test.ShouldEqual, 0)

	pt, ok = profile.EvaluateByTime(1)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, pt.S, test.ShouldAlmostEqual, 10)

	pt, ok = profile.EvaluateByTime(1.5)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, pt.S, test.ShouldAlmostEqual, 14)
	test.That(t, pt.V, test.ShouldAlmostEqual, 8)

	_, ok = profile.EvaluateByTime(-0.1)
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = profile.EvaluateByTime(2.1)
	test.That(t, ok, test.ShouldBeFalse)
}
