package trajcost

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/roadgraph/dppath/obstacle"
	"github.com/roadgraph/dppath/refline"
	"github.com/roadgraph/dppath/speed"
)

// constCurve holds a fixed lateral offset with zero derivatives.
type constCurve struct {
	l float64
}

func (c constCurve) Evaluate(order int, _ float64) float64 {
	if order == 0 {
		return c.l
	}
	return 0
}

func (c constCurve) ParamLength() float64 { return 1000 }

// stepCurve jumps from zero offset to a fixed offset at breakS.
type stepCurve struct {
	breakS, l float64
}

func (c stepCurve) Evaluate(order int, p float64) float64 {
	if order == 0 && p >= c.breakS {
		return c.l
	}
	return 0
}

func (c stepCurve) ParamLength() float64 { return 1000 }

func testVehicle() *VehicleParam {
	return &VehicleParam{
		FrontEdgeToCenter: 2,
		BackEdgeToCenter:  2,
		LeftEdgeToCenter:  1,
		RightEdgeToCenter: 1,
		Length:            4,
		Width:             2,
	}
}

func testProfile(t *testing.T) *speed.Profile {
	t.Helper()
	profile, err := speed.NewProfile([]speed.Point{
		{T: 0, S: 0, V: 10},
		{T: 5, S: 50, V: 10},
	})
	test.That(t, err, test.ShouldBeNil)
	return profile
}

type oracleOptions struct {
	initSL       refline.SLPoint
	isChangeLane bool
	leftWidth    float64
	rightWidth   float64
}

func defaultOracleOptions() oracleOptions {
	return oracleOptions{leftWidth: 1.75, rightWidth: 1.75}
}

func newTestOracle(t *testing.T, obstacles []obstacle.Obstacle, opts oracleOptions) *TrajectoryCost {
	t.Helper()
	line, err := refline.NewStraight(100, opts.leftWidth, opts.rightWidth)
	test.That(t, err, test.ShouldBeNil)
	oracle, err := New(
		DefaultConfig(), line, opts.isChangeLane, obstacles, testVehicle(), testProfile(t),
		opts.initSL,
		refline.SLBoundary{StartS: -2, EndS: 2, StartL: -1, EndL: 1},
		golog.NewTestLogger(t),
	)
	test.That(t, err, test.ShouldBeNil)
	return oracle
}

func TestNewValidation(t *testing.T) {
	line, err := refline.NewStraight(100, 1.75, 1.75)
	test.That(t, err, test.ShouldBeNil)
	logger := golog.NewTestLogger(t)

	_, err = New(nil, line, false, nil, testVehicle(), testProfile(t), refline.SLPoint{}, refline.SLBoundary{}, logger)
	test.That(t, err, test.ShouldNotBeNil)

	badCfg := DefaultConfig()
	badCfg.PathResolution = 0
	_, err = New(badCfg, line, false, nil, testVehicle(), testProfile(t), refline.SLPoint{}, refline.SLBoundary{}, logger)
	test.That(t, err, test.ShouldNotBeNil)

	badVehicle := testVehicle()
	badVehicle.Width = -1
	_, err = New(DefaultConfig(), line, false, nil, badVehicle, testProfile(t), refline.SLPoint{}, refline.SLBoundary{}, logger)
	test.That(t, err, test.ShouldNotBeNil)

	// an obstacle beyond the reference line means the snapshot was built
	// against a different line
	farObstacle := &obstacle.Static{
		Name:     "elsewhere",
		Boundary: refline.SLBoundary{StartS: 500, EndS: 510, StartL: 0.5, EndL: 1.5},
	}
	_, err = New(DefaultConfig(), line, false, []obstacle.Obstacle{farObstacle}, testVehicle(), testProfile(t),
		refline.SLPoint{}, refline.SLBoundary{}, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "outside the reference line")
}

func TestClassification(t *testing.T) {
	boundary := refline.SLBoundary{StartS: 5, EndS: 8, StartL: 0.3, EndL: 1.0}
	track := []obstacle.TimedPose{
		{T: 0, Pos: r2.Point{X: 20}},
		{T: 5, Pos: r2.Point{X: 70}},
	}

	obstacles := []obstacle.Obstacle{
		&obstacle.Static{Name: "virtual", Boundary: boundary, Virtual: true},
		&obstacle.Static{Name: "stopped-for", Boundary: boundary, Stop: true},
		&obstacle.Static{Name: "ignored", Boundary: boundary, Ignored: true},
		// laterally unreachable: start_l beyond left edge + ignore buffer
		&obstacle.Static{Name: "far-left", Boundary: refline.SLBoundary{StartS: 5, EndS: 8, StartL: 4.5, EndL: 5.5}},
		&obstacle.Static{Name: "parked", Boundary: boundary},
		&obstacle.Static{Name: "walker", Kind: obstacle.CategoryPedestrian, Boundary: boundary},
		&obstacle.Moving{
			Name: "mover", Kind: obstacle.CategoryVehicle, Length: 4, Width: 2,
			Boundary: refline.SLBoundary{StartS: 18, EndS: 22, StartL: -1, EndL: 1},
			Track:    track,
		},
	}

	oracle := newTestOracle(t, obstacles, defaultOracleOptions())
	test.That(t, oracle.staticBoundaries, test.ShouldHaveLength, 2)
	test.That(t, oracle.dynamicBoxes, test.ShouldHaveLength, 1)

	// horizon = min(5.0, 5.0), so 50 stamps and sequences of 51 boxes
	test.That(t, oracle.numTimeStamps, test.ShouldEqual, 50)
	test.That(t, oracle.dynamicBoxes[0], test.ShouldHaveLength, 51)

	// predicted boxes carry the conservative expansion
	test.That(t, oracle.dynamicBoxes[0][0].Length(), test.ShouldEqual, 4.5)
	test.That(t, oracle.dynamicBoxes[0][0].Width(), test.ShouldEqual, 2.5)
}

func TestHorizonShorterThanOneStep(t *testing.T) {
	line, err := refline.NewStraight(100, 1.75, 1.75)
	test.That(t, err, test.ShouldBeNil)
	profile, err := speed.NewProfile([]speed.Point{{T: 0, S: 0, V: 1}, {T: 0.05, S: 0.05, V: 1}})
	test.That(t, err, test.ShouldBeNil)

	mover := &obstacle.Moving{
		Name: "mover", Kind: obstacle.CategoryVehicle, Length: 4, Width: 2,
		Boundary: refline.SLBoundary{StartS: 18, EndS: 22, StartL: -1, EndL: 1},
		Track:    []obstacle.TimedPose{{T: 0, Pos: r2.Point{X: 20}}},
	}
	oracle, err := New(DefaultConfig(), line, false, []obstacle.Obstacle{mover}, testVehicle(), profile,
		refline.SLPoint{}, refline.SLBoundary{}, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, oracle.numTimeStamps, test.ShouldEqual, 0)

	// a single-sample sequence exists but the evaluator never indexes it
	cost := oracle.dynamicObstacleCost(constCurve{}, 0, 100)
	test.That(t, cost, test.ShouldResemble, ComparableCost{})
}

func TestCalculateDeterministic(t *testing.T) {
	obstacles := []obstacle.Obstacle{
		&obstacle.Static{Name: "parked", Boundary: refline.SLBoundary{StartS: 5, EndS: 8, StartL: 0.3, EndL: 1.0}},
	}
	oracle := newTestOracle(t, obstacles, defaultOracleOptions())
	c := constCurve{l: 0.2}
	first := oracle.Calculate(c, 0, 10, 1, 4)
	second := oracle.Calculate(c, 0, 10, 1, 4)
	test.That(t, second, test.ShouldResemble, first)
	test.That(t, first.Smoothness, test.ShouldBeGreaterThanOrEqualTo, 0)
	test.That(t, first.Safety, test.ShouldBeGreaterThanOrEqualTo, 0)
}
