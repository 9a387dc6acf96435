package trajcost

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/roadgraph/dppath/curve"
	"github.com/roadgraph/dppath/obstacle"
	"github.com/roadgraph/dppath/refline"
	"github.com/roadgraph/dppath/spatialmath"
	"github.com/roadgraph/dppath/speed"
)

const (
	// dynamicBoxExpansion grows each predicted obstacle box for a
	// conservative dynamic footprint.
	dynamicBoxExpansion = 0.5
	// offRoadIgnoreDistance skips corridor checks immediately ahead of the
	// ego, where the geometry is not yet actionable.
	offRoadIgnoreDistance = 5.0
	offRoadBuffer         = 0.1
	// safeLateralGap is the gap below which a static obstacle starts
	// contributing proximity cost.
	safeLateralGap = 0.6
	overlapBuffer  = 0.1
	riskCostWeight = 20.0
	// dynamicCostDamping keeps the densely time-sampled dynamic costs
	// commensurate with the spatially sampled static ones.
	dynamicCostDamping = 1e-6
)

// TrajectoryCost scores candidate lateral curves against the lane corridor
// and an obstacle snapshot. Construction classifies the snapshot exactly
// once; Calculate performs no mutation and is safe for concurrent use as long
// as the reference line, speed profile and obstacles stay read-only.
type TrajectoryCost struct {
	cfg              *Config
	ref              refline.ReferenceLine
	isChangeLanePath bool
	vehicle          *VehicleParam
	heuristicSpeed   *speed.Profile
	initSL           refline.SLPoint
	adcBoundary      refline.SLBoundary

	numTimeStamps    int
	staticBoundaries []refline.SLBoundary
	// dynamicBoxes holds one expanded box sequence per moving obstacle, all
	// of length numTimeStamps+1 and index-aligned on one shared time grid.
	dynamicBoxes [][]spatialmath.Box2
}

// New builds an oracle for one obstacle snapshot. Obstacles marked virtual,
// ignored or stopped are dropped; obstacles the ego cannot laterally reach
// are dropped; the remainder split into static footprints and time-indexed
// dynamic box sequences.
func New(
	cfg *Config,
	ref refline.ReferenceLine,
	isChangeLanePath bool,
	obstacles []obstacle.Obstacle,
	vehicle *VehicleParam,
	heuristicSpeed *speed.Profile,
	initSL refline.SLPoint,
	adcBoundary refline.SLBoundary,
	logger golog.Logger,
) (*TrajectoryCost, error) {
	if cfg == nil || ref == nil || vehicle == nil || heuristicSpeed == nil {
		return nil, errors.New("trajcost: config, reference line, vehicle and speed profile are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	totalTime := math.Min(heuristicSpeed.TotalTime(), cfg.PredictionTotalTime)
	numTimeStamps := int(math.Floor(totalTime / cfg.EvalTimeInterval))

	t := &TrajectoryCost{
		cfg:              cfg,
		ref:              ref,
		isChangeLanePath: isChangeLanePath,
		vehicle:          vehicle,
		heuristicSpeed:   heuristicSpeed,
		initSL:           initSL,
		adcBoundary:      adcBoundary,
		numTimeStamps:    numTimeStamps,
	}

	adcLeftL := initSL.L + vehicle.LeftEdgeToCenter
	adcRightL := initSL.L - vehicle.RightEdgeToCenter

	for _, obs := range obstacles {
		if obs.IsVirtual() || obs.HasStopDecision() || obs.IsIgnored() {
			continue
		}
		bound := obs.SLBoundary()
		if bound.StartS > ref.Length() || bound.EndS < 0 {
			return nil, errors.Errorf(
				"trajcost: obstacle %q footprint [%.2f, %.2f] lies outside the reference line (length %.2f)",
				obs.ID(), bound.StartS, bound.EndS, ref.Length())
		}

		// obstacles the ego cannot laterally reach carry no cost at all
		if adcLeftL+cfg.LateralIgnoreBuffer < bound.StartL ||
			adcRightL-cfg.LateralIgnoreBuffer > bound.EndL {
			continue
		}

		kind := obs.Category()
		if obs.IsStatic() || kind == obstacle.CategoryPedestrian || kind == obstacle.CategoryBicycle {
			t.staticBoundaries = append(t.staticBoundaries, bound)
			continue
		}

		boxes := make([]spatialmath.Box2, 0, numTimeStamps+1)
		for i := 0; i <= numTimeStamps; i++ {
			predicted := obs.BoxAtTime(float64(i) * cfg.EvalTimeInterval)
			boxes = append(boxes, predicted.Expand(dynamicBoxExpansion))
		}
		t.dynamicBoxes = append(t.dynamicBoxes, boxes)
	}

	// the dynamic evaluator indexes every sequence with one shared time grid
	for i, boxes := range t.dynamicBoxes {
		if len(boxes) != numTimeStamps+1 {
			return nil, errors.Errorf(
				"trajcost: dynamic box sequence %d has %d samples, want %d", i, len(boxes), numTimeStamps+1)
		}
	}

	logger.Debugf("classified %d obstacles into %d static footprints and %d dynamic box sequences over %d time stamps",
		len(obstacles), len(t.staticBoundaries), len(t.dynamicBoxes), numTimeStamps)
	return t, nil
}

// Calculate scores one candidate curve over [startS, endS) at the given
// search level, merging the smoothness, static and dynamic aggregates.
func (t *TrajectoryCost) Calculate(c curve.Curve, startS, endS float64, currLevel, totalLevel uint32) ComparableCost {
	total := ComparableCost{}
	total = total.Merge(t.pathCost(c, startS, endS, currLevel, totalLevel))
	total = total.Merge(t.staticObstacleCost(c, startS, endS))
	total = total.Merge(t.dynamicObstacleCost(c, startS, endS))
	return total
}
