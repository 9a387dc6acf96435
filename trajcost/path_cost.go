package trajcost

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/roadgraph/dppath/curve"
	"github.com/roadgraph/dppath/spatialmath"
	"github.com/roadgraph/dppath/utils"
)

// pathCost integrates the smoothness cost of the curve over [startS, endS):
// squared offset shaped by the quasi-softmax weight, squared first derivative
// as a heading proxy and squared second derivative as a curvature proxy. The
// corridor flag is sticky across samples. At the last search level a homing
// term pulls the end offset back toward the reference line.
func (t *TrajectoryCost) pathCost(c curve.Curve, startS, endS float64, currLevel, totalLevel uint32) ComparableCost {
	cost := ComparableCost{}
	pathCost := 0.0
	for curveS := 0.0; curveS < endS-startS; curveS += t.cfg.PathResolution {
		l := c.Evaluate(0, curveS)
		pathCost += l * l * t.cfg.PathLCost *
			spatialmath.QuasiSoftmax(math.Abs(l), t.cfg.PathLCostParamB, t.cfg.PathLCostParamK, t.cfg.PathLCostParamL0)

		dl := math.Abs(c.Evaluate(1, curveS))
		if t.isOffRoad(curveS+startS, l, dl, t.isChangeLanePath) {
			cost.OutOfBoundary = true
		}
		pathCost += dl * dl * t.cfg.PathDlCost

		ddl := math.Abs(c.Evaluate(2, curveS))
		pathCost += ddl * ddl * t.cfg.PathDdlCost
	}
	pathCost *= t.cfg.PathResolution

	if currLevel == totalLevel {
		endL := c.Evaluate(0, endS-startS)
		// the argument can go negative, yielding NaN; kept as-is rather than
		// clamped, see DESIGN.md
		pathCost += math.Sqrt(endL-t.initSL.L/2.0) * t.cfg.PathEndLCost
	}
	cost.Smoothness = pathCost
	return cost
}

// isOffRoad reports whether the ego footprint at (refS, l) with the heading
// implied by dl leaves the lane corridor. The corridor never shrinks tighter
// than the ego's own committed lateral extent. The lane-change flag is
// threaded through but not consulted; see DESIGN.md.
func (t *TrajectoryCost) isOffRoad(refS, l, dl float64, isChangeLanePath bool) bool {
	if refS-t.initSL.S < offRoadIgnoreDistance {
		return false
	}

	rearCenter := r2.Point{X: 0, Y: l}
	vecToCenter := r2.Point{
		X: (t.vehicle.FrontEdgeToCenter - t.vehicle.BackEdgeToCenter) / 2.0,
		Y: (t.vehicle.LeftEdgeToCenter - t.vehicle.RightEdgeToCenter) / 2.0,
	}
	rearToCenter := spatialmath.Rotate(vecToCenter, math.Atan(dl))
	center := rearCenter.Add(rearToCenter)
	frontCenter := center.Add(rearToCenter)

	rw := (t.vehicle.LeftEdgeToCenter + t.vehicle.RightEdgeToCenter) / 2.0
	rl := t.vehicle.BackEdgeToCenter
	r := math.Sqrt(utils.Square(rw) + utils.Square(rl))

	leftWidth, rightWidth := t.ref.LaneWidth(refS)
	leftBound := math.Max(t.initSL.L+r+offRoadBuffer, leftWidth)
	rightBound := math.Min(t.initSL.L-r-offRoadBuffer, -rightWidth)

	if rearCenter.Y+r+offRoadBuffer/2.0 > leftBound || rearCenter.Y-r-offRoadBuffer/2.0 < rightBound {
		return true
	}
	if frontCenter.Y+r+offRoadBuffer/2.0 > leftBound || frontCenter.Y-r-offRoadBuffer/2.0 < rightBound {
		return true
	}
	return false
}
