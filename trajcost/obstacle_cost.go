package trajcost

import (
	"math"

	"github.com/roadgraph/dppath/curve"
	"github.com/roadgraph/dppath/refline"
	"github.com/roadgraph/dppath/spatialmath"
)

// staticObstacleCost integrates proximity risk between the curve and every
// classified static footprint over [startS, endS).
func (t *TrajectoryCost) staticObstacleCost(c curve.Curve, startS, endS float64) ComparableCost {
	cost := ComparableCost{}
	for currS := startS; currS < endS; currS += t.cfg.PathResolution {
		currL := c.Evaluate(0, currS-startS)
		for _, bound := range t.staticBoundaries {
			cost = cost.Merge(t.costFromBoundary(currS, currL, bound))
		}
	}
	cost.Safety *= t.cfg.PathResolution
	return cost
}

// costFromBoundary scores the ego at curvilinear position (adcS, adcL)
// against one static footprint: the collision flag when the extents overlap
// with a small margin, and a sigmoid proximity cost when the lateral gap
// falls below the safe threshold.
func (t *TrajectoryCost) costFromBoundary(adcS, adcL float64, bound refline.SLBoundary) ComparableCost {
	cost := ComparableCost{}

	adcFrontS := adcS + t.vehicle.FrontEdgeToCenter
	adcEndS := adcS - t.vehicle.BackEdgeToCenter
	adcLeftL := adcL + t.vehicle.LeftEdgeToCenter
	adcRightL := adcL - t.vehicle.RightEdgeToCenter

	if adcLeftL+t.cfg.LateralIgnoreBuffer < bound.StartL ||
		adcRightL-t.cfg.LateralIgnoreBuffer > bound.EndL {
		return cost
	}

	noOverlap := adcFrontS < bound.StartS || adcEndS > bound.EndS ||
		adcLeftL+overlapBuffer < bound.StartL || adcRightL-overlapBuffer > bound.EndL
	if !noOverlap {
		cost.HasCollision = true
	}

	// footprints straddling the reference line contribute no proximity cost;
	// see DESIGN.md
	if bound.StartL*bound.EndL <= 0.0 {
		return cost
	}

	// obstacles entirely behind the ego front edge contribute no cost
	if adcFrontS > bound.EndS {
		return cost
	}

	deltaL := math.Max(adcRightL-bound.EndL, bound.StartL-adcLeftL)
	if deltaL < safeLateralGap {
		cost.Safety += t.cfg.ObstacleCollisionCost *
			spatialmath.Sigmoid(t.cfg.ObstacleCollisionDistance-deltaL)
	}
	return cost
}

// dynamicObstacleCost walks the shared time grid, places the ego box at the
// longitudinal progress the speed profile predicts for each time stamp, and
// accumulates box-to-box proximity cost against every dynamic obstacle at the
// matching index. Stamps before startS are skipped and iteration stops past
// endS; later segments evaluate the remainder.
func (t *TrajectoryCost) dynamicObstacleCost(c curve.Curve, startS, endS float64) ComparableCost {
	cost := ComparableCost{}
	if len(t.dynamicBoxes) == 0 {
		return cost
	}

	timeStamp := 0.0
	for index := 0; index < t.numTimeStamps; index, timeStamp = index+1, timeStamp+t.cfg.EvalTimeInterval {
		speedPoint, ok := t.heuristicSpeed.EvaluateByTime(timeStamp)
		if !ok {
			continue
		}
		refS := speedPoint.S + t.initSL.S
		if refS < startS {
			continue
		}
		if refS > endS {
			break
		}

		s := refS - startS
		l := c.Evaluate(0, s)
		dl := c.Evaluate(1, s)
		egoBox := t.boxFromSL(refline.SLPoint{S: refS, L: l}, dl)
		for _, boxes := range t.dynamicBoxes {
			cost = cost.Merge(t.costBetweenBoxes(egoBox, boxes[index]))
		}
	}
	cost.Safety *= t.cfg.EvalTimeInterval * dynamicCostDamping
	return cost
}

// costBetweenBoxes scores the ego box against one predicted obstacle box by
// surface distance: nothing beyond the ignore distance, otherwise a collision
// sigmoid plus a fixed-weight risk sigmoid.
func (t *TrajectoryCost) costBetweenBoxes(egoBox, obstacleBox spatialmath.Box2) ComparableCost {
	cost := ComparableCost{}
	distance := obstacleBox.DistanceTo(egoBox)
	if distance > t.cfg.ObstacleIgnoreDistance {
		return cost
	}
	cost.Safety += t.cfg.ObstacleCollisionCost *
		spatialmath.Sigmoid(t.cfg.ObstacleCollisionDistance-distance)
	cost.Safety += riskCostWeight *
		spatialmath.Sigmoid(t.cfg.ObstacleRiskDistance-distance)
	return cost
}

// boxFromSL converts a curvilinear ego position into an oriented Cartesian
// footprint. The heading correction atan2(dl, 1-kappa*l) accounts for the
// shear of the curvilinear frame before adding the reference heading.
func (t *TrajectoryCost) boxFromSL(sl refline.SLPoint, dl float64) spatialmath.Box2 {
	xy := t.ref.SLToXY(sl)
	oneMinusKappaRD := 1 - t.ref.Curvature(sl.S)*sl.L
	deltaTheta := math.Atan2(dl, oneMinusKappaRD)
	theta := spatialmath.NormalizeAngle(deltaTheta + t.ref.Heading(sl.S))
	return spatialmath.NewBox2(xy, theta, t.vehicle.Length, t.vehicle.Width)
}
