// Package trajcost scores candidate lateral curves for a dynamic-programming
// lattice path planner. A TrajectoryCost oracle is built once per obstacle
// snapshot; its Calculate query is a pure function and may be invoked from
// concurrent search branches without locking.
package trajcost

// ComparableCost is the aggregate produced by one cost query: two hard
// constraint flags and two non-negative soft costs. The zero value is the
// identity for Merge.
type ComparableCost struct {
	// OutOfBoundary is set when the ego footprint leaves the lane corridor.
	OutOfBoundary bool
	// HasCollision is set when the ego footprint overlaps an obstacle.
	HasCollision bool
	// Smoothness accumulates offset, heading-proxy and curvature-proxy costs.
	Smoothness float64
	// Safety accumulates obstacle proximity costs.
	Safety float64
}

// Merge combines two aggregates: hard flags OR together and soft costs sum.
// Merge is associative and commutative with the zero value as identity.
func (c ComparableCost) Merge(o ComparableCost) ComparableCost {
	return ComparableCost{
		OutOfBoundary: c.OutOfBoundary || o.OutOfBoundary,
		HasCollision:  c.HasCollision || o.HasCollision,
		Smoothness:    c.Smoothness + o.Smoothness,
		Safety:        c.Safety + o.Safety,
	}
}

// Total returns the summed soft cost.
func (c ComparableCost) Total() float64 {
	return c.Smoothness + c.Safety
}

// Compare orders two aggregates, returning a negative number when c ranks
// better than o, zero when equal and a positive number when worse. Hard flags
// dominate soft cost, with a collision outranking a corridor violation; equal
// flag sets order by soft total.
func (c ComparableCost) Compare(o ComparableCost) int {
	if c.HasCollision != o.HasCollision {
		if c.HasCollision {
			return 1
		}
		return -1
	}
	if c.OutOfBoundary != o.OutOfBoundary {
		if c.OutOfBoundary {
			return 1
		}
		return -1
	}
	switch {
	case c.Total() < o.Total():
		return -1
	case c.Total() > o.Total():
		return 1
	default:
		return 0
	}
}
