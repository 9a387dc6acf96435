// Package spatialmath defines the planar geometry used by the path cost
// oracle: oriented boxes, angle helpers and the scalar shaping functions
// applied to proximity and offset costs.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// NormalizeAngle wraps an angle in radians to the interval (-pi, pi].
func NormalizeAngle(theta float64) float64 {
	a := math.Mod(theta+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// Rotate returns p rotated about the origin by theta radians.
func Rotate(p r2.Point, theta float64) r2.Point {
	c, s := math.Cos(theta), math.Sin(theta)
	return r2.Point{X: c*p.X - s*p.Y, Y: s*p.X + c*p.Y}
}

// Sigmoid maps x into (0, 1), increasing monotonically.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// QuasiSoftmax is a logistic weight that rises from b toward 1 as x grows
// past l0, with slope controlled by k. It stays bounded in [min(b,1), max(b,1)].
func QuasiSoftmax(x, b, k, l0 float64) float64 {
	e := math.Exp(-k * (x - l0))
	return (b + e) / (1.0 + e)
}

// closestPointOnSegment returns the point on segment [a, b] closest to p.
func closestPointOnSegment(a, b, p r2.Point) r2.Point {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}

// segmentsIntersect reports whether segments [a0, a1] and [b0, b1] cross,
// using orientation signs of the endpoint triangles.
func segmentsIntersect(a0, a1, b0, b1 r2.Point) bool {
	d := a1.Sub(a0)
	o1 := d.Cross(b0.Sub(a0))
	o2 := d.Cross(b1.Sub(a0))
	e := b1.Sub(b0)
	o3 := e.Cross(a0.Sub(b0))
	o4 := e.Cross(a1.Sub(b0))
	return o1*o2 < 0 && o3*o4 < 0
}

// SegmentDistanceToSegment returns the minimum distance between two planar
// segments, zero if they intersect.
func SegmentDistanceToSegment(a0, a1, b0, b1 r2.Point) float64 {
	if segmentsIntersect(a0, a1, b0, b1) {
		return 0
	}
	d := b0.Sub(closestPointOnSegment(a0, a1, b0)).Norm()
	if v := b1.Sub(closestPointOnSegment(a0, a1, b1)).Norm(); v < d {
		d = v
	}
	if v := a0.Sub(closestPointOnSegment(b0, b1, a0)).Norm(); v < d {
		d = v
	}
	if v := a1.Sub(closestPointOnSegment(b0, b1, a1)).Norm(); v < d {
		d = v
	}
	return d
}
