package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Box2 is an oriented rectangle in the plane with a center, a heading and
// full length/width dimensions. It is an immutable value; all derived
// quantities are computed at construction.
type Box2 struct {
	center          r2.Point
	heading         float64
	length, width   float64
	axisL, axisW    r2.Point
	boundingCircleR float64
}

// NewBox2 instantiates a new oriented box. The heading is in radians, length
// runs along the heading axis and width perpendicular to it.
func NewBox2(center r2.Point, heading, length, width float64) Box2 {
	c, s := math.Cos(heading), math.Sin(heading)
	return Box2{
		center:          center,
		heading:         heading,
		length:          length,
		width:           width,
		axisL:           r2.Point{X: c, Y: s},
		axisW:           r2.Point{X: -s, Y: c},
		boundingCircleR: math.Hypot(length/2, width/2),
	}
}

// Center returns the center point of the box.
func (b Box2) Center() r2.Point { return b.center }

// Heading returns the heading of the box in radians.
func (b Box2) Heading() float64 { return b.heading }

// Length returns the extent of the box along its heading axis.
func (b Box2) Length() float64 { return b.length }

// Width returns the extent of the box perpendicular to its heading axis.
func (b Box2) Width() float64 { return b.width }

// Expand returns a copy of the box with both dimensions grown by d, keeping
// the same center and heading.
func (b Box2) Expand(d float64) Box2 {
	return NewBox2(b.center, b.heading, b.length+d, b.width+d)
}

// String returns a human readable string that represents the box.
func (b Box2) String() string {
	return fmt.Sprintf("Type: Box2 | Position: X:%.1f, Y:%.1f | Heading: %.2f | Dims: L:%.1f, W:%.1f",
		b.center.X, b.center.Y, b.heading, b.length, b.width)
}

// Corners returns the four vertices of the box in counterclockwise order.
func (b Box2) Corners() [4]r2.Point {
	dl := b.axisL.Mul(b.length / 2)
	dw := b.axisW.Mul(b.width / 2)
	return [4]r2.Point{
		b.center.Add(dl).Add(dw),
		b.center.Sub(dl).Add(dw),
		b.center.Sub(dl).Sub(dw),
		b.center.Add(dl).Sub(dw),
	}
}

// halfProjection returns half the box's extent when projected onto the given
// unit axis.
func (b Box2) halfProjection(axis r2.Point) float64 {
	return math.Abs(axis.Dot(b.axisL))*b.length/2 + math.Abs(axis.Dot(b.axisW))*b.width/2
}

// HasOverlap reports whether the two boxes intersect, by the separating axis
// test over both boxes' face normals. A bounding-circle check exits early
// when the boxes are clearly apart.
func (b Box2) HasOverlap(o Box2) bool {
	d := o.center.Sub(b.center)
	if d.Norm() > b.boundingCircleR+o.boundingCircleR {
		return false
	}
	for _, axis := range [4]r2.Point{b.axisL, b.axisW, o.axisL, o.axisW} {
		if math.Abs(d.Dot(axis)) > b.halfProjection(axis)+o.halfProjection(axis) {
			return false
		}
	}
	return true
}

// DistanceTo returns the minimum surface distance between the two boxes, or
// zero if they overlap. For separated boxes the exact distance is found by
// enumerating the edge pairs of both boxes.
func (b Box2) DistanceTo(o Box2) float64 {
	if b.HasOverlap(o) {
		return 0
	}
	cb := b.Corners()
	co := o.Corners()
	minDist := math.Inf(1)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := SegmentDistanceToSegment(cb[i], cb[(i+1)%4], co[j], co[(j+1)%4])
			if d < minDist {
				minDist = d
			}
		}
	}
	return minDist
}
