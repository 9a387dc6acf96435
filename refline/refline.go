// Package refline provides the road-aligned curvilinear (s, l) frame and the
// reference line collaborator that the path cost oracle queries. The s
// coordinate is arclength along the reference path and l is the signed
// lateral offset from it, positive to the left.
package refline

import "github.com/golang/geo/r2"

// SLPoint is a point in the curvilinear frame.
type SLPoint struct {
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// SLBoundary is an axis-aligned footprint in the curvilinear frame.
type SLBoundary struct {
	StartS float64 `json:"start_s"`
	EndS   float64 `json:"end_s"`
	StartL float64 `json:"start_l"`
	EndL   float64 `json:"end_l"`
}

// ReferenceLine is the read-only road frame consumed by the cost oracle. It
// is immutable for the lifetime of one planning cycle.
type ReferenceLine interface {
	// Length returns the total arclength covered by the line.
	Length() float64
	// LaneWidth returns the drivable half-widths on each side of the line at s.
	LaneWidth(s float64) (left, right float64)
	// SLToXY projects a curvilinear point to Cartesian coordinates.
	SLToXY(sl SLPoint) r2.Point
	// XYToSL projects a Cartesian point back into the curvilinear frame.
	XYToSL(pt r2.Point) SLPoint
	// Heading returns the tangent direction of the line at s, in radians.
	Heading(s float64) float64
	// Curvature returns the signed curvature of the line at s.
	Curvature(s float64) float64
}
