// Package curve provides the one-dimensional lateral offset curves evaluated
// by the path cost oracle. A curve maps longitudinal progress along a segment
// to a lateral offset and its first two derivatives.
package curve

// Curve is a candidate lateral trajectory over one longitudinal segment. It
// is immutable and evaluated read-only.
type Curve interface {
	// Evaluate returns the derivative of the given order (0, 1 or 2) of the
	// lateral offset at parameter p. Higher orders evaluate to zero.
	Evaluate(order int, p float64) float64
	// ParamLength returns the longitudinal extent the curve is defined over.
	ParamLength() float64
}
