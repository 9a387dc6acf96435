// Package speed provides the heuristic speed profile consumed by the path
// cost oracle: a time-ordered mapping from elapsed time to longitudinal
// progress along the reference line.
package speed

import (
	"sort"

	"github.com/pkg/errors"
)

// Point is one sample of the profile: elapsed time, longitudinal progress
// and longitudinal velocity.
type Point struct {
	T float64 `json:"t"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// Profile is an immutable speed profile queried by linear interpolation.
type Profile struct {
	points []Point
}

// NewProfile validates and wraps the given samples. Time must be strictly
// increasing and progress non-decreasing.
func NewProfile(points []Point) (*Profile, error) {
	if len(points) == 0 {
		return nil, errors.New("speed: profile needs at least one point")
	}
	for i := 1; i < len(points); i++ {
		if points[i].T <= points[i-1].T {
			return nil, errors.Errorf("speed: time must be strictly increasing, got %f after %f", points[i].T, points[i-1].T)
		}
		if points[i].S < points[i-1].S {
			return nil, errors.Errorf("speed: progress must be non-decreasing, got %f after %f", points[i].S, points[i-1].S)
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Profile{points: cp}, nil
}

// TotalTime returns the elapsed time covered by the profile.
func (p *Profile) TotalTime() float64 {
	return p.points[len(p.points)-1].T - p.points[0].T
}

// EvaluateByTime interpolates the profile at elapsed time t. It reports
// ok=false when t falls outside the covered horizon.
func (p *Profile) EvaluateByTime(t float64) (Point, bool) {
	first, last := p.points[0], p.points[len(p.points)-1]
	if t < first.T || t > last.T {
		return Point{}, false
	}
	i := sort.Search(len(p.points), func(i int) bool { return p.points[i].T >= t })
	if i == 0 {
		return first, true
	}
	lo, hi := p.points[i-1], p.points[i]
	ratio := (t - lo.T) / (hi.T - lo.T)
	return Point{
		T: t,
		S: lo.S + ratio*(hi.S-lo.S),
		V: lo.V + ratio*(hi.V-lo.V),
	}, true
}
