package obstacle

import (
	"sort"

	"github.com/golang/geo/r2"

	"github.com/roadgraph/dppath/refline"
	"github.com/roadgraph/dppath/spatialmath"
)

// TimedPose is one sample of a predicted obstacle track.
type TimedPose struct {
	T       float64  `json:"t"`
	Pos     r2.Point `json:"pos"`
	Heading float64  `json:"heading"`
}

// Moving is an obstacle with a predicted track. Poses between track samples
// are linearly interpolated; outside the track the nearest pose is held.
type Moving struct {
	Name     string
	Kind     Category
	Boundary refline.SLBoundary
	Length   float64
	Width    float64
	// Track must be ordered by strictly increasing time.
	Track   []TimedPose
	Ignored bool
	Stop    bool
}

// ID returns the obstacle identifier.
func (m *Moving) ID() string { return m.Name }

// IsVirtual always reports false; predicted tracks only exist for real objects.
func (m *Moving) IsVirtual() bool { return false }

// IsStatic always reports false.
func (m *Moving) IsStatic() bool { return false }

// IsIgnored reports whether the decision module ruled this obstacle out.
func (m *Moving) IsIgnored() bool { return m.Ignored }

// HasStopDecision reports whether the obstacle carries a stop decision.
func (m *Moving) HasStopDecision() bool { return m.Stop }

// Category returns the perception class.
func (m *Moving) Category() Category { return m.Kind }

// SLBoundary returns the current curvilinear footprint.
func (m *Moving) SLBoundary() refline.SLBoundary { return m.Boundary }

// BoxAtTime interpolates the track at elapsed time t and returns the
// obstacle's oriented bounding box at that pose.
func (m *Moving) BoxAtTime(t float64) spatialmath.Box2 {
	pose := m.poseAtTime(t)
	return spatialmath.NewBox2(pose.Pos, pose.Heading, m.Length, m.Width)
}

func (m *Moving) poseAtTime(t float64) TimedPose {
	if len(m.Track) == 0 {
		return TimedPose{}
	}
	first, last := m.Track[0], m.Track[len(m.Track)-1]
	if t <= first.T {
		return first
	}
	if t >= last.T {
		return last
	}
	i := sort.Search(len(m.Track), func(i int) bool { return m.Track[i].T >= t })
	lo, hi := m.Track[i-1], m.Track[i]
	ratio := (t - lo.T) / (hi.T - lo.T)
	return TimedPose{
		T:       t,
		Pos:     lo.Pos.Add(hi.Pos.Sub(lo.Pos).Mul(ratio)),
		Heading: spatialmath.NormalizeAngle(lo.Heading + ratio*spatialmath.NormalizeAngle(hi.Heading-lo.Heading)),
	}
}
