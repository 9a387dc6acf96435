package obstacle

import (
	"github.com/roadgraph/dppath/refline"
	"github.com/roadgraph/dppath/spatialmath"
)

// Static is an obstacle with a fixed footprint for the planning horizon.
// Pedestrians and bicycles are typically represented this way as well, since
// their motion over the horizon is small relative to the ego's.
type Static struct {
	Name     string
	Kind     Category
	Boundary refline.SLBoundary
	Box      spatialmath.Box2
	Virtual  bool
	Ignored  bool
	Stop     bool
}

// ID returns the obstacle identifier.
func (s *Static) ID() string { return s.Name }

// IsVirtual reports whether this is a virtual obstacle.
func (s *Static) IsVirtual() bool { return s.Virtual }

// IsStatic always reports true.
func (s *Static) IsStatic() bool { return true }

// IsIgnored reports whether the decision module ruled this obstacle out.
func (s *Static) IsIgnored() bool { return s.Ignored }

// HasStopDecision reports whether the obstacle carries a stop decision.
func (s *Static) HasStopDecision() bool { return s.Stop }

// Category returns the perception class.
func (s *Static) Category() Category { return s.Kind }

// SLBoundary returns the current curvilinear footprint.
func (s *Static) SLBoundary() refline.SLBoundary { return s.Boundary }

// BoxAtTime returns the same bounding box for any elapsed time.
func (s *Static) BoxAtTime(float64) spatialmath.Box2 { return s.Box }
