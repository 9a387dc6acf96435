// Package obstacle defines the perceived obstacle collaborators consumed by
// the path cost oracle. Obstacles are read-only for a planning cycle: the
// oracle classifies them once at construction and never mutates them.
package obstacle

import (
	"github.com/pkg/errors"

	"github.com/roadgraph/dppath/refline"
	"github.com/roadgraph/dppath/spatialmath"
)

// Category is the perception class of an obstacle.
type Category int

// The perception classes relevant to path cost classification.
const (
	CategoryUnknown Category = iota
	CategoryVehicle
	CategoryPedestrian
	CategoryBicycle
)

// ParseCategory converts a scenario string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "", "unknown":
		return CategoryUnknown, nil
	case "vehicle":
		return CategoryVehicle, nil
	case "pedestrian":
		return CategoryPedestrian, nil
	case "bicycle":
		return CategoryBicycle, nil
	default:
		return CategoryUnknown, errors.Errorf("obstacle: unknown category %q", s)
	}
}

// Obstacle is one perceived object in the planning snapshot.
type Obstacle interface {
	ID() string
	// IsVirtual reports a virtual obstacle injected by a decision upstream.
	IsVirtual() bool
	// IsStatic reports an obstacle with no predicted motion.
	IsStatic() bool
	// IsIgnored reports an obstacle the decision module already ruled out.
	IsIgnored() bool
	// HasStopDecision reports an obstacle handled as a hard longitudinal
	// stop constraint upstream.
	HasStopDecision() bool
	Category() Category
	// SLBoundary returns the obstacle's current curvilinear footprint.
	SLBoundary() refline.SLBoundary
	// BoxAtTime returns the predicted Cartesian bounding box at the given
	// elapsed time.
	BoxAtTime(t float64) spatialmath.Box2
}
