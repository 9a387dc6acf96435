package refline

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/roadgraph/dppath/spatialmath"
	"github.com/roadgraph/dppath/utils"
)

// Polyline is a ReferenceLine backed by a sequence of waypoints with constant
// lane half-widths. Headings follow the segment directions and curvature is
// the finite difference of heading over arclength at the interior vertices.
type Polyline struct {
	points     []r2.Point
	s          []float64
	headings   []float64
	curvatures []float64
	leftWidth  float64
	rightWidth float64
}

// NewPolyline builds a reference line through the given waypoints.
func NewPolyline(points []r2.Point, leftWidth, rightWidth float64) (*Polyline, error) {
	if len(points) < 2 {
		return nil, errors.New("refline: need at least two waypoints")
	}
	if leftWidth <= 0 || rightWidth <= 0 {
		return nil, errors.Errorf("refline: lane widths must be positive, got %f/%f", leftWidth, rightWidth)
	}

	s := make([]float64, len(points))
	headings := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		seg := points[i].Sub(points[i-1])
		segLen := seg.Norm()
		if utils.Float64AlmostEqual(segLen, 0, 1e-9) {
			return nil, errors.Errorf("refline: duplicate waypoint at index %d", i)
		}
		s[i] = s[i-1] + segLen
		headings[i-1] = math.Atan2(seg.Y, seg.X)
	}
	headings[len(points)-1] = headings[len(points)-2]

	curvatures := make([]float64, len(points))
	for i := 1; i < len(points)-1; i++ {
		ds := (s[i+1] - s[i-1]) / 2
		curvatures[i] = spatialmath.NormalizeAngle(headings[i]-headings[i-1]) / ds
	}

	return &Polyline{
		points:     points,
		s:          s,
		headings:   headings,
		curvatures: curvatures,
		leftWidth:  leftWidth,
		rightWidth: rightWidth,
	}, nil
}

// NewStraight builds a straight reference line of the given length along the
// x axis, starting at the origin.
func NewStraight(length, leftWidth, rightWidth float64) (*Polyline, error) {
	if length <= 0 {
		return nil, errors.Errorf("refline: length must be positive, got %f", length)
	}
	return NewPolyline([]r2.Point{{}, {X: length}}, leftWidth, rightWidth)
}

// Length returns the total arclength covered by the line.
func (p *Polyline) Length() float64 {
	return p.s[len(p.s)-1]
}

// LaneWidth returns the drivable half-widths on each side of the line at s.
func (p *Polyline) LaneWidth(float64) (float64, float64) {
	return p.leftWidth, p.rightWidth
}

// segmentIndex returns the index of the segment containing arclength s,
// clamped to the line's range.
func (p *Polyline) segmentIndex(s float64) int {
	i := sort.SearchFloat64s(p.s, s)
	if i > 0 {
		i--
	}
	if i > len(p.points)-2 {
		i = len(p.points) - 2
	}
	return i
}

// Heading returns the tangent direction of the line at s.
func (p *Polyline) Heading(s float64) float64 {
	return p.headings[p.segmentIndex(s)]
}

// Curvature returns the signed curvature of the line at s, interpolated
// between the vertex curvatures of the containing segment.
func (p *Polyline) Curvature(s float64) float64 {
	i := p.segmentIndex(s)
	segLen := p.s[i+1] - p.s[i]
	t := (s - p.s[i]) / segLen
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.curvatures[i] + t*(p.curvatures[i+1]-p.curvatures[i])
}

// SLToXY projects a curvilinear point to Cartesian coordinates by walking to
// arclength s and stepping l along the left normal.
func (p *Polyline) SLToXY(sl SLPoint) r2.Point {
	i := p.segmentIndex(sl.S)
	segLen := p.s[i+1] - p.s[i]
	t := (sl.S - p.s[i]) / segLen
	base := p.points[i].Add(p.points[i+1].Sub(p.points[i]).Mul(t))
	h := p.headings[i]
	normal := r2.Point{X: -math.Sin(h), Y: math.Cos(h)}
	return base.Add(normal.Mul(sl.L))
}

// XYToSL projects a Cartesian point back into the curvilinear frame by
// finding the closest segment projection. The lateral sign follows the side
// of the line the point lies on.
func (p *Polyline) XYToSL(pt r2.Point) SLPoint {
	best := SLPoint{}
	bestDist := math.Inf(1)
	for i := 0; i < len(p.points)-1; i++ {
		a, b := p.points[i], p.points[i+1]
		ab := b.Sub(a)
		segLen2 := ab.Dot(ab)
		t := pt.Sub(a).Dot(ab) / segLen2
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		proj := a.Add(ab.Mul(t))
		offset := pt.Sub(proj)
		dist := offset.Norm()
		if dist < bestDist {
			bestDist = dist
			l := dist
			if ab.Cross(offset) < 0 {
				l = -l
			}
			best = SLPoint{S: p.s[i] + t*math.Sqrt(segLen2), L: l}
		}
	}
	return best
}
