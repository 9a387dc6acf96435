// Package scenario loads planning scenarios from JSON and builds the
// collaborators a cost oracle needs to evaluate them.
package scenario

import (
	"encoding/json"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/roadgraph/dppath/curve"
	"github.com/roadgraph/dppath/obstacle"
	"github.com/roadgraph/dppath/refline"
	"github.com/roadgraph/dppath/spatialmath"
	"github.com/roadgraph/dppath/speed"
	"github.com/roadgraph/dppath/trajcost"
)

// Lane describes the reference line as waypoints with constant half-widths.
type Lane struct {
	Waypoints  []r2.Point `json:"waypoints"`
	LeftWidth  float64    `json:"left_width"`
	RightWidth float64    `json:"right_width"`
}

// InitState is the ego's lateral state at the start of the segment.
type InitState struct {
	S          float64 `json:"s"`
	L          float64 `json:"l"`
	Dl         float64 `json:"dl"`
	Ddl        float64 `json:"ddl"`
	ChangeLane bool    `json:"change_lane"`
}

// ObstacleSpec describes one obstacle. A spec with a predicted track is a
// moving obstacle; anything else is static.
type ObstacleSpec struct {
	Name     string               `json:"name"`
	Category string               `json:"category"`
	Boundary refline.SLBoundary   `json:"boundary"`
	Virtual  bool                 `json:"virtual,omitempty"`
	Ignored  bool                 `json:"ignored,omitempty"`
	Stop     bool                 `json:"stop,omitempty"`
	Length   float64              `json:"length,omitempty"`
	Width    float64              `json:"width,omitempty"`
	Track    []obstacle.TimedPose `json:"track,omitempty"`
}

// CandidateSpec describes one quintic candidate by its end state over a
// segment. The start state comes from the scenario's init state.
type CandidateSpec struct {
	EndL       float64 `json:"end_l"`
	EndDl      float64 `json:"end_dl,omitempty"`
	EndDdl     float64 `json:"end_ddl,omitempty"`
	StartS     float64 `json:"start_s"`
	EndS       float64 `json:"end_s"`
	CurrLevel  uint32  `json:"curr_level"`
	TotalLevel uint32  `json:"total_level"`
}

// Scenario is the root of the JSON schema. Config is optional; a missing
// config falls back to the stock tuning.
type Scenario struct {
	Lane        Lane                  `json:"lane"`
	Vehicle     trajcost.VehicleParam `json:"vehicle"`
	Init        InitState             `json:"init"`
	Obstacles   []ObstacleSpec        `json:"obstacles,omitempty"`
	SpeedPoints []speed.Point         `json:"speed_points"`
	Candidates  []CandidateSpec       `json:"candidates"`
	Config      *trajcost.Config      `json:"config,omitempty"`
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario: cannot read %q", path)
	}
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrapf(err, "scenario: cannot parse %q", path)
	}
	return &sc, nil
}

// Build assembles the collaborators and returns a ready oracle along with the
// fitted candidate curves, index-aligned with the scenario's candidate specs.
func (sc *Scenario) Build(logger golog.Logger) (*trajcost.TrajectoryCost, []trajcost.Candidate, error) {
	line, err := refline.NewPolyline(sc.Lane.Waypoints, sc.Lane.LeftWidth, sc.Lane.RightWidth)
	if err != nil {
		return nil, nil, err
	}
	profile, err := speed.NewProfile(sc.SpeedPoints)
	if err != nil {
		return nil, nil, err
	}

	obstacles := make([]obstacle.Obstacle, 0, len(sc.Obstacles))
	for _, spec := range sc.Obstacles {
		obs, err := spec.build(line)
		if err != nil {
			return nil, nil, err
		}
		obstacles = append(obstacles, obs)
	}

	initSL := refline.SLPoint{S: sc.Init.S, L: sc.Init.L}
	adcBoundary := refline.SLBoundary{
		StartS: sc.Init.S - sc.Vehicle.BackEdgeToCenter,
		EndS:   sc.Init.S + sc.Vehicle.FrontEdgeToCenter,
		StartL: sc.Init.L - sc.Vehicle.RightEdgeToCenter,
		EndL:   sc.Init.L + sc.Vehicle.LeftEdgeToCenter,
	}

	cfg := sc.Config
	if cfg == nil {
		cfg = trajcost.DefaultConfig()
	}

	oracle, err := trajcost.New(cfg, line, sc.Init.ChangeLane, obstacles, &sc.Vehicle, profile, initSL, adcBoundary, logger)
	if err != nil {
		return nil, nil, err
	}

	candidates := make([]trajcost.Candidate, 0, len(sc.Candidates))
	for i, spec := range sc.Candidates {
		q, err := curve.NewQuintic(
			sc.Init.L, sc.Init.Dl, sc.Init.Ddl,
			spec.EndL, spec.EndDl, spec.EndDdl,
			spec.EndS-spec.StartS)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "scenario: candidate %d", i)
		}
		candidates = append(candidates, trajcost.Candidate{
			Curve:      q,
			StartS:     spec.StartS,
			EndS:       spec.EndS,
			CurrLevel:  spec.CurrLevel,
			TotalLevel: spec.TotalLevel,
		})
	}
	return oracle, candidates, nil
}

func (spec *ObstacleSpec) build(line refline.ReferenceLine) (obstacle.Obstacle, error) {
	kind, err := obstacle.ParseCategory(spec.Category)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario: obstacle %q", spec.Name)
	}
	if len(spec.Track) == 0 {
		return &obstacle.Static{
			Name:     spec.Name,
			Kind:     kind,
			Boundary: spec.Boundary,
			Box:      staticBox(line, spec.Boundary),
			Virtual:  spec.Virtual,
			Ignored:  spec.Ignored,
			Stop:     spec.Stop,
		}, nil
	}
	if spec.Length <= 0 || spec.Width <= 0 {
		return nil, errors.Errorf("scenario: moving obstacle %q needs positive dimensions, got %fx%f",
			spec.Name, spec.Length, spec.Width)
	}
	for i := 1; i < len(spec.Track); i++ {
		if spec.Track[i].T <= spec.Track[i-1].T {
			return nil, errors.Errorf("scenario: moving obstacle %q track times must strictly increase", spec.Name)
		}
	}
	return &obstacle.Moving{
		Name:     spec.Name,
		Kind:     kind,
		Boundary: spec.Boundary,
		Length:   spec.Length,
		Width:    spec.Width,
		Track:    spec.Track,
		Ignored:  spec.Ignored,
		Stop:     spec.Stop,
	}, nil
}

// staticBox places the obstacle's oriented box at the footprint center,
// aligned with the reference line. Only moving obstacles are queried for
// boxes during evaluation, so this is a faithful stand-in for display and
// debugging rather than a cost input.
func staticBox(line refline.ReferenceLine, bound refline.SLBoundary) spatialmath.Box2 {
	midS := (bound.StartS + bound.EndS) / 2
	midL := (bound.StartL + bound.EndL) / 2
	center := line.SLToXY(refline.SLPoint{S: midS, L: midL})
	return spatialmath.NewBox2(center, line.Heading(midS), bound.EndS-bound.StartS, bound.EndL-bound.StartL)
}
