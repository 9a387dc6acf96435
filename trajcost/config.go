package trajcost

import "github.com/pkg/errors"

// Config holds the named cost coefficients and thresholds of the oracle. All
// values are read-only inputs; the oracle never mutates them.
type Config struct {
	// PathResolution is the spatial sampling step for the smoothness and
	// static obstacle scans.
	PathResolution float64 `json:"path_resolution"`
	// EvalTimeInterval is the time sampling step shared by the classifier's
	// dynamic box sequences and the dynamic evaluator.
	EvalTimeInterval float64 `json:"eval_time_interval"`

	PathLCost        float64 `json:"path_l_cost"`
	PathLCostParamL0 float64 `json:"path_l_cost_param_l0"`
	PathLCostParamB  float64 `json:"path_l_cost_param_b"`
	PathLCostParamK  float64 `json:"path_l_cost_param_k"`
	PathDlCost       float64 `json:"path_dl_cost"`
	PathDdlCost      float64 `json:"path_ddl_cost"`
	PathEndLCost     float64 `json:"path_end_l_cost"`

	ObstacleCollisionCost     float64 `json:"obstacle_collision_cost"`
	ObstacleCollisionDistance float64 `json:"obstacle_collision_distance"`
	ObstacleIgnoreDistance    float64 `json:"obstacle_ignore_distance"`
	ObstacleRiskDistance      float64 `json:"obstacle_risk_distance"`

	// LateralIgnoreBuffer widens the ego extent when deciding whether an
	// obstacle is laterally relevant at all.
	LateralIgnoreBuffer float64 `json:"lateral_ignore_buffer"`
	// PredictionTotalTime caps the dynamic prediction horizon.
	PredictionTotalTime float64 `json:"prediction_total_time"`
}

// DefaultConfig returns the stock tuning for the oracle.
func DefaultConfig() *Config {
	return &Config{
		PathResolution:            1.0,
		EvalTimeInterval:          0.1,
		PathLCost:                 6.5,
		PathLCostParamL0:          1.50,
		PathLCostParamB:           0.40,
		PathLCostParamK:           1.50,
		PathDlCost:                8000,
		PathDdlCost:               50,
		PathEndLCost:              10000,
		ObstacleCollisionCost:     1e8,
		ObstacleCollisionDistance: 0.5,
		ObstacleIgnoreDistance:    20,
		ObstacleRiskDistance:      2.0,
		LateralIgnoreBuffer:       3.0,
		PredictionTotalTime:       5.0,
	}
}

// Validate checks that the coefficients form a usable tuning.
func (c *Config) Validate() error {
	if c.PathResolution <= 0 {
		return errors.Errorf("trajcost: path resolution must be positive, got %f", c.PathResolution)
	}
	if c.EvalTimeInterval <= 0 {
		return errors.Errorf("trajcost: eval time interval must be positive, got %f", c.EvalTimeInterval)
	}
	if c.PredictionTotalTime < 0 {
		return errors.Errorf("trajcost: prediction total time must be non-negative, got %f", c.PredictionTotalTime)
	}
	if c.PathLCostParamB < 0 || c.PathLCostParamB > 1 {
		return errors.Errorf("trajcost: path l cost param b must stay within [0, 1], got %f", c.PathLCostParamB)
	}
	if c.LateralIgnoreBuffer < 0 {
		return errors.Errorf("trajcost: lateral ignore buffer must be non-negative, got %f", c.LateralIgnoreBuffer)
	}
	if c.PathLCost < 0 || c.PathDlCost < 0 || c.PathDdlCost < 0 || c.PathEndLCost < 0 ||
		c.ObstacleCollisionCost < 0 {
		return errors.New("trajcost: cost weights must be non-negative")
	}
	return nil
}

// VehicleParam describes the ego footprint as edge-to-center distances plus
// overall dimensions.
type VehicleParam struct {
	FrontEdgeToCenter float64 `json:"front_edge_to_center"`
	BackEdgeToCenter  float64 `json:"back_edge_to_center"`
	LeftEdgeToCenter  float64 `json:"left_edge_to_center"`
	RightEdgeToCenter float64 `json:"right_edge_to_center"`
	Length            float64 `json:"length"`
	Width             float64 `json:"width"`
}

// Validate checks that the footprint is geometrically sensible.
func (v *VehicleParam) Validate() error {
	if v.FrontEdgeToCenter <= 0 || v.BackEdgeToCenter <= 0 || v.LeftEdgeToCenter <= 0 || v.RightEdgeToCenter <= 0 {
		return errors.New("trajcost: vehicle edge-to-center distances must be positive")
	}
	if v.Length <= 0 || v.Width <= 0 {
		return errors.Errorf("trajcost: vehicle dimensions must be positive, got %fx%f", v.Length, v.Width)
	}
	return nil
}
