package config

import (
	"fmt"
	"time"

	"github.com/tanishpoddar/logitrack/core/cost"
	"github.com/tanishpoddar/logitrack/core/model"
	"github.com/tanishpoddar/logitrack/core/runlog"
)

// SolverConfig defines settings for the allocation optimizer.
type SolverConfig struct {
	// TimeLimitSeconds bounds each optimization run. Accepted range is 5 to 60.
	TimeLimitSeconds int `json:"time_limit_seconds"`
	// PriorityWeight tunes how strongly urgent orders are favoured:
	// "Low", "Medium" or "High".
	PriorityWeight string `json:"priority_weight"`
	// PerKmRate is the transport cost per unit per kilometre.
	PerKmRate float64 `json:"per_km_rate"`
	// FallbackDistanceKm is the penalty distance used when coordinates
	// are missing or invalid.
	FallbackDistanceKm float64 `json:"fallback_distance_km"`
	// RunLogCapacity caps how many finished runs are kept in memory.
	RunLogCapacity int `json:"run_log_capacity"`
}

// SetDefaults applies sane defaults.
func (c *SolverConfig) SetDefaults() {
	if c.TimeLimitSeconds == 0 {
		c.TimeLimitSeconds = 20
	}
	if c.PriorityWeight == "" {
		c.PriorityWeight = "Medium"
	}
	if c.PerKmRate == 0 {
		c.PerKmRate = cost.DefaultPerKmRate
	}
	if c.FallbackDistanceKm == 0 {
		c.FallbackDistanceKm = cost.DefaultFallbackDistanceKm
	}
	if c.RunLogCapacity == 0 {
		c.RunLogCapacity = runlog.DefaultCapacity
	}
}

// Validate checks mandatory fields and ranges.
func (c SolverConfig) Validate() error {
	if c.TimeLimitSeconds < 5 || c.TimeLimitSeconds > 60 {
		return fmt.Errorf("time_limit_seconds must be between 5 and 60, got %d", c.TimeLimitSeconds)
	}
	if _, ok := model.PriorityWeightFromString(c.PriorityWeight); !ok {
		return fmt.Errorf("unknown priority_weight %q", c.PriorityWeight)
	}
	if c.PerKmRate <= 0 {
		return fmt.Errorf("per_km_rate must be positive")
	}
	if c.FallbackDistanceKm <= 0 {
		return fmt.Errorf("fallback_distance_km must be positive")
	}
	if c.RunLogCapacity < 1 {
		return fmt.Errorf("run_log_capacity must be at least 1")
	}
	return nil
}

// TimeLimit returns the configured budget as a duration.
func (c SolverConfig) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitSeconds) * time.Second
}

// Weight returns the parsed priority weight level.
func (c SolverConfig) Weight() model.PriorityWeight {
	w, ok := model.PriorityWeightFromString(c.PriorityWeight)
	if !ok {
		return model.WeightMedium
	}
	return w
}
