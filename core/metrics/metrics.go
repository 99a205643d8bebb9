package metrics

import (
	"time"

	"github.com/tanishpoddar/logitrack/core/model"
)

// OptimizationEvent summarises one optimization run for observability
// purposes.
type OptimizationEvent struct {
	RunID           string
	Status          model.SolveStatus
	TotalCost       float64
	SolvingTime     time.Duration
	FulfillmentRate float64
	Warehouses      int
	Orders          int
	Unfulfilled     int
	Time            time.Time
}

// Sink records optimization runs.
type Sink interface {
	RecordOptimization(ev OptimizationEvent) error
}

// UtilizationEvent is a per-warehouse capacity snapshot after a run.
type UtilizationEvent struct {
	RunID       string
	WarehouseID string
	Used        int
	Total       int
	Percentage  float64
	Time        time.Time
}

// UtilizationRecorder is implemented by sinks able to record per-warehouse
// utilization.
type UtilizationRecorder interface {
	RecordUtilization(evs []UtilizationEvent) error
}

// RejectedInputEvent counts runs rejected before formulation.
type RejectedInputEvent struct {
	Reason string
	Time   time.Time
}

// RejectedInputRecorder records rejected runs.
type RejectedInputRecorder interface {
	RecordRejectedInput(ev RejectedInputEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordOptimization(OptimizationEvent) error   { return nil }
func (NopSink) RecordUtilization([]UtilizationEvent) error   { return nil }
func (NopSink) RecordRejectedInput(RejectedInputEvent) error { return nil }
