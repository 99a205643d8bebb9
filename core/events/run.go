package events

import (
	"time"

	"github.com/tanishpoddar/logitrack/core/model"
)

// RunStarted is emitted when an optimization run begins.
type RunStarted struct {
	RunID      string
	Warehouses int
	Orders     int
	TimeLimit  time.Duration
	Time       time.Time
}

// RunCompleted is emitted once a run produced its result record.
type RunCompleted struct {
	Result *model.OptimizationResult
	Time   time.Time
}

// RunRejected is emitted when input validation fails before formulation.
type RunRejected struct {
	RunID string
	Err   error
	Time  time.Time
}
