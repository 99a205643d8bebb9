package optimize

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tanishpoddar/logitrack/core/cost"
	"github.com/tanishpoddar/logitrack/core/events"
	"github.com/tanishpoddar/logitrack/core/logger"
	"github.com/tanishpoddar/logitrack/core/metrics"
	"github.com/tanishpoddar/logitrack/core/model"
	"github.com/tanishpoddar/logitrack/internal/eventbus"
)

// ErrInvalidInput marks input rejected before formulation: missing
// identifiers, negative quantities or capacities, duplicated rows.
var ErrInvalidInput = errors.New("invalid optimizer input")

// DefaultTimeLimit applies when the caller does not pass one.
const DefaultTimeLimit = 20 * time.Second

// Options configures a single run. The time limit is a hard wall-clock
// budget passed explicitly per call; concurrent runs never share it.
type Options struct {
	TimeLimit      time.Duration
	PriorityWeight model.PriorityWeight
}

// Engine runs the full pipeline: cost model, formulation, bounded solve,
// assembly. It holds no per-run state, so a single Engine serves concurrent
// callers.
type Engine struct {
	cost cost.Model
	log  logger.Logger
	sink metrics.Sink
	bus  eventbus.EventBus
}

// NewEngine builds an engine around the given cost model. Logger, sink and
// bus may be nil.
func NewEngine(cm cost.Model, log logger.Logger, sink metrics.Sink, bus eventbus.EventBus) *Engine {
	if log == nil {
		log = logger.Nop{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{cost: cm, log: log, sink: sink, bus: bus}
}

// Optimize computes an allocation plan for the snapshot. Invalid input is
// rejected before the solver is invoked; solver trouble degrades to a
// best-effort result with an honest status instead of an error. The
// returned record always satisfies the conservation and cost invariants.
func (e *Engine) Optimize(warehouses []model.Warehouse, orders []model.Order, opts Options) (*model.OptimizationResult, error) {
	runID := uuid.NewString()
	if opts.TimeLimit <= 0 {
		opts.TimeLimit = DefaultTimeLimit
	}

	if err := validateInput(warehouses, orders); err != nil {
		e.log.Warnf("run %s rejected: %v", runID, err)
		_ = recordRejection(e.sink, err)
		if e.bus != nil {
			e.bus.Publish(events.RunRejected{RunID: runID, Err: err, Time: time.Now()})
		}
		return nil, err
	}

	e.log.Debugw("optimization run starting", map[string]any{
		"run_id":     runID,
		"warehouses": len(warehouses),
		"orders":     len(orders),
		"time_limit": opts.TimeLimit.String(),
		"weight":     opts.PriorityWeight.String(),
	})
	if e.bus != nil {
		e.bus.Publish(events.RunStarted{
			RunID:      runID,
			Warehouses: len(warehouses),
			Orders:     len(orders),
			TimeLimit:  opts.TimeLimit,
			Time:       time.Now(),
		})
	}

	start := time.Now()
	f := NewFormulation(warehouses, orders, e.cost, cost.StatusWeighter{Level: opts.PriorityWeight})
	sol := solveBounded(f, opts.TimeLimit)
	res := assemble(f, sol, time.Since(start))
	res.RunID = runID

	e.log.Infof("run %s finished: status=%s cost=%.2f time=%.3fs unfulfilled=%d",
		runID, res.Status, res.TotalCost, res.SolvingTime, len(res.UnfulfilledOrders))
	e.record(res, orders, warehouses)
	if e.bus != nil {
		e.bus.Publish(events.RunCompleted{Result: res, Time: time.Now()})
	}
	return res, nil
}

func (e *Engine) record(res *model.OptimizationResult, orders []model.Order, warehouses []model.Warehouse) {
	ev := metrics.OptimizationEvent{
		RunID:           res.RunID,
		Status:          res.Status,
		TotalCost:       res.TotalCost,
		SolvingTime:     time.Duration(res.SolvingTime * float64(time.Second)),
		FulfillmentRate: res.FulfillmentRate(orders),
		Warehouses:      len(warehouses),
		Orders:          len(orders),
		Unfulfilled:     len(res.UnfulfilledOrders),
		Time:            time.Now(),
	}
	if err := e.sink.RecordOptimization(ev); err != nil {
		e.log.Errorf("record optimization: %v", err)
	}
	if rec, ok := e.sink.(metrics.UtilizationRecorder); ok {
		evs := make([]metrics.UtilizationEvent, 0, len(res.WarehouseUtilization))
		for id, u := range res.WarehouseUtilization {
			evs = append(evs, metrics.UtilizationEvent{
				RunID:       res.RunID,
				WarehouseID: id,
				Used:        u.UsedCapacity,
				Total:       u.TotalCapacity,
				Percentage:  u.UtilizationPercentage,
				Time:        ev.Time,
			})
		}
		if err := rec.RecordUtilization(evs); err != nil {
			e.log.Errorf("record utilization: %v", err)
		}
	}
}

func recordRejection(sink metrics.Sink, err error) error {
	if rec, ok := sink.(metrics.RejectedInputRecorder); ok {
		return rec.RecordRejectedInput(metrics.RejectedInputEvent{Reason: err.Error(), Time: time.Now()})
	}
	return nil
}

func validateInput(warehouses []model.Warehouse, orders []model.Order) error {
	seenW := make(map[string]struct{}, len(warehouses))
	for _, w := range warehouses {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, dup := seenW[w.ID]; dup {
			return fmt.Errorf("%w: duplicate warehouse id %s", ErrInvalidInput, w.ID)
		}
		seenW[w.ID] = struct{}{}
	}
	seenO := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, dup := seenO[o.ID]; dup {
			return fmt.Errorf("%w: duplicate order id %s", ErrInvalidInput, o.ID)
		}
		seenO[o.ID] = struct{}{}
	}
	return nil
}
