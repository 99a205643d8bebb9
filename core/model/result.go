package model

import "fmt"

// SolveStatus reports the outcome of a bounded optimization run.
type SolveStatus int

const (
	// SolveOptimal means a proof of optimality was found within the budget.
	SolveOptimal SolveStatus = iota
	// SolveFeasible means a valid allocation was produced but optimality
	// was not proven, typically because the time budget expired.
	SolveFeasible
	// SolveInfeasible is reserved for malformed input; the natural
	// formulation always admits the zero allocation.
	SolveInfeasible
	// SolveTimedOut means no allocation of any kind was produced within
	// the budget.
	SolveTimedOut
)

// String returns the wire representation of the status.
func (s SolveStatus) String() string {
	switch s {
	case SolveOptimal:
		return "Optimal"
	case SolveFeasible:
		return "Feasible"
	case SolveInfeasible:
		return "Infeasible"
	case SolveTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so the status serialises
// as its name in JSON.
func (s SolveStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the wire representation back into a status.
func (s *SolveStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Optimal":
		*s = SolveOptimal
	case "Feasible":
		*s = SolveFeasible
	case "Infeasible":
		*s = SolveInfeasible
	case "TimedOut":
		*s = SolveTimedOut
	default:
		return fmt.Errorf("unknown solve status %q", text)
	}
	return nil
}

// AllocationEdge is one shipment of the plan: quantity units from the
// owning warehouse to OrderID. Edges are created per run and never mutated.
type AllocationEdge struct {
	OrderID  string `json:"order_id"`
	Quantity int    `json:"quantity"`
}

// Utilization summarises how much of a warehouse's capacity is consumed
// by the allocation plan.
type Utilization struct {
	UsedCapacity          int     `json:"used_capacity"`
	TotalCapacity         int     `json:"total_capacity"`
	UtilizationPercentage float64 `json:"utilization_percentage"`
}

// UnfulfilledOrder records the shortfall for an order that could not be
// fully served.
type UnfulfilledOrder struct {
	OrderID           string `json:"order_id"`
	Quantity          int    `json:"quantity"`
	FulfilledQuantity int    `json:"fulfilled_quantity"`
}

// OptimizationResult is the single structured record consumed by the
// presentation layer. Regardless of Status the invariants hold: per-warehouse
// allocations never exceed stock, per-order allocations never exceed the
// requested quantity, and TotalCost equals the recomputed sum over the edges.
type OptimizationResult struct {
	RunID                string                      `json:"run_id"`
	Status               SolveStatus                 `json:"status"`
	TotalCost            float64                     `json:"total_cost"`
	SolvingTime          float64                     `json:"solving_time"` // seconds
	AllocationPlan       map[string][]AllocationEdge `json:"allocation_plan"`
	WarehouseUtilization map[string]Utilization      `json:"warehouse_utilization"`
	UnfulfilledOrders    []UnfulfilledOrder          `json:"unfulfilled_orders"`
	Diagnostic           string                      `json:"diagnostic,omitempty"`
}

// FulfillmentRate returns the fraction of total requested units actually
// allocated. It returns 1 when nothing was requested.
func (r OptimizationResult) FulfillmentRate(orders []Order) float64 {
	var requested, allocated int
	for _, o := range orders {
		requested += o.Quantity
	}
	if requested == 0 {
		return 1
	}
	for _, edges := range r.AllocationPlan {
		for _, e := range edges {
			allocated += e.Quantity
		}
	}
	return float64(allocated) / float64(requested)
}
