package optimize

import (
	"math"
	"time"

	"github.com/tanishpoddar/logitrack/core/model"
)

// edgeThreshold filters out zero and near-zero noise emitted by floating
// point solvers.
const edgeThreshold = 1e-6

// assemble translates raw variable values into the result record. Integer
// quantities are recovered by rounding; the running supply and demand
// balances cap every edge so the conservation invariants hold by
// construction. The total cost is recomputed from the emitted edges rather
// than trusted from the solver's objective.
func assemble(f *Formulation, sol rawSolution, elapsed time.Duration) *model.OptimizationResult {
	res := &model.OptimizationResult{
		Status:               sol.status,
		SolvingTime:          elapsed.Seconds(),
		AllocationPlan:       make(map[string][]model.AllocationEdge),
		WarehouseUtilization: make(map[string]model.Utilization),
		UnfulfilledOrders:    []model.UnfulfilledOrder{},
		Diagnostic:           sol.diagnostic,
	}

	supply := make([]int, len(f.warehouses))
	for wi, w := range f.warehouses {
		supply[wi] = w.CurrentStock
	}
	demand := make([]int, len(f.orders))
	for oi, o := range f.orders {
		demand[oi] = o.Quantity
	}

	used := make([]int, len(f.warehouses))
	var total float64
	for i, p := range f.pairs {
		if i >= len(sol.values) {
			break
		}
		v := sol.values[i]
		if v < edgeThreshold {
			continue
		}
		qty := int(math.Round(v))
		if qty > supply[p.wi] {
			qty = supply[p.wi]
		}
		if qty > demand[p.oi] {
			qty = demand[p.oi]
		}
		if qty <= 0 {
			continue
		}
		supply[p.wi] -= qty
		demand[p.oi] -= qty
		used[p.wi] += qty
		total += float64(qty) * f.costs[i]

		w := f.warehouses[p.wi]
		res.AllocationPlan[w.ID] = append(res.AllocationPlan[w.ID], model.AllocationEdge{
			OrderID:  f.orders[p.oi].ID,
			Quantity: qty,
		})
	}
	res.TotalCost = total

	for wi, w := range f.warehouses {
		pct := 0.0
		if w.Capacity > 0 {
			pct = float64(used[wi]) / float64(w.Capacity) * 100
		}
		res.WarehouseUtilization[w.ID] = model.Utilization{
			UsedCapacity:          used[wi],
			TotalCapacity:         w.Capacity,
			UtilizationPercentage: pct,
		}
	}

	for oi, o := range f.orders {
		if demand[oi] > 0 {
			res.UnfulfilledOrders = append(res.UnfulfilledOrders, model.UnfulfilledOrder{
				OrderID:           o.ID,
				Quantity:          o.Quantity,
				FulfilledQuantity: o.Quantity - demand[oi],
			})
		}
	}
	return res
}
