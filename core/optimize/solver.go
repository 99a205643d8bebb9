package optimize

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/tanishpoddar/logitrack/core/model"
)

// rawSolution carries per-variable allocations out of the bounded solve,
// before assembly into the result record.
type rawSolution struct {
	values     []float64 // one entry per formulation variable
	status     model.SolveStatus
	diagnostic string
}

// solveSimplex solves the program to proven optimality using the simplex
// algorithm. It blocks until the solver terminates.
func solveSimplex(f *Formulation) ([]float64, error) {
	c, a, b := f.standardForm()
	_, x, err := lp.Simplex(c, a, b, 1e-7, nil)
	if err != nil {
		return nil, err
	}
	return x[:f.NumVariables()], nil
}

// lpSolve points to the function used to solve the LP. It can be overridden
// in tests to simulate solver failures.
var lpSolve = solveSimplex

// solveBounded runs the simplex solver under a hard wall-clock budget.
// If the budget expires or the backend fails, a greedy allocation is
// produced instead and reported as Feasible. The detached solver goroutine
// is left to finish on its own; its result is discarded.
func solveBounded(f *Formulation, timeLimit time.Duration) rawSolution {
	if f.Empty() {
		return rawSolution{status: model.SolveOptimal}
	}

	type outcome struct {
		vals []float64
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("solver panic: %v", r)}
			}
		}()
		vals, err := lpSolve(f)
		ch <- outcome{vals: vals, err: err}
	}()

	timer := time.NewTimer(timeLimit)
	defer timer.Stop()

	select {
	case out := <-ch:
		if out.err != nil {
			return greedySolution(f, fmt.Sprintf("simplex failed: %v; greedy fallback applied", out.err))
		}
		// Solver output may overshoot the rows by a rounding epsilon.
		return rawSolution{values: clampToConstraints(f, out.vals), status: model.SolveOptimal}
	case <-timer.C:
		return greedySolution(f, "time budget expired before optimality was proven; greedy fallback applied")
	}
}

// greedySolution computes a feasible allocation without the LP backend:
// orders by descending priority, warehouses by ascending unit cost.
func greedySolution(f *Formulation, diagnostic string) (sol rawSolution) {
	defer func() {
		if r := recover(); r != nil {
			sol = rawSolution{status: model.SolveTimedOut, diagnostic: fmt.Sprintf("fallback failed: %v", r)}
		}
	}()

	// Candidate variables grouped per order.
	byOrder := make([][]int, len(f.orders))
	for i, p := range f.pairs {
		byOrder[p.oi] = append(byOrder[p.oi], i)
	}

	orderIdx := make([]int, len(f.orders))
	for i := range orderIdx {
		orderIdx[i] = i
	}
	sort.SliceStable(orderIdx, func(a, b int) bool {
		return f.priority[orderIdx[a]] > f.priority[orderIdx[b]]
	})

	stock := make([]float64, len(f.warehouses))
	for wi, w := range f.warehouses {
		stock[wi] = float64(w.CurrentStock)
	}

	values := make([]float64, len(f.pairs))
	for _, oi := range orderIdx {
		vars := append([]int(nil), byOrder[oi]...)
		sort.SliceStable(vars, func(a, b int) bool {
			return f.costs[vars[a]] < f.costs[vars[b]]
		})
		remaining := float64(f.orders[oi].Quantity)
		for _, vi := range vars {
			if remaining <= 0 {
				break
			}
			wi := f.pairs[vi].wi
			take := remaining
			if stock[wi] < take {
				take = stock[wi]
			}
			if take <= 0 {
				continue
			}
			values[vi] += take
			stock[wi] -= take
			remaining -= take
		}
	}
	return rawSolution{values: values, status: model.SolveFeasible, diagnostic: diagnostic}
}

// clampToConstraints zeroes negative values and caps each variable at the
// remaining supply and demand, scanning in variable order. The returned
// slice always satisfies the supply and demand rows.
func clampToConstraints(f *Formulation, vals []float64) []float64 {
	supply := make([]float64, len(f.warehouses))
	for wi, w := range f.warehouses {
		supply[wi] = float64(w.CurrentStock)
	}
	demand := make([]float64, len(f.orders))
	for oi, o := range f.orders {
		demand[oi] = float64(o.Quantity)
	}

	out := make([]float64, len(f.pairs))
	for i, p := range f.pairs {
		v := 0.0
		if i < len(vals) {
			v = vals[i]
		}
		if v < 0 {
			v = 0
		}
		if v > supply[p.wi] {
			v = supply[p.wi]
		}
		if v > demand[p.oi] {
			v = demand[p.oi]
		}
		out[i] = v
		supply[p.wi] -= v
		demand[p.oi] -= v
	}
	return out
}
