package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tanishpoddar/logitrack/core/cost"
	"github.com/tanishpoddar/logitrack/core/model"
)

// pair identifies one decision variable x[w,o]: ship from warehouse wi to
// order oi.
type pair struct {
	wi, oi int
}

// Formulation is the allocation problem expressed as a linear program in
// general form: minimize obj·x subject to G·x ≤ h, x ≥ 0. Supply rows come
// first (one per warehouse), demand rows follow (one per order).
type Formulation struct {
	warehouses []model.Warehouse
	orders     []model.Order

	pairs    []pair
	costs    []float64 // unit shipping cost per variable
	obj      []float64 // objective coefficient per variable
	priority []float64 // priority score per order
}

// NewFormulation builds the linear program for the given snapshot. Decision
// variables exist only for pairs whose cost is finite; the cost model is
// expected to bound degenerate geodata, so in practice every pair gets a
// variable.
//
// The objective is cost(w,o) − priority(o) per shipped unit. The priority
// reward is scaled above the largest pair cost so that serving demand always
// beats leaving it unserved; cost then decides which warehouse ships, and
// the priority multipliers decide which orders win under scarcity.
func NewFormulation(warehouses []model.Warehouse, orders []model.Order, cm cost.Model, pw cost.Weighter) *Formulation {
	f := &Formulation{warehouses: warehouses, orders: orders}

	unitCosts := make([]float64, 0, len(warehouses)*len(orders))
	maxCost := 0.0
	for _, w := range warehouses {
		for _, o := range orders {
			c := cm.Cost(w, o)
			unitCosts = append(unitCosts, c)
			if !math.IsNaN(c) && !math.IsInf(c, 0) && c > maxCost {
				maxCost = c
			}
		}
	}

	f.priority = make([]float64, len(orders))
	for oi, o := range orders {
		f.priority[oi] = pw.Weight(o) * (maxCost + 1)
	}

	for wi := range warehouses {
		for oi := range orders {
			c := unitCosts[wi*len(orders)+oi]
			if math.IsNaN(c) || math.IsInf(c, 0) {
				continue
			}
			f.pairs = append(f.pairs, pair{wi: wi, oi: oi})
			f.costs = append(f.costs, c)
			f.obj = append(f.obj, c-f.priority[oi])
		}
	}
	return f
}

// Empty reports whether the program has no decision variables, in which
// case the empty allocation is trivially optimal.
func (f *Formulation) Empty() bool { return len(f.pairs) == 0 }

// NumVariables returns the number of decision variables.
func (f *Formulation) NumVariables() int { return len(f.pairs) }

// standardForm converts the program to the equality form consumed by the
// simplex solver by appending one slack variable per constraint row:
// minimize c·x subject to A·x = b, x ≥ 0.
func (f *Formulation) standardForm() (c []float64, a *mat.Dense, b []float64) {
	nVar := len(f.pairs)
	nRow := len(f.warehouses) + len(f.orders)

	c = make([]float64, nVar+nRow)
	copy(c, f.obj)

	a = mat.NewDense(nRow, nVar+nRow, nil)
	b = make([]float64, nRow)
	for i, p := range f.pairs {
		a.Set(p.wi, i, 1)                   // supply row
		a.Set(len(f.warehouses)+p.oi, i, 1) // demand row
	}
	for r := 0; r < nRow; r++ {
		a.Set(r, nVar+r, 1) // slack
	}
	for wi, w := range f.warehouses {
		b[wi] = float64(w.CurrentStock)
	}
	for oi, o := range f.orders {
		b[len(f.warehouses)+oi] = float64(o.Quantity)
	}
	return c, a, b
}
