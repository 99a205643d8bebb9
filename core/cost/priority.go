package cost

import "github.com/tanishpoddar/logitrack/core/model"

// Weighter scores how strongly an order's fulfilment is rewarded in the
// objective. Alternative priority policies can be substituted without
// touching the formulation or the solver.
type Weighter interface {
	Weight(o model.Order) float64
}

// Lambda multipliers for the caller-selected priority weight.
const (
	lambdaLow    = 1
	lambdaMedium = 5
	lambdaHigh   = 10
)

// StatusWeighter derives a priority from the order status, scaled by the
// caller-chosen Low/Medium/High weight. Urgent orders count double.
type StatusWeighter struct {
	Level model.PriorityWeight
}

// Weight implements Weighter.
func (w StatusWeighter) Weight(o model.Order) float64 {
	base := 1.0
	if o.Status == model.StatusUrgent {
		base = 2.0
	}
	switch w.Level {
	case model.WeightMedium:
		return base * lambdaMedium
	case model.WeightHigh:
		return base * lambdaHigh
	default:
		return base * lambdaLow
	}
}
