package optimize

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tanishpoddar/logitrack/core/cost"
	"github.com/tanishpoddar/logitrack/core/model"
)

// constCost prices every pair identically, isolating the allocation logic
// from geography.
type constCost struct{ c float64 }

func (c constCost) Cost(model.Warehouse, model.Order) float64 { return c.c }

func newTestEngine(cm cost.Model) *Engine {
	return NewEngine(cm, nil, nil, nil)
}

func warehouse(id string, stock int) model.Warehouse {
	return model.Warehouse{ID: id, Capacity: stock, CurrentStock: stock}
}

func order(id string, qty int, status model.OrderStatus) model.Order {
	return model.Order{ID: id, ProductID: "P001", Quantity: qty, Status: status}
}

// checkInvariants asserts the conservation, cost-consistency and
// completeness-partition properties that must hold for every result.
func checkInvariants(t *testing.T, res *model.OptimizationResult, warehouses []model.Warehouse, orders []model.Order, cm cost.Model) {
	t.Helper()

	wIdx := make(map[string]model.Warehouse)
	for _, w := range warehouses {
		wIdx[w.ID] = w
	}
	oIdx := make(map[string]model.Order)
	for _, o := range orders {
		oIdx[o.ID] = o
	}

	allocatedPerOrder := make(map[string]int)
	var recomputed float64
	for wid, edges := range res.AllocationPlan {
		w, ok := wIdx[wid]
		if !ok {
			t.Fatalf("plan references unknown warehouse %s", wid)
		}
		var shipped int
		for _, e := range edges {
			o, ok := oIdx[e.OrderID]
			if !ok {
				t.Fatalf("plan references unknown order %s", e.OrderID)
			}
			if e.Quantity <= 0 {
				t.Fatalf("non-positive edge quantity %d", e.Quantity)
			}
			shipped += e.Quantity
			allocatedPerOrder[e.OrderID] += e.Quantity
			recomputed += float64(e.Quantity) * cm.Cost(w, o)
		}
		if shipped > w.CurrentStock {
			t.Fatalf("warehouse %s ships %d over stock %d", wid, shipped, w.CurrentStock)
		}
	}
	if math.Abs(recomputed-res.TotalCost) > 1e-6 {
		t.Fatalf("total cost %v does not match recomputed %v", res.TotalCost, recomputed)
	}

	unfulfilled := make(map[string]model.UnfulfilledOrder)
	for _, u := range res.UnfulfilledOrders {
		if _, dup := unfulfilled[u.OrderID]; dup {
			t.Fatalf("order %s listed twice in unfulfilled_orders", u.OrderID)
		}
		unfulfilled[u.OrderID] = u
	}
	for _, o := range orders {
		got := allocatedPerOrder[o.ID]
		if got > o.Quantity {
			t.Fatalf("order %s allocated %d over quantity %d", o.ID, got, o.Quantity)
		}
		u, listed := unfulfilled[o.ID]
		if got == o.Quantity && listed {
			t.Fatalf("fully satisfied order %s listed as unfulfilled", o.ID)
		}
		if got < o.Quantity {
			if !listed {
				t.Fatalf("order %s short by %d but not listed", o.ID, o.Quantity-got)
			}
			if u.FulfilledQuantity != got || u.Quantity != o.Quantity {
				t.Fatalf("unfulfilled record mismatch for %s: %+v (allocated %d)", o.ID, u, got)
			}
		}
	}
}

func TestOptimize_NoOrders(t *testing.T) {
	e := newTestEngine(constCost{c: 1})
	res, err := e.Optimize([]model.Warehouse{warehouse("w1", 100)}, nil, Options{TimeLimit: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != model.SolveOptimal {
		t.Fatalf("expected Optimal, got %s", res.Status)
	}
	if res.TotalCost != 0 || len(res.AllocationPlan) != 0 || len(res.UnfulfilledOrders) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if res.WarehouseUtilization["w1"].UsedCapacity != 0 {
		t.Fatalf("expected zero utilization")
	}
}

func TestOptimize_NoWarehouses(t *testing.T) {
	e := newTestEngine(constCost{c: 1})
	orders := []model.Order{order("o1", 10, model.StatusPending)}
	res, err := e.Optimize(nil, orders, Options{TimeLimit: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != model.SolveOptimal {
		t.Fatalf("expected Optimal, got %s", res.Status)
	}
	if len(res.UnfulfilledOrders) != 1 || res.UnfulfilledOrders[0].FulfilledQuantity != 0 {
		t.Fatalf("order should be wholly unfulfilled: %+v", res.UnfulfilledOrders)
	}
}

func TestOptimize_Abundance(t *testing.T) {
	const unit = 3.5
	warehouses := []model.Warehouse{warehouse("w1", 500), warehouse("w2", 500)}
	orders := []model.Order{
		order("o1", 100, model.StatusPending),
		order("o2", 150, model.StatusPending),
	}
	e := newTestEngine(constCost{c: unit})
	res, err := e.Optimize(warehouses, orders, Options{TimeLimit: 10 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != model.SolveOptimal {
		t.Fatalf("expected Optimal, got %s (%s)", res.Status, res.Diagnostic)
	}
	if len(res.UnfulfilledOrders) != 0 {
		t.Fatalf("expected full fulfilment, got %+v", res.UnfulfilledOrders)
	}
	if math.Abs(res.TotalCost-250*unit) > 1e-6 {
		t.Fatalf("expected cost %v, got %v", 250*unit, res.TotalCost)
	}
	checkInvariants(t, res, warehouses, orders, constCost{c: unit})
}

func TestOptimize_Scarcity(t *testing.T) {
	warehouses := []model.Warehouse{warehouse("w1", 100)}
	orders := []model.Order{
		order("o1", 80, model.StatusPending),
		order("o2", 80, model.StatusPending),
	}
	e := newTestEngine(constCost{c: 1})
	res, err := e.Optimize(warehouses, orders, Options{TimeLimit: 10 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var total int
	for _, edges := range res.AllocationPlan {
		for _, e := range edges {
			total += e.Quantity
		}
	}
	if total > 100 {
		t.Fatalf("allocated %d over available stock 100", total)
	}
	if len(res.UnfulfilledOrders) == 0 {
		t.Fatalf("expected at least one unfulfilled order")
	}
	var worst int
	for _, u := range res.UnfulfilledOrders {
		if short := u.Quantity - u.FulfilledQuantity; short > worst {
			worst = short
		}
	}
	if worst < 60 {
		t.Fatalf("expected a shortfall of at least 60, got %d", worst)
	}
	checkInvariants(t, res, warehouses, orders, constCost{c: 1})
}

// fulfilledQuantity sums the allocation for a single order across the plan.
func fulfilledQuantity(res *model.OptimizationResult, orderID string) int {
	var got int
	for _, edges := range res.AllocationPlan {
		for _, e := range edges {
			if e.OrderID == orderID {
				got += e.Quantity
			}
		}
	}
	return got
}

func TestOptimize_PriorityNeverHurtsUrgent(t *testing.T) {
	warehouses := []model.Warehouse{warehouse("w1", 90)}
	orders := []model.Order{
		order("urgent", 80, model.StatusUrgent),
		order("pending", 80, model.StatusPending),
	}
	e := newTestEngine(constCost{c: 2})

	low, err := e.Optimize(warehouses, orders, Options{TimeLimit: 10 * time.Second, PriorityWeight: model.WeightLow})
	if err != nil {
		t.Fatalf("low run: %v", err)
	}
	high, err := e.Optimize(warehouses, orders, Options{TimeLimit: 10 * time.Second, PriorityWeight: model.WeightHigh})
	if err != nil {
		t.Fatalf("high run: %v", err)
	}

	if fulfilledQuantity(high, "urgent") < fulfilledQuantity(low, "urgent") {
		t.Fatalf("raising the weight decreased urgent fulfilment: low=%d high=%d",
			fulfilledQuantity(low, "urgent"), fulfilledQuantity(high, "urgent"))
	}
	// Urgent demand should win the scarce stock outright.
	if fulfilledQuantity(high, "urgent") != 80 {
		t.Fatalf("urgent order should be fully served, got %d", fulfilledQuantity(high, "urgent"))
	}
}

func TestOptimize_PrefersCheaperWarehouse(t *testing.T) {
	near := model.Warehouse{ID: "near", Capacity: 200, CurrentStock: 200,
		Location: model.Location{Lat: 19.0, Lon: 72.8}}
	far := model.Warehouse{ID: "far", Capacity: 200, CurrentStock: 200,
		Location: model.Location{Lat: 1.35, Lon: 103.8}}
	o := model.Order{ID: "o1", ProductID: "P001", Quantity: 50, Status: model.StatusPending,
		DeliveryLocation: model.Location{Lat: 19.1, Lon: 72.9}}

	e := newTestEngine(cost.NewHaversineModel())
	res, err := e.Optimize([]model.Warehouse{far, near}, []model.Order{o}, Options{TimeLimit: 10 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.AllocationPlan["near"]; len(got) != 1 || got[0].Quantity != 50 {
		t.Fatalf("expected the nearby warehouse to serve the order, plan: %+v", res.AllocationPlan)
	}
}

func TestOptimize_SolverErrorFallsBackToGreedy(t *testing.T) {
	old := lpSolve
	lpSolve = func(*Formulation) ([]float64, error) { return nil, errors.New("boom") }
	defer func() { lpSolve = old }()

	warehouses := []model.Warehouse{warehouse("w1", 100)}
	orders := []model.Order{order("o1", 60, model.StatusPending)}
	e := newTestEngine(constCost{c: 1})
	res, err := e.Optimize(warehouses, orders, Options{TimeLimit: 10 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != model.SolveFeasible {
		t.Fatalf("expected Feasible, got %s", res.Status)
	}
	if res.Diagnostic == "" {
		t.Fatalf("expected a diagnostic message")
	}
	if fulfilledQuantity(res, "o1") != 60 {
		t.Fatalf("fallback should still allocate, got %d", fulfilledQuantity(res, "o1"))
	}
	checkInvariants(t, res, warehouses, orders, constCost{c: 1})
}

func TestOptimize_SolverPanicIsRecovered(t *testing.T) {
	old := lpSolve
	lpSolve = func(*Formulation) ([]float64, error) { panic("backend blew up") }
	defer func() { lpSolve = old }()

	e := newTestEngine(constCost{c: 1})
	res, err := e.Optimize([]model.Warehouse{warehouse("w1", 10)},
		[]model.Order{order("o1", 5, model.StatusPending)}, Options{TimeLimit: 10 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != model.SolveFeasible {
		t.Fatalf("expected Feasible after recovered panic, got %s", res.Status)
	}
}

func TestOptimize_TimeBudget(t *testing.T) {
	old := lpSolve
	lpSolve = func(f *Formulation) ([]float64, error) {
		time.Sleep(5 * time.Second)
		return solveSimplex(f)
	}
	defer func() { lpSolve = old }()

	warehouses := make([]model.Warehouse, 20)
	for i := range warehouses {
		warehouses[i] = warehouse(string(rune('A'+i)), 1000)
	}
	orders := make([]model.Order, 50)
	for i := range orders {
		orders[i] = order("o"+string(rune('A'+i%26))+string(rune('a'+i/26)), 100, model.StatusPending)
	}

	e := newTestEngine(constCost{c: 1})
	start := time.Now()
	res, err := e.Optimize(warehouses, orders, Options{TimeLimit: time.Second})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed > 3*time.Second {
		t.Fatalf("solve exceeded the budget by too much: %v", elapsed)
	}
	if res.Status != model.SolveFeasible && res.Status != model.SolveOptimal {
		t.Fatalf("expected Feasible or Optimal, got %s", res.Status)
	}
	checkInvariants(t, res, warehouses, orders, constCost{c: 1})
}

func TestOptimize_LargeInstanceWithinBudget(t *testing.T) {
	warehouses := make([]model.Warehouse, 15)
	for i := range warehouses {
		w := warehouse("W"+string(rune('0'+i/10))+string(rune('0'+i%10)), 500+13*i)
		w.Location = model.Location{Lat: float64(i), Lon: float64(2 * i)}
		w.StorageCostPerUnit = float64(i%5) * 0.5
		warehouses[i] = w
	}
	orders := make([]model.Order, 60)
	for i := range orders {
		status := model.StatusPending
		if i%4 == 0 {
			status = model.StatusUrgent
		}
		o := order("O"+string(rune('0'+i/10))+string(rune('0'+i%10)), 10+i%37, status)
		o.DeliveryLocation = model.Location{Lat: float64(i % 30), Lon: float64(i % 50)}
		orders[i] = o
	}

	cm := cost.NewHaversineModel()
	e := newTestEngine(cm)
	res, err := e.Optimize(warehouses, orders, Options{TimeLimit: 30 * time.Second, PriorityWeight: model.WeightMedium})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkInvariants(t, res, warehouses, orders, cm)
	if res.Status == model.SolveOptimal && len(res.UnfulfilledOrders) != 0 {
		// Aggregate stock far exceeds demand here.
		t.Fatalf("expected full fulfilment on an abundant instance, got %d unfulfilled", len(res.UnfulfilledOrders))
	}
}

func TestOptimize_InvalidInput(t *testing.T) {
	e := newTestEngine(constCost{c: 1})
	cases := []struct {
		name       string
		warehouses []model.Warehouse
		orders     []model.Order
	}{
		{"negative stock", []model.Warehouse{{ID: "w1", Capacity: 10, CurrentStock: -5}}, nil},
		{"stock over capacity", []model.Warehouse{{ID: "w1", Capacity: 10, CurrentStock: 20}}, nil},
		{"zero quantity", []model.Warehouse{warehouse("w1", 10)}, []model.Order{order("o1", 0, model.StatusPending)}},
		{"duplicate warehouse", []model.Warehouse{warehouse("w1", 10), warehouse("w1", 10)}, nil},
		{"duplicate order", []model.Warehouse{warehouse("w1", 10)},
			[]model.Order{order("o1", 1, model.StatusPending), order("o1", 2, model.StatusPending)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Optimize(tc.warehouses, tc.orders, Options{TimeLimit: time.Second})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
