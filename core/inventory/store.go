package inventory

import (
	"sort"
	"time"

	"github.com/tanishpoddar/logitrack/core/model"
)

// Snapshot is the typed input handed over by the data-loading side:
// warehouses and orders feed the optimizer, products and suppliers feed
// the remaining dashboard queries.
type Snapshot struct {
	Warehouses []model.Warehouse
	Orders     []model.Order
	Products   []model.Product
	Suppliers  []model.Supplier
}

// Store serves read-only queries over one inventory snapshot. It never
// mutates the snapshot, so a Store is safe for concurrent readers.
type Store struct {
	snap Snapshot
}

// NewStore builds a store over the given snapshot.
func NewStore(snap Snapshot) *Store {
	return &Store{snap: snap}
}

// Warehouses returns the warehouse table.
func (s *Store) Warehouses() []model.Warehouse {
	out := make([]model.Warehouse, len(s.snap.Warehouses))
	copy(out, s.snap.Warehouses)
	return out
}

// Orders returns the full orders table.
func (s *Store) Orders() []model.Order {
	out := make([]model.Order, len(s.snap.Orders))
	copy(out, s.snap.Orders)
	return out
}

// PendingOrders returns orders still awaiting allocation at the given
// time: their deadline has not passed yet. Urgent orders are included;
// urgency affects priority, not pendingness.
func (s *Store) PendingOrders(now time.Time) []model.Order {
	var out []model.Order
	for _, o := range s.snap.Orders {
		if o.Deadline.IsZero() || o.Deadline.After(now) {
			out = append(out, o)
		}
	}
	return out
}

// UrgentOrders returns the subset of orders flagged Urgent.
func (s *Store) UrgentOrders() []model.Order {
	var out []model.Order
	for _, o := range s.snap.Orders {
		if o.Status == model.StatusUrgent {
			out = append(out, o)
		}
	}
	return out
}

// OrderHistory returns orders whose deadline has already passed.
func (s *Store) OrderHistory(now time.Time) []model.Order {
	var out []model.Order
	for _, o := range s.snap.Orders {
		if !o.Deadline.IsZero() && !o.Deadline.After(now) {
			out = append(out, o)
		}
	}
	return out
}

// ReorderNeeds returns products whose stock level has reached the reorder
// point, sorted by how far below the point they are.
func (s *Store) ReorderNeeds() []model.Product {
	var out []model.Product
	for _, p := range s.snap.Products {
		if p.NeedsReorder() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StockLevel-out[i].ReorderPoint < out[j].StockLevel-out[j].ReorderPoint
	})
	return out
}

// WarehouseUtilization reports current stock against capacity per
// warehouse, before any optimization run.
func (s *Store) WarehouseUtilization() map[string]model.Utilization {
	out := make(map[string]model.Utilization, len(s.snap.Warehouses))
	for _, w := range s.snap.Warehouses {
		pct := 0.0
		if w.Capacity > 0 {
			pct = float64(w.CurrentStock) / float64(w.Capacity) * 100
		}
		out[w.ID] = model.Utilization{
			UsedCapacity:          w.CurrentStock,
			TotalCapacity:         w.Capacity,
			UtilizationPercentage: pct,
		}
	}
	return out
}

// SupplierPerformance returns suppliers sorted by reliability, best first.
func (s *Store) SupplierPerformance() []model.Supplier {
	out := make([]model.Supplier, len(s.snap.Suppliers))
	copy(out, s.snap.Suppliers)
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReliabilityScore != out[j].ReliabilityScore {
			return out[i].ReliabilityScore > out[j].ReliabilityScore
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Status is the overview summary shown at the top of the dashboard.
type Status struct {
	TotalStock     int     `json:"total_stock"`
	TotalCapacity  int     `json:"total_capacity"`
	StockPercent   float64 `json:"stock_percent"`
	PendingOrders  int     `json:"pending_orders"`
	UrgentOrders   int     `json:"urgent_orders"`
	ReorderNeeded  int     `json:"reorder_needed"`
	WarehouseCount int     `json:"warehouse_count"`
}

// InventoryStatus aggregates the snapshot into the overview record.
func (s *Store) InventoryStatus(now time.Time) Status {
	st := Status{WarehouseCount: len(s.snap.Warehouses)}
	for _, w := range s.snap.Warehouses {
		st.TotalStock += w.CurrentStock
		st.TotalCapacity += w.Capacity
	}
	if st.TotalCapacity > 0 {
		st.StockPercent = float64(st.TotalStock) / float64(st.TotalCapacity) * 100
	}
	st.PendingOrders = len(s.PendingOrders(now))
	st.UrgentOrders = len(s.UrgentOrders())
	st.ReorderNeeded = len(s.ReorderNeeds())
	return st
}
