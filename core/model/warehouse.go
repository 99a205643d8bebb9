package model

import "fmt"

// Location is a geographic point in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Warehouse represents a stocking point participating in allocation.
// The snapshot handed to the optimizer is immutable for the duration
// of one run.
type Warehouse struct {
	ID                 string   `json:"warehouse_id"`
	Name               string   `json:"name"`
	Capacity           int      `json:"capacity"`      // total storable units
	CurrentStock       int      `json:"current_stock"` // units on hand, never above Capacity
	Location           Location `json:"location"`
	StorageCostPerUnit float64  `json:"storage_cost"` // currency units per stored unit
}

// Validate checks that the warehouse snapshot is internally consistent.
func (w Warehouse) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("warehouse: missing id")
	}
	if w.Capacity < 0 {
		return fmt.Errorf("warehouse %s: negative capacity %d", w.ID, w.Capacity)
	}
	if w.CurrentStock < 0 {
		return fmt.Errorf("warehouse %s: negative stock %d", w.ID, w.CurrentStock)
	}
	if w.CurrentStock > w.Capacity {
		return fmt.Errorf("warehouse %s: stock %d exceeds capacity %d", w.ID, w.CurrentStock, w.Capacity)
	}
	if w.StorageCostPerUnit < 0 {
		return fmt.Errorf("warehouse %s: negative storage cost", w.ID)
	}
	return nil
}
