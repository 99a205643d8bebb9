package inventory

import (
	"time"

	"github.com/tanishpoddar/logitrack/core/model"
)

// NewSampleStore returns a store seeded with the demo dataset. Order
// deadlines are anchored to the current time so pending and history
// queries behave the same whenever the demo runs.
func NewSampleStore() *Store {
	return NewStore(sampleSnapshot(time.Now()))
}

func sampleSnapshot(now time.Time) Snapshot {
	return Snapshot{
		Warehouses: []model.Warehouse{
			{
				ID:                 "W001",
				Name:               "Mumbai Central",
				Capacity:           10000,
				CurrentStock:       7500,
				Location:           model.Location{Lat: 19.0760, Lon: 72.8777},
				StorageCostPerUnit: 1200,
			},
			{
				ID:                 "W002",
				Name:               "Singapore Hub",
				Capacity:           15000,
				CurrentStock:       12000,
				Location:           model.Location{Lat: 1.3521, Lon: 103.8198},
				StorageCostPerUnit: 1500,
			},
			{
				ID:                 "W003",
				Name:               "Rotterdam Gateway",
				Capacity:           20000,
				CurrentStock:       9000,
				Location:           model.Location{Lat: 51.9244, Lon: 4.4777},
				StorageCostPerUnit: 1100,
			},
		},
		Orders: []model.Order{
			{
				ID:               "ORD001",
				ProductID:        "P001",
				Quantity:         500,
				Status:           model.StatusPending,
				DeliveryLocation: model.Location{Lat: 19.0760, Lon: 72.8777},
				Deadline:         now.Add(48 * time.Hour),
			},
			{
				ID:               "ORD002",
				ProductID:        "P002",
				Quantity:         750,
				Status:           model.StatusUrgent,
				DeliveryLocation: model.Location{Lat: 1.3521, Lon: 103.8198},
				Deadline:         now.Add(24 * time.Hour),
			},
			{
				ID:               "ORD003",
				ProductID:        "P003",
				Quantity:         300,
				Status:           model.StatusPending,
				DeliveryLocation: model.Location{Lat: 52.3676, Lon: 4.9041},
				Deadline:         now.Add(72 * time.Hour),
			},
			{
				ID:               "ORD004",
				ProductID:        "P001",
				Quantity:         1200,
				Status:           model.StatusUrgent,
				DeliveryLocation: model.Location{Lat: 25.2048, Lon: 55.2708},
				Deadline:         now.Add(12 * time.Hour),
			},
			{
				ID:               "ORD005",
				ProductID:        "P004",
				Quantity:         400,
				Status:           model.StatusPending,
				DeliveryLocation: model.Location{Lat: 13.0827, Lon: 80.2707},
				Deadline:         now.Add(-6 * time.Hour),
			},
		},
		Products: []model.Product{
			{ID: "P001", Name: "Steel Fasteners", Category: "Hardware", UnitCost: 2.40, ReorderPoint: 2000, StockLevel: 6400},
			{ID: "P002", Name: "Hydraulic Pumps", Category: "Machinery", UnitCost: 185.00, ReorderPoint: 150, StockLevel: 140},
			{ID: "P003", Name: "Packaging Film", Category: "Consumables", UnitCost: 0.85, ReorderPoint: 5000, StockLevel: 11200},
			{ID: "P004", Name: "Circuit Breakers", Category: "Electrical", UnitCost: 32.50, ReorderPoint: 800, StockLevel: 760},
		},
		Suppliers: []model.Supplier{
			{ID: "SUP001", Name: "Apex Industrial", ReliabilityScore: 0.96, LeadTimeReliability: 0.92, QualityScore: 0.98, AvgLeadTimeDays: 5},
			{ID: "SUP002", Name: "Meridian Logistics", ReliabilityScore: 0.88, LeadTimeReliability: 0.85, QualityScore: 0.91, AvgLeadTimeDays: 9},
			{ID: "SUP003", Name: "Orient Supply Co", ReliabilityScore: 0.93, LeadTimeReliability: 0.95, QualityScore: 0.89, AvgLeadTimeDays: 7},
		},
	}
}
