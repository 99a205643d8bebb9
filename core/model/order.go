package model

import (
	"fmt"
	"time"
)

// OrderStatus classifies the urgency of a pending order.
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusUrgent
)

// String returns a human-readable representation of the order status.
func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusUrgent:
		return "Urgent"
	default:
		return "Unknown"
	}
}

// MarshalText serialises the status as its name in JSON.
func (s OrderStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the status name back into a value.
func (s *OrderStatus) UnmarshalText(text []byte) error {
	v, ok := OrderStatusFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown order status %q", text)
	}
	*s = v
	return nil
}

// OrderStatusFromString parses the status column values used by the
// orders table.
func OrderStatusFromString(s string) (OrderStatus, bool) {
	switch s {
	case "Pending":
		return StatusPending, true
	case "Urgent":
		return StatusUrgent, true
	default:
		return 0, false
	}
}

// Order represents a pending customer order awaiting allocation.
type Order struct {
	ID               string      `json:"order_id"`
	ProductID        string      `json:"product_id"`
	Quantity         int         `json:"quantity"` // units requested, positive
	Status           OrderStatus `json:"status"`
	DeliveryLocation Location    `json:"delivery_location"`
	Deadline         time.Time   `json:"delivery_deadline"` // informational, drives urgency upstream
}

// Validate checks that the order is well formed.
func (o Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("order: missing id")
	}
	if o.Quantity <= 0 {
		return fmt.Errorf("order %s: quantity must be positive, got %d", o.ID, o.Quantity)
	}
	return nil
}

// PriorityWeight is the caller-selected weight applied to the urgency
// term of the optimization objective.
type PriorityWeight int

const (
	WeightLow PriorityWeight = iota
	WeightMedium
	WeightHigh
)

// String returns a human-readable representation of the weight.
func (w PriorityWeight) String() string {
	switch w {
	case WeightLow:
		return "Low"
	case WeightMedium:
		return "Medium"
	case WeightHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// PriorityWeightFromString parses a configuration value. Matching is
// case-insensitive on the first letter to accept "low" as well as "Low".
func PriorityWeightFromString(s string) (PriorityWeight, bool) {
	switch s {
	case "Low", "low":
		return WeightLow, true
	case "Medium", "medium":
		return WeightMedium, true
	case "High", "high":
		return WeightHigh, true
	default:
		return 0, false
	}
}
