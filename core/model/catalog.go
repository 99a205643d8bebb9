package model

// Product describes an item tracked by the product inventory table.
type Product struct {
	ID           string  `json:"product_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	UnitCost     float64 `json:"unit_cost"`
	ReorderPoint int     `json:"reorder_point"`
	StockLevel   int     `json:"stock_level"`
}

// NeedsReorder reports whether the stock level has fallen to or below
// the reorder point.
func (p Product) NeedsReorder() bool {
	return p.StockLevel <= p.ReorderPoint
}

// Supplier describes a supplier and its historical performance scores.
// Scores are normalised to [0,1].
type Supplier struct {
	ID                  string  `json:"supplier_id"`
	Name                string  `json:"supplier_name"`
	ReliabilityScore    float64 `json:"reliability_score"`
	LeadTimeReliability float64 `json:"lead_time_reliability"`
	QualityScore        float64 `json:"quality_score"`
	AvgLeadTimeDays     int     `json:"avg_lead_time_days"`
}
