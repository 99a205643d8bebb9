package cost

import (
	"math"

	"github.com/tanishpoddar/logitrack/core/model"
)

const earthRadiusKm = 6371.0

// Model converts a (warehouse, order) pair into a scalar shipping cost.
// Implementations must return a finite, non-negative value for any input
// so the formulation never fails on absent geodata.
type Model interface {
	Cost(w model.Warehouse, o model.Order) float64
}

// HaversineModel prices a unit shipped as great-circle distance times a
// per-kilometre rate plus the warehouse's per-unit storage cost.
type HaversineModel struct {
	// PerKmRate is the shipping cost per kilometre per unit.
	PerKmRate float64
	// FallbackDistanceKm is charged in place of the geographic distance
	// when either coordinate pair is unusable. It keeps the cost finite
	// and bounded; map features depending on coordinates are the UI's
	// concern, not the optimizer's.
	FallbackDistanceKm float64
}

// DefaultPerKmRate matches the rate used by the sample transportation table.
const DefaultPerKmRate = 0.1

// DefaultFallbackDistanceKm is the penalty distance for missing geodata.
const DefaultFallbackDistanceKm = 5000

// NewHaversineModel returns a model with the default rate and fallback.
func NewHaversineModel() HaversineModel {
	return HaversineModel{PerKmRate: DefaultPerKmRate, FallbackDistanceKm: DefaultFallbackDistanceKm}
}

// Cost implements Model.
func (m HaversineModel) Cost(w model.Warehouse, o model.Order) float64 {
	dist := m.FallbackDistanceKm
	if validLocation(w.Location) && validLocation(o.DeliveryLocation) {
		dist = Haversine(w.Location, o.DeliveryLocation)
	}
	c := dist*m.PerKmRate + w.StorageCostPerUnit
	if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return m.FallbackDistanceKm * m.PerKmRate
	}
	return c
}

// Haversine returns the great-circle distance between two points in
// kilometres. Identical coordinates yield zero.
func Haversine(a, b model.Location) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func validLocation(l model.Location) bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lon) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lon, 0) {
		return false
	}
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}
