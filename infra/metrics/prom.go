package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/tanishpoddar/logitrack/core/metrics"
)

// PromSink records optimization runs in Prometheus metrics.
type PromSink struct {
	runs        *prometheus.CounterVec
	solveTime   prometheus.Histogram
	fulfillment prometheus.Gauge
	totalCost   prometheus.Gauge
	utilization *prometheus.GaugeVec
	rejected    *prometheus.CounterVec
}

// NewPromSink registers optimizer metrics on the default Prometheus
// registerer. The Prometheus server is started separately.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizer_runs_total",
		Help: "Total number of optimization runs by final status",
	}, []string{"status"})
	solveTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "optimizer_solve_seconds",
		Help:    "Wall clock time spent producing an allocation plan",
		Buckets: prometheus.DefBuckets,
	})
	fulfillment := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "optimizer_fulfillment_ratio",
		Help: "Fraction of requested quantity fulfilled by the latest run",
	})
	totalCost := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "optimizer_total_cost",
		Help: "Objective cost of the latest allocation plan",
	})
	utilization := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "warehouse_utilization_percent",
		Help: "Projected warehouse capacity utilization after the latest run",
	}, []string{"warehouse_id"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizer_rejected_inputs_total",
		Help: "Runs rejected before formulation due to invalid input",
	}, []string{"reason"})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(solveTime); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solveTime = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fulfillment); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fulfillment = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(totalCost); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			totalCost = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(utilization); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			utilization = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rejected); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rejected = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		runs:        runs,
		solveTime:   solveTime,
		fulfillment: fulfillment,
		totalCost:   totalCost,
		utilization: utilization,
		rejected:    rejected,
	}, nil
}

// RecordOptimization updates the run counter and latest-run gauges.
func (s *PromSink) RecordOptimization(ev coremetrics.OptimizationEvent) error {
	s.runs.WithLabelValues(ev.Status.String()).Inc()
	s.solveTime.Observe(ev.SolvingTime.Seconds())
	s.fulfillment.Set(ev.FulfillmentRate)
	s.totalCost.Set(ev.TotalCost)
	return nil
}

// RecordUtilization sets the per-warehouse utilization gauges.
func (s *PromSink) RecordUtilization(evs []coremetrics.UtilizationEvent) error {
	for _, ev := range evs {
		s.utilization.WithLabelValues(ev.WarehouseID).Set(ev.Percentage)
	}
	return nil
}

// RecordRejectedInput counts a run rejected during validation.
func (s *PromSink) RecordRejectedInput(ev coremetrics.RejectedInputEvent) error {
	s.rejected.WithLabelValues(ev.Reason).Inc()
	return nil
}
