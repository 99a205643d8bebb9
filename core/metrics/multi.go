package metrics

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordOptimization forwards the event to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordOptimization(ev OptimizationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordOptimization(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordUtilization forwards utilization snapshots to sinks that support
// them.
func (m *MultiSink) RecordUtilization(evs []UtilizationEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(UtilizationRecorder); ok {
			if err := rec.RecordUtilization(evs); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordRejectedInput forwards rejection events to sinks that support them.
func (m *MultiSink) RecordRejectedInput(ev RejectedInputEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(RejectedInputRecorder); ok {
			if err := rec.RecordRejectedInput(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
