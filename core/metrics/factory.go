package metrics

import "github.com/tanishpoddar/logitrack/core/factory"

var sinkRegistry = factory.NewRegistry[Sink]()

// RegisterSink adds a metrics sink builder identified by name. Builtin
// sinks register themselves from infra/metrics.
func RegisterSink(name string, b factory.Builder[Sink]) error {
	return sinkRegistry.Register(name, b)
}

// NewSink creates a Sink from the provided configuration. No configuration
// yields a NopSink; multiple entries are fanned out through a MultiSink.
func NewSink(cfgs []factory.ModuleConfig) (Sink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]Sink, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
