package metrics

import (
	"testing"

	"github.com/tanishpoddar/logitrack/core/factory"
	coremetrics "github.com/tanishpoddar/logitrack/core/metrics"
)

func TestBuiltinSinks(t *testing.T) {
	sink, err := coremetrics.NewSink(nil)
	if err != nil {
		t.Fatalf("empty config: %v", err)
	}
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Errorf("expected NopSink for empty config, got %T", sink)
	}

	sink, err = coremetrics.NewSink([]factory.ModuleConfig{{Type: "nop"}})
	if err != nil {
		t.Fatalf("nop sink: %v", err)
	}
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Errorf("expected NopSink, got %T", sink)
	}

	sink, err = coremetrics.NewSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "prom"}})
	if err != nil {
		t.Fatalf("multi sink: %v", err)
	}
	if _, ok := sink.(*coremetrics.MultiSink); !ok {
		t.Errorf("expected MultiSink, got %T", sink)
	}

	if _, err = coremetrics.NewSink([]factory.ModuleConfig{{Type: "bogus"}}); err == nil {
		t.Error("expected error for unknown sink type")
	}
}
