package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apiinventory "github.com/tanishpoddar/logitrack/api/inventory"
	apioptimizer "github.com/tanishpoddar/logitrack/api/optimizer"
	"github.com/tanishpoddar/logitrack/config"
	"github.com/tanishpoddar/logitrack/core/cost"
	"github.com/tanishpoddar/logitrack/core/events"
	"github.com/tanishpoddar/logitrack/core/inventory"
	coremetrics "github.com/tanishpoddar/logitrack/core/metrics"
	"github.com/tanishpoddar/logitrack/core/optimize"
	"github.com/tanishpoddar/logitrack/core/runlog"
	"github.com/tanishpoddar/logitrack/infra/logger"
	"github.com/tanishpoddar/logitrack/infra/metrics"
	"github.com/tanishpoddar/logitrack/internal/eventbus"
)

// Service wires the inventory store, the optimization engine and the HTTP
// API together.
type Service struct {
	Engine *optimize.Engine
	Store  *inventory.Store
	Runs   *runlog.Store

	cfg *config.Config
	bus eventbus.EventBus
	log logger.Logger
	srv *http.Server
}

// New creates a Service from the configuration. The inventory store holds
// the demo dataset until an ingestion path replaces it.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	bus := eventbus.New()
	costModel := cost.HaversineModel{
		PerKmRate:          cfg.Solver.PerKmRate,
		FallbackDistanceKm: cfg.Solver.FallbackDistanceKm,
	}
	engine := optimize.NewEngine(costModel, logger.New("optimizer"), sink, bus)

	svc := &Service{
		Engine: engine,
		Store:  inventory.NewSampleStore(),
		Runs:   runlog.New(cfg.Solver.RunLogCapacity),
		cfg:    cfg,
		bus:    bus,
		log:    logg,
	}
	svc.srv = &http.Server{Addr: cfg.API.Address, Handler: svc.routes()}
	return svc, nil
}

func (s *Service) routes() http.Handler {
	token := s.cfg.API.AuthToken
	defaults := optimize.Options{
		TimeLimit:      s.cfg.Solver.TimeLimit(),
		PriorityWeight: s.cfg.Solver.Weight(),
	}
	mux := http.NewServeMux()
	mux.Handle("/api/optimize", apioptimizer.NewRunHandler(s.Engine, s.Store, defaults, token))
	mux.Handle("/api/optimize/runs", apioptimizer.NewRunsHandler(s.Runs, token))
	mux.Handle("/api/inventory", apiinventory.NewStatusHandler(s.Store, token))
	mux.Handle("/api/orders", apiinventory.NewOrdersHandler(s.Store, token))
	mux.Handle("/api/suppliers", apiinventory.NewSuppliersHandler(s.Store, token))
	mux.Handle("/api/reorder", apiinventory.NewReorderHandler(s.Store, token))
	return mux
}

// Run starts the HTTP server and blocks until the context is cancelled.
// Completed runs are drained off the event bus into the run log.
func (s *Service) Run(ctx context.Context) error {
	ch := s.bus.Subscribe()
	go func() {
		for ev := range ch {
			if done, ok := ev.(events.RunCompleted); ok {
				s.Runs.Append(done.Result, done.Time)
			}
		}
	}()

	if s.cfg.API.PromAddress != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.API.PromAddress); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api server shutdown: %v", err)
		}
	}()

	s.log.Infof("api listening on %s", s.cfg.API.Address)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
