// Package app wires the engine, API server, metrics sinks and outage
// notifier into one runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apiareas "github.com/gridshed/gridshed/api/areas"
	apidashboard "github.com/gridshed/gridshed/api/dashboard"
	apifeeders "github.com/gridshed/gridshed/api/feeders"
	apimaintenance "github.com/gridshed/gridshed/api/maintenance"
	apinetwork "github.com/gridshed/gridshed/api/network"
	apischedule "github.com/gridshed/gridshed/api/schedule"
	"github.com/gridshed/gridshed/config"
	"github.com/gridshed/gridshed/core/engine"
	"github.com/gridshed/gridshed/core/maintenance"
	coremetrics "github.com/gridshed/gridshed/core/metrics"
	"github.com/gridshed/gridshed/infra/logger"
	"github.com/gridshed/gridshed/infra/metrics"
	"github.com/gridshed/gridshed/infra/mqtt"
	"github.com/gridshed/gridshed/internal/eventbus"
)

// Service orchestrates the scheduling engine and its adapters.
type Service struct {
	Engine   *engine.Engine
	bus      *eventbus.Bus
	notifier *mqtt.OutageNotifier
	log      logger.Logger

	addr        string
	promEnabled bool
	promAddr    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.PlanSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.PlanSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	eng := engine.New(engine.Config{
		Scheduler:   cfg.Scheduler,
		Maintenance: maintenance.Mode(cfg.Maintenance.Mode),
	}, logger.New("engine"), sink, bus)

	svc := &Service{
		Engine:      eng,
		bus:         bus,
		log:         logg,
		addr:        cfg.Server.Addr,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promAddr:    cfg.Metrics.PrometheusAddr,
	}

	if cfg.Notifier.Enabled {
		pub, err := mqtt.NewPahoPublisher(cfg.Notifier)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		svc.notifier = mqtt.NewOutageNotifier(pub, cfg.Notifier.TopicPrefix, logger.New("notifier"))
	}
	return svc, nil
}

// Handler builds the API mux.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	apifeeders.Register(mux, s.Engine)
	apiareas.Register(mux, s.Engine)
	apischedule.Register(mux, s.Engine)
	apimaintenance.Register(mux, s.Engine)
	apinetwork.Register(mux, s.Engine)
	apidashboard.Register(mux, s.Engine)
	return mux
}

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.notifier != nil {
		sub := s.bus.Subscribe()
		go func() {
			for ev := range sub {
				if pg, ok := ev.(eventbus.PlanGenerated); ok {
					if dp, ok := s.Engine.CurrentPlan(); ok && dp.RunID == pg.RunID {
						s.notifier.NotifyPlan(dp)
					}
				}
			}
		}()
	}
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api server shutdown: %v", err)
		}
	}()
	s.log.Infof("api listening on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.notifier != nil {
		s.notifier.Close()
	}
	s.bus.Close()
	return nil
}
