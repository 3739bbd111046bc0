package main

import (
	"context"
	"errors"
	"fmt"
	"messenger-lab/contract"
	"messenger-lab/domain/event"
	"messenger-lab/internal"
	"messenger-lab/moderation"
	"messenger-lab/observability"
	"messenger-lab/projection"
	"messenger-lab/repositories"
	"messenger-lab/runtime"
	"messenger-lab/runtime/workers"
	"messenger-lab/search"
	"messenger-lab/services"
	"messenger-lab/sink"
	"messenger-lab/transform"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the engine, plays the demo scenarios and prints what happened.
// Returning errors instead of exiting lets every defer run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	strategy, err := search.ParseStrategy(config.SearchStrategy)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	policy, err := runtime.ParseOfflinePolicy(config.OfflinePolicy)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	censoredChar, err := internal.CharacterRune(config.CharacterReplacement)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	moderator, err := moderation.NewModerator(internal.Words(config.CensoredWords), censoredChar, log)
	if err != nil {
		return fmt.Errorf("moderator init failed: %w", err)
	}

	// 2. Sinks
	registry := prometheus.NewRegistry()
	timeline := projection.NewTimeline()
	metrics := observability.NewMetrics(registry)
	sinks := []contract.EventSink{timeline, metrics}

	var audit repositories.IMessageRepository
	if config.AuditFilepath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.AuditFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		//  Defer will be executed before run() returned anything to main()
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		repository, err := repositories.NewMessageRepository(db, log, config.LimitMessages)
		if err != nil {
			return fmt.Errorf("audit repository failed: %w", err)
		}
		audit = repository
		sinks = append(sinks, sink.NewAuditSink(repository, log))
	}

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Engine, before any worker runs
	events := make(chan event.DomainEvent, config.EventBufferSize)
	service, err := services.New(log, services.Options{
		SearchStrategy: strategy,
		OfflinePolicy:  policy,
		ReadStages:     []transform.Stage{moderator.Censor},
		Events:         events,
	})
	if err != nil {
		return fmt.Errorf("messaging service failed to start: %w", err)
	}

	// 5. Event fan-out under supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewEventFanout(log, events, config.SinkTimeout, sinks...))
	// Sampling stops with the scenarios, before the fan-out drains
	samplingCtx, stopSampling := context.WithCancel(ctx)
	defer stopSampling()
	sup.Start(samplingCtx, workers.NewChannelCapacityWorker(log, metrics, config.SampleInterval,
		workers.NamedChannel{Name: "events", Channel: events}))
	supervised := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervised)
	}()

	// 6. Scenarios
	outcome, err := play(ctx, service)
	if closeErr := service.Close(); closeErr != nil {
		log.Warn("Closing messaging service", "error", closeErr)
	}
	// Nothing emits anymore: closing lets the fan-out drain and finish
	stopSampling()
	close(events)
	<-supervised
	if err != nil {
		return fmt.Errorf("scenario failed: %w", err)
	}

	printReport(outcome, timeline.Entries())
	if audit != nil {
		if err = printAudit(audit, outcome.scopes()); err != nil {
			return fmt.Errorf("reading audit log: %w", err)
		}
	}

	// 7. Metrics endpoint, kept up until stopped
	if config.MetricsPort <= 0 {
		log.Info("Program stopped cleanly")
		return nil
	}
	return serveMetrics(ctx, config.MetricsPort, registry)
}

func serveMetrics(ctx context.Context, port int, registry *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errChan := make(chan error, 1)
	go func() {
		fmt.Printf("Metrics available at http://localhost:%d/metrics\n", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("metrics server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errChan:
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
