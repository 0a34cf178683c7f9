package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"tripapp/internal/audit"
	"tripapp/internal/booking/cache"
	"tripapp/internal/booking/handler"
	bookingmetrics "tripapp/internal/booking/metrics"
	"tripapp/internal/booking/service"
	"tripapp/internal/booking/store"
	"tripapp/internal/platform/config"
	"tripapp/internal/platform/httpserver"
	"tripapp/internal/platform/logger"
	"tripapp/internal/platform/metrics"
	"tripapp/internal/platform/middleware"
	"tripapp/internal/platform/postgres"
	redisclient "tripapp/internal/platform/redis"
	"tripapp/internal/platform/tracing"
	httptransport "tripapp/internal/transport/http"
)

func newServeCmd(v *viper.Viper, load func() (config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().String("redis-url", "", "redis URL for the listing cache")
	cmd.Flags().StringSlice("kafka-brokers", nil, "kafka seed brokers for audit events")
	_ = v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("redis.url", cmd.Flags().Lookup("redis-url"))
	_ = v.BindPFlag("kafka.brokers", cmd.Flags().Lookup("kafka-brokers"))
	return cmd
}

// runServe wires dependencies and blocks until ctx is canceled or the server fails.
func runServe(ctx context.Context, cfg config.Config) error {
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	tp, err := tracing.NewProvider(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	httpMetrics := metrics.New(prometheus.DefaultRegisterer)
	checks := map[string]httptransport.HealthCheck{}

	uow, catalog, closeStore, err := openStore(ctx, cfg, log, checks)
	if err != nil {
		return err
	}
	defer closeStore()

	tripCache, closeCache, err := openCache(ctx, cfg, log, checks)
	if err != nil {
		return err
	}
	defer closeCache()

	sink, closeSink, err := openAuditSink(ctx, cfg, log, checks)
	if err != nil {
		return err
	}
	defer closeSink()

	queue, inbox := audit.NewQueuePublisher(cfg.Kafka.QueueSize)
	worker := audit.NewWorker(sink, inbox, log)

	svc, err := service.New(uow, catalog,
		service.WithLogger(log),
		service.WithAuditPublisher(queue),
		service.WithMetrics(bookingmetrics.New(prometheus.DefaultRegisterer)),
		service.WithCache(tripCache),
		service.WithTracer(tp.Tracer()),
	)
	if err != nil {
		return err
	}

	var handlerOpts []handler.Option
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, httpMetrics, log)
		handlerOpts = append(handlerOpts, handler.WithWriteMiddleware(limiter.Middleware))
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Metrics:        httpMetrics,
		Gatherer:       prometheus.DefaultGatherer,
		Tracer:         tp.Tracer(),
		RequestTimeout: cfg.Server.RequestTimeout,
		HealthChecks:   checks,
	}, handler.New(svc, log, handlerOpts...))

	srv := httpserver.New(cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Drains until the queue is closed, independent of request cancellation.
		return worker.Run(context.WithoutCancel(gctx))
	})
	g.Go(func() error {
		log.Info("starting tripapp", "addr", cfg.Server.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		queue.Close()
		return err
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, log *slog.Logger, checks map[string]httptransport.HealthCheck) (service.UnitOfWork, service.TripCatalog, func(), error) {
	if cfg.Database.URL == "" {
		mem := store.NewInMemory()
		if cfg.SeedDemoData {
			store.SeedDemoCatalog(mem, time.Now().UTC())
		}
		log.Info("using in-memory store", "seeded", cfg.SeedDemoData)
		return mem, mem, func() {}, nil
	}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	checks["postgres"] = db.PingContext
	pg := store.NewPostgres(db)
	log.Info("using postgres store")
	return pg, pg, func() { _ = db.Close() }, nil
}

func openCache(ctx context.Context, cfg config.Config, log *slog.Logger, checks map[string]httptransport.HealthCheck) (service.TripCache, func(), error) {
	rc, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if rc == nil {
		return cache.NewMemory(cfg.Cache.TTL), func() {}, nil
	}
	checks["redis"] = rc.Health
	log.Info("using redis listing cache")
	return cache.NewRedis(rc.Client, cache.WithTTL(cfg.Cache.TTL), cache.WithLogger(log)),
		func() { _ = rc.Close() }, nil
}

func openAuditSink(ctx context.Context, cfg config.Config, log *slog.Logger, checks map[string]httptransport.HealthCheck) (audit.Store, func(), error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return audit.NewLogStore(log), func() {}, nil
	}
	ks, err := audit.NewKafkaStore(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, nil, err
	}
	if err := ks.EnsureTopic(ctx, cfg.Kafka.Partitions, cfg.Kafka.ReplicationFactor); err != nil {
		ks.Close()
		return nil, nil, err
	}
	checks["kafka"] = ks.Ping
	log.Info("publishing audit events to kafka", "topic", cfg.Kafka.Topic)
	return ks, ks.Close, nil
}
