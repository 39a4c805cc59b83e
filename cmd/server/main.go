package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundus/internal/audit"
	"fundus/internal/jwt"
	"fundus/internal/platform/config"
	"fundus/internal/platform/httpserver"
	"fundus/internal/platform/logger"
	"fundus/internal/platform/metrics"
	"fundus/internal/platform/middleware"
	"fundus/internal/report"
	"fundus/internal/report/export"
	reporthandler "fundus/internal/report/handler"
	reportmetrics "fundus/internal/report/metrics"
	"fundus/internal/source"
	"fundus/internal/source/memory"
	"fundus/internal/source/postgres"
	"fundus/internal/source/snapshot"
	"fundus/pkg/pseudonym"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal packages.
func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, cleanup, err := buildSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	sink, closeSink, err := buildSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	publisher := audit.NewPublisher(256, log)
	worker := audit.NewWorker(sink, publisher.Inbox(), log)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		if err := worker.Run(workerCtx); err != nil {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	svc := report.New(src,
		report.WithLogger(log),
		report.WithMetrics(reportmetrics.New()),
		report.WithAuditPublisher(publisher),
	)

	exporter, err := buildExporter(ctx, cfg, log, publisher)
	if err != nil {
		return err
	}

	router := buildRouter(cfg, log, svc, exporter)
	srv := httpserver.New(cfg.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr, "source", cfg.SourceDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	stopWorker()
	<-workerDone
	return nil
}

func buildRouter(cfg config.Config, log *slog.Logger, svc *report.Service, exporter reporthandler.Exporter) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	handler := reporthandler.New(svc, exporter, log)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Latency(metrics.NewHTTP()))
		if cfg.JWTSigningKey != "" {
			validator := jwt.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
			r.Use(middleware.RequireAuth(validator, log))
		} else {
			log.Warn("authentication disabled: FUNDUS_JWT_SIGNING_KEY is not set")
		}
		handler.Register(r)
	})
	return r
}

func buildSource(ctx context.Context, cfg config.Config, log *slog.Logger) (source.Source, func(), error) {
	noop := func() {}
	switch cfg.SourceDriver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("ping postgres: %w", err)
		}
		return postgres.New(pool), pool.Close, nil

	case "snapshot":
		var opts []snapshot.Option
		if cfg.ShapefilePath != "" {
			opts = append(opts, snapshot.WithBoundaryShapefile(cfg.ShapefilePath, cfg.MuniIDField))
		}
		store, err := snapshot.Load(cfg.SnapshotPath, opts...)
		if err != nil {
			return nil, noop, fmt.Errorf("load snapshot: %w", err)
		}
		return store, noop, nil

	default:
		store := memory.NewStore()
		hasher, err := pseudonym.New([]byte("fundus-dev-pseudonym-key-32bytes"))
		if err != nil {
			return nil, noop, err
		}
		seeded, err := memory.Seed(store, hasher, time.Now())
		if err != nil {
			return nil, noop, fmt.Errorf("seed memory source: %w", err)
		}
		log.Info("memory source seeded", "unit_id", seeded.UnitID)
		return store, noop, nil
	}
}

func buildSink(cfg config.Config) (audit.Sink, func(), error) {
	if len(cfg.KafkaBrokers) == 0 {
		return audit.NewMemorySink(), func() {}, nil
	}
	sink, err := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		return nil, nil, fmt.Errorf("connect kafka audit sink: %w", err)
	}
	return sink, sink.Close, nil
}

func buildExporter(ctx context.Context, cfg config.Config, log *slog.Logger, publisher *audit.Publisher) (reporthandler.Exporter, error) {
	switch cfg.ExportDriver {
	case "fs":
		store, err := export.NewFSStore(cfg.ExportRoot)
		if err != nil {
			return nil, err
		}
		return export.New(store, export.WithLogger(log), export.WithAuditPublisher(publisher)), nil
	case "s3":
		store, err := export.NewS3Store(ctx, export.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			return nil, err
		}
		return export.New(store, export.WithLogger(log), export.WithAuditPublisher(publisher)), nil
	default:
		return nil, nil
	}
}
