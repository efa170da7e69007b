package app

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/xenking/invoicing/internal/billing"
	"github.com/xenking/invoicing/internal/export"
	"github.com/xenking/invoicing/internal/handler"
	"github.com/xenking/invoicing/pkg/health"
	"github.com/xenking/invoicing/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("addr", cfg.Addr),
		zap.String("export_dir", cfg.Export.Dir),
		zap.Bool("export_compress", cfg.Export.Compress),
	)

	if err := os.MkdirAll(cfg.Export.Dir, 0o750); err != nil {
		return errors.Wrap(err, "create export dir")
	}

	// Domain service.
	writer := export.NewFileWriter(export.FileWriterConfig{
		Dir:      cfg.Export.Dir,
		Compress: cfg.Export.Compress,
	})
	svc := billing.NewService(writer)

	// Health check service.
	healthSvc := health.New()
	healthSvc.AddReadinessCheck("export_dir", time.Second, health.DirWritableCheck(writer.Dir()))
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.AddLivenessCheck("gc_pause", time.Second, health.GCMaxPauseCheck(5*time.Second))
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)
	lg.Info("Health checks started",
		zap.String("export_dir", writer.Dir()),
		zap.Bool("ready", healthSvc.IsReady()),
	)

	// HTTP handlers.
	h, err := handler.NewHandler(svc, m.MeterProvider().Meter("billing"))
	if err != nil {
		return errors.Wrap(err, "create handler")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	h.Register(mux)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: otelhttp.NewHandler(
			httpmiddleware.Wrap(mux,
				httpmiddleware.InjectLogger(zctx.From(ctx)),
				httpmiddleware.RequestID(),
				httpmiddleware.LogRequests(),
				httpmiddleware.Recovery(),
			),
			"billing-api",
			otelhttp.WithTracerProvider(m.TracerProvider()),
			otelhttp.WithMeterProvider(m.MeterProvider()),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
