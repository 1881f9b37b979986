package command

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/jsettings-go/internal/infra/confloader"
	"github.com/yndnr/jsettings-go/internal/infra/shutdown"
	"github.com/yndnr/jsettings-go/internal/telemetry/logger"
	"github.com/yndnr/jsettings-go/internal/telemetry/metric"
	"github.com/yndnr/jsettings-go/pkg/jsettings"
)

const shutdownTimeout = 5 * time.Second

// WatchCommand returns the watch command.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Load the settings and reload them whenever a document changes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "metrics",
				Usage: "Serve Prometheus metrics on this address (e.g. :9090)",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Minimum time between reloads (default: 1s)",
			},
		},
		Action: watchAction,
	}
}

// reloader runs one settings load per trigger and logs the outcome.
type reloader struct {
	ctx     context.Context
	loader  *jsettings.Loader
	metrics *metric.Registry

	mu     sync.Mutex
	last   uint64
	loaded bool
}

func (r *reloader) reload(trigger string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := logger.WithLoadID(r.ctx, ulid.Make().String())
	log := logger.L(ctx)

	err := r.loader.LoadSettings()
	r.metrics.ObserveLoad(err, len(r.loader.Keys()))
	if err != nil {
		// The next good load is a recovery even if its content matches.
		r.loaded = false
		log.Error("settings load failed", "trigger", trigger, "error", err)
		return
	}

	fp := r.loader.Fingerprint()
	if r.loaded && fp == r.last {
		log.Info("settings unchanged", "trigger", trigger)
		return
	}
	r.last, r.loaded = fp, true

	log.Info("settings loaded",
		"trigger", trigger,
		"file", r.loader.SettingsFile(),
		"fingerprint", fmt.Sprintf("%016x", fp),
		"attrs", len(r.loader.Keys()),
	)
}

func watchAction(c *cli.Context) error {
	cfg := GetConfig(c)
	if c.IsSet("metrics") {
		cfg.Watch.Metrics = c.String("metrics")
	}
	if c.IsSet("interval") {
		cfg.Watch.Interval = c.Duration("interval")
	}

	reg := metric.NewRegistry()
	l, err := newLoader(c, cfg, jsettings.WithSink(reg.CountingSink(diagnosticSink(c, cfg))))
	if err != nil {
		return err
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	r := &reloader{ctx: ctx, loader: l, metrics: reg}

	// A broken document at startup is logged; the next change may fix it.
	r.reload("startup")

	w, err := confloader.NewWatcher(
		confloader.WithWatcherLogger(logger.Slog(logger.Default())),
		confloader.WithMinInterval(cfg.Watch.Interval),
	)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	for _, path := range []string{cfg.Settings.File, cfg.Settings.Schema} {
		if err := w.Watch(path); err != nil {
			w.Stop()
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
	w.OnChange(r.reload)

	h := shutdown.NewHandler(shutdownTimeout)
	h.OnShutdown(func(context.Context) error {
		return w.Stop()
	})

	if cfg.Watch.Metrics != "" {
		srv, err := serveMetrics(cfg.Watch.Metrics, reg)
		if err != nil {
			w.Stop()
			return err
		}
		h.OnShutdown(srv.Shutdown)
	}

	w.StartAsync()
	logger.Info("watching settings",
		"file", cfg.Settings.File,
		"schema", cfg.Settings.Schema,
		"interval", cfg.Watch.Interval,
	)

	if err := h.Wait(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("watch stopped")
	return nil
}

// serveMetrics starts the /metrics endpoint on addr.
func serveMetrics(addr string, reg *metric.Registry) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	logger.Info("metrics endpoint listening", "addr", ln.Addr().String())
	return srv, nil
}
