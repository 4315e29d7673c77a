// Command peakpath generates a mountain heightfield, then runs the stepping A*
// search over it one Step per tick, logging progress and serving Prometheus
// metrics. Editing the config file rebuilds the terrain and restarts the search.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/peakpath/config"
	"github.com/katalvlaran/peakpath/metrics"
)

func main() {
	cfgPath := flag.String("config", "configs/peakpath.yaml", "Path to YAML config")
	addr := flag.String("addr", "", "Metrics listen address (overrides metrics.addr)")
	flag.Parse()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()
	level.Set(cfg.Log.SlogLevel())

	// ── Metrics ──────────────────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewRecorder(reg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// ── Hot-reload watcher ───────────────────────────────────────────────────
	reloads := make(chan *config.Config, 1)
	loader.OnChange(func(next *config.Config) {
		level.Set(next.Log.SlogLevel())
		// Keep only the newest pending config.
		select {
		case <-reloads:
		default:
		}
		reloads <- next
		slog.Info("config reloaded", "path", loader.Path())
	})
	loader.OnError(func(err error) {
		slog.Warn("hot-reload skipped: config invalid", "err", err)
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	var srv *http.Server
	if cfg.Metrics.Enabled || *addr != "" {
		listen := cfg.Metrics.Addr
		if *addr != "" {
			listen = *addr
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		srv = &http.Server{
			Addr:         listen,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			slog.Info("metrics server starting", "addr", listen)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server error", "err", err)
				cancel()
			}
		}()
	}

	// ── Search loop ──────────────────────────────────────────────────────────
	d := &driver{log: logger, rec: rec}
	if err := d.loop(ctx, cfg, reloads); err != nil {
		slog.Error("search failed", "err", err)
		os.Exit(1)
	}

	// ── Graceful shutdown ────────────────────────────────────────────────────
	slog.Info("shutting down…")
	if srv != nil {
		shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutCancel()
		_ = srv.Shutdown(shutCtx)
	}
	slog.Info("goodbye")
}
