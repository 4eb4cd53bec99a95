// Command petra-plc runs a soft-PLC scan engine against a YAML program
// configuration until interrupted.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lithos-Systems/petra-plc/internal/engine"
	"github.com/Lithos-Systems/petra-plc/internal/metrics"
	"github.com/Lithos-Systems/petra-plc/internal/policy"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("PETRA_LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func main() {
	configPath := "config/example_logic.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	logrus.Infof("loading configuration from: %s", configPath)
	eng, err := engine.FromConfigPath(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build scan engine")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checker, err := policy.New(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to prepare interlock policy")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return eng.Run(gctx)
	})

	g.Go(func() error {
		return monitor(gctx, eng, checker)
	})

	g.Go(func() error {
		srv := &http.Server{Addr: ":9090", Handler: promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})}
		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()
		select {
		case <-gctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		}
	})

	logrus.Info("PLC running. Press Ctrl+C to stop...")
	if err := g.Wait(); err != nil && gctx.Err() == nil {
		logrus.WithError(err).Error("engine group exited with error")
		os.Exit(1)
	}

	logrus.Info("soft-PLC stopped")
}

// monitor periodically logs a few headline signals and runs the advisory
// interlock policy against the current snapshot. It never stops the scan
// loop, regardless of what it finds.
func monitor(ctx context.Context, eng *engine.Engine, checker *policy.Checker) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			entries := eng.DumpSignals()
			for _, e := range entries {
				if e.Name == "motor_run" || e.Name == "timer_done" {
					logrus.Infof("%s = %s", e.Name, e.Value.String())
				}
			}

			violations, err := checker.Check(ctx, entries)
			if err != nil {
				logrus.WithError(err).Warn("interlock policy check failed")
				continue
			}
			for _, v := range violations {
				logrus.WithFields(logrus.Fields{
					"rule":     v.Rule,
					"severity": v.Severity,
					"signal":   v.Signal,
				}).Warn(v.Message)
			}
		}
	}
}
