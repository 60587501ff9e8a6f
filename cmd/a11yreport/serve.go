/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/metrics"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Port        int `env:"PORT,default=8080"`
	MetricsPort int `env:"METRICS_PORT,default=2112"`

	CatalogPath  string `env:"CATALOG_PATH"`
	SnapshotPath string `env:"SNAPSHOT_PATH,required"`

	TargetName string `env:"TARGET_NAME,required"`
	TargetURL  string `env:"TARGET_URL"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve reports over HTTP",
		Long: `Serve reports over HTTP, re-reading the snapshot for every request.

Configuration is read from the environment:

  PORT              report server port (default 8080)
  METRICS_PORT      Prometheus metrics port (default 2112)
  CATALOG_PATH      assessment catalog YAML (default: built-in catalog)
  SNAPSHOT_PATH     assessment results JSON (required)
  TARGET_NAME       name of the page under test (required)
  TARGET_URL        URL of the page under test
  SHUTDOWN_TIMEOUT  graceful shutdown timeout (default 10s)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var cfg config
			if err := envconfig.Process(ctx, &cfg); err != nil {
				return fmt.Errorf("processing config: %w", err)
			}
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg config) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listening for reports: %w", err)
	}
	metricsLn, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", cfg.MetricsPort))
	if err != nil {
		return errors.Join(fmt.Errorf("listening for metrics: %w", err), ln.Close())
	}
	return serveListeners(ctx, cfg, ln, metricsLn)
}

// serveListeners serves reports on ln and metrics on metricsLn until ctx is
// done, then shuts both servers down within cfg.ShutdownTimeout.
func serveListeners(ctx context.Context, cfg config, ln, metricsLn net.Listener) error {
	svc := service.New(
		service.Source{CatalogPath: cfg.CatalogPath, SnapshotPath: cfg.SnapshotPath},
		reportmodel.Target{Name: cfg.TargetName, URL: cfg.TargetURL},
		service.WithObserver(metrics.Multi(
			metrics.NewPrometheusObserver("serve"),
			metrics.NewOTelObserver("accessibility.assessments"),
		)),
	)

	type server struct {
		*http.Server
		ln net.Listener
	}
	servers := []server{{
		Server: &http.Server{
			Handler:           svc.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		ln: ln,
	}, {
		Server: &http.Server{
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		ln: metricsLn,
	}}

	eg, ctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		eg.Go(func() error {
			addr := srv.ln.Addr().String()
			clog.InfoContextf(ctx, "Listening on %s", addr)
			if err := srv.Serve(srv.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving %s: %w", addr, err)
			}
			return nil
		})
	}
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})
	return eg.Wait()
}
