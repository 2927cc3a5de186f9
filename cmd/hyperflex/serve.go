package main

import (
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hyperflex/pkg/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the render server",
		Long: `Start an HTTP server that renders posted documents.

Routes:
  POST /render   document in, HTML out (?pretty=1, ?page=1&title=...)
  GET  /parse    ?selector=...
  GET  /ws       WebSocket playground
  GET  /metrics  Prometheus metrics
  GET  /healthz  liveness

Examples:
  hyperflex serve
  hyperflex serve --port=9000 --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}

			srv := server.New(server.Config{
				Address:          net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
				MaxBodyBytes:     cfg.Server.MaxBodyBytes,
				Pretty:           cfg.Render.Pretty,
				Indent:           cfg.Render.Indent,
				MetricsEnabled:   cfg.Metrics.Enabled,
				MetricsPath:      cfg.Metrics.Path,
				MetricsNamespace: cfg.Metrics.Namespace,
				TracingEnabled:   cfg.Tracing.Enabled,
				TracerName:       cfg.Tracing.TracerName,
			}, server.WithLogger(a.logger))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := cmd.ErrOrStderr()
			printBanner(w)
			info(w, "Listening on http://%s", net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}
