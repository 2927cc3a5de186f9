// Package server exposes the element builder as an HTTP service.
//
// Routes:
//
//	POST /render       YAML or JSON document in, HTML out (?pretty=1, ?page=1&title=)
//	GET  /parse        ?selector=... parsed into {"tag","id","classList"}
//	GET  /ws           playground: each text message is a document
//	GET  /metrics      Prometheus metrics (when enabled)
//	GET  /healthz      liveness
//
// Errors are returned as {"error": {...}} with the code, message, detail
// and source location of the failure.
//
// Usage:
//
//	srv := server.New(server.Config{Address: ":8080"}, server.WithLogger(logger))
//	err := srv.ListenAndServe(ctx)
package server
