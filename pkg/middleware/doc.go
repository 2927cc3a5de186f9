// Package middleware instruments element tree builds.
//
// A RenderFunc turns a decoded document into a tree; a Middleware wraps
// one. Chain composes them around the base Build function:
//
//	render := middleware.Chain(middleware.Build,
//	    middleware.Logging(logger),
//	    middleware.Prometheus(middleware.WithRegistry(reg)),
//	    middleware.OpenTelemetry(),
//	)
//	node, err := render(ctx, spec)
//
// # Prometheus Metrics
//
// Prometheus registers its collectors once per registry, so calling it
// again with the same registry reuses them.
//
// # OpenTelemetry
//
// OpenTelemetry records one "hyperflex.build" span per build using the
// global tracer provider, or the one passed with WithTracerProvider.
package middleware
