package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/tree"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// Default tracer name.
const defaultTracerName = "hyperflex"

// SpanName is the name of the span recorded for each build.
const SpanName = "hyperflex.build"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "hyperflex").
	TracerName string

	// TracerProvider supplies the tracer.
	// Default: the global provider from otel.GetTracerProvider.
	TracerProvider trace.TracerProvider

	// Filter determines which builds to trace.
	// If nil, all builds are traced.
	Filter func(spec *tree.Spec) bool

	// AttributeExtractor adds custom attributes for a build.
	AttributeExtractor func(spec *tree.Spec) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithFilter sets a filter function for builds.
func WithFilter(filter func(spec *tree.Spec) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(spec *tree.Spec) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates middleware that records a span for every build.
//
// The span carries the root selector and the element count. Errors are
// recorded on the span with their code and the status is set to Error.
// The tracer comes from the global provider unless WithTracerProvider is
// given; configure it in main() before serving.
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.TracerProvider == nil {
		config.TracerProvider = otel.GetTracerProvider()
	}
	tracer := config.TracerProvider.Tracer(config.TracerName)

	return func(next RenderFunc) RenderFunc {
		return func(ctx context.Context, spec *tree.Spec) (*vdom.VNode, error) {
			if spec == nil || (config.Filter != nil && !config.Filter(spec)) {
				return next(ctx, spec)
			}

			attrs := []attribute.KeyValue{
				attribute.String("hyperflex.selector", spec.Selector),
				attribute.Int("hyperflex.elements", spec.Count()),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(spec)...)
			}

			ctx, span := tracer.Start(ctx, SpanName,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			node, err := next(ctx, spec)
			if err != nil {
				if code := errors.CodeOf(err); code != "" {
					span.SetAttributes(attribute.String("hyperflex.error_code", code))
				}
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			span.SetStatus(codes.Ok, "")
			return node, nil
		}
	}
}
