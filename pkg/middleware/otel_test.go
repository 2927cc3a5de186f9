package middleware

import (
	"context"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/hyperflex/pkg/tree"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

type recordedSpan struct {
	noop.Span
	name   string
	attrs  []attribute.KeyValue
	errs   []error
	status codes.Code
	ended  bool
}

func (s *recordedSpan) End(...trace.SpanEndOption)                    { s.ended = true }
func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue)        { s.attrs = append(s.attrs, kv...) }
func (s *recordedSpan) RecordError(err error, _ ...trace.EventOption) { s.errs = append(s.errs, err) }
func (s *recordedSpan) SetStatus(code codes.Code, _ string)           { s.status = code }

func (s *recordedSpan) attr(key string) (attribute.Value, bool) {
	for _, kv := range s.attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

type recordingTracer struct {
	embedded.Tracer
	mu    sync.Mutex
	spans []*recordedSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordedSpan{name: name, attrs: cfg.Attributes()}
	t.mu.Lock()
	t.spans = append(t.spans, s)
	t.mu.Unlock()
	return trace.ContextWithSpan(ctx, s), s
}

type recordingProvider struct {
	embedded.TracerProvider
	tracer *recordingTracer
	name   string
}

func (p *recordingProvider) Tracer(name string, _ ...trace.TracerOption) trace.Tracer {
	p.name = name
	return p.tracer
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{tracer: &recordingTracer{}}
}

func TestOpenTelemetryMiddleware_RecordsSpan(t *testing.T) {
	tp := newRecordingProvider()
	var inner trace.Span
	capture := func(next RenderFunc) RenderFunc {
		return func(ctx context.Context, spec *tree.Spec) (*vdom.VNode, error) {
			inner = trace.SpanFromContext(ctx)
			return next(ctx, spec)
		}
	}

	render := Chain(Build,
		OpenTelemetry(
			WithTracerProvider(tp),
			WithTracerName("test"),
			WithAttributeExtractor(func(*tree.Spec) []attribute.KeyValue {
				return []attribute.KeyValue{attribute.String("test.attr", "ok")}
			}),
		),
		capture,
	)
	if _, err := render(context.Background(), testSpec()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tp.name != "test" {
		t.Errorf("tracer name = %q, want test", tp.name)
	}
	if len(tp.tracer.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(tp.tracer.spans))
	}
	s := tp.tracer.spans[0]
	if s.name != SpanName || !s.ended || s.status != codes.Ok {
		t.Errorf("span = %+v", s)
	}
	if v, _ := s.attr("hyperflex.selector"); v.AsString() != "ul.list" {
		t.Errorf("selector attr = %v", v.AsString())
	}
	if v, _ := s.attr("hyperflex.elements"); v.AsInt64() != 3 {
		t.Errorf("elements attr = %v", v.AsInt64())
	}
	if v, _ := s.attr("test.attr"); v.AsString() != "ok" {
		t.Errorf("custom attr missing")
	}
	if inner != trace.Span(s) {
		t.Error("span not propagated through context")
	}
}

func TestOpenTelemetryMiddleware_RecordsError(t *testing.T) {
	tp := newRecordingProvider()
	render := Chain(Build, OpenTelemetry(WithTracerProvider(tp)))

	if _, err := render(context.Background(), badSpec()); err == nil {
		t.Fatal("expected error")
	}
	s := tp.tracer.spans[0]
	if s.status != codes.Error || len(s.errs) != 1 || !s.ended {
		t.Errorf("span = %+v", s)
	}
	if v, ok := s.attr("hyperflex.error_code"); !ok || v.AsString() != "E002" {
		t.Errorf("error_code attr = %v", v.AsString())
	}
	if tp.name != defaultTracerName {
		t.Errorf("tracer name = %q", tp.name)
	}
}

func TestOpenTelemetryMiddleware_FilterSkipsTracing(t *testing.T) {
	tp := newRecordingProvider()
	render := Chain(Build, OpenTelemetry(
		WithTracerProvider(tp),
		WithFilter(func(s *tree.Spec) bool { return s.Selector != "ul.list" }),
	))

	if _, err := render(context.Background(), testSpec()); err != nil {
		t.Fatal(err)
	}
	if len(tp.tracer.spans) != 0 {
		t.Errorf("spans = %d, want 0", len(tp.tracer.spans))
	}
}
