package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/tree"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "hyperflex").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for build duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "hyperflex",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the collectors registered on one registry.
type metrics struct {
	buildsTotal   *prometheus.CounterVec
	buildDuration prometheus.Histogram
	buildErrors   *prometheus.CounterVec
	elementsBuilt prometheus.Counter
}

// metricsKey identifies one set of collector names on one registry.
type metricsKey struct {
	registry  prometheus.Registerer
	namespace string
	subsystem string
}

// Collectors are created once per registry and name prefix; registering
// the same names twice would panic. Middleware sharing a prefix on a
// registry share collectors, including the first one's labels and buckets.
var (
	registered   = make(map[metricsKey]*metrics)
	registeredMu sync.Mutex
)

func metricsFor(config MetricsConfig) *metrics {
	registeredMu.Lock()
	defer registeredMu.Unlock()

	key := metricsKey{config.Registry, config.Namespace, config.Subsystem}
	if m, ok := registered[key]; ok {
		return m
	}
	m := initMetrics(config)
	registered[key] = m
	return m
}

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		buildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "builds_total",
			Help:        "Total number of element tree builds",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "build_duration_seconds",
			Help:        "Element tree build duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		buildErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "build_errors_total",
			Help:        "Total number of failed builds by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		elementsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "elements_built_total",
			Help:        "Total number of elements created by successful builds",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Prometheus creates middleware that collects build metrics.
//
// Metrics collected:
//   - hyperflex_builds_total: Counter of builds by status (success, error)
//   - hyperflex_build_duration_seconds: Histogram of build duration
//   - hyperflex_build_errors_total: Counter of failed builds by error code
//   - hyperflex_elements_built_total: Counter of elements built
//
// Expose them with promhttp.HandlerFor on the same registry.
func Prometheus(opts ...MetricsOption) Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	m := metricsFor(config)

	return func(next RenderFunc) RenderFunc {
		return func(ctx context.Context, spec *tree.Spec) (*vdom.VNode, error) {
			start := time.Now()
			node, err := next(ctx, spec)
			m.buildDuration.Observe(time.Since(start).Seconds())

			if err != nil {
				m.buildErrors.WithLabelValues(errorCode(err)).Inc()
				m.buildsTotal.WithLabelValues("error").Inc()
				return nil, err
			}
			m.buildsTotal.WithLabelValues("success").Inc()
			m.elementsBuilt.Add(float64(spec.Count()))
			return node, nil
		}
	}
}

// errorCode keeps the error label to the registered codes.
func errorCode(err error) string {
	if code := errors.CodeOf(err); code != "" {
		return code
	}
	switch err {
	case context.Canceled:
		return "canceled"
	case context.DeadlineExceeded:
		return "timeout"
	}
	return "internal"
}
