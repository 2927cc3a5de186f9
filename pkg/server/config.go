package server

import (
	"net/http"
	"time"
)

// Config holds configuration for the render server.
type Config struct {
	// Address is the address to listen on.
	// Default: "localhost:8080".
	Address string

	// MaxBodyBytes limits POST /render bodies and WebSocket messages.
	// Default: 1 MiB.
	MaxBodyBytes int64

	// Pretty enables indented HTML output for every response.
	// Requests can also ask for it with ?pretty=1.
	Pretty bool

	// Indent is the indentation used for pretty output.
	Indent string

	// MetricsEnabled mounts the Prometheus handler and instruments builds.
	MetricsEnabled bool

	// MetricsPath is the path of the metrics endpoint.
	// Default: "/metrics".
	MetricsPath string

	// MetricsNamespace prefixes metric names.
	// Default: "hyperflex".
	MetricsNamespace string

	// TracingEnabled records an OpenTelemetry span per build.
	TracingEnabled bool

	// TracerName is the OpenTelemetry tracer name.
	TracerName string

	// CheckOrigin validates WebSocket origins. Default: allow all.
	CheckOrigin func(r *http.Request) bool

	// ReadHeaderTimeout bounds reading request headers.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:           "localhost:8080",
		MaxBodyBytes:      1 << 20,
		Indent:            "  ",
		MetricsEnabled:    true,
		MetricsPath:       "/metrics",
		MetricsNamespace:  "hyperflex",
		TracerName:        "hyperflex",
		CheckOrigin:       func(*http.Request) bool { return true },
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = d.MaxBodyBytes
	}
	if c.Indent == "" {
		c.Indent = d.Indent
	}
	if c.MetricsPath == "" {
		c.MetricsPath = d.MetricsPath
	}
	if c.MetricsNamespace == "" {
		c.MetricsNamespace = d.MetricsNamespace
	}
	if c.TracerName == "" {
		c.TracerName = d.TracerName
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = d.CheckOrigin
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}
