package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vango-dev/hyperflex/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hyperflex.json"

	// DefaultPort is the default render server port.
	DefaultPort = 8080

	// DefaultHost is the default render server host.
	DefaultHost = "localhost"

	// DefaultMaxBodyBytes limits the size of a document posted to the server.
	DefaultMaxBodyBytes int64 = 1 << 20

	// DefaultIndent is the indentation used for pretty output.
	DefaultIndent = "  "

	// DefaultContentType is the content type of published documents.
	DefaultContentType = "text/html; charset=utf-8"
)

// Config represents the complete hyperflex.json configuration.
type Config struct {
	// Render contains HTML output settings.
	Render RenderConfig `json:"render"`

	// Server contains render server settings.
	Server ServerConfig `json:"server"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing"`

	// Publish contains S3 publishing settings.
	Publish PublishConfig `json:"publish"`

	// Log contains logging settings.
	Log LogConfig `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the string used per indentation level.
	Indent string `json:"indent,omitempty"`
}

// ServerConfig contains render server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// MaxBodyBytes limits request bodies; larger bodies are rejected.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes build metrics.
	Enabled bool `json:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`

	// Path is the URL path of the metrics endpoint.
	Path string `json:"path,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled records a span per build.
	Enabled bool `json:"enabled,omitempty"`

	// TracerName is the name of the tracer.
	TracerName string `json:"tracerName,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	Bucket       string `json:"bucket,omitempty"`
	Prefix       string `json:"prefix,omitempty"`
	Region       string `json:"region,omitempty"`
	ContentType  string `json:"contentType,omitempty"`
	CacheControl string `json:"cacheControl,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{
			Indent: DefaultIndent,
		},
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "hyperflex",
			Path:      "/metrics",
		},
		Tracing: TracingConfig{
			TracerName: "hyperflex",
		},
		Publish: PublishConfig{
			ContentType: DefaultContentType,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for hyperflex.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
// A missing file is reported with an error that matches os.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E020").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or pass --config").
				Wrap(err)
		}
		return nil, errors.New("E020").WithDetail(err.Error()).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		e := errors.New("E020").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			Wrap(err)
		if line, col := jsonErrorPosition(data, err); line > 0 {
			e = e.WithSource(path, data, line, col)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E020").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E020").WithDetail(err.Error()).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "hyperflex"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = "hyperflex"
	}

	if c.Publish.ContentType == "" {
		c.Publish.ContentType = DefaultContentType
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E021").
			WithDetail("server.port must be between 0 and 65535")
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New("E021").
			WithDetail("server.maxBodyBytes must not be negative")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E021").
			WithDetailf("metrics.path must start with '/', %q given", c.Metrics.Path)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("E021").
			WithDetailf("log.level must be one of debug, info, warn, error, %q given", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E021").
			WithDetailf("log.format must be text or json, %q given", c.Log.Format)
	}
	if strings.TrimSpace(c.Render.Indent) != "" {
		return errors.New("E021").
			WithDetail("render.indent must contain only whitespace")
	}
	return nil
}

// ServerAddress returns the host:port the server listens on.
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// jsonErrorPosition converts the byte offset of a JSON decode error into a
// 1-based line and column.
func jsonErrorPosition(data []byte, err error) (line, col int) {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case stderrors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0, 0
	}
	if offset <= 0 || offset > int64(len(data)) {
		return 0, 0
	}
	before := data[:offset]
	line = bytes.Count(before, []byte{'\n'}) + 1
	col = int(offset) - (bytes.LastIndexByte(before, '\n') + 1)
	return line, col
}
