package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hyperflex/internal/config"
	"github.com/vango-dev/hyperflex/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦ ╦┬ ┬┌─┐┌─┐┬─┐┌─┐┬  ┌─┐─┐ ┬
  ╠═╣└┬┘├─┘├┤ ├┬┘├┤ │  ├┤ ┌┴┬┘
  ╩ ╩ ┴ ┴  └─┘┴└─└  ┴─┘└─┘┴ └─
`

// app carries state shared by every command once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	a := &app{}
	rootCmd := newRootCmd(a)

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hyperflex",
		Short: "Build HTML elements from selectors and parameters",
		Long: `hyperflex builds element trees from a selector such as
ul#menu.nav plus a set of attributes, properties, classes, styles,
text and child nodes.

Documents are YAML or JSON. Render them to HTML, serve a render
endpoint, or publish the output to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to "+config.ConfigFileName+" (default ./"+config.ConfigFileName+" if present)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text or json (default from config)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		parseCmd(a),
		renderCmd(a),
		serveCmd(a),
		publishCmd(a),
		initCmd(),
		versionCmd(),
	)
	return rootCmd
}

// init loads configuration and sets up logging. An explicit --config must
// exist; the default location is optional.
func (a *app) init(stderr io.Writer) error {
	if a.noColor {
		errors.DisableColors()
	}

	path := a.configPath
	if path == "" {
		path = filepath.Join(".", config.ConfigFileName)
	}
	cfg, err := config.LoadFile(path)
	switch {
	case err == nil:
	case a.configPath == "" && stderrors.Is(err, os.ErrNotExist):
		cfg = config.New()
	default:
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(stderr, cfg.Log)
	slog.SetDefault(a.logger)
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(lc.Level)}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// printError prints coded errors with their location and hint.
func printError(err error) {
	errors.PrintError(err)
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
