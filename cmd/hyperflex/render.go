package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/internal/watch"
)

func renderCmd(a *app) *cobra.Command {
	var (
		opts   renderOptions
		output string
		watchF bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to HTML",
		Long: `Render a YAML or JSON element document to HTML.

The document is read from the file argument, or from stdin when the
argument is omitted or "-". With --watch the file is rendered again every
time it changes.

Examples:
  hyperflex render menu.yaml
  hyperflex render --pretty --page --title Menu menu.yaml -o menu.html
  hyperflex render --watch menu.yaml -o menu.html
  echo '{"selector": "p.lead", "text": "hi"}' | hyperflex render`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			run := func(ctx context.Context) error {
				name, src, err := readDocument(path, cmd.InOrStdin())
				if err != nil {
					return err
				}
				html, err := a.renderDocument(ctx, name, src, opts)
				if err != nil {
					return err
				}
				return a.writeOutput(cmd, output, html, opts.pretty)
			}

			if !watchF {
				return run(cmd.Context())
			}
			if path == "" || path == "-" {
				return errors.New("E001").WithDetail("--watch needs a document file, not stdin")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watchDocument(ctx, path, cmd.ErrOrStderr(), run)
		},
	}

	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the output in a full HTML document")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Page title (with --page)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVarP(&watchF, "watch", "w", false, "Render again whenever the file changes")

	return cmd
}

func (a *app) writeOutput(cmd *cobra.Command, output string, html []byte, pretty bool) error {
	if output == "" {
		w := cmd.OutOrStdout()
		if _, err := w.Write(html); err != nil {
			return err
		}
		if !pretty && !a.cfg.Render.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}
	if err := os.WriteFile(output, html, 0644); err != nil {
		return err
	}
	success(cmd.ErrOrStderr(), "Wrote %s", output)
	return nil
}

// watchDocument runs render once and again on every change to path until
// ctx is done. Render errors are reported without stopping the watch.
func (a *app) watchDocument(ctx context.Context, path string, stderr io.Writer, render func(context.Context) error) error {
	if err := render(ctx); err != nil {
		printError(err)
	}

	w := watch.New(watch.Config{Paths: []string{path}})
	w.OnChange(func(c watch.Change) {
		if c.Op == watch.Remove {
			a.logger.Warn("document removed", "path", c.Path)
			return
		}
		a.logger.Debug("document changed", "path", c.Path)
		if err := render(ctx); err != nil {
			printError(err)
		}
	})

	info(stderr, "Watching %s (Ctrl+C to stop)", path)
	if err := w.Start(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
