package main

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/middleware"
	"github.com/vango-dev/hyperflex/pkg/render"
	"github.com/vango-dev/hyperflex/pkg/tree"
)

// renderOptions select how a document is serialized.
type renderOptions struct {
	pretty bool
	page   bool
	title  string
}

// readDocument reads path, or stdin when path is "-" or empty.
func readDocument(path string, stdin io.Reader) (string, []byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		return "<stdin>", data, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, errors.New("E040").WithDetail(path).Wrap(err)
		}
		return "", nil, err
	}
	return path, data, nil
}

// renderDocument decodes and builds a document and returns its HTML.
func (a *app) renderDocument(ctx context.Context, name string, src []byte, opts renderOptions) ([]byte, error) {
	spec, err := tree.Decode(name, src)
	if err != nil {
		return nil, err
	}

	build := middleware.Chain(middleware.Build, middleware.Logging(a.logger))
	node, err := build(ctx, spec)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	r := render.NewRenderer(render.RendererConfig{
		Pretty: opts.pretty || a.cfg.Render.Pretty,
		Indent: a.cfg.Render.Indent,
	})
	if opts.page {
		err = r.RenderPage(&buf, render.PageData{Title: opts.title, Body: node})
	} else {
		err = r.RenderToWriter(&buf, node)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
