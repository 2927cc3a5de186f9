//go:build js && wasm

// Command hyperflex-wasm exposes the element builder to the browser as a
// global hyperflex object:
//
//	hyperflex.html("a#home.nav", {attributes: {href: "/"}, text: "Home"})
//	hyperflex.parse("li.item")
//	hyperflex.build(yamlOrJSON)
//	hyperflex.render(yamlOrJSON)
//
// Failures are returned as Error objects carrying a code property.
package main

import (
	stderrors "errors"
	"syscall/js"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/builder"
	"github.com/vango-dev/hyperflex/pkg/jsdom"
	"github.com/vango-dev/hyperflex/pkg/render"
	"github.com/vango-dev/hyperflex/pkg/selector"
	"github.com/vango-dev/hyperflex/pkg/tree"
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("html", js.FuncOf(html))
	api.Set("parse", js.FuncOf(parse))
	api.Set("build", js.FuncOf(build))
	api.Set("render", js.FuncOf(renderHTML))
	js.Global().Set("hyperflex", api)

	select {}
}

// html(selector, params) returns a live element. params must be an object.
func html(_ js.Value, args []js.Value) any {
	sel, err := stringArg(args, 0, "selector")
	if err != nil {
		return jsError(err)
	}
	params := js.Undefined()
	if len(args) > 1 {
		params = args[1]
	}
	p, err := jsdom.ParamsFromJS(params)
	if err != nil {
		return jsError(err)
	}
	el, err := builder.HTML(jsdom.New(), sel, p)
	if err != nil {
		return jsError(err)
	}
	return el.(*jsdom.Element).Value()
}

// parse(selector) returns {tag, id, classList}.
func parse(_ js.Value, args []js.Value) any {
	sel, err := stringArg(args, 0, "selector")
	if err != nil {
		return jsError(err)
	}
	d, err := selector.Parse(sel)
	if err != nil {
		return jsError(err)
	}
	classes := make([]any, len(d.ClassList))
	for i, c := range d.ClassList {
		classes[i] = c
	}
	return map[string]any{
		"tag":       d.Tag,
		"id":        d.ID,
		"classList": classes,
	}
}

// build(document) builds a YAML or JSON element document into live elements.
func build(_ js.Value, args []js.Value) any {
	src, err := stringArg(args, 0, "document")
	if err != nil {
		return jsError(err)
	}
	spec, err := tree.Decode("document", []byte(src))
	if err != nil {
		return jsError(err)
	}
	el, err := tree.Build(jsdom.New(), spec)
	if err != nil {
		return jsError(err)
	}
	return el.(*jsdom.Element).Value()
}

// render(document) returns the document's HTML without touching the page.
func renderHTML(_ js.Value, args []js.Value) any {
	src, err := stringArg(args, 0, "document")
	if err != nil {
		return jsError(err)
	}
	spec, err := tree.Decode("document", []byte(src))
	if err != nil {
		return jsError(err)
	}
	node, err := tree.BuildVNode(spec)
	if err != nil {
		return jsError(err)
	}
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return jsError(err)
	}
	return out
}

func stringArg(args []js.Value, i int, name string) (string, error) {
	if len(args) <= i || args[i].Type() != js.TypeString {
		given := "undefined"
		if len(args) > i {
			given = args[i].Type().String()
		}
		return "", errors.New("E001").WithDetailf("`%s` should be a string, `%s` given", name, given)
	}
	return args[i].String(), nil
}

func jsError(err error) js.Value {
	e := js.Global().Get("Error").New(err.Error())
	var hf *errors.HyperFlexError
	if stderrors.As(err, &hf) {
		e.Set("code", hf.Code)
		e.Set("detail", hf.Detail)
		if hf.Location != nil {
			e.Set("line", hf.Location.Line)
			e.Set("column", hf.Location.Column)
		}
	}
	return e
}
