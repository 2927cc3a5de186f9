// Package hyperflex builds DOM elements from a CSS-like selector and a
// parameter bag.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/hyperflex"
//
// Usage:
//
//	doc := hyperflex.NewDocument()
//	el, err := hyperflex.HTML(doc, "a#home.nav", hyperflex.NewParams(
//	    hyperflex.WithAttribute("href", "/"),
//	    hyperflex.WithText("Home"),
//	))
//	html, err := hyperflex.RenderString(el.(*hyperflex.VNode))
package hyperflex

import (
	"github.com/vango-dev/hyperflex/pkg/builder"
	"github.com/vango-dev/hyperflex/pkg/dom"
	"github.com/vango-dev/hyperflex/pkg/render"
	"github.com/vango-dev/hyperflex/pkg/selector"
	"github.com/vango-dev/hyperflex/pkg/tree"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// =============================================================================
// Document API (re-export from pkg/dom)
// =============================================================================

type (
	Node      = dom.Node
	Element   = dom.Element
	Document  = dom.Document
	ClassList = dom.ClassList
	Style     = dom.Style
)

// =============================================================================
// Builder (re-export from pkg/builder)
// =============================================================================

type (
	Builder     = builder.Builder
	Params      = builder.Params
	ParamOption = builder.ParamOption
)

// New returns a single-use Builder. See builder.New.
var New = builder.New

// HTML builds one element. See builder.HTML.
var HTML = builder.HTML

var (
	NewParams      = builder.NewParams
	WithAttribute  = builder.WithAttribute
	WithAttributes = builder.WithAttributes
	WithProperty   = builder.WithProperty
	WithClass      = builder.WithClass
	WithStyle      = builder.WithStyle
	WithText       = builder.WithText
	WithChildren   = builder.WithChildren
)

// Sentinel errors for errors.Is.
var (
	ErrInvalidArgument = builder.ErrInvalidArgument
	ErrInvalidSelector = builder.ErrInvalidSelector
	ErrAlreadyBuilt    = builder.ErrAlreadyBuilt
)

// =============================================================================
// Selectors
// =============================================================================

// Descriptor is a parsed selector.
type Descriptor = selector.Descriptor

// ParseSelector splits a selector into tag, id and classes.
var ParseSelector = selector.Parse

// =============================================================================
// In-memory documents and rendering
// =============================================================================

// VNode is an element or text node of the in-memory document.
type VNode = vdom.VNode

// NewDocument returns an in-memory Document.
var NewDocument = vdom.NewDocument

// RenderString renders node as compact HTML.
func RenderString(node *VNode) (string, error) {
	return render.NewRenderer(render.RendererConfig{}).RenderToString(node)
}

// RenderDocument decodes a YAML or JSON element document, builds it and
// returns its HTML. name labels error locations.
func RenderDocument(name string, src []byte) (string, error) {
	spec, err := tree.Decode(name, src)
	if err != nil {
		return "", err
	}
	node, err := tree.BuildVNode(spec)
	if err != nil {
		return "", err
	}
	return RenderString(node)
}
