package builder

import "github.com/vango-dev/hyperflex/pkg/dom"

// Params carries everything about an element that is not encoded in its
// selector. The builder reads it and never modifies it.
type Params struct {
	// Attributes are set with SetAttribute. A nil value means "do not
	// set"; other values are converted to strings by the document.
	Attributes map[string]any

	// Properties are assigned directly to the element. A nil value means
	// "do not set".
	Properties map[string]any

	// ClassList is added after the selector's classes.
	ClassList []string

	// Styles are inline style declarations.
	Styles map[string]string

	// Text, when non-empty, is appended as a single text node.
	Text string

	// ChildNodes are appended in order after the text node.
	ChildNodes []dom.Node
}

// ParamOption configures Params.
type ParamOption func(*Params)

// NewParams returns Params with every mapping initialized.
func NewParams(opts ...ParamOption) *Params {
	p := &Params{
		Attributes: make(map[string]any),
		Properties: make(map[string]any),
		ClassList:  []string{},
		Styles:     make(map[string]string),
		ChildNodes: []dom.Node{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithAttribute sets one attribute. Pass nil to mark it as skipped.
func WithAttribute(name string, value any) ParamOption {
	return func(p *Params) {
		p.Attributes[name] = value
	}
}

// WithAttributes merges a set of attributes.
func WithAttributes(attrs map[string]any) ParamOption {
	return func(p *Params) {
		for k, v := range attrs {
			p.Attributes[k] = v
		}
	}
}

// WithProperty sets one property.
func WithProperty(name string, value any) ParamOption {
	return func(p *Params) {
		p.Properties[name] = value
	}
}

// WithClass appends class names.
func WithClass(names ...string) ParamOption {
	return func(p *Params) {
		p.ClassList = append(p.ClassList, names...)
	}
}

// WithStyle sets one inline style declaration.
func WithStyle(name, value string) ParamOption {
	return func(p *Params) {
		p.Styles[name] = value
	}
}

// WithText sets the text content.
func WithText(text string) ParamOption {
	return func(p *Params) {
		p.Text = text
	}
}

// WithChildren appends child nodes.
func WithChildren(nodes ...dom.Node) ParamOption {
	return func(p *Params) {
		p.ChildNodes = append(p.ChildNodes, nodes...)
	}
}
