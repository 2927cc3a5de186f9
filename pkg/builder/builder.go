package builder

import (
	"fmt"
	"sort"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/dom"
	"github.com/vango-dev/hyperflex/pkg/selector"
)

// Sentinel errors. Compare with errors.Is.
var (
	ErrInvalidArgument = errors.New("E001")
	ErrInvalidSelector = errors.New("E002")
	ErrAlreadyBuilt    = errors.New("E003")
)

// Builder creates one element from a selector and Params.
// A Builder is single use.
type Builder struct {
	doc      dom.Document
	selector string
	params   *Params
	element  dom.Element
	built    bool
}

// New validates its arguments and returns a Builder ready to Build.
func New(doc dom.Document, sel string, params *Params) (*Builder, error) {
	if isNil(doc) {
		return nil, invalidArgument("New", "doc", "a dom.Document", doc)
	}
	if params == nil {
		return nil, invalidArgument("New", "params", "a *builder.Params", params)
	}
	return &Builder{
		doc:      doc,
		selector: sel,
		params:   params,
	}, nil
}

// HTML builds an element in one call.
func HTML(doc dom.Document, sel string, params *Params) (dom.Element, error) {
	b, err := New(doc, sel, params)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// Selector returns the selector the builder was created with.
func (b *Builder) Selector() string {
	return b.selector
}

// Element returns the built element, or nil before Build succeeds.
func (b *Builder) Element() dom.Element {
	return b.element
}

// Build creates the element and applies the parameters in a fixed order:
// id and selector classes, then attributes, properties, classes, styles,
// text and child nodes. On error no element is returned.
func (b *Builder) Build() (dom.Element, error) {
	if b.built {
		return nil, errors.New("E003").
			WithDetailf("builder for %q has already built its element", b.selector)
	}
	b.built = true

	if err := b.validate(); err != nil {
		return nil, err
	}

	d, err := selector.Parse(b.selector)
	if err != nil {
		return nil, err
	}

	el := b.doc.CreateElement(d.Tag)
	if d.ID != "" {
		el.SetID(d.ID)
	}
	addClasses(el, d.ClassList)

	for _, apply := range steps {
		apply(b, el)
	}

	b.element = el
	return el, nil
}

// validate checks the parts of Params the type system cannot.
func (b *Builder) validate() error {
	for _, name := range sortedKeys(b.params.Attributes) {
		if !dom.ValidAttributeName(name) {
			return errors.New("E001").
				WithDetailf("setAttributes: %q is not a valid attribute name", name)
		}
	}
	for i, child := range b.params.ChildNodes {
		if isNil(child) {
			return invalidArgument("setChildNodes", fmt.Sprintf("childNodes[%d]", i), "a dom.Node", child)
		}
	}
	return nil
}

// step applies one part of Params to the element.
type step func(b *Builder, el dom.Element)

var steps = []step{
	applyAttributes,
	applyProperties,
	applyClassList,
	applyStyles,
	applyText,
	applyChildNodes,
}

func applyAttributes(b *Builder, el dom.Element) {
	attrs := b.params.Attributes
	for _, name := range sortedKeys(attrs) {
		if v := attrs[name]; !isNil(v) {
			el.SetAttribute(name, v)
		}
	}
}

func applyProperties(b *Builder, el dom.Element) {
	props := b.params.Properties
	for _, name := range sortedKeys(props) {
		if v := props[name]; !isNil(v) {
			el.SetProperty(name, v)
		}
	}
}

func applyClassList(b *Builder, el dom.Element) {
	addClasses(el, b.params.ClassList)
}

func applyStyles(b *Builder, el dom.Element) {
	styles := b.params.Styles
	for _, name := range sortedKeys(styles) {
		el.Style().Set(name, styles[name])
	}
}

func applyText(b *Builder, el dom.Element) {
	if b.params.Text != "" {
		el.AppendChild(b.doc.CreateTextNode(b.params.Text))
	}
}

func applyChildNodes(b *Builder, el dom.Element) {
	for _, child := range b.params.ChildNodes {
		el.AppendChild(child)
	}
}

func addClasses(el dom.Element, names []string) {
	if len(names) > 0 {
		el.ClassList().Add(names...)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
