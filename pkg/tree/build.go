package tree

import (
	stderrors "errors"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/builder"
	"github.com/vango-dev/hyperflex/pkg/dom"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// Build creates the element tree described by spec. Children are built
// first and passed to the builder as child nodes.
func Build(doc dom.Document, spec *Spec) (dom.Element, error) {
	if spec == nil {
		return nil, errors.New("E001").WithDetail("Build: `spec` should be a *tree.Spec, `<nil>` given")
	}

	children := make([]dom.Node, 0, len(spec.Children))
	for _, c := range spec.Children {
		if c.IsText() {
			children = append(children, doc.CreateTextNode(c.Text))
			continue
		}
		el, err := Build(doc, c.Spec)
		if err != nil {
			return nil, err
		}
		children = append(children, el)
	}

	el, err := builder.HTML(doc, spec.Selector, &builder.Params{
		Attributes: spec.Attributes,
		Properties: spec.Properties,
		ClassList:  spec.ClassList,
		Styles:     spec.Styles,
		Text:       spec.Text,
		ChildNodes: children,
	})
	if err != nil {
		return nil, spec.locate(err)
	}
	return el, nil
}

// BuildVNode builds spec on a fresh in-memory document.
func BuildVNode(spec *Spec) (*vdom.VNode, error) {
	el, err := Build(vdom.NewDocument(), spec)
	if err != nil {
		return nil, err
	}
	return el.(*vdom.VNode), nil
}

// locate attaches the element's source position to a builder error.
func (s *Spec) locate(err error) error {
	var he *errors.HyperFlexError
	if s.src == nil || s.Line == 0 || !stderrors.As(err, &he) || he.Location != nil {
		return err
	}
	return he.WithSource(s.src.name, s.src.data, s.Line, s.Column)
}
