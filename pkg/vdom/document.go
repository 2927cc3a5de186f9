package vdom

import (
	"strings"

	"github.com/vango-dev/hyperflex/pkg/dom"
)

// Document creates VNodes. It holds no state and is safe for
// concurrent use; the trees it produces are not.
type Document struct{}

var _ dom.Document = (*Document)(nil)

// NewDocument returns an in-memory document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement implements dom.Document. Tag names are lower-cased.
func (d *Document) CreateElement(tag string) dom.Element {
	return Element(tag)
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return Text(text)
}

// Element creates a detached element node.
func Element(tag string) *VNode {
	return &VNode{
		Kind:     KindElement,
		Tag:      strings.ToLower(tag),
		Children: make([]*VNode, 0),
	}
}

// Text creates a detached text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}
