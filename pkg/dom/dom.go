package dom

// Node is an opaque handle to a document node.
type Node interface {
	// NodeName returns the upper-case tag name for elements and "#text"
	// for text nodes.
	NodeName() string
}

// ClassList is the set of class names carried by an element.
type ClassList interface {
	// Add appends names that are not already present, in order.
	Add(names ...string)
	Contains(name string) bool
	Len() int
}

// Style is an element's inline style declarations.
type Style interface {
	// Set assigns a style property. An empty value removes it.
	Set(name, value string)
	Get(name string) string
}

// Element is a node that carries attributes, properties, classes,
// styles and children.
type Element interface {
	Node

	SetID(id string)

	// SetAttribute sets a named attribute. Non-string values are
	// converted to strings by the document.
	SetAttribute(name string, value any)

	// SetProperty assigns a value directly to a named field of the
	// element, bypassing attribute serialization.
	SetProperty(name string, value any)

	ClassList() ClassList
	Style() Style

	// AppendChild appends child as the last child. A child that already
	// has a parent is moved.
	AppendChild(child Node)
}

// Document creates nodes.
type Document interface {
	CreateElement(tag string) Element
	CreateTextNode(text string) Node
}
