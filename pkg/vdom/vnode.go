package vdom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/hyperflex/pkg/dom"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is an in-memory document node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name, lower case (e.g., "div")
	Text     string   // For KindText
	Attrs    Attrs    // Attributes in insertion order
	Props    Props    // Properties assigned with SetProperty
	Classes  ClassSet // Class names in insertion order
	Styles   StyleMap // Inline style declarations in insertion order
	Children []*VNode // Child nodes
	Parent   *VNode   // Parent element, nil for detached nodes
}

// Props holds properties assigned directly to an element.
type Props map[string]any

var (
	_ dom.Element = (*VNode)(nil)
	_ dom.Node    = (*VNode)(nil)
)

// NodeName implements dom.Node.
func (v *VNode) NodeName() string {
	if v.Kind == KindText {
		return "#text"
	}
	return strings.ToUpper(v.Tag)
}

// SetID implements dom.Element.
func (v *VNode) SetID(id string) {
	v.Attrs.Set("id", id)
}

// ID returns the element's id attribute.
func (v *VNode) ID() string {
	id, _ := v.Attrs.Get("id")
	return id
}

// SetAttribute implements dom.Element. The class and style attributes
// replace the element's class set and style declarations. Names rejected
// by dom.ValidAttributeName are ignored.
func (v *VNode) SetAttribute(name string, value any) {
	if !dom.ValidAttributeName(name) {
		return
	}
	name = strings.ToLower(name)
	s := attrToString(value)
	switch name {
	case "class":
		v.Classes.Reset()
		v.Classes.Add(strings.Fields(s)...)
	case "style":
		v.Styles.Reset()
		v.Styles.parse(s)
	default:
		v.Attrs.Set(name, s)
	}
}

// RemoveAttribute removes a named attribute.
func (v *VNode) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	switch name {
	case "class":
		v.Classes.Reset()
	case "style":
		v.Styles.Reset()
	default:
		v.Attrs.Remove(name)
	}
}

// Attr returns the value of a named attribute, including the class and
// style attributes derived from the class set and style map.
func (v *VNode) Attr(name string) (string, bool) {
	switch strings.ToLower(name) {
	case "class":
		if v.Classes.Len() == 0 {
			return "", false
		}
		return v.Classes.String(), true
	case "style":
		if v.Styles.Len() == 0 {
			return "", false
		}
		return v.Styles.String(), true
	}
	return v.Attrs.Get(strings.ToLower(name))
}

// SetProperty implements dom.Element. Properties that reflect to an
// attribute (title, hidden, className, htmlFor, ...) update it too.
func (v *VNode) SetProperty(name string, value any) {
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[name] = value
	v.reflect(name, value)
}

// Prop returns a property assigned with SetProperty.
func (v *VNode) Prop(name string) (any, bool) {
	value, ok := v.Props[name]
	return value, ok
}

// ClassList implements dom.Element.
func (v *VNode) ClassList() dom.ClassList {
	return &v.Classes
}

// Style implements dom.Element.
func (v *VNode) Style() dom.Style {
	return &v.Styles
}

// AppendChild implements dom.Element. A child that is already attached is
// detached from its current parent first. Appending a node from another
// implementation, or an ancestor of v, panics.
func (v *VNode) AppendChild(child dom.Node) {
	c, ok := child.(*VNode)
	if !ok || c == nil {
		panic(fmt.Sprintf("vdom: AppendChild: cannot append %T", child))
	}
	if v.Kind != KindElement {
		panic("vdom: AppendChild: text nodes cannot have children")
	}
	for p := v; p != nil; p = p.Parent {
		if p == c {
			panic("vdom: AppendChild: the new child is an ancestor of the parent")
		}
	}
	c.Detach()
	c.Parent = v
	v.Children = append(v.Children, c)
}

// Detach removes v from its parent's children.
func (v *VNode) Detach() {
	p := v.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == v {
			p.Children = append(p.Children[:i:i], p.Children[i+1:]...)
			break
		}
	}
	v.Parent = nil
}

// TextContent returns the concatenated text of v and its descendants.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	var b strings.Builder
	Walk(v, func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}
