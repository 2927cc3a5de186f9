//go:build js && wasm

package jsdom

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/vango-dev/hyperflex/pkg/dom"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// Document wraps a browser document.
type Document struct {
	doc js.Value
}

var _ dom.Document = (*Document)(nil)

// New wraps the global document.
func New() *Document {
	return Wrap(js.Global().Get("document"))
}

// Wrap wraps an arbitrary document object, such as one created with
// document.implementation.createHTMLDocument.
func Wrap(doc js.Value) *Document {
	return &Document{doc: doc}
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{v: d.doc.Call("createElement", tag)}
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return &Text{v: d.doc.Call("createTextNode", text)}
}

// Text is a browser text node.
type Text struct {
	v js.Value
}

// NodeName implements dom.Node.
func (t *Text) NodeName() string { return "#text" }

// Value returns the underlying JS node.
func (t *Text) Value() js.Value { return t.v }

// Element is a browser element.
type Element struct {
	v js.Value
}

var _ dom.Element = (*Element)(nil)

// WrapNode wraps a JS node as an Element or Text by its nodeType. Values
// without a numeric nodeType of 1 or 3 are rejected.
func WrapNode(v js.Value) (dom.Node, bool) {
	if v.Type() != js.TypeObject {
		return nil, false
	}
	nt := v.Get("nodeType")
	if nt.Type() != js.TypeNumber {
		return nil, false
	}
	switch nt.Int() {
	case 1:
		return &Element{v: v}, true
	case 3:
		return &Text{v: v}, true
	}
	return nil, false
}

// Value returns the underlying JS element.
func (e *Element) Value() js.Value { return e.v }

// NodeName implements dom.Node.
func (e *Element) NodeName() string { return e.v.Get("nodeName").String() }

// SetID implements dom.Element.
func (e *Element) SetID(id string) { e.v.Set("id", id) }

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name string, value any) {
	e.v.Call("setAttribute", name, toJS(value))
}

// SetProperty implements dom.Element.
func (e *Element) SetProperty(name string, value any) {
	e.v.Set(name, toJS(value))
}

// ClassList implements dom.Element.
func (e *Element) ClassList() dom.ClassList {
	return classList{e.v.Get("classList")}
}

// Style implements dom.Element.
func (e *Element) Style() dom.Style {
	return style{e.v.Get("style")}
}

// AppendChild implements dom.Element. The browser moves a child that
// already has a parent.
func (e *Element) AppendChild(child dom.Node) {
	switch c := child.(type) {
	case *Element:
		e.v.Call("appendChild", c.v)
	case *Text:
		e.v.Call("appendChild", c.v)
	default:
		panic(fmt.Sprintf("jsdom: AppendChild: cannot append %T", child))
	}
}

type classList struct {
	v js.Value
}

// Add skips blank names; DOMTokenList.add throws on them.
func (c classList) Add(names ...string) {
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" && !strings.ContainsAny(n, " \t\n") {
			c.v.Call("add", n)
		}
	}
}

func (c classList) Contains(name string) bool { return c.v.Call("contains", name).Bool() }
func (c classList) Len() int                  { return c.v.Get("length").Int() }

type style struct {
	v js.Value
}

func (s style) Set(name, value string) {
	if value == "" {
		s.v.Call("removeProperty", vdom.CSSName(name))
		return
	}
	s.v.Call("setProperty", vdom.CSSName(name), value)
}

func (s style) Get(name string) string {
	return s.v.Call("getPropertyValue", vdom.CSSName(name)).String()
}

// toJS converts a Go value into something js.ValueOf accepts.
func toJS(value any) any {
	switch v := value.(type) {
	case nil, js.Value, js.Func, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return v
	case *Element:
		return v.v
	case *Text:
		return v.v
	case []any:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = toJS(x)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, x := range v {
			out[k] = toJS(x)
		}
		return out
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
