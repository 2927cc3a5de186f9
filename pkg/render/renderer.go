package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vango-dev/hyperflex/pkg/dom"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes VNode trees to HTML. It holds no per-render state
// and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node, depth)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		if r.config.Pretty && depth >= 0 {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	hasBlockChildren := len(node.Children) > 0 && !vdom.IsInlineElement(tag) && !onlyText(node)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	for _, child := range node.Children {
		childDepth := depth + 1
		if !hasBlockChildren {
			childDepth = -1
		}
		if err := r.renderNode(w, child, childDepth); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty && depth >= 0 {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}
	if _, err := io.WriteString(w, escapeHTML(node.Text)); err != nil {
		return err
	}
	if r.config.Pretty && depth > 0 {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderAttributes renders attributes in insertion order, followed by
// the class and style attributes.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	for _, attr := range node.Attrs {
		if err := writeAttr(w, attr.Key, attr.Value); err != nil {
			return err
		}
	}
	if node.Classes.Len() > 0 {
		if err := writeAttr(w, "class", node.Classes.String()); err != nil {
			return err
		}
	}
	if node.Styles.Len() > 0 {
		if err := writeAttr(w, "style", node.Styles.String()); err != nil {
			return err
		}
	}
	return nil
}

// writeAttr writes one attribute. Boolean attributes are written bare;
// attributes whose name cannot be serialized are dropped.
func writeAttr(w io.Writer, key, value string) error {
	if !dom.ValidAttributeName(key) {
		return nil
	}
	if vdom.IsBooleanAttr(key) && (value == "" || value == key) {
		_, err := fmt.Fprintf(w, " %s", key)
		return err
	}
	_, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value))
	return err
}

// onlyText reports whether every child is a text node.
func onlyText(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c.Kind != vdom.KindText {
			return false
		}
	}
	return true
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
