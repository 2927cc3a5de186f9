// Package render serializes vdom trees to HTML.
//
// Attributes are written in the order they were set, followed by the
// class attribute (from the element's class set) and the style attribute
// (from its style declarations). Text and attribute values are escaped.
// Void elements get no closing tag and boolean attributes with an empty
// value are written bare.
//
// To render a node to a string:
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// To render a complete document:
//
//	err := r.RenderPage(w, render.PageData{Title: "Demo", Body: node})
//
// StreamingRenderer does the same but flushes the head as soon as it is
// written when the writer is an http.Flusher.
package render
