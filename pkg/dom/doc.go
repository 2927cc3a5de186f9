// Package dom defines the document-object API that the element builder
// works against.
//
// Two implementations ship with hyperflex: pkg/vdom, an in-memory tree
// that renders to HTML on the server, and pkg/jsdom, which drives the
// browser's document from WebAssembly.
package dom
