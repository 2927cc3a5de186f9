// Package vdom is an in-memory implementation of the pkg/dom document API.
//
// A VNode is either an element or a text node. Elements keep their
// attributes, class names and inline style declarations in insertion
// order so that rendering is deterministic:
//
//	doc := vdom.NewDocument()
//	el := doc.CreateElement("a")
//	el.SetAttribute("href", "/home")
//	el.ClassList().Add("nav", "active")
//	el.Style().Set("fontWeight", "bold")
//	el.AppendChild(doc.CreateTextNode("Home"))
//
// # Attributes and properties
//
// SetAttribute stores a string value. The class and style attributes are
// special: they replace the class set and the style declarations.
// SetProperty stores any Go value in Props; properties that the DOM
// reflects to attributes (title, hidden, className, htmlFor, tabIndex...)
// also update the attribute, boolean ones by adding or removing it.
//
// # Tree mutation
//
// AppendChild moves a node that already has a parent, like the DOM does.
// Appending an ancestor into its own subtree panics.
package vdom
