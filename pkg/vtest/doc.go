// Package vtest provides test helpers for element documents.
//
// Build turns a YAML or JSON document into a vdom tree and fails the test
// on error; the Expect helpers assert on its rendered HTML:
//
//	func TestNav(t *testing.T) {
//	    node := vtest.Build(t, `
//	selector: nav.main
//	childNodes:
//	  - {selector: a, attributes: {href: /}, text: Home}
//	`)
//	    vtest.ExpectElement(t, node, "a")
//	    vtest.ExpectAttribute(t, node, "href", "/")
//	}
package vtest
