// Package tree decodes element documents and builds them into trees.
//
// A document is YAML or JSON. Each element is a mapping:
//
//	selector: ul#menu.nav
//	attributes: {role: menu}
//	classList: [dark]
//	childNodes:
//	  - selector: li.item
//	    text: Home
//	  - plain text node
//
// Decode reports malformed documents with the line and column of the
// offending node.
package tree
