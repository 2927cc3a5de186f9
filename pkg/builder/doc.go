// Package builder constructs a single element from a compact selector and a
// parameter bag.
//
//	doc := vdom.NewDocument()
//	el, err := builder.HTML(doc, "a#home.nav.active", builder.NewParams(
//	    builder.WithAttribute("href", "/"),
//	    builder.WithProperty("title", "Home"),
//	    builder.WithStyle("fontWeight", "bold"),
//	    builder.WithText("Home"),
//	))
//
// Build parses the selector, creates the element through the dom.Document,
// sets the id and the selector's classes, then applies the parameters in a
// fixed order:
//
//  1. attributes (nil values are skipped)
//  2. properties (nil values are skipped)
//  3. class list, added after the selector's classes
//  4. inline styles
//  5. text, as one text node when non-empty
//  6. child nodes, in order
//
// Keys of the attribute, property and style maps are applied in ascending
// order.
//
// # Errors
//
// Every failure is returned before the element is handed out; no partially
// built element escapes. Errors match the sentinels with errors.Is:
//
//   - ErrInvalidArgument: nil document, nil params or a nil child node
//   - ErrInvalidSelector: the selector has no tag name
//   - ErrAlreadyBuilt: Build was called twice on one Builder
package builder
