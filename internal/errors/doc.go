// Package errors provides structured, coded errors for hyperflex.
//
// Every failure surfaced by the builder, the document decoder, the
// configuration loader and the publisher is a *HyperFlexError carrying a
// stable code (e.g., "E002") that maps to a registered template.
//
// # Error Codes
//
//   - E001 invalid argument (wrong type or nil value)
//   - E002 invalid selector (no usable tag name)
//   - E003 builder already used
//   - E010 document parse failure
//   - E020/E021 configuration load and validation
//   - E030 publish failure
//   - E040 CLI input not found
//   - E041/E042 init template missing or target file exists
//
// Errors compare by code, so callers can test with the standard library:
//
//	if errors.Is(err, builder.ErrInvalidSelector) { ... }
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetail("`attributes` should be a mapping, `sequence` given").
//	    WithSource("page.yaml", src, 4, 15)
//
//	fmt.Println(err.Format())
//	// Output:
//	// error [E001] Invalid argument
//	//
//	//   --> page.yaml:4:15
//	//     |
//	//   2 | attributes:
//	//   ...
//	// > 4 |   - href
//	//     |               ^
//	//
//	//   `attributes` should be a mapping, `sequence` given
//	//
//	//   hint: Check the type of the value passed for the named argument
//
// PrintError and Fprint find a *HyperFlexError anywhere in a wrapped chain.
package errors
