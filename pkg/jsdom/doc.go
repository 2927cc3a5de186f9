//go:build js && wasm

// Package jsdom implements the dom interfaces on top of the browser DOM
// through syscall/js, so the builder can create live elements:
//
//	el, err := builder.HTML(jsdom.New(), "button.primary", params)
//	body.Call("appendChild", el.(*jsdom.Element).Value())
//
// ParamsFromJS converts a plain JS object with attributes, properties,
// classList, styles, text and childNodes keys into builder.Params.
package jsdom
