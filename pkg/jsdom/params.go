//go:build js && wasm

package jsdom

import (
	"strconv"
	"strings"
	"syscall/js"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/builder"
	"github.com/vango-dev/hyperflex/pkg/dom"
)

// ParamsFromJS converts a JS parameter object into builder.Params. The
// object itself is required; missing or undefined keys are left empty and
// null attribute and property values become nil, which the builder skips.
func ParamsFromJS(obj js.Value) (*builder.Params, error) {
	if obj.Type() != js.TypeObject || isArray(obj) {
		return nil, typeError("params", "an object", obj)
	}
	p := builder.NewParams()

	var err error
	if p.Attributes, err = valueMap("attributes", obj.Get("attributes")); err != nil {
		return nil, err
	}
	if p.Properties, err = valueMap("properties", obj.Get("properties")); err != nil {
		return nil, err
	}
	if p.ClassList, err = stringList("classList", obj.Get("classList")); err != nil {
		return nil, err
	}
	if p.Styles, err = styleMap("styles", obj.Get("styles")); err != nil {
		return nil, err
	}
	switch text := obj.Get("text"); text.Type() {
	case js.TypeUndefined, js.TypeNull:
	case js.TypeString:
		p.Text = text.String()
	default:
		return nil, typeError("text", "a string", text)
	}
	if p.ChildNodes, err = nodeList("childNodes", obj.Get("childNodes")); err != nil {
		return nil, err
	}
	return p, nil
}

func isMissing(v js.Value) bool {
	return v.Type() == js.TypeUndefined || v.Type() == js.TypeNull
}

func keys(obj js.Value) []string {
	ks := js.Global().Get("Object").Call("keys", obj)
	out := make([]string, ks.Length())
	for i := range out {
		out[i] = ks.Index(i).String()
	}
	return out
}

func valueMap(name string, v js.Value) (map[string]any, error) {
	out := make(map[string]any)
	if isMissing(v) {
		return out, nil
	}
	if v.Type() != js.TypeObject || isArray(v) {
		return nil, typeError(name, "an object", v)
	}
	for _, k := range keys(v) {
		out[k] = fromJS(v.Get(k))
	}
	return out, nil
}

func styleMap(name string, v js.Value) (map[string]string, error) {
	out := make(map[string]string)
	if isMissing(v) {
		return out, nil
	}
	if v.Type() != js.TypeObject || isArray(v) {
		return nil, typeError(name, "an object", v)
	}
	for _, k := range keys(v) {
		x := v.Get(k)
		if isMissing(x) {
			out[k] = ""
			continue
		}
		out[k] = x.String()
	}
	return out, nil
}

// stringList accepts an array of strings or a space separated string.
func stringList(name string, v js.Value) ([]string, error) {
	switch {
	case isMissing(v):
		return []string{}, nil
	case v.Type() == js.TypeString:
		return strings.Fields(v.String()), nil
	case !isArray(v):
		return nil, typeError(name, "an array", v)
	}
	out := make([]string, v.Length())
	for i := range out {
		item := v.Index(i)
		if item.Type() != js.TypeString {
			return nil, typeError(name+"["+strconv.Itoa(i)+"]", "a string", item)
		}
		out[i] = item.String()
	}
	return out, nil
}

func nodeList(name string, v js.Value) ([]dom.Node, error) {
	if isMissing(v) {
		return []dom.Node{}, nil
	}
	if !isArray(v) {
		return nil, typeError(name, "an array", v)
	}
	out := make([]dom.Node, v.Length())
	for i := range out {
		n, ok := WrapNode(v.Index(i))
		if !ok {
			return nil, typeError(name+"["+strconv.Itoa(i)+"]", "a Node", v.Index(i))
		}
		out[i] = n
	}
	return out, nil
}

func isArray(v js.Value) bool {
	return js.Global().Get("Array").Call("isArray", v).Bool()
}

// fromJS converts primitives to Go values and leaves objects as js.Value.
func fromJS(v js.Value) any {
	switch v.Type() {
	case js.TypeUndefined, js.TypeNull:
		return nil
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeString:
		return v.String()
	default:
		return v
	}
}

func typeError(name, want string, got js.Value) error {
	return errors.New("E001").
		WithDetailf("`%s` should be %s, `%s` given", name, want, typeName(got))
}

// typeName names a JS value's type the way typeof would, except that
// arrays and null get their own names.
func typeName(v js.Value) string {
	switch {
	case v.Type() == js.TypeNull:
		return "null"
	case isArray(v):
		return "array"
	}
	return v.Type().String()
}
