package vdom

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// Get returns the value for key.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value for key in place, or appends it.
func (a *Attrs) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// Remove deletes key.
func (a *Attrs) Remove(key string) {
	for i := range *a {
		if (*a)[i].Key == key {
			*a = append((*a)[:i:i], (*a)[i+1:]...)
			return
		}
	}
}

// booleanAttrs are attributes whose presence alone means true.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if the attribute is a boolean attribute.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// reflectedProps maps element properties to the attribute they reflect.
// value, checked and selected hold live state and do not reflect.
var reflectedProps = map[string]string{
	"id":              "id",
	"className":       "class",
	"htmlFor":         "for",
	"title":           "title",
	"lang":            "lang",
	"dir":             "dir",
	"hidden":          "hidden",
	"tabIndex":        "tabindex",
	"accessKey":       "accesskey",
	"draggable":       "draggable",
	"spellcheck":      "spellcheck",
	"contentEditable": "contenteditable",
	"disabled":        "disabled",
	"readOnly":        "readonly",
	"required":        "required",
	"multiple":        "multiple",
	"autofocus":       "autofocus",
	"placeholder":     "placeholder",
	"name":            "name",
	"type":            "type",
	"href":            "href",
	"src":             "src",
	"alt":             "alt",
	"rel":             "rel",
	"target":          "target",
	"open":            "open",
	"role":            "role",
}

// ReflectedAttr returns the attribute a property reflects to.
func ReflectedAttr(prop string) (string, bool) {
	attr, ok := reflectedProps[prop]
	return attr, ok
}

// reflect mirrors a property assignment onto its attribute.
func (v *VNode) reflect(prop string, value any) {
	attr, ok := reflectedProps[prop]
	if !ok {
		return
	}
	if booleanAttrs[attr] {
		if truthy(value) {
			v.Attrs.Set(attr, "")
		} else {
			v.Attrs.Remove(attr)
		}
		return
	}
	v.SetAttribute(attr, value)
}

// truthy follows the loose truthiness used by DOM boolean properties.
func truthy(value any) bool {
	switch x := value.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
