package tree

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/dom"
)

// Decode parses a YAML or JSON element document. name is used in error
// locations and may be a file path.
func Decode(name string, src []byte) (*Spec, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		e := errors.FromError(err, "E010")
		if line := yamlErrorLine(err); line > 0 {
			e = e.WithSource(name, src, line, 1)
		}
		return nil, e
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("E010").WithDetail("document is empty")
	}

	d := &decoder{src: &source{name: name, data: src}}
	return d.spec("document", root.Content[0])
}

type decoder struct {
	src *source
}

func (d *decoder) spec(path string, n *yaml.Node) (*Spec, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		return nil, d.typeError(path, "a mapping", n)
	}

	s := &Spec{Line: n.Line, Column: n.Column, src: d.src}
	seen := false
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], resolve(n.Content[i+1])
		var err error
		switch key.Value {
		case "selector":
			if !isString(val) {
				return nil, d.typeError(path+".selector", "a string", val)
			}
			s.Selector = val.Value
			seen = true
		case "attributes":
			s.Attributes, err = d.values(path+".attributes", val, false)
		case "properties":
			s.Properties, err = d.values(path+".properties", val, true)
		case "classList":
			s.ClassList, err = d.classList(path+".classList", val)
		case "styles":
			s.Styles, err = d.styles(path+".styles", val)
		case "text":
			if val.Kind != yaml.ScalarNode {
				return nil, d.typeError(path+".text", "a scalar", val)
			}
			if !isNull(val) {
				s.Text = val.Value
			}
		case "childNodes":
			s.Children, err = d.children(path+".childNodes", val)
		default:
			return nil, d.at(key, errors.New("E001").
				WithDetailf("%s: unknown key `%s`", path, key.Value).
				WithSuggestion("Valid keys are selector, attributes, properties, classList, styles, text and childNodes"))
		}
		if err != nil {
			return nil, err
		}
	}
	if !seen {
		return nil, d.at(n, errors.New("E001").WithDetailf("%s: `selector` is required", path))
	}
	return s, nil
}

// values decodes attributes or properties. Attributes must be scalars;
// properties may hold any value. A null value is kept as nil.
func (d *decoder) values(path string, n *yaml.Node, anyValue bool) (map[string]any, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, d.typeError(path, "a mapping", n)
	}
	out := make(map[string]any, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, resolve(n.Content[i+1])
		if !anyValue && !dom.ValidAttributeName(key) {
			return nil, d.at(n.Content[i], errors.New("E001").
				WithDetailf("%s: %q is not a valid attribute name", path, key))
		}
		if !anyValue && val.Kind != yaml.ScalarNode {
			return nil, d.typeError(path+"."+key, "a scalar", val)
		}
		var v any
		if err := val.Decode(&v); err != nil {
			return nil, d.at(val, errors.FromError(err, "E010"))
		}
		out[key] = v
	}
	return out, nil
}

func (d *decoder) classList(path string, n *yaml.Node) ([]string, error) {
	switch {
	case isNull(n):
		return nil, nil
	case isString(n):
		return strings.Fields(n.Value), nil
	case n.Kind != yaml.SequenceNode:
		return nil, d.typeError(path, "a sequence of strings", n)
	}
	out := make([]string, 0, len(n.Content))
	for i, item := range n.Content {
		item = resolve(item)
		if item.Kind != yaml.ScalarNode || isNull(item) {
			return nil, d.typeError(path+"["+strconv.Itoa(i)+"]", "a string", item)
		}
		out = append(out, item.Value)
	}
	return out, nil
}

func (d *decoder) styles(path string, n *yaml.Node) (map[string]string, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, d.typeError(path, "a mapping", n)
	}
	out := make(map[string]string, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, resolve(n.Content[i+1])
		if val.Kind != yaml.ScalarNode {
			return nil, d.typeError(path+"."+key, "a scalar", val)
		}
		if isNull(val) {
			out[key] = ""
			continue
		}
		out[key] = val.Value
	}
	return out, nil
}

func (d *decoder) children(path string, n *yaml.Node) ([]Child, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.typeError(path, "a sequence", n)
	}
	out := make([]Child, 0, len(n.Content))
	for i, item := range n.Content {
		item = resolve(item)
		itemPath := path + "[" + strconv.Itoa(i) + "]"
		switch {
		case item.Kind == yaml.MappingNode:
			child, err := d.spec(itemPath, item)
			if err != nil {
				return nil, err
			}
			out = append(out, Child{Spec: child})
		case item.Kind == yaml.ScalarNode && !isNull(item):
			out = append(out, Child{Text: item.Value})
		default:
			return nil, d.typeError(itemPath, "a mapping or a string", item)
		}
	}
	return out, nil
}

func (d *decoder) typeError(path, want string, n *yaml.Node) error {
	return d.at(n, errors.New("E001").
		WithDetailf("`%s` should be %s, `%s` given", path, want, kindName(n)))
}

func (d *decoder) at(n *yaml.Node, e *errors.HyperFlexError) error {
	return e.WithSource(d.src.name, d.src.data, n.Line, n.Column)
}

// resolve follows aliases to their anchored node.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func isString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}

// kindName names a node's type the way error messages refer to it.
func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return "null"
		case "!!bool":
			return "boolean"
		case "!!int", "!!float":
			return "number"
		}
		return "string"
	}
	return "unknown"
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

func yamlErrorLine(err error) int {
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, _ := strconv.Atoi(m[1])
	return line
}
