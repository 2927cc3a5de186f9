package vdom

import (
	"strings"

	"github.com/vango-dev/hyperflex/pkg/dom"
)

// Declaration is one inline style property.
type Declaration struct {
	Name  string // kebab-case CSS property name
	Value string
}

// StyleMap holds inline style declarations in insertion order.
// Names may be given in camelCase (backgroundColor) or kebab-case
// (background-color); both address the same declaration.
type StyleMap struct {
	decls []Declaration
}

var _ dom.Style = (*StyleMap)(nil)

// Set assigns a declaration. An empty value removes it.
func (s *StyleMap) Set(name, value string) {
	name = CSSName(name)
	if name == "" {
		return
	}
	for i := range s.decls {
		if s.decls[i].Name == name {
			if value == "" {
				s.decls = append(s.decls[:i:i], s.decls[i+1:]...)
			} else {
				s.decls[i].Value = value
			}
			return
		}
	}
	if value != "" {
		s.decls = append(s.decls, Declaration{Name: name, Value: value})
	}
}

// Get returns the value of a declaration, or "".
func (s *StyleMap) Get(name string) string {
	name = CSSName(name)
	for _, d := range s.decls {
		if d.Name == name {
			return d.Value
		}
	}
	return ""
}

// Len returns the number of declarations.
func (s *StyleMap) Len() int {
	return len(s.decls)
}

// Declarations returns a copy of the declarations.
func (s *StyleMap) Declarations() []Declaration {
	out := make([]Declaration, len(s.decls))
	copy(out, s.decls)
	return out
}

// Reset removes all declarations.
func (s *StyleMap) Reset() {
	s.decls = nil
}

// String returns the style attribute value, e.g. "color: red; margin: 0".
func (s *StyleMap) String() string {
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.Name + ": " + d.Value
	}
	return strings.Join(parts, "; ")
}

// parse reads "name: value; name: value" declarations.
func (s *StyleMap) parse(text string) {
	for _, decl := range strings.Split(text, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		s.Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}
}

// CSSName converts a camelCase style property name to kebab-case.
// Custom properties (--name) and kebab-case names are returned unchanged.
func CSSName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") || !strings.ContainsAny(name, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	// cssFloat and the vendor prefixes keep their DOM spellings.
	switch {
	case out == "css-float":
		return "float"
	case strings.HasPrefix(out, "webkit-"), strings.HasPrefix(out, "moz-"), strings.HasPrefix(out, "ms-"):
		return "-" + out
	}
	return out
}
