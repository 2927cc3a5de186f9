package vdom

import (
	"strings"

	"github.com/vango-dev/hyperflex/pkg/dom"
)

// ClassSet is an ordered set of class names.
type ClassSet struct {
	names []string
}

var _ dom.ClassList = (*ClassSet)(nil)

// Add appends each name not already present. Empty names and names
// containing whitespace are ignored.
func (c *ClassSet) Add(names ...string) {
	for _, name := range names {
		if name == "" || strings.ContainsAny(name, " \t\n\r\f") {
			continue
		}
		if c.Contains(name) {
			continue
		}
		c.names = append(c.names, name)
	}
}

// Remove deletes the given names.
func (c *ClassSet) Remove(names ...string) {
	for _, name := range names {
		for i, n := range c.names {
			if n == name {
				c.names = append(c.names[:i:i], c.names[i+1:]...)
				break
			}
		}
	}
}

// Contains reports whether name is in the set.
func (c *ClassSet) Contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Len returns the number of classes.
func (c *ClassSet) Len() int {
	return len(c.names)
}

// Names returns a copy of the class names in insertion order.
func (c *ClassSet) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Reset empties the set.
func (c *ClassSet) Reset() {
	c.names = nil
}

// String returns the space-separated class attribute value.
func (c *ClassSet) String() string {
	return strings.Join(c.names, " ")
}
