package vdom

import "reflect"

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n *VNode, fn func(*VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Count returns the number of element nodes in the tree rooted at n.
func Count(n *VNode) int {
	count := 0
	Walk(n, func(v *VNode) bool {
		if v.Kind == KindElement {
			count++
		}
		return true
	})
	return count
}

// Equal reports whether two trees have the same structure: kinds, tags,
// text, attributes, classes, styles, properties and children. Parent
// links and node identity are ignored.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if !equalAttrs(a.Attrs, b.Attrs) {
		return false
	}
	if !reflect.DeepEqual(a.Classes.names, b.Classes.names) && (a.Classes.Len() > 0 || b.Classes.Len() > 0) {
		return false
	}
	if !reflect.DeepEqual(a.Styles.decls, b.Styles.decls) && (a.Styles.Len() > 0 || b.Styles.Len() > 0) {
		return false
	}
	if len(a.Props) != len(b.Props) {
		return false
	}
	for k, av := range a.Props {
		bv, ok := b.Props[k]
		if !ok || !equalProp(av, bv) {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func equalAttrs(a, b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// equalProp compares property values. Functions are equal when both are
// non-nil functions of the same type.
func equalProp(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() && ra.Kind() == reflect.Func && rb.Kind() == reflect.Func {
		return ra.Type() == rb.Type() && !ra.IsNil() && !rb.IsNil()
	}
	return reflect.DeepEqual(a, b)
}
