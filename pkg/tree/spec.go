package tree

// Spec describes one element and its descendants.
type Spec struct {
	Selector   string
	Attributes map[string]any
	Properties map[string]any
	ClassList  []string
	Styles     map[string]string
	Text       string
	Children   []Child

	// Line and Column locate the element in its source document, 1-based.
	// Both are zero for specs built in code.
	Line   int
	Column int

	src *source
}

// Child is either a nested element or a text node.
type Child struct {
	Spec *Spec
	Text string
}

// IsText reports whether the child is a text node.
func (c Child) IsText() bool {
	return c.Spec == nil
}

// Count returns the number of elements in the tree rooted at s.
func (s *Spec) Count() int {
	if s == nil {
		return 0
	}
	n := 1
	for _, c := range s.Children {
		n += c.Spec.Count()
	}
	return n
}

type source struct {
	name string
	data []byte
}
