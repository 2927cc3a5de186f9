package vdom

import "testing"

func TestElementFlags(t *testing.T) {
	tests := []struct {
		tag          string
		void, inline bool
	}{
		{"br", true, true},
		{"img", true, false},
		{"input", true, false},
		{"wbr", true, true},
		{"span", false, true},
		{"a", false, true},
		{"div", false, false},
		{"p", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := IsVoidElement(tt.tag); got != tt.void {
			t.Errorf("IsVoidElement(%q) = %v, want %v", tt.tag, got, tt.void)
		}
		if got := IsInlineElement(tt.tag); got != tt.inline {
			t.Errorf("IsInlineElement(%q) = %v, want %v", tt.tag, got, tt.inline)
		}
	}
}
