package vdom

import "testing"

func TestCSSName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"color", "color"},
		{"backgroundColor", "background-color"},
		{"background-color", "background-color"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"--main-Color", "--main-Color"},
		{"cssFloat", "float"},
		{"webkitTransform", "-webkit-transform"},
		{"MozAppearance", "-moz-appearance"},
		{" margin ", "margin"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CSSName(tt.in); got != tt.want {
				t.Errorf("CSSName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStyleMap(t *testing.T) {
	var s StyleMap
	s.Set("color", "red")
	s.Set("backgroundColor", "blue")
	s.Set("background-color", "green")

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if got := s.Get("backgroundColor"); got != "green" {
		t.Errorf("Get(backgroundColor) = %q, want green", got)
	}
	if got := s.String(); got != "color: red; background-color: green" {
		t.Errorf("String() = %q", got)
	}

	s.Set("color", "")
	if s.Len() != 1 || s.Get("color") != "" {
		t.Error("empty value should remove the declaration")
	}

	s.Set("", "x")
	s.Set("margin", "")
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	decls := s.Declarations()
	decls[0].Value = "mutated"
	if s.Get("background-color") != "green" {
		t.Error("Declarations should return a copy")
	}
}

func TestClassSet(t *testing.T) {
	var c ClassSet
	c.Add("c")
	c.Add("a", "b", "a", "", "x y")

	if got := c.String(); got != "c a b" {
		t.Errorf("String() = %q, want %q", got, "c a b")
	}
	if !c.Contains("a") || c.Contains("x y") {
		t.Error("Contains mismatch")
	}

	c.Remove("a")
	if got := c.Names(); len(got) != 2 || got[0] != "c" || got[1] != "b" {
		t.Errorf("Names() = %v", got)
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d", c.Len())
	}
}
