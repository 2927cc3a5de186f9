package vtest

import (
	"testing"

	"github.com/vango-dev/hyperflex/pkg/selector"
)

func TestBuildAndExpect(t *testing.T) {
	node := Build(t, `
selector: nav.main
childNodes:
  - selector: a.link
    attributes: {href: /}
    text: Home
  - " | "
  - selector: a.link
    attributes: {href: /about}
    text: About
`)

	ExpectHTML(t, node, `<nav class="main"><a href="/" class="link">Home</a> | <a href="/about" class="link">About</a></nav>`)
	ExpectElement(t, node, "nav")
	ExpectElement(t, node, "a")
	ExpectAttribute(t, node, "href", "/about")
	ExpectContains(t, node, "About</a>")
	ExpectNotContains(t, node, "<script")
}

func TestExpectCode(t *testing.T) {
	_, err := selector.Parse("#only-id")
	ExpectCode(t, err, "E002")
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 3); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
}
