package vtest

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/vango-dev/hyperflex/internal/errors"
	"github.com/vango-dev/hyperflex/pkg/render"
	"github.com/vango-dev/hyperflex/pkg/tree"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// Build decodes a YAML or JSON element document and builds it into a
// vdom tree, failing the test on any error.
//
// Example:
//
//	node := vtest.Build(t, "selector: a.nav\ntext: Home")
func Build(t testing.TB, src string) *vdom.VNode {
	t.Helper()
	spec, err := tree.Decode(t.Name(), []byte(src))
	if err != nil {
		t.Fatalf("decode document: %v", err)
	}
	node, err := tree.BuildVNode(spec)
	if err != nil {
		t.Fatalf("build document: %v", err)
	}
	return node
}

// RenderToString renders a node compactly. Render errors yield "".
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectHTML asserts that node renders to exactly want.
func ExpectHTML(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	if got := RenderToString(node); got != want {
		t.Errorf("rendered output mismatch\n got: %s\nwant: %s", got, want)
	}
}

// ExpectContains asserts that rendered output contains expected.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain unexpected.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a tag.
//
// Example:
//
//	vtest.ExpectElement(t, node, "button")
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag+">") && !strings.Contains(html, "<"+tag+" ") {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains attr="value".
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectCode asserts that err carries the given error code.
//
// Example:
//
//	_, err := selector.Parse("")
//	vtest.ExpectCode(t, err, "E002")
func ExpectCode(t testing.TB, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want %s", code)
	}
	if !stderrors.Is(err, errors.New(code)) {
		t.Errorf("error = %v, want code %s", err, code)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
