package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/hyperflex/pkg/vdom"
)

func el(tag string, children ...*vdom.VNode) *vdom.VNode {
	n := vdom.Element(tag)
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func renderString(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString() error = %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name string
		node func() *vdom.VNode
		want string
	}{
		{
			name: "empty div",
			node: func() *vdom.VNode { return el("div") },
			want: "<div></div>",
		},
		{
			name: "text child",
			node: func() *vdom.VNode { return el("p", vdom.Text("Hello")) },
			want: "<p>Hello</p>",
		},
		{
			name: "nested",
			node: func() *vdom.VNode {
				return el("ul", el("li", vdom.Text("a")), el("li", vdom.Text("b")))
			},
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "void element",
			node: func() *vdom.VNode {
				n := el("input")
				n.SetAttribute("type", "text")
				return n
			},
			want: `<input type="text">`,
		},
		{
			name: "attributes in insertion order",
			node: func() *vdom.VNode {
				n := el("a")
				n.SetID("home")
				n.SetAttribute("href", "/")
				n.SetAttribute("data-x", 1)
				return n
			},
			want: `<a id="home" href="/" data-x="1"></a>`,
		},
		{
			name: "class and style last",
			node: func() *vdom.VNode {
				n := el("div")
				n.ClassList().Add("b", "a")
				n.Style().Set("marginTop", "4px")
				n.SetAttribute("role", "note")
				return n
			},
			want: `<div role="note" class="b a" style="margin-top: 4px"></div>`,
		},
		{
			name: "boolean attribute from property",
			node: func() *vdom.VNode {
				n := el("button", vdom.Text("Go"))
				n.SetProperty("disabled", true)
				return n
			},
			want: `<button disabled>Go</button>`,
		},
		{
			name: "empty non-boolean attribute",
			node: func() *vdom.VNode {
				n := el("img")
				n.SetAttribute("alt", "")
				return n
			},
			want: `<img alt="">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderString(t, tt.node()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEscaping(t *testing.T) {
	n := el("div", vdom.Text(`<script>alert("x")</script>`))
	n.SetAttribute("title", `a"b<c>&'`)

	got := renderString(t, n)
	want := `<div title="a&quot;b&lt;c&gt;&amp;&#39;">&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;</div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDropsUnserializableAttrNames(t *testing.T) {
	n := vdom.Element("div")
	// Attrs written directly bypass SetAttribute's checks.
	n.Attrs = vdom.Attrs{{Key: `a"><b>x</b><i y`, Value: "v"}, {Key: "title", Value: "t"}}
	n.AppendChild(vdom.Text("hi"))

	got, err := NewRenderer(RendererConfig{}).RenderToString(n)
	if err != nil {
		t.Fatal(err)
	}
	if want := `<div title="t">hi</div>`; got != want {
		t.Errorf("RenderToString() = %q, want %q", got, want)
	}
}

func TestEscapeAttrWhitespace(t *testing.T) {
	if got := escapeAttr("a\nb\tc\r"); got != "a&#10;b&#9;c&#13;" {
		t.Errorf("escapeAttr() = %q", got)
	}
	if got := escapeHTML("a\nb"); got != "a\nb" {
		t.Errorf("escapeHTML() = %q", got)
	}
}

func TestRenderNil(t *testing.T) {
	if got := renderString(t, nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	n := &vdom.VNode{Kind: vdom.VKind(99)}
	_, err := NewRenderer(RendererConfig{}).RenderToString(n)
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestRenderPretty(t *testing.T) {
	n := el("section",
		el("h1", vdom.Text("Title")),
		el("p", vdom.Text("Some "), el("em", vdom.Text("text"))),
		el("br"),
	)

	r := NewRenderer(RendererConfig{Pretty: true})
	got, err := r.RenderToString(n)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"<section>",
		"  <h1>Title</h1>",
		"  <p>",
		"    Some ",
		"    <em>text</em>",
		"  </p>",
		"  <br>",
		"</section>",
		"",
	}, "\n")
	if got != want {
		t.Errorf("pretty output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPrettyCustomIndent(t *testing.T) {
	n := el("div", el("span", vdom.Text("x")))
	r := NewRenderer(RendererConfig{Pretty: true, Indent: "\t"})
	got, _ := r.RenderToString(n)
	if got != "<div>\n\t<span>x</span>\n</div>\n" {
		t.Errorf("got %q", got)
	}
}

type failWriter struct{ after int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("write failed")
	}
	w.after--
	return len(p), nil
}

func TestRenderWriteError(t *testing.T) {
	n := el("div", vdom.Text("x"))
	n.SetAttribute("title", "t")
	for i := 0; i < 3; i++ {
		if err := NewRenderer(RendererConfig{}).RenderToWriter(&failWriter{after: i}, n); err == nil {
			t.Errorf("after %d writes: expected error", i)
		}
	}
}

func TestRenderToWriterMatchesString(t *testing.T) {
	n := el("ol", el("li", vdom.Text("one")))
	r := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		t.Fatal(err)
	}
	s, _ := r.RenderToString(n)
	if buf.String() != s {
		t.Errorf("writer %q != string %q", buf.String(), s)
	}
}
