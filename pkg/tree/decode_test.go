package tree

import (
	stderrors "errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/hyperflex/internal/errors"
)

func TestDecode(t *testing.T) {
	src := `
selector: ul#menu.nav
attributes:
  role: menu
  data-count: 2
  hidden: null
properties:
  title: Main
classList: dark wide
styles:
  marginTop: 4px
text: Items
childNodes:
  - selector: li.item
    text: Home
  - plain
`
	spec, err := Decode("menu.yaml", []byte(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if spec.Selector != "ul#menu.nav" {
		t.Errorf("Selector = %q", spec.Selector)
	}
	wantAttrs := map[string]any{"role": "menu", "data-count": 2, "hidden": nil}
	if !reflect.DeepEqual(spec.Attributes, wantAttrs) {
		t.Errorf("Attributes = %#v, want %#v", spec.Attributes, wantAttrs)
	}
	if spec.Properties["title"] != "Main" {
		t.Errorf("Properties = %#v", spec.Properties)
	}
	if !reflect.DeepEqual(spec.ClassList, []string{"dark", "wide"}) {
		t.Errorf("ClassList = %#v", spec.ClassList)
	}
	if spec.Styles["marginTop"] != "4px" {
		t.Errorf("Styles = %#v", spec.Styles)
	}
	if spec.Text != "Items" {
		t.Errorf("Text = %q", spec.Text)
	}
	if len(spec.Children) != 2 {
		t.Fatalf("Children = %d, want 2", len(spec.Children))
	}
	if spec.Children[0].IsText() || spec.Children[0].Spec.Text != "Home" {
		t.Errorf("Children[0] = %#v", spec.Children[0])
	}
	if !spec.Children[1].IsText() || spec.Children[1].Text != "plain" {
		t.Errorf("Children[1] = %#v", spec.Children[1])
	}
	if spec.Line != 2 || spec.Column != 1 {
		t.Errorf("position = %d:%d, want 2:1", spec.Line, spec.Column)
	}
	if got := spec.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	src := `{"selector": "p", "classList": ["a", "b"], "childNodes": ["x", {"selector": "b", "text": "y"}]}`
	spec, err := Decode("p.json", []byte(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if spec.Selector != "p" || len(spec.ClassList) != 2 || len(spec.Children) != 2 {
		t.Errorf("unexpected spec %#v", spec)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		code   string
		detail string
		line   int
		column int
	}{
		{
			name:   "root not a mapping",
			src:    "- div\n",
			code:   "E001",
			detail: "`document` should be a mapping, `sequence` given",
			line:   1, column: 1,
		},
		{
			name:   "attributes sequence",
			src:    "selector: div\nattributes: [a]\n",
			code:   "E001",
			detail: "`document.attributes` should be a mapping, `sequence` given",
			line:   2, column: 13,
		},
		{
			name:   "nested attribute value",
			src:    "selector: div\nattributes:\n  x: {a: 1}\n",
			code:   "E001",
			detail: "`document.attributes.x` should be a scalar, `mapping` given",
			line:   3, column: 6,
		},
		{
			name:   "selector not a string",
			src:    "selector: 12\n",
			code:   "E001",
			detail: "`document.selector` should be a string, `number` given",
			line:   1, column: 11,
		},
		{
			name:   "missing selector",
			src:    "text: hi\n",
			code:   "E001",
			detail: "`selector` is required",
			line:   1, column: 1,
		},
		{
			name:   "unknown key",
			src:    "selector: div\nonclick: x\n",
			code:   "E001",
			detail: "unknown key `onclick`",
			line:   2, column: 1,
		},
		{
			name:   "nested child styles",
			src:    "selector: div\nchildNodes:\n  - selector: span\n    styles: [a]\n",
			code:   "E001",
			detail: "`document.childNodes[0].styles` should be a mapping, `sequence` given",
			line:   4, column: 13,
		},
		{
			name:   "null child",
			src:    "selector: div\nchildNodes:\n  - null\n",
			code:   "E001",
			detail: "`document.childNodes[0]` should be a mapping or a string, `null` given",
			line:   3, column: 5,
		},
		{
			name:   "class entry not a string",
			src:    "selector: div\nclassList: [a, [b]]\n",
			code:   "E001",
			detail: "`document.classList[1]` should be a string, `sequence` given",
			line:   2, column: 16,
		},
		{
			name:   "attribute name breaks markup",
			src:    "selector: div\nattributes:\n  'a\"><b>x</b><i y': v\n",
			code:   "E001",
			detail: "document.attributes: \"a\\\"><b>x</b><i y\" is not a valid attribute name",
			line:   3, column: 3,
		},
		{
			name:   "text mapping",
			src:    "selector: div\ntext: {a: b}\n",
			code:   "E001",
			detail: "`document.text` should be a scalar, `mapping` given",
			line:   2, column: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("doc.yaml", []byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			var he *errors.HyperFlexError
			if !stderrors.As(err, &he) {
				t.Fatalf("error %T is not a HyperFlexError", err)
			}
			if he.Code != tt.code {
				t.Errorf("Code = %s, want %s", he.Code, tt.code)
			}
			if !strings.Contains(he.Detail, tt.detail) {
				t.Errorf("Detail = %q, want it to contain %q", he.Detail, tt.detail)
			}
			if he.Location == nil {
				t.Fatal("Location is nil")
			}
			if he.Location.File != "doc.yaml" || he.Location.Line != tt.line || he.Location.Column != tt.column {
				t.Errorf("Location = %s, want doc.yaml:%d:%d", he.Location, tt.line, tt.column)
			}
			if len(he.Context) == 0 {
				t.Error("Context is empty")
			}
		})
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode("bad.yaml", []byte("selector: [div\n"))
	if errors.CodeOf(err) != "E010" {
		t.Fatalf("CodeOf() = %q, want E010 (%v)", errors.CodeOf(err), err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, src := range []string{"", "   \n", "# only a comment\n"} {
		if _, err := Decode("empty.yaml", []byte(src)); errors.CodeOf(err) != "E010" {
			t.Errorf("Decode(%q) error = %v, want E010", src, err)
		}
	}
}

func TestDecodeAlias(t *testing.T) {
	src := `
selector: div
childNodes:
  - &item {selector: span, text: a}
  - *item
`
	spec, err := Decode("alias.yaml", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Count() != 3 {
		t.Errorf("Count() = %d, want 3", spec.Count())
	}
}
