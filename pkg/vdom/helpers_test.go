package vdom

import "testing"

func buildCard(doc *Document) *VNode {
	card := doc.CreateElement("div").(*VNode)
	card.SetID("card")
	card.ClassList().Add("card", "wide")
	card.Style().Set("color", "red")
	card.SetProperty("onclick", func() {})
	card.AppendChild(doc.CreateTextNode("title"))
	span := doc.CreateElement("span")
	span.SetAttribute("role", "note")
	card.AppendChild(span)
	return card
}

func TestEqual(t *testing.T) {
	doc := NewDocument()
	a := buildCard(doc)
	b := buildCard(doc)

	if a == b {
		t.Fatal("expected distinct instances")
	}
	if !Equal(a, b) {
		t.Error("identically built trees should be Equal")
	}

	b.Children[1].SetAttribute("role", "alert")
	if Equal(a, b) {
		t.Error("trees with different attributes should not be Equal")
	}
}

func TestEqualDifferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VNode)
	}{
		{"tag", func(n *VNode) { n.Tag = "section" }},
		{"class", func(n *VNode) { n.ClassList().Add("extra") }},
		{"style", func(n *VNode) { n.Style().Set("margin", "0") }},
		{"prop", func(n *VNode) { n.SetProperty("data", 1) }},
		{"text", func(n *VNode) { n.Children[0].Text = "other" }},
		{"child", func(n *VNode) { n.AppendChild(Element("hr")) }},
	}

	doc := NewDocument()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := buildCard(doc), buildCard(doc)
			tt.mutate(b)
			if Equal(a, b) {
				t.Errorf("Equal should detect %s change", tt.name)
			}
		})
	}
}

func TestEqualNil(t *testing.T) {
	if !Equal(nil, nil) {
		t.Error("nil trees are equal")
	}
	if Equal(Element("div"), nil) {
		t.Error("nil and non-nil are not equal")
	}
}

func TestWalkAndCount(t *testing.T) {
	card := buildCard(NewDocument())

	if got := Count(card); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}

	var visited []string
	Walk(card, func(n *VNode) bool {
		visited = append(visited, n.NodeName())
		return n.Kind == KindElement && n.Tag != "span"
	})
	want := []string{"DIV", "#text", "SPAN"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}
