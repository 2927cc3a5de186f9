package middleware

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vango-dev/hyperflex/pkg/tree"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

func testSpec() *tree.Spec {
	return &tree.Spec{
		Selector: "ul.list",
		Children: []tree.Child{
			{Spec: &tree.Spec{Selector: "li", Text: "a"}},
			{Spec: &tree.Spec{Selector: "li", Text: "b"}},
		},
	}
}

func badSpec() *tree.Spec {
	return &tree.Spec{Selector: ".no-tag"}
}

func TestChainOrder(t *testing.T) {
	var calls []string
	mark := func(name string) Middleware {
		return func(next RenderFunc) RenderFunc {
			return func(ctx context.Context, spec *tree.Spec) (*vdom.VNode, error) {
				calls = append(calls, name+">")
				n, err := next(ctx, spec)
				calls = append(calls, "<"+name)
				return n, err
			}
		}
	}
	base := func(ctx context.Context, spec *tree.Spec) (*vdom.VNode, error) {
		calls = append(calls, "base")
		return nil, nil
	}

	if _, err := Chain(base, mark("a"), mark("b"))(context.Background(), testSpec()); err != nil {
		t.Fatal(err)
	}
	want := []string{"a>", "b>", "base", "<b", "<a"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestChainNoMiddleware(t *testing.T) {
	n, err := Chain(Build)(context.Background(), testSpec())
	if err != nil {
		t.Fatal(err)
	}
	if n.Tag != "ul" || len(n.Children) != 2 {
		t.Errorf("unexpected tree %+v", n)
	}
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, testSpec()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
