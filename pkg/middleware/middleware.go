package middleware

import (
	"context"

	"github.com/vango-dev/hyperflex/pkg/tree"
	"github.com/vango-dev/hyperflex/pkg/vdom"
)

// RenderFunc builds the element tree for a decoded document.
type RenderFunc func(ctx context.Context, spec *tree.Spec) (*vdom.VNode, error)

// Middleware wraps a RenderFunc.
type Middleware func(next RenderFunc) RenderFunc

// Chain wraps base with mws. The first middleware is the outermost.
func Chain(base RenderFunc, mws ...Middleware) RenderFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// Build is the base RenderFunc. It builds spec on a fresh in-memory
// document unless ctx is already done.
func Build(ctx context.Context, spec *tree.Spec) (*vdom.VNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return tree.BuildVNode(spec)
}
