package phylo

import (
	"context"
	"fmt"
)

// WalkOption configures Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds the traversal hooks.
type WalkOptions struct {
	// Ctx aborts the walk when done; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a node is discovered (pre-order).
	OnVisit func(n *Node, depth int) error

	// OnExit is invoked after all children were explored (post-order).
	OnExit func(n *Node, depth int) error
}

// WithWalkContext sets the cancellation context. nil keeps Background.
func WithWalkContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(n *Node, depth int) error) WalkOption {
	return func(o *WalkOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(n *Node, depth int) error) WalkOption {
	return func(o *WalkOptions) { o.OnExit = fn }
}

// WalkResult collects the traversal.
type WalkResult struct {
	Order  []*Node         // post-order
	Parent map[*Node]*Node // root has no entry
	Depth  map[*Node]int   // edges from the root
}

type walker struct {
	opts WalkOptions
	res  *WalkResult
}

// Walk traverses t depth-first from the root, children in order. A hook error
// aborts the walk and is returned wrapped with the node label; Order is then nil.
func Walk(t *Tree, opts ...WalkOption) (*WalkResult, error) {
	if t == nil || t.Root == nil {
		return nil, ErrNilTree
	}
	o := WalkOptions{Ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}
	w := &walker{opts: o, res: &WalkResult{
		Parent: make(map[*Node]*Node),
		Depth:  make(map[*Node]int),
	}}
	if err := w.traverse(t.Root, 0); err != nil {
		w.res.Order = nil
		return w.res, err
	}

	return w.res, nil
}

func (w *walker) traverse(n *Node, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[n] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n, depth); err != nil {
			return fmt.Errorf("phylo: OnVisit hook for %q: %w", n.Label, err)
		}
	}
	for _, c := range n.Children {
		w.res.Parent[c] = n
		if err := w.traverse(c, depth+1); err != nil {
			return err
		}
	}
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n, depth); err != nil {
			return fmt.Errorf("phylo: OnExit hook for %q: %w", n.Label, err)
		}
	}
	w.res.Order = append(w.res.Order, n)

	return nil
}
