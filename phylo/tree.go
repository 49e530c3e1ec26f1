package phylo

import "math"

// Node is one vertex of a rooted tree. Length is the length of the branch
// leading to the node from its parent; it is ignored on the root.
type Node struct {
	Label    string
	Length   float64
	Children []*Node
}

// IsTip reports whether n has no children.
func (n *Node) IsTip() bool { return len(n.Children) == 0 }

// Tree is a rooted tree.
type Tree struct {
	Root *Node
}

// Tips returns the tip labels, left to right.
func (t *Tree) Tips() []string {
	var tips []string
	_, _ = Walk(t, WithOnExit(func(n *Node, _ int) error {
		if n.IsTip() {
			tips = append(tips, n.Label)
		}
		return nil
	}))

	return tips
}

// Depth returns the largest root-to-tip path length.
func (t *Tree) Depth() float64 {
	if t == nil || t.Root == nil {
		return 0
	}

	return depth(t.Root, 0)
}

func depth(n *Node, acc float64) float64 {
	if n.IsTip() {
		return acc
	}
	best := 0.0
	for _, c := range n.Children {
		best = math.Max(best, depth(c, acc+c.Length))
	}

	return best
}
