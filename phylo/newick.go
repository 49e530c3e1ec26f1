package phylo

import (
	"fmt"
	"io"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
)

// ParseNewick reads one rooted tree in Newick format:
//
//	((a:1,b:1)ab:2,c:3)root;
//
// Missing branch lengths read as 0.
//
// Errors: ErrNewickSyntax, ErrNegativeLength.
func ParseNewick(s string) (*Tree, error) {
	return ReadNewick(strings.NewReader(s))
}

// ReadNewick is ParseNewick over a reader, e.g. an open tree file.
func ReadNewick(r io.Reader) (*Tree, error) {
	gt, err := newick.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNewickSyntax, err)
	}

	return FromGotree(gt)
}

// FromGotree converts a gotree tree, keeping its root and child order.
// Edges without a length get 0.
//
// Errors: ErrNilTree, ErrNegativeLength.
func FromGotree(gt *tree.Tree) (*Tree, error) {
	if gt == nil || gt.Root() == nil {
		return nil, ErrNilTree
	}
	root, err := convert(gt.Root(), nil, 0)
	if err != nil {
		return nil, err
	}

	return &Tree{Root: root}, nil
}

// convert copies n and everything below it; parent is the neighbor n was
// reached from.
func convert(n, parent *tree.Node, length float64) (*Node, error) {
	out := &Node{Label: n.Name(), Length: length}
	edges := n.Edges()
	for i, c := range n.Neigh() {
		if c == parent {
			continue
		}
		l := edges[i].Length()
		switch {
		case l == tree.NIL_LENGTH:
			l = 0
		case l < 0:
			return nil, fmt.Errorf("phylo: branch to %q has length %g: %w", c.Name(), l, ErrNegativeLength)
		}
		child, err := convert(c, n, l)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, child)
	}

	return out, nil
}
