package phylo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/community"
)

// Structure is the branch view of a tree restricted to a species list.
// Tips[b] holds indices into Species of the species descending from branch b,
// and Lengths[b] is its length. Only branches reaching at least one species
// are kept; the root carries no branch.
type Structure struct {
	Lengths []float64
	Tips    [][]int
	Species []string
}

// NewStructure walks t in post-order and records, for every non-root node,
// its branch length and the species below it. Tips not listed in species are
// ignored.
//
// Errors: ErrNilTree, ErrDuplicateTip, ErrNegativeLength, hilldiv.ErrShapeMismatch
// for duplicate species, and ErrUnresolvedSpecies (also hilldiv.ErrShapeMismatch)
// for a species no tip carries.
func NewStructure(t *Tree, species []string) (*Structure, error) {
	index := make(map[string]int, len(species))
	for i, s := range species {
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("phylo: NewStructure: species %q repeated: %w", s, hilldiv.ErrShapeMismatch)
		}
		index[s] = i
	}

	st := &Structure{Species: append([]string(nil), species...)}
	below := make(map[*Node][]int)
	seen := make(map[string]bool)
	_, err := Walk(t, WithOnExit(func(n *Node, depth int) error {
		if n.Length < 0 {
			return fmt.Errorf("node %q: %w", n.Label, ErrNegativeLength)
		}
		var set []int
		if n.IsTip() {
			if seen[n.Label] {
				return fmt.Errorf("%q: %w", n.Label, ErrDuplicateTip)
			}
			seen[n.Label] = true
			if i, ok := index[n.Label]; ok {
				set = []int{i}
			}
		} else {
			for _, c := range n.Children {
				set = append(set, below[c]...)
				delete(below, c)
			}
		}
		below[n] = set
		if depth > 0 && len(set) > 0 {
			st.Lengths = append(st.Lengths, n.Length)
			st.Tips = append(st.Tips, set)
		}
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("phylo: NewStructure: %w", err)
	}
	for _, s := range species {
		if !seen[s] {
			return nil, fmt.Errorf("phylo: NewStructure: %q: %w: %w", s, ErrUnresolvedSpecies, hilldiv.ErrShapeMismatch)
		}
	}

	return st, nil
}

// ForCommunity builds the structure of t for the species of comm with
// positive total abundance.
func ForCommunity(t *Tree, comm *community.Matrix) (*Structure, error) {
	if comm == nil {
		return nil, fmt.Errorf("phylo: ForCommunity: nil community: %w", hilldiv.ErrShapeMismatch)
	}

	return NewStructure(t, comm.DropAbsent().Species())
}

// BranchAbundance returns a_b = Σ_{i ∈ Tips[b]} p_i for p indexed like Species.
func (st *Structure) BranchAbundance(p []float64) []float64 {
	out := make([]float64, len(st.Lengths))
	for b, tips := range st.Tips {
		for _, i := range tips {
			out[b] += p[i]
		}
	}

	return out
}

// align maps each label to its index in Species.
func (st *Structure) align(labels []string) ([]int, error) {
	index := make(map[string]int, len(st.Species))
	for i, s := range st.Species {
		index[s] = i
	}
	out := make([]int, len(labels))
	for k, l := range labels {
		i, ok := index[l]
		if !ok {
			return nil, fmt.Errorf("phylo: %q: %w: %w", l, ErrUnresolvedSpecies, hilldiv.ErrShapeMismatch)
		}
		out[k] = i
	}

	return out, nil
}

// spread places community-ordered values into Species order.
func (st *Structure) spread(values []float64, cols []int) []float64 {
	out := make([]float64, len(st.Species))
	for k, i := range cols {
		out[i] += values[k]
	}

	return out
}

// lengthWeights returns L_b · a_b.
func (st *Structure) lengthWeights(a []float64) []float64 {
	return floats.MulTo(make([]float64, len(a)), st.Lengths, a)
}
