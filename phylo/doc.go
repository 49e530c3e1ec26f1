// Package phylo computes phylogenetic Hill numbers over the branches of a
// rooted tree.
//
// What:
//
//   - Tree / Node: a rooted tree with optional labels and branch lengths,
//     read from Newick text by ParseNewick or ReadNewick, or converted from
//     a gotree tree by FromGotree. Trees are never inferred here.
//   - Walk: depth-first traversal with pre- and post-order hooks.
//   - Structure: per-branch length and the community species descending from
//     it, built by NewStructure with a post-order walk. Branches reaching no
//     community species are dropped.
//   - Diversity, FaithPD, Partition, Pairwise: the engine.
//
// Model:
//
// For relative abundances p, the abundance reaching branch b is a_b, the sum
// of p over its descendant species, and T = Σ L_b a_b is the mean base-to-tip
// length (the root-to-tip depth of an ultrametric tree). Then
//
//	PD_q = (Σ_b (L_b/T) a_b^q)^(1/(1−q)),  PD_1 = exp(−Σ_b (L_b/T) a_b ln a_b),
//
// and PD_0 is Faith's PD divided by T. On a star tree with equal branch
// lengths every branch holds one species and PD_q is the taxonomic Hill number.
//
// Complexity:
//
//   - NewStructure: O(nodes · species) worst case.
//   - Diversity per site: O(Σ_b |tips(b)|).
package phylo
