// Package taxa computes taxonomic Hill numbers: every species is equally
// distinct, so diversity depends on relative abundances alone.
//
//	d, _ := taxa.Diversity(comm, 1)          // per-site exp(Shannon)
//	r, _ := taxa.Partition(comm, 0)          // gamma/alpha/beta richness
//	pw, _ := taxa.Pairwise(comm, 2)          // every unique site pair
package taxa
