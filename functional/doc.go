// Package functional computes functional Hill numbers, where species count as
// partially redundant according to a pairwise trait distance.
//
// Distances d are rescaled by their largest value among the species present in
// the community at hand and turned into a similarity s = 1 − d/max(d). A species' ordinariness in a community p is
// (S·p)_i, the abundance of everything functionally like it; Hill numbers are
// taken over ordinariness instead of raw abundance, so with every species
// equidistant (S = I) the results equal the taxonomic ones.
//
// Per site the package reports:
//
//   - Q:    functional quadratic entropy, Σ p_i p_j d_ij / max(d);
//   - FDis: dispersion around the abundance-weighted centroid, on d/max(d);
//   - Dq:   effective number of functionally distinct species;
//   - MDq:  Dq × Q, mean functional diversity;
//   - FDq:  MDq × Q, aggregate functional diversity.
//
// A Distance is built either from a ready-made distance matrix (traits as-is)
// or from a species × trait table through Gower's mixed-type distance. A
// trait-backed Distance recomputes Gower over each community's species, so
// trait ranges never include species the community lacks.
package functional
