// Package hill evaluates Hill numbers: the one-parameter family of diversity
// indices (effective numbers of categories) indexed by an order q ≥ 0.
//
//	q = 0   richness        count of categories with p > 0
//	q = 1   exp(Shannon)    the analytic limit, evaluated as exp(−Σ p ln p)
//	q = 2   inverse Simpson 1 / Σ p²
//	q       general         (Σ p^q)^(1/(1−q))
//
// Weighted is the shared kernel behind every engine: it aggregates attribute
// values x with weights w as (Σ w·x^(q−1))^(1/(1−q)). With x = w it is the
// ordinary Hill number; with x = S·p (similarity-weighted abundance) it is the
// functional Hill number; with x = branch abundance and w = length-weighted
// branch share it is the phylogenetic Hill number.
//
// Errors: every function rejects invalid input with hilldiv.ErrDomain
// (empty or all-zero weights, negative or non-finite entries, q < 0, non-finite q).
package hill
