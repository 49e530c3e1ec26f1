// Package community models the site × species abundance matrix every engine
// consumes.
//
// Rows are sites and columns are species, both carried as explicit label lists
// (see matrix.Labeled). A Matrix is validated once at construction and never
// mutated afterwards:
//
//   - labels are unique and non-empty (synthetic "site1…", "sp1…" when omitted);
//   - every entry is finite and ≥ 0;
//   - every site has a positive total abundance, so relative abundances are defined.
//
// The two pooling conventions of multi-site partitioning live here as Joint and
// Pooled: with relThenPool each site is normalized to relative abundance and
// sites are averaged (equal site weights); without it raw abundances are summed
// first and normalized once (sites weighted by their total abundance).
package community
