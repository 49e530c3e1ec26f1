// Package partition decomposes multi-site diversity into gamma, alpha and beta
// components and derives the two Hill-based similarity indices from beta.
//
// 🚀 What it does
//
//   - Gamma: diversity of the pooled community.
//   - Alpha: multiplicative mean diversity of the sites, normalized by the
//     number of sites N.
//   - Beta: always Gamma/Alpha, the effective number of distinct communities.
//   - LocalSimilarity and RegionSimilarity: transforms of (Beta, N, q) into [0,1].
//
// The engine is generic over the diversity unit. A Pooler (taxa, functional,
// phylo) turns a community into Levels, the gamma and alpha evaluators for
// that unit; Partition then applies the shared arithmetic.
//
// ⚙️ Pooling
//
// With rel_then_pool (default) every site is normalized to relative abundance
// and sites are averaged, so each site weighs 1/N. Otherwise raw abundances are
// summed first and sites weigh by their share of the grand total.
//
// ⚠️ Degenerate similarities
//
// Similarity values within Epsilon of [0,1] are snapped to the bound. Anything
// further out, or NaN (a single site makes both transforms 0/0), is reported as
// NaN and a hilldiv.Warning is attached to the Result. Warnings never abort a
// call; with ShowWarning they are also logged once per call.
package partition
