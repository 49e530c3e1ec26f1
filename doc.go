// Package hilldiv computes taxonomic, functional and phylogenetic diversity of
// ecological communities with Hill numbers, and partitions multi-site diversity
// into gamma, alpha and beta components.
//
// 🚀 What is hilldiv?
//
//	A pure-Go toolkit for site × species abundance matrices:
//		• Hill numbers of any order q ≥ 0 (richness, Shannon, Simpson and beyond)
//		• Taxonomic, functional (trait distance) and phylogenetic (branch length) engines
//		• Gamma / alpha / beta partitioning with local and regional similarity
//		• All-pairs decomposition across sites, as a table or as n×n matrices
//
// ✨ Why hilldiv?
//
//   - Explicit labels – every site and species is aligned by name, never by position
//   - Fail fast – invalid inputs are rejected before any arithmetic happens
//   - Deterministic – pure functions over immutable inputs; pairs can run in parallel
//
// Packages:
//
//	hill/        the Hill number itself
//	community/   site × species abundance matrix, relative abundance and pooling
//	matrix/      row-major dense and labeled matrices, validators, gonum bridge
//	partition/   gamma/alpha/beta and similarity transforms over any engine
//	taxa/        taxonomic engine
//	functional/  functional engine and Gower trait distances
//	phylo/       phylogenetic engine, Newick trees and branch structure
//	pairwise/    site-pair decomposition
//	dataset/     CSV/XLSX ingestion, JSON/CSV rendering
//	cmd/hilldiv  the command-line tool, with config/ and logging/
//
// Quick example:
//
//	comm, _ := community.New([][]float64{{1, 1, 0}, {0, 1, 1}}, []string{"A", "B"}, nil)
//	res, _ := taxa.Partition(comm, 0)
//	// res.Gamma == 3, res.Alpha == 2, res.Beta == 1.5
//
//	go get github.com/katalvlaran/hilldiv
package hilldiv
