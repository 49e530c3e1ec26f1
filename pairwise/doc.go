// Package pairwise runs the partition engine over pairs of sites.
//
// One pipeline serves every combination of pairing mode and output shape:
//
//  1. build the task list for the pairing mode (Unique: i<j, Full: every i,j);
//  2. evaluate each two-site sub-community with partition.Partition, every task
//     writing into its own pre-sized slot (optionally on a bounded worker pool);
//  3. project the records as a Table (one Row per pair, Cartesian site order)
//     or as Matrices (metric → n×n labeled matrix, NaN where no pair was run).
//
// Tasks only read the shared, immutable community, so workers need no locking.
// The default of one worker matches sequential evaluation exactly.
package pairwise
