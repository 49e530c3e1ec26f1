// Package dataset reads the tabular inputs of the engines and writes their
// results.
//
// Input tables (CSV, TSV or XLSX) share one layout: the header row holds the
// column labels (its first cell is ignored) and the first cell of every other
// row is that row's label. A community table has sites as rows and species as
// columns; a trait table has species as rows; a distance table is square with
// species on both axes.
//
// Results are converted to a Frame (key columns plus numeric columns) and
// written as CSV, JSON or XLSX. Missing values are written as "NA" in CSV and
// XLSX and as null in JSON.
package dataset
