// Command hilldiv computes Hill-number diversity, its gamma/alpha/beta
// partition and pairwise decompositions from a site × species table.
//
//	hilldiv diversity community.csv --q 1
//	hilldiv partition community.csv --engine functional --traits traits.csv
//	hilldiv pairwise community.xlsx --engine phylo --tree tree.nwk --output matrix --format xlsx --out pairs.xlsx
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hilldiv",
		Short:         "Hill-number diversity and its partitioning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String(flagConfig, "", "YAML config file")
	pf.String(flagEngine, "", "diversity engine: taxa, functional or phylo")
	pf.Float64(flagQ, 0, "order of diversity")
	pf.Bool(flagRelThenPool, true, "pool relative abundances instead of raw counts")
	pf.Bool(flagShowWarning, true, "log similarities that fall outside [0,1]")
	pf.String(flagFormat, "", "output format: csv, json or xlsx")
	pf.StringP(flagOut, "o", "", "output file (stdout when empty)")
	pf.String(flagTraits, "", "species × trait table, or species × species distances with --traits-as-is")
	pf.Bool(flagTraitsAsIs, false, "read --traits as a distance matrix")
	pf.String(flagTree, "", "Newick tree file")
	pf.String(flagLogLevel, "", "log level")

	rootCmd.AddCommand(
		newDiversityCmd(),
		newPartitionCmd(),
		newPairwiseCmd(),
	)

	return rootCmd
}
