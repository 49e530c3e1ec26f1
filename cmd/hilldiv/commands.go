package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hilldiv/dataset"
	"github.com/katalvlaran/hilldiv/functional"
	"github.com/katalvlaran/hilldiv/hill"
	"github.com/katalvlaran/hilldiv/pairwise"
	"github.com/katalvlaran/hilldiv/partition"
	"github.com/katalvlaran/hilldiv/phylo"
	"github.com/katalvlaran/hilldiv/taxa"
)

func newDiversityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diversity [community]",
		Short: "Per-site diversity of order q",
		Long: `Per-site diversity of order q.

Engines:
  taxa        Hill number D (or Tsallis entropy with --entropy)
  functional  Q, FDis, qD, MD and FD
  phylo       phylogenetic Hill number PD and Faith's PD`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := prepare(cmd, args[0])
			if err != nil {
				return err
			}
			entropy, _ := cmd.Flags().GetBool(flagEntropy)
			frame, err := r.diversity(entropy)
			if err != nil {
				return err
			}
			if summary, _ := cmd.Flags().GetBool(flagSummary); summary {
				frame = dataset.SummaryFrame(dataset.SummarizeFrame(frame))
			}

			return r.write(cmd, []string{""}, []dataset.Frame{frame})
		},
	}
	cmd.Flags().Bool(flagEntropy, false, "report Tsallis entropy instead of the Hill number (taxa only)")
	cmd.Flags().Bool(flagSummary, false, "report summary statistics across sites")

	return cmd
}

func (r *run) diversity(entropy bool) (dataset.Frame, error) {
	q := r.cfg.Q
	sites := r.comm.Sites()
	if entropy && r.cfg.Engine != engineTaxa {
		return dataset.Frame{}, fmt.Errorf("%w: --%s needs the taxa engine", errMissingInput, flagEntropy)
	}

	switch r.cfg.Engine {
	case engineFunctional:
		res, err := functional.Diversity(r.comm, r.dist, q)
		if err != nil {
			return dataset.Frame{}, err
		}

		return dataset.FunctionalFrame(res), nil
	case enginePhylo:
		pd, err := phylo.Diversity(r.comm, r.st, q)
		if err != nil {
			return dataset.Frame{}, err
		}
		faith, err := phylo.FaithPD(r.comm, r.st)
		if err != nil {
			return dataset.Frame{}, err
		}
		f := dataset.Frame{Header: []string{"site", "PD", "faith"}}
		for i, s := range sites {
			f.Keys = append(f.Keys, []string{s})
			f.Values = append(f.Values, []float64{pd[i], faith[i]})
		}

		return f, nil
	}

	if entropy {
		h := make([]float64, len(sites))
		for i := range h {
			var err error
			if h[i], err = hill.Entropy(r.comm.Row(i), q); err != nil {
				return dataset.Frame{}, fmt.Errorf("site %q: %w", sites[i], err)
			}
		}

		return dataset.VectorFrame("site", "entropy", sites, h), nil
	}
	d, err := taxa.Diversity(r.comm, q)
	if err != nil {
		return dataset.Frame{}, err
	}

	return dataset.VectorFrame("site", "D", sites, d), nil
}

func newPartitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "partition [community]",
		Short: "Gamma, alpha and beta diversity with overlap similarities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := prepare(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := partition.Partition(r.comm, r.pooler, r.cfg.Q, r.cfg.PartitionOptions(r.log)...)
			if err != nil {
				return err
			}

			return r.write(cmd, []string{""}, []dataset.Frame{dataset.PartitionFrame(res)})
		},
	}
}

func newPairwiseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairwise [community]",
		Short: "Partition every pair of sites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := prepare(cmd, args[0])
			if err != nil {
				return err
			}
			opts, out, err := r.cfg.PairwiseOptions(r.log)
			if err != nil {
				return err
			}
			opts = append(opts, pairwise.WithContext(cmd.Context()))

			res, err := pairwise.Decompose(r.comm, r.pooler, r.cfg.Q, opts...)
			if err != nil {
				return err
			}
			r.log.Debug().Int("pairs", res.Len()).Int("warnings", len(res.Warnings)).Msg("pairwise done")

			rendered, err := res.Render(out)
			if err != nil {
				return err
			}
			if rendered.Output == pairwise.Table {
				return r.write(cmd, []string{""}, []dataset.Frame{dataset.PairsFrame(rendered.Table)})
			}
			frames := make([]dataset.Frame, len(pairwise.Metrics))
			for i, name := range pairwise.Metrics {
				frames[i] = dataset.MatrixFrame(rendered.Matrices[name])
			}

			return r.write(cmd, pairwise.Metrics, frames)
		},
	}
	cmd.Flags().String(flagPairs, "", "unique or full")
	cmd.Flags().String(flagOutput, "", "data.frame or matrix")
	cmd.Flags().Int(flagWorkers, 0, "parallel pair evaluations; 0 uses every CPU")

	return cmd
}
