package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/config"
	"github.com/katalvlaran/hilldiv/dataset"
	"github.com/katalvlaran/hilldiv/functional"
	"github.com/katalvlaran/hilldiv/partition"
	"github.com/katalvlaran/hilldiv/phylo"
	"github.com/katalvlaran/hilldiv/taxa"
)

const (
	flagConfig      = "config"
	flagEngine      = "engine"
	flagQ           = "q"
	flagRelThenPool = "rel-then-pool"
	flagShowWarning = "show-warning"
	flagFormat      = "format"
	flagOut         = "out"
	flagTraits      = "traits"
	flagTraitsAsIs  = "traits-as-is"
	flagTree        = "tree"
	flagLogLevel    = "log-level"
	flagEntropy     = "entropy"
	flagSummary     = "summary"
	flagPairs       = "pairs"
	flagOutput      = "output"
	flagWorkers     = "workers"
)

const (
	engineTaxa       = "taxa"
	engineFunctional = "functional"
	enginePhylo      = "phylo"
)

var errMissingInput = errors.New("hilldiv: missing input")

// loadConfig layers the flags the user set over config.Load.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fs := cmd.Flags()
	path, _ := fs.GetString(flagConfig)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if fs.Changed(flagEngine) {
		cfg.Engine, _ = fs.GetString(flagEngine)
	}
	if fs.Changed(flagQ) {
		cfg.Q, _ = fs.GetFloat64(flagQ)
	}
	if fs.Changed(flagRelThenPool) {
		cfg.RelThenPool, _ = fs.GetBool(flagRelThenPool)
	}
	if fs.Changed(flagShowWarning) {
		cfg.ShowWarning, _ = fs.GetBool(flagShowWarning)
	}
	if fs.Changed(flagFormat) {
		cfg.Format, _ = fs.GetString(flagFormat)
	}
	if fs.Changed(flagTraitsAsIs) {
		cfg.TraitsAsIs, _ = fs.GetBool(flagTraitsAsIs)
	}
	if fs.Changed(flagLogLevel) {
		cfg.Log.Level, _ = fs.GetString(flagLogLevel)
	}
	// pairwise-only flags
	if f := fs.Lookup(flagPairs); f != nil && f.Changed {
		cfg.Pairs = f.Value.String()
	}
	if f := fs.Lookup(flagOutput); f != nil && f.Changed {
		cfg.Output = f.Value.String()
	}
	if f := fs.Lookup(flagWorkers); f != nil && f.Changed {
		cfg.Workers, _ = fs.GetInt(flagWorkers)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run is the state shared by every subcommand once inputs are read.
type run struct {
	cfg    *config.Config
	log    zerolog.Logger
	comm   *community.Matrix
	dist   *functional.Distance
	st     *phylo.Structure
	pooler partition.Pooler
}

func prepare(cmd *cobra.Command, path string) (*run, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	r := &run{cfg: cfg, log: cfg.Logger(cmd.ErrOrStderr())}

	if r.comm, err = dataset.ReadCommunity(path); err != nil {
		return nil, err
	}
	r.log.Debug().
		Str("path", path).
		Int("sites", r.comm.NumSites()).
		Int("species", r.comm.NumSpecies()).
		Str("engine", cfg.Engine).
		Msg("community loaded")

	switch cfg.Engine {
	case engineTaxa:
		r.pooler = taxa.Pooler{}
	case engineFunctional:
		traits, _ := cmd.Flags().GetString(flagTraits)
		if r.dist, err = readDistance(traits, cfg.TraitsAsIs); err != nil {
			return nil, err
		}
		r.pooler = functional.Pooler{Distance: r.dist}
	case enginePhylo:
		tree, _ := cmd.Flags().GetString(flagTree)
		if r.st, err = readStructure(tree, r.comm); err != nil {
			return nil, err
		}
		r.pooler = phylo.Pooler{Structure: r.st}
	default:
		return nil, fmt.Errorf("%w: engine %q", config.ErrInvalid, cfg.Engine)
	}

	return r, nil
}

// readDistance builds the species distance from a trait table (Gower over
// each community's species) or, when asIs, from a precomputed distance table.
func readDistance(path string, asIs bool) (*functional.Distance, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: --%s is required by the functional engine", errMissingInput, flagTraits)
	}
	t, err := dataset.ReadTable(path)
	if err != nil {
		return nil, err
	}
	if asIs {
		lab, err := t.Numeric()
		if err != nil {
			return nil, err
		}

		return functional.NewDistance(lab, true)
	}
	traits, err := functional.ParseTraits(t.RowLabels, t.ColLabels, t.Cells)
	if err != nil {
		return nil, err
	}

	return functional.NewTraitDistance(traits)
}

func readStructure(path string, comm *community.Matrix) (*phylo.Structure, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: --%s is required by the phylo engine", errMissingInput, flagTree)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hilldiv: %w", err)
	}
	defer f.Close()
	tree, err := phylo.ReadNewick(f)
	if err != nil {
		return nil, err
	}

	return phylo.ForCommunity(tree, comm)
}

// output opens --out, or wraps stdout so Close is a no-op.
func output(cmd *cobra.Command) (io.WriteCloser, error) {
	path, _ := cmd.Flags().GetString(flagOut)
	if path == "" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("hilldiv: %w", err)
	}

	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func (r *run) write(cmd *cobra.Command, names []string, frames []dataset.Frame) (err error) {
	format, err := dataset.ParseFormat(r.cfg.Format)
	if err != nil {
		return err
	}
	w, err := output(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	if len(frames) == 1 && names[0] == "" {
		return dataset.Write(w, format, frames[0])
	}

	return dataset.WriteSheets(w, format, names, frames)
}
