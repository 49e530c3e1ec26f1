// Package config loads the CLI configuration in layers:
//
//  1. Defaults: DefaultConfig
//  2. Config file: optional YAML file
//  3. Environment: HILLDIV_* variables (HILLDIV_Q, HILLDIV_LOG_LEVEL, ...)
//
// Later layers win. The merged result is validated before use; command-line
// flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hilldiv/logging"
	"github.com/katalvlaran/hilldiv/pairwise"
	"github.com/katalvlaran/hilldiv/partition"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "HILLDIV_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the merged configuration.
type Config struct {
	Engine      string  `koanf:"engine" validate:"oneof=taxa functional phylo"`
	Q           float64 `koanf:"q" validate:"gte=0"`
	RelThenPool bool    `koanf:"rel_then_pool"`
	TraitsAsIs  bool    `koanf:"traits_as_is"`
	Output      string  `koanf:"output" validate:"oneof=data.frame matrix"`
	Pairs       string  `koanf:"pairs" validate:"oneof=unique full"`
	ShowWarning bool    `koanf:"show_warning"`
	Workers     int     `koanf:"workers" validate:"gte=0"`
	Format      string  `koanf:"format" validate:"oneof=csv json xlsx"`
	Log         Log     `koanf:"log"`
}

// Log configures the logger.
type Log struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Engine:      "taxa",
		Q:           0,
		RelThenPool: partition.DefaultRelThenPool,
		TraitsAsIs:  false,
		Output:      pairwise.Table.String(),
		Pairs:       pairwise.Unique.String(),
		ShowWarning: partition.DefaultShowWarning,
		Workers:     pairwise.DefaultWorkers,
		Format:      "csv",
		Log:         Log{Level: "info", Format: "console"},
	}
}

// Load merges defaults, the YAML file at path (skipped when empty) and the
// environment, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := DefaultConfig()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey maps HILLDIV_LOG_LEVEL to log.level and HILLDIV_REL_THEN_POOL to
// rel_then_pool.
func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}

	return key
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fmt.Sprintf("%s=%v fails %s", fe.Namespace(), fe.Value(), tagText(fe))
		}

		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	return fmt.Errorf("%w: %w", ErrInvalid, err)
}

func tagText(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}

// Logger builds the logger described by the Log section, writing to w
// (os.Stderr when nil).
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format
	if w != nil {
		cfg.Output = w
	}

	return logging.New(cfg)
}

// PartitionOptions translates the configuration for partition calls.
func (c *Config) PartitionOptions(l zerolog.Logger) []partition.Option {
	return []partition.Option{
		partition.WithRelThenPool(c.RelThenPool),
		partition.WithShowWarning(c.ShowWarning),
		partition.WithLogger(l),
	}
}

// PairwiseOptions translates the configuration for pairwise calls.
func (c *Config) PairwiseOptions(l zerolog.Logger) ([]pairwise.Option, pairwise.Output, error) {
	pairs, err := pairwise.ParsePairs(c.Pairs)
	if err != nil {
		return nil, 0, err
	}
	out, err := pairwise.ParseOutput(c.Output)
	if err != nil {
		return nil, 0, err
	}
	opts := []pairwise.Option{
		pairwise.WithPairs(pairs),
		pairwise.WithWorkers(c.Workers),
		pairwise.WithPartitionOptions(c.PartitionOptions(l)...),
	}

	return opts, out, nil
}
