// SPDX-License-Identifier: MIT

// Package config loads the settings of an algorithm comparison experiment.
//
// Values come from three layers, later ones winning: Default(), an optional
// config file in any format viper understands (YAML, TOML, JSON, ...), and
// environment variables prefixed with QMKP_ where nested keys use "_"
// (QMKP_INSTANCE_ITEMS, QMKP_FCS_LEN_HISTORY). The merged result is checked
// with go-playground/validator before it is returned.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/qmkp/qmkp"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "QMKP"

var (
	// ErrRead indicates the config file could not be read or decoded.
	ErrRead = errors.New("config: read failed")

	// ErrInvalid indicates the merged configuration failed validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the complete experiment configuration.
type Config struct {
	Instance InstanceConfig `mapstructure:"instance"`

	// Runs is the number of random instances to generate.
	Runs int `mapstructure:"runs" validate:"min=1"`

	// Workers bounds the number of instances solved concurrently.
	// 0 means runtime.GOMAXPROCS(0).
	Workers int `mapstructure:"workers" validate:"min=0"`

	// Seed is the root of every random stream. 0 maps to the fixed default.
	Seed int64 `mapstructure:"seed"`

	// Algorithms names the heuristics to compare, see qmkp.ParseAlgorithm.
	Algorithms []string `mapstructure:"algorithms" validate:"min=1,dive,algorithm"`

	FCS FCSConfig `mapstructure:"fcs"`
	Log LogConfig `mapstructure:"log"`
}

// InstanceConfig shapes the random instances. Ranges are half-open [min, max).
type InstanceConfig struct {
	Items       int     `mapstructure:"items"        validate:"min=1"`
	Knapsacks   int     `mapstructure:"knapsacks"    validate:"min=0"`
	ProfitScale float64 `mapstructure:"profit_scale" validate:"gt=0"`
	WeightMin   int     `mapstructure:"weight_min"   validate:"min=1"`
	WeightMax   int     `mapstructure:"weight_max"   validate:"gtfield=WeightMin"`
	CapacityMin int     `mapstructure:"capacity_min" validate:"min=0"`
	CapacityMax int     `mapstructure:"capacity_max" validate:"gtfield=CapacityMin"`
}

// FCSConfig holds the Fix-and-Complete parameters.
type FCSConfig struct {
	// Alpha is the fixed fraction; 0 draws a fresh one per solve.
	Alpha      float64 `mapstructure:"alpha"       validate:"gte=0,lt=1"`
	LenHistory int     `mapstructure:"len_history" validate:"min=1"`
}

// LogConfig selects the logger built by internal/logging.
type LogConfig struct {
	Level       string `mapstructure:"level"       validate:"oneof=debug info warn error"`
	Development bool   `mapstructure:"development"`
}

// Default returns the settings of the reference comparison: 500 instances of
// 20 items and 5 knapsacks, weights in [1,5), capacities in [3,12), profit
// factor entries in [0,5).
func Default() Config {
	return Config{
		Instance: InstanceConfig{
			Items:       20,
			Knapsacks:   5,
			ProfitScale: 5,
			WeightMin:   1,
			WeightMax:   5,
			CapacityMin: 3,
			CapacityMax: 12,
		},
		Runs:       500,
		Workers:    0,
		Seed:       1,
		Algorithms: []string{"constructive", "fcs", "random", "round-robin"},
		FCS: FCSConfig{
			Alpha:      0,
			LenHistory: qmkp.DefaultLenHistory,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load merges Default(), the file at path (skipped when path is "") and
// QMKP_* environment variables, then validates the result.
//
// Errors: ErrRead (missing or malformed file), ErrInvalid (validation).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrRead, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("instance.items", d.Instance.Items)
	v.SetDefault("instance.knapsacks", d.Instance.Knapsacks)
	v.SetDefault("instance.profit_scale", d.Instance.ProfitScale)
	v.SetDefault("instance.weight_min", d.Instance.WeightMin)
	v.SetDefault("instance.weight_max", d.Instance.WeightMax)
	v.SetDefault("instance.capacity_min", d.Instance.CapacityMin)
	v.SetDefault("instance.capacity_max", d.Instance.CapacityMax)
	v.SetDefault("runs", d.Runs)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("algorithms", d.Algorithms)
	v.SetDefault("fcs.alpha", d.FCS.Alpha)
	v.SetDefault("fcs.len_history", d.FCS.LenHistory)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ParsedAlgorithms resolves Algorithms, dropping duplicates while keeping the
// first occurrence's position.
func (c *Config) ParsedAlgorithms() ([]qmkp.Algorithm, error) {
	out := make([]qmkp.Algorithm, 0, len(c.Algorithms))
	seen := make(map[qmkp.Algorithm]bool, len(c.Algorithms))
	for _, name := range c.Algorithms {
		alg, err := qmkp.ParseAlgorithm(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		if seen[alg] {
			continue
		}
		seen[alg] = true
		out = append(out, alg)
	}

	return out, nil
}

// Options converts the FCS settings to solver options.
func (c FCSConfig) Options() []qmkp.FCSOption {
	opts := []qmkp.FCSOption{qmkp.WithLenHistory(c.LenHistory)}
	if c.Alpha > 0 {
		opts = append(opts, qmkp.WithAlpha(c.Alpha))
	}
	return opts
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := qmkp.ParseAlgorithm(fl.Field().String())
		return err == nil
	})

	return v
}
