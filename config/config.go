// SPDX-License-Identifier: MIT

// Package config loads the module configuration from TOML or YAML files,
// fills defaults and validates the result.
package config

import (
	"errors"
	"time"

	"github.com/katalvlaran/cliquekernel/dpcolor"
	"github.com/katalvlaran/cliquekernel/logging"
)

// ErrInvalidConfig wraps every load, decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Counting modes.
const (
	ModeExact       = "exact"
	ModeApproximate = "approximate"
	ModeAuto        = "auto"
)

// Defaults.
const (
	DefaultMode          = ModeAuto
	DefaultThreshold     = 50
	DefaultWorkers       = 1
	DefaultEmbeddingSize = 10
)

// Config is the root document.
type Config struct {
	Engine    EngineConfig    `toml:"engine" yaml:"engine"`
	Counting  CountingConfig  `toml:"counting" yaml:"counting"`
	Kernel    KernelConfig    `toml:"kernel" yaml:"kernel"`
	Embedding EmbeddingConfig `toml:"embedding" yaml:"embedding"`
	Log       logging.Config  `toml:"log" yaml:"log"`
}

// EngineConfig locates the external counting engine.
type EngineConfig struct {
	BinDir  string        `toml:"bin_dir" yaml:"bin_dir" validate:"required"`
	DataDir string        `toml:"data_dir" yaml:"data_dir" validate:"required"`
	Samples int           `toml:"samples" yaml:"samples" validate:"gte=1"`
	Timeout time.Duration `toml:"timeout" yaml:"timeout" validate:"gte=0"`
}

// CountingConfig selects the clique counting strategy.
type CountingConfig struct {
	Mode string `toml:"mode" yaml:"mode" validate:"oneof=exact approximate auto"`
	// Threshold is the largest vertex count auto mode counts exactly.
	Threshold int `toml:"threshold" yaml:"threshold" validate:"gte=1"`
	// SkipTrivialSizes leaves sizes 1 and 2 out of approximate histograms.
	SkipTrivialSizes bool `toml:"skip_trivial_sizes" yaml:"skip_trivial_sizes"`
}

// KernelConfig shapes kernel matrix computation.
type KernelConfig struct {
	// CliqueSize restricts pair values to cliques of this size; 0 counts all sizes.
	CliqueSize int  `toml:"clique_size" yaml:"clique_size" validate:"gte=0"`
	Normalize  bool `toml:"normalize" yaml:"normalize"`
	Workers    int  `toml:"workers" yaml:"workers" validate:"gte=1"`
}

// EmbeddingConfig sizes clique embeddings.
type EmbeddingConfig struct {
	Size int `toml:"size" yaml:"size" validate:"gte=1"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// DPColor converts the engine section into a dpcolor.Config.
func (c *Config) DPColor() dpcolor.Config {
	return dpcolor.Config{
		BinDir:  c.Engine.BinDir,
		DataDir: c.Engine.DataDir,
		Samples: c.Engine.Samples,
		Timeout: c.Engine.Timeout,
	}
}
