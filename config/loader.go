// SPDX-License-Identifier: MIT
// Package: cliquekernel/config
//
// loader.go — file decoding by extension, defaults, struct-tag validation.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliquekernel/dpcolor"
	"github.com/katalvlaran/cliquekernel/logging"
)

var validate = validator.New()

// Load reads path (.toml, .yaml or .yml), applies defaults and validates.
//
// Errors:
//   - ErrInvalidConfig wrapping the read, decode or validation failure.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, derr := toml.Decode(string(data), &cfg)
		if derr != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, derr)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalidConfig, path, undecoded)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if derr := dec.Decode(&cfg); derr != nil && !errors.Is(derr, io.EOF) {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, derr)
		}
	default:
		return nil, fmt.Errorf("%w: %s: unsupported extension %q", ErrInvalidConfig, path, ext)
	}

	applyDefaults(&cfg)
	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Engine.BinDir) == "" {
		cfg.Engine.BinDir = dpcolor.DefaultBinDir
	}
	if strings.TrimSpace(cfg.Engine.DataDir) == "" {
		cfg.Engine.DataDir = dpcolor.DefaultDataDir
	}
	if cfg.Engine.Samples == 0 {
		cfg.Engine.Samples = dpcolor.DefaultSamples
	}

	if strings.TrimSpace(cfg.Counting.Mode) == "" {
		cfg.Counting.Mode = DefaultMode
	}
	cfg.Counting.Mode = strings.ToLower(strings.TrimSpace(cfg.Counting.Mode))
	if cfg.Counting.Threshold == 0 {
		cfg.Counting.Threshold = DefaultThreshold
	}

	if cfg.Kernel.Workers == 0 {
		cfg.Kernel.Workers = DefaultWorkers
	}
	if cfg.Embedding.Size == 0 {
		cfg.Embedding.Size = DefaultEmbeddingSize
	}
	if strings.TrimSpace(cfg.Log.Environment) == "" {
		cfg.Log.Environment = logging.EnvProduction
	}
}

// Validate checks struct tags on cfg.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
