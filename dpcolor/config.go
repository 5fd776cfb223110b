// SPDX-License-Identifier: MIT
// Package: cliquekernel/dpcolor
//
// config.go — engine locations, tool names and invocation limits.

package dpcolor

import (
	"path/filepath"
	"strings"
	"time"
)

// Default engine settings.
const (
	DefaultBinDir    = "./dpcolor/bin"
	DefaultDataDir   = "./dpcolor/data"
	DefaultMakeCSR   = "makeCSR"
	DefaultChangeToD = "changeToD"
	DefaultRun       = "run"
	DefaultSamples   = 1000
)

// Config locates the engine and bounds its invocations.
type Config struct {
	BinDir  string
	DataDir string

	// Tool file names inside BinDir.
	MakeCSR   string
	ChangeToD string
	Run       string

	// Samples is the -N argument of the sampler.
	Samples int

	// Timeout bounds each single tool invocation; 0 means only ctx bounds it.
	Timeout time.Duration
}

// DefaultConfig returns the engine layout of a checkout with dpcolor built in ./dpcolor.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

// withDefaults fills every zero field.
func (c Config) withDefaults() Config {
	if c.BinDir == "" {
		c.BinDir = DefaultBinDir
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.MakeCSR == "" {
		c.MakeCSR = DefaultMakeCSR
	}
	if c.ChangeToD == "" {
		c.ChangeToD = DefaultChangeToD
	}
	if c.Run == "" {
		c.Run = DefaultRun
	}
	if c.Samples <= 0 {
		c.Samples = DefaultSamples
	}

	return c
}

// toolPath joins BinDir and name. A result without a separator (BinDir ".")
// gets a "./" prefix so exec resolves it in the working directory, not $PATH.
func (c Config) toolPath(name string) string {
	p := filepath.Join(c.BinDir, name)
	if !strings.ContainsRune(p, filepath.Separator) {
		p = "." + string(filepath.Separator) + p
	}

	return p
}

func (c Config) tools() []string {
	return []string{c.MakeCSR, c.ChangeToD, c.Run}
}
