// SPDX-License-Identifier: MIT

// Package dpcolortest provides an in-process stand-in for the DPColor engine.
//
// Install links the three tool names to the running test binary. When the
// binary is started under one of those names, RunIfTool (called first thing in
// TestMain) acts as that tool and exits. The fake sampler counts k-cliques
// exactly with a naive enumerator, so approximate results equal exact ones.
//
//	func TestMain(m *testing.M) {
//		dpcolortest.RunIfTool()
//		os.Exit(m.Run())
//	}
package dpcolortest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/cliquekernel/dpcolor"
)

// Mode selects a failure the fake tools inject.
type Mode string

const (
	// ModeOK behaves like a working engine.
	ModeOK Mode = ""
	// ModeFailMakeCSR makes makeCSR exit non-zero.
	ModeFailMakeCSR Mode = "fail-makeCSR"
	// ModeFailRun makes the sampler exit non-zero.
	ModeFailRun Mode = "fail-run"
	// ModeGarbage makes the sampler print output without the count field.
	ModeGarbage Mode = "garbage"
	// ModeNoDegreeFiles makes changeToD succeed without producing its outputs.
	ModeNoDegreeFiles Mode = "no-degree-files"
	// ModeHang makes the sampler sleep far beyond any test timeout.
	ModeHang Mode = "hang"
)

const (
	modeFile  = "mode"
	callsFile = "calls.log"
)

// Engine is an installed fake engine.
type Engine struct {
	BinDir  string
	DataDir string
}

// Install creates a fake engine in fresh temporary directories.
func Install(t testing.TB, mode Mode) *Engine {
	t.Helper()
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("dpcolortest: executable: %v", err)
	}
	e := &Engine{BinDir: t.TempDir(), DataDir: t.TempDir()}
	for _, name := range []string{dpcolor.DefaultMakeCSR, dpcolor.DefaultChangeToD, dpcolor.DefaultRun} {
		if err = os.Symlink(exe, filepath.Join(e.BinDir, name)); err != nil {
			t.Fatalf("dpcolortest: link %s: %v", name, err)
		}
	}
	e.SetMode(t, mode)

	return e
}

// SetMode switches the injected failure for subsequent invocations.
func (e *Engine) SetMode(t testing.TB, mode Mode) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(e.BinDir, modeFile), []byte(mode), 0o644); err != nil {
		t.Fatalf("dpcolortest: mode: %v", err)
	}
}

// Config returns a dpcolor.Config pointing at the fake engine.
func (e *Engine) Config() dpcolor.Config {
	return dpcolor.Config{BinDir: e.BinDir, DataDir: e.DataDir}
}

// Calls returns one line per tool invocation: the tool name followed by its arguments.
func (e *Engine) Calls(t testing.TB) []string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(e.BinDir, callsFile))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("dpcolortest: calls: %v", err)
	}

	return strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
}

// Leftovers lists entries remaining under DataDir.
func (e *Engine) Leftovers(t testing.TB) []string {
	t.Helper()
	entries, err := os.ReadDir(e.DataDir)
	if err != nil {
		t.Fatalf("dpcolortest: read data dir: %v", err)
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Name())
	}

	return out
}
