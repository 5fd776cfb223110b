// SPDX-License-Identifier: MIT
//
// File: tools.go
// Role: The fake makeCSR / changeToD / run executables.
// Policy:
//   - Each tool validates its inputs the way the engine's file protocol
//     requires, so protocol drift in the client fails tests.

package dpcolortest

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/cliquekernel/dpcolor"
)

const exitUsage = 2

// RunIfTool acts as a fake engine tool and exits when the process was started
// under a tool name; otherwise it returns immediately.
func RunIfTool() {
	name := filepath.Base(os.Args[0])
	var tool func(mode Mode, args []string) error
	switch name {
	case dpcolor.DefaultMakeCSR:
		tool = makeCSR
	case dpcolor.DefaultChangeToD:
		tool = changeToD
	case dpcolor.DefaultRun:
		tool = run
	default:
		return
	}

	dir := filepath.Dir(os.Args[0])
	logCall(dir, name, os.Args[1:])
	raw, _ := os.ReadFile(filepath.Join(dir, modeFile))
	if err := tool(Mode(raw), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(exitUsage)
	}
	os.Exit(0)
}

func logCall(dir, name string, args []string) {
	f, err := os.OpenFile(filepath.Join(dir, callsFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintln(f, strings.Join(append([]string{name}, args...), " "))
}

// makeCSR <data> <tmpedge> <tmpidx>: validates the edge list and stores it
// (as plain text) in tmpedge, and the vertex count in tmpidx.
func makeCSR(mode Mode, args []string) error {
	if mode == ModeFailMakeCSR {
		return fmt.Errorf("injected failure")
	}
	if len(args) != 3 {
		return fmt.Errorf("want 3 args, got %d", len(args))
	}
	n, edges, err := readEdgeList(args[0])
	if err != nil {
		return err
	}
	if err = writeEdges(args[1], edges); err != nil {
		return err
	}

	return os.WriteFile(args[2], []byte(strconv.Itoa(n)), 0o644)
}

// changeToD -edge <tmpedge> -idx <tmpidx> -v <n>: checks n and writes the
// "<path>deg.bin" outputs.
func changeToD(mode Mode, args []string) error {
	fs := flag.NewFlagSet("changeToD", flag.ContinueOnError)
	edgePath := fs.String("edge", "", "")
	idxPath := fs.String("idx", "", "")
	v := fs.Int("v", -1, "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	idx, err := os.ReadFile(*idxPath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(idx)) != strconv.Itoa(*v) {
		return fmt.Errorf("-v %d does not match index %q", *v, idx)
	}
	if mode == ModeNoDegreeFiles {
		return nil
	}
	edges, err := os.ReadFile(*edgePath)
	if err != nil {
		return err
	}
	if err = os.WriteFile(*edgePath+"deg.bin", edges, 0o644); err != nil {
		return err
	}

	return os.WriteFile(*idxPath+"deg.bin", idx, 0o644)
}

// run -f <folder>/ -k <k> -N <samples> -cccpath: prints a result line whose
// field 7 is the exact k-clique count.
func run(mode Mode, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	folder := fs.String("f", "", "")
	k := fs.Int("k", 0, "")
	samples := fs.Int("N", 0, "")
	_ = fs.Bool("cccpath", false, "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	switch mode {
	case ModeFailRun:
		return fmt.Errorf("injected failure")
	case ModeGarbage:
		fmt.Println("segmentation fault (core dumped)")
		return nil
	case ModeHang:
		time.Sleep(time.Minute)
		return nil
	}
	if !strings.HasSuffix(*folder, string(os.PathSeparator)) {
		return fmt.Errorf("-f %q must end with a separator", *folder)
	}
	idx, err := os.ReadFile(*folder + "idx.bin")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(idx)))
	if err != nil {
		return err
	}
	_, edges, err := readEdgeLines(*folder + "edge.bin")
	if err != nil {
		return err
	}

	count := CountCliques(n, edges, *k)
	fmt.Printf("|%d| 1.0| %d| 0.02| 300| d%d| %d.0|not expected 6 | 0.000000 0 %d -inf%%| %d| 100.00%%| 0.05| 0.07| inf%%\n",
		*k, *samples, n, count, *samples, count)

	return nil
}

// readEdgeList parses "n m" followed by m "u v" lines with 0 ≤ u < v < n.
func readEdgeList(path string) (int, [][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return 0, nil, fmt.Errorf("%s: missing header", path)
	}
	var n, m int
	if _, err = fmt.Sscanf(sc.Text(), "%d %d", &n, &m); err != nil {
		return 0, nil, fmt.Errorf("%s: header: %w", path, err)
	}
	edges, err := scanEdges(sc)
	if err != nil {
		return 0, nil, err
	}
	if len(edges) != m {
		return 0, nil, fmt.Errorf("%s: header says %d edges, found %d", path, m, len(edges))
	}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= e[1] || e[1] >= n {
			return 0, nil, fmt.Errorf("%s: bad edge %v for n=%d", path, e, n)
		}
	}

	return n, edges, nil
}

func readEdgeLines(path string) (int, [][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()
	edges, err := scanEdges(bufio.NewScanner(f))

	return len(edges), edges, err
}

func scanEdges(sc *bufio.Scanner) ([][2]int, error) {
	var edges [][2]int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var u, v int
		if _, err := fmt.Sscanf(line, "%d %d", &u, &v); err != nil {
			return nil, fmt.Errorf("edge line %q: %w", line, err)
		}
		edges = append(edges, [2]int{u, v})
	}

	return edges, sc.Err()
}

func writeEdges(path string, edges [][2]int) error {
	var sb strings.Builder
	for _, e := range edges {
		fmt.Fprintf(&sb, "%d %d\n", e[0], e[1])
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// CountCliques counts k-cliques of the graph on 0..n-1 by brute-force
// extension over an adjacency matrix. It is the reference answer the fake
// sampler reports.
func CountCliques(n int, edges [][2]int, k int) int64 {
	if k < 1 || n == 0 {
		return 0
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}

	var extend func(members []int, next int) int64
	extend = func(members []int, next int) int64 {
		if len(members) == k {
			return 1
		}
		var total int64
		for v := next; v < n; v++ {
			ok := true
			for _, u := range members {
				if !adj[u][v] {
					ok = false
					break
				}
			}
			if ok {
				total += extend(append(members, v), v+1)
			}
		}

		return total
	}

	return extend(make([]int, 0, k), 0)
}
