// SPDX-License-Identifier: MIT

// Package dpcolor drives the external DPColor k-clique counting engine
// ("Lightning Fast and Space Efficient k-clique Counting", Ye et al.).
//
// The engine is three executables found in Config.BinDir:
//
//	makeCSR   <data> <tmpedge.bin> <tmpidx.bin>
//	changeToD -edge <tmpedge.bin> -idx <tmpidx.bin> -v <n>
//	run       -f <folder>/ -k <k> -N <samples> -cccpath
//
// A Job owns the working directory <DataDir>/d<id>/. Opening a job writes the
// edge list d<id>.txt ("n m" header, one "u v" line per edge) and s.txt (n),
// builds the CSR index and renames the degree-ordered outputs to edge.bin and
// idx.bin. Each query runs the sampler and reads the estimate from the 8th
// '|'-separated field of its stdout, truncated to an integer. Closing the job
// removes the directory; Client.CountBySize and Client.CountK close on every
// path, success or failure.
//
// Jobs are isolated by id: ids are restricted to [A-Za-z0-9_-] and an id is
// rejected with ErrJobInUse while another job of the same Client holds it.
package dpcolor
