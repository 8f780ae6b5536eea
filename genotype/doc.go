// SPDX-License-Identifier: MIT

// Package genotype provides the ternary single-cell mutation matrix
// consumed by the inference engine.
//
// A Matrix holds N cell rows × M mutation columns; every entry is one
// of three states:
//
//   - Absent  — the mutation was not observed in the cell (0),
//   - Present — the mutation was observed in the cell (1),
//   - Missing — the entry was not measured (dropout, marker 2).
//
// The matrix produced by the host (after its own validation and file
// parsing) is treated as immutable input: the engine only reads it.
// Expected-genotype matrices reconstructed from an inferred tree are
// values of the same type, but contain only Absent/Present entries.
//
// Design:
//   - Row-major flat storage ([]Entry) for cache-friendly row scans.
//   - Strict sentinel errors; no panics on user input.
//   - RowView exposes a zero-copy row slice for hot scoring loops;
//     callers must not mutate it.
//
// Complexity: all accessors are O(1); construction is O(N·M).
package genotype
