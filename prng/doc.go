// Package prng provides the seeded deterministic sequence that drives
// every wavecollapse run: entropy tie-breaking jitter, tie-candidate
// selection, and option selection all consume draws from one Sequence.
//
// What:
//
//   - Sequence wraps a single uint64 state advanced by the SplitMix64
//     step function (Steele, Lea & Flood; finalizer constants as
//     published).
//   - Uint64, Float64 and Intn each consume exactly one step.
//
// Why:
//
//   - Reproducibility: the same seed replays the same decision stream,
//     so a generated map can be reported and regenerated by its seed.
//   - Ownership: each solver run owns its own Sequence; nothing is
//     shared across runs, so there is no locking and no contention.
//
// The numeric stream is stable within this implementation; bit-for-bit
// portability to other languages' generators is explicitly not a goal.
//
// Complexity: every draw is O(1), three multiplies and a handful of
// xor-shifts.
package prng
