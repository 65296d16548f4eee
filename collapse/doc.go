// Package collapse implements the constraint-satisfaction solver at the
// heart of wavecollapse: a rectangular grid of possibility sets that is
// repeatedly narrowed — minimum-entropy cell selection, collapse to a
// single tile label, constraint propagation — until every cell holds
// exactly one label or the grid proves unsolvable.
//
// What:
//
//   - Grid holds one possibility set per cell over a fixed tile alphabet,
//     plus the seeded sequence that drives every random choice.
//   - New validates inputs, interns labels to dense indices, compiles the
//     rule table into a flat boolean matrix, and initializes every cell
//     to the full alphabet.
//   - Run executes the algorithm to completion, contradiction, or
//     iteration-budget exhaustion; Step exposes one iteration at a time
//     for callers that want cooperative cancellation.
//   - Result, Rows and At read the finished label grid.
//
// Why:
//
//   - Tile-map generation: produce grids whose every orthogonal seam is
//     legal under a declared adjacency ruleset.
//   - Reproducible content: the same (dimensions, tiles, rules, seed)
//     always regenerates the same map, so seeds are shareable artifacts.
//   - Texture synthesis: pair with extract to imitate a source image's
//     local adjacency statistics.
//
// Algorithm (one iteration):
//
//  1. Scan all uncollapsed cells in row-major order; score each as
//     optionCount + 0.1·draw; gather the cells scoring within 0.01 of
//     the minimum and draw once more to pick among them. No uncollapsed
//     cell left means the grid is complete.
//  2. Draw once to pick one of the chosen cell's remaining options and
//     collapse the cell to it.
//  3. Propagate: a LIFO worklist of cells whose options changed; each
//     popped cell re-constrains its in-bounds, uncollapsed orthogonal
//     neighbors to the options still compatible with at least one of its
//     own. A shrunk neighbor is pushed; an emptied neighbor is a
//     contradiction.
//
// Complexity:
//
//   - One iteration: O(W·H) selection scan + propagation bounded by
//     O(W·H·n²) in the worst cascade (n = alphabet size).
//   - A successful run performs exactly W·H iterations.
//   - Memory: O(W·H·n + n²).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrEmptyAlphabet: no tile labels supplied.
//   - ErrDuplicateLabel: the alphabet repeats a label.
//   - ErrNilRules: no rule table supplied.
//   - ErrBadMaxIterations: WithMaxIterations given a non-positive value.
//   - ErrContradiction: a cell's possibility set became empty.
//   - ErrBudgetExhausted: the iteration budget ran out before completion.
//
// A Grid is single-use and single-threaded: construct, Run (or Step),
// read the result, discard. Concurrent generations must each own their
// own Grid; nothing here locks.
package collapse
