// Package rules defines the adjacency rule table consumed by the
// wavecollapse solver: for every tile label, the set of labels that may
// legally sit in one of its four orthogonal neighbor positions.
//
// What:
//
//   - RuleTable maps a tile label to its allowed-neighbor label set.
//   - Allow records one direction of permission; AllowPair records both.
//   - Allowed answers membership; Neighbors and Labels expose sorted views.
//   - Clone produces an independent copy for deriving looser variants.
//
// Why:
//
//   - Hand-authored rulesets: describe a tileset's legal seams directly.
//   - Learned rulesets: extract.Extractor emits a RuleTable from an image.
//   - Retry workflows: clone and loosen a table after a contradiction.
//
// Semantics:
//
//   - Tables are expected to be symmetric for physically meaningful
//     adjacency (if A tolerates B, B tolerates A), but symmetry is not
//     enforced; asymmetric tables simply make propagation asymmetric.
//   - Self-adjacency (A allows A) is common but never required.
//   - A label with no entry allows no neighbors at all.
//
// Complexity:
//
//   - Allow/AllowPair/Allowed: O(1) expected.
//   - Neighbors/Labels: O(k log k) for k entries, due to sorting.
//   - Clone: O(total entries).
//
// RuleTable is not safe for concurrent mutation; build it first, then
// hand it to a solver, which never mutates it.
package rules
