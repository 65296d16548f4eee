// Package wavecollapse is your in-memory toolkit for generating 2-D tile
// maps by constraint collapse — from hand-authored adjacency rules to
// rulesets learned straight from a source image.
//
// 🚀 What is wavecollapse?
//
//	A small, deterministic library that brings together:
//		• Rule tables: declare which tile labels may sit next to which
//		• Collapse grids: minimum-entropy selection, collapse, propagation
//		• Contradiction detection: unsolvable states fail fast, never silently
//		• Image extraction: learn a tile alphabet + rules from any raster image
//		• Seeded sequences: one SplitMix64 stream per run, replayable by seed
//
// ✨ Why choose wavecollapse?
//
//   - Reproducible – same seed and inputs, same grid, every time
//   - Honest failures – contradiction vs. budget exhaustion, as typed errors
//   - Pure Go – no cgo, no hidden deps
//   - Composable – extractor output drops straight into the solver
//
// Under the hood, everything is organized under four subpackages:
//
//	collapse/ — the solver: possibility-set grid, entropy selection, propagation
//	extract/  — tile alphabet + rule discovery from an image.Image
//	prng/     — the SplitMix64 seeded sequence owned by each run
//	rules/    — the RuleTable mapping labels to allowed orthogonal neighbors
//
// Quick ASCII example:
//
//	    sand  sand  grass
//	    sand  grass grass
//	    water water grass
//
//	a 3×3 result where every horizontal and vertical pair of labels is
//	permitted by the rule table that produced it.
//
// Typical flow: build a rules.RuleTable (or extract one from an image),
// construct a collapse.Grid with dimensions and a seed, Run it, and read
// the finished label grid with Result or Rows. Dive into examples/ for
// full scenarios.
//
//	go get github.com/atmai0829/wavecollapse
package wavecollapse
