// Package extract derives a tile alphabet and an adjacency rule table
// from a raster image, so the wavecollapse solver can generate grids that
// statistically resemble the source's local adjacency patterns.
//
// What:
//
//   - Extractor samples an image.Image at a configurable block size
//     (1 = every pixel; larger blocks sample their center pixel).
//   - Analyze makes two passes over the sampled positions: first minting
//     a label per distinct color (tile_0, tile_1, … in discovery order),
//     then recording every observed right/below neighbor pair into a
//     rules.RuleTable, symmetrically and deduplicated.
//   - Tiles, Rules and ColorMap expose the results; Rules output is a
//     drop-in substitute for a hand-authored table fed to collapse.New.
//
// Why:
//
//   - Authoring rulesets by hand is tedious; a small reference image
//     encodes both the palette and the legal seams in one artifact.
//   - Compression and resampling smear colors: tolerant color equality
//     (every channel within 1% of the range) keeps one visual color from
//     minting a spray of near-duplicate tiles.
//
// Color model:
//
//   - Channels are normalized to [0, 1] from the image's native range.
//   - Equality-with-tolerance is paired with quantized bucketing (256
//     levels per channel) for the lookup key; a bucket miss falls back to
//     a tolerance comparison against known representatives, so colors
//     deemed equal always resolve to the same label.
//
// Complexity:
//
//   - Analyze: O((W/b)·(H/b)·k) time, k = alphabet size (tolerance
//     fallback scans are rare after the buckets warm up).
//   - Memory: O(k) plus the bucket table.
//
// Errors:
//
//   - ErrNilImage: nil image supplied.
//   - ErrEmptyImage: image bounds enclose no pixels.
//   - ErrBadBlockSize: WithBlockSize given a value < 1.
//
// Out-of-range sample coordinates never fail mid-analysis: block centers
// are clamped to the nearest valid pixel. A very large alphabet (more
// than LargeAlphabetThreshold tiles) is a caller-visible warning
// condition, reported by LargeAlphabet, not an error.
package extract
