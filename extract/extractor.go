package extract

import (
	"fmt"
	"image"
	"math"

	"github.com/atmai0829/wavecollapse/rules"
)

// colorKey is the quantized bucket key for a Color: each channel mapped
// to one of colorLevels discrete levels.
type colorKey [4]uint8

// Extractor learns a tile alphabet and adjacency rules from one image.
// Construct with New, call Analyze once, then read the outputs. Not safe
// for concurrent use.
type Extractor struct {
	img       image.Image
	bounds    image.Rectangle
	blockSize int

	analyzed bool
	tiles    []string         // discovery order
	colorOf  map[string]Color // label → representative color
	byKey    map[colorKey]string
	table    *rules.RuleTable
}

// New constructs an Extractor over img. Returns ErrNilImage for a nil
// image, ErrEmptyImage when the bounds enclose no pixels, and
// ErrBadBlockSize for an invalid WithBlockSize value.
func New(img image.Image, opts ...Option) (*Extractor, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	o := defaultExtractOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Extractor{
		img:       img,
		bounds:    bounds,
		blockSize: o.blockSize,
		colorOf:   make(map[string]Color),
		byKey:     make(map[colorKey]string),
		table:     rules.New(),
	}, nil
}

// Analyze performs the two analysis passes: tile discovery, then rule
// discovery. It is idempotent — repeat calls return immediately with the
// first result. Always returns nil today; the error slot is the contract
// for callers, since malformed inputs are already rejected by New.
func (e *Extractor) Analyze() error {
	if e.analyzed {
		return nil
	}
	w, h := e.bounds.Dx(), e.bounds.Dy()

	// Pass 1 — tile discovery: mint a label per distinct color, in
	// scan order. Every new label is self-seeded into its own allowed
	// set so pure single-color fills stay self-consistent.
	for y := 0; y < h; y += e.blockSize {
		for x := 0; x < w; x += e.blockSize {
			e.labelFor(e.sample(x, y))
		}
	}

	// Pass 2 — rule discovery: record each sampled position's right and
	// below neighbors, both directions at once. The table is a set, so
	// repeated observations are free.
	for y := 0; y < h; y += e.blockSize {
		for x := 0; x < w; x += e.blockSize {
			label := e.labelFor(e.sample(x, y))
			if x+e.blockSize < w {
				e.table.AllowPair(label, e.labelFor(e.sample(x+e.blockSize, y)))
			}
			if y+e.blockSize < h {
				e.table.AllowPair(label, e.labelFor(e.sample(x, y+e.blockSize)))
			}
		}
	}

	e.analyzed = true

	return nil
}

// sample returns the normalized color of the block whose origin is the
// image-local offset (bx, by): the block's center pixel, clamped into
// bounds so oversized blocks at the edges never read out of range.
func (e *Extractor) sample(bx, by int) Color {
	cx := bx + e.blockSize/2
	cy := by + e.blockSize/2
	if cx > e.bounds.Dx()-1 {
		cx = e.bounds.Dx() - 1
	}
	if cy > e.bounds.Dy()-1 {
		cy = e.bounds.Dy() - 1
	}

	r, g, b, a := e.img.At(e.bounds.Min.X+cx, e.bounds.Min.Y+cy).RGBA()

	return Color{
		R: float64(r) / math.MaxUint16,
		G: float64(g) / math.MaxUint16,
		B: float64(b) / math.MaxUint16,
		A: float64(a) / math.MaxUint16,
	}
}

// labelFor resolves c to its tile label, minting a new one on first
// sight. Lookup is by quantized bucket first; a miss falls back to a
// tolerance comparison against known representatives (discovery order),
// and the bucket is then memoized either way so tolerance-equal colors
// always resolve to one label.
func (e *Extractor) labelFor(c Color) string {
	k := quantize(c)
	if label, ok := e.byKey[k]; ok {
		return label
	}
	for _, label := range e.tiles {
		if withinTolerance(e.colorOf[label], c) {
			e.byKey[k] = label

			return label
		}
	}

	label := fmt.Sprintf("tile_%d", len(e.tiles))
	e.tiles = append(e.tiles, label)
	e.colorOf[label] = c
	e.byKey[k] = label
	e.table.Allow(label, label) // self-seed

	return label
}

// quantize maps each channel to one of colorLevels discrete levels.
func quantize(c Color) colorKey {
	q := func(v float64) uint8 {
		return uint8(v * (colorLevels - 1))
	}

	return colorKey{q(c.R), q(c.G), q(c.B), q(c.A)}
}

// withinTolerance reports whether every channel of a and b differs by no
// more than ColorTolerance.
func withinTolerance(a, b Color) bool {
	return math.Abs(a.R-b.R) <= ColorTolerance &&
		math.Abs(a.G-b.G) <= ColorTolerance &&
		math.Abs(a.B-b.B) <= ColorTolerance &&
		math.Abs(a.A-b.A) <= ColorTolerance
}

// Tiles returns the discovered alphabet in discovery order. Order is not
// semantically significant to the solver; it is stable run to run.
func (e *Extractor) Tiles() []string {
	out := make([]string, len(e.tiles))
	copy(out, e.tiles)

	return out
}

// Rules returns an independent copy of the discovered rule table — a
// drop-in substitute for a hand-authored table fed to collapse.New.
func (e *Extractor) Rules() *rules.RuleTable {
	return e.table.Clone()
}

// ColorMap returns label → representative color, for renderers that need
// to paint the generated grid.
func (e *Extractor) ColorMap() map[string]Color {
	out := make(map[string]Color, len(e.colorOf))
	for label, c := range e.colorOf {
		out[label] = c
	}

	return out
}

// TileCount returns the alphabet size.
func (e *Extractor) TileCount() int {
	return len(e.tiles)
}

// LargeAlphabet reports whether the alphabet exceeds
// LargeAlphabetThreshold — a warning condition, not an error.
func (e *Extractor) LargeAlphabet() bool {
	return len(e.tiles) > LargeAlphabetThreshold
}
