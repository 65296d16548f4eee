package extract

import "errors"

// Sentinel errors for extractor construction and options.
var (
	// ErrNilImage indicates a nil source image.
	ErrNilImage = errors.New("extract: source image must not be nil")

	// ErrEmptyImage indicates the source image bounds enclose no pixels.
	ErrEmptyImage = errors.New("extract: source image must have a non-zero area")

	// ErrBadBlockSize indicates WithBlockSize received a value < 1.
	ErrBadBlockSize = errors.New("extract: block size must be at least 1")
)

// ColorTolerance is the per-channel distance (on the normalized [0, 1]
// range) within which two colors count as the same tile: 1% of the
// channel range, enough to absorb compression and resampling artifacts.
const ColorTolerance = 0.01

// colorLevels is the quantization used for bucket keys: each normalized
// channel maps to one of 256 discrete levels before hashing, so colors
// the tolerance deems equal land in the same or a directly comparable
// bucket.
const colorLevels = 256

// LargeAlphabetThreshold is the alphabet size above which LargeAlphabet
// reports a warning condition: a source image minting this many tiles
// usually means the tolerance is too tight for its compression noise.
const LargeAlphabetThreshold = 50

// DefaultBlockSize samples every pixel as its own position.
const DefaultBlockSize = 1

// Color is one representative sample with red, green, blue and alpha
// channels normalized to [0, 1].
type Color struct {
	R, G, B, A float64
}

// Option configures Extractor construction via functional arguments.
// An invalid Option is recorded internally and surfaced as a sentinel
// error when New is invoked.
type Option func(*extractOptions)

type extractOptions struct {
	blockSize int

	// internal error recorded during option parsing
	err error
}

func defaultExtractOptions() extractOptions {
	return extractOptions{blockSize: DefaultBlockSize, err: nil}
}

// WithBlockSize controls how coarsely the image is sampled: 1 samples
// every pixel, larger values sample one representative pixel (the block
// center) per blockSize×blockSize block. n must be ≥ 1.
func WithBlockSize(n int) Option {
	return func(o *extractOptions) {
		if n < 1 {
			o.err = ErrBadBlockSize

			return
		}
		o.blockSize = n
	}
}
