package collapse

import "errors"

// Sentinel errors for grid construction and solving.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("collapse: width and height must be positive")

	// ErrEmptyAlphabet indicates an empty tile alphabet.
	ErrEmptyAlphabet = errors.New("collapse: tile alphabet must be non-empty")

	// ErrDuplicateLabel indicates the tile alphabet repeats a label.
	ErrDuplicateLabel = errors.New("collapse: tile alphabet contains a duplicate label")

	// ErrNilRules indicates a nil rule table was supplied.
	ErrNilRules = errors.New("collapse: rule table must not be nil")

	// ErrBadMaxIterations indicates WithMaxIterations received a value ≤ 0.
	ErrBadMaxIterations = errors.New("collapse: max iterations must be positive")

	// ErrContradiction indicates a cell's possibility set became empty:
	// the run is unsolvable along the path taken and is not repaired.
	ErrContradiction = errors.New("collapse: contradiction - no valid options left for a cell")

	// ErrBudgetExhausted indicates the iteration budget ran out before the
	// grid completed. Distinct from ErrContradiction: the grid might still
	// be satisfiable, the engine just gave up.
	ErrBudgetExhausted = errors.New("collapse: iteration budget exhausted before completion")
)

// DefaultMaxIterations is the iteration budget used when WithMaxIterations
// is not supplied.
const DefaultMaxIterations = 10000

// Entropy scoring constants. The jitter amplitude (0.1) deliberately
// exceeds the tie tolerance (0.01): cells with different raw option
// counts can never tie, while cells with the same count tie only when
// their jitter draws land close — the seed-dependent tie behavior the
// scoring is built around. Keep the two constants and their relative
// order of use as is.
const (
	entropyJitter    = 0.1
	entropyTolerance = 0.01
)

// Option configures Grid construction via functional arguments.
// An invalid Option is recorded internally and surfaced as a sentinel
// error when New is invoked.
type Option func(*gridOptions)

// gridOptions holds parameters collected from Options before validation.
type gridOptions struct {
	seed          uint64
	seedSet       bool
	maxIterations int

	// internal error recorded during option parsing
	err error
}

// defaultGridOptions returns the options used when none are supplied:
// an entropy-derived seed and DefaultMaxIterations.
func defaultGridOptions() gridOptions {
	return gridOptions{
		seedSet:       false,
		maxIterations: DefaultMaxIterations,
		err:           nil,
	}
}

// WithSeed fixes the sequence seed, making the run fully reproducible.
// When omitted, a seed is drawn from OS entropy and remains retrievable
// via Grid.Seed for reproducibility reporting.
func WithSeed(seed uint64) Option {
	return func(o *gridOptions) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithMaxIterations caps the number of collapse iterations a run may
// perform before failing with ErrBudgetExhausted. n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *gridOptions) {
		if n <= 0 {
			o.err = ErrBadMaxIterations

			return
		}
		o.maxIterations = n
	}
}
