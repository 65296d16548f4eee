package collapse

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/atmai0829/wavecollapse/prng"
	"github.com/atmai0829/wavecollapse/rules"
)

// cell is one grid position: the tile indices still possible there, and
// whether the position has been collapsed to a single tile.
// Invariant: options is non-empty while the cell is unresolved and the
// grid is consistent; a collapsed cell holds exactly one option.
type cell struct {
	options   []int
	collapsed bool
}

// Grid is the mutable solver state for one generation run. It is created
// by New, mutated in place by Run/Step, and read out once finished; it is
// never reused for a second generation and is not safe for concurrent use.
type Grid struct {
	width, height int

	// labels holds the alphabet in caller order; allowed is the compiled
	// rule matrix, allowed[a*n+b] meaning label b may neighbor label a.
	labels  []string
	allowed []bool

	cells []cell
	seq   *prng.Sequence

	maxIterations int
	iterations    int

	done     bool
	complete bool
	runErr   error

	// scratch storage reused across iterations
	scores     []float64
	scoredIdx  []int
	candidates []int
	work       []int
}

// orthOffsets lists the four orthogonal neighbor offsets in fixed
// N, E, S, W order. Propagation visits neighbors in this order.
var orthOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// New constructs a Grid with every cell initialized to the full alphabet,
// uncollapsed. Inputs are deep-copied; the rule table is compiled into a
// dense boolean matrix over interned label indices and never consulted
// again after construction.
//
// Returns ErrInvalidDimensions if width or height is non-positive,
// ErrEmptyAlphabet if tiles is empty, ErrDuplicateLabel if tiles repeats
// a label, ErrNilRules if table is nil, and ErrBadMaxIterations for an
// invalid WithMaxIterations value.
//
// Complexity: O(W·H·n + n²) time and memory, n = len(tiles).
func New(width, height int, tiles []string, table *rules.RuleTable, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(tiles) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if table == nil {
		return nil, ErrNilRules
	}

	o := defaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.seedSet {
		o.seed = entropySeed()
	}

	n := len(tiles)
	labels := make([]string, n)
	copy(labels, tiles)
	seen := make(map[string]struct{}, n)
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return nil, ErrDuplicateLabel
		}
		seen[l] = struct{}{}
	}

	// Compile the rule table over dense indices. A label with no table
	// entry allows no neighbors, which Allowed already reports.
	allowed := make([]bool, n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			allowed[a*n+b] = table.Allowed(labels[a], labels[b])
		}
	}

	cells := make([]cell, width*height)
	for i := range cells {
		options := make([]int, n)
		for t := 0; t < n; t++ {
			options[t] = t
		}
		cells[i] = cell{options: options, collapsed: false}
	}

	g := &Grid{
		width:         width,
		height:        height,
		labels:        labels,
		allowed:       allowed,
		cells:         cells,
		seq:           prng.New(o.seed),
		maxIterations: o.maxIterations,
	}

	return g, nil
}

// entropySeed draws a seed from the OS entropy source, falling back to
// wall-clock nanoseconds if the source is unavailable.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint64(buf[:])
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Seed returns the realized sequence seed, whether supplied via WithSeed
// or drawn at construction. Re-running New with this seed and the same
// inputs reproduces the run exactly.
func (g *Grid) Seed() uint64 { return g.seq.Seed() }

// Iterations returns the number of collapse iterations performed so far.
func (g *Grid) Iterations() int { return g.iterations }

// Complete reports whether the run finished with every cell collapsed.
func (g *Grid) Complete() bool { return g.complete }

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x, y) to a row-major index: y*width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// coordinate converts a row-major index back to (x, y).
func (g *Grid) coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// At returns the resolved label at (x, y). ok is false when the
// coordinate is out of bounds or the cell has not collapsed to a single
// label.
func (g *Grid) At(x, y int) (label string, ok bool) {
	if !g.InBounds(x, y) {
		return "", false
	}
	c := &g.cells[g.index(x, y)]
	if !c.collapsed || len(c.options) != 1 {
		return "", false
	}

	return g.labels[c.options[0]], true
}

// OptionsAt returns a copy of the labels still possible at (x, y), in
// alphabet order, or nil when out of bounds. Useful for inspecting
// propagation between Step calls.
func (g *Grid) OptionsAt(x, y int) []string {
	if !g.InBounds(x, y) {
		return nil
	}
	c := &g.cells[g.index(x, y)]
	out := make([]string, len(c.options))
	for i, t := range c.options {
		out[i] = g.labels[t]
	}

	return out
}

// Result returns the finished grid as a row-major slice of width×height
// labels. Meaningful after a successful run; any cell that never resolved
// reports "" as a defensive fallback rather than panicking.
func (g *Grid) Result() []string {
	out := make([]string, len(g.cells))
	for i := range g.cells {
		c := &g.cells[i]
		if c.collapsed && len(c.options) == 1 {
			out[i] = g.labels[c.options[0]]
		}
	}

	return out
}

// Rows returns the finished grid as height rows of width labels, with the
// same "" fallback as Result.
func (g *Grid) Rows() [][]string {
	flat := g.Result()
	out := make([][]string, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = flat[y*g.width : (y+1)*g.width]
	}

	return out
}
