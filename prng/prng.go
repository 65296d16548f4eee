package prng

// Sequence is a SplitMix64 pseudo-random stream. One Sequence belongs to
// exactly one solver run; it is not safe for concurrent use and is never
// persisted between runs.
type Sequence struct {
	seed  uint64
	state uint64
}

// New returns a Sequence starting from seed. Any seed value is valid,
// including zero.
func New(seed uint64) *Sequence {
	return &Sequence{seed: seed, state: seed}
}

// Seed returns the seed the Sequence was created with, unchanged by draws.
func (s *Sequence) Seed() uint64 {
	return s.seed
}

// Uint64 advances the state by one step and returns the mixed output.
func (s *Sequence) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// Float64 returns a uniform value in [0, 1), consuming one step.
// The top 53 bits of the draw form the mantissa.
func (s *Sequence) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Intn returns a uniform index in [0, n), consuming one step.
// n must be positive; Intn panics otherwise, mirroring math/rand.
// Modulo reduction is used: the bias for the small n this library draws
// (tie-candidate and option-set sizes) is far below 2^-50.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("prng: Intn called with non-positive n")
	}

	return int(s.Uint64() % uint64(n))
}
