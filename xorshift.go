package dieroll

// XorshiftStar is a pseudo-random number generator based on the xorshift* algorithm
// (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// This random number generator is deterministic in the sequence of numbers it generates. It has a period of 2^64-1,
// i.e. every single nonzero state occurs once every 2^64-1 calls and has the same successor and the same predecessor.
// This random number generator is deterministic in its runtime (i.e. it has a constant runtime).
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
// This random number generator has a very small memory footprint (16 bytes).
//
// The seed is used as the state verbatim. A zero state is a fixed point of the
// shift/xor steps and makes the generator return 0 forever; the wall-clock seed
// is never zero in practice, so this is not guarded against.
type XorshiftStar struct {
	State uint64
	Round uint64 // for debugging purposes
}

// NewXorshiftStar returns a generator seeded from the wall clock (see TimeSeed),
// or from the seed source given with WithSeed / WithSeedFunc.
func NewXorshiftStar(opts ...Option) *XorshiftStar {
	return newEngine[XorshiftStar](buildOptions(opts))
}

// Seed sets the state to seed and resets the round counter.
func (x *XorshiftStar) Seed(seed uint64) {
	x.State = seed
	x.Round = 0
}

// Uint64 returns the next pseudo-random number in the sequence.
// Only the shift/xor steps update the state; the final multiplication is applied to the returned value.
// It has a deterministic (i.e. constant) runtime and a high probability to be inlined by the compiler.
func (x *XorshiftStar) Uint64() uint64 {
	s := x.State
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.State = s
	x.Round++
	return s * 0x2545F4914F6CDD1D
}
