// Package dieroll provides two deterministic pseudo-random number generators,
// a 64-bit Mersenne Twister and an xorshift* generator, and a die that maps
// their output onto the faces 1..sides.
//
// None of the generators is cryptographically secure and none is thread-safe.
// Give every goroutine its own generator (or die) instead of sharing one.
package dieroll

import "errors"

// ErrEmptyRange is the panic value of Bounded when max is not greater than min.
// Rolling a die with zero sides ends up here.
var ErrEmptyRange = errors.New("dieroll: empty range, max must be greater than min")

// Source is the capability every generator in this package implements.
// Uint64 returns the next value of the deterministic sequence and advances the
// generator; two calls never return "the same draw". The method set matches
// math/rand/v2.Source, so a generator can also back a *rand.Rand.
type Source interface {
	Uint64() uint64
}

// Engine is the constraint used by the generic constructors. It is satisfied by
// *MersenneTwister and *XorshiftStar, which lets NewDie allocate and seed a
// generator of the requested type without any interface indirection on Roll.
type Engine[T any] interface {
	*T
	Source
	Seed(seed uint64)
}

// newEngine allocates a T and seeds it from the configured seed source.
func newEngine[T any, PT Engine[T]](o options) PT {
	gen := PT(new(T))
	gen.Seed(o.seed())
	return gen
}

// Bounded returns min + (src.Uint64() mod (max-min)), a value in the half-open
// interval [min, max). Exactly one value is drawn from src.
//
// The reduction is a plain modulo and therefore slightly biased towards small
// results whenever max-min does not divide 2^64. This is intentional: the
// sequence of results for a given seed must stay stable.
//
// Bounded panics with ErrEmptyRange if max <= min.
func Bounded(src Source, min, max uint64) uint64 {
	if max <= min {
		panic(ErrEmptyRange)
	}
	return min + src.Uint64()%(max-min)
}

// BoundedFromZero is Bounded(src, 0, max).
func BoundedFromZero(src Source, max uint64) uint64 {
	return Bounded(src, 0, max)
}
