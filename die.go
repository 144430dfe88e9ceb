package dieroll

import (
	"errors"
	"fmt"
)

// ErrNoSides is returned by NewDie for a die without faces.
var ErrNoSides = errors.New("dieroll: a die must have at least one side")

// Die rolls values in [1, sides] using a generator it owns exclusively.
// The generator type is a type parameter, so Roll is statically dispatched.
// A Die is not safe for concurrent use.
type Die[S Source] struct {
	sides uint64
	gen   S
}

// NewDie returns a die with the given number of sides and a freshly seeded
// generator of type T, e.g.
//
//	d, err := dieroll.NewDie[dieroll.XorshiftStar](30)
//
// NewDie returns ErrNoSides if sides is zero.
func NewDie[T any, PT Engine[T]](sides uint64, opts ...Option) (*Die[PT], error) {
	if sides == 0 {
		return nil, ErrNoSides
	}
	return &Die[PT]{sides: sides, gen: newEngine[T, PT](buildOptions(opts))}, nil
}

func newDie[T any, PT Engine[T]](sides uint64, opts []Option) *Die[PT] {
	return &Die[PT]{sides: sides, gen: newEngine[T, PT](buildOptions(opts))}
}

// D4 returns a four-sided die.
func D4[T any, PT Engine[T]](opts ...Option) *Die[PT] { return newDie[T, PT](4, opts) }

// D6 returns a six-sided die.
func D6[T any, PT Engine[T]](opts ...Option) *Die[PT] { return newDie[T, PT](6, opts) }

// D8 returns an eight-sided die.
func D8[T any, PT Engine[T]](opts ...Option) *Die[PT] { return newDie[T, PT](8, opts) }

// D10 returns a ten-sided die.
func D10[T any, PT Engine[T]](opts ...Option) *Die[PT] { return newDie[T, PT](10, opts) }

// D12 returns a twelve-sided die.
func D12[T any, PT Engine[T]](opts ...Option) *Die[PT] { return newDie[T, PT](12, opts) }

// D20 returns a twenty-sided die.
func D20[T any, PT Engine[T]](opts ...Option) *Die[PT] { return newDie[T, PT](20, opts) }

// DPercent returns a percentile die with faces 1 to 100.
func DPercent[T any, PT Engine[T]](opts ...Option) *Die[PT] { return newDie[T, PT](100, opts) }

// Sides returns the number of faces.
func (d *Die[S]) Sides() uint64 {
	return d.sides
}

// Roll returns a value in [1, Sides()]. It draws exactly one value from the generator.
// The result equals Bounded(gen, 1, Sides()+1) without overflowing for the largest dice.
func (d *Die[S]) Roll() uint64 {
	return 1 + Bounded(d.gen, 0, d.sides)
}

// RollN rolls the die n times and returns the results in order.
// It allocates all n results up front; loop over Roll for large n.
func (d *Die[S]) RollN(n uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = d.Roll()
	}
	return out
}

// Generator returns the generator owned by the die.
func (d *Die[S]) Generator() S {
	return d.gen
}

// Roller is a die whose generator type has been erased. It is what NewRoller
// returns for a generator kind chosen at runtime.
type Roller interface {
	Sides() uint64
	Roll() uint64
	RollN(n uint64) []uint64
}

var (
	_ Roller = (*Die[*MersenneTwister])(nil)
	_ Roller = (*Die[*XorshiftStar])(nil)
	_ Source = (*MersenneTwister)(nil)
	_ Source = (*XorshiftStar)(nil)
)

// NewRoller returns a die of the given shape driven by a generator of the given kind.
// The kind is fixed for the lifetime of the returned Roller.
func NewRoller(kind Kind, shape Shape, opts ...Option) (Roller, error) {
	if !shape.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, uint64(shape))
	}
	switch kind {
	case MersenneTwisterKind:
		return newDie[MersenneTwister](shape.Sides(), opts), nil
	case XorshiftStarKind:
		return newDie[XorshiftStar](shape.Sides(), opts), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
