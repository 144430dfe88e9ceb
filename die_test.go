package dieroll

import (
	"fmt"
	"testing"

	set3 "github.com/TomTonic/Set3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollsStayWithinFaces(t *testing.T) {
	for _, kind := range Kinds() {
		for _, shape := range Shapes() {
			t.Run(fmt.Sprintf("%s/%s", kind, shape), func(t *testing.T) {
				die, err := NewRoller(kind, shape)
				require.NoError(t, err)
				require.Equal(t, shape.Sides(), die.Sides())
				for range 10_000 {
					v := die.Roll()
					if v < 1 || v > shape.Sides() {
						t.Fatalf("roll %d outside [1, %d]", v, shape.Sides())
					}
				}
			})
		}
	}
}

func TestRollsCoverAllFaces(t *testing.T) {
	for _, kind := range Kinds() {
		for _, shape := range Shapes() {
			t.Run(fmt.Sprintf("%s/%s", kind, shape), func(t *testing.T) {
				die, err := NewRoller(kind, shape, WithSeed(0xDEADBEEFCAFEBABE))
				require.NoError(t, err)
				seen := set3.EmptyWithCapacity[uint64](uint32(shape.Sides()))
				for _, v := range die.RollN(100 * shape.Sides()) {
					seen.Add(v)
				}
				assert.Equal(t, uint32(shape.Sides()), seen.Size())
			})
		}
	}
}

func TestXorshiftStarD6ReferenceRolls(t *testing.T) {
	die := D6[XorshiftStar](WithSeed(12345))
	assert.Equal(t, []uint64{1, 3, 1, 4, 4}, die.RollN(5))

	d20 := D20[XorshiftStar](WithSeed(12345))
	assert.Equal(t, []uint64{5, 13, 5, 2, 16}, d20.RollN(5))
}

func TestMersenneTwisterD6ReferenceRolls(t *testing.T) {
	die := D6[MersenneTwister](WithSeed(12345))
	assert.Equal(t, []uint64{5, 6, 4, 3, 4}, die.RollN(5))
}

func TestRollerMatchesGenericDie(t *testing.T) {
	roller, err := NewRoller(XorshiftStarKind, ShapeD6, WithSeed(12345))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 1, 4, 4}, roller.RollN(5))
}

func TestFixedShapeFactories(t *testing.T) {
	cases := []struct {
		name  string
		die   Roller
		sides uint64
	}{
		{"d4", D4[MersenneTwister](), 4},
		{"d6", D6[MersenneTwister](), 6},
		{"d8", D8[XorshiftStar](), 8},
		{"d10", D10[XorshiftStar](), 10},
		{"d12", D12[MersenneTwister](), 12},
		{"d20", D20[XorshiftStar](), 20},
		{"d_percent", DPercent[MersenneTwister](), 100},
	}
	for _, c := range cases {
		assert.Equal(t, c.sides, c.die.Sides(), c.name)
	}
}

func TestSingleSidedDieAlwaysRollsOne(t *testing.T) {
	mt, err := NewDie[MersenneTwister](1)
	require.NoError(t, err)
	xs, err := NewDie[XorshiftStar](1)
	require.NoError(t, err)
	for range 1_000 {
		require.Equal(t, uint64(1), mt.Roll())
		require.Equal(t, uint64(1), xs.Roll())
	}
}

func TestZeroSidedDie(t *testing.T) {
	d, err := NewDie[XorshiftStar](0)
	assert.ErrorIs(t, err, ErrNoSides)
	assert.Nil(t, d)

	// a die that somehow carries zero sides fails loudly instead of returning 0
	broken := &Die[*XorshiftStar]{sides: 0, gen: NewXorshiftStar(WithSeed(1))}
	assert.PanicsWithValue(t, ErrEmptyRange, func() { broken.Roll() })
}

func TestDiceOwnTheirGenerators(t *testing.T) {
	a := D20[XorshiftStar](WithSeed(99))
	b := D20[XorshiftStar](WithSeed(99))
	require.NotSame(t, a.Generator(), b.Generator())
	a.RollN(10)
	assert.Equal(t, uint64(10), a.Generator().Round)
	assert.Equal(t, uint64(0), b.Generator().Round)
	assert.Equal(t, a.RollN(5), b.RollN(15)[10:])
}

func TestNewRollerRejectsUnknownSelections(t *testing.T) {
	_, err := NewRoller(Kind(42), ShapeD6)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = NewRoller(MersenneTwisterKind, Shape(7))
	assert.ErrorIs(t, err, ErrUnknownShape)

	_, err = NewRoller(XorshiftStarKind, Shape(0))
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestWithSeedFunc(t *testing.T) {
	calls := 0
	seed := func() uint64 {
		calls++
		return 12345
	}
	die, err := NewDie[XorshiftStar](6, WithSeedFunc(seed))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []uint64{1, 3, 1, 4, 4}, die.RollN(5))

	// nil falls back to the wall clock
	die, err = NewDie[XorshiftStar](6, WithSeedFunc(nil))
	require.NoError(t, err)
	assert.NotZero(t, die.Generator().State)
}

func TestLargestDieRolls(t *testing.T) {
	sides := ^uint64(0)
	die, err := NewDie[XorshiftStar](sides, WithSeed(1))
	require.NoError(t, err)

	ref := NewXorshiftStar(WithSeed(1))
	for range 10_000 {
		v := die.Roll()
		require.True(t, v >= 1 && v <= sides, "roll %d outside [1, %d]", v, sides)
		assert.Equal(t, 1+ref.Uint64()%sides, v)
	}

	mt, err := NewDie[MersenneTwister](sides, WithSeed(1))
	require.NoError(t, err)
	assert.NotPanics(t, func() { mt.RollN(1_000) })
}
