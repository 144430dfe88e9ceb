package dieroll

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned for a generator kind that is not one of Kinds().
	ErrUnknownKind = errors.New("dieroll: unknown generator kind")
	// ErrUnknownShape is returned for a die shape that is not one of Shapes().
	ErrUnknownShape = errors.New("dieroll: unknown die shape")
)

// Kind selects a generator implementation at runtime.
type Kind int

const (
	// MersenneTwisterKind selects MersenneTwister.
	MersenneTwisterKind Kind = iota
	// XorshiftStarKind selects XorshiftStar.
	XorshiftStarKind
)

var kindNames = map[Kind]string{
	MersenneTwisterKind: "mersenne_twister",
	XorshiftStarKind:    "xorshift_star",
}

// Kinds lists all generator kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{MersenneTwisterKind, XorshiftStarKind}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "mersenne_twister" and "xorshift_star" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q (valid: %s)", ErrUnknownKind, s, joinNames(Kinds()))
}

// Shape is one of the standard polyhedral dice. Its value is the number of sides.
type Shape uint64

const (
	ShapeD4       Shape = 4
	ShapeD6       Shape = 6
	ShapeD8       Shape = 8
	ShapeD10      Shape = 10
	ShapeD12      Shape = 12
	ShapeD20      Shape = 20
	ShapeDPercent Shape = 100
)

// Shapes lists all standard shapes, largest die first.
func Shapes() []Shape {
	return []Shape{ShapeD20, ShapeD12, ShapeD10, ShapeD8, ShapeD6, ShapeD4, ShapeDPercent}
}

// Sides returns the number of faces of the shape.
func (s Shape) Sides() uint64 {
	return uint64(s)
}

func (s Shape) valid() bool {
	switch s {
	case ShapeD4, ShapeD6, ShapeD8, ShapeD10, ShapeD12, ShapeD20, ShapeDPercent:
		return true
	}
	return false
}

func (s Shape) String() string {
	if s == ShapeDPercent {
		return "d_percent"
	}
	if s.valid() {
		return fmt.Sprintf("d%d", uint64(s))
	}
	return fmt.Sprintf("Shape(%d)", uint64(s))
}

// ParseShape maps "d4", "d6", "d8", "d10", "d12", "d20" and "d_percent" (case-insensitive) to a Shape.
func ParseShape(s string) (Shape, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, shape := range Shapes() {
		if shape.String() == name {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("%w %q (valid: %s)", ErrUnknownShape, s, joinNames(Shapes()))
}

func joinNames[T fmt.Stringer](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
