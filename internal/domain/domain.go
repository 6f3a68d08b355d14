// Package domain defines the uniform operator surface every concrete
// abstract domain implements: lattice operations common to every domain,
// plus the integer- and float-specific operator groups.
//
// Operators are pure: every binary operator takes two read-only operands
// and returns a freshly built result. A receiver-aliasing idiom ("this <-
// f(a, b)", with this possibly aliasing a or b) is deliberately not used
// here; aliasing bugs in that style are exactly what this shape avoids by
// construction.
package domain

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/predicate"
)

// Value is the lattice-level contract shared by every domain: Interval,
// Set, Bitfield, FloatInterval, and Product all implement it.
type Value interface {
	IsBottom() bool
	IsTop() bool
	Clone() Value
	// CloneCleaned returns a fresh bottom value of the same concrete
	// type and shape as the receiver, without copying any operand
	// state -- the one allocator the design explicitly keeps lightweight.
	CloneCleaned() Value
	Equal(other Value) bool
	// LessOrEqual reports whether the receiver is <= other in the
	// domain's lattice order.
	LessOrEqual(other Value) bool
	Join(other Value) Value
	Meet(other Value) Value
	// MemoryUsage estimates the receiver's heap footprint in bytes.
	MemoryUsage() uintptr
	// Accuracy is a precision metric in [0.0, 1.0]; 1.0 means exact
	// (single concrete value or unreachable), 0.0 means top.
	Accuracy() float64
	String() string
	// MatchesString is the inverse of String(): it reports whether text
	// is the canonical rendering of the receiver, plus a rationale
	// string describing any mismatch it found.
	MatchesString(text string) (bool, string)
}

// IntRange is the common bounding-box currency every integer domain can
// produce regardless of its concrete representation: the product
// reduction's MinMax field, and the envelope uitofp/sitofp need to build
// a FloatInterval from an arbitrary IntValue. Bottom/Top override Lo/Hi.
type IntRange struct {
	Width    int
	Bottom   bool
	Top      bool
	SignedLo *big.Int
	SignedHi *big.Int
	UnsignedLo *big.Int
	UnsignedHi *big.Int
}

// IntValue is the operator surface for the three integer domains
// (Interval, Set, Bitfield).
type IntValue interface {
	Value
	Width() int

	Add(b IntValue) IntValue
	Sub(b IntValue) IntValue
	Mul(b IntValue) IntValue
	UDiv(b IntValue) IntValue
	SDiv(b IntValue) IntValue
	URem(b IntValue) IntValue
	SRem(b IntValue) IntValue

	Shl(b IntValue) IntValue
	Lshr(b IntValue) IntValue
	Ashr(b IntValue) IntValue
	And(b IntValue) IntValue
	Or(b IntValue) IntValue
	Xor(b IntValue) IntValue

	// ICmp returns a width-1 IntValue of the same concrete domain type
	// as the receiver: bottom means unreachable, {0} means always false,
	// {1} means always true, top means either.
	ICmp(pred predicate.Int, b IntValue) IntValue

	Trunc(toWidth int) IntValue
	Zext(toWidth int) IntValue
	Sext(toWidth int) IntValue

	// Range produces the common bounding-box currency used by product
	// reduction and by float<->int conversions.
	Range() IntRange
}

// FloatValue is the operator surface for the float domain.
type FloatValue interface {
	Value
	FAdd(b FloatValue) FloatValue
	FSub(b FloatValue) FloatValue
	FMul(b FloatValue) FloatValue
	FDiv(b FloatValue) FloatValue
	FRem(b FloatValue) FloatValue
	// FCmp returns -1 (bottom/empty), 0 (definite false), 1 (definite
	// true), or 2 (top).
	FCmp(pred predicate.Float, b FloatValue) int
	FPTrunc(toSem int) FloatValue
	FPExt(toSem int) FloatValue

	// Bounds exposes a conservative [lo, hi] envelope (as float64, which
	// safely over-approximates any of the six IEEE semantics for the
	// purpose of building an integer bounding box) for fptoui/fptosi, the
	// one place an integer domain needs to read a float domain's state
	// without importing its concrete type.
	Bounds() (lo, hi float64, mayBeNaN, bottom, top bool)
}
