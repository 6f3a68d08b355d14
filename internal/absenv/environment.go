// Package absenv holds the process-wide context every abstract value is
// constructed against: the target's pointer width and address space, the
// IR type lookup used by the constructors entry point, and the immutable
// Config carrying the set-size and widening thresholds, threaded through
// constructors rather than kept as mutable globals.
package absenv

import (
	"fmt"

	"github.com/llir/llvm/ir/types"
)

// FloatSemantics tags a float abstract value the way bit width tags an
// integer one. The six variants mirror LLVM's float type kinds.
type FloatSemantics uint8

const (
	Half FloatSemantics = iota
	Single
	Double
	Quad
	X87_80
	PPCDoubleDouble
)

func (s FloatSemantics) String() string {
	switch s {
	case Half:
		return "half"
	case Single:
		return "single"
	case Double:
		return "double"
	case Quad:
		return "quad"
	case X87_80:
		return "x87-80"
	case PPCDoubleDouble:
		return "ppc-double-double"
	default:
		return "unknown-float-semantics"
	}
}

// MantissaBits returns the number of explicit (non-sign, non-exponent)
// significand bits used to size the backing big.Float precision for this
// semantics. PPCDoubleDouble and X87_80 are approximated: neither is a
// plain binary floating-point format, so they are modelled at the
// precision of the nearest-sized IEEE format they extend (double and
// extended respectively), which is sufficient for an abstract interval
// that only needs monotone rounding, not bit-exact hardware results.
func (s FloatSemantics) MantissaBits() uint {
	switch s {
	case Half:
		return 11
	case Single:
		return 24
	case Double:
		return 53
	case X87_80:
		return 64
	case Quad, PPCDoubleDouble:
		return 113
	default:
		return 53
	}
}

// MaxExponent returns the largest binary exponent (exclusive) a finite
// value of this semantics may have; values whose magnitude would need a
// larger exponent round to +/-Inf instead.
func (s FloatSemantics) MaxExponent() int {
	switch s {
	case Half:
		return 16
	case Single:
		return 128
	case Double:
		return 1024
	case X87_80:
		return 16384
	case Quad, PPCDoubleDouble:
		return 16384
	default:
		return 1024
	}
}

// Config is the immutable, process-wide tuning knobs for the domains.
// Threaded through constructors rather than held as mutable package
// globals.
type Config struct {
	// SetThreshold bounds the Integer Set domain's cardinality before it
	// collapses to top. Default: 40.
	SetThreshold int
	// WideningThreshold is the per-widening-point join count after which
	// the widening manager replaces join with widening. Default: 3.
	WideningThreshold int
	// Strict controls what the driver does with a Gap diagnostic (the
	// "not implemented" category): when true, Abort; when false,
	// continue treating the result as top.
	Strict bool
}

// DefaultConfig returns the core's default tuning knobs.
func DefaultConfig() Config {
	return Config{SetThreshold: 40, WideningThreshold: 3, Strict: false}
}

// Environment is the process-wide context referenced (never owned) by
// every abstract value. Created once by the driver.
type Environment struct {
	Config

	// PointerWidth is the target's pointer bit width, used when
	// constructing abstract values for pointer-typed IR values (memory
	// modeling itself is out of scope; only the width is needed here).
	PointerWidth int

	// AddressSpace is the target's default address space number.
	AddressSpace int
}

// New builds an Environment. ptrWidth and addrSpace come from the target
// description the interpreter (an external collaborator) owns.
func New(cfg Config, ptrWidth, addrSpace int) *Environment {
	return &Environment{Config: cfg, PointerWidth: ptrWidth, AddressSpace: addrSpace}
}

// IntWidth reports the bit width the constructors entry point should use
// for an LLVM integer type, or ok=false if t is not an integer type.
func IntWidth(t types.Type) (width int, ok bool) {
	it, isInt := t.(*types.IntType)
	if !isInt {
		return 0, false
	}
	return int(it.BitSize), true
}

// FloatSemanticsOf maps an LLVM float type to the core's FloatSemantics
// tag, or ok=false if t is not a float type.
func FloatSemanticsOf(t types.Type) (sem FloatSemantics, ok bool) {
	ft, isFloat := t.(*types.FloatType)
	if !isFloat {
		return 0, false
	}
	switch ft.Kind {
	case types.FloatKindHalf:
		return Half, true
	case types.FloatKindFloat:
		return Single, true
	case types.FloatKindDouble:
		return Double, true
	case types.FloatKindFP128:
		return Quad, true
	case types.FloatKindX86_FP80:
		return X87_80, true
	case types.FloatKindPPC_FP128:
		return PPCDoubleDouble, true
	default:
		return 0, false
	}
}

// TypeKind classifies an LLVM type for the constructors entry point: it
// is either an integer of some width, a float of some semantics, a
// pointer (represented as an integer of PointerWidth), or unsupported.
type TypeKind uint8

const (
	KindUnsupported TypeKind = iota
	KindInt
	KindFloat
	KindPointer
)

// Classify resolves t against env's pointer width and reports which kind
// of abstract value the constructors entry point should build, plus the
// width (for KindInt/KindPointer) or semantics (for KindFloat).
func (env *Environment) Classify(t types.Type) (kind TypeKind, width int, sem FloatSemantics) {
	if w, ok := IntWidth(t); ok {
		return KindInt, w, 0
	}
	if s, ok := FloatSemanticsOf(t); ok {
		return KindFloat, 0, s
	}
	if _, isPtr := t.(*types.PointerType); isPtr {
		return KindPointer, env.PointerWidth, 0
	}
	return KindUnsupported, 0, 0
}

// UnsupportedTypeError formats a precondition-style message for a type
// Classify could not resolve; the caller decides whether to abort.
func UnsupportedTypeError(t types.Type) string {
	return fmt.Sprintf("unsupported IR type for abstract value construction: %s", t.String())
}
