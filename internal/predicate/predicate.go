// Package predicate defines the comparison-predicate enumerations the
// core consumes from callers dispatching comparisons: ten integer
// predicates and sixteen IEEE float predicates. The concrete constant
// values are arbitrary -- only identity and the group membership below
// matter.
package predicate

// Int is one of the eight standard signed/unsigned ordered predicates or
// equality/inequality (ten in all), isomorphic to LLVM's llvm.CmpInst::Predicate
// integer subset.
type Int uint8

const (
	EQ Int = iota
	NE
	UGT
	UGE
	ULT
	ULE
	SGT
	SGE
	SLT
	SLE
)

func (p Int) String() string {
	switch p {
	case EQ:
		return "eq"
	case NE:
		return "ne"
	case UGT:
		return "ugt"
	case UGE:
		return "uge"
	case ULT:
		return "ult"
	case ULE:
		return "ule"
	case SGT:
		return "sgt"
	case SGE:
		return "sge"
	case SLT:
		return "slt"
	case SLE:
		return "sle"
	default:
		return "unknown"
	}
}

// Signed reports whether p must be evaluated against the signed range.
// EQ/NE are evaluated against both sides by the caller; Signed reports
// false for them since neither side alone determines the answer.
func (p Int) Signed() bool {
	switch p {
	case SGT, SGE, SLT, SLE:
		return true
	default:
		return false
	}
}

// Unsigned reports whether p must be evaluated against the unsigned range.
func (p Int) Unsigned() bool {
	switch p {
	case UGT, UGE, ULT, ULE:
		return true
	default:
		return false
	}
}

// Swap returns the predicate obtained by swapping the two operands, e.g.
// SLT becomes SGT. Used by operators that want a canonical operand order.
func (p Int) Swap() Int {
	switch p {
	case UGT:
		return ULT
	case UGE:
		return ULE
	case ULT:
		return UGT
	case ULE:
		return UGE
	case SGT:
		return SLT
	case SGE:
		return SLE
	case SLT:
		return SGT
	case SLE:
		return SGE
	default:
		return p // EQ, NE are symmetric
	}
}

// Float is one of the sixteen IEEE ordered/unordered floating point
// predicates, isomorphic to llvm.CmpInst::Predicate's FCMP_* subset.
type Float uint8

const (
	FCMP_FALSE Float = iota // always false
	FCMP_OEQ                // ordered and equal
	FCMP_OGT                // ordered and greater than
	FCMP_OGE                // ordered and greater than or equal
	FCMP_OLT                // ordered and less than
	FCMP_OLE                // ordered and less than or equal
	FCMP_ONE                // ordered and not equal
	FCMP_ORD                // ordered (no NaNs)
	FCMP_UEQ                // unordered or equal
	FCMP_UGT                // unordered or greater than
	FCMP_UGE                // unordered or greater than or equal
	FCMP_ULT                // unordered or less than
	FCMP_ULE                // unordered or less than or equal
	FCMP_UNE                // unordered or not equal
	FCMP_UNO                // unordered (either is NaN)
	FCMP_TRUE                // always true
)

func (p Float) String() string {
	names := map[Float]string{
		FCMP_FALSE: "false", FCMP_OEQ: "oeq", FCMP_OGT: "ogt", FCMP_OGE: "oge",
		FCMP_OLT: "olt", FCMP_OLE: "ole", FCMP_ONE: "one", FCMP_ORD: "ord",
		FCMP_UEQ: "ueq", FCMP_UGT: "ugt", FCMP_UGE: "uge", FCMP_ULT: "ult",
		FCMP_ULE: "ule", FCMP_UNE: "une", FCMP_UNO: "uno", FCMP_TRUE: "true",
	}
	if s, ok := names[p]; ok {
		return s
	}
	return "unknown"
}

// Ordered reports whether p requires both operands to be non-NaN to ever
// return true (an "ordered" predicate is false on a NaN operand, so when
// either operand may be NaN it can never be a definite true).
func (p Float) Ordered() bool {
	switch p {
	case FCMP_OEQ, FCMP_OGT, FCMP_OGE, FCMP_OLT, FCMP_OLE, FCMP_ONE, FCMP_ORD:
		return true
	default:
		return false
	}
}
