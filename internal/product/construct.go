package product

import (
	"fmt"

	"github.com/llir/llvm/ir/types"

	"github.com/sentra-lang/canalgo/internal/absenv"
	"github.com/sentra-lang/canalgo/internal/bitfield"
	"github.com/sentra-lang/canalgo/internal/floatdomain"
	"github.com/sentra-lang/canalgo/internal/interval"
	"github.com/sentra-lang/canalgo/internal/intset"
)

// Construct is the core's constructors entry point: given an Environment
// and an IR type, it returns a freshly bottom abstract value of the
// configured product shape for that type. Integer and pointer types get
// the three-domain reduced product (Interval, Set, Bitfield); float
// types get a lone FloatInterval, since the float domain does not
// participate in the integer reduction protocol.
func Construct(env *absenv.Environment, t types.Type) (Vector, error) {
	kind, width, sem := env.Classify(t)
	switch kind {
	case absenv.KindInt, absenv.KindPointer:
		return New(
			interval.Bottom(width),
			intset.Bottom(width, env.SetThreshold),
			bitfield.Bottom(width),
		), nil
	case absenv.KindFloat:
		return New(floatdomain.Bottom(sem)), nil
	default:
		return Vector{}, fmt.Errorf("%s", absenv.UnsupportedTypeError(t))
	}
}
