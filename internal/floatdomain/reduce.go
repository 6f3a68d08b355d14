package floatdomain

import "github.com/sentra-lang/canalgo/internal/domain"

// In the reduced-product protocol only the integer domains publish the
// MinMax field (Interval always, Bitfield when constant or bottom) and
// only they consume it, so Extract/Refine here are
// no-ops: the float domain neither publishes a fact nor accepts one, but
// must still satisfy domain.Refinable since the product vector is typed
// over it uniformly alongside the integer domains.
func (v FloatInterval) Extract() domain.Message { return domain.Message{} }

func (v FloatInterval) Refine(merged domain.Message) domain.Value { return v }
