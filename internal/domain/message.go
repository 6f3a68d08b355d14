package domain

import "math/big"

// MinMaxField is the one publishable fact kind the reduced product
// protocol currently defines: a conservative signed and unsigned
// bounding box. The kind set is small and closed, so Message is a typed
// record with one optional field rather than a heterogeneous keyed map
// requiring a checked cast at refine time.
type MinMaxField struct {
	Signed   IntRange
	Unsigned IntRange
}

// Message is exchanged between domains co-describing the same IR value
// during one reduction round: short-lived, created and destroyed within
// that single round.
type Message struct {
	MinMax *MinMaxField
}

// Meet combines two messages field-wise: if both carry MinMax, their
// ranges meet; if only one carries it, it is cloned; if neither does,
// the result carries nothing.
func (m Message) Meet(other Message) Message {
	switch {
	case m.MinMax != nil && other.MinMax != nil:
		return Message{MinMax: meetMinMax(m.MinMax, other.MinMax)}
	case m.MinMax != nil:
		return Message{MinMax: cloneMinMax(m.MinMax)}
	case other.MinMax != nil:
		return Message{MinMax: cloneMinMax(other.MinMax)}
	default:
		return Message{}
	}
}

func cloneMinMax(f *MinMaxField) *MinMaxField {
	c := *f
	return &c
}

func meetMinMax(a, b *MinMaxField) *MinMaxField {
	return &MinMaxField{
		Signed:   meetRange(a.Signed, b.Signed, true),
		Unsigned: meetRange(a.Unsigned, b.Unsigned, false),
	}
}

func meetRange(a, b IntRange, signed bool) IntRange {
	if a.Top {
		return b
	}
	if b.Top {
		return a
	}
	if a.Bottom || b.Bottom {
		return IntRange{Width: a.Width, Bottom: true}
	}
	if signed {
		lo := maxBigOf(a.SignedLo, b.SignedLo)
		hi := minBigOf(a.SignedHi, b.SignedHi)
		if lo.Cmp(hi) > 0 {
			return IntRange{Width: a.Width, Bottom: true}
		}
		return IntRange{Width: a.Width, SignedLo: lo, SignedHi: hi}
	}
	lo := maxBigOf(a.UnsignedLo, b.UnsignedLo)
	hi := minBigOf(a.UnsignedHi, b.UnsignedHi)
	if lo.Cmp(hi) > 0 {
		return IntRange{Width: a.Width, Bottom: true}
	}
	return IntRange{Width: a.Width, UnsignedLo: lo, UnsignedHi: hi}
}

func minBigOf(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func maxBigOf(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Refinable is implemented by any domain that can tighten itself from a
// Message published by its peers in the same ProductVector.
type Refinable interface {
	// Extract publishes this domain's facts into a Message.
	Extract() Message
	// Refine returns a (possibly) tightened copy of the receiver, using
	// only facts present in merged. Refine must be monotone: its result
	// is always <= the receiver in the lattice order.
	Refine(merged Message) Value
}
