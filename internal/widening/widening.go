// Package widening implements the widening manager: per
// (widening-point, abstract-value) it attaches an opaque counter, and
// once a widening point's join count reaches a configured threshold,
// further joins widen instead of joining precisely -- guaranteeing
// termination of a fixed-point iteration over finite-width integers
// (and, by jumping unstable float interval endpoints to +/-infinity,
// over floats as well).
package widening

import (
	"github.com/google/uuid"

	"github.com/sentra-lang/canalgo/internal/bitfield"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/floatdomain"
	"github.com/sentra-lang/canalgo/internal/interval"
	"github.com/sentra-lang/canalgo/internal/intset"
)

// Point identifies a widening location (an IR loop head) with a
// process-wide-unique value a caller mints once per location and reuses
// across every join at that location. An explicit, clone-stable identity
// rather than pointer identity, since the latter breaks the moment a
// block state is cloned.
type Point struct {
	id uuid.UUID
}

// NewPoint mints a fresh widening-point identity.
func NewPoint() Point { return Point{id: uuid.New()} }

func (p Point) String() string { return p.id.String() }

// key pairs a widening point with the identity of the abstract value
// being joined at it. Value identity here is the counter slot's map key
// itself (the caller-supplied valueID), not Go object/pointer identity,
// since values are plain structs copied by value throughout the core.
type key struct {
	point   uuid.UUID
	valueID string
}

// Manager tracks one join counter per (Point, value identity) pair.
// Not safe for concurrent use; the core is single-threaded.
type Manager struct {
	threshold int
	counts    map[key]int
}

// New builds a Manager with the given widening threshold (default: 3).
func New(threshold int) *Manager {
	return &Manager{threshold: threshold, counts: make(map[key]int)}
}

// Join is the manager's widen hook: it increments the join counter for
// (point, valueID) and returns either the plain lattice join (counter
// below threshold) or the widened result (counter at or above
// threshold).
//
// valueID identifies which abstract value at point is being joined
// across loop iterations -- typically the IR value's SSA name -- so
// distinct values at the same loop head widen independently.
func (m *Manager) Join(point Point, valueID string, receiver, other domain.Value) domain.Value {
	k := key{point: point.id, valueID: valueID}
	if m.counts[k] >= m.threshold {
		return widen(receiver, other)
	}
	m.counts[k]++
	return receiver.Join(other)
}

// Reset clears every counter for point, used by the interpreter when a
// loop head is revisited in a fresh, unrelated analysis pass.
func (m *Manager) Reset(point Point) {
	for k := range m.counts {
		if k.point == point.id {
			delete(m.counts, k)
		}
	}
}

// widen dispatches on the receiver's concrete domain type: interval and
// float-interval jump their non-stable endpoint to +/-infinity/top; set
// and bitfield collapse to top outright, since
// neither domain has a natural "widen the unstable part" operation --
// any narrowing they could still offer is already bounded by their own
// cardinality/bit-count thresholds, so jumping straight to top costs no
// more precision than those domains would lose on their own anyway.
func widen(receiver, other domain.Value) domain.Value {
	switch r := receiver.(type) {
	case interval.Interval:
		return interval.Widen(r, other.(interval.Interval))
	case floatdomain.FloatInterval:
		return floatdomain.Widen(r, other.(floatdomain.FloatInterval))
	case bitfield.Bitfield:
		return bitfield.Top(r.Width())
	case intset.Set:
		return intset.Top(r.Width(), r.Threshold())
	default:
		return receiver.Join(other)
	}
}
