package io

import (
	"iter"
	"slices"
)

const (
	// RING_DEFAULT_CAPACITY is the default capacity in values for a new ring.
	RING_DEFAULT_CAPACITY = 65536
)

// Ring represents a bounded in-memory recorder for emitted values.
// It retains values in emit order up to its capacity and rejects
// further emits once full.
type Ring struct {
	Capacity int

	Data []int
}

var _ Sink = (*Ring)(nil)

// Rewind discards all recorded values. Initializes the capacity if not
// already set.
func (ring *Ring) Rewind() {
	if ring.Capacity == 0 {
		ring.Capacity = RING_DEFAULT_CAPACITY
	}

	ring.Data = ring.Data[:0]
}

// Emit records a value, failing once the ring is at capacity.
func (ring *Ring) Emit(value int) (err error) {
	if ring.Capacity == 0 {
		ring.Capacity = RING_DEFAULT_CAPACITY
	}

	if len(ring.Data) >= ring.Capacity {
		err = ErrSinkFull
		return
	}

	ring.Data = append(ring.Data, value)
	return
}

// Values iterates the recorded values in emit order.
func (ring *Ring) Values() iter.Seq[int] {
	return func(yield func(value int) bool) {
		for _, value := range ring.Data {
			if !yield(value) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the recorded values.
func (ring *Ring) Snapshot() []int {
	return slices.Clone(ring.Data)
}
