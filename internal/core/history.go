package core

import "strconv"

// Capacity bounds a history buffer. The zero Capacity is unbounded;
// Limit(n) keeps the newest n entries; Limit(0) disables storage entirely
// while leaving callback delivery untouched.
type Capacity struct {
	n       int
	bounded bool
}

// Unbounded returns a Capacity with no limit.
func Unbounded() Capacity { return Capacity{} }

// Limit returns a Capacity keeping at most n entries. Negative n is
// treated as 0.
func Limit(n int) Capacity {
	if n < 0 {
		n = 0
	}
	return Capacity{n: n, bounded: true}
}

// Bounded returns the limit and whether one is set.
func (c Capacity) Bounded() (int, bool) { return c.n, c.bounded }

// Enabled reports whether the capacity admits any entries at all. Only
// Limit(0) reports false.
func (c Capacity) Enabled() bool { return !c.bounded || c.n > 0 }

// String renders "unbounded" or the numeric limit.
func (c Capacity) String() string {
	if !c.bounded {
		return "unbounded"
	}
	return strconv.Itoa(c.n)
}

// History is a FIFO buffer of observed entries with adjustable capacity.
// When a bounded History is full, a Push evicts the oldest entry.
type History[T any] struct {
	capacity Capacity
	entries  []T
}

// NewHistory returns an empty History with the given capacity.
func NewHistory[T any](c Capacity) *History[T] {
	return &History[T]{capacity: c}
}

// Push appends an entry, evicting the oldest if the capacity is full.
// With a disabled capacity the entry is dropped.
func (h *History[T]) Push(entry T) {
	n, bounded := h.capacity.Bounded()
	if bounded && n == 0 {
		return
	}
	h.entries = append(h.entries, entry)
	if bounded && len(h.entries) > n {
		h.trimFront(len(h.entries) - n)
	}
}

// Entries returns the stored entries, oldest first. The slice is a copy;
// callers may keep or modify it freely.
func (h *History[T]) Entries() []T {
	out := make([]T, len(h.entries))
	copy(out, h.entries)
	return out
}

// Last returns the newest entry, or false when the History is empty.
func (h *History[T]) Last() (T, bool) {
	if len(h.entries) == 0 {
		var zero T
		return zero, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of stored entries.
func (h *History[T]) Len() int { return len(h.entries) }

// Clear drops all stored entries. Capacity is unchanged.
func (h *History[T]) Clear() { h.entries = nil }

// Capacity returns the current capacity.
func (h *History[T]) Capacity() Capacity { return h.capacity }

// SetCapacity changes the capacity. Lowering it below the current length
// evicts the oldest entries immediately; raising it or removing the bound
// keeps everything.
func (h *History[T]) SetCapacity(c Capacity) {
	h.capacity = c
	if n, bounded := c.Bounded(); bounded && len(h.entries) > n {
		h.trimFront(len(h.entries) - n)
	}
}

// trimFront drops the k oldest entries and zeroes the vacated tail slots
// so the backing array does not pin evicted values.
func (h *History[T]) trimFront(k int) {
	var zero T
	copy(h.entries, h.entries[k:])
	for i := len(h.entries) - k; i < len(h.entries); i++ {
		h.entries[i] = zero
	}
	h.entries = h.entries[:len(h.entries)-k]
}
