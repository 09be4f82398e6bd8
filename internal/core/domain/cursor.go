package domain

import (
	"cmp"
	"iter"
	"slices"
)

// Cursor is a point-in-time snapshot of a view aggregate.
//
// Filtering is deferred: Filter records a predicate that is evaluated while
// iterating, always against the full snapshot. A later Filter replaces the
// earlier one rather than narrowing its result. Sort reorders the snapshot
// in place and therefore also reorders a pending filtered iteration.
//
// Once a filter is set, iteration is single-pass: elements consumed by one
// range loop are not produced again until Filter is called again. Without a
// filter, every iteration yields the whole snapshot.
//
// A Cursor is not safe for concurrent use.
type Cursor[T any] struct {
	data     []T
	pred     func(T) bool
	filtered bool
	pos      int
}

// NewCursor wraps snapshot. The cursor takes ownership of the slice.
func NewCursor[T any](snapshot []T) *Cursor[T] {
	return &Cursor[T]{data: snapshot}
}

// Filter sets pred as the cursor's only filter.
func (c *Cursor[T]) Filter(pred func(T) bool) *Cursor[T] {
	c.pred = pred
	c.filtered = true
	c.pos = 0
	return c
}

// Sort stably sorts the snapshot in place using cmpFn.
func (c *Cursor[T]) Sort(cmpFn func(a, b T) int, reverse bool) *Cursor[T] {
	if reverse {
		slices.SortStableFunc(c.data, func(a, b T) int { return cmpFn(b, a) })
	} else {
		slices.SortStableFunc(c.data, cmpFn)
	}
	return c
}

// SortBy stably sorts the cursor's snapshot by an ordered key.
func SortBy[T any, K cmp.Ordered](c *Cursor[T], key func(T) K, reverse bool) *Cursor[T] {
	return c.Sort(func(a, b T) int { return cmp.Compare(key(a), key(b)) }, reverse)
}

// All returns the cursor's current sequence.
func (c *Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !c.filtered {
			for _, v := range c.data {
				if !yield(v) {
					return
				}
			}
			return
		}
		for c.pos < len(c.data) {
			v := c.data[c.pos]
			c.pos++
			if c.pred != nil && !c.pred(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains All into a slice.
func (c *Cursor[T]) Collect() []T {
	return slices.Collect(c.All())
}

// First returns the first element of the current sequence.
func (c *Cursor[T]) First() (T, bool) {
	for v := range c.All() {
		return v, true
	}
	var zero T
	return zero, false
}

// Len returns the number of elements in the snapshot, ignoring any filter.
func (c *Cursor[T]) Len() int {
	return len(c.data)
}
