// Package ring is a specialized adaption of `container/ring`
// for use as the recency list of an object cache.
package ring

import "iter"

type (
	// A Ring is an element of a circular list, or ring.
	// Elements are meant to be embedded in the values they carry
	// so that linking a value into a [Home] never allocates.
	// The zero value is an unlinked element with a zero Value.
	Ring[Value any] struct {
		next, prev *Ring[Value]
		home       *Home[Value]
		Value      Value
	}
	// Home is the sentinel element of a ring.
	// Elements run from least recently used (just after the sentinel)
	// to most recently used (just before it).
	// The zero value is an empty ring ready to use.
	// Concurrent access must be guarded by the caller.
	Home[Value any] struct {
		root Ring[Value]
		len  int
	}
)

func (r *Ring[Value]) init() *Ring[Value] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be empty.
func (r *Ring[Value]) Next() *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be empty.
func (r *Ring[Value]) Prev() *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Home returns the ring that r currently belongs to, or nil.
func (r *Ring[Value]) Home() *Home[Value] { return r.home }

// link connects ring r with ring s such that r.Next()
// becomes s and returns the original value for r.Next().
// r must not be empty.
//
// If r and s point to different rings, linking
// them creates a single ring with the elements of s inserted
// after r.
func (r *Ring[Value]) link(s *Ring[Value]) *Ring[Value] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Note: Cannot use multiple assignment because
		// evaluation order of LHS is not specified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// unlink removes r from whatever ring it is part of,
// leaving it as a detached, uninitialized element.
func (r *Ring[Value]) unlink() {
	r.prev.next = r.next
	r.next.prev = r.prev
	r.next = nil
	r.prev = nil
}

func (h *Home[Value]) sentinel() *Ring[Value] {
	if h.root.next == nil {
		return h.root.init()
	}
	return &h.root
}

// Len returns the number of elements in the ring.
// It executes in constant time.
func (h *Home[Value]) Len() int { return h.len }

// Contains reports whether r is an element of this ring.
// Membership is decided by identity of the element, never by its Value.
func (h *Home[Value]) Contains(r *Ring[Value]) bool {
	return r != nil && r.home == h
}

// Add links r as the most recently used element,
// carrying value. r must not belong to any ring.
func (h *Home[Value]) Add(r *Ring[Value], value Value) {
	root := h.sentinel()
	r.Value = value
	r.home = h
	root.Prev().link(r)
	h.len++
}

// Delete removes r from the ring and zeros its Value,
// releasing the ring's reference to it.
// It reports false if r was not an element of this ring.
func (h *Home[Value]) Delete(r *Ring[Value]) bool {
	if !h.Contains(r) {
		return false
	}
	var zero Value
	r.unlink()
	r.Value = zero
	r.home = nil
	h.len--
	return true
}

// MoveToHead makes r the most recently used element.
// It reports false if r was not an element of this ring.
func (h *Home[Value]) MoveToHead(r *Ring[Value]) bool {
	if !h.Contains(r) {
		return false
	}
	root := h.sentinel()
	if root.prev == r {
		return true
	}
	r.unlink()
	root.Prev().link(r)
	return true
}

// DeleteAll removes every element of elements that belongs to the ring
// and returns how many were removed.
func (h *Home[Value]) DeleteAll(elements []*Ring[Value]) int {
	var deleted int
	for _, r := range elements {
		if h.Delete(r) {
			deleted++
		}
	}
	return deleted
}

// All returns an iterator over the values of the ring,
// from least to most recently used.
// The behavior of All is undefined if the ring is changed during iteration.
func (h *Home[Value]) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for r := range h.Elements() {
			if !yield(r.Value) {
				return
			}
		}
	}
}

// Elements is like [Home.All] but yields the ring elements themselves.
func (h *Home[Value]) Elements() iter.Seq[*Ring[Value]] {
	return func(yield func(*Ring[Value]) bool) {
		root := h.sentinel()
		for p := root.next; p != root; {
			next := p.next
			if p.home == h && !yield(p) {
				return
			}
			p = next
		}
	}
}

// Sweep returns an iterator over the ring elements,
// from least to most recently used, that tolerates
// changes to the ring made by the caller between steps.
// Before an element is yielded, a placeholder is linked after it;
// the walk resumes from the placeholder, so the yielded element
// (or any other element) may be deleted or moved while it is held.
// Elements added during the walk are visited if they land
// after the placeholder.
func (h *Home[Value]) Sweep() iter.Seq[*Ring[Value]] {
	return func(yield func(*Ring[Value]) bool) {
		var (
			root        = h.sentinel()
			placeholder = new(Ring[Value])
		)
		for here := root.next; here != root; {
			if here.home != h { // Another walk's placeholder.
				here = here.next
				continue
			}
			here.link(placeholder)
			proceed := yield(here)
			here = placeholder.next
			placeholder.unlink()
			if !proceed {
				return
			}
		}
	}
}
