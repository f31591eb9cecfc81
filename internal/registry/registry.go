// SPDX-License-Identifier: MIT

// Package registry maps caller-supplied vertex labels to dense indices.
//
// Indices always cover [0, Len()) without gaps. Removing a label shifts every
// higher index down by one, keeping both directions of the mapping consistent.
package registry

// Registry is a bidirectional label ↔ index map.
// The zero value is not usable; construct with New.
type Registry[T comparable] struct {
	index  map[T]int // label → index
	labels []T       // index → label
}

// New returns an empty Registry with room for capacity labels.
func New[T comparable](capacity int) *Registry[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Registry[T]{
		index:  make(map[T]int, capacity),
		labels: make([]T, 0, capacity),
	}
}

// Len returns the number of registered labels.
func (r *Registry[T]) Len() int { return len(r.labels) }

// Add registers label at index Len(). It reports false, and changes nothing,
// when label is already present.
// Complexity: O(1) amortized.
func (r *Registry[T]) Add(label T) (int, bool) {
	if i, ok := r.index[label]; ok {
		return i, false
	}
	i := len(r.labels)
	r.index[label] = i
	r.labels = append(r.labels, label)

	return i, true
}

// Index returns the current index of label.
func (r *Registry[T]) Index(label T) (int, bool) {
	i, ok := r.index[label]

	return i, ok
}

// Contains reports whether label is registered.
func (r *Registry[T]) Contains(label T) bool {
	_, ok := r.index[label]

	return ok
}

// Label returns the label stored at index i. It panics when i is out of range.
func (r *Registry[T]) Label(i int) T { return r.labels[i] }

// Labels returns a copy of all labels in index order.
func (r *Registry[T]) Labels() []T {
	out := make([]T, len(r.labels))
	copy(out, r.labels)

	return out
}

// Remove unregisters label and returns the index it held. Every label above
// that index moves down by one in both directions.
// Complexity: O(n).
func (r *Registry[T]) Remove(label T) (int, bool) {
	k, ok := r.index[label]
	if !ok {
		return -1, false
	}
	delete(r.index, label)
	copy(r.labels[k:], r.labels[k+1:])
	var zero T
	r.labels[len(r.labels)-1] = zero
	r.labels = r.labels[:len(r.labels)-1]
	for i := k; i < len(r.labels); i++ {
		r.index[r.labels[i]] = i
	}

	return k, true
}

// Clone returns an independent copy.
func (r *Registry[T]) Clone() *Registry[T] {
	c := New[T](len(r.labels))
	for _, l := range r.labels {
		c.Add(l)
	}

	return c
}
