// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Packed upper-triangle storage for a symmetric n×n cell matrix.
// Policy:
//   - One cell per unordered pair {i,j}, diagonal included; len(cells) == n(n+1)/2.
//   - Every structural change (Grow/Shrink) is a full O(n²) rebuild into a fresh slice.
//   - Indices outside [0,n) are programmer errors and panic; callers resolve labels first.

// Package tri stores a symmetric matrix as its packed upper triangle.
//
// Cell (i,j) with i ≤ j lives at offset i*(2n-i+1)/2 + (j-i). The pair is
// canonicalised first, so At(i,j) and At(j,i) address the same cell.
package tri

import "fmt"

// Cell is the constraint for values held in a Store.
// Present reports whether the cell carries a value; absent cells are skipped
// by Count and Cells.
type Cell interface {
	comparable
	Present() bool
}

// Store is a packed symmetric matrix of order n.
// The zero value is an empty store of order 0.
type Store[C Cell] struct {
	n     int // matrix order
	cells []C // packed upper triangle, row-major
	empty C   // value used for new rows and columns
}

// New returns a store of order n with every cell set to empty.
// Complexity: O(n²).
func New[C Cell](n int, empty C) *Store[C] {
	if n < 0 {
		panic(fmt.Sprintf("tri: negative order %d", n))
	}
	s := &Store[C]{n: n, empty: empty}
	s.cells = s.filled(Size(n))

	return s
}

// Size returns the packed length n(n+1)/2 for a matrix of order n.
func Size(n int) int {
	return n * (n + 1) / 2
}

// Offset maps (i,j) in a matrix of order n to its packed position.
// The pair is swapped when i > j.
func Offset(i, j, n int) int {
	if i > j {
		i, j = j, i
	}

	return i*(2*n-i+1)/2 + (j - i)
}

// Order returns n.
func (s *Store[C]) Order() int { return s.n }

// Len returns the number of packed cells, always Size(Order()).
func (s *Store[C]) Len() int { return len(s.cells) }

// At returns the cell for the unordered pair {i,j}.
// Complexity: O(1).
func (s *Store[C]) At(i, j int) C {
	return s.cells[s.offset(i, j)]
}

// Set overwrites the cell for {i,j} and returns the previous value.
// Complexity: O(1).
func (s *Store[C]) Set(i, j int, c C) C {
	k := s.offset(i, j)
	prev := s.cells[k]
	s.cells[k] = c

	return prev
}

// Grow rebuilds the store at order n+1. Every existing cell keeps its (i,j)
// coordinates; the new row and column are empty. Returns the new order.
// Complexity: O(n²) time, O((n+1)²) memory.
func (s *Store[C]) Grow() int {
	next := s.n + 1
	cells := s.filled(Size(next))
	for i := 0; i < s.n; i++ {
		for j := i; j < s.n; j++ {
			cells[Offset(i, j, next)] = s.cells[Offset(i, j, s.n)]
		}
	}
	s.cells = cells
	s.n = next

	return next
}

// Shrink rebuilds the store at order n-1, dropping every pair that touches
// index k. Pairs with coordinates above k move down by one so the surviving
// matrix stays dense. Returns the new order.
// Complexity: O(n²).
func (s *Store[C]) Shrink(k int) int {
	s.check(k)
	next := s.n - 1
	cells := make([]C, 0, Size(next))
	// Row-major walk over the survivors lands each cell at its new packed offset.
	for i := 0; i < s.n; i++ {
		if i == k {
			continue
		}
		for j := i; j < s.n; j++ {
			if j == k {
				continue
			}
			cells = append(cells, s.cells[Offset(i, j, s.n)])
		}
	}
	s.cells = cells
	s.n = next

	return next
}

// Count returns the number of present cells. Each unordered pair is counted once.
// Complexity: O(n²).
func (s *Store[C]) Count() int {
	count := 0
	for _, c := range s.cells {
		if c.Present() {
			count++
		}
	}

	return count
}

// Cells calls fn for every present cell with i ≤ j, in row-major order.
// Iteration stops early when fn returns false.
func (s *Store[C]) Cells(fn func(i, j int, c C) bool) {
	k := 0
	for i := 0; i < s.n; i++ {
		for j := i; j < s.n; j++ {
			c := s.cells[k]
			k++
			if !c.Present() {
				continue
			}
			if !fn(i, j, c) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (s *Store[C]) Clone() *Store[C] {
	cells := make([]C, len(s.cells))
	copy(cells, s.cells)

	return &Store[C]{n: s.n, cells: cells, empty: s.empty}
}

func (s *Store[C]) offset(i, j int) int {
	s.check(i)
	s.check(j)

	return Offset(i, j, s.n)
}

func (s *Store[C]) check(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("tri: index %d out of range [0,%d)", i, s.n))
	}
}

func (s *Store[C]) filled(size int) []C {
	cells := make([]C, size)
	for k := range cells {
		cells[k] = s.empty
	}

	return cells
}
