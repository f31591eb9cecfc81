// SPDX-License-Identifier: MIT
package tri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigraph/internal/tri"
)

// cell is a minimal tri.Cell: zero means absent.
type cell int

func (c cell) Present() bool { return c != 0 }

func TestOffset_CoversTriangleExactlyOnce(t *testing.T) {
	for n := 0; n <= 9; n++ {
		seen := make([]bool, tri.Size(n))
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				k := tri.Offset(i, j, n)
				require.GreaterOrEqual(t, k, 0)
				require.Less(t, k, tri.Size(n), "n=%d (%d,%d)", n, i, j)
				require.False(t, seen[k], "n=%d offset %d reused by (%d,%d)", n, k, i, j)
				seen[k] = true
				assert.Equal(t, k, tri.Offset(j, i, n), "offset must be symmetric")
			}
		}
		for k, ok := range seen {
			assert.True(t, ok, "n=%d offset %d never addressed", n, k)
		}
	}
}

func TestStore_SetAtSymmetric(t *testing.T) {
	s := tri.New[cell](4, 0)
	require.Equal(t, 10, s.Len())

	prev := s.Set(3, 1, 7)
	assert.Equal(t, cell(0), prev)
	assert.Equal(t, cell(7), s.At(1, 3))
	assert.Equal(t, cell(7), s.At(3, 1))
	assert.Equal(t, 1, s.Count())

	s.Set(2, 2, 5)
	assert.Equal(t, 2, s.Count())
}

func TestStore_GrowKeepsCoordinates(t *testing.T) {
	s := tri.New[cell](3, 0)
	s.Set(0, 1, 1)
	s.Set(1, 2, 2)
	s.Set(2, 2, 3)

	require.Equal(t, 4, s.Grow())
	require.Equal(t, tri.Size(4), s.Len())

	assert.Equal(t, cell(1), s.At(0, 1))
	assert.Equal(t, cell(2), s.At(2, 1))
	assert.Equal(t, cell(3), s.At(2, 2))
	for i := 0; i < 4; i++ {
		assert.Equal(t, cell(0), s.At(i, 3), "new column must be empty")
	}
	assert.Equal(t, 3, s.Count())
}

func TestStore_ShrinkDropsRowAndShifts(t *testing.T) {
	// Pairs encode their original coordinates as 10*i+j+1.
	const n = 5
	s := tri.New[cell](n, 0)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.Set(i, j, cell(10*i+j+1))
		}
	}

	const k = 2
	require.Equal(t, n-1, s.Shrink(k))
	require.Equal(t, tri.Size(n-1), s.Len())

	old := func(i int) int {
		if i >= k {
			return i + 1
		}
		return i
	}
	for i := 0; i < n-1; i++ {
		for j := i; j < n-1; j++ {
			assert.Equal(t, cell(10*old(i)+old(j)+1), s.At(i, j), "(%d,%d)", i, j)
		}
	}
}

func TestStore_ShrinkToEmpty(t *testing.T) {
	s := tri.New[cell](1, 0)
	s.Set(0, 0, 9)
	require.Equal(t, 0, s.Shrink(0))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Count())
}

func TestStore_CellsRowMajorAndStop(t *testing.T) {
	s := tri.New[cell](3, 0)
	s.Set(2, 2, 3)
	s.Set(0, 2, 1)
	s.Set(1, 1, 2)

	var got [][2]int
	s.Cells(func(i, j int, _ cell) bool {
		got = append(got, [2]int{i, j})
		return true
	})
	assert.Equal(t, [][2]int{{0, 2}, {1, 1}, {2, 2}}, got)

	calls := 0
	s.Cells(func(int, int, cell) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestStore_CloneIsIndependent(t *testing.T) {
	s := tri.New[cell](2, 0)
	s.Set(0, 1, 4)
	c := s.Clone()
	c.Set(0, 1, 0)
	c.Grow()

	assert.Equal(t, cell(4), s.At(0, 1))
	assert.Equal(t, 2, s.Order())
	assert.Equal(t, 3, c.Order())
}

func TestStore_OutOfRangePanics(t *testing.T) {
	s := tri.New[cell](2, 0)
	assert.Panics(t, func() { s.At(0, 2) })
	assert.Panics(t, func() { s.Set(-1, 0, 1) })
	assert.Panics(t, func() { s.Shrink(2) })
	assert.Panics(t, func() { tri.New[cell](-1, 0) })
}
