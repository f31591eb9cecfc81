// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/trigraph/core"
)

func TestWeight_SumType(t *testing.T) {
	var zero core.Weight
	assert.Equal(t, core.Absent, zero, "zero value must be Absent")
	assert.True(t, zero.IsAbsent())
	assert.False(t, zero.Present())

	for _, v := range []int64{0, 1, -7, 1 << 40} {
		w := core.Finite(v)
		assert.True(t, w.Present())
		got, ok := w.Value()
		assert.True(t, ok)
		assert.Equal(t, v, got)
		assert.NotEqual(t, core.Absent, w, "Finite(%d) must differ from Absent", v)
	}

	assert.Equal(t, "absent", core.Absent.String())
	assert.Equal(t, "-3", core.Finite(-3).String())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "unit", core.ModeUnit.String())
	assert.Equal(t, "non-negative", core.ModeNonNegative.String())
	assert.Equal(t, "negative", core.ModeNegative.String())
	assert.Equal(t, "Mode(9)", core.Mode(9).String())
}

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph[string](core.WithCapacity(8), core.WithLogger(nil))
	assert.True(t, g.Empty())
	assert.Zero(t, g.Size())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Vertices())
}
