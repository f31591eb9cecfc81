// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies.

package core

// Clone returns an independent copy with the same labels, index order and
// edges. Options (logger, providers) are shared with the source.
// Complexity: O(n²).
func (g *Graph[T]) Clone() *Graph[T] {
	return &Graph[T]{
		reg:   g.reg.Clone(),
		store: g.store.Clone(),
		opts:  g.opts,
		log:   g.log,
		obs:   g.obs,
	}
}
