// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/trigraph/core"
)

const (
	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
	minGridDim    = 1

	// centerID is the fixed hub label for Star and Wheel.
	centerID  = "Center"
	gridIDFmt = "%d,%d"
)

// Path builds P_n: vertices 0..n-1 and edges i-(i+1). n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			link(g, cfg, cfg.idFn(i), cfg.idFn(i+1))
		}
		return nil
	}
}

// Cycle builds C_n: Path(n) closed by (n-1)-0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			link(g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}
		return nil
	}
}

// Star builds a hub "Center" joined to n-1 leaves 0..n-2. n ≥ 2.
// Fails with ErrIDCollision if a leaf ID equals "Center".
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if err := checkLeaves(cfg, n-1); err != nil {
			return fmt.Errorf("Star: %w", err)
		}
		g.AddVertex(centerID)
		addVertices(g, cfg, n-1)
		for i := 0; i < n-1; i++ {
			link(g, cfg, centerID, cfg.idFn(i))
		}
		return nil
	}
}

// Wheel builds W_n: a rim C_{n-1} plus spokes from "Center". n ≥ 4.
// Fails with ErrIDCollision if a rim ID equals "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		if err := checkLeaves(cfg, n-1); err != nil {
			return fmt.Errorf("Wheel: %w", err)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("Wheel: %w", err)
		}
		g.AddVertex(centerID)
		for i := 0; i < n-1; i++ {
			link(g, cfg, centerID, cfg.idFn(i))
		}
		return nil
	}
}

// checkLeaves rejects an ID scheme that maps one of the first k indices to
// the hub label.
func checkLeaves(cfg builderConfig, k int) error {
	for i := 0; i < k; i++ {
		if cfg.idFn(i) == centerID {
			return fmt.Errorf("index %d maps to %q: %w", i, centerID, ErrIDCollision)
		}
	}
	return nil
}

// Complete builds K_n without self-loops. n ≥ 1.
// Edges are emitted for i<j in row-major order.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg, cfg.idFn(i), cfg.idFn(j))
			}
		}
		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood lattice with fixed IDs "r,c".
// Vertices are added row-major, so index order follows reading order.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(id(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					link(g, cfg, id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					link(g, cfg, id(r, c), id(r+1, c))
				}
			}
		}
		return nil
	}
}

// RandomSparse builds G(n, p): each pair i<j is joined independently with
// probability p. p=0 and p=1 need no rng; anything in between does.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					link(g, cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}
		return nil
	}
}
