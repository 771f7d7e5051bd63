package model

import (
	"fmt"
	"iter"
)

// Grid is a flat row-major array of cells with bounds-checked access.
// The zero value is an empty 0x0 grid.
type Grid[T any] struct {
	size  UVec2
	cells []T
}

// NewGrid allocates a grid of zero-valued cells.
func NewGrid[T any](size UVec2) Grid[T] {
	return Grid[T]{size: size, cells: make([]T, int(size.X)*int(size.Y))}
}

// GridFrom wraps existing row-major cells. len(cells) must equal size.X*size.Y.
func GridFrom[T any](size UVec2, cells []T) (Grid[T], error) {
	if want := int(size.X) * int(size.Y); len(cells) != want {
		return Grid[T]{}, fmt.Errorf("grid %dx%d needs %d cells, got %d", size.X, size.Y, want, len(cells))
	}

	return Grid[T]{size: size, cells: cells}, nil
}

// Size returns the grid dimensions in cells.
func (g *Grid[T]) Size() UVec2 {
	return g.size
}

// Index maps p to its row-major offset, or false when p is outside the grid.
func (g *Grid[T]) Index(p IVec2) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= int(g.size.X) || p.Y >= int(g.size.Y) {
		return 0, false
	}

	return p.X + p.Y*int(g.size.X), true
}

// Get returns the cell at p.
func (g *Grid[T]) Get(p IVec2) (T, bool) {
	i, ok := g.Index(p)
	if !ok {
		var zero T
		return zero, false
	}

	return g.cells[i], true
}

// GetMut returns a pointer to the cell at p, or nil outside the grid.
func (g *Grid[T]) GetMut(p IVec2) *T {
	i, ok := g.Index(p)
	if !ok {
		return nil
	}

	return &g.cells[i]
}

// Cells exposes the row-major backing slice.
func (g *Grid[T]) Cells() []T {
	return g.cells
}

// Rect walks a rectangular region row by row (x fastest). Negative start
// components are clamped to zero and exactly size.X*size.Y positions are
// yielded; cells outside the grid come through as nil.
func (g *Grid[T]) Rect(start IVec2, size UVec2) iter.Seq2[IVec2, *T] {
	return func(yield func(IVec2, *T) bool) {
		for p := range Region(start, size) {
			if !yield(p, g.GetMut(p)) {
				return
			}
		}
	}
}

// Region yields the positions of a rectangle in row-major order, clamping a
// negative start to zero. Each call returns an independent sequence.
func Region(start IVec2, size UVec2) iter.Seq[IVec2] {
	start = start.Max(IVec2{})

	return func(yield func(IVec2) bool) {
		for y := range int(size.Y) {
			for x := range int(size.X) {
				if !yield(IVec2{X: start.X + x, Y: start.Y + y}) {
					return
				}
			}
		}
	}
}
