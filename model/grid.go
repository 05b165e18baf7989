package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"github.com/juju/loggo"
	"github.com/pkg/errors"
)

var logger = loggo.GetLogger("cave.model")

// Cell is the set of values a Grid can hold: open/wall flags or wall strength
type Cell interface {
	bool | int
}

// Grid is a fixed-size row-major 2D map
type Grid[T Cell] struct {
	width  int
	height int
	cells  [][]T
}

// NewGrid creates a new zeroed grid with the specified dimensions
func NewGrid[T Cell](width, height int) *Grid[T] {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]T, height)
	for i := range cells {
		cells[i] = make([]T, width)
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewGridFromRows builds a grid from rows[y][x], copying the input
func NewGridFromRows[T Cell](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "[NewGridFromRows] grid must have at least one row and one column")
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidDimension, "[NewGridFromRows] row %d has length %d, want %d", y, len(row), width)
		}
	}
	g := NewGrid[T](width, len(rows))
	for y, row := range rows {
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid[T]) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid[T]) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid[T]) Reset(width, height int) {
	var zero T
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]T, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]T, width)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = zero
			}
		}
	}
}

// Clear zeroes all cells
func (g *Grid[T]) Clear() {
	var zero T
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = zero
		}
	}
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell value, ignoring out-of-range coordinates
func (g *Grid[T]) Set(x, y int, v T) {
	if g.InBounds(x, y) {
		g.cells[y][x] = v
	}
}

// Get returns the value of a cell, or the zero value when out of range
func (g *Grid[T]) Get(x, y int) T {
	if !g.InBounds(x, y) {
		var zero T
		return zero
	}
	return g.cells[y][x]
}

// Rows returns a copy of the cells as rows[y][x]
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range g.height {
		rows[y] = append([]T(nil), g.cells[y]...)
	}
	return rows
}

// Clone returns a deep copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	c := NewGrid[T](g.width, g.height)
	c.copyFrom(g)
	return c
}

func (g *Grid[T]) copyFrom(src *Grid[T]) {
	for y := range src.height {
		copy(g.cells[y], src.cells[y])
	}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountAlive returns the number of cells matching the aliveness predicate
func (g *Grid[T]) CountAlive(alive func(T) bool) (count int) {
	for y := range g.height {
		for x := range g.width {
			if alive(g.cells[y][x]) {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the dimensions and cell values
func (g *Grid[T]) Hash() string {
	h := md5.New()
	buf := binary.AppendUvarint(nil, uint64(g.width))
	buf = binary.AppendUvarint(buf, uint64(g.height))
	h.Write(buf)
	for y := range g.height {
		buf = buf[:0]
		for x := range g.width {
			switch v := any(g.cells[y][x]).(type) {
			case bool:
				if v {
					buf = append(buf, 1)
				} else {
					buf = append(buf, 0)
				}
			case int:
				buf = binary.AppendVarint(buf, int64(v))
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
