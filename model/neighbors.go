package model

import "github.com/sheikhrachel/go-cave/rules"

// IsOpen is the aliveness predicate for binary grids
func IsOpen(v bool) bool { return v }

// IsActive is the aliveness predicate for graded grids: any state above zero
func IsActive(state int) bool { return state > 0 }

// CountNeighbors counts the neighbours of (x, y) for which alive holds.
// Offsets falling outside the grid are skipped.
func CountNeighbors[T Cell](g *Grid[T], x, y int, conn rules.Connectivity, alive func(T) bool) int {
	count := 0
	for _, d := range conn.Offsets() {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if alive(g.cells[ny][nx]) {
			count++
		}
	}
	return count
}
