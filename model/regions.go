package model

import (
	"sort"

	"github.com/sheikhrachel/go-cave/rules"
)

// Point is a cell coordinate
type Point struct {
	X, Y int
}

// Regions finds the connected areas of open cells under conn, largest first.
// Ties keep scan order (by the first cell in row-major order).
func Regions(g *Grid[bool], conn rules.Connectivity) [][]Point {
	if g == nil {
		return nil
	}
	seen := NewGrid[bool](g.width, g.height)
	offsets := conn.Offsets()
	var regions [][]Point

	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] || seen.cells[y][x] {
				continue
			}
			// BFS to collect the region
			seen.cells[y][x] = true
			region := []Point{{X: x, Y: y}}
			for qi := 0; qi < len(region); qi++ {
				p := region[qi]
				for _, d := range offsets {
					nx, ny := p.X+d[0], p.Y+d[1]
					if !g.InBounds(nx, ny) || !g.cells[ny][nx] || seen.cells[ny][nx] {
						continue
					}
					seen.cells[ny][nx] = true
					region = append(region, Point{X: nx, Y: ny})
				}
			}
			regions = append(regions, region)
		}
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return len(regions[i]) > len(regions[j])
	})
	return regions
}

// LargestRegion returns the biggest open region, or nil if there is none
func LargestRegion(g *Grid[bool], conn rules.Connectivity) []Point {
	regions := Regions(g, conn)
	if len(regions) == 0 {
		return nil
	}
	return regions[0]
}

// FillSmallRegions returns a copy of g with every open region smaller than
// minSize turned into wall
func FillSmallRegions(g *Grid[bool], conn rules.Connectivity, minSize int) *Grid[bool] {
	if g == nil {
		return nil
	}
	out := g.Clone()
	filled := 0
	for _, region := range Regions(g, conn) {
		if len(region) >= minSize {
			continue
		}
		for _, p := range region {
			out.cells[p.Y][p.X] = false
		}
		filled++
	}
	if filled > 0 {
		logger.Debugf("filled %d regions smaller than %d cells", filled, minSize)
	}
	return out
}
