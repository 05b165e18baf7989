package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheikhrachel/go-cave/model"
	"github.com/sheikhrachel/go-cave/rules"
)

func regionSizes(regions [][]model.Point) []int {
	sizes := make([]int, len(regions))
	for i, r := range regions {
		sizes[i] = len(r)
	}
	return sizes
}

func TestRegions_Connectivity(t *testing.T) {
	g := parseCave(t,
		".#.##",
		"#.##.",
		"####.",
	)

	four := model.Regions(g, rules.FourWay)
	assert.Equal(t, []int{2, 1, 1, 1}, regionSizes(four))
	assert.ElementsMatch(t, []model.Point{{X: 4, Y: 1}, {X: 4, Y: 2}}, four[0])

	eight := model.Regions(g, rules.EightWay)
	assert.Equal(t, []int{3, 2}, regionSizes(eight))
	assert.ElementsMatch(t, []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, eight[0])
}

func TestLargestRegion(t *testing.T) {
	assert.Nil(t, model.LargestRegion(model.NewGrid[bool](4, 4), rules.EightWay))
	assert.Nil(t, model.Regions(nil, rules.EightWay))

	g := parseCave(t,
		"#####",
		"#..##",
		"###.#",
		"#####",
	)
	assert.Len(t, model.LargestRegion(g, rules.EightWay), 3)
	assert.Len(t, model.LargestRegion(g, rules.FourWay), 2)
}

func TestFillSmallRegions(t *testing.T) {
	g := parseCave(t,
		".#.##",
		"#.##.",
		"####.",
	)
	out := model.FillSmallRegions(g, rules.FourWay, 2)
	assert.Equal(t, 2, out.CountAlive(model.IsOpen))
	assert.True(t, out.Get(4, 1))
	assert.True(t, out.Get(4, 2))
	assert.Equal(t, 5, g.CountAlive(model.IsOpen), "input is left alone")

	out = model.FillSmallRegions(g, rules.EightWay, 3)
	assert.Equal(t, 3, out.CountAlive(model.IsOpen))
	assert.False(t, out.Get(4, 1))
}
