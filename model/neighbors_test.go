package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheikhrachel/go-cave/model"
	"github.com/sheikhrachel/go-cave/rules"
)

func TestCountNeighbors_FullBlock(t *testing.T) {
	g := parseCave(t, "...", "...", "...")
	assert.Equal(t, 8, model.CountNeighbors(g, 1, 1, rules.EightWay, model.IsOpen))
	assert.Equal(t, 4, model.CountNeighbors(g, 1, 1, rules.FourWay, model.IsOpen))
}

func TestCountNeighbors_SkipsOutOfBounds(t *testing.T) {
	g := parseCave(t, "...", "...", "...")
	assert.Equal(t, 3, model.CountNeighbors(g, 0, 0, rules.EightWay, model.IsOpen))
	assert.Equal(t, 2, model.CountNeighbors(g, 0, 0, rules.FourWay, model.IsOpen))
	assert.Equal(t, 5, model.CountNeighbors(g, 1, 0, rules.EightWay, model.IsOpen))
}

func TestCountNeighbors_Diagonals(t *testing.T) {
	g := parseCave(t,
		".#.",
		"#.#",
		".#.",
	)
	assert.Equal(t, 4, model.CountNeighbors(g, 1, 1, rules.EightWay, model.IsOpen))
	assert.Equal(t, 0, model.CountNeighbors(g, 1, 1, rules.FourWay, model.IsOpen))
}

func TestCountNeighbors_Graded(t *testing.T) {
	g, err := model.NewGridFromRows([][]int{
		{0, 1, 0},
		{3, 2, 0},
		{0, 2, 1},
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, model.CountNeighbors(g, 1, 1, rules.EightWay, model.IsActive))
	assert.Equal(t, 3, model.CountNeighbors(g, 1, 1, rules.FourWay, model.IsActive))
}
