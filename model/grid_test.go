package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-cave/model"
)

// parseCave builds a binary grid from text rows: '.' is open, anything else wall.
func parseCave(t *testing.T, rows ...string) *model.Grid[bool] {
	t.Helper()
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, ch := range row {
			cells[y][x] = ch == '.'
		}
	}
	g, err := model.NewGridFromRows(cells)
	require.NoError(t, err)
	return g
}

func TestNewGridFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
	}{
		{"EmptyRows", [][]int{}},
		{"EmptyCols", [][]int{{}}},
		{"NonRectangular", [][]int{{1, 2}, {3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.NewGridFromRows(tc.rows)
			assert.True(t, errors.Is(err, model.ErrInvalidDimension), "got %v", err)
		})
	}
}

func TestGridGetSet(t *testing.T) {
	g := model.NewGrid[int](3, 2)
	assert.Equal(t, 3, g.GetWidth())
	assert.Equal(t, 2, g.GetHeight())

	g.Set(2, 1, 7)
	assert.Equal(t, 7, g.Get(2, 1))

	// Out of range reads are zero, writes are ignored
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)
	assert.Equal(t, 0, g.Get(3, 0))
	assert.Equal(t, 0, g.Get(0, -1))
	assert.Equal(t, 1, g.CountAlive(model.IsActive))
}

func TestGridCloneEqualHash(t *testing.T) {
	g := parseCave(t,
		"#####",
		"#..##",
		"#####",
	)
	c := g.Clone()
	assert.True(t, g.Equal(c))
	assert.Equal(t, g.Hash(), c.Hash())

	c.Set(3, 1, true)
	assert.False(t, g.Get(3, 1), "clone must not share cells")
	assert.False(t, g.Equal(c))
	assert.NotEqual(t, g.Hash(), c.Hash())

	// Same cells, different shape
	a := model.NewGrid[bool](2, 3)
	b := model.NewGrid[bool](3, 2)
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestGridRowsCopy(t *testing.T) {
	g := parseCave(t, "..", "#.")
	rows := g.Rows()
	assert.Equal(t, [][]bool{{true, true}, {false, true}}, rows)
	rows[0][0] = false
	assert.True(t, g.Get(0, 0))
}

func TestGridPool(t *testing.T) {
	pool := model.NewGridPool[int]()
	g := pool.Get(4, 3)
	g.Set(1, 1, 2)
	model.GridToPool(g, pool)

	r := pool.Get(5, 5)
	assert.Equal(t, 5, r.GetWidth())
	assert.Equal(t, 5, r.GetHeight())
	assert.Equal(t, 0, r.CountAlive(model.IsActive), "pooled grids come back cleared")

	// nil pool falls back to allocation
	n := model.GridFromPool[bool](nil, 2, 2)
	assert.Equal(t, 2, n.GetWidth())
	model.GridToPool[bool](n, nil)
}
