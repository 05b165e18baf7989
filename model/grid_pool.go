package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool[T Cell](grid *Grid[T], pool *GridPool[T]) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridFromPool takes a grid from the pool, or allocates one when pool is nil
func GridFromPool[T Cell](pool *GridPool[T], width, height int) *Grid[T] {
	if pool == nil {
		return NewGrid[T](width, height)
	}
	return pool.Get(width, height)
}

// GridPool recycles pass buffers between generations
type GridPool[T Cell] struct {
	pool sync.Pool
}

func NewGridPool[T Cell]() *GridPool[T] {
	return &GridPool[T]{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid[T]{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting its dimensions
func (p *GridPool[T]) Get(width, height int) *Grid[T] {
	g := p.pool.Get().(*Grid[T])
	g.Reset(width, height)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool[T]) Put(g *Grid[T]) {
	g.Clear()
	p.pool.Put(g)
}
