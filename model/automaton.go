package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-cave/rules"
)

// Engine applies smoothing passes to cave grids under one rule config
type Engine struct {
	cfg        rules.Config
	binaryPool *GridPool[bool]
	gradedPool *GridPool[int]
}

// EngineOption customises an Engine
type EngineOption func(*Engine)

// WithPool lets the engine recycle intermediate pass buffers
func WithPool[T Cell](p *GridPool[T]) EngineOption {
	return func(e *Engine) {
		switch pool := any(p).(type) {
		case *GridPool[bool]:
			e.binaryPool = pool
		case *GridPool[int]:
			e.gradedPool = pool
		}
	}
}

// NewEngine validates cfg and returns an engine bound to it
func NewEngine(cfg rules.Config, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewEngine] invalid rule config")
	}
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the rule config the engine was built with
func (e *Engine) Config() rules.Config {
	return e.cfg
}

// Smooth runs the configured number of passes on the variant carried by c
func (e *Engine) Smooth(c Cave) (Cave, error) {
	return e.smooth(c, e.cfg.Passes(), e.cfg.LegacyGradedCounting)
}

// SmoothBinary runs the configured passes of the survival/birth rule
func (e *Engine) SmoothBinary(grid *Grid[bool]) (*Grid[bool], error) {
	return e.smoothBinary(grid, e.cfg.Passes())
}

// SmoothGraded runs the configured passes of the strengthen/weaken rule
func (e *Engine) SmoothGraded(grid *Grid[int]) (*Grid[int], error) {
	return e.smoothGraded(grid, e.cfg.Passes(), e.cfg.LegacyGradedCounting)
}

func (e *Engine) smooth(c Cave, passes int, legacyGraded bool) (Cave, error) {
	if err := c.Validate(); err != nil {
		return Cave{}, err
	}
	if c.Mode != e.cfg.Mode {
		return Cave{}, errors.Wrapf(ErrModeMismatch, "[Smooth] engine runs %s caves, got %s", e.cfg.Mode, c.Mode)
	}
	switch c.Mode {
	case rules.Graded:
		g, err := e.smoothGraded(c.Graded, passes, legacyGraded)
		if err != nil {
			return Cave{}, err
		}
		return GradedCave(g), nil
	default:
		g, err := e.smoothBinary(c.Binary, passes)
		if err != nil {
			return Cave{}, err
		}
		return BinaryCave(g), nil
	}
}

func (e *Engine) smoothBinary(grid *Grid[bool], passes int) (*Grid[bool], error) {
	if err := checkGrid(grid); err != nil {
		return nil, errors.Wrap(err, "[SmoothBinary] bad input grid")
	}
	cfg := e.cfg
	step := func(src *Grid[bool], x, y int) bool {
		n := CountNeighbors(src, x, y, cfg.Connectivity, IsOpen)
		return cfg.ApplyBinaryRule(n, src.cells[y][x])
	}
	out, err := iterate(grid, passes, false, cfg.Parallel, e.binaryPool, step)
	if err != nil {
		return nil, errors.Wrap(err, "[SmoothBinary] pass failed")
	}
	logger.Debugf("binary smoothing: %d passes on %dx%d, %d open cells",
		passes, out.width, out.height, out.CountAlive(IsOpen))
	return out, nil
}

func (e *Engine) smoothGraded(grid *Grid[int], passes int, legacy bool) (*Grid[int], error) {
	if err := checkGrid(grid); err != nil {
		return nil, errors.Wrap(err, "[SmoothGraded] bad input grid")
	}
	cfg := e.cfg
	if cfg.StateCount < 1 {
		return nil, errors.Wrapf(rules.ErrInvalidRuleConfig, "[SmoothGraded] state count must be >= 1, got %d", cfg.StateCount)
	}
	for y := range grid.height {
		for x := range grid.width {
			if s := grid.cells[y][x]; s < 0 || s > cfg.StateCount {
				return nil, errors.Wrapf(ErrInvalidState, "[SmoothGraded] cell (%d,%d) has state %d outside [0,%d]",
					x, y, s, cfg.StateCount)
			}
		}
	}
	step := func(src *Grid[int], x, y int) int {
		n := CountNeighbors(src, x, y, cfg.Connectivity, IsActive)
		return cfg.ApplyGradedRule(n, src.cells[y][x])
	}
	out, err := iterate(grid, passes, legacy, cfg.Parallel, e.gradedPool, step)
	if err != nil {
		return nil, errors.Wrap(err, "[SmoothGraded] pass failed")
	}
	logger.Debugf("graded smoothing: %d passes on %dx%d (legacy counting: %v)",
		passes, out.width, out.height, legacy)
	return out, nil
}

func checkGrid[T Cell](g *Grid[T]) error {
	if g == nil {
		return errors.Wrap(ErrInvalidDimension, "nil grid")
	}
	if g.width < 1 || g.height < 1 {
		return errors.Wrapf(ErrInvalidDimension, "width=%d height=%d", g.width, g.height)
	}
	return nil
}

// iterate applies passes sequentially. Each pass reads the previous pass's
// output, or always the input when fromInput is set, and writes a fresh grid.
// The input grid is never modified or returned.
func iterate[T Cell](
	input *Grid[T],
	passes int,
	fromInput bool,
	parallel bool,
	pool *GridPool[T],
	step func(src *Grid[T], x, y int) T,
) (*Grid[T], error) {
	if passes <= 0 {
		return input.Clone(), nil
	}

	prev := input
	for pass := range passes {
		src := prev
		if fromInput {
			src = input
		}
		next := GridFromPool(pool, input.width, input.height)
		if err := applyPass(src, next, parallel, func(x, y int) T { return step(src, x, y) }); err != nil {
			GridToPool(next, pool)
			return nil, errors.Wrapf(err, "pass %d", pass)
		}
		if prev != input {
			GridToPool(prev, pool)
		}
		prev = next
		logger.Tracef("pass %d/%d done", pass+1, passes)
	}
	return prev, nil
}

// applyPass copies src into next and rewrites the interior cells of next
// with update. Border cells keep their src value.
func applyPass[T Cell](src, next *Grid[T], parallel bool, update func(x, y int) T) error {
	next.copyFrom(src)
	if src.width < 3 || src.height < 3 {
		return nil
	}

	rows := func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			for x := 1; x < src.width-1; x++ {
				next.cells[y][x] = update(x, y)
			}
		}
	}

	if !parallel {
		rows(1, src.height-1)
		return nil
	}

	var (
		eg            errgroup.Group
		interior      = src.height - 2
		numWorkers    = min(runtime.NumCPU(), interior)
		rowsPerWorker = (interior + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = 1 + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, src.height-1)
		)
		if startRow >= endRow {
			break
		}

		eg.Go(func() error {
			rows(startRow, endRow)
			return nil
		})
	}

	return eg.Wait()
}
