package model

import (
	"context"

	"github.com/pkg/errors"
)

const historySize = 5

// Simulation advances a cave one pass at a time and watches for stagnation
type Simulation struct {
	engine     *Engine
	cave       Cave
	generation int
	history    []string // Recent cave hashes for cycle detection
	stagnant   bool
}

// NewSimulation starts a simulation from cave, which must match the engine mode
func NewSimulation(engine *Engine, cave Cave) (*Simulation, error) {
	if engine == nil {
		return nil, errors.New("[NewSimulation] nil engine")
	}
	if err := cave.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] bad cave")
	}
	if cave.Mode != engine.cfg.Mode {
		return nil, errors.Wrapf(ErrModeMismatch, "[NewSimulation] engine runs %s caves, got %s", engine.cfg.Mode, cave.Mode)
	}
	return &Simulation{
		engine:  engine,
		cave:    cave,
		history: []string{cave.Hash()},
	}, nil
}

// Cave returns the current cave
func (s *Simulation) Cave() Cave {
	return s.cave
}

// Generation returns the number of passes applied so far
func (s *Simulation) Generation() int {
	return s.generation
}

// Step applies exactly one pass to the current cave, reading the previous
// output regardless of the engine's legacy settings
func (s *Simulation) Step() error {
	next, err := s.engine.smooth(s.cave, 1, false)
	if err != nil {
		return errors.Wrapf(err, "[Step] generation %d", s.generation)
	}
	s.cave = next
	s.generation++
	s.updateHistory(next.Hash())
	return nil
}

// updateHistory records hash and maintains the window size
func (s *Simulation) updateHistory(hash string) {
	s.stagnant = false
	// Static state, 2-cycle and 3-cycle
	for i := len(s.history) - 1; i >= 0 && i >= len(s.history)-3; i-- {
		if s.history[i] == hash {
			s.stagnant = true
			break
		}
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the last step reproduced one of the three
// preceding states
func (s *Simulation) IsStagnant() bool {
	return s.stagnant
}

// Run steps until the cave stagnates, maxSteps passes were applied, or ctx is
// done. maxSteps <= 0 means no limit. It returns the number of steps taken.
func (s *Simulation) Run(ctx context.Context, maxSteps int) (int, error) {
	steps := 0
	for maxSteps <= 0 || steps < maxSteps {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if err := s.Step(); err != nil {
			return steps, err
		}
		steps++
		if s.stagnant {
			logger.Debugf("stagnant after %d steps (generation %d)", steps, s.generation)
			break
		}
	}
	return steps, nil
}
