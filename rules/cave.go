package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidRuleConfig is returned when a Config cannot drive a smoothing run
var ErrInvalidRuleConfig = errors.New("invalid rule config")

// Connectivity selects the neighbour set used when counting alive cells
type Connectivity int

const (
	// EightWay counts the orthogonal and diagonal neighbours (Moore)
	EightWay Connectivity = iota
	// FourWay counts the orthogonal neighbours only (von Neumann)
	FourWay
)

var (
	eightWayOffsets = [][2]int{
		{-1, 1}, {0, 1}, {1, 1},
		{-1, 0}, {1, 0},
		{-1, -1}, {0, -1}, {1, -1},
	}
	fourWayOffsets = [][2]int{
		{0, 1}, {0, -1},
		{1, 0}, {-1, 0},
	}
)

// Offsets returns the relative (dx, dy) neighbour positions, nil if unknown
func (c Connectivity) Offsets() [][2]int {
	switch c {
	case EightWay:
		return eightWayOffsets
	case FourWay:
		return fourWayOffsets
	}
	return nil
}

// MaxNeighbors returns the largest neighbour count the connectivity can report
func (c Connectivity) MaxNeighbors() int {
	return len(c.Offsets())
}

func (c Connectivity) String() string {
	switch c {
	case EightWay:
		return "eight"
	case FourWay:
		return "four"
	}
	return "unknown"
}

// ParseConnectivity accepts "eight"/"8"/"moore" and "four"/"4"/"von-neumann"
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eight", "8", "moore", "":
		return EightWay, nil
	case "four", "4", "von-neumann", "vonneumann":
		return FourWay, nil
	}
	return 0, errors.Wrapf(ErrInvalidRuleConfig, "[ParseConnectivity] unknown connectivity: %q", s)
}

// Mode selects which grid kind a run smooths
type Mode int

const (
	// Binary grids flip cells between open and wall
	Binary Mode = iota
	// Graded grids move an integer wall strength up or down by one per pass
	Graded
)

func (m Mode) String() string {
	switch m {
	case Binary:
		return "binary"
	case Graded:
		return "graded"
	}
	return "unknown"
}

// ParseMode accepts "binary" and "graded" (or "states")
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "":
		return Binary, nil
	case "graded", "states":
		return Graded, nil
	}
	return 0, errors.Wrapf(ErrInvalidRuleConfig, "[ParseMode] unknown mode: %q", s)
}

// Config holds the parameters of one smoothing run. It is never mutated
// while a run is in progress.
type Config struct {
	SurvivalThreshold int
	BirthThreshold    int
	StateCount        int
	Connectivity      Connectivity
	Mode              Mode
	Generations       int

	// LegacyPassCount makes Generations=g perform g+1 passes
	LegacyPassCount bool
	// LegacyGradedCounting makes every graded pass read the run's input grid
	// instead of the previous pass's output
	LegacyGradedCounting bool
	// Parallel splits each pass into row bands
	Parallel bool
}

// DefaultConfig returns the classic 4-5 cave rule
func DefaultConfig() Config {
	return Config{
		SurvivalThreshold: 4,
		BirthThreshold:    5,
		StateCount:        3,
		Connectivity:      EightWay,
		Mode:              Binary,
		Generations:       5,
	}
}

// Validate checks thresholds against the connectivity and, for graded runs,
// the state count
func (c Config) Validate() error {
	maxNeighbors := c.Connectivity.MaxNeighbors()
	if maxNeighbors == 0 {
		return errors.Wrapf(ErrInvalidRuleConfig, "[Validate] unknown connectivity: %d", c.Connectivity)
	}
	if c.SurvivalThreshold < 0 || c.SurvivalThreshold > maxNeighbors {
		return errors.Wrapf(ErrInvalidRuleConfig,
			"[Validate] survival threshold %d outside [0,%d] for %s connectivity",
			c.SurvivalThreshold, maxNeighbors, c.Connectivity)
	}
	if c.BirthThreshold < 0 || c.BirthThreshold > maxNeighbors {
		return errors.Wrapf(ErrInvalidRuleConfig,
			"[Validate] birth threshold %d outside [0,%d] for %s connectivity",
			c.BirthThreshold, maxNeighbors, c.Connectivity)
	}
	if c.Generations < 0 {
		return errors.Wrapf(ErrInvalidRuleConfig, "[Validate] negative generations: %d", c.Generations)
	}
	switch c.Mode {
	case Binary:
	case Graded:
		if c.StateCount < 1 {
			return errors.Wrapf(ErrInvalidRuleConfig, "[Validate] graded mode needs state count >= 1, got %d", c.StateCount)
		}
	default:
		return errors.Wrapf(ErrInvalidRuleConfig, "[Validate] unknown mode: %d", c.Mode)
	}
	return nil
}

// Passes returns how many update passes a run performs
func (c Config) Passes() int {
	if c.LegacyPassCount {
		return c.Generations + 1
	}
	return c.Generations
}

/*
ApplyBinaryRule returns the next value of a binary cell.

An alive cell survives with at least SurvivalThreshold alive neighbours, a
dead cell is born with at least BirthThreshold.
*/
func (c Config) ApplyBinaryRule(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= c.SurvivalThreshold
	}
	return neighbors >= c.BirthThreshold
}

/*
ApplyGradedRule returns the next state of a graded cell.

With at least SurvivalThreshold alive neighbours the state moves up by one,
otherwise down by one, clamped to [0, StateCount].
*/
func (c Config) ApplyGradedRule(neighbors int, state int) int {
	if neighbors >= c.SurvivalThreshold {
		return min(state+1, c.StateCount)
	}
	return max(state-1, 0)
}
